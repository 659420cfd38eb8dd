package adapters

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classmerge/internal/testutil"
	"classmerge/internal/types"
)

func TestTaxonomyFileAdapterLoadDefault(t *testing.T) {
	adapter := NewTaxonomyFileAdapter()
	require.NoError(t, adapter.LoadDefault())

	taxonomy := adapter.Taxonomy()
	assert.Equal(t, "tailwind-v4", taxonomy.Name)
	assert.Equal(t, "1.0", taxonomy.SchemaVersion)
	assert.Greater(t, len(taxonomy.Groups), 100)
	if diff := cmp.Diff([]string{DefaultTaxonomyLayer}, adapter.Layers()); diff != "" {
		t.Fatalf("unexpected layers (-want +got):\n%s", diff)
	}

	names := map[string]bool{}
	for _, group := range taxonomy.Groups {
		assert.False(t, names[group.Name], "duplicate group %s", group.Name)
		names[group.Name] = true
	}
	for _, name := range []string{"p", "pt", "font-size", "text-color", "leading", "display"} {
		assert.True(t, names[name], "missing group %s", name)
	}
}

func TestTaxonomyFileAdapterLayers(t *testing.T) {
	base := testutil.WriteTaxonomy(t, testutil.SpacingTaxonomy)
	override := testutil.WriteTaxonomy(t, `schema_version: "1.2"
name: brand
groups:
  - name: tone
    matches: ["tone-*"]
    keywords: [primary, muted]
  - name: elevation
    matches: ["elevation-*"]
    values: [integer]
`)

	adapter := NewTaxonomyFileAdapter()
	require.NoError(t, adapter.LoadTaxonomy(base))
	require.NoError(t, adapter.LoadTaxonomy(override))

	taxonomy := adapter.Taxonomy()
	assert.Equal(t, "brand", taxonomy.Name)
	assert.Equal(t, "1.2", taxonomy.SchemaVersion)

	names := make([]string, 0, len(taxonomy.Groups))
	for _, group := range taxonomy.Groups {
		names = append(names, group.Name)
	}
	if diff := cmp.Diff([]string{"p", "px", "pt", "tone", "elevation"}, names); diff != "" {
		t.Fatalf("unexpected group order (-want +got):\n%s", diff)
	}
	want := types.ClassGroup{Name: "tone", Matches: []string{"tone-*"}, Keywords: []string{"primary", "muted"}}
	if diff := cmp.Diff(want, taxonomy.Groups[3]); diff != "" {
		t.Fatalf("override should replace the group wholesale (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{base, override}, adapter.Layers()); diff != "" {
		t.Fatalf("unexpected layers (-want +got):\n%s", diff)
	}
}

func TestTaxonomyFileAdapterTaxonomyIsCopy(t *testing.T) {
	adapter := NewTaxonomyFileAdapter()
	require.NoError(t, adapter.LoadTaxonomy(testutil.WriteTaxonomy(t, testutil.SpacingTaxonomy)))

	taxonomy := adapter.Taxonomy()
	taxonomy.Groups[0].Name = "changed"
	assert.Equal(t, "p", adapter.Taxonomy().Groups[0].Name)
}

func TestTaxonomyFileAdapterTrimsValues(t *testing.T) {
	path := testutil.WriteTaxonomy(t, `schema_version: "1.0"
groups:
  - name: " p "
    matches: [" p-* "]
    conflicts: [" pt ", ""]
  - name: pt
    matches: ["pt-*"]
`)
	adapter := NewTaxonomyFileAdapter()
	require.NoError(t, adapter.LoadTaxonomy(path))

	group := adapter.Taxonomy().Groups[0]
	assert.Equal(t, "p", group.Name)
	assert.Equal(t, []string{"p-*"}, group.Matches)
	assert.Equal(t, []string{"pt"}, group.Conflicts)
}

func TestTaxonomyFileAdapterErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "invalid yaml", content: "groups: [", wantErr: "failed to parse taxonomy file"},
		{name: "missing schema version", content: "groups: []", wantErr: "missing schema_version"},
		{name: "invalid schema version", content: "schema_version: \"one\"\ngroups: []", wantErr: "invalid schema_version"},
		{name: "unsupported schema version", content: "schema_version: \"2.0\"\ngroups: []", wantErr: "unsupported schema_version"},
		{
			name:    "empty group name",
			content: "schema_version: \"1.0\"\ngroups:\n  - matches: [\"x-*\"]\n",
			wantErr: "empty name",
		},
		{
			name:    "no matches",
			content: "schema_version: \"1.0\"\ngroups:\n  - name: x\n",
			wantErr: "has no matches",
		},
		{
			name:    "invalid pattern",
			content: "schema_version: \"1.0\"\ngroups:\n  - name: x\n    matches: [\"*-x\"]\n",
			wantErr: "invalid pattern",
		},
		{
			name:    "invalid value kind",
			content: "schema_version: \"1.0\"\ngroups:\n  - name: x\n    matches: [\"x-*\"]\n    values: [size]\n",
			wantErr: "invalid value kind",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewTaxonomyFileAdapter()
			err := adapter.LoadTaxonomy(testutil.WriteTaxonomy(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Empty(t, adapter.Layers())
		})
	}
}

func TestTaxonomyFileAdapterBadLayerLeavesTableUntouched(t *testing.T) {
	adapter := NewTaxonomyFileAdapter()
	require.NoError(t, adapter.LoadTaxonomy(testutil.WriteTaxonomy(t, testutil.SpacingTaxonomy)))

	bad := testutil.WriteTaxonomy(t, "schema_version: \"1.0\"\ngroups:\n  - name: p\n    matches: [\"pad-*\"]\n  - name: broken\n")
	require.Error(t, adapter.LoadTaxonomy(bad))

	taxonomy := adapter.Taxonomy()
	assert.Len(t, taxonomy.Groups, 4)
	assert.Equal(t, []string{"p-*"}, taxonomy.Groups[0].Matches)
	assert.Len(t, adapter.Layers(), 1)
}

func TestTaxonomyFileAdapterMissingFile(t *testing.T) {
	adapter := NewTaxonomyFileAdapter()
	err := adapter.LoadTaxonomy(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "failed to read taxonomy file")
}

func TestDefaultTaxonomyYAMLIsCopy(t *testing.T) {
	data := DefaultTaxonomyYAML()
	require.NotEmpty(t, data)
	data[0] = 'X'
	assert.NotEqual(t, byte('X'), DefaultTaxonomyYAML()[0])
}

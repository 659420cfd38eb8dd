package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classmerge/internal/adapters"
	"classmerge/internal/types"
)

func validTaxonomy() types.TaxonomyFile {
	return types.TaxonomyFile{
		SchemaVersion: "1.0",
		Name:          "test",
		Groups: []types.ClassGroup{
			{Name: "p", Matches: []string{"p-*"}, Values: []types.ValueKind{types.ValueKindLength}, Conflicts: []string{"pt"}},
			{Name: "pt", Matches: []string{"pt-*"}, Values: []types.ValueKind{types.ValueKindLength}},
			{Name: "display", Matches: []string{"block", "flex"}},
		},
	}
}

func TestValidateTaxonomyAcceptsDefault(t *testing.T) {
	source := adapters.NewTaxonomyFileAdapter()
	require.NoError(t, source.LoadDefault())
	require.NoError(t, NewTaxonomyCompiler().ValidateTaxonomy(t.Context(), source.Taxonomy()))
}

func TestValidateTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.TaxonomyFile)
		wantErr string
	}{
		{name: "valid", mutate: func(*types.TaxonomyFile) {}},
		{
			name:    "no groups",
			mutate:  func(tf *types.TaxonomyFile) { tf.Groups = nil },
			wantErr: "at least one group",
		},
		{
			name: "duplicate group",
			mutate: func(tf *types.TaxonomyFile) {
				tf.Groups = append(tf.Groups, types.ClassGroup{Name: "p", Matches: []string{"pad-*"}})
			},
			wantErr: "duplicate taxonomy group: p",
		},
		{
			name:    "self conflict",
			mutate:  func(tf *types.TaxonomyFile) { tf.Groups[1].Conflicts = []string{"pt"} },
			wantErr: "lists itself as a conflict",
		},
		{
			name:    "unknown conflict",
			mutate:  func(tf *types.TaxonomyFile) { tf.Groups[0].Conflicts = []string{"px"} },
			wantErr: "conflicts with unknown group px",
		},
		{
			name:    "unknown postfix conflict",
			mutate:  func(tf *types.TaxonomyFile) { tf.Groups[0].PostfixConflicts = []string{"leading"} },
			wantErr: "conflicts with unknown group leading",
		},
		{
			name:    "empty name",
			mutate:  func(tf *types.TaxonomyFile) { tf.Groups[2].Name = "" },
			wantErr: "name must be set",
		},
		{
			name:    "no matches",
			mutate:  func(tf *types.TaxonomyFile) { tf.Groups[2].Matches = nil },
			wantErr: "must declare matches",
		},
		{
			name:    "bad pattern",
			mutate:  func(tf *types.TaxonomyFile) { tf.Groups[2].Matches = []string{"fl*ex"} },
			wantErr: "invalid pattern",
		},
		{
			name:    "bad value kind",
			mutate:  func(tf *types.TaxonomyFile) { tf.Groups[1].Values = []types.ValueKind{"size"} },
			wantErr: "invalid value kind",
		},
		{
			name: "shared exact pattern only warns",
			mutate: func(tf *types.TaxonomyFile) {
				tf.Groups = append(tf.Groups, types.ClassGroup{Name: "visibility", Matches: []string{"block"}})
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxonomy := validTaxonomy()
			tt.mutate(&taxonomy)
			err := NewTaxonomyCompiler().ValidateTaxonomy(t.Context(), taxonomy)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

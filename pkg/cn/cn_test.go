package cn_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classmerge/internal/testutil"
	"classmerge/pkg/cn"
)

func TestCN(t *testing.T) {
	tests := []struct {
		name   string
		inputs []any
		want   string
	}{
		{name: "empty", inputs: nil, want: ""},
		{name: "plain", inputs: []any{"a", "b"}, want: "a b"},
		{name: "falsy", inputs: []any{"a", false, nil, "b"}, want: "a b"},
		{name: "toggles", inputs: []any{cn.Toggles{{Class: "a", On: true}, {Class: "b"}}}, want: "a"},
		{name: "later wins", inputs: []any{"pt-2", "pt-4"}, want: "pt-4"},
		{name: "later wins reversed", inputs: []any{"pt-4", "pt-2"}, want: "pt-2"},
		{name: "shorthand after side", inputs: []any{"pt-2 p-4"}, want: "p-4"},
		{name: "side after shorthand", inputs: []any{"p-4 pt-2"}, want: "p-4 pt-2"},
		{name: "variants", inputs: []any{"hover:pt-2", "pt-4"}, want: "hover:pt-2 pt-4"},
		{name: "size and color", inputs: []any{"text-lg text-red-500"}, want: "text-lg text-red-500"},
		{name: "duplicates", inputs: []any{"card", "card active"}, want: "card active"},
		{name: "unsupported", inputs: []any{3, struct{}{}, "a"}, want: "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cn.CN(tt.inputs...))
		})
	}
}

func TestCNIdempotent(t *testing.T) {
	once := cn.CN("px-2 py-1 bg-red-500", cn.Toggle{Class: "p-3 bg-blue-500", On: true}, "hover:bg-red-600")
	assert.Equal(t, once, cn.Merge(once))
}

func TestJoinDoesNotResolve(t *testing.T) {
	assert.Equal(t, "pt-2 pt-4", cn.Join("pt-2", false, "pt-4"))
}

func TestNewResolverWithTaxonomy(t *testing.T) {
	resolver, err := cn.NewResolver(cn.Options{
		TaxonomyFiles: []string{testutil.WriteTaxonomy(t, testutil.SpacingTaxonomy)},
		SkipDefault:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "text-lg p-4 text-sm", resolver.CN("pt-2 text-lg", "p-4 text-sm"))
	assert.Equal(t, "tone-red-500", resolver.Merge("tone-blue-500 tone-red-500"))
}

func TestNewResolverErrors(t *testing.T) {
	_, err := cn.NewResolver(cn.Options{SkipDefault: true})
	require.Error(t, err)

	_, err = cn.NewResolver(cn.Options{TaxonomyFiles: []string{filepath.Join(t.TempDir(), "missing.yaml")}})
	require.Error(t, err)
}

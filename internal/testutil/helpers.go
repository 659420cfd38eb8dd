// Package testutil provides shared test helpers for taxonomy fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SpacingTaxonomy is a small self-contained taxonomy: padding shorthands
// override their sides, and "tone-*" colors are a separate group.
const SpacingTaxonomy = `schema_version: "1.0"
name: spacing
groups:
  - name: p
    matches: ["p-*"]
    values: [length]
    conflicts: [px, pt]
  - name: px
    matches: ["px-*"]
    values: [length]
  - name: pt
    matches: ["pt-*"]
    values: [length]
  - name: tone
    matches: ["tone-*"]
    values: [color]
`

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteTaxonomy writes a taxonomy file into a fresh temp dir.
func WriteTaxonomy(t *testing.T, content string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "taxonomy.yaml", content)
}

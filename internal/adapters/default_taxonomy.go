package adapters

import _ "embed"

// DefaultTaxonomyLayer is the layer name reported for the bundled taxonomy.
const DefaultTaxonomyLayer = "builtin:tailwind-v4"

//go:embed taxonomy/default.yaml
var defaultTaxonomy []byte

// DefaultTaxonomyYAML returns a copy of the bundled taxonomy document.
func DefaultTaxonomyYAML() []byte {
	return append([]byte(nil), defaultTaxonomy...)
}

package ports

import "classmerge/internal/types"

// TaxonomySourcePort loads style taxonomies from layered sources.
//
// Each load adds a new layer.  When several layers define a group with the
// same name, the last-loaded layer wins.  This enables
// default -> project -> component precedence.
type TaxonomySourcePort interface {
	// LoadDefault loads the taxonomy bundled with the binary.
	LoadDefault() error

	// LoadTaxonomy loads a taxonomy.yaml file and merges its groups.
	LoadTaxonomy(path string) error

	// Taxonomy returns the merged taxonomy of all loaded layers.
	Taxonomy() types.TaxonomyFile

	// Layers returns the loaded layer names in load order.
	Layers() []string
}

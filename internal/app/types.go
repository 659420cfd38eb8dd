package app

import "classmerge/internal/types"

// TaxonomyRequest selects the taxonomy layers a use case runs against.
// The bundled default is loaded first unless SkipDefault is set.
type TaxonomyRequest struct {
	TaxonomyFiles []string
	SkipDefault   bool
}

type MergeRequest struct {
	TaxonomyRequest
	Inputs []string
	// PerInput merges every input separately instead of as one list.
	PerInput  bool
	CacheSize int
}

type MergeResult struct {
	Classes string
	// Lines holds one merged class list per input when PerInput is set.
	Lines []string
}

type ExplainRequest struct {
	TaxonomyRequest
	Inputs []string
	// OutputDir, when set, receives merge-report.yaml.
	OutputDir string
}

type ExplainResult struct {
	Report types.MergeReport
}

type ValidateRequest struct {
	TaxonomyRequest
	// DumpDir, when set, receives the effective taxonomy.yaml.
	DumpDir string
}

type ValidateResult struct {
	Name   string
	Groups int
	Layers []string
}

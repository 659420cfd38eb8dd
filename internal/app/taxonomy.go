package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"classmerge/internal/core"
	"classmerge/internal/policies"
	"classmerge/internal/ports"
	"classmerge/internal/shared"
)

// NewMerger loads the requested taxonomy layers, validates the merged
// result and returns a Merger backed by it.
func (s Service) NewMerger(ctx context.Context, req TaxonomyRequest, cacheSize int) (core.Merger, error) {
	source, err := s.loadTaxonomy(ctx, req)
	if err != nil {
		return core.Merger{}, err
	}
	policy := policies.NewTaxonomyPolicy(source.Taxonomy())
	return core.NewMerger(policy, cacheSize), nil
}

func (s Service) loadTaxonomy(ctx context.Context, req TaxonomyRequest) (ports.TaxonomySourcePort, error) {
	if s.TaxonomySource == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("service requires a taxonomy source")
	}
	files := shared.CompactStrings(req.TaxonomyFiles)
	if req.SkipDefault && len(files) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no taxonomy to load: default skipped and no taxonomy files given")
	}

	source := s.TaxonomySource()
	if !req.SkipDefault {
		if err := source.LoadDefault(); err != nil {
			return nil, err
		}
	}
	for _, path := range files {
		if err := source.LoadTaxonomy(path); err != nil {
			return nil, err
		}
	}
	if err := s.Compiler.ValidateTaxonomy(ctx, source.Taxonomy()); err != nil {
		return nil, err
	}
	return source, nil
}

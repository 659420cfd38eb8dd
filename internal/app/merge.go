package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

func (s Service) Merge(ctx context.Context, req MergeRequest) (MergeResult, error) {
	merger, err := s.NewMerger(ctx, req.TaxonomyRequest, req.CacheSize)
	if err != nil {
		return MergeResult{}, err
	}
	if !req.PerInput {
		classes := merger.Merge(strings.Join(req.Inputs, " "))
		log.Ctx(ctx).Debug().Int("inputs", len(req.Inputs)).Str("classes", classes).Msg("class list merged")
		return MergeResult{Classes: classes}, nil
	}
	lines := make([]string, 0, len(req.Inputs))
	for _, input := range req.Inputs {
		lines = append(lines, merger.Merge(input))
	}
	return MergeResult{Classes: strings.Join(lines, "\n"), Lines: lines}, nil
}

func (s Service) Explain(ctx context.Context, req ExplainRequest) (ExplainResult, error) {
	merger, err := s.NewMerger(ctx, req.TaxonomyRequest, 0)
	if err != nil {
		return ExplainResult{}, err
	}
	report := merger.Explain(strings.Join(req.Inputs, " "))
	if dir := strings.TrimSpace(req.OutputDir); dir != "" {
		writer, err := s.writer(dir)
		if err != nil {
			return ExplainResult{}, err
		}
		if err := writer.WriteMergeReport(report); err != nil {
			return ExplainResult{}, err
		}
		log.Ctx(ctx).Info().Str("dir", dir).Msg("merge report written")
	}
	return ExplainResult{Report: report}, nil
}

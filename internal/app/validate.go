package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"classmerge/internal/ports"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	source, err := s.loadTaxonomy(ctx, req.TaxonomyRequest)
	if err != nil {
		return ValidateResult{}, err
	}
	taxonomy := source.Taxonomy()
	if dir := strings.TrimSpace(req.DumpDir); dir != "" {
		writer, err := s.writer(dir)
		if err != nil {
			return ValidateResult{}, err
		}
		if err := writer.WriteTaxonomy(taxonomy); err != nil {
			return ValidateResult{}, err
		}
		log.Ctx(ctx).Info().Str("dir", dir).Msg("effective taxonomy written")
	}
	return ValidateResult{
		Name:   taxonomy.Name,
		Groups: len(taxonomy.Groups),
		Layers: source.Layers(),
	}, nil
}

func (s Service) writer(dir string) (ports.ReportWriterPort, error) {
	if s.Output == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("service requires an output writer")
	}
	return s.Output(dir), nil
}

package app

import (
	"classmerge/internal/adapters"
	"classmerge/internal/core"
	"classmerge/internal/ports"
)

type Service struct {
	// TaxonomySource returns a fresh, empty source per use case; sources
	// accumulate layers and must not be shared between requests.
	TaxonomySource func() ports.TaxonomySourcePort
	Output         func(dir string) ports.ReportWriterPort
	Compiler       core.TaxonomyCompiler
}

func NewService() Service {
	return Service{
		TaxonomySource: func() ports.TaxonomySourcePort {
			return adapters.NewTaxonomyFileAdapter()
		},
		Output: func(dir string) ports.ReportWriterPort {
			return adapters.NewOutputFileAdapter(dir)
		},
		Compiler: core.NewTaxonomyCompiler(),
	}
}

package ports

import "classmerge/internal/types"

type ReportWriterPort interface {
	WriteMergeReport(report types.MergeReport) error
	WriteTaxonomy(taxonomy types.TaxonomyFile) error
}

package adapters

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"classmerge/internal/ports"
	"classmerge/internal/types"
)

const (
	MergeReportFile  = "merge-report.yaml"
	TaxonomyDumpFile = "taxonomy.yaml"
)

type OutputFileAdapter struct {
	Dir string
}

func NewOutputFileAdapter(dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir}
}

func (a OutputFileAdapter) WriteMergeReport(report types.MergeReport) error {
	return a.writeYAML(MergeReportFile, report)
}

// WriteTaxonomy writes the effective taxonomy after all layers were
// applied.  The result loads back as a single layer.
func (a OutputFileAdapter) WriteTaxonomy(taxonomy types.TaxonomyFile) error {
	return a.writeYAML(TaxonomyDumpFile, taxonomy)
}

func (a OutputFileAdapter) writeYAML(filename string, value any) error {
	path, err := a.ensurePath(filename)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode " + filename).
			WithCause(err)
	}
	if err := encoder.Close(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode " + filename).
			WithCause(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + path).
			WithCause(err)
	}
	return nil
}

func (a OutputFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

var _ ports.ReportWriterPort = OutputFileAdapter{}

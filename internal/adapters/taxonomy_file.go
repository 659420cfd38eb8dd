package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"classmerge/internal/policies"
	"classmerge/internal/ports"
	"classmerge/internal/types"
)

// SupportedSchemaVersions is the range of taxonomy schema_version values
// this build understands.
const SupportedSchemaVersions = ">=1.0,<2.0"

// TaxonomyFileAdapter implements TaxonomySourcePort using layered
// taxonomy.yaml files.  Each load merges groups into the internal table;
// later loads replace earlier groups with the same name.
type TaxonomyFileAdapter struct {
	name        string
	description string
	version     string

	// groups keeps declaration order; index maps a group name to its slot.
	groups []types.ClassGroup
	index  map[string]int

	// layers tracks load order for debugging / provenance.
	layers []string
}

func NewTaxonomyFileAdapter() *TaxonomyFileAdapter {
	return &TaxonomyFileAdapter{
		index: make(map[string]int),
	}
}

func (a *TaxonomyFileAdapter) LoadDefault() error {
	return a.loadBytes(DefaultTaxonomyLayer, defaultTaxonomy)
}

// LoadTaxonomy reads a taxonomy.yaml file and merges its groups.
func (a *TaxonomyFileAdapter) LoadTaxonomy(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read taxonomy file: " + path).
			WithCause(err)
	}
	return a.loadBytes(path, data)
}

func (a *TaxonomyFileAdapter) Taxonomy() types.TaxonomyFile {
	groups := make([]types.ClassGroup, len(a.groups))
	copy(groups, a.groups)
	return types.TaxonomyFile{
		SchemaVersion: a.version,
		Name:          a.name,
		Description:   a.description,
		Groups:        groups,
	}
}

func (a *TaxonomyFileAdapter) Layers() []string {
	return append([]string(nil), a.layers...)
}

func (a *TaxonomyFileAdapter) loadBytes(layer string, data []byte) error {
	var taxonomy types.TaxonomyFile
	if err := yaml.Unmarshal(data, &taxonomy); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse taxonomy file: " + layer).
			WithCause(err)
	}
	if err := checkSchemaVersion(layer, taxonomy.SchemaVersion); err != nil {
		return err
	}

	// Validate the whole layer before touching the merged table so a bad
	// file never leaves a half-applied layer behind.
	for i := range taxonomy.Groups {
		if err := normalizeGroup(layer, &taxonomy.Groups[i]); err != nil {
			return err
		}
	}

	for _, group := range taxonomy.Groups {
		if idx, exists := a.index[group.Name]; exists {
			log.Debug().
				Str("group", group.Name).
				Str("layer", layer).
				Msg("taxonomy group overridden by later layer")
			a.groups[idx] = group
			continue
		}
		a.index[group.Name] = len(a.groups)
		a.groups = append(a.groups, group)
	}

	if taxonomy.Name != "" {
		a.name = taxonomy.Name
	}
	if taxonomy.Description != "" {
		a.description = taxonomy.Description
	}
	a.version = taxonomy.SchemaVersion
	a.layers = append(a.layers, layer)
	log.Debug().
		Str("layer", layer).
		Int("groups", len(taxonomy.Groups)).
		Int("total", len(a.groups)).
		Msg("taxonomy layer loaded")

	return nil
}

func checkSchemaVersion(layer string, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("taxonomy file missing schema_version: " + layer)
	}
	version, err := pep440.Parse(trimmed)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("taxonomy file has invalid schema_version '" + trimmed + "': " + layer).
			WithCause(err)
	}
	supported, err := pep440.NewSpecifiers(SupportedSchemaVersions)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("invalid supported schema range").
			WithCause(err)
	}
	if !supported.Check(version) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported schema_version %s (want %s): %s", trimmed, SupportedSchemaVersions, layer))
	}
	return nil
}

func normalizeGroup(layer string, group *types.ClassGroup) error {
	group.Name = strings.TrimSpace(group.Name)
	if group.Name == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("taxonomy group with empty name in " + layer)
	}
	if len(group.Matches) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("taxonomy group '" + group.Name + "' has no matches in " + layer)
	}
	for i, pattern := range group.Matches {
		group.Matches[i] = strings.TrimSpace(pattern)
		if !policies.ValidPattern(group.Matches[i]) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("taxonomy group '" + group.Name + "' has invalid pattern '" + pattern + "' in " + layer)
		}
	}
	for _, kind := range group.Values {
		if !policies.IsKnownValueKind(kind) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("taxonomy group '" + group.Name + "' has invalid value kind '" + string(kind) + "' in " + layer)
		}
	}
	group.Conflicts = trimAll(group.Conflicts)
	group.PostfixConflicts = trimAll(group.PostfixConflicts)
	return nil
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

var _ ports.TaxonomySourcePort = (*TaxonomyFileAdapter)(nil)

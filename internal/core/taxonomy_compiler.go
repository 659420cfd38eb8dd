package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"classmerge/internal/policies"
	"classmerge/internal/types"
)

type TaxonomyCompiler struct{}

func NewTaxonomyCompiler() TaxonomyCompiler {
	return TaxonomyCompiler{}
}

// ValidateTaxonomy checks a merged taxonomy for structural problems that
// single layers cannot detect: duplicate group names and conflict
// references to groups that do not exist.
func (c TaxonomyCompiler) ValidateTaxonomy(ctx context.Context, taxonomy types.TaxonomyFile) error {
	assert.NotEmpty(ctx, taxonomy.SchemaVersion, "schema_version must be set")
	if len(taxonomy.Groups) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("taxonomy must define at least one group")
	}

	names := make(map[string]struct{}, len(taxonomy.Groups))
	for _, group := range taxonomy.Groups {
		if err := validateClassGroup(group); err != nil {
			return err
		}
		if _, dup := names[group.Name]; dup {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate taxonomy group: %s", group.Name))
		}
		names[group.Name] = struct{}{}
	}

	exactOwner := map[string]string{}
	for _, group := range taxonomy.Groups {
		if err := validateConflicts(group, group.Conflicts, names); err != nil {
			return err
		}
		if err := validateConflicts(group, group.PostfixConflicts, names); err != nil {
			return err
		}
		for _, pattern := range group.Matches {
			if pattern == "*" || pattern[len(pattern)-1] == '*' {
				continue
			}
			if owner, ok := exactOwner[pattern]; ok {
				log.Ctx(ctx).Warn().
					Str("pattern", pattern).
					Str("group", group.Name).
					Str("owner", owner).
					Msg("exact pattern already claimed by earlier group")
				continue
			}
			exactOwner[pattern] = group.Name
		}
	}

	log.Ctx(ctx).Debug().
		Str("taxonomy", taxonomy.Name).
		Int("groups", len(taxonomy.Groups)).
		Msg("taxonomy validated")
	return nil
}

func validateClassGroup(group types.ClassGroup) error {
	if group.Name == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("taxonomy group name must be set")
	}
	if len(group.Matches) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("taxonomy group %s must declare matches", group.Name))
	}
	for _, pattern := range group.Matches {
		if !policies.ValidPattern(pattern) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("taxonomy group %s has invalid pattern %q", group.Name, pattern))
		}
	}
	for _, kind := range group.Values {
		if !policies.IsKnownValueKind(kind) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("taxonomy group %s has invalid value kind %q", group.Name, kind))
		}
	}
	return nil
}

func validateConflicts(group types.ClassGroup, conflicts []string, names map[string]struct{}) error {
	for _, conflict := range conflicts {
		if conflict == group.Name {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("taxonomy group %s lists itself as a conflict", group.Name))
		}
		if _, ok := names[conflict]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("taxonomy group %s conflicts with unknown group %s", group.Name, conflict))
		}
	}
	return nil
}

package policies

import (
	"sort"
	"strings"

	"classmerge/internal/ports"
	"classmerge/internal/types"
)

type TaxonomyPolicy struct {
	Name      string
	Groups    []types.ClassGroup
	exact     map[string]int
	prefixes  []prefixPattern
	wildcard  int
	conflicts map[string][]string
	postfix   map[string][]string
}

func NewTaxonomyPolicy(taxonomy types.TaxonomyFile) TaxonomyPolicy {
	policy := TaxonomyPolicy{
		Name:     taxonomy.Name,
		Groups:   append([]types.ClassGroup(nil), taxonomy.Groups...),
		wildcard: -1,
	}
	policy.compile()
	return policy
}

// Classify resolves base to a group.  Exact tokens win over prefix
// patterns; longer prefixes win over shorter ones; equal prefixes are
// tried in declaration order and the first group whose value constraints
// accept the remainder wins.
func (p TaxonomyPolicy) Classify(base string) (string, bool) {
	if base == "" {
		return "", false
	}
	if idx, found := p.exact[base]; found {
		return p.Groups[idx].Name, true
	}
	for _, entry := range p.prefixes {
		if len(base) <= len(entry.prefix) || !strings.HasPrefix(base, entry.prefix) {
			continue
		}
		group := p.Groups[entry.groupIndex]
		if acceptsValue(group, base[len(entry.prefix):]) {
			return group.Name, true
		}
	}
	if p.wildcard >= 0 && p.wildcard < len(p.Groups) {
		return p.Groups[p.wildcard].Name, true
	}
	return "", false
}

func (p TaxonomyPolicy) ConflictsOf(group string) []string {
	return p.conflicts[group]
}

func (p TaxonomyPolicy) PostfixConflictsOf(group string) []string {
	return p.postfix[group]
}

type prefixPattern struct {
	prefix     string
	groupIndex int
}

type patternKind int

const (
	patternExact patternKind = iota
	patternPrefix
	patternWildcard
	patternInvalid
)

func (p *TaxonomyPolicy) compile() {
	p.exact = map[string]int{}
	p.prefixes = nil
	p.wildcard = -1
	p.conflicts = map[string][]string{}
	p.postfix = map[string][]string{}
	for idx, group := range p.Groups {
		if len(group.Conflicts) > 0 {
			p.conflicts[group.Name] = group.Conflicts
		}
		if len(group.PostfixConflicts) > 0 {
			p.postfix[group.Name] = group.PostfixConflicts
		}
		for _, pattern := range group.Matches {
			name, kind := parsePattern(pattern)
			switch kind {
			case patternWildcard:
				if p.wildcard < 0 {
					p.wildcard = idx
				}
			case patternExact:
				if _, ok := p.exact[name]; !ok {
					p.exact[name] = idx
				}
			case patternPrefix:
				p.prefixes = append(p.prefixes, prefixPattern{prefix: name, groupIndex: idx})
			}
		}
	}
	sort.SliceStable(p.prefixes, func(i, j int) bool {
		return len(p.prefixes[i].prefix) > len(p.prefixes[j].prefix)
	})
}

// parsePattern splits a match pattern into its name and kind.  "pt-*" is
// a prefix pattern for "pt-", "*" is the wildcard and anything else is an
// exact token.
func parsePattern(value string) (string, patternKind) {
	pattern := strings.TrimSpace(value)
	if pattern == "" || strings.ContainsAny(pattern, " \t\n") {
		return "", patternInvalid
	}
	if pattern == "*" {
		return "", patternWildcard
	}
	if strings.HasSuffix(pattern, "*") {
		prefix := strings.TrimSuffix(pattern, "*")
		if strings.Contains(prefix, "*") {
			return "", patternInvalid
		}
		return prefix, patternPrefix
	}
	if strings.Contains(pattern, "*") {
		return "", patternInvalid
	}
	return pattern, patternExact
}

// ValidPattern reports whether value is a usable match pattern.
func ValidPattern(value string) bool {
	_, kind := parsePattern(value)
	return kind != patternInvalid
}

var _ ports.ClassifierPort = TaxonomyPolicy{}

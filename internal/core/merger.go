package core

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"classmerge/internal/ports"
	"classmerge/internal/types"
)

// DefaultCacheSize is the number of merged class lists memoized by default.
const DefaultCacheSize = 500

const scopeSeparator = "\x00"

// Merger resolves class lists against a style taxonomy.  The zero value
// has no classifier and only collapses exact duplicates.
//
// A Merger is safe for concurrent use; the optional result cache is
// internally synchronized.
type Merger struct {
	Classifier ports.ClassifierPort
	cache      *lru.Cache[string, string]
}

// NewMerger returns a Merger backed by classifier.  cacheSize <= 0
// disables the result cache.
func NewMerger(classifier ports.ClassifierPort, cacheSize int) Merger {
	merger := Merger{Classifier: classifier}
	if cacheSize > 0 {
		if cache, err := lru.New[string, string](cacheSize); err == nil {
			merger.cache = cache
		}
	}
	return merger
}

// Resolve flattens inputs and merges the resulting class list.  It never
// fails; unsupported inputs contribute nothing.
func (m Merger) Resolve(inputs ...any) string {
	return m.Merge(Join(inputs...))
}

// Merge resolves a whitespace-separated class list.  Scanning from the
// end, a class whose group is already claimed in the same modifier scope
// is dropped; unknown classes survive and only collapse exact duplicates.
func (m Merger) Merge(classList string) string {
	if m.cache != nil {
		if cached, ok := m.cache.Get(classList); ok {
			return cached
		}
	}
	tokens := strings.Fields(classList)
	decisions := m.decide(tokens)
	kept := make([]string, 0, len(tokens))
	for _, decision := range decisions {
		if decision.Kept {
			kept = append(kept, decision.Class)
		}
	}
	result := strings.Join(kept, " ")
	if m.cache != nil {
		m.cache.Add(classList, result)
	}
	return result
}

// Explain merges classList and reports the decision taken for each token,
// in input order.
func (m Merger) Explain(classList string) types.MergeReport {
	tokens := strings.Fields(classList)
	decisions := m.decide(tokens)
	kept := make([]string, 0, len(tokens))
	for _, decision := range decisions {
		if decision.Kept {
			kept = append(kept, decision.Class)
		}
	}
	return types.MergeReport{
		Classes:   strings.Join(kept, " "),
		Decisions: decisions,
	}
}

func (m Merger) decide(tokens []string) []types.MergeDecision {
	decisions := make([]types.MergeDecision, len(tokens))
	claimed := make(map[string]string, len(tokens))
	seen := make(map[string]struct{}, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		decision := types.MergeDecision{Class: token}
		parsed := ParseClass(token)
		group, hasPostfix, ok := m.classify(parsed)
		if !ok {
			if _, dup := seen[token]; dup {
				decision.Reason = types.DecisionReasonDuplicate
				decision.OverriddenBy = token
			} else {
				seen[token] = struct{}{}
				decision.Kept = true
				decision.Reason = types.DecisionReasonUnassigned
			}
			decisions[i] = decision
			continue
		}

		scope := modifierScope(parsed)
		decision.Group = group
		decision.Scope = scope
		key := scope + scopeSeparator + group
		if winner, taken := claimed[key]; taken {
			decision.OverriddenBy = winner
			decision.Reason = types.DecisionReasonConflict
			if winner == token {
				decision.Reason = types.DecisionReasonDuplicate
			}
			decisions[i] = decision
			continue
		}

		claimed[key] = token
		if m.Classifier != nil {
			m.claimConflicts(claimed, scope, m.Classifier.ConflictsOf(group), token)
			if hasPostfix {
				m.claimConflicts(claimed, scope, m.Classifier.PostfixConflictsOf(group), token)
			}
		}
		decision.Kept = true
		decision.Reason = types.DecisionReasonKept
		decisions[i] = decision
	}
	return decisions
}

func (m Merger) claimConflicts(claimed map[string]string, scope string, groups []string, token string) {
	for _, group := range groups {
		key := scope + scopeSeparator + group
		if _, taken := claimed[key]; !taken {
			claimed[key] = token
		}
	}
}

// classify resolves the group of a parsed class.  The base without its
// postfix is tried first ("text-lg/7" is a font size carrying a line
// height); the full base is the fallback.
func (m Merger) classify(parsed types.ParsedClass) (string, bool, bool) {
	if property, ok := arbitraryProperty(parsed.Base); ok && parsed.Postfix == "" {
		return "[" + property + "]", false, true
	}
	if m.Classifier == nil {
		return "", false, false
	}
	if group, ok := m.Classifier.Classify(parsed.Base); ok {
		return group, parsed.Postfix != "", true
	}
	if parsed.Postfix == "" {
		return "", false, false
	}
	if group, ok := m.Classifier.Classify(parsed.Base + "/" + parsed.Postfix); ok {
		return group, false, true
	}
	return "", false, false
}

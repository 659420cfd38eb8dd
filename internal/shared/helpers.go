// Package shared provides small string helpers used by the app and cli
// packages.
package shared

import "strings"

// CompactStrings trims every value and drops the empty ones, keeping
// order.
func CompactStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// NormalizeClassList collapses runs of whitespace, including newlines and
// tabs, into single spaces.
func NormalizeClassList(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

package core

import (
	"sort"
	"strings"

	"github.com/a-h/templ"

	"classmerge/internal/types"
)

// maxInputDepth bounds recursion into nested sequences.  A []any can hold
// itself, and such inputs must still produce a result.
const maxInputDepth = 32

// Flatten expands class inputs left to right into individual tokens.
//
// Accepted shapes are strings (split on whitespace), sequences ([]string,
// []any, templ.CSSClasses), conditional mappings (types.Toggle,
// types.Toggles, map[string]bool, map[string]any, templ.KeyValue) and
// templ.CSSClass values.  Go maps are expanded in sorted key order; use
// types.Toggles when declaration order matters.  Anything else, including
// nil and booleans, contributes nothing.
func Flatten(inputs ...any) []string {
	var tokens []string
	for _, input := range inputs {
		tokens = appendInput(tokens, input, 0)
	}
	return tokens
}

// Join flattens inputs and joins them without conflict resolution.
func Join(inputs ...any) string {
	return strings.Join(Flatten(inputs...), " ")
}

func appendInput(tokens []string, input any, depth int) []string {
	if depth > maxInputDepth {
		return tokens
	}
	switch value := input.(type) {
	case nil, bool:
		return tokens
	case string:
		return append(tokens, strings.Fields(value)...)
	case []string:
		for _, item := range value {
			tokens = append(tokens, strings.Fields(item)...)
		}
	case []any:
		for _, item := range value {
			tokens = appendInput(tokens, item, depth+1)
		}
	case templ.CSSClasses:
		for _, item := range value {
			tokens = appendInput(tokens, item, depth+1)
		}
	case types.Toggle:
		if value.On {
			tokens = append(tokens, strings.Fields(value.Class)...)
		}
	case types.Toggles:
		for _, toggle := range value {
			if toggle.On {
				tokens = append(tokens, strings.Fields(toggle.Class)...)
			}
		}
	case templ.KeyValue[string, bool]:
		if value.Value {
			tokens = append(tokens, strings.Fields(value.Key)...)
		}
	case map[string]bool:
		for _, key := range sortedKeys(value) {
			if value[key] {
				tokens = append(tokens, strings.Fields(key)...)
			}
		}
	case map[string]any:
		for _, key := range sortedKeys(value) {
			if truthy(value[key]) {
				tokens = append(tokens, strings.Fields(key)...)
			}
		}
	case templ.CSSClass:
		tokens = append(tokens, strings.Fields(value.ClassName())...)
	}
	return tokens
}

func sortedKeys[V any](values map[string]V) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	case uint32:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}

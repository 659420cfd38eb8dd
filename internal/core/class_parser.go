package core

import (
	"sort"
	"strings"

	"classmerge/internal/types"
)

// ParseClass splits a class token into modifiers, important marker,
// negative sign, base and postfix.  Separators inside [...] and (...) are
// part of arbitrary values and are ignored.
func ParseClass(token string) types.ParsedClass {
	parsed := types.ParsedClass{Raw: token}

	bracketDepth, parenDepth := 0, 0
	start := 0
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '[':
			bracketDepth++
		case ']':
			if bracketDepth > 0 {
				bracketDepth--
			}
		case '(':
			parenDepth++
		case ')':
			if parenDepth > 0 {
				parenDepth--
			}
		case ':':
			if bracketDepth == 0 && parenDepth == 0 {
				parsed.Modifiers = append(parsed.Modifiers, token[start:i])
				start = i + 1
			}
		}
	}

	base := token[start:]
	if strings.HasPrefix(base, "!") {
		parsed.Important = true
		base = base[1:]
	} else if strings.HasSuffix(base, "!") {
		parsed.Important = true
		base = base[:len(base)-1]
	}
	if len(base) > 1 && base[0] == '-' {
		parsed.Negative = true
		base = base[1:]
	}
	if idx := lastTopLevelSlash(base); idx > 0 && idx < len(base)-1 {
		parsed.Postfix = base[idx+1:]
		base = base[:idx]
	}
	parsed.Base = base
	return parsed
}

func lastTopLevelSlash(value string) int {
	bracketDepth, parenDepth := 0, 0
	last := -1
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '[':
			bracketDepth++
		case ']':
			if bracketDepth > 0 {
				bracketDepth--
			}
		case '(':
			parenDepth++
		case ')':
			if parenDepth > 0 {
				parenDepth--
			}
		case '/':
			if bracketDepth == 0 && parenDepth == 0 {
				last = i
			}
		}
	}
	return last
}

// SortModifiers normalizes modifier order so that "hover:focus:" and
// "focus:hover:" share a conflict scope.  Arbitrary variants ("[&>*]")
// are order-sensitive and keep their position; only the runs between
// them are sorted.
func SortModifiers(modifiers []string) []string {
	if len(modifiers) <= 1 {
		return modifiers
	}
	sorted := make([]string, 0, len(modifiers))
	var run []string
	for _, modifier := range modifiers {
		if strings.HasPrefix(modifier, "[") {
			sort.Strings(run)
			sorted = append(sorted, run...)
			sorted = append(sorted, modifier)
			run = run[:0]
			continue
		}
		run = append(run, modifier)
	}
	sort.Strings(run)
	return append(sorted, run...)
}

// modifierScope is the conflict scope of a parsed class: its normalized
// modifiers plus the important marker.
func modifierScope(parsed types.ParsedClass) string {
	scope := strings.Join(SortModifiers(parsed.Modifiers), ":")
	if parsed.Important {
		scope += "!"
	}
	return scope
}

// arbitraryProperty returns the property name of an arbitrary property
// class such as "[mask-type:luminance]".
func arbitraryProperty(base string) (string, bool) {
	if len(base) < 5 || base[0] != '[' || base[len(base)-1] != ']' {
		return "", false
	}
	inner := base[1 : len(base)-1]
	idx := strings.Index(inner, ":")
	if idx <= 0 || idx == len(inner)-1 {
		return "", false
	}
	return inner[:idx], true
}

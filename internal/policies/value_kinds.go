package policies

import (
	"regexp"
	"strings"

	"classmerge/internal/types"
)

var (
	numberPattern      = regexp.MustCompile(`^\d+(\.\d+)?$`)
	integerPattern     = regexp.MustCompile(`^\d+$`)
	fractionPattern    = regexp.MustCompile(`^\d+/\d+$`)
	percentPattern     = regexp.MustCompile(`^\d+(\.\d+)?%$`)
	tshirtPattern      = regexp.MustCompile(`^(\d+(\.\d+)?)?(xs|sm|md|lg|xl)$`)
	paletteShade       = regexp.MustCompile(`^([a-z]+)-(50|[1-9]00|950)$`)
	hexColorPattern    = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	colorFuncPattern   = regexp.MustCompile(`^(?:rgba?|hsla?|hwb|(?:ok)?(?:lab|lch)|color-mix)\(.+\)$`)
	lengthValuePattern = regexp.MustCompile(`^-?\d*\.?\d+(?:%|px|r?em|[sdl]?v[hwib]|vmin|vmax|ch|ex|r?lh|cm|mm|in|pt|pc|q|cq[whib]|cqmin|cqmax)?$`)
	lengthFuncPattern  = regexp.MustCompile(`^(?:calc|min|max|clamp)\(.+\)$`)
)

var lengthKeywords = map[string]struct{}{
	"px":     {},
	"full":   {},
	"screen": {},
}

var colorKeywords = map[string]struct{}{
	"inherit":      {},
	"current":      {},
	"currentcolor": {},
	"transparent":  {},
	"black":        {},
	"white":        {},
}

var paletteNames = map[string]struct{}{
	"slate": {}, "gray": {}, "zinc": {}, "neutral": {}, "stone": {},
	"red": {}, "orange": {}, "amber": {}, "yellow": {}, "lime": {},
	"green": {}, "emerald": {}, "teal": {}, "cyan": {}, "sky": {},
	"blue": {}, "indigo": {}, "violet": {}, "purple": {}, "fuchsia": {},
	"pink": {}, "rose": {},
}

var lengthLabels = map[string]struct{}{
	"length":     {},
	"size":       {},
	"percentage": {},
	"number":     {},
}

var knownValueKinds = map[types.ValueKind]struct{}{
	types.ValueKindAny:             {},
	types.ValueKindNumber:          {},
	types.ValueKindInteger:         {},
	types.ValueKindFraction:        {},
	types.ValueKindPercent:         {},
	types.ValueKindLength:          {},
	types.ValueKindTShirt:          {},
	types.ValueKindColor:           {},
	types.ValueKindArbitrary:       {},
	types.ValueKindArbitraryLength: {},
	types.ValueKindArbitraryColor:  {},
}

// IsKnownValueKind reports whether kind is understood by MatchesValueKind.
func IsKnownValueKind(kind types.ValueKind) bool {
	_, ok := knownValueKinds[kind]
	return ok
}

// MatchesValueKind reports whether value, the remainder of a class after a
// prefix pattern, is of the given kind.
func MatchesValueKind(kind types.ValueKind, value string) bool {
	if value == "" {
		return false
	}
	switch kind {
	case types.ValueKindAny:
		return true
	case types.ValueKindNumber:
		return numberPattern.MatchString(value)
	case types.ValueKindInteger:
		return integerPattern.MatchString(value)
	case types.ValueKindFraction:
		return fractionPattern.MatchString(value)
	case types.ValueKindPercent:
		return percentPattern.MatchString(value)
	case types.ValueKindLength:
		return isLength(value)
	case types.ValueKindTShirt:
		return tshirtPattern.MatchString(value)
	case types.ValueKindColor:
		return isColor(value)
	case types.ValueKindArbitrary:
		_, _, ok := splitArbitrary(value)
		return ok
	case types.ValueKindArbitraryLength:
		return isArbitraryLength(value)
	case types.ValueKindArbitraryColor:
		return isArbitraryColor(value)
	default:
		return false
	}
}

func acceptsValue(group types.ClassGroup, value string) bool {
	if value == "" {
		return false
	}
	if len(group.Values) == 0 && len(group.Keywords) == 0 {
		return true
	}
	for _, keyword := range group.Keywords {
		if keyword == value {
			return true
		}
	}
	for _, kind := range group.Values {
		if MatchesValueKind(kind, value) {
			return true
		}
	}
	return false
}

func isLength(value string) bool {
	if _, ok := lengthKeywords[value]; ok {
		return true
	}
	return numberPattern.MatchString(value) || fractionPattern.MatchString(value)
}

func isColor(value string) bool {
	if _, ok := colorKeywords[strings.ToLower(value)]; ok {
		return true
	}
	if match := paletteShade.FindStringSubmatch(value); match != nil {
		_, ok := paletteNames[match[1]]
		return ok
	}
	return isArbitraryColor(value)
}

// splitArbitrary unwraps "[label:content]" values and "(label:--var)"
// variables.  The label is optional.
func splitArbitrary(value string) (string, string, bool) {
	if len(value) < 3 {
		return "", "", false
	}
	open, closing := value[0], value[len(value)-1]
	if !(open == '[' && closing == ']') && !(open == '(' && closing == ')') {
		return "", "", false
	}
	inner := value[1 : len(value)-1]
	if idx := strings.Index(inner, ":"); idx > 0 && isLabel(inner[:idx]) {
		return inner[:idx], inner[idx+1:], inner[idx+1:] != ""
	}
	return "", inner, inner != ""
}

func isLabel(value string) bool {
	for _, r := range value {
		if (r < 'a' || r > 'z') && r != '-' {
			return false
		}
	}
	return value != ""
}

func isArbitraryLength(value string) bool {
	label, content, ok := splitArbitrary(value)
	if !ok {
		return false
	}
	if label != "" {
		_, known := lengthLabels[label]
		return known
	}
	content = strings.ReplaceAll(content, "_", " ")
	return lengthValuePattern.MatchString(content) || lengthFuncPattern.MatchString(content)
}

func isArbitraryColor(value string) bool {
	label, content, ok := splitArbitrary(value)
	if !ok {
		return false
	}
	if label != "" {
		return label == "color"
	}
	return hexColorPattern.MatchString(content) || colorFuncPattern.MatchString(content)
}

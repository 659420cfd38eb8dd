package types

// ParsedClass is a single class token split into its parts.
//
//	hover:md:!-mt-2/50
//	^^^^^^^^^ modifiers  ! important  - negative  mt-2 base  50 postfix
type ParsedClass struct {
	Raw       string
	Modifiers []string
	Important bool
	Negative  bool
	Base      string
	Postfix   string
}

// Toggle is a single conditional class entry.
type Toggle struct {
	Class string
	On    bool
}

// Toggles is an ordered class -> condition mapping.  Unlike a Go map its
// entries are expanded in declaration order.
type Toggles []Toggle

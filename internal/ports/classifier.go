package ports

// ClassifierPort maps a class base (modifiers, important marker and
// negative sign already stripped) to its mutually-exclusive group.
type ClassifierPort interface {
	// Classify returns the group name for base, or ("", false) when the
	// base belongs to no known group.
	Classify(base string) (string, bool)

	// ConflictsOf returns the groups overridden by a surviving class of
	// group.
	ConflictsOf(group string) []string

	// PostfixConflictsOf returns the groups additionally overridden when
	// the surviving class carries a postfix modifier.
	PostfixConflictsOf(group string) []string
}

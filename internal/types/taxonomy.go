package types

// ClassGroup is one mutually-exclusive utility category.  At most one class
// per group survives a merge for a given modifier scope.
type ClassGroup struct {
	Name string `yaml:"name"`

	// Matches lists the token patterns that belong to the group: an exact
	// token ("block"), a prefix pattern ("pt-*") or the wildcard "*".
	Matches []string `yaml:"matches"`

	// Values restricts which remainders a prefix pattern accepts.  An empty
	// list together with empty Keywords accepts any non-empty remainder.
	Values []ValueKind `yaml:"values,omitempty"`

	// Keywords lists literal remainders accepted in addition to Values.
	Keywords []string `yaml:"keywords,omitempty"`

	// Conflicts names the groups a surviving class of this group overrides,
	// e.g. "p" overrides "px", "pt" and friends.
	Conflicts []string `yaml:"conflicts,omitempty"`

	// PostfixConflicts names groups overridden only when the class carries a
	// postfix modifier, e.g. "text-lg/7" also sets the line height.
	PostfixConflicts []string `yaml:"postfix_conflicts,omitempty"`
}

// TaxonomyFile is the top-level structure of a taxonomy.yaml file.
//
// Multiple taxonomy files can be layered on top of the bundled default.
// Later layers replace earlier groups with the same name wholesale and
// append new ones.
type TaxonomyFile struct {
	// SchemaVersion is a PEP 440 version of the file format.
	SchemaVersion string `yaml:"schema_version"`

	// Name identifies the taxonomy, e.g. "tailwind-v4".
	Name string `yaml:"name,omitempty"`

	Description string `yaml:"description,omitempty"`

	Groups []ClassGroup `yaml:"groups"`
}

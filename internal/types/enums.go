package types

// ValueKind names a class of values a prefix pattern accepts after its
// prefix, e.g. "length" for the "2" in "pt-2".
type ValueKind string

const (
	ValueKindAny             ValueKind = "any"
	ValueKindNumber          ValueKind = "number"
	ValueKindInteger         ValueKind = "integer"
	ValueKindFraction        ValueKind = "fraction"
	ValueKindPercent         ValueKind = "percent"
	ValueKindLength          ValueKind = "length"
	ValueKindTShirt          ValueKind = "tshirt"
	ValueKindColor           ValueKind = "color"
	ValueKindArbitrary       ValueKind = "arbitrary"
	ValueKindArbitraryLength ValueKind = "arbitrary-length"
	ValueKindArbitraryColor  ValueKind = "arbitrary-color"
)

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatYAML OutputFormat = "yaml"
)

type DecisionReason string

const (
	DecisionReasonKept       DecisionReason = "kept"
	DecisionReasonConflict   DecisionReason = "conflict"
	DecisionReasonDuplicate  DecisionReason = "duplicate"
	DecisionReasonUnassigned DecisionReason = "unassigned"
)

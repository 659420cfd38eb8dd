package types

// MergeDecision records what happened to one input token during a merge.
type MergeDecision struct {
	Class        string         `yaml:"class" json:"class"`
	Group        string         `yaml:"group,omitempty" json:"group,omitempty"`
	Scope        string         `yaml:"scope,omitempty" json:"scope,omitempty"`
	Kept         bool           `yaml:"kept" json:"kept"`
	Reason       DecisionReason `yaml:"reason" json:"reason"`
	OverriddenBy string         `yaml:"overridden_by,omitempty" json:"overridden_by,omitempty"`
}

// MergeReport is the full result of an explained merge.
type MergeReport struct {
	Classes   string          `yaml:"classes" json:"classes"`
	Decisions []MergeDecision `yaml:"decisions" json:"decisions"`
}

package domain

import (
	"fmt"
	"sort"
)

// Rule is a single transition: the trigger that fires it and the resulting state.
type Rule struct {
	Trigger Trigger `json:"on" yaml:"on" mapstructure:"on"`
	Target  State   `json:"to" yaml:"to" mapstructure:"to"`
}

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.Trigger, r.Target)
}

// RuleTable maps a source state to the ordered rules available from it.
// Position matters: callers select a rule by its index.
type RuleTable map[State][]Rule

// Rules returns a copy of the rules leaving s. A state without rules yields an empty slice.
func (t RuleTable) Rules(s State) []Rule {
	src := t[s]
	out := make([]Rule, len(src))
	copy(out, src)
	return out
}

// Clone returns a deep copy of the table.
func (t RuleTable) Clone() RuleTable {
	out := make(RuleTable, len(t))
	for s := range t {
		out[s] = t.Rules(s)
	}
	return out
}

// States returns the source states present in the table, in declaration order.
func (t RuleTable) States() []State {
	out := make([]State, 0, len(t))
	for s := range t {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Definition is a complete machine blueprint: the rule table plus its entry and exit states.
type Definition struct {
	Initial State
	Exit    State
	Table   RuleTable
}

// Clone returns a deep copy so the receiver can never be mutated through the result.
func (d *Definition) Clone() *Definition {
	return &Definition{
		Initial: d.Initial,
		Exit:    d.Exit,
		Table:   d.Table.Clone(),
	}
}

package dsl

import "github.com/aretw0/offhook/pkg/domain"

// StateBuilder provides a fluent API for the rules leaving one state.
type StateBuilder struct {
	state   domain.State
	rules   []domain.Rule
	builder *Builder
}

// On appends a rule. Rules are selectable by the position they are declared in.
func (s *StateBuilder) On(trigger domain.Trigger, target domain.State) *StateBuilder {
	s.rules = append(s.rules, domain.Rule{Trigger: trigger, Target: target})
	return s
}

// Terminal marks the state as the exit state and drops any rules declared for it.
func (s *StateBuilder) Terminal() *StateBuilder {
	s.rules = nil
	for _, t := range s.builder.terminalOf {
		if t == s.state {
			return s
		}
	}
	s.builder.terminalOf = append(s.builder.terminalOf, s.state)
	return s
}

// From switches to another state, allowing one chained expression per table.
func (s *StateBuilder) From(state domain.State) *StateBuilder {
	return s.builder.From(state)
}

// Build delegates to the parent builder.
func (s *StateBuilder) Build() (*domain.Definition, error) {
	return s.builder.Build()
}

// MustBuild delegates to the parent builder.
func (s *StateBuilder) MustBuild() *domain.Definition {
	return s.builder.MustBuild()
}

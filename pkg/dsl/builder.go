package dsl

import (
	"fmt"

	"github.com/aretw0/offhook/internal/validator"
	"github.com/aretw0/offhook/pkg/domain"
)

// Builder manages the rule table construction.
type Builder struct {
	states     map[domain.State]*StateBuilder
	order      []domain.State
	initial    *domain.State
	exit       *domain.State
	terminalOf []domain.State
}

// New creates a new rule table builder.
func New() *Builder {
	return &Builder{
		states: make(map[domain.State]*StateBuilder),
	}
}

// From starts (or resumes) the rule list of a source state.
// If the state was already declared, it returns the existing builder so rules keep their order.
func (b *Builder) From(s domain.State) *StateBuilder {
	if sb, ok := b.states[s]; ok {
		return sb
	}
	sb := &StateBuilder{state: s, builder: b}
	b.states[s] = sb
	b.order = append(b.order, s)
	return sb
}

// Initial sets the entry state. Defaults to the first state passed to From.
func (b *Builder) Initial(s domain.State) *Builder {
	b.initial = &s
	return b
}

// Exit sets the terminal state. Defaults to the state marked with Terminal.
func (b *Builder) Exit(s domain.State) *Builder {
	b.exit = &s
	return b
}

// Build assembles and validates the definition.
func (b *Builder) Build() (*domain.Definition, error) {
	def := &domain.Definition{
		Table: make(domain.RuleTable, len(b.states)),
	}

	switch {
	case b.initial != nil:
		def.Initial = *b.initial
	case len(b.order) > 0:
		def.Initial = b.order[0]
	default:
		return nil, fmt.Errorf("%w: no states declared", domain.ErrInvalidRuleTable)
	}

	switch {
	case b.exit != nil:
		def.Exit = *b.exit
	case len(b.terminalOf) == 1:
		def.Exit = b.terminalOf[0]
	case len(b.terminalOf) > 1:
		return nil, fmt.Errorf("%w: %d states marked terminal, only one exit state is supported", domain.ErrInvalidRuleTable, len(b.terminalOf))
	default:
		return nil, fmt.Errorf("%w: no exit state declared", domain.ErrInvalidRuleTable)
	}

	for _, s := range b.order {
		rules := b.states[s].rules
		if len(rules) == 0 {
			continue
		}
		def.Table[s] = append([]domain.Rule(nil), rules...)
	}

	if err := validator.ValidateDefinition(def); err != nil {
		return nil, err
	}
	return def, nil
}

// MustBuild is like Build but panics on error. Intended for package-level tables.
func (b *Builder) MustBuild() *domain.Definition {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}

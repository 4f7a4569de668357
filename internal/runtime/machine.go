package runtime

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/offhook/internal/validator"
	"github.com/aretw0/offhook/pkg/domain"
)

// Machine is the phone state machine core.
// It owns an immutable copy of the rule table and a single mutable field, the current state.
// A Machine is meant to be driven by one caller at a time; concurrent callers must
// serialize access to Apply themselves.
type Machine struct {
	rules     domain.RuleTable
	exit      domain.State
	current   domain.State
	sessionID string
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	now       func() time.Time
}

// MachineOption configures the Machine.
type MachineOption func(*Machine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) MachineOption {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) MachineOption {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithSessionID tags events and log lines with a correlation ID.
func WithSessionID(id string) MachineOption {
	return func(m *Machine) {
		m.sessionID = id
	}
}

// withClock replaces time.Now for tests.
func withClock(now func() time.Time) MachineOption {
	return func(m *Machine) {
		m.now = now
	}
}

// NewMachine validates the definition and returns a machine positioned at its initial state.
func NewMachine(def *domain.Definition, opts ...MachineOption) (*Machine, error) {
	if err := validator.ValidateDefinition(def); err != nil {
		return nil, fmt.Errorf("cannot build machine: %w", err)
	}

	m := &Machine{
		rules:   def.Table.Clone(),
		exit:    def.Exit,
		current: def.Initial,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.sessionID != "" {
		m.logger = m.logger.With("session_id", m.sessionID)
	}
	return m, nil
}

// CurrentState returns the state the machine is in.
func (m *Machine) CurrentState() domain.State {
	return m.current
}

// AvailableTransitions returns the rules leaving the current state, in definition order.
// The slice is a copy; an empty result means the machine is terminal.
func (m *Machine) AvailableTransitions() []domain.Rule {
	return m.rules.Rules(m.current)
}

// Apply selects the rule at index among AvailableTransitions and moves to its target.
// An out-of-range index leaves the state untouched and returns a *domain.SelectionError.
func (m *Machine) Apply(index int) (domain.State, error) {
	rules := m.rules[m.current]
	if index < 0 || index >= len(rules) {
		err := &domain.SelectionError{State: m.current, Index: index, Available: len(rules)}
		m.logger.Warn("Selection rejected",
			"state", m.current.Name(),
			"index", index,
			"available", len(rules),
		)
		if m.hooks.OnRejected != nil {
			m.hooks.OnRejected(&domain.RejectionEvent{
				Timestamp: m.now(),
				SessionID: m.sessionID,
				State:     m.current,
				Index:     index,
				Available: len(rules),
			})
		}
		return m.current, err
	}

	rule := rules[index]
	from := m.current
	m.current = rule.Target

	m.logger.Debug("Transition applied",
		"from", from.Name(),
		"to", rule.Target.Name(),
		"trigger", rule.Trigger.Name(),
		"index", index,
	)

	if m.hooks.OnTransition != nil || m.hooks.OnTerminal != nil {
		evt := &domain.TransitionEvent{
			Timestamp: m.now(),
			SessionID: m.sessionID,
			From:      from,
			To:        rule.Target,
			Trigger:   rule.Trigger,
			Index:     index,
		}
		if m.hooks.OnTransition != nil {
			m.hooks.OnTransition(evt)
		}
		if m.IsTerminal() && m.hooks.OnTerminal != nil {
			m.hooks.OnTerminal(evt)
		}
	}

	return m.current, nil
}

// IsTerminal reports whether the machine has reached its exit state.
func (m *Machine) IsTerminal() bool {
	return m.current == m.exit
}

// ExitState returns the configured terminal state.
func (m *Machine) ExitState() domain.State {
	return m.exit
}

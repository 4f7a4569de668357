package ports

import (
	"github.com/aretw0/offhook/pkg/domain"
)

// StateMachine defines the contract of a phone state machine core.
// This is the interface consumed by driving loops such as the console runner.
type StateMachine interface {
	// CurrentState returns the active state without side effects.
	CurrentState() domain.State

	// AvailableTransitions lists the rules leaving the current state, in definition order.
	// An empty list means the machine is terminal.
	AvailableTransitions() []domain.Rule

	// Apply selects a rule by index. Out-of-range indexes leave the state unchanged
	// and return an error matching domain.ErrInvalidSelection.
	Apply(index int) (domain.State, error)

	// IsTerminal reports whether the exit state has been reached.
	IsTerminal() bool
}

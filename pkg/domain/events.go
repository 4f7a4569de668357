package domain

import (
	"time"
)

// TransitionEvent is emitted after a rule has been applied.
type TransitionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id,omitempty"`
	From      State     `json:"from"`
	To        State     `json:"to"`
	Trigger   Trigger   `json:"trigger"`
	Index     int       `json:"index"`
}

// RejectionEvent is emitted when a selection is refused and the state is left untouched.
type RejectionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id,omitempty"`
	State     State     `json:"state"`
	Index     int       `json:"index"`
	Available int       `json:"available"`
}

// LifecycleHooks defines callbacks for machine observability.
// Any of them may be nil.
type LifecycleHooks struct {
	OnTransition func(*TransitionEvent)
	OnRejected   func(*RejectionEvent)
	// OnTerminal fires once, on the transition that lands in the exit state.
	OnTerminal func(*TransitionEvent)
}

package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSelection is returned when a transition index is outside the options of the current state.
var ErrInvalidSelection = errors.New("invalid selection")

// ErrUnknownState is returned when a state name cannot be resolved.
var ErrUnknownState = errors.New("unknown state")

// ErrUnknownTrigger is returned when a trigger name cannot be resolved.
var ErrUnknownTrigger = errors.New("unknown trigger")

// ErrInvalidRuleTable is returned when a definition breaks the table invariants.
var ErrInvalidRuleTable = errors.New("invalid rule table")

// SelectionError describes a rejected Apply call. It matches ErrInvalidSelection.
type SelectionError struct {
	State     State
	Index     int
	Available int
}

func (e *SelectionError) Error() string {
	if e.Available == 0 {
		return fmt.Sprintf("invalid selection %d: no transitions leave %s", e.Index, e.State.Name())
	}
	return fmt.Sprintf("invalid selection %d: %s accepts 0..%d", e.Index, e.State.Name(), e.Available-1)
}

func (e *SelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// TableError aggregates every problem found in a definition. It matches ErrInvalidRuleTable.
type TableError struct {
	Problems []string
}

func (e *TableError) Error() string {
	msg := fmt.Sprintf("found %d errors:", len(e.Problems))
	for _, p := range e.Problems {
		msg += "\n- " + p
	}
	return msg
}

func (e *TableError) Is(target error) bool {
	return target == ErrInvalidRuleTable
}

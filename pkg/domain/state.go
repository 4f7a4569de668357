package domain

import (
	"fmt"
	"strings"
)

// State is one discrete phase of the call lifecycle.
type State int

const (
	OffHook State = iota
	Connecting
	Connected
	OnHold
	OnHook
)

// AllStates lists every state in declaration order.
var AllStates = []State{OffHook, Connecting, Connected, OnHold, OnHook}

var stateNames = map[State]string{
	OffHook:    "OffHook",
	Connecting: "Connecting",
	Connected:  "Connected",
	OnHold:     "OnHold",
	OnHook:     "OnHook",
}

var stateLabels = map[State]string{
	OffHook:    "off the hook",
	Connecting: "connecting",
	Connected:  "connected",
	OnHold:     "on hold",
	OnHook:     "on the hook",
}

// String returns the human readable label, e.g. "off the hook".
func (s State) String() string {
	if l, ok := stateLabels[s]; ok {
		return l
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Name returns the identifier form, e.g. "OffHook".
func (s State) Name() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Valid reports whether s is one of the enumerated states.
func (s State) Valid() bool {
	_, ok := stateNames[s]
	return ok
}

// ParseState accepts either the identifier ("OnHold") or the label ("on hold").
// Matching is case-insensitive.
func ParseState(v string) (State, error) {
	v = strings.TrimSpace(v)
	for _, s := range AllStates {
		if strings.EqualFold(v, stateNames[s]) || strings.EqualFold(v, stateLabels[s]) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, v)
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(s))
	}
	return []byte(s.Name()), nil
}

// UnmarshalText decodes a state name or label.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

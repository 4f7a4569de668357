package domain

import (
	"fmt"
	"strings"
)

// Trigger is an external event that causes a state transition.
type Trigger int

const (
	CallDialed Trigger = iota
	HungUp
	CallConnected
	PlacedOnHold
	TakenOffHold
	LeftMessage
	StopUsingPhone
)

// AllTriggers lists every trigger in declaration order.
var AllTriggers = []Trigger{
	CallDialed,
	HungUp,
	CallConnected,
	PlacedOnHold,
	TakenOffHold,
	LeftMessage,
	StopUsingPhone,
}

var triggerNames = map[Trigger]string{
	CallDialed:     "CallDialed",
	HungUp:         "HungUp",
	CallConnected:  "CallConnected",
	PlacedOnHold:   "PlacedOnHold",
	TakenOffHold:   "TakenOffHold",
	LeftMessage:    "LeftMessage",
	StopUsingPhone: "StopUsingPhone",
}

var triggerLabels = map[Trigger]string{
	CallDialed:     "call dialed",
	HungUp:         "hung up",
	CallConnected:  "call connected",
	PlacedOnHold:   "placed on hold",
	TakenOffHold:   "taken off hold",
	LeftMessage:    "left message",
	StopUsingPhone: "putting phone on hook",
}

// String returns the human readable label shown in menus.
func (t Trigger) String() string {
	if l, ok := triggerLabels[t]; ok {
		return l
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// Name returns the identifier form, e.g. "CallDialed".
func (t Trigger) Name() string {
	if n, ok := triggerNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// Valid reports whether t is one of the enumerated triggers.
func (t Trigger) Valid() bool {
	_, ok := triggerNames[t]
	return ok
}

// ParseTrigger accepts either the identifier or the label, case-insensitively.
func ParseTrigger(v string) (Trigger, error) {
	v = strings.TrimSpace(v)
	for _, t := range AllTriggers {
		if strings.EqualFold(v, triggerNames[t]) || strings.EqualFold(v, triggerLabels[t]) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTrigger, v)
}

func (t Trigger) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTrigger, int(t))
	}
	return []byte(t.Name()), nil
}

func (t *Trigger) UnmarshalText(text []byte) error {
	parsed, err := ParseTrigger(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

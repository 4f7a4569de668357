/*
Package domain contains the core vocabulary of the offhook phone state machine.

It defines the enumerated States and Triggers of a telephone call, the Rule
and RuleTable types that describe legal transitions, and the events emitted
while a machine runs. This package is kept pure and free of I/O so every
other layer (runtime, loaders, presentation) can depend on it.

# Key Entities

  - State: a phase of the call (OffHook, Connecting, Connected, OnHold, OnHook).
  - Trigger: an external event that moves the call between states.
  - Rule: the (Trigger, State) pair selected by the user.
  - RuleTable: the ordered rules available from each state.
  - Definition: a RuleTable together with its initial and exit states.
*/
package domain

/*
Package offhook models a telephone call as a finite state machine.

A phone starts off the hook, can dial, connect, be placed on hold and taken
off it, and ends on the hook. Every state owns an ordered list of rules; a
rule pairs a trigger with a target state. Callers drive the phone by picking
a rule by its position in that list.

# Concept

The rule table is data, not code. The built-in table lives in pkg/dsl and is
validated before any machine runs: every state must be reachable, only the
exit state may be a dead end, and the exit state has no way out. Tables can
also be loaded from YAML or JSON files.

The phone itself never reads input or writes output. The console loop in
pkg/runner does that, and observers subscribe through domain.LifecycleHooks.

# Usage

	phone, err := offhook.New()
	if err != nil {
		log.Fatal(err)
	}

	for i, rule := range phone.AvailableTransitions() {
		fmt.Printf("%d. %s\n", i, rule.Trigger)
	}

	if _, err := phone.Apply(0); errors.Is(err, domain.ErrInvalidSelection) {
		// state unchanged
	}

# Observability

	phone, _ := offhook.New(
		offhook.WithLogger(slog.Default()),
		offhook.WithLifecycleHooks(domain.LifecycleHooks{
			OnTransition: func(e *domain.TransitionEvent) {
				fmt.Println(e.From, "->", e.To)
			},
		}),
	)
*/
package offhook

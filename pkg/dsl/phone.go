package dsl

import "github.com/aretw0/offhook/pkg/domain"

// Phone returns the built-in telephone call definition.
// OffHook is the entry state and OnHook the exit state. Each call returns a fresh copy.
func Phone() *domain.Definition {
	return New().
		From(domain.OffHook).
		On(domain.CallDialed, domain.Connecting).
		On(domain.StopUsingPhone, domain.OnHook).
		From(domain.Connecting).
		On(domain.HungUp, domain.OffHook).
		On(domain.CallConnected, domain.Connected).
		From(domain.Connected).
		On(domain.LeftMessage, domain.OffHook).
		On(domain.HungUp, domain.OffHook).
		On(domain.PlacedOnHold, domain.OnHold).
		From(domain.OnHold).
		On(domain.TakenOffHold, domain.Connected).
		On(domain.HungUp, domain.OffHook).
		From(domain.OnHook).
		Terminal().
		MustBuild()
}

/*
Package dsl provides a fluent builder for offhook rule tables.

It lets callers define the transitions of a phone state machine in Go instead of
a YAML or JSON file. Build validates the result, so a definition returned
without error always satisfies the table invariants.

Example usage:

	def, err := dsl.New().
		From(domain.OffHook).
		On(domain.CallDialed, domain.Connecting).
		On(domain.StopUsingPhone, domain.OnHook).
		From(domain.Connecting).
		On(domain.HungUp, domain.OffHook).
		On(domain.CallConnected, domain.Connected).
		// ... Connected and OnHold
		From(domain.OnHook).
		Terminal().
		Build()
*/
package dsl

package validator

import (
	"fmt"

	"github.com/aretw0/offhook/pkg/domain"
)

// ValidateDefinition checks the rule table invariants and reports every problem at once:
//   - initial and exit states must be enumerated states
//   - every state other than the exit must have at least one rule (otherwise the machine deadlocks)
//   - the exit state must have no rules
//   - every rule must use a known trigger and target a known state
//   - every state must be reachable from the initial state
func ValidateDefinition(def *domain.Definition) error {
	if def == nil {
		return &domain.TableError{Problems: []string{"definition is nil"}}
	}

	var problems []string

	if !def.Initial.Valid() {
		problems = append(problems, fmt.Sprintf("initial state %d is not a known state", int(def.Initial)))
	}
	if !def.Exit.Valid() {
		problems = append(problems, fmt.Sprintf("exit state %d is not a known state", int(def.Exit)))
	}

	for _, src := range def.Table.States() {
		if !src.Valid() {
			problems = append(problems, fmt.Sprintf("rules declared for unknown state %d", int(src)))
			continue
		}
		for i, rule := range def.Table[src] {
			if !rule.Trigger.Valid() {
				problems = append(problems, fmt.Sprintf("%s[%d]: unknown trigger %d", src.Name(), i, int(rule.Trigger)))
			}
			if !rule.Target.Valid() {
				problems = append(problems, fmt.Sprintf("%s[%d]: unknown target state %d", src.Name(), i, int(rule.Target)))
			}
		}
	}

	for _, s := range domain.AllStates {
		n := len(def.Table[s])
		switch {
		case s == def.Exit && n > 0:
			problems = append(problems, fmt.Sprintf("exit state %s must not have transitions (has %d)", s.Name(), n))
		case s != def.Exit && n == 0:
			problems = append(problems, fmt.Sprintf("state %s has no transitions and is not the exit state", s.Name()))
		}
	}

	if def.Initial.Valid() {
		visited := crawl(def.Table, def.Initial)
		for _, s := range domain.AllStates {
			if !visited[s] {
				problems = append(problems, fmt.Sprintf("state %s is unreachable from %s", s.Name(), def.Initial.Name()))
			}
		}
	}

	if len(problems) > 0 {
		return &domain.TableError{Problems: problems}
	}
	return nil
}

// crawl walks the table breadth-first and returns every state reachable from start.
func crawl(table domain.RuleTable, start domain.State) map[domain.State]bool {
	visited := make(map[domain.State]bool)
	queue := []domain.State{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, rule := range table[current] {
			if !visited[rule.Target] {
				queue = append(queue, rule.Target)
			}
		}
	}
	return visited
}

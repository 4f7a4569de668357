package runtime

import (
	"errors"
	"testing"
	"time"

	"github.com/aretw0/offhook/pkg/domain"
	"github.com/aretw0/offhook/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPhone(t *testing.T, opts ...MachineOption) *Machine {
	t.Helper()
	m, err := NewMachine(dsl.Phone(), opts...)
	require.NoError(t, err)
	return m
}

// indexOf finds the position of trigger among the current options.
func indexOf(t *testing.T, m *Machine, trigger domain.Trigger) int {
	t.Helper()
	for i, r := range m.AvailableTransitions() {
		if r.Trigger == trigger {
			return i
		}
	}
	t.Fatalf("trigger %s not available from %s", trigger.Name(), m.CurrentState().Name())
	return -1
}

func apply(t *testing.T, m *Machine, trigger domain.Trigger) domain.State {
	t.Helper()
	s, err := m.Apply(indexOf(t, m, trigger))
	require.NoError(t, err)
	return s
}

func TestMachine_StartsOffHook(t *testing.T) {
	m := newPhone(t)
	assert.Equal(t, domain.OffHook, m.CurrentState())
	assert.False(t, m.IsTerminal())
	assert.Equal(t, domain.OnHook, m.ExitState())
}

func TestMachine_AvailableTransitionsIdempotent(t *testing.T) {
	m := newPhone(t)

	for _, trigger := range []domain.Trigger{domain.CallDialed, domain.CallConnected, domain.PlacedOnHold} {
		first := m.AvailableTransitions()
		second := m.AvailableTransitions()
		assert.Equal(t, first, second, "state %s", m.CurrentState().Name())
		assert.NotEmpty(t, first)
		apply(t, m, trigger)
	}
}

func TestMachine_AvailableTransitionsIsCopy(t *testing.T) {
	m := newPhone(t)
	rules := m.AvailableTransitions()
	rules[0].Target = domain.OnHook

	assert.Equal(t, domain.Connecting, m.AvailableTransitions()[0].Target)
}

func TestMachine_DefinitionOrder(t *testing.T) {
	m := newPhone(t)
	apply(t, m, domain.CallDialed)
	apply(t, m, domain.CallConnected)

	assert.Equal(t, []domain.Rule{
		{Trigger: domain.LeftMessage, Target: domain.OffHook},
		{Trigger: domain.HungUp, Target: domain.OffHook},
		{Trigger: domain.PlacedOnHold, Target: domain.OnHold},
	}, m.AvailableTransitions())
}

func TestMachine_ApplyValidIndexMovesToTarget(t *testing.T) {
	def := dsl.Phone()
	for _, src := range def.Table.States() {
		for i, rule := range def.Table[src] {
			m, err := NewMachine(&domain.Definition{Initial: src, Exit: def.Exit, Table: def.Table})
			require.NoError(t, err)

			got, err := m.Apply(i)
			require.NoError(t, err)
			assert.Equal(t, rule.Target, got, "%s[%d]", src.Name(), i)
			assert.Equal(t, rule.Target, m.CurrentState())
		}
	}
}

func TestMachine_ScenarioA_Dial(t *testing.T) {
	m := newPhone(t)
	assert.Equal(t, domain.Connecting, apply(t, m, domain.CallDialed))
}

func TestMachine_ScenarioB_HoldCycle(t *testing.T) {
	m := newPhone(t)
	apply(t, m, domain.CallDialed)

	assert.Equal(t, domain.Connected, apply(t, m, domain.CallConnected))
	assert.Equal(t, domain.OnHold, apply(t, m, domain.PlacedOnHold))
	assert.Equal(t, domain.Connected, apply(t, m, domain.TakenOffHold))
}

func TestMachine_ScenarioC_InvalidSelection(t *testing.T) {
	paths := map[domain.State][]domain.Trigger{
		domain.OffHook:    nil,
		domain.Connecting: {domain.CallDialed},
		domain.Connected:  {domain.CallDialed, domain.CallConnected},
		domain.OnHold:     {domain.CallDialed, domain.CallConnected, domain.PlacedOnHold},
	}

	for state, path := range paths {
		t.Run(state.Name(), func(t *testing.T) {
			m := newPhone(t)
			for _, trigger := range path {
				apply(t, m, trigger)
			}
			require.Equal(t, state, m.CurrentState())

			for _, idx := range []int{-1, 99, len(m.AvailableTransitions())} {
				got, err := m.Apply(idx)
				assert.ErrorIs(t, err, domain.ErrInvalidSelection)
				assert.Equal(t, state, got)
				assert.Equal(t, state, m.CurrentState())

				var selErr *domain.SelectionError
				require.True(t, errors.As(err, &selErr))
				assert.Equal(t, idx, selErr.Index)
				assert.Equal(t, state, selErr.State)
			}
		})
	}
}

func TestMachine_ScenarioD_StopUsingPhone(t *testing.T) {
	m := newPhone(t)

	assert.Equal(t, domain.OnHook, apply(t, m, domain.StopUsingPhone))
	assert.True(t, m.IsTerminal())
	assert.Empty(t, m.AvailableTransitions())

	_, err := m.Apply(0)
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	assert.Equal(t, domain.OnHook, m.CurrentState())
}

func TestMachine_HoldRoundTrip(t *testing.T) {
	m := newPhone(t)
	apply(t, m, domain.CallDialed)
	apply(t, m, domain.CallConnected)

	before := m.CurrentState()
	beforeRules := m.AvailableTransitions()

	apply(t, m, domain.PlacedOnHold)
	apply(t, m, domain.TakenOffHold)

	assert.Equal(t, before, m.CurrentState())
	assert.Equal(t, beforeRules, m.AvailableTransitions())
}

func TestMachine_IsTerminalOnlyAtExit(t *testing.T) {
	m := newPhone(t)
	path := []domain.Trigger{
		domain.CallDialed,
		domain.CallConnected,
		domain.PlacedOnHold,
		domain.HungUp,
		domain.StopUsingPhone,
	}

	seen := map[domain.State]bool{m.CurrentState(): true}
	assert.False(t, m.IsTerminal())
	for _, trigger := range path {
		s := apply(t, m, trigger)
		seen[s] = true
		assert.Equal(t, s == domain.OnHook, m.IsTerminal(), s.Name())
	}
	assert.Len(t, seen, len(domain.AllStates))
}

func TestMachine_RejectsInvalidDefinition(t *testing.T) {
	def := dsl.Phone()
	delete(def.Table, domain.OnHold)

	_, err := NewMachine(def)
	assert.ErrorIs(t, err, domain.ErrInvalidRuleTable)
}

func TestMachine_TableIsolatedFromDefinition(t *testing.T) {
	def := dsl.Phone()
	m, err := NewMachine(def)
	require.NoError(t, err)

	def.Table[domain.OffHook][0].Target = domain.OnHook

	assert.Equal(t, domain.Connecting, apply(t, m, domain.CallDialed))
}

func TestMachine_LifecycleHooks(t *testing.T) {
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	var transitions []*domain.TransitionEvent
	var rejections []*domain.RejectionEvent
	var terminals int

	m := newPhone(t,
		WithSessionID("sess-1"),
		withClock(func() time.Time { return fixed }),
		WithLifecycleHooks(domain.LifecycleHooks{
			OnTransition: func(e *domain.TransitionEvent) { transitions = append(transitions, e) },
			OnRejected:   func(e *domain.RejectionEvent) { rejections = append(rejections, e) },
			OnTerminal:   func(*domain.TransitionEvent) { terminals++ },
		}),
	)

	apply(t, m, domain.CallDialed)
	_, _ = m.Apply(5)
	apply(t, m, domain.HungUp)
	apply(t, m, domain.StopUsingPhone)

	require.Len(t, transitions, 3)
	assert.Equal(t, &domain.TransitionEvent{
		Timestamp: fixed,
		SessionID: "sess-1",
		From:      domain.OffHook,
		To:        domain.Connecting,
		Trigger:   domain.CallDialed,
		Index:     0,
	}, transitions[0])
	assert.Equal(t, domain.OnHook, transitions[2].To)

	require.Len(t, rejections, 1)
	assert.Equal(t, domain.Connecting, rejections[0].State)
	assert.Equal(t, 5, rejections[0].Index)
	assert.Equal(t, 2, rejections[0].Available)

	assert.Equal(t, 1, terminals)
}

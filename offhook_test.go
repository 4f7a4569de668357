package offhook_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/aretw0/offhook"
	"github.com/aretw0/offhook/internal/testutils"
	"github.com/aretw0/offhook/pkg/domain"
	"github.com/aretw0/offhook/pkg/dsl"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyAll(t *testing.T, p *offhook.Phone, indices ...int) {
	t.Helper()
	for _, i := range indices {
		_, err := p.Apply(i)
		require.NoError(t, err, "apply %d from %s", i, p.CurrentState())
	}
}

func TestPhone_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		want    domain.State
	}{
		{"A: dial then hang up", []int{0, 0}, domain.OffHook},
		{"B: dial, connect, place on hold", []int{0, 1, 2}, domain.OnHold},
		{"D: stop using the phone", []int{1}, domain.OnHook},
		{"Hold round trip", []int{0, 1, 2, 0}, domain.Connected},
		{"Left message", []int{0, 1, 0}, domain.OffHook},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := offhook.New()
			require.NoError(t, err)
			applyAll(t, p, tt.indices...)
			assert.Equal(t, tt.want, p.CurrentState())
			assert.Equal(t, tt.want == domain.OnHook, p.IsTerminal())
		})
	}
}

func TestPhone_InvalidSelection(t *testing.T) {
	p, err := offhook.New()
	require.NoError(t, err)

	// C: three options exist in Connected, index 3 is out of range
	applyAll(t, p, 0, 1)
	for _, idx := range []int{3, -1, 100} {
		got, err := p.Apply(idx)
		assert.ErrorIs(t, err, domain.ErrInvalidSelection)
		assert.Equal(t, domain.Connected, got)
		assert.Equal(t, domain.Connected, p.CurrentState())
	}

	var selErr *domain.SelectionError
	_, err = p.Apply(3)
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, 3, selErr.Available)
}

func TestPhone_TerminalHasNoTransitions(t *testing.T) {
	p, err := offhook.New()
	require.NoError(t, err)
	applyAll(t, p, 1)

	assert.Empty(t, p.AvailableTransitions())
	_, err = p.Apply(0)
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
	assert.Equal(t, domain.OnHook, p.CurrentState())
}

func TestPhone_SessionID(t *testing.T) {
	p, err := offhook.New()
	require.NoError(t, err)
	_, err = uuid.Parse(p.SessionID())
	assert.NoError(t, err)

	p, err = offhook.New(offhook.WithSessionID("call-1"))
	require.NoError(t, err)
	assert.Equal(t, "call-1", p.SessionID())
}

func TestPhone_Hooks(t *testing.T) {
	var moves []string
	var rejected, terminal int
	p, err := offhook.New(offhook.WithLifecycleHooks(domain.LifecycleHooks{
		OnTransition: func(e *domain.TransitionEvent) {
			moves = append(moves, e.From.Name()+">"+e.To.Name())
		},
		OnRejected: func(*domain.RejectionEvent) { rejected++ },
		OnTerminal: func(*domain.TransitionEvent) { terminal++ },
	}))
	require.NoError(t, err)

	applyAll(t, p, 0, 0)
	_, _ = p.Apply(5)
	applyAll(t, p, 1)

	assert.Equal(t, []string{"OffHook>Connecting", "Connecting>OffHook", "OffHook>OnHook"}, moves)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 1, terminal)
}

func TestPhone_WithDefinition(t *testing.T) {
	def := dsl.New().
		From(domain.OffHook).
		On(domain.StopUsingPhone, domain.OnHook).
		On(domain.CallDialed, domain.Connecting).
		From(domain.Connecting).
		On(domain.CallConnected, domain.Connected).
		From(domain.Connected).
		On(domain.PlacedOnHold, domain.OnHold).
		From(domain.OnHold).
		On(domain.HungUp, domain.OffHook).
		From(domain.OnHook).
		Terminal().
		MustBuild()

	p, err := offhook.New(offhook.WithDefinition(def))
	require.NoError(t, err)

	applyAll(t, p, 0)
	assert.True(t, p.IsTerminal())

	// The phone keeps its own copy
	def.Table[domain.OffHook] = nil
	assert.Len(t, p.Definition().Table[domain.OffHook], 2)
}

func TestPhone_WithInvalidDefinition(t *testing.T) {
	def := dsl.Phone()
	delete(def.Table, domain.OnHold)

	_, err := offhook.New(offhook.WithDefinition(def))
	assert.ErrorIs(t, err, domain.ErrInvalidRuleTable)
}

func TestPhone_WithRulesFile(t *testing.T) {
	path := testutils.WriteRulesFile(t, "rules.yaml", testutils.PhoneRulesYAML)

	p, err := offhook.New(offhook.WithRulesFile(path))
	require.NoError(t, err)
	assert.Equal(t, dsl.Phone(), p.Definition())

	applyAll(t, p, 0, 1, 2, 1)
	assert.Equal(t, domain.OffHook, p.CurrentState())

	_, err = offhook.New(offhook.WithRulesFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.ErrorContains(t, err, "failed to load rule table")
}

func TestDefaultDefinition(t *testing.T) {
	def := offhook.DefaultDefinition()
	assert.Equal(t, domain.OffHook, def.Initial)
	assert.Equal(t, domain.OnHook, def.Exit)
	assert.NotEmpty(t, offhook.Version)
}

package validator

import (
	"errors"
	"testing"

	"github.com/aretw0/offhook/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phoneTable() domain.RuleTable {
	return domain.RuleTable{
		domain.OffHook: {
			{Trigger: domain.CallDialed, Target: domain.Connecting},
			{Trigger: domain.StopUsingPhone, Target: domain.OnHook},
		},
		domain.Connecting: {
			{Trigger: domain.HungUp, Target: domain.OffHook},
			{Trigger: domain.CallConnected, Target: domain.Connected},
		},
		domain.Connected: {
			{Trigger: domain.LeftMessage, Target: domain.OffHook},
			{Trigger: domain.HungUp, Target: domain.OffHook},
			{Trigger: domain.PlacedOnHold, Target: domain.OnHold},
		},
		domain.OnHold: {
			{Trigger: domain.TakenOffHold, Target: domain.Connected},
			{Trigger: domain.HungUp, Target: domain.OffHook},
		},
	}
}

func TestValidateDefinition(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*domain.Definition)
		contains []string
	}{
		{
			name:   "Valid Phone",
			mutate: func(*domain.Definition) {},
		},
		{
			name: "Deadlocked State",
			mutate: func(d *domain.Definition) {
				delete(d.Table, domain.OnHold)
			},
			contains: []string{"state OnHold has no transitions"},
		},
		{
			name: "Exit With Transitions",
			mutate: func(d *domain.Definition) {
				d.Table[domain.OnHook] = []domain.Rule{{Trigger: domain.CallDialed, Target: domain.Connecting}}
			},
			contains: []string{"exit state OnHook must not have transitions"},
		},
		{
			name: "Unknown Target",
			mutate: func(d *domain.Definition) {
				d.Table[domain.OffHook] = append(d.Table[domain.OffHook], domain.Rule{Trigger: domain.HungUp, Target: domain.State(99)})
			},
			contains: []string{"OffHook[2]: unknown target state 99"},
		},
		{
			name: "Unreachable State",
			mutate: func(d *domain.Definition) {
				d.Table[domain.Connected] = []domain.Rule{{Trigger: domain.HungUp, Target: domain.OffHook}}
			},
			contains: []string{"state OnHold is unreachable from OffHook"},
		},
		{
			name: "Invalid Initial",
			mutate: func(d *domain.Definition) {
				d.Initial = domain.State(-1)
			},
			contains: []string{"initial state -1 is not a known state"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := &domain.Definition{Initial: domain.OffHook, Exit: domain.OnHook, Table: phoneTable()}
			tt.mutate(def)

			err := ValidateDefinition(def)
			if len(tt.contains) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidRuleTable))
			for _, want := range tt.contains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestValidateDefinition_AggregatesProblems(t *testing.T) {
	def := &domain.Definition{
		Initial: domain.OffHook,
		Exit:    domain.OnHook,
		Table: domain.RuleTable{
			domain.OffHook: {{Trigger: domain.StopUsingPhone, Target: domain.OnHook}},
		},
	}

	err := ValidateDefinition(def)
	var tableErr *domain.TableError
	require.ErrorAs(t, err, &tableErr)
	// Connecting, Connected and OnHold are both empty and unreachable.
	assert.Len(t, tableErr.Problems, 6)
}

func TestValidateDefinition_Nil(t *testing.T) {
	assert.ErrorIs(t, ValidateDefinition(nil), domain.ErrInvalidRuleTable)
}

package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/offhook/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	hooks := m.Hooks()
	hooks.OnTransition(&domain.TransitionEvent{From: domain.OffHook, To: domain.Connecting, Trigger: domain.CallDialed})
	hooks.OnTransition(&domain.TransitionEvent{From: domain.Connecting, To: domain.OffHook, Trigger: domain.HungUp})
	hooks.OnTransition(&domain.TransitionEvent{From: domain.OffHook, To: domain.Connecting, Trigger: domain.CallDialed})
	hooks.OnRejected(&domain.RejectionEvent{State: domain.Connecting, Index: 9})
	last := &domain.TransitionEvent{From: domain.OffHook, To: domain.OnHook, Trigger: domain.StopUsingPhone}
	hooks.OnTransition(last)
	hooks.OnTerminal(last)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Transitions.WithLabelValues("OffHook", "Connecting", "CallDialed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejected.WithLabelValues("Connecting")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Completed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Current.WithLabelValues("OnHook")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Current.WithLabelValues("Connecting")))
}

func TestMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.ErrorContains(t, err, "failed to register metric")
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)
	m.SetCurrent(domain.OffHook)
	m.Completed.Inc()

	path := filepath.Join(t.TempDir(), "offhook.prom")
	require.NoError(t, WriteTextfile(reg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, "offhook_sessions_completed_total 1"))
	assert.Contains(t, out, `offhook_current_state{state="OffHook"} 1`)
}

package observability

import (
	"fmt"

	"github.com/aretw0/offhook/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the offhook collectors.
type Metrics struct {
	Transitions *prometheus.CounterVec
	Rejected    *prometheus.CounterVec
	Completed   prometheus.Counter
	Current     *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offhook_transitions_total",
				Help: "Total number of applied transitions",
			},
			[]string{"from", "to", "trigger"},
		),
		Rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offhook_rejected_selections_total",
				Help: "Total number of out-of-range selections",
			},
			[]string{"state"},
		),
		Completed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "offhook_sessions_completed_total",
				Help: "Total number of sessions that reached the exit state",
			},
		),
		Current: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "offhook_current_state",
				Help: "1 for the state the phone is currently in, 0 otherwise",
			},
			[]string{"state"},
		),
	}

	for _, c := range []prometheus.Collector{m.Transitions, m.Rejected, m.Completed, m.Current} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return m, nil
}

// SetCurrent marks s as the active state.
func (m *Metrics) SetCurrent(s domain.State) {
	for _, st := range domain.AllStates {
		v := 0.0
		if st == s {
			v = 1
		}
		m.Current.WithLabelValues(st.Name()).Set(v)
	}
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(e *domain.TransitionEvent) {
			m.Transitions.WithLabelValues(e.From.Name(), e.To.Name(), e.Trigger.Name()).Inc()
			m.SetCurrent(e.To)
		},
		OnRejected: func(e *domain.RejectionEvent) {
			m.Rejected.WithLabelValues(e.State.Name()).Inc()
		},
		OnTerminal: func(*domain.TransitionEvent) {
			m.Completed.Inc()
		},
	}
}

// WriteTextfile dumps everything gathered by g to path in the text exposition format.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

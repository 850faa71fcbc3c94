package preload

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metricSet struct {
	decisions    *prometheus.CounterVec
	cookieWrites *prometheus.CounterVec
}

func newMetricSet(r prometheus.Registerer) *metricSet {
	m := &metricSet{
		decisions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "preload_decisions_total",
				Help: "Preload decisions by resource kind and outcome.",
			},
			[]string{"kind", "decision"},
		),
		cookieWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "preload_cookie_writes_total",
				Help: "Tracking cookie writes by action.",
			},
			[]string{"action"},
		),
	}
	m.decisions = registerCounterVec(r, m.decisions)
	m.cookieWrites = registerCounterVec(r, m.cookieWrites)
	return m
}

// registerCounterVec reuses an already registered collector so that several
// preloaders can share one registry.
func registerCounterVec(r prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := r.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *metricSet) decision(kind Kind, d Decision) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(kind.String(), d.String()).Inc()
}

func (m *metricSet) cookieWrite(action string) {
	if m == nil {
		return
	}
	m.cookieWrites.WithLabelValues(action).Inc()
}

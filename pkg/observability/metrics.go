package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "turing"

// Metrics records run outcomes, step counts and tape growth.
type Metrics struct {
	runsStarted prometheus.Counter
	runsEnded   *prometheus.CounterVec
	steps       prometheus.Counter
	runSteps    prometheus.Histogram
	tapeCells   prometheus.Histogram
	registry    *prometheus.Registry
}

// NewMetrics creates collectors on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		runsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_started_total",
			Help:      "Total number of runs started",
		}),
		runsEnded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Total number of runs that ended, by outcome",
		}, []string{"outcome"}),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "steps_total",
			Help:      "Total number of steps executed across all runs",
		}),
		runSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_steps",
			Help:      "Steps executed per run",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		tapeCells: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "tape_cells",
			Help:      "Tape length at the end of a run",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}),
	}
	registry.MustRegister(m.runsStarted, m.runsEnded, m.steps, m.runSteps, m.tapeCells)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	end := func(_ context.Context, e *domain.HaltEvent) {
		m.runsEnded.WithLabelValues(string(e.Outcome)).Inc()
		m.runSteps.Observe(float64(e.Steps))
		m.tapeCells.Observe(float64(e.TapeCells))
	}
	return domain.LifecycleHooks{
		OnRunStart: func(context.Context, *domain.RunEvent) {
			m.runsStarted.Inc()
		},
		OnStep: func(context.Context, *domain.StepEvent) {
			m.steps.Inc()
		},
		OnHalt:  end,
		OnFault: end,
	}
}

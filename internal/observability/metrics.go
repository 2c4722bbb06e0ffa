package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "evolve"

// RunMetrics holds the Prometheus metrics one evolutionary run reports.
// All operations are thread-safe via Prometheus's internal locking.
type RunMetrics struct {
	registry *prometheus.Registry

	// GenerationsTotal counts completed generations, labeled by scenario.
	GenerationsTotal *prometheus.CounterVec

	// BestFitness tracks the best fitness of the current population.
	BestFitness *prometheus.GaugeVec

	// AverageFitness tracks the mean fitness of the current population.
	AverageFitness *prometheus.GaugeVec

	// StepDurationSeconds measures wall time per generation step.
	StepDurationSeconds *prometheus.HistogramVec
}

// NewRunMetrics builds the metric set on a private registry so tests can
// create as many as they need without collisions.
func NewRunMetrics() *RunMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &RunMetrics{
		registry: registry,
		GenerationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "generations_total",
			Help:      "Completed generations per scenario.",
		}, []string{"scenario"}),
		BestFitness: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "best_fitness",
			Help:      "Best fitness in the current population.",
		}, []string{"scenario"}),
		AverageFitness: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "average_fitness",
			Help:      "Mean fitness of the current population.",
		}, []string{"scenario"}),
		StepDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "step_duration_seconds",
			Help:      "Wall time per generation step.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"scenario"}),
	}
}

// ObserveStep records one completed generation.
func (m *RunMetrics) ObserveStep(scenario string, generation uint64, best, average float64, step time.Duration) {
	m.GenerationsTotal.WithLabelValues(scenario).Inc()
	m.BestFitness.WithLabelValues(scenario).Set(best)
	m.AverageFitness.WithLabelValues(scenario).Set(average)
	m.StepDurationSeconds.WithLabelValues(scenario).Observe(step.Seconds())
}

// Handler exposes the run's registry for scraping.
func (m *RunMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts a metrics HTTP server on addr. It returns the server so the
// caller can shut it down.
func (m *RunMetrics) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		// ErrServerClosed is the normal shutdown path.
		_ = srv.ListenAndServe()
	}()
	return srv
}

// Package metrics exposes calculation counters in prometheus format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"payroll-engine/internal/model"
)

// Metrics owns its registry so several instances can coexist in one process.
// A nil *Metrics records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	duration     prometheus.Histogram
	fallbacks    prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payroll_calculations_total",
			Help: "Salary calculations by outcome.",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "payroll_calculation_duration_seconds",
			Help:    "Time spent computing one salary breakdown.",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		}),
		fallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "payroll_municipality_fallback_total",
			Help: "Calculations that fell back to the default municipality.",
		}),
	}
}

func (m *Metrics) Observe(resp *model.CalculationResponse, elapsed time.Duration) {
	if m == nil || resp == nil {
		return
	}
	m.calculations.WithLabelValues(resp.CalculationMetadata.CalculationOutcome).Inc()
	m.duration.Observe(elapsed.Seconds())
	if b := resp.CalculationResult.Breakdown; b != nil && b.MunicipalityFallback {
		m.fallbacks.Inc()
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the text exposition format.
func (m *Metrics) Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}),
	)
}

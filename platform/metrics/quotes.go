// Package metrics exposes Prometheus collectors for quote generation and sharing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records generation outcomes and saved quotes.
type QuoteMetrics struct {
	generations *prometheus.CounterVec
	fallbacks   *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	saves       prometheus.Counter
}

// NewQuoteMetrics registers the quote metrics on the provided registerer. A nil
// registerer yields a collector that records nothing.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	generations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_generations_total",
		Help: "Quote generation requests by result source and detected trade.",
	}, []string{"source", "trade"})
	fallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_generation_fallbacks_total",
		Help: "Generated quotes replaced by the fallback quote, by reason.",
	}, []string{"reason"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_generation_duration_seconds",
		Help:    "Duration of quote generation in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})
	saves := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quote_saves_total",
		Help: "Quotes saved behind a share link.",
	})
	reg.MustRegister(generations, fallbacks, duration, saves)
	return &QuoteMetrics{
		generations: generations,
		fallbacks:   fallbacks,
		duration:    duration,
		saves:       saves,
	}
}

// ObserveGeneration records one finished generation. reason is empty unless the
// result came from the fallback quote.
func (m *QuoteMetrics) ObserveGeneration(source, trade, reason string, duration time.Duration) {
	if m == nil || m.generations == nil {
		return
	}
	source = normalizeLabel(source)
	m.generations.WithLabelValues(source, normalizeLabel(trade)).Inc()
	m.duration.WithLabelValues(source).Observe(duration.Seconds())
	if reason != "" {
		m.fallbacks.WithLabelValues(reason).Inc()
	}
}

// IncSaved increments the saved quote counter.
func (m *QuoteMetrics) IncSaved() {
	if m == nil || m.saves == nil {
		return
	}
	m.saves.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

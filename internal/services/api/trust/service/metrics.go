package service

import (
	stderrs "errors"

	"reviewtrust/internal/core/review"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the analyze counters exported on /metrics
type Metrics struct {
	analyses *prometheus.CounterVec
	patterns *prometheus.CounterVec
	score    prometheus.Histogram
}

// NewMetrics registers the trust collectors on reg; collectors already
// registered by an earlier module instance are reused
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reviewtrust_analyses_total",
			Help: "Completed analyses by trust level and analysis mode",
		}, []string{"level", "mode"}),
		patterns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reviewtrust_patterns_detected_total",
			Help: "Detected suspicious patterns by type and severity",
		}, []string{"type", "severity"}),
		score: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "reviewtrust_trust_score",
			Help:    "Distribution of final trust scores",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
	}
	if reg == nil {
		return m
	}
	m.analyses = register(reg, m.analyses)
	m.patterns = register(reg, m.patterns)
	m.score = register(reg, m.score)
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if stderrs.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// observe records one finished analysis
func (m *Metrics) observe(res review.AnalysisResult, mode review.AnalysisMode, pats []review.Pattern) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(string(res.Level), string(mode)).Inc()
	m.score.Observe(float64(res.Score))
	for _, p := range pats {
		m.patterns.WithLabelValues(string(p.Type), string(p.Severity)).Inc()
	}
}

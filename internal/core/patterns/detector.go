// Package patterns evaluates independent review manipulation heuristics over a dataset.
// Every heuristic runs on every call; one failing never blocks the others
package patterns

import (
	"math"
	"time"

	"reviewtrust/internal/core/normalize"
	"reviewtrust/internal/core/recency"
	"reviewtrust/internal/core/review"
	"reviewtrust/internal/platform/logger"
)

// Detection is the verdict of a single heuristic. Score and Pattern are set only when Detected
type Detection struct {
	Detected bool
	Score    float64
	Pattern  *review.Pattern
}

// Result is the aggregate output of DetectAll
type Result struct {
	Factors  review.SuspicionFactors `json:"suspicion_factors"`
	Patterns []review.Pattern        `json:"suspicious_patterns"`
}

// Detector is safe for concurrent use; it holds only immutable configuration
type Detector struct {
	cfg    Config
	norm   *normalize.Normalizer
	recent *recency.Matcher
	// now is the reference instant for relative date labels
	now func() time.Time
}

// Option configures a Detector
type Option func(*Detector)

// WithClock sets the reference clock for relative date labels; nil keeps time.Now
func WithClock(now func() time.Time) Option {
	return func(d *Detector) {
		if now != nil {
			d.now = now
		}
	}
}

// New creates a Detector from cfg
func New(cfg Config, opts ...Option) *Detector {
	d := &Detector{
		cfg:    cfg,
		norm:   normalize.New(),
		recent: recency.NewMatcher(cfg.RecentTables...),
		now:    time.Now,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Config returns the detector configuration
func (d *Detector) Config() Config { return d.cfg }

type heuristic struct {
	factor review.Factor
	run    func(review.Dataset, review.Settings) Detection
}

func (d *Detector) heuristics() []heuristic {
	return []heuristic{
		{review.FactorPolarizedRatings, d.Polarized},
		{review.FactorBurstPosting, d.Burst},
		{review.FactorShortReviews, d.ShortReviews},
		{review.FactorDuplicatePatterns, d.Duplicates},
		{review.FactorNewAccounts, d.NewAccounts},
	}
}

// DetectAll runs every heuristic in fixed order and collects factors and patterns.
// Patterns appear in evaluation order: polarized, burst, short, duplicate, new accounts
func (d *Detector) DetectAll(ds review.Dataset, s review.Settings) Result {
	s = s.Normalize()
	res := Result{Patterns: []review.Pattern{}}
	for _, h := range d.heuristics() {
		det := d.guard(h.factor, func() Detection { return h.run(ds, s) })
		if !det.Detected {
			res.Factors.Set(h.factor, 0)
			continue
		}
		res.Factors.Set(h.factor, det.Score)
		if det.Pattern != nil {
			res.Patterns = append(res.Patterns, *det.Pattern)
		}
	}
	return res
}

// guard converts a panicking heuristic into a non-detection
func (d *Detector) guard(f review.Factor, fn func() Detection) (det Detection) {
	defer func() {
		if r := recover(); r != nil {
			logger.Named("patterns").Debug().
				Str("factor", string(f)).
				Interface("panic", r).
				Msg("heuristic recovered")
			det = Detection{}
		}
	}()
	det = fn()
	if det.Detected && (math.IsNaN(det.Score) || math.IsInf(det.Score, 0)) {
		return Detection{}
	}
	return det
}

// capped returns min(ratio*100*weight, ceiling)
func capped(ratio, weight, ceiling float64) float64 {
	return math.Min(ratio*100*weight, ceiling)
}

func skipped(f review.Factor, reason string) Detection {
	logger.Named("patterns").Debug().Str("factor", string(f)).Str("reason", reason).Msg("heuristic skipped")
	return Detection{}
}

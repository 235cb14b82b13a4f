// Package scoring turns suspicion factors into a bounded trust score with a readable rationale
package scoring

import (
	"math"

	"reviewtrust/internal/core/review"
)

// Calculator is safe for concurrent use; it holds only immutable configuration
type Calculator struct {
	cfg Config
}

// New creates a Calculator from cfg
func New(cfg Config) *Calculator { return &Calculator{cfg: cfg} }

// Config returns the calculator configuration
func (c *Calculator) Config() Config { return c.cfg }

// BaseScore is 100 minus the weighted sum of all factors
func (c *Calculator) BaseScore(f review.SuspicionFactors) float64 {
	score := 100.0
	for _, k := range review.Factors {
		score -= f.Get(k) * c.cfg.Weight(k)
	}
	return score
}

// Calculate produces the full analysis result. It never fails: empty or inconsistent
// datasets degrade to neutral values and the score always lands within [MinScore, MaxScore]
func (c *Calculator) Calculate(f review.SuspicionFactors, patterns []review.Pattern, ds review.Dataset, s review.Settings) review.AnalysisResult {
	s = s.Normalize()

	base := c.BaseScore(f)
	adjusted, steps := c.adjust(base, patterns, ds, s)
	final := c.finalize(adjusted)
	natural := c.Naturalness(ds)

	concerns := c.concerns(f, patterns)
	details := review.Details{
		TotalReviews:     ds.TotalReviews,
		AnalysisMode:     s.AnalysisMode,
		PatternsDetected: len(patterns),
		MainConcerns:     concerns,
		PositiveFactors:  c.positives(ds, patterns, natural),
		Recommendations:  recommendations(concerns),
	}

	return review.AnalysisResult{
		Score:   final,
		Level:   c.Level(final),
		Details: details,
		Breakdown: &review.Breakdown{
			SuspicionFactors: f,
			BaseScore:        base,
			AdjustedScore:    adjusted,
			FinalScore:       final,
			Adjustments:      steps,
			Confidence:       c.Confidence(final, f),
		},
		AlgorithmVersion: review.AlgorithmVersion,
	}
}

// finalize clamps then rounds
func (c *Calculator) finalize(score float64) int {
	if math.IsNaN(score) {
		score = c.cfg.MinScore
	}
	score = math.Max(c.cfg.MinScore, math.Min(c.cfg.MaxScore, score))
	return int(math.Round(score))
}

// Level buckets a final score
func (c *Calculator) Level(score int) review.TrustLevel {
	switch {
	case score >= c.cfg.Levels.High:
		return review.LevelHigh
	case score >= c.cfg.Levels.Medium:
		return review.LevelMedium
	case score >= c.cfg.Levels.Low:
		return review.LevelLow
	default:
		return review.LevelVeryLow
	}
}

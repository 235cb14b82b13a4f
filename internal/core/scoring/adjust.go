package scoring

import (
	"math"

	"reviewtrust/internal/core/review"
)

// stage names reported in Breakdown.Adjustments
const (
	StageReviewCount     = "review_count"
	StagePatternSeverity = "pattern_severity"
	StageNaturalness     = "naturalness"
	StageAnalysisMode    = "analysis_mode"
)

// adjust runs the fixed pipeline, each stage consuming the previous output
func (c *Calculator) adjust(score float64, patterns []review.Pattern, ds review.Dataset, s review.Settings) (float64, []review.Adjustment) {
	stages := []struct {
		name string
		fn   func(float64) float64
	}{
		{StageReviewCount, func(v float64) float64 { return c.ReviewCountAdjust(v, ds.TotalReviews) }},
		{StagePatternSeverity, func(v float64) float64 { return c.SeverityAdjust(v, patterns) }},
		{StageNaturalness, func(v float64) float64 { return c.NaturalnessAdjust(v, ds) }},
		{StageAnalysisMode, func(v float64) float64 { return c.ModeAdjust(v, s.AnalysisMode) }},
	}
	steps := make([]review.Adjustment, 0, len(stages))
	for _, st := range stages {
		next := st.fn(score)
		steps = append(steps, review.Adjustment{Name: st.name, Before: score, After: next})
		score = next
	}
	return score, steps
}

// ReviewCountAdjust penalizes small listings and rewards large ones
func (c *Calculator) ReviewCountAdjust(score float64, total int) float64 {
	rc := c.cfg.ReviewCount
	switch {
	case total < rc.Few:
		return score * rc.FewFactor
	case total < rc.Some:
		return score * rc.SomeFactor
	case total > rc.Many:
		return math.Min(score*rc.ManyBoost, c.cfg.MaxScore)
	}
	return score
}

// SeverityAdjust subtracts a fixed penalty per pattern; unknown severities cost nothing
func (c *Calculator) SeverityAdjust(score float64, patterns []review.Pattern) float64 {
	var penalty float64
	for _, p := range patterns {
		penalty += c.cfg.SeverityPenalty[p.Severity]
	}
	return score - penalty
}

// NaturalnessAdjust rewards realistic distributions and penalizes unrealistic ones
func (c *Calculator) NaturalnessAdjust(score float64, ds review.Dataset) float64 {
	nc := c.cfg.Naturalness
	if ds.TotalReviews < nc.MinReviews {
		return score
	}
	n := c.Naturalness(ds)
	switch {
	case n > nc.High:
		return math.Min(score*nc.HighBoost, c.cfg.MaxScore)
	case n < nc.Low:
		return score * nc.LowFactor
	}
	return score
}

// ModeAdjust applies the analysis mode multiplier
func (c *Calculator) ModeAdjust(score float64, mode review.AnalysisMode) float64 {
	switch mode {
	case review.ModeStrict:
		return score * c.cfg.Mode.StrictFactor
	case review.ModeLenient:
		return math.Min(score*c.cfg.Mode.LenientBoost, c.cfg.MaxScore)
	}
	return score
}

// Naturalness is 1 minus the Euclidean distance between observed and ideal star shares,
// floored at 0. It is 0 for an empty dataset
func (c *Calculator) Naturalness(ds review.Dataset) float64 {
	if ds.TotalReviews <= 0 {
		return 0
	}
	var sum float64
	for i, ideal := range c.cfg.Naturalness.Ideal {
		d := ds.Ratio(i+1) - ideal
		sum += d * d
	}
	return math.Max(0, 1-math.Sqrt(sum))
}

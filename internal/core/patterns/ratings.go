package patterns

import (
	"fmt"

	"reviewtrust/internal/core/review"
)

// Polarized flags distributions dominated by 1 and 5 star ratings
func (d *Detector) Polarized(ds review.Dataset, s review.Settings) Detection {
	c := d.cfg.Polarized
	if ds.TotalReviews <= 0 || ds.TotalReviews < s.MinimumReviewsForAnalysis {
		return skipped(review.FactorPolarizedRatings, "insufficient reviews")
	}

	total := float64(ds.TotalReviews)
	extreme := float64(ds.Count(1)+ds.Count(5)) / total
	middle := float64(ds.Count(2)+ds.Count(3)+ds.Count(4)) / total
	threshold := c.Threshold(s.AnalysisMode)

	if !(extreme > threshold && middle < c.MaxMiddleRatio) {
		return Detection{}
	}

	score := capped(extreme, c.Weight, c.MaxScore)
	return Detection{
		Detected: true,
		Score:    score,
		Pattern: &review.Pattern{
			Type:        review.PatternPolarized,
			Description: fmt.Sprintf("%.0f%% of ratings are 1 or 5 stars with few middle ratings", extreme*100),
			Severity:    review.SeverityHigh,
			Metadata: map[string]any{
				"extreme_ratio": extreme,
				"middle_ratio":  middle,
				"threshold":     threshold,
				"mode":          string(s.AnalysisMode),
			},
		},
	}
}

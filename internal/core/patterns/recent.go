package patterns

import (
	"fmt"
	"unicode/utf8"

	"reviewtrust/internal/core/recency"
	"reviewtrust/internal/core/review"
)

// Burst flags a large share of reviews posted within the last few weeks
func (d *Detector) Burst(ds review.Dataset, _ review.Settings) Detection {
	c := d.cfg.Burst
	var labels []string
	for _, r := range ds.RecentReviews {
		if d.recent.IsRecent(r.DateText) {
			labels = append(labels, r.DateText)
		}
	}
	count := len(labels)
	if count <= c.MinRecent {
		return skipped(review.FactorBurstPosting, "too few recent reviews")
	}

	denom := max(ds.TotalReviews, len(ds.RecentReviews))
	ratio := float64(count) / float64(denom)
	if ratio <= c.Threshold {
		return Detection{}
	}

	meta := map[string]any{
		"recent_count": count,
		"burst_ratio":  ratio,
		"threshold":    c.Threshold,
	}
	if lo, hi, n := recency.AgeSpan(labels, d.now()); n > 0 {
		meta["newest_age_days"] = lo
		meta["oldest_age_days"] = hi
	}

	return Detection{
		Detected: true,
		Score:    capped(ratio, c.Weight, c.MaxScore),
		Pattern: &review.Pattern{
			Type:        review.PatternBurst,
			Description: fmt.Sprintf("%d reviews were posted recently (%.0f%% of all reviews)", count, ratio*100),
			Severity:    review.SeverityMedium,
			Metadata:    meta,
		},
	}
}

// ShortReviews flags a large share of very short recent reviews
func (d *Detector) ShortReviews(ds review.Dataset, _ review.Settings) Detection {
	c := d.cfg.Short
	n := len(ds.RecentReviews)
	if n == 0 {
		return skipped(review.FactorShortReviews, "no recent reviews")
	}
	short := 0
	for _, r := range ds.RecentReviews {
		if r.TextLength > 0 && r.TextLength < c.MaxLength {
			short++
		}
	}
	ratio := float64(short) / float64(n)
	if ratio <= c.Threshold {
		return Detection{}
	}
	return Detection{
		Detected: true,
		Score:    capped(ratio, c.Weight, c.MaxScore),
		Pattern: &review.Pattern{
			Type:        review.PatternShort,
			Description: fmt.Sprintf("%.0f%% of recent reviews are shorter than %d characters", ratio*100, c.MaxLength),
			Severity:    review.SeverityLow,
			Metadata: map[string]any{
				"short_count": short,
				"short_ratio": ratio,
				"max_length":  c.MaxLength,
			},
		},
	}
}

// NewAccounts flags short photo-less reviews typical of throwaway accounts
func (d *Detector) NewAccounts(ds review.Dataset, _ review.Settings) Detection {
	c := d.cfg.NewAccounts
	n := len(ds.RecentReviews)
	if n == 0 {
		return skipped(review.FactorNewAccounts, "no recent reviews")
	}
	suspicious := 0
	for _, r := range ds.RecentReviews {
		if !r.HasPhotos && r.TextLength > 0 && r.TextLength < c.MaxLength {
			suspicious++
		}
	}
	ratio := float64(suspicious) / float64(n)
	if ratio <= c.Threshold {
		return Detection{}
	}
	return Detection{
		Detected: true,
		Score:    capped(ratio, c.Weight, c.MaxScore),
		Pattern: &review.Pattern{
			Type:        review.PatternNewAccounts,
			Description: fmt.Sprintf("%.0f%% of recent reviews are short and have no photos", ratio*100),
			Severity:    review.SeverityMedium,
			Metadata: map[string]any{
				"suspicious_count": suspicious,
				"suspicious_ratio": ratio,
				"max_length":       c.MaxLength,
			},
		},
	}
}

// textLen is the rune length used to filter texts for similarity
func textLen(s string) int { return utf8.RuneCountInString(s) }

package scoring

import (
	"fmt"
	"strings"

	"reviewtrust/internal/core/review"
)

// factorDescriptions is the human label of each factor
var factorDescriptions = map[review.Factor]string{
	review.FactorPolarizedRatings:  "extremely polarized ratings",
	review.FactorBurstPosting:      "a burst of recently posted reviews",
	review.FactorShortReviews:      "many very short reviews",
	review.FactorDuplicatePatterns: "near-identical review texts",
	review.FactorNewAccounts:       "reviews typical of new accounts",
}

// Describe returns the human label of f
func Describe(f review.Factor) string {
	if d, ok := factorDescriptions[f]; ok {
		return d
	}
	return string(f)
}

// Recommendation messages
const (
	RecommendLowRisk      = "Low risk: the reviews look trustworthy"
	RecommendModerateRisk = "Moderate risk: read the reviews with some caution"
	RecommendHighRisk     = "High risk: cross-check with other sources before deciding"
	RecommendManualReview = "Read individual reviews carefully to verify their content"
)

func (c *Calculator) concerns(f review.SuspicionFactors, patterns []review.Pattern) []review.Concern {
	out := []review.Concern{}

	var high []string
	for _, p := range patterns {
		if p.Severity == review.SeverityHigh {
			high = append(high, Describe(p.Type.Factor()))
		}
	}
	if len(high) > 0 {
		out = append(out, review.Concern{
			Type:    review.ConcernHighSeverityPatterns,
			Message: fmt.Sprintf("%d high severity patterns detected: %s", len(high), strings.Join(high, ", ")),
		})
	}

	// ties go to the earliest factor in evaluation order
	var (
		top    review.Factor
		topVal float64
	)
	for _, k := range review.Factors {
		if v := f.Get(k); v > topVal {
			top, topVal = k, v
		}
	}
	if topVal > c.cfg.Narrative.DominantFactorMin {
		out = append(out, review.Concern{
			Type:    review.ConcernDominantFactor,
			Message: fmt.Sprintf("Strongest signal: %s", Describe(top)),
			Factor:  top,
		})
	}
	return out
}

func (c *Calculator) positives(ds review.Dataset, patterns []review.Pattern, naturalness float64) []string {
	out := []string{}
	if ds.TotalReviews >= c.cfg.Narrative.ManyReviews {
		out = append(out, fmt.Sprintf("Large number of reviews (%d)", ds.TotalReviews))
	}
	if len(patterns) == 0 {
		out = append(out, "No suspicious patterns detected")
	}
	if naturalness > c.cfg.Narrative.NaturalPositive {
		out = append(out, "Natural rating distribution")
	}
	return out
}

func recommendations(concerns []review.Concern) []string {
	var out []string
	switch len(concerns) {
	case 0:
		out = append(out, RecommendLowRisk)
	case 1:
		out = append(out, RecommendModerateRisk)
	default:
		out = append(out, RecommendHighRisk)
	}
	for _, c := range concerns {
		if c.Type == review.ConcernHighSeverityPatterns {
			out = append(out, RecommendManualReview)
			break
		}
	}
	return out
}

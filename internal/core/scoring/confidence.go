package scoring

import (
	"math"

	"reviewtrust/internal/core/review"
)

// Confidence estimates how much the final score can be trusted. It does not feed back into scoring
func (c *Calculator) Confidence(final int, f review.SuspicionFactors) float64 {
	cc := c.cfg.Confidence
	conf := cc.Base
	if final > cc.ExtremeHigh || final < cc.ExtremeLow {
		conf -= cc.ExtremePenalty
	}
	if f.NonZero() >= cc.ActiveFactors {
		conf += cc.ActiveBonus
	}
	if f.Sum()/float64(len(review.Factors)) > cc.MeanFactorMin {
		conf += cc.MeanFactorBonus
	}
	return math.Max(cc.Min, math.Min(cc.Max, conf))
}

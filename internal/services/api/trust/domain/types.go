package domain

import (
	"time"

	"reviewtrust/internal/core/review"
)

// AnalysisRecord is the persisted form of one analysis
type AnalysisRecord struct {
	AnalysisID       string
	PlaceID          string
	PlaceName        string
	URL              string
	Lang             string
	Score            int
	Level            review.TrustLevel
	Mode             review.AnalysisMode
	TotalReviews     int
	PatternsDetected int
	Factors          review.SuspicionFactors
	Confidence       float64
	AlgorithmVersion int
	CreatedAt        time.Time
}

// PatternEvent is one detected pattern sent to the analytics sink
type PatternEvent struct {
	AnalysisID       string
	PlaceID          string
	Type             review.PatternType
	Severity         review.Severity
	Score            float64
	Mode             review.AnalysisMode
	AlgorithmVersion int
	CreatedAt        time.Time
}

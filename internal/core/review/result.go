package review

// TrustLevel is the qualitative bucket of a final score
type TrustLevel string

const (
	// LevelHigh is a score at or above the high threshold
	LevelHigh TrustLevel = "high"
	// LevelMedium is a score at or above the medium threshold
	LevelMedium TrustLevel = "medium"
	// LevelLow is a score at or above the low threshold
	LevelLow TrustLevel = "low"
	// LevelVeryLow is anything below the low threshold
	LevelVeryLow TrustLevel = "very_low"
)

// ConcernType classifies a main concern so recommendations can react to it
type ConcernType string

const (
	// ConcernHighSeverityPatterns summarizes all HIGH severity patterns
	ConcernHighSeverityPatterns ConcernType = "high_severity_patterns"
	// ConcernDominantFactor names the single strongest suspicion factor
	ConcernDominantFactor ConcernType = "dominant_factor"
)

// Concern is one entry of Details.MainConcerns
type Concern struct {
	Type    ConcernType `json:"type"`
	Message string      `json:"message"`
	Factor  Factor      `json:"factor,omitempty"`
}

// Details is the human facing part of a result
type Details struct {
	TotalReviews     int          `json:"total_reviews"`
	AnalysisMode     AnalysisMode `json:"analysis_mode"`
	PatternsDetected int          `json:"patterns_detected"`
	MainConcerns     []Concern    `json:"main_concerns"`
	PositiveFactors  []string     `json:"positive_factors"`
	Recommendations  []string     `json:"recommendations"`
}

// Adjustment records one stage of the score adjustment pipeline
type Adjustment struct {
	Name   string  `json:"name"`
	Before float64 `json:"before"`
	After  float64 `json:"after"`
}

// Breakdown is the diagnostic part of a result
type Breakdown struct {
	SuspicionFactors SuspicionFactors `json:"suspicion_factors"`
	BaseScore        float64          `json:"base_score"`
	AdjustedScore    float64          `json:"adjusted_score"`
	FinalScore       int              `json:"final_score"`
	Adjustments      []Adjustment     `json:"adjustments"`
	Confidence       float64          `json:"confidence"`
}

// AnalysisResult is the output of the score calculator. Score is always within [10,100]
type AnalysisResult struct {
	Score            int        `json:"score"`
	Level            TrustLevel `json:"level"`
	Details          Details    `json:"details"`
	Breakdown        *Breakdown `json:"breakdown,omitempty"`
	AlgorithmVersion int        `json:"algorithm_version"`
}

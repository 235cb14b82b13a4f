package review

import "strings"

// AnalysisMode shifts detection thresholds and applies a final score multiplier
type AnalysisMode string

const (
	// ModeLenient relaxes thresholds and boosts the final score
	ModeLenient AnalysisMode = "lenient"
	// ModeStandard applies no shift
	ModeStandard AnalysisMode = "standard"
	// ModeStrict tightens thresholds and dampens the final score
	ModeStrict AnalysisMode = "strict"
)

// DefaultMinimumReviews gates the polarization heuristic when settings omit it
const DefaultMinimumReviews = 5

// ParseMode maps s to a known mode, falling back to ModeStandard
func ParseMode(s string) AnalysisMode {
	switch AnalysisMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeLenient:
		return ModeLenient
	case ModeStrict:
		return ModeStrict
	default:
		return ModeStandard
	}
}

// Settings is the caller supplied configuration for one analysis
type Settings struct {
	AnalysisMode              AnalysisMode `json:"analysis_mode"`
	MinimumReviewsForAnalysis int          `json:"minimum_reviews_for_analysis"`
	ShowDetailedAnalysis      bool         `json:"show_detailed_analysis"`
}

// DefaultSettings returns standard mode with the default review minimum
func DefaultSettings() Settings {
	return Settings{
		AnalysisMode:              ModeStandard,
		MinimumReviewsForAnalysis: DefaultMinimumReviews,
		ShowDetailedAnalysis:      true,
	}
}

// Normalize applies defaults once so the core never re-checks settings shape.
// Unknown modes become standard and a non-positive minimum becomes DefaultMinimumReviews.
// A zero MinimumReviewsForAnalysis therefore means "use the default", never "no minimum"
func (s Settings) Normalize() Settings {
	s.AnalysisMode = ParseMode(string(s.AnalysisMode))
	if s.MinimumReviewsForAnalysis <= 0 {
		s.MinimumReviewsForAnalysis = DefaultMinimumReviews
	}
	return s
}

// Package review holds the data model shared by the pattern detector and the score calculator
package review

// AlgorithmVersion is stamped on every result so stored analyses can be compared across releases
const AlgorithmVersion = 1

// Review is a single scraped review record, most recent first
type Review struct {
	Text       string `json:"text"`
	TextLength int    `json:"text_length"`
	DateText   string `json:"date_text"` // raw relative date, e.g. "3日前" or "3 days ago"
	HasPhotos  bool   `json:"has_photos"`
}

// Dataset is the read-only input produced by the extraction layer.
// TotalReviews may come from an aggregate label and need not equal the sum of Ratings
type Dataset struct {
	Ratings       map[int]int `json:"ratings"` // star (1..5) -> count
	TotalReviews  int         `json:"total_reviews"`
	RecentReviews []Review    `json:"recent_reviews"`
}

// Count returns the number of reviews with the given star value, 0 when absent or negative
func (d Dataset) Count(star int) int {
	if d.Ratings == nil {
		return 0
	}
	if n := d.Ratings[star]; n > 0 {
		return n
	}
	return 0
}

// Ratio returns Count(star)/TotalReviews, 0 when there are no reviews
func (d Dataset) Ratio(star int) float64 {
	if d.TotalReviews <= 0 {
		return 0
	}
	return float64(d.Count(star)) / float64(d.TotalReviews)
}

// Severity is the qualitative weight of a detected pattern
type Severity string

const (
	// SeverityLow marks weak signals
	SeverityLow Severity = "LOW"
	// SeverityMedium marks moderate signals
	SeverityMedium Severity = "MEDIUM"
	// SeverityHigh marks strong signals
	SeverityHigh Severity = "HIGH"
)

// Valid reports whether s is one of the known severities
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Factor names one suspicion factor
type Factor string

const (
	// FactorPolarizedRatings is the share of 1 and 5 star ratings
	FactorPolarizedRatings Factor = "polarized_ratings"
	// FactorBurstPosting is the share of reviews posted recently
	FactorBurstPosting Factor = "burst_posting"
	// FactorShortReviews is the share of very short reviews
	FactorShortReviews Factor = "short_reviews"
	// FactorDuplicatePatterns is the number of near-identical review pairs
	FactorDuplicatePatterns Factor = "duplicate_patterns"
	// FactorNewAccounts is the share of low-effort reviews without photos
	FactorNewAccounts Factor = "new_accounts"
)

// Factors lists every factor in heuristic evaluation order
var Factors = [...]Factor{
	FactorPolarizedRatings,
	FactorBurstPosting,
	FactorShortReviews,
	FactorDuplicatePatterns,
	FactorNewAccounts,
}

// Valid reports whether f is one of Factors
func (f Factor) Valid() bool {
	for _, k := range Factors {
		if k == f {
			return true
		}
	}
	return false
}

// PatternType identifies which heuristic produced a pattern
type PatternType string

const (
	// PatternPolarized is produced by the polarized ratings heuristic
	PatternPolarized PatternType = "POLARIZED_RATINGS"
	// PatternBurst is produced by the burst posting heuristic
	PatternBurst PatternType = "BURST_POSTING"
	// PatternShort is produced by the short reviews heuristic
	PatternShort PatternType = "SHORT_REVIEWS"
	// PatternDuplicate is produced by the duplicate text heuristic
	PatternDuplicate PatternType = "DUPLICATE_PATTERNS"
	// PatternNewAccounts is produced by the new accounts heuristic
	PatternNewAccounts PatternType = "NEW_ACCOUNTS"
)

// Factor returns the suspicion factor fed by this pattern type
func (t PatternType) Factor() Factor {
	switch t {
	case PatternPolarized:
		return FactorPolarizedRatings
	case PatternBurst:
		return FactorBurstPosting
	case PatternShort:
		return FactorShortReviews
	case PatternDuplicate:
		return FactorDuplicatePatterns
	case PatternNewAccounts:
		return FactorNewAccounts
	}
	return ""
}

// SuspicionFactors holds one non-negative severity score per factor
type SuspicionFactors struct {
	PolarizedRatings  float64 `json:"polarized_ratings"`
	BurstPosting      float64 `json:"burst_posting"`
	ShortReviews      float64 `json:"short_reviews"`
	DuplicatePatterns float64 `json:"duplicate_patterns"`
	NewAccounts       float64 `json:"new_accounts"`
}

// Get returns the value for f, 0 for unknown factors
func (s SuspicionFactors) Get(f Factor) float64 {
	switch f {
	case FactorPolarizedRatings:
		return s.PolarizedRatings
	case FactorBurstPosting:
		return s.BurstPosting
	case FactorShortReviews:
		return s.ShortReviews
	case FactorDuplicatePatterns:
		return s.DuplicatePatterns
	case FactorNewAccounts:
		return s.NewAccounts
	}
	return 0
}

// Set stores v for f; unknown factors are ignored and negative values clamp to 0
func (s *SuspicionFactors) Set(f Factor, v float64) {
	if v < 0 {
		v = 0
	}
	switch f {
	case FactorPolarizedRatings:
		s.PolarizedRatings = v
	case FactorBurstPosting:
		s.BurstPosting = v
	case FactorShortReviews:
		s.ShortReviews = v
	case FactorDuplicatePatterns:
		s.DuplicatePatterns = v
	case FactorNewAccounts:
		s.NewAccounts = v
	}
}

// Sum returns the total of all factor values
func (s SuspicionFactors) Sum() float64 {
	var total float64
	for _, f := range Factors {
		total += s.Get(f)
	}
	return total
}

// NonZero counts the factors with a positive value
func (s SuspicionFactors) NonZero() int {
	n := 0
	for _, f := range Factors {
		if s.Get(f) > 0 {
			n++
		}
	}
	return n
}

// Pattern is one detected heuristic, created fresh per analysis run
type Pattern struct {
	Type        PatternType    `json:"type"`
	Description string         `json:"description"`
	Severity    Severity       `json:"severity"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

package scoring

import "reviewtrust/internal/core/review"

// ReviewCountConfig scales the score by listing volume.
// The tightest band wins: below Few applies FewFactor, below Some applies SomeFactor
type ReviewCountConfig struct {
	Few        int     `yaml:"few" json:"few"`
	FewFactor  float64 `yaml:"few_factor" json:"few_factor"`
	Some       int     `yaml:"some" json:"some"`
	SomeFactor float64 `yaml:"some_factor" json:"some_factor"`
	Many       int     `yaml:"many" json:"many"`
	ManyBoost  float64 `yaml:"many_boost" json:"many_boost"`
}

// NaturalnessConfig compares the rating distribution with an ideal one
type NaturalnessConfig struct {
	// adjustment is skipped below MinReviews
	MinReviews int `yaml:"min_reviews" json:"min_reviews"`
	// Ideal holds the target share for stars 1..5
	Ideal     [5]float64 `yaml:"ideal" json:"ideal"`
	High      float64    `yaml:"high" json:"high"`
	HighBoost float64    `yaml:"high_boost" json:"high_boost"`
	Low       float64    `yaml:"low" json:"low"`
	LowFactor float64    `yaml:"low_factor" json:"low_factor"`
}

// ModeConfig is the final multiplier per analysis mode
type ModeConfig struct {
	StrictFactor float64 `yaml:"strict_factor" json:"strict_factor"`
	LenientBoost float64 `yaml:"lenient_boost" json:"lenient_boost"`
}

// LevelConfig holds the inclusive lower bounds of each trust level
type LevelConfig struct {
	High   int `yaml:"high" json:"high"`
	Medium int `yaml:"medium" json:"medium"`
	Low    int `yaml:"low" json:"low"`
}

// NarrativeConfig tunes concern and positive factor generation
type NarrativeConfig struct {
	DominantFactorMin float64 `yaml:"dominant_factor_min" json:"dominant_factor_min"`
	ManyReviews       int     `yaml:"many_reviews" json:"many_reviews"`
	NaturalPositive   float64 `yaml:"natural_positive" json:"natural_positive"`
}

// ConfidenceConfig tunes the diagnostic confidence estimate
type ConfidenceConfig struct {
	Base            float64 `yaml:"base" json:"base"`
	ExtremeHigh     int     `yaml:"extreme_high" json:"extreme_high"`
	ExtremeLow      int     `yaml:"extreme_low" json:"extreme_low"`
	ExtremePenalty  float64 `yaml:"extreme_penalty" json:"extreme_penalty"`
	ActiveFactors   int     `yaml:"active_factors" json:"active_factors"`
	ActiveBonus     float64 `yaml:"active_bonus" json:"active_bonus"`
	MeanFactorMin   float64 `yaml:"mean_factor_min" json:"mean_factor_min"`
	MeanFactorBonus float64 `yaml:"mean_factor_bonus" json:"mean_factor_bonus"`
	Min             float64 `yaml:"min" json:"min"`
	Max             float64 `yaml:"max" json:"max"`
}

// Config is the immutable calculator configuration
type Config struct {
	// Weights per factor; factors missing from the table weigh 1.0
	Weights         map[review.Factor]float64   `yaml:"weights" json:"weights"`
	SeverityPenalty map[review.Severity]float64 `yaml:"severity_penalty" json:"severity_penalty"`
	ReviewCount     ReviewCountConfig           `yaml:"review_count" json:"review_count"`
	Naturalness     NaturalnessConfig           `yaml:"naturalness" json:"naturalness"`
	Mode            ModeConfig                  `yaml:"mode" json:"mode"`
	MinScore        float64                     `yaml:"min_score" json:"min_score"`
	MaxScore        float64                     `yaml:"max_score" json:"max_score"`
	Levels          LevelConfig                 `yaml:"levels" json:"levels"`
	Narrative       NarrativeConfig             `yaml:"narrative" json:"narrative"`
	Confidence      ConfidenceConfig            `yaml:"confidence" json:"confidence"`
}

// DefaultConfig returns the production weights and thresholds
func DefaultConfig() Config {
	return Config{
		Weights: map[review.Factor]float64{
			review.FactorPolarizedRatings:  1.0,
			review.FactorBurstPosting:      0.8,
			review.FactorShortReviews:      0.6,
			review.FactorDuplicatePatterns: 1.2,
			review.FactorNewAccounts:       0.5,
		},
		SeverityPenalty: map[review.Severity]float64{
			review.SeverityHigh:   5,
			review.SeverityMedium: 2,
			review.SeverityLow:    0,
		},
		ReviewCount: ReviewCountConfig{
			Few: 5, FewFactor: 0.8,
			Some: 10, SomeFactor: 0.9,
			Many: 100, ManyBoost: 1.05,
		},
		Naturalness: NaturalnessConfig{
			MinReviews: 5,
			Ideal:      [5]float64{0.05, 0.05, 0.15, 0.35, 0.4},
			High:       0.8,
			HighBoost:  1.03,
			Low:        0.3,
			LowFactor:  0.95,
		},
		Mode:     ModeConfig{StrictFactor: 0.95, LenientBoost: 1.05},
		MinScore: 10,
		MaxScore: 100,
		Levels:   LevelConfig{High: 80, Medium: 60, Low: 40},
		Narrative: NarrativeConfig{
			DominantFactorMin: 30,
			ManyReviews:       50,
			NaturalPositive:   0.7,
		},
		Confidence: ConfidenceConfig{
			Base:            0.8,
			ExtremeHigh:     90,
			ExtremeLow:      20,
			ExtremePenalty:  0.1,
			ActiveFactors:   3,
			ActiveBonus:     0.1,
			MeanFactorMin:   20,
			MeanFactorBonus: 0.05,
			Min:             0.5,
			Max:             1.0,
		},
	}
}

// Weight returns the weight of f, 1.0 when the table has no entry
func (c Config) Weight(f review.Factor) float64 {
	if w, ok := c.Weights[f]; ok {
		return w
	}
	return 1.0
}

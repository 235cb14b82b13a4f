package patterns

import (
	"reviewtrust/internal/core/recency"
	"reviewtrust/internal/core/review"
)

// PolarizedConfig tunes the polarized ratings heuristic
type PolarizedConfig struct {
	// extreme-share thresholds per analysis mode
	StrictThreshold   float64 `yaml:"strict_threshold" json:"strict_threshold"`
	StandardThreshold float64 `yaml:"standard_threshold" json:"standard_threshold"`
	LenientThreshold  float64 `yaml:"lenient_threshold" json:"lenient_threshold"`
	// middle share must stay strictly below this
	MaxMiddleRatio float64 `yaml:"max_middle_ratio" json:"max_middle_ratio"`
	Weight         float64 `yaml:"weight" json:"weight"`
	MaxScore       float64 `yaml:"max_score" json:"max_score"`
}

// Threshold returns the extreme-share threshold for mode
func (c PolarizedConfig) Threshold(mode review.AnalysisMode) float64 {
	switch mode {
	case review.ModeStrict:
		return c.StrictThreshold
	case review.ModeLenient:
		return c.LenientThreshold
	default:
		return c.StandardThreshold
	}
}

// BurstConfig tunes the burst posting heuristic
type BurstConfig struct {
	// heuristic is skipped unless more than MinRecent labels match
	MinRecent int     `yaml:"min_recent" json:"min_recent"`
	Threshold float64 `yaml:"threshold" json:"threshold"`
	Weight    float64 `yaml:"weight" json:"weight"`
	MaxScore  float64 `yaml:"max_score" json:"max_score"`
}

// RatioConfig tunes the short review and new account heuristics.
// A review counts when 0 < text_length < MaxLength
type RatioConfig struct {
	MaxLength int     `yaml:"max_length" json:"max_length"`
	Threshold float64 `yaml:"threshold" json:"threshold"`
	Weight    float64 `yaml:"weight" json:"weight"`
	MaxScore  float64 `yaml:"max_score" json:"max_score"`
}

// DuplicateConfig tunes the duplicate text heuristic
type DuplicateConfig struct {
	// texts with at most MinTextLength runes are ignored
	MinTextLength int `yaml:"min_text_length" json:"min_text_length"`
	MinTexts      int `yaml:"min_texts" json:"min_texts"`
	// pairs strictly above this Jaccard similarity are similar
	Similarity float64 `yaml:"similarity" json:"similarity"`
	PairScore  float64 `yaml:"pair_score" json:"pair_score"`
	Weight     float64 `yaml:"weight" json:"weight"`
	MaxScore   float64 `yaml:"max_score" json:"max_score"`
	// number of similar pairs kept in metadata
	KeepPairs int `yaml:"keep_pairs" json:"keep_pairs"`
}

// Config is the immutable detector configuration
type Config struct {
	Polarized   PolarizedConfig `yaml:"polarized" json:"polarized"`
	Burst       BurstConfig     `yaml:"burst" json:"burst"`
	Short       RatioConfig     `yaml:"short" json:"short"`
	Duplicate   DuplicateConfig `yaml:"duplicate" json:"duplicate"`
	NewAccounts RatioConfig     `yaml:"new_accounts" json:"new_accounts"`
	// RecentTables drive burst keyword matching
	RecentTables []recency.Table `yaml:"recent_tables" json:"recent_tables"`
}

// DefaultConfig returns the production thresholds
func DefaultConfig() Config {
	return Config{
		Polarized: PolarizedConfig{
			StrictThreshold:   0.6,
			StandardThreshold: 0.7,
			LenientThreshold:  0.8,
			MaxMiddleRatio:    0.2,
			Weight:            1.0,
			MaxScore:          90,
		},
		Burst: BurstConfig{
			MinRecent: 5,
			Threshold: 0.3,
			Weight:    0.8,
			MaxScore:  80,
		},
		Short: RatioConfig{
			MaxLength: 10,
			Threshold: 0.4,
			Weight:    0.6,
			MaxScore:  60,
		},
		Duplicate: DuplicateConfig{
			MinTextLength: 5,
			MinTexts:      3,
			Similarity:    0.8,
			PairScore:     15,
			Weight:        1.2,
			MaxScore:      100,
			KeepPairs:     3,
		},
		NewAccounts: RatioConfig{
			MaxLength: 20,
			Threshold: 0.3,
			Weight:    0.5,
			MaxScore:  50,
		},
		RecentTables: recency.DefaultTables(),
	}
}

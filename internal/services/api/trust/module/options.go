package module

import (
	"time"

	"reviewtrust/internal/core/profile"
	"reviewtrust/internal/core/review"
	"reviewtrust/internal/platform/config"
)

// Options controls the trust module
type Options struct {
	Mode             review.AnalysisMode
	MinReviews       int
	Detailed         bool
	ProfilePath      string
	HistoryLimit     int
	StatementTimeout time.Duration
	WriteTimeout     time.Duration
	AutoMigrate      bool

	// Profile wins over ProfilePath when set
	Profile *profile.Set
}

// FromConfig reads with CORE_TRUST_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_TRUST_")
	return Options{
		Mode: review.AnalysisMode(c.MayEnum("MODE", string(review.ModeStandard),
			string(review.ModeLenient), string(review.ModeStandard), string(review.ModeStrict))),
		MinReviews:       c.MayIntIn("MIN_REVIEWS", review.DefaultMinimumReviews, 1, 100000),
		Detailed:         c.MayBool("DETAILED", true),
		ProfilePath:      c.MayString("PROFILE", ""),
		HistoryLimit:     c.MayIntIn("HISTORY_LIMIT", 20, 1, 200),
		StatementTimeout: c.MayDuration("STATEMENT_TIMEOUT", 2*time.Second),
		WriteTimeout:     c.MayDuration("WRITE_TIMEOUT", 3*time.Second),
		AutoMigrate:      c.MayBool("AUTO_MIGRATE", true),
	}
}

// Settings returns the default analysis settings described by o
func (o Options) Settings() review.Settings {
	return review.Settings{
		AnalysisMode:              o.Mode,
		MinimumReviewsForAnalysis: o.MinReviews,
		ShowDetailedAnalysis:      o.Detailed,
	}.Normalize()
}

// LoadProfile resolves the analysis profile: explicit Profile, then ProfilePath, then defaults
func (o Options) LoadProfile() (profile.Set, error) {
	if o.Profile != nil {
		return *o.Profile, nil
	}
	if o.ProfilePath == "" {
		return profile.Defaults(), nil
	}
	return profile.LoadFile(o.ProfilePath, profile.Defaults())
}

// Package profile loads YAML analysis profiles that override detector and calculator thresholds.
// A profile only names what it changes; everything else keeps the base configuration
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"reviewtrust/internal/core/patterns"
	"reviewtrust/internal/core/recency"
	"reviewtrust/internal/core/review"
	"reviewtrust/internal/core/scoring"
	perr "reviewtrust/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

// Set is the pair of component configs a profile produces
type Set struct {
	Name     string
	Patterns patterns.Config
	Scoring  scoring.Config
}

// Defaults returns the production configuration under the name "default"
func Defaults() Set {
	return Set{
		Name:     "default",
		Patterns: patterns.DefaultConfig(),
		Scoring:  scoring.DefaultConfig(),
	}
}

// document is the on-disk shape; it is decoded over a copy of the base set
type document struct {
	Name     string          `yaml:"name"`
	Patterns patterns.Config `yaml:"patterns"`
	Scoring  scoring.Config  `yaml:"scoring"`
	// RecentTables extend the base keyword tables instead of replacing them
	RecentTables []recency.Table `yaml:"recent_tables"`
}

// LoadFile reads a profile from path and applies it over base
func LoadFile(path string, base Set) (Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Set{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read profile %s", path)
	}
	return Load(bytes.NewReader(b), base)
}

// Load decodes a profile from r and applies it over base. base is never mutated.
// Unknown keys are rejected and the result is validated before it is returned
func Load(r io.Reader, base Set) (Set, error) {
	doc := document{
		Name:     base.Name,
		Patterns: clonePatterns(base.Patterns),
		Scoring:  cloneScoring(base.Scoring),
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Set{}, perr.Wrapf(err, perr.ErrorCodeValidation, "decode profile")
	}

	out := Set{Name: doc.Name, Patterns: doc.Patterns, Scoring: doc.Scoring}
	if len(doc.RecentTables) > 0 {
		out.Patterns.RecentTables = recency.MergeTables(out.Patterns.RecentTables, doc.RecentTables...)
	}
	if err := Validate(out); err != nil {
		return Set{}, err
	}
	return out, nil
}

// Validate checks ranges that would break the score contract
func Validate(s Set) error {
	p, c := s.Patterns, s.Scoring

	ratios := []struct {
		field string
		v     float64
	}{
		{"patterns.polarized.strict_threshold", p.Polarized.StrictThreshold},
		{"patterns.polarized.standard_threshold", p.Polarized.StandardThreshold},
		{"patterns.polarized.lenient_threshold", p.Polarized.LenientThreshold},
		{"patterns.polarized.max_middle_ratio", p.Polarized.MaxMiddleRatio},
		{"patterns.burst.threshold", p.Burst.Threshold},
		{"patterns.short.threshold", p.Short.Threshold},
		{"patterns.duplicate.similarity", p.Duplicate.Similarity},
		{"patterns.new_accounts.threshold", p.NewAccounts.Threshold},
		{"scoring.naturalness.high", c.Naturalness.High},
		{"scoring.naturalness.low", c.Naturalness.Low},
	}
	for i, v := range c.Naturalness.Ideal {
		ratios = append(ratios, struct {
			field string
			v     float64
		}{fmt.Sprintf("scoring.naturalness.ideal[%d]", i), v})
	}
	for _, r := range ratios {
		if r.v < 0 || r.v > 1 {
			return perr.Validationf(r.field, "%s must be within [0,1], got %g", r.field, r.v)
		}
	}

	nonNeg := []struct {
		field string
		v     float64
	}{
		{"patterns.polarized.weight", p.Polarized.Weight},
		{"patterns.polarized.max_score", p.Polarized.MaxScore},
		{"patterns.burst.weight", p.Burst.Weight},
		{"patterns.burst.max_score", p.Burst.MaxScore},
		{"patterns.short.weight", p.Short.Weight},
		{"patterns.short.max_score", p.Short.MaxScore},
		{"patterns.duplicate.pair_score", p.Duplicate.PairScore},
		{"patterns.duplicate.weight", p.Duplicate.Weight},
		{"patterns.duplicate.max_score", p.Duplicate.MaxScore},
		{"patterns.new_accounts.weight", p.NewAccounts.Weight},
		{"patterns.new_accounts.max_score", p.NewAccounts.MaxScore},
	}
	for _, f := range slices.Sorted(maps.Keys(c.Weights)) {
		nonNeg = append(nonNeg, struct {
			field string
			v     float64
		}{"scoring.weights." + string(f), c.Weights[f]})
	}
	for _, sev := range slices.Sorted(maps.Keys(c.SeverityPenalty)) {
		nonNeg = append(nonNeg, struct {
			field string
			v     float64
		}{"scoring.severity_penalty." + string(sev), c.SeverityPenalty[sev]})
	}
	for _, n := range nonNeg {
		if n.v < 0 {
			return perr.Validationf(n.field, "%s must not be negative, got %g", n.field, n.v)
		}
	}

	// multipliers must keep the score order of their input
	multipliers := []struct {
		field string
		v     float64
	}{
		{"scoring.review_count.few_factor", c.ReviewCount.FewFactor},
		{"scoring.review_count.some_factor", c.ReviewCount.SomeFactor},
		{"scoring.review_count.many_boost", c.ReviewCount.ManyBoost},
		{"scoring.naturalness.high_boost", c.Naturalness.HighBoost},
		{"scoring.naturalness.low_factor", c.Naturalness.LowFactor},
		{"scoring.mode.strict_factor", c.Mode.StrictFactor},
		{"scoring.mode.lenient_boost", c.Mode.LenientBoost},
	}
	for _, m := range multipliers {
		if !(m.v > 0) {
			return perr.Validationf(m.field, "%s must be positive, got %g", m.field, m.v)
		}
	}

	for f := range c.Weights {
		if !f.Valid() {
			return perr.Validationf("scoring.weights", "unknown factor %q", f)
		}
	}
	for sev := range c.SeverityPenalty {
		if !sev.Valid() {
			return perr.Validationf("scoring.severity_penalty", "unknown severity %q", sev)
		}
	}

	if c.MinScore < 0 || c.MaxScore > 100 || c.MinScore >= c.MaxScore {
		return perr.Validationf("scoring.min_score",
			"score bounds must satisfy 0 <= min < max <= 100, got [%g,%g]", c.MinScore, c.MaxScore)
	}
	if !(c.Levels.High > c.Levels.Medium && c.Levels.Medium > c.Levels.Low) {
		return perr.Validationf("scoring.levels",
			"levels must be strictly descending, got high=%d medium=%d low=%d",
			c.Levels.High, c.Levels.Medium, c.Levels.Low)
	}
	if c.Confidence.Min > c.Confidence.Max {
		return perr.Validationf("scoring.confidence.min", "confidence min %g exceeds max %g",
			c.Confidence.Min, c.Confidence.Max)
	}
	if p.Duplicate.KeepPairs < 0 || p.Duplicate.MinTexts < 2 {
		return perr.Validationf("patterns.duplicate",
			"need min_texts >= 2 and keep_pairs >= 0, got %d and %d", p.Duplicate.MinTexts, p.Duplicate.KeepPairs)
	}
	return nil
}

// Describe is a one line summary for startup logs
func (s Set) Describe() string {
	return fmt.Sprintf("%s (%d recent keywords, polarized standard=%g, weights=%d)",
		s.Name, len(recency.NewMatcher(s.Patterns.RecentTables...).Keywords()),
		s.Patterns.Polarized.StandardThreshold, len(s.Scoring.Weights))
}

func clonePatterns(c patterns.Config) patterns.Config {
	c.RecentTables = recency.MergeTables(c.RecentTables)
	return c
}

func cloneScoring(c scoring.Config) scoring.Config {
	c.Weights = maps.Clone(c.Weights)
	c.SeverityPenalty = maps.Clone(c.SeverityPenalty)
	if c.Weights == nil {
		c.Weights = map[review.Factor]float64{}
	}
	if c.SeverityPenalty == nil {
		c.SeverityPenalty = map[review.Severity]float64{}
	}
	return c
}

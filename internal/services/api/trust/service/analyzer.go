package service

import (
	"reviewtrust/internal/core/patterns"
	"reviewtrust/internal/core/profile"
	"reviewtrust/internal/core/review"
	"reviewtrust/internal/core/scoring"
)

// Analyzer runs the pattern detector and the score calculator of one profile.
// It holds no per call state and is safe for concurrent use
type Analyzer struct {
	profile  string
	detector *patterns.Detector
	calc     *scoring.Calculator
}

// NewAnalyzer builds both core components from set; opts tune the detector
func NewAnalyzer(set profile.Set, opts ...patterns.Option) *Analyzer {
	return &Analyzer{
		profile:  set.Name,
		detector: patterns.New(set.Patterns, opts...),
		calc:     scoring.New(set.Scoring),
	}
}

// Profile returns the name of the profile the analyzer was built from
func (a *Analyzer) Profile() string { return a.profile }

// Run detects patterns then scores them; s is normalized before use
func (a *Analyzer) Run(ds review.Dataset, s review.Settings) (patterns.Result, review.AnalysisResult) {
	s = s.Normalize()
	det := a.detector.DetectAll(ds, s)
	res := a.calc.Calculate(det.Factors, det.Patterns, ds, s)
	return det, res
}

package review

import "testing"

func TestSettings_Normalize(t *testing.T) {
	cases := []struct {
		name string
		in   Settings
		mode AnalysisMode
		min  int
	}{
		{"zero value", Settings{}, ModeStandard, DefaultMinimumReviews},
		{"unknown mode", Settings{AnalysisMode: "paranoid", MinimumReviewsForAnalysis: 8}, ModeStandard, 8},
		{"case and space", Settings{AnalysisMode: " Strict "}, ModeStrict, DefaultMinimumReviews},
		{"zero minimum means default", Settings{AnalysisMode: ModeStrict, MinimumReviewsForAnalysis: 0}, ModeStrict, DefaultMinimumReviews},
		{"negative minimum", Settings{AnalysisMode: ModeLenient, MinimumReviewsForAnalysis: -3}, ModeLenient, DefaultMinimumReviews},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if got.AnalysisMode != tc.mode || got.MinimumReviewsForAnalysis != tc.min {
				t.Fatalf("Normalize = %+v", got)
			}
		})
	}

	d := DefaultSettings()
	if d.AnalysisMode != ModeStandard || !d.ShowDetailedAnalysis || d.MinimumReviewsForAnalysis != 5 {
		t.Fatalf("DefaultSettings = %+v", d)
	}
}

func TestDataset_CountAndRatio(t *testing.T) {
	var empty Dataset
	if empty.Count(5) != 0 || empty.Ratio(5) != 0 {
		t.Fatal("nil ratings must read as zero")
	}

	ds := Dataset{Ratings: map[int]int{1: 10, 5: 30, 3: -4}, TotalReviews: 40}
	if ds.Count(3) != 0 {
		t.Fatal("negative counts must read as zero")
	}
	if ds.Ratio(5) != 0.75 {
		t.Fatalf("Ratio(5) = %v", ds.Ratio(5))
	}
}

func TestFactorsAndPatternTypes(t *testing.T) {
	types := []PatternType{PatternPolarized, PatternBurst, PatternShort, PatternDuplicate, PatternNewAccounts}
	for i, pt := range types {
		if pt.Factor() != Factors[i] {
			t.Fatalf("%s maps to %s, want %s", pt, pt.Factor(), Factors[i])
		}
		if !pt.Factor().Valid() {
			t.Fatalf("%s should be valid", pt.Factor())
		}
	}
	if PatternType("X").Factor() != "" || Factor("x").Valid() {
		t.Fatal("unknown values must not map")
	}
	if !SeverityHigh.Valid() || Severity("CRITICAL").Valid() {
		t.Fatal("severity validity mismatch")
	}
}

func TestSuspicionFactors(t *testing.T) {
	var f SuspicionFactors
	f.Set(FactorBurstPosting, 24)
	f.Set(FactorDuplicatePatterns, 18)
	f.Set(FactorNewAccounts, -5)
	f.Set("unknown", 99)

	if f.Get(FactorBurstPosting) != 24 || f.Get(FactorNewAccounts) != 0 || f.Get("unknown") != 0 {
		t.Fatalf("unexpected factors %+v", f)
	}
	if f.Sum() != 42 || f.NonZero() != 2 {
		t.Fatalf("Sum=%v NonZero=%d", f.Sum(), f.NonZero())
	}
}

package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reviewtrust/internal/core/review"
	"reviewtrust/internal/core/scoring"
	perr "reviewtrust/internal/platform/errors"
	"reviewtrust/internal/platform/testkit"
)

func TestLoad_EmptyKeepsDefaults(t *testing.T) {
	base := Defaults()
	got, err := Load(strings.NewReader(""), base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "default" {
		t.Fatalf("Name = %q", got.Name)
	}
	if got.Patterns.Polarized.StandardThreshold != 0.7 || got.Scoring.Weight(review.FactorBurstPosting) != 0.8 {
		t.Fatal("defaults were not preserved")
	}
}

func TestLoad_OverridesOnlyNamedFields(t *testing.T) {
	base := Defaults()
	doc := `
name: cautious
patterns:
  polarized:
    standard_threshold: 0.65
  short:
    max_length: 15
scoring:
  weights:
    burst_posting: 1.1
  levels:
    high: 85
recent_tables:
  - locale: en
    keywords: ["just now"]
  - locale: ko
    keywords: ["일 전"]
`
	got, err := Load(strings.NewReader(doc), base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "cautious" {
		t.Fatalf("Name = %q", got.Name)
	}
	if got.Patterns.Polarized.StandardThreshold != 0.65 || got.Patterns.Polarized.StrictThreshold != 0.6 {
		t.Fatalf("polarized = %+v", got.Patterns.Polarized)
	}
	if got.Patterns.Short.MaxLength != 15 || got.Patterns.Short.Threshold != 0.4 {
		t.Fatalf("short = %+v", got.Patterns.Short)
	}
	if got.Scoring.Weight(review.FactorBurstPosting) != 1.1 || got.Scoring.Weight(review.FactorNewAccounts) != 0.5 {
		t.Fatalf("weights = %v", got.Scoring.Weights)
	}
	if got.Scoring.Levels.High != 85 || got.Scoring.Levels.Medium != 60 {
		t.Fatalf("levels = %+v", got.Scoring.Levels)
	}

	testkit.MustContain(t, got.Describe(), "cautious")

	var en, ko bool
	for _, tbl := range got.Patterns.RecentTables {
		switch tbl.Locale {
		case "en":
			for _, k := range tbl.Keywords {
				en = en || k == "just now"
			}
		case "ko":
			ko = true
		}
	}
	if !en || !ko {
		t.Fatalf("recent tables not merged: %+v", got.Patterns.RecentTables)
	}

	// base must be untouched
	if base.Scoring.Weight(review.FactorBurstPosting) != 0.8 {
		t.Fatal("Load mutated the base weights")
	}
	if len(base.Patterns.RecentTables) != 2 {
		t.Fatal("Load mutated the base recent tables")
	}
}

func TestLoad_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		doc   string
		field string
	}{
		{"unknown key", "patterns:\n  polarised: {}\n", ""},
		{"ratio above one", "patterns:\n  burst:\n    threshold: 1.5\n", "patterns.burst.threshold"},
		{"negative weight", "scoring:\n  weights:\n    short_reviews: -1\n", "scoring.weights.short_reviews"},
		{"unknown factor", "scoring:\n  weights:\n    fake_stars: 1\n", "scoring.weights"},
		{"unknown severity", "scoring:\n  severity_penalty:\n    CRITICAL: 9\n", "scoring.severity_penalty"},
		{"bad bounds", "scoring:\n  min_score: 90\n  max_score: 50\n", "scoring.min_score"},
		{"levels not descending", "scoring:\n  levels:\n    medium: 90\n", "scoring.levels"},
		{"short ideal", "scoring:\n  naturalness:\n    ideal: [0.5, 0.5]\n", ""},
		{"min texts", "patterns:\n  duplicate:\n    min_texts: 1\n", "patterns.duplicate"},
		{"negative strict factor", "scoring:\n  mode:\n    strict_factor: -1\n", "scoring.mode.strict_factor"},
		{"zero lenient boost", "scoring:\n  mode:\n    lenient_boost: 0\n", "scoring.mode.lenient_boost"},
		{"zero few factor", "scoring:\n  review_count:\n    few_factor: 0\n", "scoring.review_count.few_factor"},
		{"negative some factor", "scoring:\n  review_count:\n    some_factor: -0.5\n", "scoring.review_count.some_factor"},
		{"zero many boost", "scoring:\n  review_count:\n    many_boost: 0\n", "scoring.review_count.many_boost"},
		{"zero high boost", "scoring:\n  naturalness:\n    high_boost: 0\n", "scoring.naturalness.high_boost"},
		{"negative low factor", "scoring:\n  naturalness:\n    low_factor: -2\n", "scoring.naturalness.low_factor"},
		{"ideal share above one", "scoring:\n  naturalness:\n    ideal: [0.1, 0.1, 0.1, 0.1, 1.5]\n", "scoring.naturalness.ideal[4]"},
		{"negative ideal share", "scoring:\n  naturalness:\n    ideal: [-0.1, 0.1, 0.2, 0.4, 0.4]\n", "scoring.naturalness.ideal[0]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc), Defaults())
			if err == nil {
				t.Fatal("expected an error")
			}
			if !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("code = %v, want validation (%v)", perr.CodeOf(err), err)
			}
			if tc.field == "" {
				return
			}
			e, ok := perr.As(err)
			if !ok {
				t.Fatalf("expected *Error, got %T", err)
			}
			if e.Field() != tc.field {
				t.Fatalf("field = %q, want %q", e.Field(), tc.field)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strict.yaml")
	if err := os.WriteFile(path, []byte("name: strict-shops\npatterns:\n  burst:\n    min_recent: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path, Defaults())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Name != "strict-shops" || got.Patterns.Burst.MinRecent != 3 {
		t.Fatalf("unexpected set %+v", got.Patterns.Burst)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"), Defaults())
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("missing file code = %v", perr.CodeOf(err))
	}
}

func TestValidate_Defaults(t *testing.T) {
	if err := Validate(Defaults()); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoad_AcceptedProfileKeepsScoreOrder(t *testing.T) {
	doc := `
scoring:
  mode:
    strict_factor: 0.5
    lenient_boost: 1.5
  review_count:
    few_factor: 0.3
  naturalness:
    low_factor: 0.4
`
	set, err := Load(strings.NewReader(doc), Defaults())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	calc := scoring.New(set.Scoring)
	ds := review.Dataset{Ratings: map[int]int{1: 1, 5: 2}, TotalReviews: 3}

	for _, mode := range []review.AnalysisMode{review.ModeStrict, review.ModeStandard, review.ModeLenient} {
		s := review.Settings{AnalysisMode: mode}
		prev := 101
		for _, v := range []float64{0, 10, 50, 100, 200} {
			var f review.SuspicionFactors
			f.Set(review.FactorPolarizedRatings, v)
			got := calc.Calculate(f, nil, ds, s).Score
			if got > prev {
				t.Fatalf("%s: factor %g scored %d above %d", mode, v, got, prev)
			}
			prev = got
		}
	}
}

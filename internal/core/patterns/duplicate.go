package patterns

import (
	"fmt"
	"math"

	"reviewtrust/internal/core/review"
)

// SimilarPair is a retained pair of near-identical review texts, indexes into RecentReviews
type SimilarPair struct {
	A          int     `json:"a"`
	B          int     `json:"b"`
	Similarity float64 `json:"similarity"`
}

// TextSimilarity is the Jaccard similarity of the folded whitespace token sets of a and b.
// It is 0 when either side has no tokens
func (d *Detector) TextSimilarity(a, b string) float64 {
	return jaccard(d.norm.TokenSet(a), d.norm.TokenSet(b))
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// Duplicates flags pairs of recent reviews with near-identical wording
func (d *Detector) Duplicates(ds review.Dataset, _ review.Settings) Detection {
	c := d.cfg.Duplicate

	type entry struct {
		idx  int
		toks map[string]struct{}
	}
	var texts []entry
	for i, r := range ds.RecentReviews {
		if textLen(r.Text) > c.MinTextLength {
			texts = append(texts, entry{idx: i, toks: d.norm.TokenSet(r.Text)})
		}
	}
	if len(texts) < c.MinTexts {
		return skipped(review.FactorDuplicatePatterns, "too few texts")
	}

	similar := 0
	var kept []SimilarPair
	for i := 0; i < len(texts); i++ {
		for j := i + 1; j < len(texts); j++ {
			sim := jaccard(texts[i].toks, texts[j].toks)
			if sim <= c.Similarity {
				continue
			}
			similar++
			if len(kept) < c.KeepPairs {
				kept = append(kept, SimilarPair{A: texts[i].idx, B: texts[j].idx, Similarity: sim})
			}
		}
	}
	if similar == 0 {
		return Detection{}
	}

	var mean float64
	if len(kept) > 0 {
		for _, p := range kept {
			mean += p.Similarity
		}
		mean /= float64(len(kept))
	}

	return Detection{
		Detected: true,
		Score:    math.Min(float64(similar)*c.PairScore*c.Weight, c.MaxScore),
		Pattern: &review.Pattern{
			Type:        review.PatternDuplicate,
			Description: fmt.Sprintf("%d pairs of reviews have nearly identical wording", similar),
			Severity:    review.SeverityHigh,
			Metadata: map[string]any{
				"similar_pairs":   similar,
				"pairs":           kept,
				"mean_similarity": mean,
			},
		},
	}
}

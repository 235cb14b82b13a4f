// Package repo provides postgres access for the analysis history
package repo

import (
	"context"
	"encoding/json"

	"reviewtrust/internal/modkit/repokit"
	perr "reviewtrust/internal/platform/errors"
	"reviewtrust/internal/platform/store"
	str "reviewtrust/internal/platform/strings"
	"reviewtrust/internal/services/api/trust/domain"
)

// maxPlaceName bounds the stored display name in runes
const maxPlaceName = 512

// Repo is the minimal persistence surface for analysis history
type Repo interface {
	InsertAnalysis(ctx context.Context, rec domain.AnalysisRecord) error
	ListByPlace(ctx context.Context, placeID string, limit int) ([]domain.HistoryRow, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) InsertAnalysis(ctx context.Context, rec domain.AnalysisRecord) error {
	factors, err := json.Marshal(rec.Factors)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "encode factors for %s", rec.AnalysisID)
	}
	const sql = `
insert into trust_analyses (
  analysis_id, place_id, place_name, url, lang, score, level, analysis_mode,
  total_reviews, patterns_detected, factors, confidence, algorithm_version, created_at
) values ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb, $12, $13, $14)
`
	err = store.ExecOne(ctx, r.q, sql,
		rec.AnalysisID, rec.PlaceID, str.Truncate(rec.PlaceName, maxPlaceName), str.SQLNull(rec.URL), str.SQLNull(rec.Lang),
		rec.Score, string(rec.Level), string(rec.Mode),
		rec.TotalReviews, rec.PatternsDetected, string(factors), rec.Confidence,
		rec.AlgorithmVersion, rec.CreatedAt,
	)
	return perr.FromPostgres(err, "insert trust analysis")
}

func (r *queries) ListByPlace(ctx context.Context, placeID string, limit int) ([]domain.HistoryRow, error) {
	const sql = `
select analysis_id::text, place_id, score, level, analysis_mode, total_reviews, patterns_detected, created_at
from trust_analyses
where place_id = $1
order by created_at desc, analysis_id desc
limit $2
`
	out, err := store.Many(ctx, r.q, scanHistory, sql, placeID, limit)
	return out, perr.FromPostgres(err, "list trust analyses")
}

func scanHistory(row store.Row) (domain.HistoryRow, error) {
	var hr domain.HistoryRow
	err := row.Scan(&hr.AnalysisID, &hr.PlaceID, &hr.Score, &hr.Level, &hr.AnalysisMode,
		&hr.TotalReviews, &hr.PatternsDetected, &hr.CreatedAt)
	return hr, err
}

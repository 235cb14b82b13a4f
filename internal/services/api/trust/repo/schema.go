package repo

import (
	"context"

	"reviewtrust/internal/modkit/repokit"
	perr "reviewtrust/internal/platform/errors"
)

// pgSchema creates the history table; statements are idempotent
var pgSchema = []string{
	`create table if not exists trust_analyses (
  analysis_id       uuid primary key,
  place_id          text not null,
  place_name        text not null default '',
  url               text,
  lang              text,
  score             smallint not null check (score between 10 and 100),
  level             text not null,
  analysis_mode     text not null,
  total_reviews     integer not null check (total_reviews >= 0),
  patterns_detected smallint not null,
  factors           jsonb not null,
  confidence        double precision not null,
  algorithm_version smallint not null,
  created_at        timestamptz not null default now()
)`,
	`create index if not exists trust_analyses_place_created_idx on trust_analyses (place_id, created_at desc)`,
}

// chSchema creates the pattern event table in column order of chEvents.Write
var chSchema = []string{
	`CREATE TABLE IF NOT EXISTS ` + EventsTable + ` (
  analysis_id       String,
  place_id          String,
  pattern_type      LowCardinality(String),
  severity          LowCardinality(String),
  score             Float64,
  analysis_mode     LowCardinality(String),
  algorithm_version UInt16,
  created_at        DateTime64(3, 'UTC')
) ENGINE = MergeTree
PARTITION BY toYYYYMM(created_at)
ORDER BY (pattern_type, created_at)`,
}

// MigratePG creates the history table and its index when missing
func MigratePG(ctx context.Context, q repokit.Queryer) error {
	for _, stmt := range pgSchema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return perr.FromPostgres(err, "migrate trust_analyses")
		}
	}
	return nil
}

// MigrateCH creates the pattern event table when missing
func MigrateCH(ctx context.Context, ch repokit.Clickhouse) error {
	for _, stmt := range chSchema {
		if err := ch.Exec(ctx, stmt); err != nil {
			return perr.FromClickHouse(err, "migrate "+EventsTable)
		}
	}
	return nil
}

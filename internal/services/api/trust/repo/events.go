package repo

import (
	"context"

	"reviewtrust/internal/modkit/repokit"
	perr "reviewtrust/internal/platform/errors"
	"reviewtrust/internal/services/api/trust/domain"
)

// EventsTable receives one row per detected pattern
const EventsTable = "trust_pattern_events"

// Events is the append only sink for detected patterns
type Events interface {
	Write(ctx context.Context, evs []domain.PatternEvent) error
}

type chEvents struct {
	ch    repokit.Clickhouse
	table string
}

// NewCH returns an Events sink writing native batches to clickhouse
func NewCH(ch repokit.Clickhouse) Events {
	if ch == nil {
		panic("trust.repo.NewCH requires a non nil Clickhouse")
	}
	return &chEvents{ch: ch, table: EventsTable}
}

// Write appends evs in column order of EventsTable; empty input is a no op
func (e *chEvents) Write(ctx context.Context, evs []domain.PatternEvent) error {
	if len(evs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(evs))
	for _, ev := range evs {
		rows = append(rows, []any{
			ev.AnalysisID,
			ev.PlaceID,
			string(ev.Type),
			string(ev.Severity),
			ev.Score,
			string(ev.Mode),
			uint16(ev.AlgorithmVersion),
			ev.CreatedAt,
		})
	}
	return perr.FromClickHouse(e.ch.Insert(ctx, e.table, rows), "insert pattern events")
}

// Package service contains the trust analysis workflow
package service

import (
	"context"
	"time"

	"reviewtrust/internal/core/langhint"
	"reviewtrust/internal/core/review"
	"reviewtrust/internal/modkit/repokit"
	perr "reviewtrust/internal/platform/errors"
	"reviewtrust/internal/platform/logger"
	"reviewtrust/internal/services/api/trust/domain"
	"reviewtrust/internal/services/api/trust/repo"

	"github.com/google/uuid"
)

// langMinLetters is the letter count below which no language is guessed
const langMinLetters = 12

// Service defines the trust service contract
type Service interface {
	domain.ServicePort
}

// Config holds the request independent settings of the service
type Config struct {
	Defaults         review.Settings
	HistoryLimit     int
	StatementTimeout time.Duration
	WriteTimeout     time.Duration
}

// Svc implements the trust service
type Svc struct {
	cfg      Config
	analyzer *Analyzer

	// history is nil when postgres is disabled
	history repo.Repo
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner

	// events is nil when clickhouse is disabled
	events repo.Events

	metrics *Metrics
	now     func() time.Time
	newID   func() string
}

// Option customizes a Svc
type Option func(*Svc)

// WithHistory enables the postgres history store
func WithHistory(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) Option {
	return func(s *Svc) {
		if db == nil || binder == nil {
			return
		}
		s.db, s.binder = db, binder
	}
}

// WithEvents enables the pattern event sink
func WithEvents(ev repo.Events) Option {
	return func(s *Svc) { s.events = ev }
}

// WithMetrics sets the collectors updated per analysis
func WithMetrics(m *Metrics) Option {
	return func(s *Svc) { s.metrics = m }
}

// WithClock overrides time and id generation, used by tests
func WithClock(now func() time.Time, newID func() string) Option {
	return func(s *Svc) {
		if now != nil {
			s.now = now
		}
		if newID != nil {
			s.newID = newID
		}
	}
}

// New constructs a trust service around an analyzer
func New(a *Analyzer, cfg Config, opts ...Option) *Svc {
	if a == nil {
		panic("trust.Service requires a non nil Analyzer")
	}
	cfg.Defaults = cfg.Defaults.Normalize()
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 20
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 3 * time.Second
	}
	s := &Svc{
		cfg:      cfg,
		analyzer: a,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	if s.db != nil {
		s.history = s.binder.Bind(s.db)
		s.db = repokit.WithBeginHooks(s.db, repokit.StatementTimeout(cfg.StatementTimeout))
	}
	return s
}

// Analyze scores one dataset. Storage failures are logged and reported as persisted=false
func (s *Svc) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.AnalyzeOutput, error) {
	settings := in.Settings.Apply(s.cfg.Defaults)
	ds := in.Dataset.Dataset()

	id := s.newID()
	ctx = logger.WithAnalysis(ctx, in.PlaceID, id)
	at := s.now().UTC()

	det, res := s.analyzer.Run(ds, settings)
	s.metrics.observe(res, settings.AnalysisMode, det.Patterns)

	texts := make([]string, 0, len(ds.RecentReviews))
	for _, r := range ds.RecentReviews {
		texts = append(texts, r.Text)
	}

	out := domain.AnalyzeOutput{
		AnalysisID: id,
		PlaceID:    in.PlaceID,
		AnalyzedAt: at,
		Lang:       langhint.Lang(texts, langMinLetters),
		Result:     res,
	}

	rec := domain.AnalysisRecord{
		AnalysisID:       id,
		PlaceID:          in.PlaceID,
		PlaceName:        in.PlaceName,
		URL:              in.URL,
		Lang:             out.Lang,
		Score:            res.Score,
		Level:            res.Level,
		Mode:             settings.AnalysisMode,
		TotalReviews:     ds.TotalReviews,
		PatternsDetected: len(det.Patterns),
		Factors:          det.Factors,
		AlgorithmVersion: res.AlgorithmVersion,
		CreatedAt:        at,
	}
	if res.Breakdown != nil {
		rec.Confidence = res.Breakdown.Confidence
	}
	out.Persisted = s.persist(ctx, rec, det.Patterns)

	if settings.ShowDetailedAnalysis {
		out.Patterns = det.Patterns
	} else {
		out.Result.Breakdown = nil
	}

	logger.C(ctx).Debug().
		Int("score", res.Score).
		Str("level", string(res.Level)).
		Str("mode", string(settings.AnalysisMode)).
		Int("patterns", len(det.Patterns)).
		Bool("persisted", out.Persisted).
		Msg("trust analysis")
	return out, nil
}

// persist writes the history row and pattern events; true only when the history row landed
func (s *Svc) persist(ctx context.Context, rec domain.AnalysisRecord, pats []review.Pattern) bool {
	if s.db == nil && s.events == nil {
		return false
	}
	// writes outlive a client disconnect, bounded by WriteTimeout
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.WriteTimeout)
	defer cancel()

	saved := false
	if s.db != nil {
		err := s.db.Tx(wctx, func(q repokit.Queryer) error {
			return s.binder.Bind(q).InsertAnalysis(wctx, rec)
		})
		if err != nil {
			logger.C(ctx).Warn().Err(err).Msg("trust history write failed")
		} else {
			saved = true
		}
	}

	if s.events != nil && len(pats) > 0 {
		evs := make([]domain.PatternEvent, 0, len(pats))
		for _, p := range pats {
			evs = append(evs, domain.PatternEvent{
				AnalysisID:       rec.AnalysisID,
				PlaceID:          rec.PlaceID,
				Type:             p.Type,
				Severity:         p.Severity,
				Score:            rec.Factors.Get(p.Type.Factor()),
				Mode:             rec.Mode,
				AlgorithmVersion: rec.AlgorithmVersion,
				CreatedAt:        rec.CreatedAt,
			})
		}
		if err := s.events.Write(wctx, evs); err != nil {
			logger.C(ctx).Warn().Err(err).Int("events", len(evs)).Msg("pattern event write failed")
		}
	}
	return saved
}

// History lists stored analyses of one place, newest first
func (s *Svc) History(ctx context.Context, in domain.HistoryQuery) (domain.HistoryOutput, error) {
	if s.history == nil {
		return domain.HistoryOutput{}, perr.Unavailablef("analysis history is not configured")
	}
	limit := in.Limit
	if limit <= 0 || limit > s.cfg.HistoryLimit {
		limit = s.cfg.HistoryLimit
	}
	rows, err := s.history.ListByPlace(ctx, in.PlaceID, limit)
	if err != nil {
		return domain.HistoryOutput{}, err
	}
	if rows == nil {
		rows = []domain.HistoryRow{}
	}
	return domain.HistoryOutput{PlaceID: in.PlaceID, Items: rows}, nil
}

// Defaults reports the effective defaults of Analyze
func (s *Svc) Defaults(_ context.Context) domain.DefaultsOutput {
	return domain.DefaultsOutput{
		Settings:         s.cfg.Defaults,
		Profile:          s.analyzer.Profile(),
		AlgorithmVersion: review.AlgorithmVersion,
		HistoryLimit:     s.cfg.HistoryLimit,
		HistoryEnabled:   s.history != nil,
		EventsEnabled:    s.events != nil,
	}
}

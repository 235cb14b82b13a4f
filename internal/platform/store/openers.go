package store

import (
	"context"
	"fmt"
	"time"

	chx "reviewtrust/internal/platform/store/ch"
	"reviewtrust/internal/platform/store/pg"
)

const (
	defaultConnectRetries = 20
	defaultPingTimeout    = 3 * time.Second
	backoffStart          = 150 * time.Millisecond
	backoffCeiling        = 2 * time.Second
)

// openPG opens pg and wraps it with our sql adapter once the pool answers a ping
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = defaultConnectRetries
	}
	pingTimeout := cfg.PG.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}

	err = retry(ctx, attempts, func() error {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return p.Pool.Ping(toCtx) // pool directly, no trace line
	})
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, err)
	}
	return newPGAdapter(p), nil
}

// openCH opens the clickhouse driver; chx.Open pings before returning
func openCH(ctx context.Context, cfg Config, s *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:       cfg.CH.URL,
		ClientTag: firstNonEmpty(cfg.CH.ClientTag, cfg.AppName),
		Role:      cfg.CH.Role,
	})
	if err != nil {
		return nil, err
	}
	s.Log.Debug().Str("component", "ch").Msg("clickhouse connected")
	return newCHAdapter(c), nil
}

// retry runs fn up to attempts times with capped exponential backoff
func retry(ctx context.Context, attempts int, fn func() error) error {
	var lastErr error
	backoff := backoffStart
	for i := 0; i < attempts; i++ {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, backoffCeiling)
	}
	return lastErr
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

package pg

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// openReady opens cfg and pings until the server accepts sessions or ctx ends.
// A fresh container can log readiness before its socket takes connections
func openReady(t *testing.T, ctx context.Context, cfg Config, poolMut func(*pgxpool.Config)) *PG {
	t.Helper()
	for {
		client, err := Open(ctx, cfg, nil, poolMut)
		if err == nil {
			if err = client.Pool.Ping(ctx); err == nil {
				t.Cleanup(client.Close)
				return client
			}
			client.Close()
		}
		select {
		case <-ctx.Done():
			t.Fatalf("postgres not ready: %v", err)
		case <-time.After(250 * time.Millisecond):
		}
	}
}

// WithTestDB runs fn against a ready client for cfg; the client closes on test cleanup
func WithTestDB(t *testing.T, cfg Config, poolMut func(*pgxpool.Config), fn func(p *PG)) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()
	fn(openReady(t, ctx, cfg, poolMut))
}

// AcquireConn pins one session, for checks on session settings such as application_name
func AcquireConn(t *testing.T, ctx context.Context, p *PG) *pgxpool.Conn {
	t.Helper()
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	t.Cleanup(conn.Release)
	return conn
}

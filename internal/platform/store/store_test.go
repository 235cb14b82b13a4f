package store

import (
	"context"
	stderrs "errors"
	"strings"
	"testing"
	"time"

	perr "reviewtrust/internal/platform/errors"
	"reviewtrust/internal/platform/store/ch"
)

// fakeCH records inserts and serves canned rows
type fakeCH struct {
	table   string
	rows    [][]any
	pingErr error
	closed  bool
	result  *fakeCHRows
	execs   []string
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table, f.rows = table, rows
	return nil
}

func (f *fakeCH) Query(context.Context, string, ...any) (ch.Rows, error) {
	if f.result == nil {
		return nil, stderrs.New("no rows configured")
	}
	return f.result, nil
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, sql)
	return nil
}

func (f *fakeCH) Ping(context.Context) error { return f.pingErr }
func (f *fakeCH) Close() error               { f.closed = true; return nil }

type fakeCHRows struct {
	vals   []string
	i      int
	closed bool
}

func (r *fakeCHRows) Next() bool { r.i++; return r.i <= len(r.vals) }
func (r *fakeCHRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.vals[r.i-1]
	return nil
}
func (r *fakeCHRows) Err() error        { return nil }
func (r *fakeCHRows) Close() error      { r.closed = true; return nil }
func (r *fakeCHRows) Columns() []string { return []string{"pattern"} }

func TestCHAdapter(t *testing.T) {
	f := &fakeCH{result: &fakeCHRows{vals: []string{"burst", "polarized"}}}
	a := newCHAdapter(f)
	ctx := context.Background()

	if err := a.Insert(ctx, "", nil); err == nil {
		t.Fatalf("expected error on empty table")
	}
	if err := a.Insert(ctx, "trust_pattern_events", [][]any{{"x", 1}}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if f.table != "trust_pattern_events" || len(f.rows) != 1 {
		t.Fatalf("insert not forwarded: %q %v", f.table, f.rows)
	}

	rs, err := a.Query(ctx, "SELECT pattern FROM trust_pattern_events")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	var got []string
	for rs.Next() {
		var s string
		if err := rs.Scan(&s); err != nil {
			t.Fatalf("Scan: %v", err)
		}
		got = append(got, s)
	}
	rs.Close()
	if strings.Join(got, ",") != "burst,polarized" || !f.result.closed {
		t.Fatalf("rows = %v closed=%v", got, f.result.closed)
	}
	if cols := rs.Columns(); len(cols) != 1 || cols[0] != "pattern" {
		t.Fatalf("Columns = %v", cols)
	}

	if err := a.Exec(ctx, "SELECT 1"); err != nil || len(f.execs) != 1 {
		t.Fatalf("Exec: %v %v", err, f.execs)
	}
	if err := a.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	var nilAdapter *clickhouseAdapter
	if err := nilAdapter.Ping(ctx); err == nil {
		t.Fatalf("nil adapter should fail ping")
	}
	_ = a.Close()
	if !f.closed {
		t.Fatalf("close not forwarded")
	}
}

func TestStore_ZeroValueAndBackends(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, Config{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.PG != nil || s.CH != nil {
		t.Fatalf("no backends expected")
	}
	if b := s.Backends(); b["pg"] || b["ch"] {
		t.Fatalf("Backends = %v", b)
	}
	if err := s.Guard(ctx); err != nil {
		t.Fatalf("Guard on empty store: %v", err)
	}
	if err := s.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var nilStore *Store
	if nilStore.Guard(ctx) == nil {
		t.Fatalf("nil store Guard should fail")
	}
	if b := nilStore.Backends(); b["pg"] || b["ch"] {
		t.Fatalf("nil Backends = %v", b)
	}
}

func TestStore_GuardJoinsFailures(t *testing.T) {
	f := &fakeCH{pingErr: stderrs.New("ch down")}
	s := &Store{CH: newCHAdapter(f)}
	if !s.Backends()["ch"] {
		t.Fatalf("ch should be reported")
	}
	err := s.Guard(context.Background())
	if err == nil || !strings.Contains(err.Error(), "ch: ch down") {
		t.Fatalf("Guard = %v", err)
	}
	_ = s.Close(context.Background())
	if !f.closed {
		t.Fatalf("Close should reach the CH client")
	}
}

func TestOpen_BadBackends(t *testing.T) {
	ctx := context.Background()
	if _, err := Open(ctx, Config{PG: PGConfig{Enabled: true, URL: "://nope"}}); err == nil {
		t.Fatalf("expected pg parse error")
	}
	if _, err := Open(ctx, Config{CH: CHConfig{Enabled: true}}); err == nil {
		t.Fatalf("expected ch empty url error")
	}
	boom := stderrs.New("opt failed")
	if _, err := Open(ctx, Config{}, func(*Store) error { return boom }); !stderrs.Is(err, boom) {
		t.Fatalf("option error not surfaced: %v", err)
	}
}

func TestRetry(t *testing.T) {
	calls := 0
	err := retry(context.Background(), 3, func() error {
		calls++
		if calls < 2 {
			return stderrs.New("not yet")
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Fatalf("retry err=%v calls=%d", err, calls)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err = retry(ctx, 50, func() error { return stderrs.New("never") })
	if !stderrs.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline, got %v", err)
	}

	last := stderrs.New("last")
	if err := retry(context.Background(), 1, func() error { return last }); !stderrs.Is(err, last) {
		t.Fatalf("single attempt should return fn error, got %v", err)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Fatalf("got %q", got)
	}
	if got := firstNonEmpty(); got != "" {
		t.Fatalf("got %q", got)
	}
}

// fakeQ is an in-memory RowQuerier for the helpers
type fakeQ struct {
	affected int64
	vals     []int
	execErr  error
}

type fakeTag int64

func (t fakeTag) String() string      { return "OK" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

type intRows struct {
	vals []int
	i    int
}

func (r *intRows) Next() bool { r.i++; return r.i <= len(r.vals) }
func (r *intRows) Scan(dest ...any) error {
	*(dest[0].(*int)) = r.vals[r.i-1]
	return nil
}
func (r *intRows) Err() error        { return nil }
func (r *intRows) Close()            {}
func (r *intRows) Columns() []string { return []string{"n"} }

type intRow struct{ rows *intRows }

func (r intRow) Scan(dest ...any) error {
	if !r.rows.Next() {
		return perr.ErrNotFound
	}
	return r.rows.Scan(dest...)
}

func (f *fakeQ) Exec(context.Context, string, ...any) (CommandTag, error) {
	return fakeTag(f.affected), f.execErr
}
func (f *fakeQ) Query(context.Context, string, ...any) (Rows, error) {
	return &intRows{vals: f.vals}, nil
}
func (f *fakeQ) QueryRow(context.Context, string, ...any) Row {
	return intRow{rows: &intRows{vals: f.vals}}
}

func scanInt(r Row) (int, error) {
	var n int
	err := r.Scan(&n)
	return n, err
}

func TestHelpers(t *testing.T) {
	ctx := context.Background()

	if err := ExecOne(ctx, &fakeQ{affected: 1}, "UPDATE"); err != nil {
		t.Fatalf("ExecOne: %v", err)
	}
	if err := ExecOne(ctx, &fakeQ{affected: 2}, "UPDATE"); err == nil {
		t.Fatalf("ExecOne should reject 2 rows")
	}

	n, err := Scalar[int](ctx, &fakeQ{vals: []int{7}}, "SELECT")
	if err != nil || n != 7 {
		t.Fatalf("Scalar = %d, %v", n, err)
	}

	if _, err := One(ctx, &fakeQ{}, scanInt, "SELECT"); !stderrs.Is(err, perr.ErrNotFound) {
		t.Fatalf("One on empty = %v", err)
	}
	if _, err := One(ctx, &fakeQ{vals: []int{1, 2}}, scanInt, "SELECT"); err == nil {
		t.Fatalf("One should reject multiple rows")
	}
	if v, err := One(ctx, &fakeQ{vals: []int{3}}, scanInt, "SELECT"); err != nil || v != 3 {
		t.Fatalf("One = %d, %v", v, err)
	}

	all, err := Many(ctx, &fakeQ{}, scanInt, "SELECT")
	if err != nil || all == nil || len(all) != 0 {
		t.Fatalf("Many on empty = %v, %v", all, err)
	}
	all, err = Many(ctx, &fakeQ{vals: []int{1, 2, 3}}, scanInt, "SELECT")
	if err != nil || len(all) != 3 || all[2] != 3 {
		t.Fatalf("Many = %v, %v", all, err)
	}
}

package repokit

import (
	"context"
	"errors"
	"testing"
)

type fakeTxRunner struct {
	*fakeQ
	err    error
	called int
}

func (f *fakeTxRunner) Tx(_ context.Context, fn func(q Queryer) error) error {
	f.called++
	if err := fn(f.fakeQ); err != nil {
		return err
	}
	return f.err
}

func TestWithTx(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	cases := []struct {
		name  string
		txErr error
		fnErr error
		want  error
	}{
		{"ok", nil, nil, nil},
		{"fn error", nil, boom, boom},
		{"tx error", boom, nil, boom},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ftx := &fakeTxRunner{fakeQ: &fakeQ{}, err: tc.txErr}
			var seen Queryer
			err := WithTx(context.Background(), ftx, func(q Queryer) error {
				seen = q
				return tc.fnErr
			})
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if ftx.called != 1 {
				t.Fatalf("Tx called %d times", ftx.called)
			}
			if seen != Queryer(ftx.fakeQ) {
				t.Fatal("fn did not receive the tx Queryer")
			}
		})
	}
}

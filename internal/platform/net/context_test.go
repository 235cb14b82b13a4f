package net_test

import (
	"context"
	"testing"

	pnet "reviewtrust/internal/platform/net"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := pnet.WithRequestID(context.Background(), "req-42")
	if got := pnet.RequestID(ctx); got != "req-42" {
		t.Fatalf("RequestID = %q", got)
	}
}

func TestRequestID_Empty(t *testing.T) {
	base := context.Background()
	if ctx := pnet.WithRequestID(base, ""); ctx != base {
		t.Fatalf("empty id should not wrap ctx")
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID on bare ctx = %q", got)
	}
}

package testkit

import (
	"sync/atomic"
	"testing"
	"time"
)

var scoreFn = func(n int) int { return n * 2 }

func TestSwap_RestoresAndDelegates(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		orig := Swap(t, &scoreFn, func(n int) int { return -n })
		if got := scoreFn(3); got != -3 {
			t.Fatalf("swapped scoreFn(3) = %d", got)
		}
		if got := orig(3); got != 6 {
			t.Fatalf("returned original(3) = %d", got)
		}
	})
	if got := scoreFn(3); got != 6 {
		t.Fatalf("scoreFn not restored, got %d", got)
	}

	limit := 20
	t.Run("value", func(t *testing.T) {
		if prev := Swap(t, &limit, 200); prev != 20 || limit != 200 {
			t.Fatalf("prev=%d limit=%d", prev, limit)
		}
	})
	if limit != 20 {
		t.Fatalf("limit not restored, got %d", limit)
	}
}

func TestSerial_NoOverlap(t *testing.T) {
	var active, maxSeen atomic.Int32
	// the group returns once every parallel subtest and its cleanups finished
	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"a", "b", "c"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				n := active.Add(1)
				if n > maxSeen.Load() {
					maxSeen.Store(n)
				}
				time.Sleep(20 * time.Millisecond)
				active.Add(-1)
			})
		}
	})
	if got := maxSeen.Load(); got != 1 {
		t.Fatalf("max concurrent holders = %d, want 1", got)
	}
}

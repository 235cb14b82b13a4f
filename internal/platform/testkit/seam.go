package testkit

import (
	"sync"
	"testing"
)

// seamMu serializes tests that replace package-level seams
var seamMu sync.Mutex

// Swap replaces *target with replacement until the test ends and returns the previous value,
// so a replacement can delegate to it
func Swap[T any](t *testing.T, target *T, replacement T) T {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
	return orig
}

// Serial holds a process-wide lock until the test ends. Call it before Swap in tests
// that may run in parallel with other users of the same seam
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}

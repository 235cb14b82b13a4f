package config

import (
	"testing"
	"time"

	kit "reviewtrust/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	core := New().Prefix("CORE_")
	api := core.Prefix("API_")
	if got := api.key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "CORE_API_PORT")
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  reviewtrust ")
	if got := c.MustString("NAME"); got != "reviewtrust" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })

	t.Setenv("APP_WS", "   ")
	kit.MustPanic(t, func() { _ = c.MustString("WS") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_WORKERS", " 8 ")
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d", got)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("REQ_")
	t.Setenv("REQ_A", "x")
	t.Setenv("REQ_B", "y")
	kit.MustNotPanic(t, func() { c.Require("A", "B") })
	kit.MustPanic(t, func() { c.Require("A", "C") })
}

func TestMayScalars(t *testing.T) {
	c := New().Prefix("TRUST_")
	t.Setenv("TRUST_NAME", " strict ")
	t.Setenv("TRUST_MIN", " 7 ")
	t.Setenv("TRUST_MIN_BAD", "seven")
	t.Setenv("TRUST_RATIO", "0.25")
	t.Setenv("TRUST_RATIO_BAD", "quarter")
	t.Setenv("TRUST_DETAILED", "false")
	t.Setenv("TRUST_DETAILED_BAD", "nah")
	t.Setenv("TRUST_TIMEOUT", "150ms")
	t.Setenv("TRUST_TIMEOUT_BAD", "soon")

	if got := c.MayString("NAME", "x"); got != "strict" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("MIN", 5); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("MIN_BAD", 5); got != 5 {
		t.Fatalf("MayInt bad = %d", got)
	}
	if got := c.MayFloat64("RATIO", 1); got != 0.25 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	if got := c.MayFloat64("RATIO_BAD", 1); got != 1 {
		t.Fatalf("MayFloat64 bad = %v", got)
	}
	if got := c.MayBool("DETAILED", true); got {
		t.Fatalf("MayBool = %v", got)
	}
	if got := c.MayBool("DETAILED_BAD", true); !got {
		t.Fatalf("MayBool bad should default")
	}
	if got := c.MayDuration("TIMEOUT", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("TIMEOUT_BAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration bad = %v", got)
	}
}

func TestMayIntIn(t *testing.T) {
	c := New().Prefix("LIM_")
	t.Setenv("LIM_OK", "50")
	t.Setenv("LIM_HIGH", "5000")
	t.Setenv("LIM_NEG", "-1")

	if got := c.MayIntIn("OK", 20, 1, 100); got != 50 {
		t.Fatalf("in range = %d", got)
	}
	if got := c.MayIntIn("HIGH", 20, 1, 100); got != 20 {
		t.Fatalf("above range = %d", got)
	}
	if got := c.MayIntIn("NEG", 20, 1, 100); got != 20 {
		t.Fatalf("below range = %d", got)
	}
	if got := c.MayIntIn("MISSING", 20, 1, 100); got != 20 {
		t.Fatalf("missing = %d", got)
	}
}

func TestMayAddr(t *testing.T) {
	c := New().Prefix("A_")
	tests := []struct {
		name, env, want string
	}{
		{"missing", "", ":4000"},
		{"bare port", "8080", ":8080"},
		{"colon port", ":9090", ":9090"},
		{"host port", "127.0.0.1:7000", "127.0.0.1:7000"},
		{"not a number", "http", ":4000"},
		{"out of range", "70000", ":4000"},
		{"zero", "0", ":4000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("A_PORT", tt.env)
			if got := c.MayAddr("PORT", ":4000"); got != tt.want {
				t.Fatalf("MayAddr(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	def := []string{"a", "b"}
	if got := c.MayCSV("MISS", def); len(got) != 2 || got[0] != "a" {
		t.Fatalf("MayCSV default mismatch: %#v", got)
	}
	t.Setenv("CSV_VALS", " one, two , ,three ,, ")
	got := c.MayCSV("VALS", nil)
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("MayCSV len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MayCSV[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	t.Setenv("CSV_EMPTY", " , ,  ,")
	if got := c.MayCSV("EMPTY", []string{"fallback"}); len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("MayCSV all-empty -> default mismatch: %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	modes := []string{"lenient", "standard", "strict"}

	if got := c.MayEnum("MISS", "standard", modes...); got != "standard" {
		t.Fatalf("MayEnum default = %q", got)
	}

	t.Setenv("E_MODE", "STRICT")
	if got := c.MayEnum("MODE", "standard", modes...); got != "strict" {
		t.Fatalf("MayEnum canonical = %q, want strict", got)
	}

	t.Setenv("E_BAD", "paranoid")
	kit.MustNotPanic(t, func() {
		if got := c.MayEnum("BAD", "standard", modes...); got != "standard" {
			t.Fatalf("MayEnum unknown = %q, want fallback", got)
		}
	})
}

package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("LOG_SERVICE", " reviewtrust ")
	log := New().Prefix("LOG_")

	if got := log.Get("SERVICE", "x"); got != "reviewtrust" {
		t.Fatalf("Get = %q", got)
	}
	if got := log.Get("MISSING", "def"); got != "def" {
		t.Fatalf("Get default = %q", got)
	}
	if got := New().Get("LOG_SERVICE", ""); got != "reviewtrust" {
		t.Fatalf("root Get = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("RAW_")
	for k, v := range map[string]string{
		"T1": "true", "T2": "1", "T3": "YES", "T4": " on ",
		"F1": "false", "F2": "0", "F3": "nope",
	} {
		t.Setenv("RAW_"+k, v)
	}

	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{"T1", false, true},
		{"T2", false, true},
		{"T3", false, true},
		{"T4", false, true},
		{"F1", true, false},
		{"F2", true, false},
		{"F3", true, false},
		{"MISSING", true, true},
		{"MISSING", false, false},
	}
	for _, tt := range tests {
		if got := c.GetBool(tt.key, tt.def); got != tt.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", tt.key, tt.def, got, tt.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("RAW_")
	t.Setenv("RAW_OK", "42")
	t.Setenv("RAW_WS", "  7  ")
	t.Setenv("RAW_NONNUM", "12x")
	t.Setenv("RAW_NEG", "-5")
	t.Setenv("RAW_PLUS", "+5")

	tests := []struct {
		key  string
		def  int
		want int
	}{
		{"OK", 0, 42},
		{"WS", 1, 7},
		{"NONNUM", 9, 9},
		{"NEG", 3, 3},
		{"PLUS", 3, 3},
		{"MISSING", 11, 11},
	}
	for _, tt := range tests {
		if got := c.GetInt(tt.key, tt.def); got != tt.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestPrefixComposition(t *testing.T) {
	t.Setenv("CORE_API_LOG_MODE", "console")
	nested := New().Prefix("CORE_").Prefix("API_").Prefix("LOG_")
	if got := nested.Get("MODE", ""); got != "console" {
		t.Fatalf("nested Get = %q", got)
	}
}

package module

import (
	"testing"

	phttp "reviewtrust/internal/platform/net/http"
)

type stubModule struct {
	mounted *bool
	ports   any
}

func (s *stubModule) MountRoutes(_ phttp.Router) {
	if s.mounted != nil {
		*s.mounted = true
	}
}
func (s *stubModule) Ports() any   { return s.ports }
func (s *stubModule) Name() string { return "stub" }

var _ Module = (*stubModule)(nil)

func TestModule_MountRoutes(t *testing.T) {
	called := false
	m := &stubModule{mounted: &called}
	m.MountRoutes(nil)
	if !called {
		t.Fatal("expected MountRoutes to set called")
	}
}

func TestHasPorts(t *testing.T) {
	cases := []struct {
		name string
		m    Module
		want bool
	}{
		{"nil module", nil, false},
		{"nil ports", &stubModule{}, false},
		{"int ports", &stubModule{ports: 123}, true},
		{"struct ports", &stubModule{ports: struct{ Mode string }{"strict"}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasPorts(tc.m); got != tc.want {
				t.Fatalf("HasPorts = %v, want %v", got, tc.want)
			}
		})
	}
}

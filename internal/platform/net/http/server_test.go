package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	phttp "reviewtrust/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func TestRouter_Adapter(t *testing.T) {
	optCalled := false
	srv := phttp.NewServer(phttp.ServerOptions{}, func(*chi.Mux) { optCalled = true })
	if !optCalled {
		t.Fatalf("expected option hook to run")
	}
	if srv.Addr() != ":4000" {
		t.Fatalf("default addr = %q", srv.Addr())
	}

	r := srv.Router()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-MW", "yes")
			next.ServeHTTP(w, req)
		})
	})
	r.Group(func(g phttp.Router) {
		g.Get("/group/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })
	})
	r.Route("/api/v1", func(api phttp.Router) {
		api.Route("/trust", func(tr phttp.Router) {
			tr.Post("/analyze", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })
		})
	})
	r.Handle("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) }))

	tests := []struct {
		method, path string
		status       int
	}{
		{http.MethodGet, "/group/ping", http.StatusOK},
		{http.MethodPost, "/api/v1/trust/analyze", http.StatusCreated},
		{http.MethodGet, "/api/v1/trust/analyze", http.StatusMethodNotAllowed},
		{http.MethodGet, "/raw", http.StatusTeapot},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Code != tt.status {
			t.Fatalf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.status)
		}
		if rec.Header().Get("X-MW") != "yes" {
			t.Fatalf("%s %s: middleware not applied", tt.method, tt.path)
		}
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()

	srv := phttp.NewServer(phttp.ServerOptions{Addr: addr, ShutdownTimeout: time.Second})
	srv.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var body string
	for i := 0; i < 50; i++ {
		resp, err := http.Get("http://" + addr + "/ping")
		if err == nil {
			b, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			body = string(b)
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if body != "pong" {
		t.Fatalf("server never answered, body=%q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestMountProfiler(t *testing.T) {
	off := phttp.NewServer(phttp.ServerOptions{}).Router()
	phttp.MountProfiler(off, "/debug", false)
	rec := httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled profiler should 404, got %d", rec.Code)
	}

	on := phttp.NewServer(phttp.ServerOptions{}).Router()
	phttp.MountProfiler(on, "/debug", true)
	rec = httptest.NewRecorder()
	on.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("profiler cmdline = %d", rec.Code)
	}
}

func TestMountMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "reviewtrust_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	r := phttp.NewServer(phttp.ServerOptions{}).Router()
	phttp.MountMetrics(r, "/metrics", reg, true)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "reviewtrust_test_total 1") {
		t.Fatalf("metrics = %d %s", rec.Code, rec.Body.String())
	}

	off := phttp.NewServer(phttp.ServerOptions{}).Router()
	phttp.MountMetrics(off, "/metrics", reg, false)
	rec = httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled metrics = %d", rec.Code)
	}
}

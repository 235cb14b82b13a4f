package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "reviewtrust/internal/platform/net/http"
	"reviewtrust/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func withMutators(t *testing.T, ms ...SpecMutator) {
	t.Helper()
	mutMu.Lock()
	prev := mutators
	mutators = nil
	mutMu.Unlock()
	for _, m := range ms {
		Register(m)
	}
	t.Cleanup(func() {
		mutMu.Lock()
		mutators = prev
		mutMu.Unlock()
	})
}

func TestSpec_SkeletonAndDefaults(t *testing.T) {
	withMutators(t, func(spec map[string]any) {
		Paths(spec)["/trust/defaults"] = map[string]any{
			"get": map[string]any{"summary": "defaults"},
		}
	}, nil)

	spec, err := Spec("reviewtrust test")
	if err != nil {
		t.Fatalf("Spec: %v", err)
	}
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	if spec["info"].(map[string]any)["title"] != "reviewtrust test" {
		t.Fatalf("title not applied: %v", spec["info"])
	}
	if _, ok := Schemas(spec)["ErrorResponse"]; !ok {
		t.Fatal("ErrorResponse schema missing")
	}
	op := Paths(spec)["/trust/defaults"].(map[string]any)["get"].(map[string]any)
	resps := op["responses"].(map[string]any)
	for _, code := range []string{"400", "500"} {
		if _, ok := resps[code]; !ok {
			t.Fatalf("default %s response missing", code)
		}
	}
}

func TestEnsureServers(t *testing.T) {
	spec := map[string]any{"swagger": "2.0"}
	ensureServers(spec, "/api/v1")
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("swagger 2 not lifted: %v", spec["openapi"])
	}
	if _, ok := spec["swagger"]; ok {
		t.Fatal("swagger key should be removed")
	}

	spec = map[string]any{"openapi": "3.1.0", "servers": []any{"keep"}}
	ensureServers(spec, "/api/v1")
	if spec["openapi"] != "3.0.3" {
		t.Fatalf("3.1 not downconverted: %v", spec["openapi"])
	}
	if s := spec["servers"].([]any); len(s) != 1 || s[0] != "keep" {
		t.Fatalf("existing servers overwritten: %v", spec["servers"])
	}
}

func TestServeDocJSON_BadDoc(t *testing.T) {
	prev := docReader
	docReader = func() string { return "{" }
	t.Cleanup(func() { docReader = prev })

	rec := httptest.NewRecorder()
	serveDocJSON("")(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", rec.Code)
	}
}

func TestMount(t *testing.T) {
	withMutators(t)

	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, true, "")

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json code = %d", rec.Code)
	}
	var spec map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("doc.json is not json: %v", err)
	}
	testkit.MustContain(t, rec.Body.String(), "reviewtrust API")

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect code = %d", rec.Code)
	}

	off := phttp.AdaptChi(chi.NewRouter())
	Mount(off, false, "")
	rec = httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled docs code = %d, want 404", rec.Code)
	}
}

package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"reviewtrust/internal/core/version"
)

// SpecMutator lets modules add paths or tweak the spec before it is served
type SpecMutator func(map[string]any)

var (
	mutMu    sync.RWMutex
	mutators []SpecMutator
)

// Register adds a spec mutator; modules call this from init
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mutMu.Lock()
	mutators = append(mutators, m)
	mutMu.Unlock()
}

// docReader is a seam so tests can inject invalid JSON
var docReader = func() string {
	info := version.Info()
	b, _ := json.Marshal(map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       "reviewtrust API",
			"description": "Review manipulation heuristics and bounded trust scores for map listings",
			"version":     info.Version,
		},
		"paths": map[string]any{},
	})
	return string(b)
}

// Spec builds the served document: base skeleton, shared error model, then module mutators
func Spec(title string) (map[string]any, error) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
		return nil, err
	}
	ensureServers(spec, "/api/v1")
	if title != "" {
		if info, ok := spec["info"].(map[string]any); ok {
			info["title"] = title
		}
	}

	mutMu.RLock()
	for _, m := range mutators {
		m(spec)
	}
	mutMu.RUnlock()

	ensureErrorResponseDefinition(spec)
	addDefaultResponse(spec, "500", "Internal Server Error", map[string]any{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        1,
		"error":       "panic recovered",
		"request_id":  "host/abc-000001",
	})
	addDefaultResponse(spec, "400", "Bad Request", map[string]any{
		"status_code": 400,
		"status":      "Bad Request",
		"code":        5,
		"error":       "analysis_mode must be one of [lenient standard strict]",
		"request_id":  "host/abc-000001",
	})
	return spec, nil
}

// serveDocJSON serves the assembled spec
func serveDocJSON(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		spec, err := Spec(title)
		if err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers makes sure the spec is OAS 3.0 and has a servers array
// swagger ui can't render 3.1 yet, so downconvert
func ensureServers(spec map[string]any, url string) {
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		spec["openapi"] = "3.0.3"
		delete(spec, "swagger")
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// Schemas returns components.schemas, creating it when missing
func Schemas(spec map[string]any) map[string]any {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	return schemas
}

// Paths returns the paths object, creating it when missing
func Paths(spec map[string]any) map[string]any {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		paths = map[string]any{}
		spec["paths"] = paths
	}
	return paths
}

// ensureErrorResponseDefinition adds the error envelope model if missing
// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(spec map[string]any) {
	schemas := Schemas(spec)
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultResponse injects an error response for code into every operation lacking one
func addDefaultResponse(spec map[string]any, code, desc string, example map[string]any) {
	resp := map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
	for _, p := range Paths(spec) {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[code]; !exists {
				responses[code] = resp
			}
		}
	}
}

package http

import "reviewtrust/internal/modkit/swaggerkit"

func init() { swaggerkit.Register(mutateSpec) }

// mutateSpec documents the meta routes
func mutateSpec(spec map[string]any) {
	paths := swaggerkit.Paths(spec)
	for _, r := range []struct{ path, summary, id string }{
		{"/meta/health", "Health check", "metaHealth"},
		{"/meta/ready", "Readiness probe with dependency checks", "metaReady"},
		{"/meta/version", "Build and version info", "metaVersion"},
		{"/meta/service", "Service info and uptime", "metaService"},
		{"/meta/algorithm", "Scoring algorithm version and defaults", "metaAlgorithm"},
	} {
		paths[r.path] = map[string]any{
			"get": map[string]any{
				"tags":        []any{"Meta"},
				"summary":     r.summary,
				"operationId": r.id,
				"responses": map[string]any{
					"200": map[string]any{
						"description": "OK",
						"content": map[string]any{
							"application/json": map[string]any{"schema": map[string]any{"type": "object"}},
						},
					},
				},
			},
		}
	}
}

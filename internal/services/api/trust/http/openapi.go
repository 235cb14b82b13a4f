package http

import "reviewtrust/internal/modkit/swaggerkit"

func init() { swaggerkit.Register(mutateSpec) }

func ref(name string) map[string]any { return map[string]any{"$ref": "#/components/schemas/" + name} }

func jsonBody(schema map[string]any) map[string]any {
	return map[string]any{
		"required": true,
		"content":  map[string]any{"application/json": map[string]any{"schema": schema}},
	}
}

func okResponse(schema map[string]any) map[string]any {
	return map[string]any{
		"200": map[string]any{
			"description": "OK",
			"content":     map[string]any{"application/json": map[string]any{"schema": schema}},
		},
	}
}

func obj(required []any, props map[string]any) map[string]any {
	m := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		m["required"] = required
	}
	return m
}

var (
	str   = map[string]any{"type": "string"}
	integ = map[string]any{"type": "integer"}
	boo   = map[string]any{"type": "boolean"}
	stamp = map[string]any{"type": "string", "format": "date-time"}
)

// mutateSpec documents the trust routes and their models
func mutateSpec(spec map[string]any) {
	schemas := swaggerkit.Schemas(spec)

	schemas["TrustReview"] = obj(nil, map[string]any{
		"text":        str,
		"text_length": map[string]any{"type": "integer", "minimum": 0},
		"date_text":   map[string]any{"type": "string", "example": "3日前"},
		"has_photos":  boo,
	})
	schemas["TrustDataset"] = obj(nil, map[string]any{
		"ratings": map[string]any{
			"type":                 "object",
			"description":          "star value 1..5 to review count",
			"additionalProperties": map[string]any{"type": "integer", "minimum": 0},
			"example":              map[string]any{"1": 40, "2": 2, "3": 2, "4": 2, "5": 54},
		},
		"total_reviews":  map[string]any{"type": "integer", "minimum": 0},
		"recent_reviews": map[string]any{"type": "array", "maxItems": 50, "items": ref("TrustReview")},
	})
	schemas["TrustSettings"] = obj(nil, map[string]any{
		"analysis_mode":                map[string]any{"type": "string", "enum": []any{"lenient", "standard", "strict"}},
		"minimum_reviews_for_analysis": map[string]any{"type": "integer", "minimum": 1},
		"show_detailed_analysis":       boo,
	})
	schemas["TrustAnalyzeInput"] = obj([]any{"dataset"}, map[string]any{
		"place_id":   str,
		"place_name": str,
		"url":        map[string]any{"type": "string", "format": "uri"},
		"dataset":    ref("TrustDataset"),
		"settings":   ref("TrustSettings"),
	})
	schemas["TrustPattern"] = obj(nil, map[string]any{
		"type":        str,
		"description": str,
		"severity":    map[string]any{"type": "string", "enum": []any{"LOW", "MEDIUM", "HIGH"}},
		"metadata":    map[string]any{"type": "object", "additionalProperties": true},
	})
	schemas["TrustResult"] = obj(nil, map[string]any{
		"score":             map[string]any{"type": "integer", "minimum": 10, "maximum": 100},
		"level":             map[string]any{"type": "string", "enum": []any{"high", "medium", "low", "very_low"}},
		"details":           map[string]any{"type": "object", "additionalProperties": true},
		"breakdown":         map[string]any{"type": "object", "additionalProperties": true},
		"algorithm_version": integ,
	})
	schemas["TrustAnalyzeOutput"] = obj(nil, map[string]any{
		"analysis_id": map[string]any{"type": "string", "format": "uuid"},
		"place_id":    str,
		"analyzed_at": stamp,
		"persisted":   boo,
		"lang":        str,
		"result":      ref("TrustResult"),
		"patterns":    map[string]any{"type": "array", "items": ref("TrustPattern")},
	})
	schemas["TrustHistoryQuery"] = obj([]any{"place_id"}, map[string]any{
		"place_id": str,
		"limit":    map[string]any{"type": "integer", "minimum": 1, "maximum": 200},
	})
	schemas["TrustHistoryRow"] = obj(nil, map[string]any{
		"analysis_id":       str,
		"place_id":          str,
		"score":             integ,
		"level":             str,
		"analysis_mode":     str,
		"total_reviews":     integ,
		"patterns_detected": integ,
		"created_at":        stamp,
	})
	schemas["TrustHistoryOutput"] = obj(nil, map[string]any{
		"place_id": str,
		"items":    map[string]any{"type": "array", "items": ref("TrustHistoryRow")},
	})
	schemas["TrustDefaults"] = obj(nil, map[string]any{
		"settings":          ref("TrustSettings"),
		"profile":           str,
		"algorithm_version": integ,
		"history_limit":     integ,
		"history_enabled":   boo,
		"events_enabled":    boo,
	})

	paths := swaggerkit.Paths(spec)
	paths["/trust/analyze"] = map[string]any{
		"post": map[string]any{
			"tags":        []any{"Trust"},
			"summary":     "Detect review manipulation patterns and compute a trust score",
			"operationId": "trustAnalyze",
			"requestBody": jsonBody(ref("TrustAnalyzeInput")),
			"responses":   okResponse(ref("TrustAnalyzeOutput")),
		},
	}
	paths["/trust/history"] = map[string]any{
		"post": map[string]any{
			"tags":        []any{"Trust"},
			"summary":     "Stored analyses of a place, newest first",
			"operationId": "trustHistory",
			"requestBody": jsonBody(ref("TrustHistoryQuery")),
			"responses":   okResponse(ref("TrustHistoryOutput")),
		},
	}
	paths["/trust/defaults"] = map[string]any{
		"get": map[string]any{
			"tags":        []any{"Trust"},
			"summary":     "Effective default settings and algorithm version",
			"operationId": "trustDefaults",
			"responses":   okResponse(ref("TrustDefaults")),
		},
	}
}

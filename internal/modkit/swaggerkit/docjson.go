package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"sentilex/internal/core/version"
)

//go:embed openapi.json
var openapiDoc []byte

// docSource is swapped in tests
var docSource = func() []byte { return openapiDoc }

// errorExample mirrors what pnet.Error writes for a status
func errorExample(status, code int, msg string) map[string]any {
	return map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      http.StatusText(status),
					"code":        code,
					"error":       msg,
					"request_id":  "host/abc-000001",
				},
			},
		},
	}
}

// serveDocJSON serves the embedded OpenAPI document decorated for this build
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal(docSource(), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		decorate(spec)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

func decorate(spec map[string]any) {
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": "/api"}}
	}
	if info, ok := spec["info"].(map[string]any); ok {
		if v := version.Info().Version; v != "" {
			info["version"] = v
		}
	}

	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"status_code": map[string]any{"type": "integer"},
				"status":      map[string]any{"type": "string"},
				"code":        map[string]any{"type": "integer"},
				"error":       map[string]any{"type": "string"},
				"request_id":  map[string]any{"type": "string"},
			},
			"required": []any{"status_code", "status"},
		}
	}

	// codes follow perr: 4 Validation, 1 Panic
	defaults := map[string]map[string]any{
		"400": errorExample(http.StatusBadRequest, 4, "Texto é obrigatório e deve ser uma string"),
		"500": errorExample(http.StatusInternalServerError, 1, "internal error"),
	}
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		ops, _ := p.(map[string]any)
		for _, o := range ops {
			op, ok := o.(map[string]any)
			if !ok {
				continue
			}
			resps := child(op, "responses")
			for code, resp := range defaults {
				if _, exists := resps[code]; !exists {
					resps[code] = resp
				}
			}
		}
	}
}

// child returns m[key] as an object, creating it when absent
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

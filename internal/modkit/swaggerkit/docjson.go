// Package swaggerkit serves the API document and swagger ui
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"gadash/internal/platform/config"

	docs "gadash/internal/services/api/docs"
)

// APIBase is the server url the document's paths are relative to
const APIBase = "/api"

// SpecMutator edits the parsed document before it is served
type SpecMutator func(map[string]any)

// mutators run in order on every request
var mutators = []SpecMutator{
	liftOAS3,
	errorSchema,
	defaultResponses,
	titleSuffix,
}

var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

const sampleRequestID = "6f1c2e0a-8a1d-4c3b-9f57-2d0b5c8e4a11"

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		for _, m := range mutators {
			m(spec)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// child returns spec[key] as an object, creating it when absent
func child(spec map[string]any, key string) map[string]any {
	m, ok := spec[key].(map[string]any)
	if !ok {
		m = map[string]any{}
		spec[key] = m
	}
	return m
}

// liftOAS3 pins the document to OAS 3.0.3, the newest version the ui renders.
// Swagger 2 output from older swag runs is moved under components.
func liftOAS3(spec map[string]any) {
	delete(spec, "swagger")
	delete(spec, "basePath")
	spec["openapi"] = "3.0.3"
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": APIBase}}
	}

	comps := child(spec, "components")
	if defs, ok := spec["definitions"].(map[string]any); ok {
		schemas := child(comps, "schemas")
		for k, v := range defs {
			schemas[k] = v
		}
		delete(spec, "definitions")
	}
	if sec, ok := spec["securityDefinitions"].(map[string]any); ok {
		schemes := child(comps, "securitySchemes")
		for k, v := range sec {
			schemes[k] = v
		}
		delete(spec, "securityDefinitions")
	}
	rewriteRefs(spec)
}

func rewriteRefs(node any) {
	switch n := node.(type) {
	case map[string]any:
		for k, v := range n {
			if s, ok := v.(string); ok && k == "$ref" {
				n[k] = strings.Replace(s, "#/definitions/", "#/components/schemas/", 1)
				continue
			}
			rewriteRefs(v)
		}
	case []any:
		for _, v := range n {
			rewriteRefs(v)
		}
	}
}

// errorSchema documents the failure envelope every handler writes
func errorSchema(spec map[string]any) {
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	str := map[string]any{"type": "string"}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Failure envelope",
		"properties": map[string]any{
			"success":   map[string]any{"type": "boolean", "example": false},
			"error":     str,
			"code":      str,
			"field":     str,
			"requestId": str,
		},
		"required": []any{"success", "error", "code"},
	}
}

type stockResponse struct {
	status  string
	desc    string
	code    string
	message string
	field   string
	// analytics limits the response to report routes
	analytics bool
}

var stockResponses = []stockResponse{
	{status: "400", desc: "Bad Request", code: "VALIDATION",
		message: "startDate must be YYYY-MM-DD, today, yesterday or NdaysAgo", field: "startDate"},
	{status: "401", desc: "Unauthorized", code: "UNAUTHORIZED",
		message: "missing or invalid bearer token", analytics: true},
	{status: "502", desc: "Bad Gateway", code: "BAD_GATEWAY",
		message: "report backend rejected our credentials", analytics: true},
	{status: "500", desc: "Internal Server Error", code: "UNKNOWN", message: "internal error"},
}

func (s stockResponse) body() map[string]any {
	example := map[string]any{
		"success":   false,
		"error":     s.message,
		"code":      s.code,
		"requestId": sampleRequestID,
	}
	if s.field != "" {
		example["field"] = s.field
	}
	return map[string]any{
		"description": s.desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}

// defaultResponses adds the shared failure responses to operations that do
// not document them
func defaultResponses(spec map[string]any) {
	paths, _ := spec["paths"].(map[string]any)
	for path, p := range paths {
		ops, _ := p.(map[string]any)
		for _, opAny := range ops {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps := child(op, "responses")
			for _, s := range stockResponses {
				if s.analytics && !strings.HasPrefix(path, "/analytics/") {
					continue
				}
				if _, exists := resps[s.status]; !exists {
					resps[s.status] = s.body()
				}
			}
		}
	}
}

// titleSuffix tags the document per deployment, e.g. "staging"
func titleSuffix(spec map[string]any) {
	suffix := config.New().MayString("DOCS_TITLE_SUFFIX", "")
	if suffix == "" {
		return
	}
	if info, ok := spec["info"].(map[string]any); ok {
		if title, ok := info["title"].(string); ok {
			info["title"] = title + " " + suffix
		}
	}
}

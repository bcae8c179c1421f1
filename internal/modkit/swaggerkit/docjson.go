package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"

	"figurefriday/internal/platform/config"
	perr "figurefriday/internal/platform/errors"
	pnet "figurefriday/internal/platform/net"
	phttp "figurefriday/internal/platform/net/http"
)

// docReader is a seam so tests can inject invalid JSON
var docReader = func() string { return baseSpec }

// serveDocJSON parses the base spec and fills the parts shared by every route
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			phttp.RespondError(w, r, perr.Wrap(err, perr.ErrorCodeUnknown, "spec parse error"))
			return
		}

		if _, ok := spec["servers"]; !ok {
			spec["servers"] = []any{map[string]any{"url": "/api/v1"}}
		}
		if v := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				info["title"] = info["title"].(string) + " " + v
			}
		}

		errorSchema(spec)
		defaultResponse(spec, perr.PanicErrf("panic recovered"))
		defaultResponse(spec, perr.WithField(perr.New(perr.ErrorCodeValidation, "action must be one of: jump, next, prev"), "action"))

		w.Header().Set("Cache-Control", "no-store")
		phttp.JSON(w, http.StatusOK, spec)
	}
}

// errorSchema adds the envelope model error responses point at
func errorSchema(spec map[string]any) {
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
	schemas["ErrorResponse"] = map[string]any{
		"type": "object",
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

// defaultResponse documents ex under its mapped status on every operation lacking one
func defaultResponse(spec map[string]any, ex error) {
	status, env := pnet.Failure(ex, "579f33bf50b1/abc-000001")
	resp := map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": env,
			},
		},
	}
	code := strconv.Itoa(status)

	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		node, _ := p.(map[string]any)
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			if _, exists := resps[code]; !exists {
				resps[code] = resp
			}
		}
	}
}

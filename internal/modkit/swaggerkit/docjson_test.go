package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "figurefriday/internal/platform/errors"
	phttp "figurefriday/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func fetchSpec(t *testing.T) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	serveDocJSON()(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	var spec map[string]any
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return rec.Code, spec
}

func TestServeDocJSON_FillsDefaults(t *testing.T) {
	code, spec := fetchSpec(t)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatal("ErrorResponse schema missing")
	}
	op := spec["paths"].(map[string]any)["/survey/bar-chart"].(map[string]any)["post"].(map[string]any)
	resps := op["responses"].(map[string]any)
	for _, c := range []string{"200", "400", "404", "422", "500"} {
		if _, ok := resps[c]; !ok {
			t.Fatalf("bar-chart missing %s response", c)
		}
	}
}

func TestServeDocJSON_ErrorExamplesUseWireCodes(t *testing.T) {
	_, spec := fetchSpec(t)
	op := spec["paths"].(map[string]any)["/violations/select"].(map[string]any)["post"].(map[string]any)
	resps := op["responses"].(map[string]any)

	example := func(status string) map[string]any {
		return resps[status].(map[string]any)["content"].(map[string]any)["application/json"].(map[string]any)["example"].(map[string]any)
	}
	if got := example("400")["code"]; got != float64(perr.ErrorCodeValidation) {
		t.Fatalf("400 code = %v", got)
	}
	if got := example("500")["code"]; got != float64(perr.ErrorCodePanic) {
		t.Fatalf("500 code = %v", got)
	}
}

func TestServeDocJSON_TitleSuffix(t *testing.T) {
	t.Setenv("CORE_API_DOCS_TITLE_SUFFIX", "(staging)")
	_, spec := fetchSpec(t)
	if got := spec["info"].(map[string]any)["title"]; got != "figurefriday API (staging)" {
		t.Fatalf("title = %v", got)
	}
}

func TestServeDocJSON_BadSpec(t *testing.T) {
	saved := docReader
	t.Cleanup(func() { docReader = saved })
	docReader = func() string { return "{" }

	if code, _ := fetchSpec(t); code != http.StatusInternalServerError {
		t.Fatalf("status = %d", code)
	}
}

func TestMount(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rec.Code)
	}

	off := chi.NewRouter()
	Mount(phttp.AdaptChi(off), false)
	rec = httptest.NewRecorder()
	off.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("disabled status = %d", rec.Code)
	}
}

package httpkit

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "figurefriday/internal/platform/errors"
)

func run(t *testing.T, h Handler, method, body string) (int, Envelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(method, "/api/v1/survey/bar-chart", rd))
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return rec.Code, env
}

func TestCall(t *testing.T) {
	code, env := run(t, Call(func(*http.Request) (any, error) { return []string{"Age"}, nil }), http.MethodGet, "")
	if code != http.StatusOK || env.StatusCode != http.StatusOK || env.Data == nil {
		t.Fatalf("ok path = %d %+v", code, env)
	}

	code, env = run(t, Call(func(*http.Request) (any, error) { return nil, perr.NotFoundf("unknown field") }), http.MethodGet, "")
	if code != http.StatusNotFound || env.Code != perr.ErrorCodeNotFound || env.Error != "unknown field" {
		t.Fatalf("error path = %d %+v", code, env)
	}

	code, _ = run(t, Call(func(*http.Request) (any, error) { return nil, errors.New("nah") }), http.MethodGet, "")
	if code != http.StatusInternalServerError {
		t.Fatalf("foreign error = %d", code)
	}
}

func TestCall_ResponsePassthrough(t *testing.T) {
	h := Call(func(*http.Request) (any, error) {
		return Response{Status: http.StatusServiceUnavailable, Body: map[string]string{"ch": "down"}}, nil
	})
	code, env := run(t, h, http.MethodGet, "")
	if code != http.StatusServiceUnavailable || env.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("passthrough = %d %+v", code, env)
	}
}

type selection struct {
	Field      string   `json:"field" validate:"required"`
	Attributes []string `json:"attributes"`
}

func TestJSON(t *testing.T) {
	var seen selection
	h := JSON(func(_ *http.Request, in selection) (any, error) {
		seen = in
		return map[string]int{"total": 3}, nil
	})

	code, env := run(t, h, http.MethodPost, `{"field":"Age","attributes":["18-29"]}`)
	if code != http.StatusOK || env.Data == nil {
		t.Fatalf("ok = %d %+v", code, env)
	}
	if seen.Field != "Age" || len(seen.Attributes) != 1 {
		t.Fatalf("bound = %+v", seen)
	}
}

func TestJSON_RejectsBadBodies(t *testing.T) {
	h := JSON(func(_ *http.Request, _ selection) (any, error) {
		t.Fatal("handler should not run")
		return nil, nil
	})
	cases := map[string]string{
		"malformed":     `{`,
		"unknown field": `{"field":"Age","color":"red"}`,
		"missing field": `{"attributes":[]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			code, env := run(t, h, http.MethodPost, body)
			if code != http.StatusBadRequest || env.Error == "" {
				t.Fatalf("%s = %d %+v", name, code, env)
			}
		})
	}
}

func TestJSON_HandlerError(t *testing.T) {
	h := JSON(func(_ *http.Request, _ selection) (any, error) {
		return nil, perr.InvalidArgf("two attributes of one dimension")
	})
	code, env := run(t, h, http.MethodPost, `{"field":"Age"}`)
	if code != http.StatusUnprocessableEntity || env.Code != perr.ErrorCodeInvalidArgument {
		t.Fatalf("= %d %+v", code, env)
	}
}

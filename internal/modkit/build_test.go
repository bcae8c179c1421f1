package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"figurefriday/internal/modkit/httpkit"
	phttp "figurefriday/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tag(name string, seen *[]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*seen = append(*seen, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestBuild_OptionsOverrideDefaults(t *testing.T) {
	b := Build([]Option{WithName("survey"), WithPrefix("/survey")}, WithPrefix("/steak"))
	assert.Equal(t, "survey", b.Name)
	assert.Equal(t, "/steak", b.Prefix)
	assert.Empty(t, b.Mw)
	require.NotNil(t, b.Register)
}

func TestBuild_CopiesMiddlewares(t *testing.T) {
	var seen []string
	mw := []func(http.Handler) http.Handler{tag("a", &seen)}
	b := Build(nil, WithMiddlewares(mw...), WithMiddlewares(tag("b", &seen)))
	mw[0] = tag("x", &seen)

	require.Len(t, b.Mw, 2)
	var h http.Handler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for i := len(b.Mw) - 1; i >= 0; i-- {
		h = b.Mw[i](h)
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestBuilt_Mount(t *testing.T) {
	var seen []string
	b := Build([]Option{WithName("violations"), WithPrefix("/violations")},
		WithMiddlewares(tag("module", &seen)),
		WithRegister(func(r phttp.Router) {
			httpkit.Get(r, "/extra", func(*http.Request) (any, error) { return "extra", nil })
		}),
	)

	mux := chi.NewRouter()
	b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
		httpkit.Get(r, "/", func(*http.Request) (any, error) { return []string{"ALL"}, nil })
	})

	for _, path := range []string{"/violations/", "/violations/extra"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
	assert.Equal(t, []string{"module", "module"}, seen)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/extra", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuilt_MountRequiresPrefix(t *testing.T) {
	b := Build(nil, WithName("meta"))
	assert.Panics(t, func() { b.Mount(phttp.AdaptChi(chi.NewRouter()), func(httpkit.Router) {}) })
}

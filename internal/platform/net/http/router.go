package http

import "net/http"

// Handler is a plain handler func; modules never see chi types
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what services mount chart and meta endpoints on
// the API is read only, so GET and POST are the only verbs exposed
type Router interface {
	Use(mw ...func(http.Handler) http.Handler)
	Route(pattern string, fn func(Router))
	Handle(path string, h http.Handler)
	Get(path string, h Handler)
	Post(path string, h Handler)

	// Mux exposes the root http.Handler for httptest and http.Server
	Mux() http.Handler
}

// Package http is the response side of the API: the envelope writer and the
// return-style handler adapter, plus the chi backed Router and Server
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "figurefriday/internal/platform/errors"
	"figurefriday/internal/platform/logger"
	pnet "figurefriday/internal/platform/net"
)

type Envelope = pnet.Envelope

// Response is what a return-style handler hands back; an error Body picks its own status
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

func Error(err error) Response { return Response{Body: err} }

// Handle adapts h to a plain handler func
func Handle(h func(*stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		resp := h(r)
		dst := w.Header()
		for k, vs := range resp.Header {
			dst[k] = append(dst[k], vs...)
		}
		if err, ok := resp.Body.(error); ok && err != nil {
			RespondError(w, r, err)
			return
		}
		status := resp.Status
		if status == 0 {
			status = stdhttp.StatusOK
		}
		JSON(w, status, pnet.Success(status, resp.Body, pnet.RequestID(r.Context())))
	}
}

// RespondError writes err as a failure envelope with its mapped status
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := pnet.Failure(err, pnet.RequestID(r.Context()))
	JSON(w, status, env)
}

// JSON marshals v before touching w, so a value that cannot encode (a NaN share, say)
// becomes a 500 envelope instead of a truncated 200
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Get().Error().Err(err).Msg("response encode failed")
		status = stdhttp.StatusInternalServerError
		b, _ = json.Marshal(Envelope{
			StatusCode: status,
			Status:     stdhttp.StatusText(status),
			Code:       perr.ErrorCodeUnknown,
			Error:      "response encode failed",
		})
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(b, '\n'))
}

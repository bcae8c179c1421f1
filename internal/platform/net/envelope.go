package net

import (
	"net/http"

	perr "figurefriday/internal/platform/errors"
)

// Envelope wraps every JSON body the API writes
// successes carry data; failures carry code and error
type Envelope struct {
	StatusCode int            `json:"status_code" example:"200"`
	Status     string         `json:"status" example:"OK"`
	Code       perr.ErrorCode `json:"code,omitempty" example:"7"`
	Error      string         `json:"error,omitempty" example:"unknown field \"Colour\""`
	RequestID  string         `json:"request_id,omitempty" example:"579f33bf50b1/abc-000001"`
	Data       any            `json:"data,omitempty"`
}

func newEnvelope(status int, reqID string) Envelope {
	return Envelope{StatusCode: status, Status: http.StatusText(status), RequestID: reqID}
}

// Success is the envelope for a 2xx status
func Success(status int, data any, reqID string) Envelope {
	env := newEnvelope(status, reqID)
	env.Data = data
	return env
}

// Failure picks the status for err and the envelope to send with it
// a nil err is an empty 200
func Failure(err error, reqID string) (int, Envelope) {
	if err == nil {
		return http.StatusOK, newEnvelope(http.StatusOK, reqID)
	}
	status := perr.HTTPStatus(err)
	wire := perr.WireFrom(err)

	env := newEnvelope(status, reqID)
	env.Code, env.Error = wire.Code, wire.Message
	return status, env
}

package errors

import "net/http"

// ErrorCode is the number clients switch on in the envelope "code" field
// the values are wire format: append new codes, never renumber
type ErrorCode uint16

const (
	ErrorCodeUnknown         ErrorCode = iota // unclassified, including foreign errors
	ErrorCodePanic                            // recovered handler panic
	ErrorCodeUnavailable                      // dataset not loaded or backend unreachable
	ErrorCodeTooManyRequests                  // rate limited
	ErrorCodeInvalidArgument                  // well formed request the data cannot satisfy
	ErrorCodeValidation                       // request or dataset field breaks its rules
	ErrorCodeJSON                             // body does not decode
	ErrorCodeNotFound                         // unknown field, attribute or index
	ErrorCodeDB                               // database failure with no better code
)

var codeInfo = map[ErrorCode]struct {
	name   string
	status int
}{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeTooManyRequests: {"too_many_requests", http.StatusTooManyRequests},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
	ErrorCodeDB:              {"db", http.StatusInternalServerError},
}

// String is the log name of the code
func (c ErrorCode) String() string {
	if i, ok := codeInfo[c]; ok {
		return i.name
	}
	return "unknown"
}

// HTTPStatusCode is the response status for c; codes this build does not know are 500
func HTTPStatusCode(c ErrorCode) int {
	if i, ok := codeInfo[c]; ok {
		return i.status
	}
	return http.StatusInternalServerError
}

package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes_StatusAndName(t *testing.T) {
	cases := []struct {
		code   ErrorCode
		wire   uint16
		status int
		name   string
	}{
		{ErrorCodeUnknown, 0, http.StatusInternalServerError, "unknown"},
		{ErrorCodePanic, 1, http.StatusInternalServerError, "panic"},
		{ErrorCodeUnavailable, 2, http.StatusServiceUnavailable, "unavailable"},
		{ErrorCodeTooManyRequests, 3, http.StatusTooManyRequests, "too_many_requests"},
		{ErrorCodeInvalidArgument, 4, http.StatusUnprocessableEntity, "invalid_argument"},
		{ErrorCodeValidation, 5, http.StatusBadRequest, "validation"},
		{ErrorCodeJSON, 6, http.StatusBadRequest, "json"},
		{ErrorCodeNotFound, 7, http.StatusNotFound, "not_found"},
		{ErrorCodeDB, 8, http.StatusInternalServerError, "db"},
		{9999, 9999, http.StatusInternalServerError, "unknown"},
	}
	for _, c := range cases {
		assert.Equal(t, c.wire, uint16(c.code), c.name)
		assert.Equal(t, c.status, HTTPStatusCode(c.code), c.name)
		assert.Equal(t, c.name, c.code.String())
	}
}

func TestError_Render(t *testing.T) {
	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())

	assert.Equal(t, "bad json at 12", Newf(ErrorCodeJSON, "bad json at %d", 12).Error())

	root := stderrs.New("no such file")
	err := Wrapf(root, ErrorCodeUnavailable, "survey: read %s", "steak.csv")
	assert.Equal(t, "survey: read steak.csv: no such file", err.Error())
	assert.ErrorIs(t, err, root)
	assert.Same(t, root, Root(fmt.Errorf("boot: %w", err)))
	assert.Nil(t, Root(nil))
}

func TestCodeOf_ThroughForeignWrapping(t *testing.T) {
	err := fmt.Errorf("load: %w", Wrap(stderrs.New("dial"), ErrorCodeUnavailable, "clickhouse"))
	assert.Equal(t, ErrorCodeUnavailable, CodeOf(err))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(err))
	assert.Equal(t, ErrorCodeUnknown, CodeOf(stderrs.New("plain")))

	assert.True(t, IsCode(NotFoundf("x"), ErrorCodeNotFound))
	assert.True(t, IsCode(InvalidArgf("x"), ErrorCodeInvalidArgument))
	assert.True(t, IsCode(JSONErrf("x"), ErrorCodeJSON))
	assert.True(t, IsCode(PanicErrf("x"), ErrorCodePanic))
}

func TestWithField_CopiesAndWire(t *testing.T) {
	orig := Wrap(stderrs.New("cause"), ErrorCodeInvalidArgument, "two attributes of one dimension")
	named := WithField(orig, "attributes")

	e, ok := As(named)
	require.True(t, ok)
	assert.Equal(t, "attributes", e.Field())
	e0, _ := As(orig)
	assert.Empty(t, e0.Field(), "original untouched")

	foreign := stderrs.New("cause")
	assert.Same(t, foreign, WithField(foreign, "x"))

	assert.Equal(t, Wire{Code: ErrorCodeInvalidArgument, Message: "two attributes of one dimension", Field: "attributes"}, WireFrom(named))
	assert.Equal(t, Wire{Code: ErrorCodeUnknown, Message: "cause"}, WireFrom(foreign))
	assert.Zero(t, WireFrom(nil))
}

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m), buf.String())
	return m
}

// useRoot swaps the root logger for one writing JSON into buf
func useRoot(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	Init(Options{Format: "json"}) // settle once before swapping
	prev := root.Load()
	l := New(Options{Format: "json", Writer: buf, Level: "debug"})
	root.Store(&l)
	t.Cleanup(func() { root.Store(prev) })
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":     zerolog.TraceLevel,
		"DEBUG":     zerolog.DebugLevel,
		" warning ": zerolog.WarnLevel,
		"error":     zerolog.ErrorLevel,
		"":          zerolog.InfoLevel,
		"loud":      zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{
		Level:   "warn",
		Format:  "json",
		Service: "figurefriday-api",
		Writer:  &buf,
		Fields:  map[string]string{"dataset": "violations"},
	})
	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len(), "info is below warn")

	l.Warn().Msg("snapshot stale")
	m := lastLine(t, &buf)
	assert.Equal(t, "snapshot stale", m["message"])
	assert.Equal(t, "figurefriday-api", m["service"])
	assert.Equal(t, "violations", m["dataset"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Writer: &buf, Service: "figurefriday-seed"})
	l.Info().Msg("seeded")
	assert.Contains(t, buf.String(), "seeded")
	assert.Contains(t, buf.String(), "service=")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_SERVICE", "figurefriday-api")
	t.Setenv("LOG_CALLER", "true")

	opt := FromEnv()
	assert.Equal(t, "warn", opt.Level)
	assert.Equal(t, "json", opt.Format)
	assert.Equal(t, "figurefriday-api", opt.Service)
	assert.True(t, opt.Caller)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	useRoot(t, &buf)

	ctx := WithRequest(context.Background(), "host/abc-000001", "10.0.0.7")
	C(ctx).Info().Msg("bar chart built")
	m := lastLine(t, &buf)
	assert.Equal(t, "host/abc-000001", m["request_id"])
	assert.Equal(t, "10.0.0.7", m["client_ip"])

	C(context.Background()).Info().Msg("no request")
	m = lastLine(t, &buf)
	assert.NotContains(t, m, "request_id")

	Named("survey").Info().Msg("loaded")
	assert.Equal(t, "survey", lastLine(t, &buf)["component"])
}

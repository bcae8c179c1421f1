// Package logger wraps zerolog with a process root logger and request-scoped children
package logger

import (
	"context"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"figurefriday/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Options configures the logger
type Options struct {
	Level   string
	Format  string // console or json
	Service string
	Caller  bool
	Writer  io.Writer // stdout when nil
	Fields  map[string]string
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE and LOG_CALLER
func FromEnv() Options {
	env := raw.Env("LOG_")
	return Options{
		Level:   env.String("LEVEL", "info"),
		Format:  strings.ToLower(env.String("FORMAT", "console")),
		Service: env.String("SERVICE", ""),
		Caller:  env.Bool("CALLER", false),
	}
}

// ParseLevel maps a level name to zerolog; unknown or empty names are info
func ParseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// New builds a logger from opt without touching the root
func New(opt Options) Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(ParseLevel(opt.Level)).With().Timestamp()
	if opt.Service != "" {
		ctx = ctx.Str("service", opt.Service)
	}
	for _, k := range slices.Sorted(maps.Keys(opt.Fields)) {
		ctx = ctx.Str(k, opt.Fields[k])
	}
	if opt.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

var (
	once sync.Once
	root atomic.Pointer[Logger]
)

// Init installs the root logger; only the first call has an effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := New(opt)
		root.Store(&l)
	})
}

// Get returns the root logger, initialising it from LOG_* on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// Named returns a child of the root with a component field
func Named(component string) *Logger {
	l := Get().With().Str("component", component).Logger()
	return &l
}

// WithRequest stores a child of the root carrying request_id and client_ip on ctx
func WithRequest(ctx context.Context, reqID, clientIP string) context.Context {
	b := Get().With()
	if reqID != "" {
		b = b.Str("request_id", reqID)
	}
	if clientIP != "" {
		b = b.Str("client_ip", clientIP)
	}
	l := b.Logger()
	return l.WithContext(ctx)
}

// C returns the request logger on ctx, or the root when there is none
func C(ctx context.Context) *Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return Get()
}

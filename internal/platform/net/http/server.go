package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"figurefriday/internal/platform/config"
	perr "figurefriday/internal/platform/errors"
	"figurefriday/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the listening http.Server
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// NewServer reads API_PORT and the *_TIMEOUT durations from cfg
// each opt sees the mux before any route is mounted
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	mux := chi.NewRouter()
	for _, opt := range opts {
		opt(mux)
	}

	s := &Server{addr: cfg.MayString("API_PORT", ":4000"), mux: mux}
	s.srv = &stdhttp.Server{
		Addr:              s.addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", time.Minute),
		IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 2*time.Minute),
	}
	return s
}

func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.addr }

// Run listens and serves until Shutdown; a clean shutdown returns nil
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "listen %s", s.addr)
	}
	logger.C(ctx).Info().Str("component", "http").Str("addr", ln.Addr().String()).Msg("http listening")

	if err := s.srv.Serve(ln); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains open connections until ctx expires
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }

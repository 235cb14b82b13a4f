package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"reviewtrust/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ServerOptions tunes the stdlib server; zero values take the defaults
type ServerOptions struct {
	Addr              string        // default :4000
	ReadHeaderTimeout time.Duration // default 10s
	ReadTimeout       time.Duration // default 30s
	WriteTimeout      time.Duration // default 60s
	ShutdownTimeout   time.Duration // default 15s
}

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	mux  *chi.Mux
	srv  *stdhttp.Server
	opts ServerOptions
}

// NewServer creates a server; opts receive the *chi.Mux before any route is mounted
func NewServer(o ServerOptions, opts ...func(*chi.Mux)) *Server {
	if o.Addr == "" {
		o.Addr = ":4000"
	}
	if o.ReadHeaderTimeout <= 0 {
		o.ReadHeaderTimeout = 10 * time.Second
	}
	if o.ReadTimeout <= 0 {
		o.ReadTimeout = 30 * time.Second
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = 60 * time.Second
	}
	if o.ShutdownTimeout <= 0 {
		o.ShutdownTimeout = 15 * time.Second
	}
	m := chi.NewRouter()
	for _, fn := range opts {
		fn(m)
	}
	return &Server{
		mux:  m,
		opts: o,
		srv: &stdhttp.Server{
			Addr:              o.Addr,
			Handler:           m,
			ReadHeaderTimeout: o.ReadHeaderTimeout,
			ReadTimeout:       o.ReadTimeout,
			WriteTimeout:      o.WriteTimeout,
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.opts.Addr }

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.opts.Addr).Msg("http listening")
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

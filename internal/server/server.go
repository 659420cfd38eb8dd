package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"classmerge/internal/core"
)

const shutdownTimeout = 30 * time.Second

// Server exposes a Merger over HTTP.
type Server struct {
	merger core.Merger
	logger zerolog.Logger
}

func New(merger core.Merger, logger zerolog.Logger) *Server {
	return &Server{merger: merger, logger: logger}
}

// Routes builds the router.
//
//	POST /merge    {"classes": ["p-2 p-4", "..."]} -> {"classes": "p-4 ..."}
//	POST /explain  {"classes": [...]}              -> merge report
//	GET  /health
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger(s.logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/merge", s.handleMerge)
	r.Post("/explain", s.handleExplain)
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("server error").
				WithCause(err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("shutdown error").
			WithCause(err)
	}
	log.Info().Msg("shutdown complete")
	return nil
}

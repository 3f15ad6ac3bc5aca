// Package server exposes a finished pipeline run over HTTP: the fitted
// curve, its resampled series, the per-day multiplier table and the reward
// boost calculator.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cwbudde/algo-lockboost/boost"
	"github.com/cwbudde/algo-lockboost/pipeline"
)

// ErrNoResult is returned by New when given a nil result.
var ErrNoResult = errors.New("server: nil pipeline result")

// Server serves one immutable pipeline result.
type Server struct {
	result *pipeline.Result
	table  *boost.Table
	logger *log.Logger

	chartOnce sync.Once
	chart     []byte
	chartErr  error
}

// New builds a server for res. The multiplier table is rounded the same
// way as the exported daily file.
func New(res *pipeline.Result, logger *log.Logger) (*Server, error) {
	if res == nil {
		return nil, ErrNoResult
	}

	table, err := boost.NewTable(res.Daily, res.Decimals)
	if err != nil {
		return nil, fmt.Errorf("server: multiplier table: %w", err)
	}

	if logger == nil {
		logger = log.Default()
	}

	return &Server{result: res, table: table, logger: logger}, nil
}

// Handler returns the router with all routes and middleware mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/curve", s.handleCurve)
	r.Get("/checkpoints", s.handleCheckpoints)
	r.Get("/multiplier/{days}", s.handleMultiplier)
	r.Get("/boost", s.handleBoost)
	r.Get("/chart.png", s.handleChart)

	r.Route("/series", func(r chi.Router) {
		r.Get("/daily", s.handleDaily)
		r.Get("/daily/summary", s.handleDailySummary)
		r.Get("/weekly", s.handleWeekly)
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("[INFO] listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	s.logger.Println("[INFO] server stopped")

	return nil
}

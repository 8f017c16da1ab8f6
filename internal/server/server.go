// Package server exposes the regime comparison as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/theirongolddev/taxdiff/internal/tax"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Config controls the server runtime behavior.
type Config struct {
	Addr string
}

// Status is served at /v1/status.
type Status struct {
	StartedAt   time.Time `json:"started_at"`
	Comparisons int64     `json:"comparisons"`
	OldWins     int64     `json:"old_wins"`
	NewWins     int64     `json:"new_wins"`
	Rejected    int64     `json:"rejected"`
}

// Service provides the HTTP API. Only aggregate counters are kept; request
// amounts are never stored.
type Service struct {
	cfg Config
	log *zap.Logger

	mu          sync.RWMutex
	startedAt   time.Time
	comparisons int64
	oldWins     int64
	newWins     int64
	rejected    int64
}

// New returns a new service with the provided config. A nil logger
// discards output.
func New(cfg Config, log *zap.Logger) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8788"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		cfg:       cfg,
		log:       log,
		startedAt: time.Now(),
	}
}

// Handler returns the gin engine serving every route.
func (s *Service) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), correlationID(s.log))

	r.GET("/healthz", s.handleHealth)

	v1 := r.Group("/v1")
	v1.GET("/status", s.handleStatus)
	v1.GET("/schedules", s.handleSchedules)
	v1.POST("/compare", s.handleCompare)

	return r
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.log.Info("listening", zap.String("addr", s.cfg.Addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

func (s *Service) record(c tax.Comparison) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comparisons++
	if c.Better == tax.RegimeNew {
		s.newWins++
	} else {
		s.oldWins++
	}
}

func (s *Service) reject() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejected++
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:   s.startedAt,
		Comparisons: s.comparisons,
		OldWins:     s.oldWins,
		NewWins:     s.newWins,
		Rejected:    s.rejected,
	}
}

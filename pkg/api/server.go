// Package api exposes the worker's own observability surface: run status,
// live log polling, and the abort control. The user-facing front end is a
// separate system; this server exists so operators and the front end can
// watch one worker without touching its database directly.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foremanhq/foreman/ent"
	"github.com/foremanhq/foreman/pkg/database"
	"github.com/foremanhq/foreman/pkg/gates"
)

// RunStore is the read surface the server needs; *store.RunService
// satisfies this.
type RunStore interface {
	GetRun(ctx context.Context, runID string) (*ent.PipelineRun, error)
}

// Server is the worker status HTTP server.
type Server struct {
	runs   RunStore
	db     *database.Client
	gate   *gates.Project
	logger *slog.Logger

	httpServer *http.Server
}

// NewServer creates the status server. db may be nil, in which case the
// health endpoint skips the database check.
func NewServer(runs RunStore, db *database.Client, gate *gates.Project) *Server {
	return &Server{
		runs:   runs,
		db:     db,
		gate:   gate,
		logger: slog.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.health)

	runs := r.Group("/api/runs")
	runs.GET("/:id", s.getRun)
	runs.GET("/:id/log", s.getRunLog)
	runs.POST("/:id/abort", s.abortRun)

	return r
}

// Start serves on addr until Shutdown. Blocks.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("status API listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

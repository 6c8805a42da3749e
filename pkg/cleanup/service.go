// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/foremanhq/foreman/pkg/config"
)

// RunPurger deletes terminal pipeline runs older than the retention window.
type RunPurger interface {
	PurgeTerminalRuns(ctx context.Context, retention time.Duration) (int, error)
}

// EventPurger deletes event log rows past their TTL.
type EventPurger interface {
	PurgeOldEvents(ctx context.Context, ttl time.Duration) (int, error)
}

// Service periodically enforces retention policies:
//   - Deletes terminal pipeline runs past the retention window
//   - Removes event log rows past their TTL
//
// All operations are idempotent and safe to run from multiple workers.
type Service struct {
	config *config.RetentionConfig
	runs   RunPurger
	events EventPurger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, runs RunPurger, events EventPurger) *Service {
	return &Service{
		config: cfg,
		runs:   runs,
		events: events,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"run_retention_days", s.config.RunRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeTerminalRuns(ctx)
	s.purgeOldEvents(ctx)
}

func (s *Service) purgeTerminalRuns(ctx context.Context) {
	count, err := s.runs.PurgeTerminalRuns(ctx, s.config.RunRetention())
	if err != nil {
		slog.Error("Retention: purge terminal runs failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged terminal runs", "count", count)
	}
}

func (s *Service) purgeOldEvents(ctx context.Context) {
	count, err := s.events.PurgeOldEvents(ctx, s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old events", "count", count)
	}
}

package refresh

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Worker periodically triggers portfolio refreshes.
type Worker struct {
	service  *Service
	interval time.Duration
}

// NewWorker creates a refresh worker.
func NewWorker(service *Service, interval time.Duration) *Worker {
	return &Worker{
		service:  service,
		interval: interval,
	}
}

// Run starts the refresh loop. It blocks until the context is cancelled.
// Ticks that land while a pass is still in flight are skipped rather than
// queued, so refreshes never overlap.
func (w *Worker) Run(ctx context.Context) {
	slog.Info("RefreshWorker: starting", "interval", w.interval)

	// Refresh immediately on startup
	if err := w.service.Refresh(ctx); err != nil {
		slog.Error("RefreshWorker: initial refresh failed", "error", err)
	} else {
		slog.Info("RefreshWorker: initial refresh completed")
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("RefreshWorker: shutting down")
			return
		case <-ticker.C:
			if err := w.service.Refresh(ctx); err != nil {
				if errors.Is(err, ErrRefreshInFlight) {
					slog.Warn("RefreshWorker: previous refresh still running, skipping tick")
					continue
				}
				slog.Error("RefreshWorker: refresh failed", "error", err)
			} else {
				slog.Info("RefreshWorker: refresh completed")
			}
		}
	}
}

package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/promptn8/promptn8-server/internal/database"
)

// Worker periodically removes expired sessions and OTP codes.
type Worker struct {
	users    *database.UserRepository
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewWorker creates a cleanup worker.
func NewWorker(users *database.UserRepository, interval time.Duration) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		users:    users,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start runs the cleanup loop until Stop is called. It cleans once
// immediately, then on every tick.
func (w *Worker) Start() {
	log.Info().Dur("interval", w.interval).Msg("cleanup worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.cleanup()

	for {
		select {
		case <-w.ctx.Done():
			log.Info().Msg("cleanup worker stopped")
			return
		case <-ticker.C:
			w.cleanup()
		}
	}
}

// Stop gracefully stops the worker.
func (w *Worker) Stop() {
	w.cancel()
}

func (w *Worker) cleanup() {
	removed, err := w.users.DeleteExpired(time.Now())
	if err != nil {
		log.Error().Err(err).Msg("cleanup of expired auth rows failed")
		return
	}
	if removed > 0 {
		log.Info().Int64("removed", removed).Msg("expired auth rows removed")
	}
}

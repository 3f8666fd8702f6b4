package sync

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Trigger запрашивает внеочередной проход. Неблокирующий.
func (s *Service) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Run запускает проходы при появлении сети, по таймеру и по Trigger,
// пока ctx не отменен.
func (s *Service) Run(ctx context.Context) {
	unsubscribe := s.monitor.Subscribe(func(online bool) {
		if online {
			s.Trigger()
		}
	})
	defer unsubscribe()

	var tick <-chan time.Time
	if s.cfg.Interval > 0 {
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	s.logger.InfoContext(ctx, "sync loop started", slog.Duration("interval", s.cfg.Interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "sync loop stopped")
			return
		case <-s.trigger:
			s.runOnce(ctx)
		case <-tick:
			s.runOnce(ctx)
		}
	}
}

func (s *Service) runOnce(ctx context.Context) {
	_, err := s.Sync(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrOffline), errors.Is(err, ErrSyncInProgress):
		s.logger.DebugContext(ctx, "sync skipped", slog.Any("reason", err))
	default:
		s.logger.ErrorContext(ctx, "background sync failed", slog.Any("error", err))
	}
}

package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler periodically removes expired admin sessions.
type Scheduler struct {
	purger   sessionPurger
	interval time.Duration
	logger   logger.Logger
}

func New(
	purger sessionPurger,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("session sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	n, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("failed to purge expired sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	if n > 0 {
		s.logger.Info("expired sessions purged",
			logger.Int64("count", n),
		)
	}
}

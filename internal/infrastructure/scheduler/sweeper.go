package scheduler

import (
	"context"
	"sync"
	"time"

	"reborn_api/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

type staleDocumentSweeper interface {
	SweepStaleDocuments(ctx context.Context, olderThan time.Time) (int, error)
}

// StaleDocumentSweeper periodically fails documents left in processing longer than maxAge.
type StaleDocumentSweeper struct {
	documents staleDocumentSweeper
	interval  time.Duration
	maxAge    time.Duration
	log       *zap.Logger
	now       func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

func NewStaleDocumentSweeper(documents staleDocumentSweeper, interval, maxAge time.Duration, log *zap.Logger) *StaleDocumentSweeper {
	if log == nil {
		log = zap.NewNop()
	}
	return &StaleDocumentSweeper{
		documents: documents,
		interval:  interval,
		maxAge:    maxAge,
		log:       log,
		now:       time.Now,
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
}

func (s *StaleDocumentSweeper) Start() {
	s.ticker = time.NewTicker(s.interval)
	go func() {
		defer close(s.stopped)
		for {
			select {
			case <-s.done:
				return
			case <-s.ticker.C:
				s.RunOnce(context.Background())
			}
		}
	}()
	s.log.Info("stale document sweeper started", zap.Duration("interval", s.interval), zap.Duration("max_age", s.maxAge))
}

// Stop waits for an in-flight sweep to finish. Safe to call more than once.
func (s *StaleDocumentSweeper) Stop() {
	s.stopOnce.Do(func() {
		if s.ticker == nil {
			return
		}
		s.ticker.Stop()
		close(s.done)
		<-s.stopped
		s.log.Info("stale document sweeper stopped")
	})
}

func (s *StaleDocumentSweeper) RunOnce(ctx context.Context) int {
	cutoff := s.now().Add(-s.maxAge)
	n, err := s.documents.SweepStaleDocuments(ctx, cutoff)
	if n > 0 {
		metrics.StaleDocumentsFailedTotal.Add(float64(n))
		s.log.Warn("stale documents marked as failed", zap.Int("count", n), zap.Time("cutoff", cutoff))
	}
	if err != nil {
		s.log.Error("stale document sweep failed", zap.Error(err))
	}
	return n
}

package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const defaultSweepInterval = time.Minute

// Purger drops expired entries from a token revocation list.
type Purger interface {
	Purge(ctx context.Context) error
}

// RevocationSweeper periodically purges expired revocations so the
// in-memory blacklist does not grow with every logout.
type RevocationSweeper struct {
	store    Purger
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewRevocationSweeper constructs sweeper. Non-positive interval falls back to one minute.
func NewRevocationSweeper(store Purger, interval time.Duration, logger *slog.Logger) *RevocationSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &RevocationSweeper{store: store, interval: interval, logger: logger}
}

// Start launches background sweeping. Calling Start on a running sweeper is a no-op.
func (s *RevocationSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	// fx cancels the start context once OnStart returns.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(runCtx)
}

// Stop cancels sweeping and waits for the loop to exit.
func (s *RevocationSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *RevocationSweeper) loop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *RevocationSweeper) sweep(ctx context.Context) {
	if err := s.store.Purge(ctx); err != nil && ctx.Err() == nil {
		s.logger.Error("purge revoked tokens failed", slog.String("error", err.Error()))
	}
}

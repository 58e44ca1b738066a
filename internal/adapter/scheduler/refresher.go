// Package scheduler runs the periodic dashboard refresh. The task is owned
// by whoever calls Start and ends with Stop; nothing keeps ticking after.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// TickFunc performs one refresh.
type TickFunc func(ctx context.Context) error

// Refresher calls a TickFunc every interval on a single goroutine. Ticks
// never overlap. A failed tick is logged and the next one proceeds as
// scheduled.
type Refresher struct {
	interval time.Duration
	tick     TickFunc
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRefresher returns a stopped Refresher.
func NewRefresher(interval time.Duration, tick TickFunc, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{interval: interval, tick: tick, logger: logger}
}

// Start launches the refresh loop. It returns immediately. The loop ends
// when ctx is cancelled or Stop is called. Starting a running Refresher,
// or one with a non-positive interval, does nothing.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil || r.interval <= 0 {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go r.loop(ctx, r.done)
	r.logger.Info("refresher started", slog.Duration("interval", r.interval))
}

// Stop cancels the loop and waits for an in-flight tick to return. It is
// safe to call more than once and on a Refresher that never started.
func (r *Refresher) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	r.logger.Info("refresher stopped")
}

func (r *Refresher) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			start := time.Now()
			if err := r.tick(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				r.logger.Error("refresh failed", slog.Any("error", err))
				continue
			}
			r.logger.Debug("dashboard refreshed", slog.Duration("took", time.Since(start)))
		}
	}
}

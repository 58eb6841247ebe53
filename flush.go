package tether

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// flusherConfig holds construction options for a Flusher.
type flusherConfig struct {
	clock clockz.Clock
}

// FlusherOption configures a Flusher.
type FlusherOption func(*flusherConfig)

// WithFlushClock sets a custom clock for the flush interval.
// Use this with clockz.FakeClock for deterministic testing.
func WithFlushClock(clock clockz.Clock) FlusherOption {
	return func(c *flusherConfig) {
		c.clock = clock
	}
}

// Flusher periodically flushes a store so buffered writes reach the backing
// medium even when the application never flushes explicitly.
type Flusher struct {
	store    Store
	interval time.Duration
	clock    clockz.Clock

	mu      sync.Mutex
	started bool
}

// NewFlusher creates a Flusher that flushes store every interval once
// started.
func NewFlusher(store Store, interval time.Duration, opts ...FlusherOption) *Flusher {
	cfg := &flusherConfig{clock: clockz.RealClock}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Flusher{
		store:    store,
		interval: interval,
		clock:    cfg.clock,
	}
}

// Start begins the flush loop. It runs until ctx is canceled and can only be
// called once.
func (f *Flusher) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.started {
		f.mu.Unlock()
		return fmt.Errorf("flusher already started")
	}
	f.started = true
	f.mu.Unlock()

	capitan.Emit(ctx, FlusherStarted,
		KeyInterval.Field(f.interval),
	)

	// Arm the timer before returning so the first interval is measured from
	// Start, not from whenever the goroutine gets scheduled.
	timer := f.clock.NewTimer(f.interval)
	go f.loop(ctx, timer)

	return nil
}

func (f *Flusher) loop(ctx context.Context, timer clockz.Timer) {
	defer timer.Stop()
	defer capitan.Emit(ctx, FlusherStopped)

	for {
		select {
		case <-ctx.Done():
			return

		case <-timer.C():
			if err := f.store.Flush(); err != nil {
				capitan.Emit(ctx, FlusherFlushFailed,
					KeyError.Field(err.Error()),
				)
			}
			timer.Reset(f.interval)
		}
	}
}

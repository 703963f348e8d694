// Package ticker drives periodic redraws. Each firing reschedules the next
// one only after the target has been updated, so execution latency adds up
// instead of being absorbed by a fixed-rate timer.
package ticker

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
)

// DefaultInterval is the refresh period of the clock.
const DefaultInterval = time.Second

// Target receives a fresh time sample on every firing.
type Target interface {
	Tick(now time.Time)
}

// TargetFunc adapts a function to Target.
type TargetFunc func(now time.Time)

func (f TargetFunc) Tick(now time.Time) { f(now) }

// Ticker is a self-rescheduling one-shot timer chain.
type Ticker struct {
	interval time.Duration
	clock    clockwork.Clock
	logger   *log.Logger
}

// Option configures a Ticker.
type Option func(*Ticker)

// WithClock sets the time source. Nil keeps the real clock.
func WithClock(c clockwork.Clock) Option {
	return func(t *Ticker) {
		if c != nil {
			t.clock = c
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(t *Ticker) { t.logger = l }
}

// New returns a ticker firing every interval. A non-positive interval
// means DefaultInterval.
func New(interval time.Duration, opts ...Option) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := &Ticker{
		interval: interval,
		clock:    clockwork.NewRealClock(),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run blocks until ctx is done. Cancelling ctx is how the owner tears the
// chain down: once it is cancelled target is never called again, even if a
// firing was already pending.
func (t *Ticker) Run(ctx context.Context, target Target) {
	t.logger.Debug("ticker started", "interval", t.interval)
	defer t.logger.Debug("ticker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.clock.After(t.interval):
		}
		if ctx.Err() != nil {
			return
		}
		target.Tick(t.clock.Now())
	}
}

// Start runs the ticker on its own goroutine and returns a function that
// cancels it and waits for it to exit.
func (t *Ticker) Start(ctx context.Context, target Target) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		t.Run(ctx, target)
	}()
	return func() {
		cancel()
		<-done
	}
}

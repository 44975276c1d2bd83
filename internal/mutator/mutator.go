// Package mutator flips random sparkles at random intervals.
package mutator

import (
	"context"
	"time"

	"sparkles/internal/core"
)

// Toggler flips a single cell. *core.Grid satisfies it.
type Toggler interface {
	Toggle(x, y int)
}

// Config controls the target area and the pause between toggles.
type Config struct {
	Width  int
	Height int

	// Delays are drawn uniformly from [MinDelay, MaxDelay).
	MinDelay time.Duration
	MaxDelay time.Duration

	// Seed 0 picks a time-derived seed.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    core.GridSize,
		Height:   core.GridSize,
		MinDelay: 50 * time.Millisecond,
		MaxDelay: time.Second,
	}
}

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Option customizes a Mutator.
type Option func(*Mutator)

// WithSleep replaces the sleeper used between toggles.
func WithSleep(sleep SleepFunc) Option {
	return func(m *Mutator) { m.sleep = sleep }
}

// Mutator toggles one random cell at a time. It must be driven from a single
// goroutine.
type Mutator struct {
	target Toggler
	cfg    Config
	rng    *core.RNG
	sleep  SleepFunc
}

// New constructs a Mutator that toggles cells on target.
func New(target Toggler, cfg Config, opts ...Option) *Mutator {
	m := &Mutator{
		target: target,
		cfg:    cfg,
		rng:    core.NewRNG(cfg.Seed),
		sleep:  sleepContext,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Next draws the next coordinates and the delay that follows the toggle.
func (m *Mutator) Next() (x, y int, delay time.Duration) {
	x = m.rng.IntN(m.cfg.Width)
	y = m.rng.IntN(m.cfg.Height)
	delay = m.rng.Millis(m.cfg.MinDelay, m.cfg.MaxDelay)
	return x, y, delay
}

// Step toggles one random cell and returns how long to wait before the next.
func (m *Mutator) Step() time.Duration {
	x, y, delay := m.Next()
	m.target.Toggle(x, y)
	return delay
}

// Run toggles cells until ctx is done and returns ctx.Err().
func (m *Mutator) Run(ctx context.Context) error {
	return m.RunN(ctx, -1)
}

// RunN performs exactly n toggles, pausing after each one but the last. A
// negative n runs until ctx is done.
func (m *Mutator) RunN(ctx context.Context, n int) error {
	for i := 0; n < 0 || i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		delay := m.Step()
		if i == n-1 {
			break
		}
		if err := m.sleep(ctx, delay); err != nil {
			return err
		}
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package app

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"sparkles/internal/mutator"
)

// Display names accepted by --display.
const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Display    string
	Scale      int
	Seed       int64
	FrameDelay time.Duration
	MinDelay   time.Duration
	MaxDelay   time.Duration
}

// NewConfig returns a Config populated with the standard constants.
func NewConfig() *Config {
	m := mutator.DefaultConfig()
	return &Config{
		Display:    DisplayWindow,
		Scale:      32,
		FrameDelay: 50 * time.Millisecond,
		MinDelay:   m.MinDelay,
		MaxDelay:   m.MaxDelay,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Display, "display", c.Display, "where to draw: window or terminal")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.DurationVar(&c.FrameDelay, "frame-delay", c.FrameDelay, "pause between frames")
	fs.DurationVar(&c.MinDelay, "min-delay", c.MinDelay, "shortest pause between toggles")
	fs.DurationVar(&c.MaxDelay, "max-delay", c.MaxDelay, "longest pause between toggles (exclusive)")
}

// Validate rejects values the driver cannot run with.
func (c *Config) Validate() error {
	switch c.Display {
	case DisplayWindow, DisplayTerminal:
	default:
		return fmt.Errorf("unknown display %q (want %s or %s)", c.Display, DisplayWindow, DisplayTerminal)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.FrameDelay <= 0 {
		return fmt.Errorf("frame delay must be positive, got %v", c.FrameDelay)
	}
	if c.MinDelay < 0 || c.MaxDelay-c.MinDelay < time.Millisecond {
		return fmt.Errorf("toggle delay range [%v, %v) must be non-negative and at least 1ms wide", c.MinDelay, c.MaxDelay)
	}
	return nil
}

// Mutator returns the mutator settings derived from c.
func (c *Config) Mutator() mutator.Config {
	m := mutator.DefaultConfig()
	m.MinDelay = c.MinDelay
	m.MaxDelay = c.MaxDelay
	m.Seed = c.Seed
	return m
}

// TPS returns the tick rate matching FrameDelay.
func (c *Config) TPS() int {
	tps := int(time.Second / c.FrameDelay)
	if tps < 1 {
		tps = 1
	}
	return tps
}

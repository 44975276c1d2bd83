package app

import (
	"context"
	"fmt"
	"time"

	"sparkles/internal/core"
	"sparkles/internal/display"
	"sparkles/internal/render"
)

// Driver reads the grid once per frame and hands the pixels to a sink.
type Driver struct {
	grid       *core.Grid
	frame      *render.Frame
	colors     *render.Colorizer
	frameDelay time.Duration
}

// NewDriver constructs a Driver for grid.
func NewDriver(grid *core.Grid, cfg *Config) *Driver {
	size := grid.Size()
	seed := cfg.Seed
	if seed != 0 {
		// Keep the color stream apart from the mutator's.
		seed ^= 0x5bd1e995
	}
	return &Driver{
		grid:       grid,
		frame:      render.NewFrame(size.W, size.H),
		colors:     render.NewColorizer(render.DefaultPalette(), seed),
		frameDelay: cfg.FrameDelay,
	}
}

// Size returns the frame dimensions.
func (d *Driver) Size() core.Size { return d.frame.Size }

// Frame paints the grid, pushes it to sink and reports whether the user asked
// to quit.
func (d *Driver) Frame(sink display.Sink) (quit bool, err error) {
	render.Paint(d.frame, d.grid, d.colors)
	if err := sink.Push(d.frame.Pix, d.frame.Size.W, d.frame.Size.H); err != nil {
		return false, fmt.Errorf("present frame: %w", err)
	}
	return sink.QuitRequested(), nil
}

// Run drives sink until the user quits (nil), a frame fails, or ctx is done.
func (d *Driver) Run(ctx context.Context, sink display.Sink) error {
	t := time.NewTicker(d.frameDelay)
	defer t.Stop()
	for {
		quit, err := d.Frame(sink)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

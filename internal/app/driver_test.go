package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkles/internal/core"
	"sparkles/internal/display"
	"sparkles/internal/render"
)

// fakeSink records frames and asks to quit after quitAfter pushes.
type fakeSink struct {
	frames    [][]uint32
	quitAfter int
	err       error
}

func (s *fakeSink) Push(pixels []uint32, width, height int) error {
	if s.err != nil {
		return s.err
	}
	if len(pixels) != width*height {
		return display.ErrBadFrame
	}
	s.frames = append(s.frames, append([]uint32(nil), pixels...))
	return nil
}

func (s *fakeSink) QuitRequested() bool {
	return s.quitAfter > 0 && len(s.frames) >= s.quitAfter
}

func testConfig() *Config {
	cfg := NewConfig()
	cfg.Seed = 11
	cfg.FrameDelay = time.Millisecond
	return cfg
}

func TestDriverFrameRendersGrid(t *testing.T) {
	grid := core.NewGrid()
	grid.Toggle(2, 3)
	d := NewDriver(grid, testConfig())
	sink := &fakeSink{}

	quit, err := d.Frame(sink)
	require.NoError(t, err)
	assert.False(t, quit)
	require.Len(t, sink.frames, 1)

	frame := sink.frames[0]
	require.Len(t, frame, core.GridSize*core.GridSize)
	for i, c := range frame {
		if i == 3*core.GridSize+2 {
			assert.Contains(t, []uint32{render.Blue, render.Green, render.Red}, c)
			continue
		}
		if c != render.Black {
			t.Fatalf("pixel %d = %06x, expected black", i, c)
		}
	}
}

func TestDriverRunStopsOnQuit(t *testing.T) {
	d := NewDriver(core.NewGrid(), testConfig())
	sink := &fakeSink{quitAfter: 3}

	require.NoError(t, d.Run(context.Background(), sink))
	assert.Len(t, sink.frames, 3)
}

func TestDriverRunReturnsPushError(t *testing.T) {
	d := NewDriver(core.NewGrid(), testConfig())
	sink := &fakeSink{err: display.ErrClosed}

	err := d.Run(context.Background(), sink)
	assert.ErrorIs(t, err, display.ErrClosed)
}

func TestDriverRunHonoursCancel(t *testing.T) {
	cfg := testConfig()
	cfg.FrameDelay = time.Hour
	d := NewDriver(core.NewGrid(), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- d.Run(ctx, &fakeSink{}) }()
	cancel()

	select {
	case err := <-errc:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestDriverSeesConcurrentToggles(t *testing.T) {
	grid := core.NewGrid()
	d := NewDriver(grid, testConfig())
	sink := &fakeSink{}

	_, err := d.Frame(sink)
	require.NoError(t, err)
	grid.Toggle(0, 0)
	_, err = d.Frame(sink)
	require.NoError(t, err)

	assert.Equal(t, render.Black, sink.frames[0][0])
	assert.NotEqual(t, render.Black, sink.frames[1][0])
}

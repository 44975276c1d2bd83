//go:build ebiten

package app

import (
	"errors"
	"fmt"

	"sparkles/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts the driver to the ebiten.Game interface. It is also the sink the
// driver pushes into.
type Game struct {
	driver  *Driver
	painter *render.GridPainter
	scale   int
}

// New constructs a Game for the provided driver.
func New(driver *Driver, scale int) *Game {
	size := driver.Size()
	return &Game{
		driver:  driver,
		painter: render.NewGridPainter(size.W, size.H),
		scale:   scale,
	}
}

// Push uploads the frame to the painter image.
func (g *Game) Push(pixels []uint32, width, height int) error {
	w, h := g.painter.Size()
	if width != w || height != h {
		return fmt.Errorf("frame %dx%d does not fit %dx%d window", width, height, w, h)
	}
	g.painter.Upload(pixels)
	return nil
}

// QuitRequested reports Escape held down or the window being closed.
func (g *Game) QuitRequested() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed()
}

// Update renders one frame and stops the game on quit.
func (g *Game) Update() error {
	quit, err := g.driver.Frame(g)
	if err != nil {
		return err
	}
	if quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the most recent frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.driver.Size()
	return s.W * g.scale, s.H * g.scale
}

// RunWindow opens the sparkle window and blocks until it is closed. It must be
// called from the main goroutine.
func RunWindow(driver *Driver, cfg *Config) error {
	size := driver.Size()
	ebiten.SetWindowTitle("Sparkles")
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS())

	if err := ebiten.RunGame(New(driver, cfg.Scale)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

package display

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// Terminal renders frames into a tcell screen, two columns per pixel so cells
// look roughly square.
type Terminal struct {
	screen tcell.Screen

	quit   atomic.Bool
	closed atomic.Bool
	once   sync.Once
}

// NewTerminal initializes screen and starts listening for quit keys. Escape,
// q and Ctrl-C request a quit.
func NewTerminal(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{screen: screen}
	go t.pollEvents()
	return t, nil
}

// pollEvents runs until the screen is finalized.
func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			if isQuitKey(ev) {
				t.quit.Store(true)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Push draws pixels and shows the screen.
func (t *Terminal) Push(pixels []uint32, width, height int) error {
	if t.closed.Load() {
		return ErrClosed
	}
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrBadFrame, len(pixels), width, height)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := tcell.StyleDefault.Background(tcell.NewHexColor(int32(pixels[y*width+x])))
			t.screen.SetContent(2*x, y, ' ', nil, style)
			t.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// QuitRequested reports whether a quit key has been pressed.
func (t *Terminal) QuitRequested() bool { return t.quit.Load() }

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	t.once.Do(func() {
		t.closed.Store(true)
		t.screen.Fini()
	})
}

package core

import (
	"iter"
	"sync"
)

// GridSize is the fixed edge length of the sparkle grid.
const GridSize = 8

// light is a single sparkle guarded by its own lock.
type light struct {
	mu sync.Mutex
	on bool
}

// Grid stores an 8x8 matrix of independently locked lights. Cells are never
// locked together: readers see each cell consistently but the grid as a whole
// may change mid-traversal.
//
// A Grid must not be copied after first use.
type Grid struct {
	lights [GridSize][GridSize]light // [y][x]
}

// NewGrid returns a grid with every light Dim.
func NewGrid() *Grid { return &Grid{} }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: GridSize, H: GridSize} }

// Toggle flips the light at (x, y). Coordinates outside [0, GridSize) panic.
func (g *Grid) Toggle(x, y int) {
	l := &g.lights[y][x]
	l.mu.Lock()
	l.on = !l.on
	l.mu.Unlock()
}

// At returns the current state of the light at (x, y).
func (g *Grid) At(x, y int) Sparkle {
	l := &g.lights[y][x]
	l.mu.Lock()
	on := l.on
	l.mu.Unlock()
	return sparkleOf(on)
}

// Display calls visit once per cell in row-major order. Each cell is read
// under its own lock; visit runs with no lock held.
func (g *Grid) Display(visit func(x, y int, s Sparkle)) {
	for p, s := range g.All() {
		visit(p.X, p.Y, s)
	}
}

// All yields every cell in row-major order, the same traversal as Display.
func (g *Grid) All() iter.Seq2[Point, Sparkle] {
	return func(yield func(Point, Sparkle) bool) {
		for y := 0; y < GridSize; y++ {
			for x := 0; x < GridSize; x++ {
				if !yield(Point{X: x, Y: y}, g.At(x, y)) {
					return
				}
			}
		}
	}
}

// Index returns the linear buffer index for coordinates (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }

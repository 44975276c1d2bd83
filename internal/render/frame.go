package render

import "sparkles/internal/core"

// Frame is a flat row-major buffer of packed 0xRRGGBB pixels.
type Frame struct {
	Size core.Size
	Pix  []uint32
}

// NewFrame allocates a black frame of w*h pixels.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{Size: core.Size{W: w, H: h}, Pix: make([]uint32, w*h)}
}

// Set stores color c at (x, y).
func (f *Frame) Set(x, y int, c uint32) { f.Pix[f.Size.Index(x, y)] = c }

// At returns the color at (x, y).
func (f *Frame) At(x, y int) uint32 { return f.Pix[f.Size.Index(x, y)] }

// Paint writes every cell of g into f using c.
func Paint(f *Frame, g *core.Grid, c *Colorizer) {
	g.Display(func(x, y int, s core.Sparkle) {
		f.Set(x, y, c.Color(s))
	})
}

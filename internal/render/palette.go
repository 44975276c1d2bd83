// Package render turns grid state into pixel buffers.
package render

import "sparkles/internal/core"

// Packed 0xRRGGBB colors.
const (
	Black uint32 = 0x000000
	Blue  uint32 = 0x0000ff
	Green uint32 = 0x00ff00
	Red   uint32 = 0xff0000
)

// Palette maps sparkle states to packed RGB colors.
type Palette struct {
	Off    uint32
	Bright []uint32
}

// DefaultPalette returns black for dim cells and the saturated primaries for
// bright ones.
func DefaultPalette() Palette {
	return Palette{Off: Black, Bright: []uint32{Blue, Green, Red}}
}

// Colorizer picks colors from a palette. Bright cells get a fresh random pick
// on every call so the update rate is visible on screen. Not safe for
// concurrent use.
type Colorizer struct {
	palette Palette
	rng     *core.RNG
}

// NewColorizer returns a Colorizer seeded with seed (0 picks a time seed).
func NewColorizer(p Palette, seed int64) *Colorizer {
	return &Colorizer{palette: p, rng: core.NewRNG(seed)}
}

// Color returns the packed RGB color for s.
func (c *Colorizer) Color(s core.Sparkle) uint32 {
	if s != core.Bright || len(c.palette.Bright) == 0 {
		return c.palette.Off
	}
	return c.palette.Bright[c.rng.IntN(len(c.palette.Bright))]
}

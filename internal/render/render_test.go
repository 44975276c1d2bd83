package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparkles/internal/core"
)

func TestColorizerDimIsOff(t *testing.T) {
	c := NewColorizer(DefaultPalette(), 1)
	for i := 0; i < 100; i++ {
		require.Equal(t, Black, c.Color(core.Dim))
	}
}

func TestColorizerBrightUsesEveryPrimary(t *testing.T) {
	c := NewColorizer(DefaultPalette(), 5)
	seen := map[uint32]int{}
	for i := 0; i < 3000; i++ {
		seen[c.Color(core.Bright)]++
	}
	assert.Len(t, seen, 3)
	for _, want := range []uint32{Blue, Green, Red} {
		assert.Positivef(t, seen[want], "color %06x never picked", want)
	}
}

func TestColorizerEmptyBrightFallsBackToOff(t *testing.T) {
	c := NewColorizer(Palette{Off: 0x123456}, 1)
	assert.Equal(t, uint32(0x123456), c.Color(core.Bright))
}

func TestPaintWritesEveryCell(t *testing.T) {
	g := core.NewGrid()
	g.Toggle(1, 0)
	g.Toggle(6, 7)

	f := NewFrame(core.GridSize, core.GridSize)
	for i := range f.Pix {
		f.Pix[i] = 0xdeadbe
	}
	Paint(f, g, NewColorizer(DefaultPalette(), 9))

	for y := 0; y < core.GridSize; y++ {
		for x := 0; x < core.GridSize; x++ {
			got := f.At(x, y)
			if (x == 1 && y == 0) || (x == 6 && y == 7) {
				assert.Containsf(t, []uint32{Blue, Green, Red}, got, "cell (%d,%d)", x, y)
				continue
			}
			if got != Black {
				t.Fatalf("cell (%d,%d) = %06x, expected black", x, y, got)
			}
		}
	}
	assert.NotEqual(t, Black, f.Pix[1], "(1,0) is the second pixel in row-major order")
}

func TestFillRGBA(t *testing.T) {
	buf := make([]byte, 8)
	FillRGBA(buf, []uint32{0x112233, Red})
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0xff, 0xff, 0x00, 0x00, 0xff}, buf)
}

func TestNewFrameClampsSize(t *testing.T) {
	f := NewFrame(0, -2)
	assert.Equal(t, core.Size{W: 1, H: 1}, f.Size)
	assert.Len(t, f.Pix, 1)
}

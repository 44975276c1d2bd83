//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a small RGBA image in sync with a frame and draws it
// scaled up.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Upload copies packed RGB pixels into the painter image. Mismatched sizes
// are ignored.
func (gp *GridPainter) Upload(pix []uint32) {
	if len(pix) != gp.w*gp.h {
		return
	}
	FillRGBA(gp.buf, pix)
	gp.img.WritePixels(gp.buf)
}

// Blit draws the last uploaded image onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

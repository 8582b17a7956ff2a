//go:build ebiten

package render

import (
	"turmite/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one texture in sync with a sim's grid.
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

// Blit refreshes the texture from the sim and draws it scaled by zoom.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, zoom float64) {
	size := sim.Size()
	if size.W != gp.w || size.H != gp.h {
		return
	}
	sim.Render(gp.buf)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(gp.img, op)
}

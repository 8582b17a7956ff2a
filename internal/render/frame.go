package render

import (
	"image"

	"turmite/internal/core"

	"golang.org/x/image/draw"
)

// Frame renders the sim's current grid into dst, reallocating it when the
// size does not match. One pixel per cell.
func Frame(sim core.Sim, dst *image.RGBA) *image.RGBA {
	size := sim.Size()
	if dst == nil || dst.Bounds().Dx() != size.W || dst.Bounds().Dy() != size.H {
		dst = image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	}
	sim.Render(dst.Pix)
	return dst
}

// Scale enlarges src by an integer zoom factor with nearest-neighbour
// sampling so every cell stays a crisp block. Zoom values below 2 return src.
func Scale(src *image.RGBA, zoom int, dst *image.RGBA) *image.RGBA {
	if zoom < 2 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx()*zoom, b.Dy()*zoom
	if dst == nil || dst.Bounds().Dx() != w || dst.Bounds().Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

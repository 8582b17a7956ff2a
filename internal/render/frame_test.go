package render

import (
	"image/color"
	"testing"

	"turmite/internal/core"
)

type checkerSim struct{ w, h int }

func (s checkerSim) Name() string    { return "checker" }
func (s checkerSim) Size() core.Size { return core.Size{W: s.w, H: s.h} }
func (s checkerSim) Reset(int64)     {}
func (s checkerSim) Step()           {}
func (s checkerSim) Advance()        {}
func (s checkerSim) Speed() int      { return 1 }
func (s checkerSim) Ticks() uint64   { return 0 }
func (s checkerSim) Render(buf []byte) {
	cells := make([]uint8, s.w*s.h)
	for i := range cells {
		cells[i] = uint8((i%s.w + i/s.w) % 2)
	}
	FillPalette(buf, cells, []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}})
}

func TestFrameAndScale(t *testing.T) {
	sim := checkerSim{w: 3, h: 2}
	img := Frame(sim, nil)
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("frame size %v, expected 3x2", img.Bounds())
	}
	if got := img.RGBAAt(1, 0); got.R != 255 {
		t.Fatalf("pixel (1,0) = %v, expected white", got)
	}

	again := Frame(sim, img)
	if again != img {
		t.Fatal("Frame should reuse a correctly sized destination")
	}

	big := Scale(img, 4, nil)
	if big.Bounds().Dx() != 12 || big.Bounds().Dy() != 8 {
		t.Fatalf("scaled size %v, expected 12x8", big.Bounds())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			if big.RGBAAt(x, y) != img.RGBAAt(x/4, y/4) {
				t.Fatalf("scaled pixel (%d,%d) does not match source cell", x, y)
			}
		}
	}

	if Scale(img, 1, nil) != img {
		t.Fatal("zoom 1 should return the source image")
	}
}

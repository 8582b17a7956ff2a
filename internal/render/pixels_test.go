package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteClampsIndex(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 9, G: 8, B: 7, A: 6}}
	buf := make([]byte, 12)
	FillPalette(buf, []uint8{0, 1, 200}, palette)
	want := []byte{1, 2, 3, 4, 9, 8, 7, 6, 9, 8, 7, 6}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, expected %v", buf, want)
	}
}

func TestFillPaletteEmptyClears(t *testing.T) {
	buf := []byte{5, 5, 5, 5}
	FillPalette(buf, []uint8{3}, nil)
	if !slices.Equal(buf, []byte{0, 0, 0, 0}) {
		t.Fatalf("expected cleared pixel, got %v", buf)
	}
}

func TestFillColors(t *testing.T) {
	buf := make([]byte, 8)
	FillColors(buf, []color.RGBA{{R: 10, G: 20, B: 30, A: 255}, {A: 1}})
	want := []byte{10, 20, 30, 255, 0, 0, 0, 1}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, expected %v", buf, want)
	}
}

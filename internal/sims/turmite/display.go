package turmite

import "image/color"

// palette maps each of the sixteen cell states to a display color. State 0
// is white.
var palette = [16]color.RGBA{
	{R: 255, G: 255, B: 255, A: 255},
	{R: 255, G: 61, B: 61, A: 255},
	{R: 255, G: 193, B: 61, A: 255},
	{R: 225, G: 255, B: 61, A: 255},
	{R: 148, G: 255, B: 61, A: 255},
	{R: 61, G: 255, B: 103, A: 255},
	{R: 61, G: 255, B: 225, A: 255},
	{R: 61, G: 190, B: 255, A: 255},
	{R: 61, G: 86, B: 255, A: 255},
	{R: 141, G: 61, B: 255, A: 255},
	{R: 229, G: 61, B: 255, A: 255},
	{R: 255, G: 61, B: 151, A: 255},
	{R: 26, G: 117, B: 78, A: 255},
	{R: 79, G: 91, B: 78, A: 255},
	{R: 99, G: 74, B: 58, A: 255},
	{R: 0, G: 0, B: 0, A: 255},
}

// Palette returns a copy of the display palette, indexed by cell state.
func (s *Sim) Palette() []color.RGBA {
	out := make([]color.RGBA, len(palette))
	copy(out, palette[:])
	return out
}

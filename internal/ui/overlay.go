//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"turmite/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay marks every agent and its heading on top of the grid. Toggle with
// the 1 key.
type Overlay struct {
	agents core.AgentsProvider
	show   bool
	pixel  *ebiten.Image
}

// headingVectors matches the ant package: north, east, south, west with y
// growing downwards.
var headingVectors = [4][2]float64{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var markerColor = color.RGBA{R: 230, G: 30, B: 60, A: 220}

// NewOverlay constructs a new overlay instance. Sims that do not report
// agents get an overlay that never draws.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{}
	o.agents, _ = sim.(core.AgentsProvider)
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the markers for a grid drawn at the given zoom.
func (o *Overlay) Draw(screen *ebiten.Image, zoom float64) {
	if !o.show || o.agents == nil {
		return
	}
	if zoom < 1 {
		zoom = 1
	}
	size := math.Max(zoom*0.8, 3)
	for _, a := range o.agents.AgentViews() {
		cx := (float64(a.X) + 0.5) * zoom
		cy := (float64(a.Y) + 0.5) * zoom
		o.drawPoint(screen, cx, cy, size, markerColor)
		v := headingVectors[a.Heading&3]
		reach := math.Max(zoom*1.5, 6)
		o.drawLine(screen, cx, cy, cx+v[0]*reach, cy+v[1]*reach, math.Max(zoom*0.25, 1), markerColor)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

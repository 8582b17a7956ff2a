//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"turmite/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 8
	headerBaseline = 12
	rowHeight      = 18
	labelBaseline  = 12
	buttonSize     = 13
	buttonGap      = 4
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 230}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonFill = color.RGBA{R: 60, G: 60, B: 72, A: 255}
)

type hudControlState struct {
	control   core.ParameterControl
	value     int
	hasValue  bool
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// HUD renders a status and parameter panel along the right edge of the
// window. Toggle with the H key.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	controls   []hudControlState
	setter     core.IntParameterSetter
	title      string
	zoom       float64
	offsetX    int
	hidden     bool
	pixel      *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for i, ctrl := range provider.ParameterControls() {
			top := panelPadding + headerBaseline + 8 + i*rowHeight
			right := width - panelPadding
			plus := image.Rect(right-buttonSize, top, right, top+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, hudControlState{control: ctrl, top: top, minusRect: minus, plusRect: plus})
		}
	}
	h.setter, _ = sim.(core.IntParameterSetter)
	return h
}

// Update refreshes the cached parameter values and handles clicks.
func (h *HUD) Update(zoom float64) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.hidden = !h.hidden
	}
	h.zoom = zoom
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		if p, ok := h.snapshot.Lookup(state.control.Key); ok {
			if v, err := strconv.Atoi(p.Value); err == nil {
				state.value = v
				state.hasValue = true
			}
		}
	}
	if !h.hidden {
		h.handleInput()
	}
}

func (h *HUD) handleInput() {
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		switch {
		case pt.In(state.minusRect):
			h.adjust(state, -1)
			return
		case pt.In(state.plusRect):
			h.adjust(state, 1)
			return
		}
	}
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.value + direction*step)
	if target == state.value {
		return
	}
	if h.setter.SetIntParameter(state.control.Key, target) {
		state.value = target
	}
}

// Draw paints the panel anchored to the right edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.hidden || h.width <= 0 {
		return
	}
	bounds := screen.Bounds()
	height := bounds.Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.offsetX = bounds.Dx() - h.width
	h.panel.Fill(panelColor)
	h.drawContents()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawContents() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)

	y := panelPadding + headerBaseline + 8
	for _, state := range h.controls {
		value := "--"
		col := dimColor
		if state.hasValue {
			value = strconv.Itoa(state.value)
			col = textColor
		}
		text.Draw(h.panel, fmt.Sprintf("%s %s", state.control.Label, value), face, panelPadding, state.top+labelBaseline-2, col)
		h.drawButton(state.minusRect, "-")
		h.drawButton(state.plusRect, "+")
		y = state.top + rowHeight
	}

	y += 6
	lines := []string{
		fmt.Sprintf("tick %d", h.sim.Ticks()),
		fmt.Sprintf("zoom %.0fx", h.zoom),
	}
	for _, p := range h.snapshot.Params {
		if h.isControl(p.Key) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", p.Label, p.Value))
	}
	for _, line := range lines {
		y += rowHeight
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
	}
}

func (h *HUD) drawButton(r image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorM.ScaleWithColor(buttonFill)
	h.panel.DrawImage(h.pixel, op)
	text.Draw(h.panel, label, basicfont.Face7x13, r.Min.X+3, r.Max.Y-2, textColor)
}

func (h *HUD) isControl(key string) bool {
	for _, state := range h.controls {
		if state.control.Key == key {
			return true
		}
	}
	return false
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

//go:build ebiten

package app

import (
	"image/color"
	"time"

	"turmite/internal/core"
	"turmite/internal/render"
	"turmite/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	zoom     float64
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. tps is the rate at which
// the sim is advanced, independent of the frame rate.
func New(sim core.Sim, zoom int, tps int, seed int64) *Game {
	size := sim.Size()
	if zoom < 1 {
		zoom = 1
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim),
		hud:     ui.NewHUD(sim, 180),
		pacer:   core.NewFixedStep(tps),
		zoom:    float64(zoom),
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	// Scrolling only changes the view.
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.zoom += dy
		if g.zoom < 1 {
			g.zoom = 1
		}
	}

	g.overlay.Update()
	g.hud.Update(g.zoom)

	switch {
	case g.paused && g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused && g.pacer.ShouldStep():
		g.sim.Advance()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.sim, g.zoom)
	g.overlay.Draw(screen, g.zoom)
	g.hud.Draw(screen)
}

// Layout uses the window size as the logical screen so zoom can grow past it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

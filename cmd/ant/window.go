//go:build ebiten

package main

import (
	"errors"
	"log"

	"turmite/internal/app"
	"turmite/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func runWindow(cfg *app.Config, sim core.Sim) {
	game := app.New(sim, cfg.Zoom, cfg.TPS, cfg.Seed)

	ebiten.SetWindowTitle("turmite: " + sim.Name())
	ebiten.SetWindowSize(640, 480)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

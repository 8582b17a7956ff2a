package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"turmite/internal/app"
	"turmite/internal/export"
	_ "turmite/internal/sims/trails"
	_ "turmite/internal/sims/turmite"
	"turmite/internal/stream"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	sim := cfg.NewSim()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger := log.New(os.Stderr, "ant: ", log.LstdFlags)

	switch {
	case cfg.Generate != "":
		m, err := export.Run(ctx, sim, export.Options{
			Dir:    cfg.Generate,
			Cycles: cfg.Cycles,
			Zoom:   cfg.Zoom,
			Format: cfg.Format,
			FPS:    cfg.FPS,
			Log:    logger,
		})
		if err != nil {
			stop()
			log.Fatalf("export: %v", err)
		}
		logger.Printf("wrote %d frames (%d ticks) to %s, run %s", m.Frames, m.Ticks, cfg.Generate, m.RunID)
	case cfg.Serve != "":
		if err := stream.Serve(ctx, cfg.Serve, sim, cfg.FPS, cfg.Zoom, logger); err != nil {
			stop()
			log.Fatalf("serve: %v", err)
		}
	default:
		runWindow(cfg, sim)
	}
}

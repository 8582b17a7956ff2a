//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"turmite/internal/app"
	"turmite/internal/core"
)

func runWindow(*app.Config, core.Sim) {
	fmt.Fprintln(os.Stderr, "The interactive window requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/ant`, or use -generate / -serve.")
	os.Exit(2)
}

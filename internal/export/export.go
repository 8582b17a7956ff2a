// Package export writes simulation frames to disk. It drives a sim for a
// fixed number of frames, advancing Speed ticks before each one.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"turmite/internal/core"
	"turmite/internal/render"

	"github.com/google/uuid"
)

// Supported output formats.
const (
	FormatPNG = "png"
	FormatAVI = "avi"
)

// ManifestName is written next to the frames once a run stops.
const ManifestName = "run.json"

// ErrNotDir reports an export target that does not exist or is not a
// directory.
var ErrNotDir = errors.New("path is not valid")

// Options controls a frame export.
type Options struct {
	Dir    string
	Cycles int
	// Zoom is the integer pixel size of one cell.
	Zoom   int
	Format string
	// FPS is only used for the AVI header.
	FPS int
	// Log receives progress lines. Nil disables logging.
	Log *log.Logger
}

// Manifest describes a finished (or interrupted) export.
type Manifest struct {
	RunID    string    `json:"run_id"`
	Sim      string    `json:"sim"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Zoom     int       `json:"zoom"`
	Speed    int       `json:"speed"`
	Format   string    `json:"format"`
	Frames   int       `json:"frames"`
	Ticks    uint64    `json:"ticks"`
	Files    []string  `json:"files"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
}

// CheckDir verifies that dir exists and is a directory.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrNotDir, dir)
	}
	return nil
}

// FrameName returns the file name of PNG frame i.
func FrameName(i int) string { return fmt.Sprintf("frame%d.png", i) }

type frameWriter interface {
	WriteFrame(i int, img *image.RGBA) error
	Close() error
	Files() []string
}

// Run exports opts.Cycles frames of sim into opts.Dir. Cancelling ctx stops
// the export between frames; the manifest is still written.
func Run(ctx context.Context, sim core.Sim, opts Options) (Manifest, error) {
	if err := CheckDir(opts.Dir); err != nil {
		return Manifest{}, err
	}
	if opts.Zoom < 1 {
		opts.Zoom = 1
	}
	if opts.Format == "" {
		opts.Format = FormatPNG
	}

	size := sim.Size()
	m := Manifest{
		RunID:   uuid.NewString(),
		Sim:     sim.Name(),
		Width:   size.W * opts.Zoom,
		Height:  size.H * opts.Zoom,
		Zoom:    opts.Zoom,
		Speed:   sim.Speed(),
		Format:  opts.Format,
		Started: time.Now().UTC(),
	}

	var w frameWriter
	switch opts.Format {
	case FormatPNG:
		w = &pngWriter{dir: opts.Dir}
	case FormatAVI:
		aw, err := newAVIWriter(opts.Dir, m.Width, m.Height, opts.FPS)
		if err != nil {
			return m, err
		}
		w = aw
	default:
		return m, fmt.Errorf("unknown format %q", opts.Format)
	}

	runErr := exportFrames(ctx, sim, opts, w, &m)
	if err := w.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close %s output: %w", opts.Format, err)
	}
	m.Files = w.Files()
	m.Ticks = sim.Ticks()
	m.Finished = time.Now().UTC()
	if err := writeManifest(opts.Dir, m); err != nil && runErr == nil {
		runErr = err
	}
	return m, runErr
}

func exportFrames(ctx context.Context, sim core.Sim, opts Options, w frameWriter, m *Manifest) error {
	var frame, scaled *image.RGBA
	every := progressInterval(opts.Cycles)
	for i := 0; i < opts.Cycles; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		sim.Advance()
		frame = render.Frame(sim, frame)
		out := frame
		if opts.Zoom > 1 {
			scaled = render.Scale(frame, opts.Zoom, scaled)
			out = scaled
		}
		if err := w.WriteFrame(i, out); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		m.Frames++
		if opts.Log != nil && (i+1)%every == 0 {
			opts.Log.Printf("exported %d/%d frames (tick %d)", i+1, opts.Cycles, sim.Ticks())
		}
	}
	return nil
}

func progressInterval(cycles int) int {
	if cycles < 10 {
		return 1
	}
	return cycles / 10
}

func writeManifest(dir string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

package export

import (
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"turmite/internal/sims/turmite"
)

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	if err := CheckDir(dir); err != nil {
		t.Fatalf("existing dir rejected: %v", err)
	}
	if err := CheckDir(filepath.Join(dir, "missing")); !errors.Is(err, ErrNotDir) {
		t.Fatalf("missing dir: expected ErrNotDir, got %v", err)
	}
	file := filepath.Join(dir, "plain")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CheckDir(file); !errors.Is(err, ErrNotDir) {
		t.Fatalf("plain file: expected ErrNotDir, got %v", err)
	}
}

func TestRunWritesScaledPNGFrames(t *testing.T) {
	dir := t.TempDir()
	sim := turmite.New(turmite.Config{Width: 10, Height: 8, Ants: 4, Speed: 3})

	m, err := Run(context.Background(), sim, Options{Dir: dir, Cycles: 4, Zoom: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Frames != 4 || m.Ticks != 12 {
		t.Fatalf("manifest frames=%d ticks=%d, expected 4 and 12", m.Frames, m.Ticks)
	}
	if m.RunID == "" {
		t.Fatal("manifest should carry a run id")
	}

	for i := 0; i < 4; i++ {
		f, err := os.Open(filepath.Join(dir, FrameName(i)))
		if err != nil {
			t.Fatalf("frame %d missing: %v", i, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("frame %d decode: %v", i, err)
		}
		if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 16 {
			t.Fatalf("frame %d size %v, expected 20x16", i, b)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatalf("manifest missing: %v", err)
	}
	var onDisk Manifest
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("manifest decode: %v", err)
	}
	if onDisk.RunID != m.RunID || len(onDisk.Files) != 4 || onDisk.Files[3] != "frame3.png" {
		t.Fatalf("unexpected manifest %+v", onDisk)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	sim := turmite.New(turmite.DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := Run(ctx, sim, Options{Dir: dir, Cycles: 5})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if m.Frames != 0 || sim.Ticks() != 0 {
		t.Fatalf("cancelled export advanced the sim: frames=%d ticks=%d", m.Frames, sim.Ticks())
	}
	if _, err := os.Stat(filepath.Join(dir, ManifestName)); err != nil {
		t.Fatalf("manifest should still be written: %v", err)
	}
}

func TestRunAVI(t *testing.T) {
	dir := t.TempDir()
	sim := turmite.New(turmite.Config{Width: 16, Height: 16, Ants: 4, Speed: 10})

	m, err := Run(context.Background(), sim, Options{Dir: dir, Cycles: 3, Zoom: 2, Format: FormatAVI, FPS: 10})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(m.Files) != 1 || m.Files[0] != AVIName {
		t.Fatalf("unexpected files %v", m.Files)
	}
	info, err := os.Stat(filepath.Join(dir, AVIName))
	if err != nil || info.Size() == 0 {
		t.Fatalf("avi not written: %v", err)
	}
}

func TestRunRejectsMissingDir(t *testing.T) {
	sim := turmite.New(turmite.DefaultConfig())
	_, err := Run(context.Background(), sim, Options{Dir: filepath.Join(t.TempDir(), "nope"), Cycles: 1})
	if !errors.Is(err, ErrNotDir) {
		t.Fatalf("expected ErrNotDir, got %v", err)
	}
}

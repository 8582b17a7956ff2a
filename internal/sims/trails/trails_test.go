package trails

import (
	"image/color"
	"slices"
	"testing"

	"turmite/internal/core"
	"turmite/pkg/ant"
	pcore "turmite/pkg/core"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	cfg.Ants = 6

	a := New(cfg)
	b := New(cfg)
	if !slices.Equal(a.World().Agents(), b.World().Agents()) {
		t.Fatal("same seed should place agents identically")
	}
	for i := 0; i < 50; i++ {
		a.Advance()
		b.Advance()
	}
	if !slices.Equal(a.World().Snapshot(nil), b.World().Snapshot(nil)) {
		t.Fatal("identical setups diverged")
	}

	a.Reset(777)
	seeded := a.World().Agents()
	a.Reset(777)
	if !slices.Equal(seeded, a.World().Agents()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(seeded, b.World().Agents()) {
		t.Fatal("different seeds should produce different placements")
	}
}

func TestScatterAvoidsBackground(t *testing.T) {
	ants := Scatter(pcore.NewRNG(5), 7, 3, 200)
	blank := ant.Trails{}.Blank()
	for i, a := range ants {
		if a.Trail == blank {
			t.Fatalf("agent %d drew the background color", i)
		}
		if a.Pos.X < 0 || a.Pos.X >= 7 || a.Pos.Y < 0 || a.Pos.Y >= 3 {
			t.Fatalf("agent %d placed out of bounds at %v", i, a.Pos)
		}
		if a.Heading > ant.West {
			t.Fatalf("agent %d heading %d", i, a.Heading)
		}
	}
}

func TestRenderPassesColorsThrough(t *testing.T) {
	s := New(Config{Width: 5, Height: 5, Ants: 0, Speed: 1, Seed: 1})
	trail := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	s.World().AddAgent(ant.Agent[color.RGBA]{Pos: ant.Point{X: 2, Y: 2}, Heading: ant.North, Trail: trail})
	s.Step()

	buf := make([]byte, 4*25)
	s.Render(buf)
	idx := (2*5 + 2) * 4
	if !slices.Equal(buf[idx:idx+4], []byte{10, 20, 30, 255}) {
		t.Fatalf("marked pixel %v", buf[idx:idx+4])
	}
	if !slices.Equal(buf[0:4], []byte{255, 255, 255, 255}) {
		t.Fatalf("blank pixel %v", buf[0:4])
	}
	if got := s.Census()["#0a141eff"]; got != 1 {
		t.Fatalf("census for trail color = %d, expected 1", got)
	}
}

func TestRegisteredWithSeed(t *testing.T) {
	factory, ok := core.Sims()["trails"]
	if !ok {
		t.Fatal("trails sim not registered")
	}
	sim := factory(map[string]string{"seed": "42", "ants": "3"})
	p, ok := sim.(core.ParameterProvider).Parameters().Lookup("seed")
	if !ok || p.Value != "42" {
		t.Fatalf("seed parameter %+v", p)
	}
	if n := len(sim.(core.AgentsProvider).AgentViews()); n != 3 {
		t.Fatalf("expected 3 agents, got %d", n)
	}
}

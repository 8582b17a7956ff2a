package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"turmite/internal/sims/turmite"

	"github.com/gorilla/websocket"
)

func startServer(t *testing.T) (*websocket.Conn, *turmite.Sim) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub()
	go hub.Run(ctx)

	sim := turmite.New(turmite.Config{Width: 12, Height: 10, Ants: 4, Speed: 2})
	driver := &Driver{Sim: sim, Hub: hub, FPS: 20, Zoom: 2}
	go driver.Run(ctx)

	srv := httptest.NewServer(httpHandler(hub))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn, sim
}

func TestStreamsPNGFrames(t *testing.T) {
	conn, _ := startServer(t)
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if kind != websocket.BinaryMessage {
			continue
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("frame is not a PNG: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 20 {
			t.Fatalf("frame size %v, expected 24x20", b)
		}
		return
	}
}

func TestSetSpeedControl(t *testing.T) {
	conn, _ := startServer(t)
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	if err := conn.WriteJSON(Message{Type: MsgSetSpeed, Value: 9}); err != nil {
		t.Fatalf("write: %v", err)
	}
	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if kind != websocket.TextMessage {
			continue
		}
		var st Status
		if err := json.Unmarshal(data, &st); err != nil {
			t.Fatalf("status decode: %v", err)
		}
		if st.Speed != 9 || st.Sim != "turmite" {
			t.Fatalf("unexpected status %+v", st)
		}
		return
	}
}

func TestDriverApply(t *testing.T) {
	sim := turmite.New(turmite.Config{Width: 8, Height: 8, Ants: 1, Speed: 1})
	d := &Driver{Sim: sim, Hub: NewHub()}

	d.apply(Message{Type: MsgPause})
	if !d.paused {
		t.Fatal("pause should toggle on")
	}
	sim.Step()
	d.apply(Message{Type: MsgReset})
	if sim.Ticks() != 0 {
		t.Fatal("reset should rebuild the world")
	}
	d.apply(Message{Type: MsgSetSpeed, Value: -4})
	if sim.Speed() != 0 {
		t.Fatalf("negative speed should clamp to 0, got %d", sim.Speed())
	}
}

type countingSim struct {
	*turmite.Sim
	advances atomic.Int64
}

func (c *countingSim) Advance() {
	c.advances.Add(1)
	c.Sim.Advance()
}

func TestServeStopsDriverWhenListenFails(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	sim := &countingSim{Sim: turmite.New(turmite.Config{Width: 6, Height: 6, Ants: 1, Speed: 1})}
	done := make(chan error, 1)
	go func() { done <- Serve(context.Background(), ln.Addr().String(), sim, 100, 1, nil) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected an error for an address already in use")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after the listener failed")
	}

	time.Sleep(50 * time.Millisecond)
	before := sim.advances.Load()
	time.Sleep(200 * time.Millisecond)
	if after := sim.advances.Load(); after != before {
		t.Fatalf("driver kept advancing after Serve returned: %d -> %d", before, after)
	}
}

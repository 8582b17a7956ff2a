package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"log"
	"time"

	"turmite/internal/core"
	"turmite/internal/render"
)

// Control message types understood by the Driver.
const (
	MsgSetSpeed = "set_speed"
	MsgReset    = "reset"
	MsgPause    = "pause"
)

// Status is broadcast as JSON after every control message.
type Status struct {
	Sim    string `json:"sim"`
	Ticks  uint64 `json:"ticks"`
	Speed  int    `json:"speed"`
	Paused bool   `json:"paused"`
}

// Driver owns the sim while streaming: it advances it once per frame and
// publishes the rendered frame to the hub.
type Driver struct {
	Sim  core.Sim
	Hub  *Hub
	FPS  int
	Zoom int
	Log  *log.Logger

	paused bool
	frame  *image.RGBA
	scaled *image.RGBA
	buf    bytes.Buffer
}

// Run streams until ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	fps := d.FPS
	if fps <= 0 {
		fps = 15
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-d.Hub.Control:
			d.apply(msg)
			d.publish(d.status())
		case <-ticker.C:
			if !d.paused {
				d.Sim.Advance()
			}
			frame, err := d.encodeFrame()
			if err != nil {
				return err
			}
			d.publish(frame)
		}
	}
}

func (d *Driver) apply(msg Message) {
	switch msg.Type {
	case MsgSetSpeed:
		setter, ok := d.Sim.(core.IntParameterSetter)
		if !ok || !setter.SetIntParameter("speed", msg.Value) {
			d.logf("sim %s does not accept speed changes", d.Sim.Name())
		}
	case MsgReset:
		d.Sim.Reset(int64(msg.Value))
	case MsgPause:
		d.paused = !d.paused
	default:
		d.logf("unknown message type %q", msg.Type)
	}
}

func (d *Driver) status() []byte {
	data, _ := json.Marshal(Status{
		Sim:    d.Sim.Name(),
		Ticks:  d.Sim.Ticks(),
		Speed:  d.Sim.Speed(),
		Paused: d.paused,
	})
	return data
}

func (d *Driver) encodeFrame() ([]byte, error) {
	d.frame = render.Frame(d.Sim, d.frame)
	out := d.frame
	if d.Zoom > 1 {
		d.scaled = render.Scale(d.frame, d.Zoom, d.scaled)
		out = d.scaled
	}
	d.buf.Reset()
	if err := png.Encode(&d.buf, out); err != nil {
		return nil, err
	}
	return bytes.Clone(d.buf.Bytes()), nil
}

func (d *Driver) publish(msg []byte) {
	select {
	case d.Hub.Broadcast <- msg:
	default:
	}
}

func (d *Driver) logf(format string, args ...any) {
	if d.Log != nil {
		d.Log.Printf(format, args...)
	}
}

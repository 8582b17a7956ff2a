package stream

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"turmite/internal/core"
)

const viewerPage = `<!doctype html>
<title>turmite</title>
<body style="background:#111;margin:0">
<img id="f" style="image-rendering:pixelated">
<script>
const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
ws.binaryType = "blob";
ws.onmessage = (e) => {
  if (typeof e.data === "string") { console.log(JSON.parse(e.data)); return; }
  const img = document.getElementById("f");
  const old = img.src;
  img.src = URL.createObjectURL(e.data);
  if (old) URL.revokeObjectURL(old);
};
</script>
`

func httpHandler(hub *Hub) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(viewerPage))
	})
	return mux
}

// Serve streams sim on addr until ctx is done.
func Serve(ctx context.Context, addr string, sim core.Sim, fps, zoom int, logger *log.Logger) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	hub := NewHub()
	go hub.Run(ctx)

	srv := &http.Server{Addr: addr, Handler: httpHandler(hub)}
	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()
	if logger != nil {
		logger.Printf("streaming %s on http://%s", sim.Name(), addr)
	}

	driver := &Driver{Sim: sim, Hub: hub, FPS: fps, Zoom: zoom, Log: logger}
	driverErr := make(chan error, 1)
	go func() { driverErr <- driver.Run(ctx) }()

	var err error
	select {
	case err = <-errc:
	case err = <-driverErr:
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil && err == nil {
		err = serr
	}
	return err
}

package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/icza/mjpeg"
)

// AVIName is the single output file of an AVI export.
const AVIName = "frames.avi"

type pngWriter struct {
	dir   string
	files []string
}

func (p *pngWriter) WriteFrame(i int, img *image.RGBA) error {
	name := FrameName(i)
	f, err := os.Create(filepath.Join(p.dir, name))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	p.files = append(p.files, name)
	return nil
}

func (p *pngWriter) Close() error    { return nil }
func (p *pngWriter) Files() []string { return p.files }

type aviWriter struct {
	aw  mjpeg.AviWriter
	buf bytes.Buffer
}

func newAVIWriter(dir string, w, h, fps int) (*aviWriter, error) {
	if fps <= 0 {
		fps = 15
	}
	aw, err := mjpeg.New(filepath.Join(dir, AVIName), int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", AVIName, err)
	}
	return &aviWriter{aw: aw}, nil
}

func (a *aviWriter) WriteFrame(_ int, img *image.RGBA) error {
	a.buf.Reset()
	if err := jpeg.Encode(&a.buf, img, &jpeg.Options{Quality: 95}); err != nil {
		return err
	}
	return a.aw.AddFrame(a.buf.Bytes())
}

func (a *aviWriter) Close() error    { return a.aw.Close() }
func (a *aviWriter) Files() []string { return []string{AVIName} }

package encoder

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// PNGSequence writes every frame to its own numbered PNG file:
// "out.png" becomes out_00000.png, out_00001.png, ...
type PNGSequence struct {
	stem string
	n    int
	log  *slog.Logger
}

// NewPNGSequence returns an encoder writing frames next to path.
func NewPNGSequence(path string, log *slog.Logger) *PNGSequence {
	return &PNGSequence{
		stem: strings.TrimSuffix(path, filepath.Ext(path)),
		log:  log,
	}
}

// FramePath returns the file name of frame i.
func (p *PNGSequence) FramePath(i int) string {
	return fmt.Sprintf("%s_%05d.png", p.stem, i)
}

// Write implements Encoder.
func (p *PNGSequence) Write(img image.Image) error {
	path := p.FramePath(p.n)
	f, err := os.Create(path) //nolint:gosec // path is derived from user output path
	if err != nil {
		return fmt.Errorf("encoder: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoder: png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("encoder: %w", err)
	}
	p.n++
	return nil
}

// Stop implements Encoder.
func (p *PNGSequence) Stop() error {
	p.log.Debug("encoder: png sequence finished", "frames", p.n, "stem", p.stem)
	return nil
}

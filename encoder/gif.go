package encoder

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
)

// GIF collects frames and writes an animated GIF on Stop.
// Frames are quantized to the Plan 9 palette with Floyd-Steinberg dithering
// as they are written.
type GIF struct {
	w     io.Writer
	close func() error
	anim  gif.GIF
	delay int
}

// NewGIF returns a GIF encoder writing to w at the given frame rate.
func NewGIF(w io.Writer, fps float64) *GIF {
	return &GIF{w: w, delay: gifDelay(fps)}
}

func createGIF(path string, fps float64) (*GIF, error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("encoder: %w", err)
	}
	g := NewGIF(f, fps)
	g.close = f.Close
	return g, nil
}

// gifDelay converts a frame rate to a GIF frame delay in 100ths of a second.
func gifDelay(fps float64) int {
	return max(1, int(math.Round(100/fps)))
}

// Write implements Encoder.
func (g *GIF) Write(img image.Image) error {
	b := img.Bounds()
	pm := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
	draw.FloydSteinberg.Draw(pm, pm.Rect, img, b.Min)

	g.anim.Image = append(g.anim.Image, pm)
	g.anim.Delay = append(g.anim.Delay, g.delay)
	return nil
}

// Frames returns the number of frames written so far.
func (g *GIF) Frames() int {
	return len(g.anim.Image)
}

// Stop implements Encoder. It encodes all frames and closes the file.
func (g *GIF) Stop() error {
	var err error
	if len(g.anim.Image) > 0 {
		err = gif.EncodeAll(g.w, &g.anim)
	}
	if g.close != nil {
		if cerr := g.close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("encoder: gif: %w", err)
	}
	return nil
}

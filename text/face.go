package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// hinting is applied to every face so glyph advances land on whole pixels,
// which keeps monospace columns aligned.
const hinting = font.HintingFull

// Face represents a font face at a specific size.
//
// Face is not safe for concurrent use: the underlying opentype face keeps a
// glyph buffer that is reused between calls.
type Face struct {
	source  *FontSource
	face    font.Face
	size    float64
	metrics Metrics
}

func newFace(src *FontSource, f font.Face, size float64) *Face {
	m := f.Metrics()
	descent := fixedToFloat64(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	ascent := fixedToFloat64(m.Ascent)
	return &Face{
		source: src,
		face:   f,
		size:   size,
		metrics: Metrics{
			Ascent:    ascent,
			Descent:   descent,
			LineGap:   fixedToFloat64(m.Height) - ascent - descent,
			CapHeight: fixedToFloat64(m.CapHeight),
		},
	}
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	return f.metrics
}

// Size returns the size of this face in points.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Advance returns the total advance width of the text in pixels,
// kerning included.
func (f *Face) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	return fixedToFloat64(font.MeasureString(f.face, s))
}

// Measure returns the size of the box text occupies when drawn.
// Width is the horizontal advance, height is ascent + descent regardless of
// the glyphs in s, so every string measured with one face has the same height.
func (f *Face) Measure(s string) (width, height float64) {
	return f.Advance(s), f.metrics.Height()
}

// Bounds returns the size of the ink bounding box of s, from the top of its
// tallest glyph to the bottom of its lowest one. Unlike Measure, the height
// depends on the glyphs: "A" spans cap height, "_" only a sliver.
func (f *Face) Bounds(s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	b, _ := font.BoundString(f.face, s)
	return fixedToFloat64(b.Max.X - b.Min.X), fixedToFloat64(b.Max.Y - b.Min.Y)
}

// Close releases the underlying opentype face.
func (f *Face) Close() error {
	return f.face.Close()
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// float64ToFixed converts float64 to fixed.Int26_6.
func float64ToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

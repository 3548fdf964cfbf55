package vidframe

import (
	"image"
	"image/color"
	"math"

	"github.com/vardbg/vidframe/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Canvas is the raster buffer of a single frame.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas of the given dimensions filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Image returns the underlying raster.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// FillRect fills the rectangle spanned by (x0, y0) and (x1, y1), snapped to
// the pixel grid.
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, col color.Color) {
	r := image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x1)), int(math.Round(y1)),
	)
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// HLine draws a 1px horizontal line from x0 to x1 inclusive.
func (c *Canvas) HLine(x0, x1, y float64, col color.Color) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	c.FillRect(x0, y, x1+1, y+1, col)
}

// VLine draws a 1px vertical line from y0 to y1 inclusive.
func (c *Canvas) VLine(x, y0, y1 float64, col color.Color) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	c.FillRect(x, y0, x+1, y1+1, col)
}

// StrokePolyline strokes the open path through pts with the given width.
// Each segment is extended by half the width at both ends so joints are
// filled without gaps.
func (c *Canvas) StrokePolyline(pts []Point, width float64, col color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}

	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	hw := width / 2
	for i := 1; i < len(pts); i++ {
		addSegment(z, pts[i-1], pts[i], hw)
	}
	z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// addSegment adds the rectangle covering the segment p0-p1 to z.
// Every rectangle is wound the same way regardless of segment direction, so
// overlapping joints accumulate instead of cancelling out.
func addSegment(z *vector.Rasterizer, p0, p1 Point, hw float64) {
	d := p1.Sub(p0)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return
	}
	// unit direction scaled to half width, and its normal
	u := Pt(d.X/l*hw, d.Y/l*hw)
	n := Pt(-u.Y, u.X)

	a := p0.Sub(u)
	e := p1.Add(u)
	z.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
	z.LineTo(float32(e.X+n.X), float32(e.Y+n.Y))
	z.LineTo(float32(e.X-n.X), float32(e.Y-n.Y))
	z.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
	z.ClosePath()
}

// DrawText draws s with (x, y) as the top-left corner of its text box.
func (c *Canvas) DrawText(face *text.Face, s string, x, y float64, col color.Color) {
	text.DrawTop(c.img, s, face, x, y, col)
}

// DrawTextCentered draws s with its text box centered on (cx, cy).
func (c *Canvas) DrawTextCentered(face *text.Face, s string, cx, cy float64, col color.Color) {
	w, h := face.Measure(s)
	c.DrawText(face, s, cx-w/2, cy-h/2, col)
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return c.img.ColorModel()
}

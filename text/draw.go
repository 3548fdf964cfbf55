package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders text to a destination image.
// Position (x, y) is the baseline origin.
func Draw(dst draw.Image, s string, face *Face, x, y float64, col color.Color) {
	if s == "" || face == nil {
		return
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face.face,
		Dot:  fixed.Point26_6{X: float64ToFixed(x), Y: float64ToFixed(y)},
	}
	d.DrawString(s)
}

// DrawTop renders text with (x, y) as the top-left corner of its text box,
// the box being as tall as the face's ascent + descent.
func DrawTop(dst draw.Image, s string, face *Face, x, y float64, col color.Color) {
	if face == nil {
		return
	}
	Draw(dst, s, face, x, y+face.metrics.Ascent, col)
}

package text

import (
	"image"
	"image/color"
	"testing"
)

// inkBounds returns the bounding box of non-transparent pixels.
func inkBounds(img *image.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestDraw(t *testing.T) {
	face := loadTestFace(t, 12)
	dst := image.NewRGBA(image.Rect(0, 0, 200, 50))

	Draw(dst, "Hello, World!", face, 10, 30, color.Black)

	if inkBounds(dst).Empty() {
		t.Error("Expected Draw to modify the destination image")
	}
}

func TestDrawEmptyIsNoop(t *testing.T) {
	face := loadTestFace(t, 12)
	dst := image.NewRGBA(image.Rect(0, 0, 50, 50))

	Draw(dst, "", face, 10, 30, color.Black)
	Draw(dst, "x", nil, 10, 30, color.Black)

	if !inkBounds(dst).Empty() {
		t.Error("Draw with empty text or nil face should not touch the image")
	}
}

func TestDrawTopStaysInsideTextBox(t *testing.T) {
	face := loadTestFace(t, 16)
	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))

	const x, y = 20, 30
	DrawTop(dst, "Ag", face, x, y, color.White)

	w, h := face.Measure("Ag")
	ink := inkBounds(dst)
	if ink.Empty() {
		t.Fatal("DrawTop drew nothing")
	}
	box := image.Rect(x-1, y-1, x+int(w)+2, y+int(h)+2)
	if !ink.In(box) {
		t.Errorf("ink %v escapes text box %v", ink, box)
	}
}

package vidframe

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/vardbg/vidframe/text"
)

var (
	testBG        = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	testFG        = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	testHeading   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	testHighlight = color.NRGBA{R: 0x44, G: 0x44, B: 0x88, A: 0xff}
	testWatermark = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	testGreen     = color.NRGBA{R: 0x00, G: 0xc0, B: 0x00, A: 0xff}
)

// testFace loads a built-in font at size.
func testFace(t *testing.T, name string, size float64) *text.Face {
	t.Helper()
	src, err := text.Builtin(name)
	if err != nil {
		t.Fatalf("Builtin(%q): %v", name, err)
	}
	face, err := src.Face(size)
	if err != nil {
		t.Fatalf("Face(%g): %v", size, err)
	}
	return face
}

// testGeometry is a 1200x800 canvas split at x=800, y=640 and y=260.
func testGeometry() Geometry {
	return Geometry{
		Width:       1200,
		Height:      800,
		VarX:        800,
		OutY:        640,
		OtherVarY:   260,
		SectPadding: 10,
		HeadPadding: 10,
		LineHeight:  1.2,
	}
}

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Geometry: testGeometry(),
		Fonts: Fonts{
			Body:     testFace(t, "go-mono", 16),
			BodyBold: testFace(t, "go-mono-bold", 16),
			Caption:  testFace(t, "go-regular", 12),
			Heading:  testFace(t, "go-bold", 20),
			Intro:    testFace(t, "go-bold", 32),
		},
		Colors: Colors{
			Background: testBG,
			Body:       testFG,
			Heading:    testHeading,
			Highlight:  testHighlight,
			Watermark:  testWatermark,
			Red:        color.NRGBA{R: 0xc0, A: 0xff},
			Green:      testGreen,
			Blue:       color.NRGBA{B: 0xc0, A: 0xff},
		},
		FPS: 2,
	}
}

// recordingEncoder keeps every frame it is handed.
type recordingEncoder struct {
	frames   []image.Image
	stops    int
	writeErr error
}

func (e *recordingEncoder) Write(img image.Image) error {
	if e.writeErr != nil {
		return e.writeErr
	}
	e.frames = append(e.frames, img)
	return nil
}

func (e *recordingEncoder) Stop() error {
	e.stops++
	return nil
}

var errWrite = errors.New("disk full")

// sameColor compares colors in 16-bit premultiplied space.
func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// nearColor compares colors allowing for anti-aliasing round-off.
func nearColor(a, b color.Color) bool {
	const tolerance = 0x300
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	near := func(x, y uint32) bool {
		if x > y {
			x, y = y, x
		}
		return y-x <= tolerance
	}
	return near(r1, r2) && near(g1, g2) && near(b1, b2) && near(a1, a2)
}

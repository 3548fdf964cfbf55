package vidframe

import (
	"math"

	"github.com/vardbg/vidframe/text"
)

// referenceGlyph is measured to derive column widths and line heights.
const referenceGlyph = "A"

// GlyphSize is the size of a single reference glyph: its advance width and
// the height of its ink bounds.
type GlyphSize struct {
	W, H float64
}

// measureGlyph measures the reference glyph with face.
func measureGlyph(face *text.Face) GlyphSize {
	_, h := face.Bounds(referenceGlyph)
	return GlyphSize{W: face.Advance(referenceGlyph), H: h}
}

// Section is the text grid of one frame section. Row i of the section
// occupies [Origin.Y + i*LineHeight, Origin.Y + (i+1)*LineHeight).
type Section struct {
	Origin Point
	Cols   int
	Rows   int
}

// Metrics is the derived frame layout. It is computed once per Renderer and
// read-only afterwards.
type Metrics struct {
	LineHeight float64

	// CaptionY is the top of the execution caption, one line above the
	// bottom padding of the code section. It is not snapped to a row.
	CaptionY float64

	Code      Section
	Output    Section
	LastVar   Section
	OtherVars Section
}

// ComputeMetrics derives the section grids from the geometry and the
// reference glyph sizes of the body and heading fonts. All sections share the
// body glyph so their rows and columns are comparable. Capacities that would
// be negative are clamped to zero.
func ComputeMetrics(g Geometry, body, heading GlyphSize) Metrics {
	lh := body.H * g.LineHeight
	pad := g.SectPadding
	width, height := float64(g.Width), float64(g.Height)

	var m Metrics
	m.LineHeight = lh

	// The last code row is reserved for the execution caption
	m.Code = Section{
		Origin: Pt(pad, pad),
		Cols:   columns(g.VarX-2*pad, body.W),
		Rows:   rows((g.OutY-2*pad)/lh - 1),
	}

	m.CaptionY = pad
	if lh > 0 {
		m.CaptionY += lh * max((g.OutY-2*pad)/lh-1, 0)
	}

	outY := g.OutY + 2*g.HeadPadding + heading.H - lh
	m.Output = Section{
		Origin: Pt(pad, outY),
		Cols:   m.Code.Cols,
		Rows:   rows((height - outY) / lh),
	}

	m.LastVar = Section{
		Origin: Pt(g.VarX+pad, 2*g.HeadPadding+heading.H),
		Cols:   columns(width-g.VarX-2*pad, body.W),
		Rows:   rows((g.OtherVarY-2*pad)/lh - 1),
	}

	m.OtherVars = Section{
		Origin: Pt(m.LastVar.Origin.X, g.OtherVarY+m.LastVar.Origin.Y-lh),
		Cols:   m.LastVar.Cols,
		Rows:   rows((height-g.OtherVarY-2*pad)/lh - 1),
	}

	return m
}

func columns(span, glyphW float64) int {
	if glyphW <= 0 {
		return 0
	}
	return rows(span / glyphW)
}

// rows floors v to a non-negative count.
func rows(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return int(math.Floor(v))
}

// RowTop returns the y coordinate of the top of row i.
func (s Section) RowTop(i int, lineHeight float64) float64 {
	return s.Origin.Y + lineHeight*float64(i)
}

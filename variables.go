package vidframe

import "image/color"

// VariableState is the variable panel content of one frame.
type VariableState struct {
	// Name of the most recently touched variable.
	Name string
	// Action performed on it, e.g. "assigned" or "mutated".
	Action string
	// Color of the action label and of the reference connector.
	Color color.Color

	// TextLines is the pre-formatted value of the last variable.
	TextLines []string
	// OtherTextLines is the pre-formatted listing of all other live
	// variables. A line of the form "<name>:" starts an entry.
	OtherTextLines []string

	// Ref names the variable the last variable's value refers to, or "".
	Ref string
}

// AnchorPair holds the two ends of a reference connector.
type AnchorPair struct {
	// Source is the end of the last variable's action label.
	Source Point
	// Target is the end of the "<ref>:" line in the other variables.
	Target Point
}

// drawVariables draws both variable panels. If vs refers to a variable that
// is listed in the other variables, the connector anchors are returned.
func drawVariables(c *Canvas, cfg *Config, m *Metrics, vs *VariableState) (AnchorPair, bool) {
	target, found := drawOtherVars(c, cfg, m, vs)
	source := drawLastVar(c, cfg, m, vs)

	if vs.Ref == "" || !found {
		return AnchorPair{}, false
	}
	return AnchorPair{Source: source, Target: target}, true
}

// drawLastVar draws the name, action label and value of the last variable,
// and returns the anchor at the end of the action label.
func drawLastVar(c *Canvas, cfg *Config, m *Metrics, vs *VariableState) Point {
	s := m.LastVar
	body, bold := cfg.Fonts.Body, cfg.Fonts.BodyBold

	// Name and action sit on the line above the section origin
	name := vs.Name + " "
	nw, nh := body.Measure(name)
	y := s.Origin.Y - nh
	c.DrawText(body, name, s.Origin.X, y, cfg.Colors.Body)

	actionColor := vs.Color
	if actionColor == nil {
		actionColor = cfg.Colors.Body
	}
	c.DrawText(bold, vs.Action, s.Origin.X+nw, y, actionColor)

	drawTextBlock(c, cfg, m, s, clip(vs.TextLines, s.Rows))

	aw, _ := bold.Measure(vs.Action + " ")
	return Pt(s.Origin.X+nw+aw, s.Origin.Y-nh/2)
}

// drawOtherVars draws the other variables and returns the anchor at the end
// of the entry named by vs.Ref, if it is displayed.
func drawOtherVars(c *Canvas, cfg *Config, m *Metrics, vs *VariableState) (Point, bool) {
	s := m.OtherVars
	lines := clip(vs.OtherTextLines, s.Rows)
	drawTextBlock(c, cfg, m, s, lines)

	if vs.Ref == "" {
		return Point{}, false
	}
	idx := findReference(lines, vs.Ref)
	if idx < 0 {
		return Point{}, false
	}

	rw, _ := cfg.Fonts.Body.Measure(lines[idx] + " ")
	return Pt(s.Origin.X+rw, s.RowTop(idx, m.LineHeight)+m.LineHeight/2), true
}

// findReference returns the index of the line that is exactly "<ref>:",
// or -1.
func findReference(lines []string, ref string) int {
	key := ref + ":"
	for i, line := range lines {
		if line == key {
			return i
		}
	}
	return -1
}

// clip returns at most n leading lines.
func clip(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

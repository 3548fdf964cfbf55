package vidframe

import "fmt"

// Section headings.
const (
	headingOutput    = "Output"
	headingLastVar   = "Last Variable"
	headingOtherVars = "Other Variables"
)

// watermarkText is drawn in the bottom-right corner when watermarking is on.
const watermarkText = "Generated by vardbg"

// ExecutionCaption formats the caption shown under the code section.
func ExecutionCaption(count int, current, average, total string) string {
	plural := "s"
	if count == 1 {
		plural = ""
	}
	return fmt.Sprintf("Line executed %d time%s — current time elapsed: %s, average: %s, total: %s",
		count, plural, current, average, total)
}

// drawChrome draws the section dividers and headings.
func drawChrome(c *Canvas, cfg *Config) {
	g := &cfg.Geometry
	w, h := float64(g.Width), float64(g.Height)
	fg, head := cfg.Colors.Body, cfg.Colors.Heading

	// Output: horizontal divider across the code column
	c.HLine(0, g.VarX, g.OutY, fg)
	c.DrawTextCentered(cfg.Fonts.Heading, headingOutput, g.VarX/2, g.OutY+g.HeadPadding, head)

	// Variables: vertical divider over the full height
	c.VLine(g.VarX, 0, h, fg)
	varCenterX := g.VarX + (w-g.VarX)/2
	c.DrawTextCentered(cfg.Fonts.Heading, headingLastVar, varCenterX, g.HeadPadding, head)

	// Other variables: horizontal divider across the variable column
	c.HLine(g.VarX, w, g.OtherVarY, fg)
	c.DrawTextCentered(cfg.Fonts.Heading, headingOtherVars, varCenterX, g.OtherVarY+g.HeadPadding, head)
}

// drawCodeLines draws the windowed code lines, highlighting flagged rows
// across the code column.
func drawCodeLines(c *Canvas, cfg *Config, m *Metrics, lines []DisplayLine) {
	x := m.Code.Origin.X
	xMax := cfg.VarX - cfg.SectPadding

	for i, line := range lines {
		top := m.Code.RowTop(i, m.LineHeight)
		if line.Highlighted {
			c.FillRect(x, top, xMax, top+m.LineHeight, cfg.Colors.Highlight)
		}
		c.DrawText(cfg.Fonts.Body, line.Text, x, top, cfg.Colors.Body)
	}
}

// drawTextBlock draws lines top to bottom, one per row of s.
func drawTextBlock(c *Canvas, cfg *Config, m *Metrics, s Section, lines []string) {
	for i, line := range lines {
		c.DrawText(cfg.Fonts.Body, line, s.Origin.X, s.RowTop(i, m.LineHeight), cfg.Colors.Body)
	}
}

// drawExecCaption draws caption under the code lines.
func drawExecCaption(c *Canvas, cfg *Config, m *Metrics, caption string) {
	c.DrawText(cfg.Fonts.Caption, caption, m.Code.Origin.X, m.CaptionY, cfg.Colors.Body)
}

// drawWatermark draws the watermark inset from the bottom-right corner.
func drawWatermark(c *Canvas, cfg *Config) {
	w, h := cfg.Fonts.Caption.Measure(watermarkText)
	x := float64(cfg.Width) - cfg.SectPadding - w
	y := float64(cfg.Height) - cfg.SectPadding - h
	c.DrawText(cfg.Fonts.Caption, watermarkText, x, y, cfg.Colors.Watermark)
}

// drawIntro draws the intro title centered on the canvas.
func drawIntro(c *Canvas, cfg *Config) {
	cx, cy := float64(cfg.Width)/2, float64(cfg.Height)/2
	c.DrawTextCentered(cfg.Fonts.Intro, cfg.IntroText, cx, cy, cfg.Colors.Heading)
}

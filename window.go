package vidframe

import (
	"math"

	"github.com/vardbg/vidframe/text"
)

// CodeSnapshot is the program source at one point of execution.
type CodeSnapshot struct {
	Lines []string
	// Current is the 1-indexed line being executed.
	Current int
}

// DisplayLine is a wrapped segment of a source line.
type DisplayLine struct {
	Text        string
	Highlighted bool
}

// WrapLines wraps every line to cols columns. Segments inherit the
// highlighted flag of their source line, and a line with no visible text still
// yields one empty DisplayLine so rows keep corresponding to source lines.
//
// The returned index is the position of the first segment of the line at
// current (0-indexed), or len(wrapped) if current is out of range.
func WrapLines(lines []string, current, cols int) (wrapped []DisplayLine, currentIdx int) {
	wrapped = make([]DisplayLine, 0, len(lines))
	currentIdx = -1

	for i, line := range lines {
		highlighted := i == current
		if highlighted {
			currentIdx = len(wrapped)
		}

		segs := text.Wrap(line, cols)
		if len(segs) == 0 {
			wrapped = append(wrapped, DisplayLine{Highlighted: highlighted})
			continue
		}
		for _, seg := range segs {
			wrapped = append(wrapped, DisplayLine{Text: seg, Highlighted: highlighted})
		}
	}

	if currentIdx < 0 {
		currentIdx = len(wrapped)
	}
	return wrapped, currentIdx
}

// WindowBounds selects the half-open range [start, end) of n display lines
// to show in rows rows around index current.
//
// The window requests rows lines starting rows/2 - 1 lines before current
// (rounded half to even). A start before the first line shifts the whole
// window right instead of shrinking it; a window running past the last line
// is simply cut short. If all n lines fit, all are shown. A current index past
// the end is treated as the last line.
func WindowBounds(n, current, rows int) (start, end int) {
	if n <= 0 || rows <= 0 {
		return 0, 0
	}
	if n <= rows {
		return 0, n
	}
	current = min(max(current, 0), n-1)

	ctx := float64(rows)/2 - 1
	start = int(math.RoundToEven(float64(current) - ctx))
	start = min(max(start, 0), current)

	return start, min(start+rows, n)
}

// WrapAndWindow wraps lines to cols columns and returns the display window
// of at most rows lines that keeps the line at current (0-indexed) in view.
func WrapAndWindow(lines []string, current, cols, rows int) []DisplayLine {
	wrapped, idx := WrapLines(lines, current, cols)
	start, end := WindowBounds(len(wrapped), idx, rows)
	return wrapped[start:end]
}

// OutputTail returns the last rows lines of the output history, in order.
func OutputTail(lines []string, rows int) []string {
	if rows <= 0 {
		return nil
	}
	if len(lines) <= rows {
		return lines
	}
	return lines[len(lines)-rows:]
}

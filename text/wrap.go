package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// tabSize is the tab stop interval used when expanding tabs before wrapping.
const tabSize = 8

// breakClass represents the line breaking class of a rune.
type breakClass uint8

const (
	// breakOther is the default class for most characters.
	breakOther breakClass = iota
	// breakSpace is for whitespace (break before and after a run).
	breakSpace
	// breakHyphen is for hyphens inside words (break after).
	breakHyphen
)

// classifyRune returns the break class of a rune.
func classifyRune(r rune) breakClass {
	switch {
	case r == ' ':
		return breakSpace
	case r == '-' || r == '‐':
		return breakHyphen
	default:
		return breakOther
	}
}

// RuneColumns returns the number of monospace columns r occupies:
// 2 for East Asian wide and fullwidth runes, 1 otherwise.
func RuneColumns(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// Columns returns the number of monospace columns s occupies.
func Columns(s string) int {
	n := 0
	for _, r := range s {
		n += RuneColumns(r)
	}
	return n
}

// wrapTextInfo contains information for line wrapping decisions.
type wrapTextInfo struct {
	runes   []rune
	classes []breakClass
}

func newWrapTextInfo(s string) *wrapTextInfo {
	runes := []rune(s)
	classes := make([]breakClass, len(runes))
	for i, r := range runes {
		classes[i] = classifyRune(r)
	}
	return &wrapTextInfo{runes: runes, classes: classes}
}

// canBreakAt returns whether a break is allowed before rune index i.
// Breaks are allowed at either edge of a whitespace run and after a hyphen
// that joins two alphanumeric runes.
func (w *wrapTextInfo) canBreakAt(i int) bool {
	if i <= 0 || i >= len(w.runes) {
		return false
	}
	prev, curr := w.classes[i-1], w.classes[i]
	if (prev == breakSpace) != (curr == breakSpace) {
		return true
	}
	if prev == breakHyphen && i >= 2 && isWordRune(w.runes[i-2]) && isWordRune(w.runes[i]) {
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Wrap greedily wraps a single line of text to at most cols monospace columns.
//
// Tabs are expanded to the next multiple of 8 columns and any other whitespace
// becomes a plain space. Leading indentation of the first segment is kept;
// whitespace at the edges of every other break is dropped. Words longer than
// cols are split at the column limit.
//
// A line with no visible characters wraps to zero segments (nil).
// If cols is not positive the normalized line is returned unwrapped.
func Wrap(s string, cols int) []string {
	s = normalizeWhitespace(s)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if cols <= 0 {
		return []string{strings.TrimRight(s, " ")}
	}

	w := newWrapTextInfo(s)
	segments := make([]string, 0, 2)
	lineStart := 0

	for lineStart < len(w.runes) {
		lineEnd := findLineEnd(w, lineStart, cols)

		seg := strings.TrimRight(string(w.runes[lineStart:lineEnd]), " ")
		if seg != "" {
			segments = append(segments, seg)
		}

		// Skip the whitespace run at the break
		lineStart = lineEnd
		for lineStart < len(w.runes) && w.classes[lineStart] == breakSpace {
			lineStart++
		}
	}

	return segments
}

// findLineEnd finds the end rune index for a line starting at lineStart.
func findLineEnd(w *wrapTextInfo, lineStart, cols int) int {
	used := 0
	lastBreakPoint := -1

	for i := lineStart; i < len(w.runes); i++ {
		if w.canBreakAt(i) {
			lastBreakPoint = i
		}

		used += RuneColumns(w.runes[i])
		if used > cols && i > lineStart {
			if lastBreakPoint > lineStart {
				return lastBreakPoint
			}
			// Fall back to a character break inside a long word
			return i
		}
	}

	return len(w.runes)
}

// normalizeWhitespace expands tabs and replaces the remaining whitespace
// runes with spaces.
func normalizeWhitespace(s string) string {
	if !strings.ContainsFunc(s, unicode.IsSpace) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	col := 0
	for _, r := range s {
		switch {
		case r == '\t':
			n := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case unicode.IsSpace(r):
			b.WriteByte(' ')
			col++
		default:
			b.WriteRune(r)
			col += RuneColumns(r)
		}
	}
	return b.String()
}

// Package terminal reports the size of the attached terminal so board
// renderers can decide how wide a cell may be drawn.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if stdout is not a terminal.
func GetSize() (width, height int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// CellSpan returns how many columns each board cell may take so that a
// board with cols cells fits the terminal width. The result is clamped to
// [min, max].
func CellSpan(cols, min, max int) int {
	width, _ := GetSize()
	return SpanFor(width, cols, min, max)
}

// SpanFor is CellSpan for an explicit terminal width.
func SpanFor(width, cols, min, max int) int {
	if cols <= 0 {
		return max
	}
	span := width / cols
	if span < min {
		return min
	}
	if span > max {
		return max
	}
	return span
}

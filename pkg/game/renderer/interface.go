package renderer

import (
	"io"

	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/materialize"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleEmpty
	StyleCell
	StylePositive
	StyleNegative
	StyleConnector
	StyleSelected
	StylePlayer
	StyleItem
	StyleAction
	StyleDenied
	StyleSubtle
	StyleHeading
)

// Frame is what a renderer draws: the board plus the optional overlays a
// game layers on top of it.
type Frame struct {
	Board    *materialize.Board
	Player   *materialize.Node // may be nil
	Selected *materialize.Node // highlighted link target, may be nil
}

// Renderer defines the interface for board rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// RenderFrame writes one complete frame of the board to w
	RenderFrame(w io.Writer, f Frame) error

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// StyleForCell returns the style used to draw a cell of type t
func StyleForCell(t world.CellType) TextStyle {
	switch t {
	case world.Empty:
		return StyleEmpty
	case world.Positive:
		return StylePositive
	case world.Negative:
		return StyleNegative
	default:
		return StyleCell
	}
}

package tui

import (
	"strings"

	"boardmap/pkg/game/renderer"
)

type glyph struct {
	r     rune
	style renderer.TextStyle
}

// canvas is a fixed-size grid of styled runes.
type canvas struct {
	width  int
	height int
	cells  [][]glyph
}

func newCanvas(width, height int) *canvas {
	cv := &canvas{width: width, height: height, cells: make([][]glyph, height)}
	for y := range cv.cells {
		row := make([]glyph, width)
		for x := range row {
			row[x] = glyph{r: ' '}
		}
		cv.cells[y] = row
	}
	return cv
}

// set writes r at (x, y); out-of-bounds writes are dropped. Crossing
// diagonals merge into a cross.
func (cv *canvas) set(x, y int, r rune, style renderer.TextStyle) {
	if x < 0 || y < 0 || x >= cv.width || y >= cv.height {
		return
	}
	prev := cv.cells[y][x].r
	if (prev == LineDiagDown && r == LineDiagUp) || (prev == LineDiagUp && r == LineDiagDown) {
		r = LineDiagCross
	}
	cv.cells[y][x] = glyph{r: r, style: style}
}

// render styles runs of equal style and trims trailing blanks per line.
func (cv *canvas) render(t *TUIRenderer) string {
	var sb strings.Builder
	for _, row := range cv.cells {
		last := len(row) - 1
		for last >= 0 && row[last].r == ' ' {
			last--
		}
		var run strings.Builder
		runStyle := renderer.StyleNormal
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(t.StyleText(run.String(), runStyle))
				run.Reset()
			}
		}
		for x := 0; x <= last; x++ {
			g := row[x]
			style := g.style
			if g.r == ' ' {
				style = renderer.StyleNormal
			}
			if style != runStyle {
				flush()
				runStyle = style
			}
			run.WriteRune(g.r)
		}
		flush()
		sb.WriteByte('\n')
	}
	return sb.String()
}

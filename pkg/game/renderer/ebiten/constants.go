// Package ebiten draws boards in a window using Ebiten.
package ebiten

import (
	"image/color"

	"boardmap/pkg/engine/world"
)

// Color palette
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorEmpty      = color.RGBA{60, 60, 80, 255}    // Holes
	colorNormal     = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorPositive   = color.RGBA{100, 255, 150, 255} // Green
	colorNegative   = color.RGBA{255, 100, 100, 255} // Red
	colorConnector  = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorOneWay     = color.RGBA{255, 220, 100, 255} // Yellow
	colorPlayer     = color.RGBA{0, 255, 0, 255}     // Bright green
	colorText       = color.RGBA{200, 210, 245, 255}
	colorSubtle     = color.RGBA{120, 130, 180, 255}
)

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600

	baseFontSize = 14.0

	margin        = 48.0 // pixels around the board
	nodeRadius    = 0.18 // in layout units
	connectorWide = 2.0  // pixels
	arrowSize     = 0.12 // in layout units
)

func cellColor(t world.CellType) color.Color {
	switch t {
	case world.Normal:
		return colorNormal
	case world.Positive:
		return colorPositive
	case world.Negative:
		return colorNegative
	default:
		return colorEmpty
	}
}

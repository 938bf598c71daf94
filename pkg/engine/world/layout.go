package world

import (
	"fmt"

	"github.com/pkg/errors"
)

// Vec2 is a position in world space. Y grows upward.
type Vec2 struct {
	X float64
	Y float64
}

// Midpoint returns the point halfway between v and o
func (v Vec2) Midpoint(o Vec2) Vec2 {
	return Vec2{X: (v.X + o.X) / 2.0, Y: (v.Y + o.Y) / 2.0}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Layout computes world positions for grid cells.
//
// The step along each axis is 1+Padding per cell; CellWidth and CellHeight
// only enter the centering offset. Row 0 and column 0 take the plain index
// instead of the padded, sign-flipped one.
type Layout struct {
	Dims       Dims
	CellWidth  float64
	CellHeight float64
	Padding    float64
}

// DefaultLayout returns a layout with unit cells and unit padding.
func DefaultLayout(d Dims) Layout {
	return Layout{Dims: d, CellWidth: 1, CellHeight: 1, Padding: 1}
}

// Validate checks that the layout has positive dims and non-negative sizes
func (l Layout) Validate() error {
	if l.Dims.Rows <= 0 || l.Dims.Cols <= 0 {
		return errors.Errorf("world: layout dimensions must be positive, got %dx%d", l.Dims.Rows, l.Dims.Cols)
	}
	if l.CellWidth < 0 || l.CellHeight < 0 || l.Padding < 0 {
		return errors.Errorf("world: layout sizes must not be negative (width=%v height=%v padding=%v)",
			l.CellWidth, l.CellHeight, l.Padding)
	}
	return nil
}

// Offset returns the total span of the grid per axis, (count-1)*(size+padding).
// Positions are shifted by half of it to center the board on the origin.
func (l Layout) Offset() Vec2 {
	return Vec2{
		X: float64(l.Dims.Cols-1) * (l.CellWidth + l.Padding),
		Y: float64(l.Dims.Rows-1) * (l.CellHeight + l.Padding),
	}
}

// Position returns the centered world position of the cell at c.
func (l Layout) Position(c Coord) (Vec2, error) {
	if !l.Dims.IsValidPosition(c) {
		return Vec2{}, &IndexError{Index: c.Row*l.Dims.Cols + c.Col, Size: l.Dims.Size()}
	}
	raw := l.rawPosition(c)
	offset := l.Offset()
	return Vec2{X: raw.X - offset.X/2.0, Y: raw.Y + offset.Y/2.0}, nil
}

func (l Layout) rawPosition(c Coord) Vec2 {
	var p Vec2
	if c.Col != 0 {
		p.X = float64(c.Col) + float64(c.Col)*l.Padding
	} else {
		p.X = float64(c.Col)
	}
	if c.Row != 0 {
		p.Y = -(float64(c.Row) + float64(c.Row)*l.Padding)
	} else {
		p.Y = float64(c.Row)
	}
	return p
}

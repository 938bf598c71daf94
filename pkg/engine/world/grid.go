// Package world provides generic 2D grid primitives for board maps:
// coordinates, flat indices, cell types and world-space layout.
package world

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is the sentinel matched by every IndexError.
var ErrIndexOutOfRange = errors.New("world: index out of range")

// IndexError reports a flat index or coordinate outside the grid.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("world: index %d out of range [0, %d)", e.Index, e.Size)
}

// Is lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// Coord is a grid position. Rows grow downward in map descriptions.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

// Dims holds the row and column counts of a grid.
type Dims struct {
	Rows int
	Cols int
}

// NewDims returns grid dimensions, rejecting non-positive counts and grids
// whose cell count does not fit in an int.
func NewDims(rows, cols int) (Dims, error) {
	if rows <= 0 || cols <= 0 {
		return Dims{}, errors.Errorf("world: grid dimensions must be positive, got %dx%d", rows, cols)
	}
	if rows > math.MaxInt/cols {
		return Dims{}, errors.Errorf("world: grid %dx%d has too many cells", rows, cols)
	}
	return Dims{Rows: rows, Cols: cols}, nil
}

// Size returns the number of cells in the grid
func (d Dims) Size() int {
	return d.Rows * d.Cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (d Dims) IsValidPosition(c Coord) bool {
	return c.Row >= 0 && c.Row < d.Rows && c.Col >= 0 && c.Col < d.Cols
}

// IsValidIndex checks if a flat index is within grid bounds
func (d Dims) IsValidIndex(i int) bool {
	return i >= 0 && i < d.Size()
}

// Index converts a coordinate to its flat index (row*cols + col).
func (d Dims) Index(c Coord) (int, error) {
	if !d.IsValidPosition(c) {
		return 0, &IndexError{Index: c.Row*d.Cols + c.Col, Size: d.Size()}
	}
	return c.Row*d.Cols + c.Col, nil
}

// Coord converts a flat index back to its coordinate.
func (d Dims) Coord(i int) (Coord, error) {
	if !d.IsValidIndex(i) {
		return Coord{}, &IndexError{Index: i, Size: d.Size()}
	}
	return Coord{Row: i / d.Cols, Col: i % d.Cols}, nil
}

// CheckIndex returns an IndexError when i is outside the grid.
func (d Dims) CheckIndex(i int) error {
	if !d.IsValidIndex(i) {
		return &IndexError{Index: i, Size: d.Size()}
	}
	return nil
}

// ForEachCoord visits every coordinate in row-major order
func (d Dims) ForEachCoord(fn func(index int, c Coord)) {
	for row := 0; row < d.Rows; row++ {
		for col := 0; col < d.Cols; col++ {
			fn(row*d.Cols+col, Coord{Row: row, Col: col})
		}
	}
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (d Dims) IsOnPerimeter(c Coord) bool {
	return d.IsValidPosition(c) &&
		(c.Row == 0 || c.Col == 0 || c.Row == d.Rows-1 || c.Col == d.Cols-1)
}

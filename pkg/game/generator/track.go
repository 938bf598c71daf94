package generator

import (
	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/mapdesc"
)

// TrackGenerator builds a classic board-game loop around the perimeter of
// the grid. The interior is empty. Every bonusEvery-th step is a bonus cell
// and every penaltyEvery-th step a penalty cell.
type TrackGenerator struct{}

// Name returns the name of this generator
func (g *TrackGenerator) Name() string {
	return "track"
}

// Generate creates a track whose size grows with level
func (g *TrackGenerator) Generate(level int) *mapdesc.Description {
	if level < 1 {
		level = 1
	}
	rows := 3 + level
	cols := 4 + level
	b := newBuilder(rows, cols)

	path := perimeter(b.dims)
	bonusEvery := 3
	penaltyEvery := 5 + level%3
	for step, c := range path {
		t := world.Normal
		switch {
		case step == 0: // start stays normal
		case step%penaltyEvery == 0:
			t = world.Negative
		case step%bonusEvery == 0:
			t = world.Positive
		}
		b.set(c, t)
	}
	for i := range path {
		b.linkBoth(path[i], path[(i+1)%len(path)])
	}
	return b.description()
}

// perimeter returns the border cells clockwise from the top-left corner.
func perimeter(d world.Dims) []world.Coord {
	var out []world.Coord
	for col := 0; col < d.Cols; col++ {
		out = append(out, world.Coord{Row: 0, Col: col})
	}
	for row := 1; row < d.Rows; row++ {
		out = append(out, world.Coord{Row: row, Col: d.Cols - 1})
	}
	for col := d.Cols - 2; col >= 0; col-- {
		out = append(out, world.Coord{Row: d.Rows - 1, Col: col})
	}
	for row := d.Rows - 2; row > 0; row-- {
		out = append(out, world.Coord{Row: row, Col: 0})
	}
	return out
}

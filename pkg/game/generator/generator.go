// Package generator produces map descriptions procedurally. Every generator
// emits a description that round-trips through mapdesc.Parse.
package generator

import (
	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/mapdesc"
)

// MapGenerator is an interface for map generation algorithms
type MapGenerator interface {
	Generate(level int) *mapdesc.Description
	Name() string
}

// Available generators
var (
	Lattice    = &LatticeGenerator{}
	Track      = &TrackGenerator{}
	LineWalker = &LineWalkerGenerator{Seed: 1}
)

// DefaultGenerator is the default map generator
var DefaultGenerator MapGenerator = Track

// ByName returns the generator with the given name.
func ByName(name string) (MapGenerator, bool) {
	for _, g := range []MapGenerator{Lattice, Track, LineWalker} {
		if g.Name() == name {
			return g, true
		}
	}
	return nil, false
}

// builder accumulates cell types and links before emitting a description.
type builder struct {
	dims  world.Dims
	types []world.CellType
	links [][]int
}

func newBuilder(rows, cols int) *builder {
	d := world.Dims{Rows: rows, Cols: cols}
	return &builder{
		dims:  d,
		types: make([]world.CellType, d.Size()),
		links: make([][]int, d.Size()),
	}
}

func (b *builder) set(c world.Coord, t world.CellType) {
	if i, err := b.dims.Index(c); err == nil {
		b.types[i] = t
	}
}

func (b *builder) typeAt(c world.Coord) world.CellType {
	i, err := b.dims.Index(c)
	if err != nil {
		return world.Empty
	}
	return b.types[i]
}

// linkBoth declares the edge in both directions.
func (b *builder) linkBoth(a, c world.Coord) {
	ai, err := b.dims.Index(a)
	if err != nil {
		return
	}
	ci, err := b.dims.Index(c)
	if err != nil {
		return
	}
	b.links[ai] = append(b.links[ai], ci)
	b.links[ci] = append(b.links[ci], ai)
}

// linkOrthogonal links every pair of non-empty cells that share a side.
func (b *builder) linkOrthogonal() {
	b.dims.ForEachCoord(func(_ int, c world.Coord) {
		if b.typeAt(c).IsEmpty() {
			return
		}
		for _, dir := range []world.Direction{world.East, world.South} {
			next := c.Step(dir)
			if b.dims.IsValidPosition(next) && !b.typeAt(next).IsEmpty() {
				b.linkBoth(c, next)
			}
		}
	})
}

func (b *builder) description() *mapdesc.Description {
	desc := &mapdesc.Description{Dims: b.dims, Cells: make([]mapdesc.Cell, b.dims.Size())}
	for i, t := range b.types {
		cell := mapdesc.Cell{Type: t, Line: i + 2}
		if !t.IsEmpty() {
			cell.Neighbors = b.links[i]
		}
		desc.Cells[i] = cell
	}
	return desc
}

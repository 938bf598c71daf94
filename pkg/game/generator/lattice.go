package generator

import (
	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/mapdesc"
)

// LatticeGenerator fills the whole grid with Normal cells linked to their
// four side neighbours.
type LatticeGenerator struct{}

// Name returns the name of this generator
func (g *LatticeGenerator) Name() string {
	return "lattice"
}

// Generate creates a (2+level) x (3+level) lattice
func (g *LatticeGenerator) Generate(level int) *mapdesc.Description {
	if level < 1 {
		level = 1
	}
	b := newBuilder(2+level, 3+level)
	b.dims.ForEachCoord(func(_ int, c world.Coord) {
		b.set(c, world.Normal)
	})
	b.linkOrthogonal()
	return b.description()
}

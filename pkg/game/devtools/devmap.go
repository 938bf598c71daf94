package devtools

import (
	"fmt"

	"boardmap/pkg/game/mapdesc"
)

// devMapSource is a hand-written 3x5 testing map with every cell type and
// every kind of link the renderers draw:
//
//	row 0: normal, bonus, penalty, hole, normal
//	row 1: a vertical pair, the 6 -> 12 and 7 -> 11 diagonals that cross,
//	       and the one-way link 8 -> 9
//	row 2: a penalty cell, and 14 linked back to 4 across the board
//
// 4 -> 3 points into a hole and 4 <-> 14 joins distant cells.
const devMapSource = `3,5
NormalCell,1,5
PosiCell,0,2,6
NegaCell,1
NullCell
NormalCell,3,14
NormalCell,0,6
NormalCell,5,1,12
NormalCell,11
NormalCell,9
PosiCell
NegaCell,11
NormalCell,10,7
NormalCell,6
NullCell
NormalCell,4
`

// DevMapGenerator always emits the developer testing map.
type DevMapGenerator struct{}

// Name returns the generator name
func (DevMapGenerator) Name() string {
	return "dev"
}

// Generate returns the testing map; the level is ignored.
func (DevMapGenerator) Generate(level int) *mapdesc.Description {
	desc, err := mapdesc.Parse(devMapSource)
	if err != nil {
		panic(fmt.Sprintf("devtools: dev map does not parse: %v", err))
	}
	return desc
}

package generator

import (
	"math/rand"

	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/mapdesc"
)

// LineWalkerGenerator carves paths by walking lines in random directions
// with a branching probability. Walked cells are linked to their side
// neighbours in both directions; everything else stays empty.
type LineWalkerGenerator struct {
	Seed int64
}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "line-walker"
}

type walk struct {
	b   *builder
	rng *rand.Rand
}

// Generate creates a new description for the given level. The same seed
// and level always give the same map.
func (g *LineWalkerGenerator) Generate(level int) *mapdesc.Description {
	if level < 1 {
		level = 1
	}
	rows := 5 + level
	cols := 7 + level*2

	w := &walk{
		b:   newBuilder(rows, cols),
		rng: rand.New(rand.NewSource(g.Seed + int64(level))),
	}

	// Scale branch probability with level
	branchProb := float32(0.25) + float32(level)*0.03
	if branchProb > 0.65 {
		branchProb = 0.65
	}
	minDist := 2 + level/4
	maxDist := 3 + level/2

	start := world.Coord{Row: rows / 2, Col: cols / 2}
	for _, dir := range []world.Direction{world.North, world.East, world.South, world.West} {
		w.line(start, dir, branchProb, minDist, maxDist)
	}

	w.sprinkle(level)
	w.b.linkOrthogonal()
	return w.b.description()
}

func (w *walk) randomDirection() world.Direction {
	return world.Direction(w.rng.Intn(4))
}

// line marks cells from c in direction dir, branching as it goes.
func (w *walk) line(c world.Coord, dir world.Direction, branchProb float32, minDist, maxDist int) {
	distance := minDist + w.rng.Intn(maxDist-minDist+1)
	for segment := 0; segment < distance; segment++ {
		w.b.set(c, world.Normal)

		next := c.Step(dir)
		if !w.b.dims.IsValidPosition(next) {
			return
		}
		if w.rng.Float32() < branchProb {
			w.line(c, w.randomDirection(), branchProb-.1, minDist, maxDist)
		}
		c = next
	}
	w.b.set(c, world.Normal)
}

// sprinkle turns some walked cells into bonus or penalty cells.
func (w *walk) sprinkle(level int) {
	penaltyChance := 0.05 + 0.02*float64(level)
	w.b.dims.ForEachCoord(func(i int, c world.Coord) {
		if w.b.types[i] != world.Normal {
			return
		}
		r := w.rng.Float64()
		switch {
		case r < penaltyChance:
			w.b.types[i] = world.Negative
		case r < penaltyChance+0.1:
			w.b.types[i] = world.Positive
		}
	})
}

// Package generator tests that every generator emits a parseable, symmetric
// description whose cells are all reachable from the first walkable cell.
package generator

import (
	"testing"

	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/graph"
	"boardmap/pkg/game/mapdesc"
)

func allGenerators() []MapGenerator {
	return []MapGenerator{Lattice, Track, LineWalker}
}

// buildGraph round-trips the description through its text form.
func buildGraph(t *testing.T, desc *mapdesc.Description) *graph.Graph {
	t.Helper()
	g, err := graph.Parse(desc.String())
	if err != nil {
		t.Fatalf("generated description does not parse: %v\n%s", err, desc.String())
	}
	return g
}

func TestGenerate_Parses(t *testing.T) {
	for _, gen := range allGenerators() {
		for level := 1; level <= 5; level++ {
			desc := gen.Generate(level)
			g := buildGraph(t, desc)
			if g.Len() != desc.Dims.Size() {
				t.Errorf("%s level %d: %d vertices, want %d", gen.Name(), level, g.Len(), desc.Dims.Size())
			}
		}
	}
}

func TestGenerate_Symmetric(t *testing.T) {
	for _, gen := range allGenerators() {
		g := buildGraph(t, gen.Generate(3))
		if oneWay := g.OneWayEdges(); len(oneWay) != 0 {
			t.Errorf("%s: one-way edges %v", gen.Name(), oneWay)
		}
		if into := g.EdgesIntoEmpty(); len(into) != 0 {
			t.Errorf("%s: edges into empty cells %v", gen.Name(), into)
		}
	}
}

func TestGenerate_Connected(t *testing.T) {
	for _, gen := range allGenerators() {
		g := buildGraph(t, gen.Generate(2))
		start := -1
		walkable := 0
		g.ForEachVertex(func(i int, v graph.Vertex) {
			if v.Type.IsEmpty() {
				return
			}
			walkable++
			if start < 0 {
				start = i
			}
		})
		if start < 0 {
			t.Fatalf("%s: no walkable cell", gen.Name())
		}
		reach, err := g.Reachable(start)
		if err != nil {
			t.Fatal(err)
		}
		if len(reach) != walkable {
			t.Errorf("%s: reached %d of %d walkable cells", gen.Name(), len(reach), walkable)
		}
	}
}

func TestLineWalker_Deterministic(t *testing.T) {
	a := (&LineWalkerGenerator{Seed: 42}).Generate(3).String()
	b := (&LineWalkerGenerator{Seed: 42}).Generate(3).String()
	if a != b {
		t.Error("LineWalker with equal seeds produced different maps")
	}
}

func TestTrack_InteriorEmpty(t *testing.T) {
	desc := Track.Generate(2)
	desc.Dims.ForEachCoord(func(i int, c world.Coord) {
		onEdge := desc.Dims.IsOnPerimeter(c)
		if empty := desc.Cells[i].Type.IsEmpty(); empty == onEdge {
			t.Errorf("cell %v: empty=%v, on perimeter=%v", c, empty, onEdge)
		}
	})
}

func TestByName(t *testing.T) {
	for _, gen := range allGenerators() {
		got, ok := ByName(gen.Name())
		if !ok || got != gen {
			t.Errorf("ByName(%q) = %v, %v", gen.Name(), got, ok)
		}
	}
	if _, ok := ByName("bsp"); ok {
		t.Error("ByName(\"bsp\") ok = true, want false")
	}
}

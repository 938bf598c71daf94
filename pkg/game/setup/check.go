package setup

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"boardmap/pkg/game/graph"
)

// Check returns human-readable warnings about a graph that is well formed
// but probably not what the map author meant. None of them stop the build.
func Check(g *graph.Graph) []string {
	var warnings []string

	for _, e := range g.OneWayEdges() {
		warnings = append(warnings, fmt.Sprintf("one-way link %d -> %d", e.From, e.To))
	}
	for _, e := range g.EdgesIntoEmpty() {
		warnings = append(warnings, fmt.Sprintf("link %d -> %d targets an empty cell", e.From, e.To))
	}

	start := -1
	walkable := mapset.New[int]()
	g.ForEachVertex(func(i int, v graph.Vertex) {
		if v.Type.IsEmpty() {
			return
		}
		walkable.Put(i)
		if start < 0 {
			start = i
		}
	})
	if start < 0 {
		return append(warnings, "map has no walkable cells")
	}

	reached, err := g.Reachable(start)
	if err != nil {
		return append(warnings, err.Error())
	}
	if len(reached) < walkable.Size() {
		seen := mapset.New[int]()
		for _, i := range reached {
			seen.Put(i)
		}
		g.ForEachVertex(func(i int, v graph.Vertex) {
			if walkable.Has(i) && !seen.Has(i) {
				warnings = append(warnings, fmt.Sprintf("cell %d is not reachable from cell %d", i, start))
			}
		})
	}
	return warnings
}

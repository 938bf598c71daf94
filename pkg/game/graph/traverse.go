package graph

import (
	"sort"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/zyedidia/generic/mapset"
)

// Edge is a directed edge between two flat indices.
type Edge struct {
	From int
	To   int
}

// Reachable returns every vertex reachable from start along directed edges,
// start included, in breadth-first order. Empty vertices are never entered.
func (g *Graph) Reachable(start int) ([]int, error) {
	v, err := g.Vertex(start)
	if err != nil {
		return nil, err
	}
	if v.Type.IsEmpty() {
		return nil, nil
	}

	visited := mapset.New[int]()
	queue := linkedlistqueue.New()
	queue.Enqueue(start)
	visited.Put(start)

	var order []int
	for !queue.Empty() {
		value, _ := queue.Dequeue()
		current := value.(int)
		order = append(order, current)

		cv := g.vertices[current]
		for _, n := range g.edges[cv.start : cv.start+cv.count] {
			if visited.Has(n) || g.vertices[n].Type.IsEmpty() {
				continue
			}
			visited.Put(n)
			queue.Enqueue(n)
		}
	}
	return order, nil
}

// Within returns the vertices reachable from start in at most steps moves,
// excluding start itself, sorted by index.
func (g *Graph) Within(start, steps int) ([]int, error) {
	if _, err := g.Vertex(start); err != nil {
		return nil, err
	}

	type item struct {
		index int
		depth int
	}
	visited := mapset.New[int]()
	visited.Put(start)
	queue := linkedlistqueue.New()
	queue.Enqueue(item{index: start})

	var out []int
	for !queue.Empty() {
		value, _ := queue.Dequeue()
		it := value.(item)
		if it.depth >= steps {
			continue
		}
		v := g.vertices[it.index]
		if v.Type.IsEmpty() {
			continue
		}
		for _, n := range g.edges[v.start : v.start+v.count] {
			if visited.Has(n) || g.vertices[n].Type.IsEmpty() {
				continue
			}
			visited.Put(n)
			out = append(out, n)
			queue.Enqueue(item{index: n, depth: it.depth + 1})
		}
	}
	sort.Ints(out)
	return out, nil
}

// OneWayEdges returns the edges whose reverse is not declared. A symmetric
// link must be written on both cells to render in both directions.
func (g *Graph) OneWayEdges() []Edge {
	declared := mapset.New[Edge]()
	g.ForEachEdge(func(from, to int) {
		declared.Put(Edge{From: from, To: to})
	})

	var out []Edge
	g.ForEachEdge(func(from, to int) {
		if !declared.Has(Edge{From: to, To: from}) {
			out = append(out, Edge{From: from, To: to})
		}
	})
	return out
}

// EdgesIntoEmpty returns edges that target an Empty vertex.
func (g *Graph) EdgesIntoEmpty() []Edge {
	var out []Edge
	g.ForEachEdge(func(from, to int) {
		if g.vertices[to].Type.IsEmpty() {
			out = append(out, Edge{From: from, To: to})
		}
	})
	return out
}

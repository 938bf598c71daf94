// Package graph holds the adjacency graph of a board map.
//
// Edges live in one contiguous arena; each vertex owns a (start, count)
// range into it. A vertex's edges appear in the reverse of the order they
// were declared in the map description. Graphs are immutable once built.
package graph

import (
	"github.com/pkg/errors"

	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/mapdesc"
)

// ErrNilDescription is returned by Build when given no description.
var ErrNilDescription = errors.New("graph: nil description")

// Vertex is one cell of the board graph.
type Vertex struct {
	Type  world.CellType
	start int
	count int
}

// Degree returns the number of outgoing edges
func (v Vertex) Degree() int {
	return v.count
}

// Graph is a directed adjacency graph over a rows x cols grid.
type Graph struct {
	dims     world.Dims
	vertices []Vertex
	edges    []int
}

// Build converts a parsed description into a graph. Empty cells get no edges
// whatever the description holds.
func Build(desc *mapdesc.Description) (*Graph, error) {
	if desc == nil {
		return nil, ErrNilDescription
	}
	if len(desc.Cells) != desc.Dims.Size() {
		return nil, errors.Wrapf(mapdesc.ErrFormat, "graph: %d cells for a %dx%d grid",
			len(desc.Cells), desc.Dims.Rows, desc.Dims.Cols)
	}

	total := 0
	for _, c := range desc.Cells {
		total += len(c.Neighbors)
	}

	g := &Graph{
		dims:     desc.Dims,
		vertices: make([]Vertex, len(desc.Cells)),
		edges:    make([]int, 0, total),
	}

	for i, c := range desc.Cells {
		v := Vertex{Type: c.Type, start: len(g.edges)}
		if !c.Type.IsEmpty() {
			for j := len(c.Neighbors) - 1; j >= 0; j-- {
				n := c.Neighbors[j]
				if err := desc.Dims.CheckIndex(n); err != nil {
					return nil, errors.Wrapf(err, "graph: vertex %d", i)
				}
				g.edges = append(g.edges, n)
			}
		}
		v.count = len(g.edges) - v.start
		g.vertices[i] = v
	}
	return g, nil
}

// Parse is mapdesc.Parse followed by Build.
func Parse(src string) (*Graph, error) {
	desc, err := mapdesc.Parse(src)
	if err != nil {
		return nil, err
	}
	return Build(desc)
}

// Dims returns the grid dimensions of the graph
func (g *Graph) Dims() world.Dims {
	return g.dims
}

// Len returns the number of vertices
func (g *Graph) Len() int {
	return len(g.vertices)
}

// EdgeCount returns the number of directed edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Vertex returns the vertex at flat index i.
func (g *Graph) Vertex(i int) (Vertex, error) {
	if err := g.dims.CheckIndex(i); err != nil {
		return Vertex{}, err
	}
	return g.vertices[i], nil
}

// Type returns the cell type of vertex i.
func (g *Graph) Type(i int) (world.CellType, error) {
	v, err := g.Vertex(i)
	if err != nil {
		return world.Empty, err
	}
	return v.Type, nil
}

// Neighbors returns a copy of the edge targets of vertex i in edge order.
func (g *Graph) Neighbors(i int) ([]int, error) {
	v, err := g.Vertex(i)
	if err != nil {
		return nil, err
	}
	out := make([]int, v.count)
	copy(out, g.edges[v.start:v.start+v.count])
	return out, nil
}

// ForEachVertex visits every vertex in index order
func (g *Graph) ForEachVertex(fn func(index int, v Vertex)) {
	for i, v := range g.vertices {
		fn(i, v)
	}
}

// ForEachEdge visits every directed edge, grouped by source vertex.
func (g *Graph) ForEachEdge(fn func(from, to int)) {
	for i, v := range g.vertices {
		for _, to := range g.edges[v.start : v.start+v.count] {
			fn(i, to)
		}
	}
}

// HasEdge reports whether the directed edge from -> to exists.
func (g *Graph) HasEdge(from, to int) bool {
	if !g.dims.IsValidIndex(from) {
		return false
	}
	v := g.vertices[from]
	for _, n := range g.edges[v.start : v.start+v.count] {
		if n == to {
			return true
		}
	}
	return false
}

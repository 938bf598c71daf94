package materialize

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/graph"
)

// Node is the positioned board object for one grid cell.
type Node struct {
	Coord    world.Coord
	Index    int
	Type     world.CellType
	Position world.Vec2

	neighbors []*Node
}

// Name returns the node name, "cell <row> <col>".
func (n *Node) Name() string {
	return fmt.Sprintf("cell %d %d", n.Coord.Row, n.Coord.Col)
}

// Neighbors returns the resolved neighbour nodes in edge order.
func (n *Node) Neighbors() []*Node {
	if n == nil {
		return nil
	}
	out := make([]*Node, len(n.neighbors))
	copy(out, n.neighbors)
	return out
}

// HasNeighbor reports whether other is in n's resolved neighbour list.
func (n *Node) HasNeighbor(other *Node) bool {
	if n == nil {
		return false
	}
	for _, nb := range n.neighbors {
		if nb == other {
			return true
		}
	}
	return false
}

// Connector is the visual link for one directed edge.
type Connector struct {
	From     *Node
	To       *Node
	Midpoint world.Vec2
}

// Name returns the connector name, "edge <from> <to>".
func (c *Connector) Name() string {
	return fmt.Sprintf("edge %d %d", c.From.Index, c.To.Index)
}

// Segment is an undirected pair of node indices, A < B.
type Segment struct {
	A int
	B int
}

// Board is the materialized map: one node per grid cell and one connector
// per directed edge.
type Board struct {
	graph      *graph.Graph
	layout     world.Layout
	nodes      []*Node
	connectors []*Connector
}

// Dims returns the grid dimensions of the board
func (b *Board) Dims() world.Dims {
	return b.layout.Dims
}

// Graph returns the graph the board was materialized from
func (b *Board) Graph() *graph.Graph {
	return b.graph
}

// Layout returns the layout the board was positioned with
func (b *Board) Layout() world.Layout {
	return b.layout
}

// NodeAt returns the node at flat index i.
func (b *Board) NodeAt(i int) (*Node, error) {
	if err := b.layout.Dims.CheckIndex(i); err != nil {
		return nil, err
	}
	return b.nodes[i], nil
}

// Node returns the node at coordinate c.
func (b *Board) Node(c world.Coord) (*Node, error) {
	i, err := b.layout.Dims.Index(c)
	if err != nil {
		return nil, err
	}
	return b.nodes[i], nil
}

// Nodes returns all nodes in row-major order
func (b *Board) Nodes() []*Node {
	out := make([]*Node, len(b.nodes))
	copy(out, b.nodes)
	return out
}

// Connectors returns all connectors in creation order
func (b *Board) Connectors() []*Connector {
	out := make([]*Connector, len(b.connectors))
	copy(out, b.connectors)
	return out
}

// ForEachNode iterates over all nodes in row-major order
func (b *Board) ForEachNode(fn func(n *Node)) {
	for _, n := range b.nodes {
		fn(n)
	}
}

// Segments returns the distinct undirected links drawn by the connectors,
// in first-seen order. A pair declared in both directions yields one segment.
func (b *Board) Segments() []Segment {
	seen := mapset.New[Segment]()
	var out []Segment
	for _, c := range b.connectors {
		s := Segment{A: c.From.Index, B: c.To.Index}
		if s.A > s.B {
			s.A, s.B = s.B, s.A
		}
		if seen.Has(s) {
			continue
		}
		seen.Put(s)
		out = append(out, s)
	}
	return out
}

// CountByType returns how many nodes carry each cell type
func (b *Board) CountByType() map[world.CellType]int {
	counts := make(map[world.CellType]int)
	for _, n := range b.nodes {
		counts[n.Type]++
	}
	return counts
}

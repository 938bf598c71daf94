// Package materialize turns an adjacency graph into a board of positioned
// nodes and connectors.
//
// Materialization runs in two passes. The first creates a node for every
// grid cell, Empty ones included. The second walks the edges of every
// non-Empty vertex, creating a connector per edge and recording the target
// on the source node's neighbour list. Connectors are only created once all
// nodes exist. Reverse edges are not deduplicated.
package materialize

import (
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/graph"
)

// ErrDimsMismatch is returned when the layout and graph disagree on size.
var ErrDimsMismatch = errors.New("materialize: layout and graph dimensions differ")

// Sink receives every node and connector as it is created, in creation
// order. Presentation backends implement it; a sink error aborts
// materialization.
type Sink interface {
	CreateNode(n *Node) error
	CreateConnector(c *Connector) error
}

// Materializer builds boards with a fixed layout.
type Materializer struct {
	layout world.Layout
	sink   Sink
	logger *log.Logger
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithSink forwards created nodes and connectors to s.
func WithSink(s Sink) Option {
	return func(m *Materializer) {
		m.sink = s
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(m *Materializer) {
		m.logger = l
	}
}

// New creates a materializer for the given layout
func New(layout world.Layout, opts ...Option) *Materializer {
	m := &Materializer{layout: layout}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Materialize builds the board for g. On error no board is returned.
func (m *Materializer) Materialize(g *graph.Graph) (*Board, error) {
	if g == nil {
		return nil, errors.New("materialize: nil graph")
	}
	if err := m.layout.Validate(); err != nil {
		return nil, err
	}
	if g.Dims() != m.layout.Dims {
		return nil, errors.Wrapf(ErrDimsMismatch, "layout %dx%d, graph %dx%d",
			m.layout.Dims.Rows, m.layout.Dims.Cols, g.Dims().Rows, g.Dims().Cols)
	}

	b := &Board{
		graph:      g,
		layout:     m.layout,
		nodes:      make([]*Node, g.Len()),
		connectors: make([]*Connector, 0, g.EdgeCount()),
	}

	if err := m.createNodes(g, b); err != nil {
		return nil, err
	}
	if err := m.createConnectors(g, b); err != nil {
		return nil, err
	}

	if m.logger != nil {
		m.logger.Debug("board materialized",
			"rows", b.Dims().Rows, "cols", b.Dims().Cols,
			"nodes", len(b.nodes), "connectors", len(b.connectors))
	}
	return b, nil
}

func (m *Materializer) createNodes(g *graph.Graph, b *Board) error {
	d := m.layout.Dims
	for row := 0; row < d.Rows; row++ {
		for col := 0; col < d.Cols; col++ {
			c := world.Coord{Row: row, Col: col}
			index := row*d.Cols + col
			cellType, err := g.Type(index)
			if err != nil {
				return err
			}
			pos, err := m.layout.Position(c)
			if err != nil {
				return err
			}
			n := &Node{Coord: c, Index: index, Type: cellType, Position: pos}
			b.nodes[index] = n
			if m.sink != nil {
				if err := m.sink.CreateNode(n); err != nil {
					return errors.Wrapf(err, "materialize: create %s", n.Name())
				}
			}
		}
	}
	return nil
}

func (m *Materializer) createConnectors(g *graph.Graph, b *Board) error {
	for _, from := range b.nodes {
		if from.Type.IsEmpty() {
			continue
		}
		targets, err := g.Neighbors(from.Index)
		if err != nil {
			return err
		}
		neighbors := make([]*Node, 0, len(targets))
		for _, t := range targets {
			to, err := b.NodeAt(t)
			if err != nil {
				return errors.Wrapf(err, "materialize: edge %d %d", from.Index, t)
			}
			c := &Connector{
				From:     from,
				To:       to,
				Midpoint: from.Position.Midpoint(to.Position),
			}
			if m.sink != nil {
				if err := m.sink.CreateConnector(c); err != nil {
					return errors.Wrapf(err, "materialize: create %s", c.Name())
				}
			}
			b.connectors = append(b.connectors, c)
			neighbors = append(neighbors, to)
		}
		from.neighbors = neighbors
	}
	return nil
}

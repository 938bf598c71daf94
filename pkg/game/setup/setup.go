// Package setup runs the map initialization sequence: parse the description,
// build the graph, compute the layout and materialize the board.
package setup

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/config"
	"boardmap/pkg/game/graph"
	"boardmap/pkg/game/mapdesc"
	"boardmap/pkg/game/materialize"
)

// Map is everything produced by the initialization sequence.
type Map struct {
	Description *mapdesc.Description
	Graph       *graph.Graph
	Board       *materialize.Board
	Warnings    []string
}

// Options controls how a map is built.
type Options struct {
	Layout *config.Layout // nil means unit cells with unit padding
	Sink   materialize.Sink
	Logger *log.Logger
}

// OptionsFromConfig copies the layout settings out of cfg.
func OptionsFromConfig(cfg *config.Config, logger *log.Logger) Options {
	return Options{Layout: cfg.Layout, Logger: logger}
}

func (o Options) layout(d world.Dims) world.Layout {
	l := world.DefaultLayout(d)
	if o.Layout != nil {
		l.CellWidth = o.Layout.CellWidth
		l.CellHeight = o.Layout.CellHeight
		l.Padding = o.Layout.Padding
	}
	return l
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// Build runs parse -> graph -> layout -> materialize on src. Any error is
// fatal; no partial map is returned.
func Build(src string, opts Options) (*Map, error) {
	logger := opts.logger()

	desc, err := mapdesc.Parse(src)
	if err != nil {
		logger.Error("map description rejected", "err", err)
		return nil, err
	}
	logger.Debug("map description parsed", "rows", desc.Dims.Rows, "cols", desc.Dims.Cols)

	return FromDescription(desc, opts)
}

// FromDescription runs the sequence on an already parsed description.
func FromDescription(desc *mapdesc.Description, opts Options) (*Map, error) {
	logger := opts.logger()

	g, err := graph.Build(desc)
	if err != nil {
		return nil, errors.Wrap(err, "setup: build graph")
	}
	logger.Debug("graph built", "vertices", g.Len(), "edges", g.EdgeCount())

	layout := opts.layout(g.Dims())
	m := materialize.New(layout, materialize.WithSink(opts.Sink), materialize.WithLogger(logger))
	board, err := m.Materialize(g)
	if err != nil {
		return nil, errors.Wrap(err, "setup: materialize")
	}

	out := &Map{Description: desc, Graph: g, Board: board}
	out.Warnings = Check(g)
	for _, w := range out.Warnings {
		logger.Warn(w)
	}
	logger.Info("map ready",
		"rows", g.Dims().Rows, "cols", g.Dims().Cols,
		"edges", g.EdgeCount(), "segments", len(board.Segments()))
	return out, nil
}

// LoadFile reads and builds the map at path.
func LoadFile(path string, opts Options) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "setup: read map %s", path)
	}
	m, err := Build(string(data), opts)
	if err != nil {
		return nil, errors.Wrapf(err, "setup: %s", path)
	}
	return m, nil
}

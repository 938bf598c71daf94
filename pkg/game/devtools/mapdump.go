// Package devtools provides developer tools for testing and debugging maps.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/materialize"
	"boardmap/pkg/game/setup"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell type.
func cellSymbol(t world.CellType) rune {
	switch t {
	case world.Normal:
		return 'o'
	case world.Positive:
		return '+'
	case world.Negative:
		return '-'
	default:
		return '#'
	}
}

// writeMapGrid writes the symbol grid with an optional player overlay.
func writeMapGrid(w io.Writer, b *materialize.Board, player *materialize.Node) {
	d := b.Dims()
	for row := 0; row < d.Rows; row++ {
		for col := 0; col < d.Cols; col++ {
			n, err := b.Node(world.Coord{Row: row, Col: col})
			switch {
			case err != nil:
				fmt.Fprint(w, "?")
			case player != nil && n == player:
				fmt.Fprint(w, "@")
			default:
				fmt.Fprintf(w, "%c", cellSymbol(n.Type))
			}
		}
		fmt.Fprintln(w)
	}
}

func indices(nodes []*materialize.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = fmt.Sprint(n.Index)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// DumpBoard writes a full debug dump of m: metadata, legend, symbol grid,
// vertices with their neighbours, connectors and build warnings. The format
// is sectioned key: value text so it diffs well.
func DumpBoard(w io.Writer, m *setup.Map, player *materialize.Node) error {
	if m == nil || m.Board == nil {
		return errors.New("devtools: no board")
	}
	b := m.Board
	d := b.Dims()
	l := b.Layout()
	off := l.Offset()
	counts := b.CountByType()

	playerIndex := -1
	if player != nil {
		playerIndex = player.Index
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (graph, layout, connectors) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_rows: %d\n", d.Rows)
	fmt.Fprintf(w, "grid_cols: %d\n", d.Cols)
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, index = row*cols + col)\n")
	fmt.Fprintf(w, "cell_width: %g\n", l.CellWidth)
	fmt.Fprintf(w, "cell_height: %g\n", l.CellHeight)
	fmt.Fprintf(w, "padding: %g\n", l.Padding)
	fmt.Fprintf(w, "offset: %s\n", off)
	fmt.Fprintf(w, "edges: %d\n", len(b.Connectors()))
	fmt.Fprintf(w, "segments: %d\n", len(b.Segments()))
	for _, t := range world.AllCellTypes() {
		fmt.Fprintf(w, "cells_%s: %d\n", t.Label(), counts[t])
	}
	fmt.Fprintf(w, "player_index: %d\n", playerIndex)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, "# = NullCell  o = NormalCell  + = PosiCell  - = NegaCell  @ = player")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, b, player)
	fmt.Fprintln(w, "")

	// --- Vertices ---
	fmt.Fprintln(w, "--- Vertices (index, coord, type, position, neighbours in edge order) ---")
	for _, n := range b.Nodes() {
		fmt.Fprintf(w, "  index: %d coord: %s type: %s position: %s neighbours: %s\n",
			n.Index, n.Coord, n.Type.Label(), n.Position, indices(n.Neighbors()))
	}
	fmt.Fprintln(w, "")

	// --- Connectors ---
	fmt.Fprintln(w, "--- Connectors (creation order) ---")
	for _, c := range b.Connectors() {
		fmt.Fprintf(w, "  name: %q midpoint: %s\n", c.Name(), c.Midpoint)
	}
	fmt.Fprintln(w, "")

	// --- Warnings ---
	fmt.Fprintln(w, "--- Warnings ---")
	if len(m.Warnings) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, warning := range m.Warnings {
		fmt.Fprintf(w, "  %s\n", warning)
	}
	fmt.Fprintln(w, "")

	_, err := fmt.Fprintln(w, "=== END MAP DUMP ===")
	return err
}

// DumpToFile writes DumpBoard output to path, or to map.txt in the working
// directory when path is empty. It returns the absolute path written.
func DumpToFile(m *setup.Map, player *materialize.Node, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", errors.Wrap(err, "devtools: create dump")
	}
	defer f.Close()

	if err := DumpBoard(f, m, player); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

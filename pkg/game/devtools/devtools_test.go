package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardmap/pkg/game/renderer"
	"boardmap/pkg/game/setup"
)

func devMap(t *testing.T) *setup.Map {
	t.Helper()
	m, err := setup.FromDescription(DevMapGenerator{}.Generate(1), setup.Options{})
	require.NoError(t, err)
	return m
}

func TestDevMap_Parses(t *testing.T) {
	desc := DevMapGenerator{}.Generate(7)
	assert.Equal(t, 15, desc.Dims.Size())
	assert.Equal(t, devMapSource, desc.String())
	assert.Equal(t, "dev", DevMapGenerator{}.Name())
}

func TestDumpBoard(t *testing.T) {
	m := devMap(t)
	player, err := m.Board.NodeAt(0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, DumpBoard(&buf, m, player))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "=== MAP DUMP DEBUG"))
	assert.Contains(t, out, "grid_rows: 3\ngrid_cols: 5\n")
	assert.Contains(t, out, "--- Map ---\n@+-#o\noooo+\n-oo#o\n")
	assert.Contains(t, out, "cells_NullCell: 2\n")
	assert.Contains(t, out, "player_index: 0\n")
	// edges are listed in reverse source order
	assert.Contains(t, out, "index: 1 coord: 0:1 type: PosiCell position: (-2.00, 2.00) neighbours: [6,2,0]")
	assert.Contains(t, out, `name: "edge 4 14"`)
	assert.Contains(t, out, "link 4 -> 3 targets an empty cell")
	assert.True(t, strings.HasSuffix(out, "=== END MAP DUMP ===\n"))
}

func TestDumpBoard_NoBoard(t *testing.T) {
	assert.Error(t, DumpBoard(&bytes.Buffer{}, nil, nil))
}

func TestDumpToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	got, err := DumpToFile(devMap(t), nil, path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "player_index: -1")
}

func TestScreenshotHTML(t *testing.T) {
	m := devMap(t)
	player, err := m.Board.NodeAt(5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteScreenshotHTML(&buf, renderer.Frame{Board: m.Board, Player: player}, "Level <1>"))
	out := buf.String()
	assert.Contains(t, out, "Level &lt;1&gt;")
	assert.Contains(t, out, `<span class="player">@</span>`)
	assert.Contains(t, out, `<span class="bonus">+</span>`)
	assert.Contains(t, out, "edge 6 12")

	assert.Error(t, WriteScreenshotHTML(&buf, renderer.Frame{}, "x"))

	path, err := SaveScreenshotHTML(renderer.Frame{Board: m.Board}, "x", t.TempDir())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

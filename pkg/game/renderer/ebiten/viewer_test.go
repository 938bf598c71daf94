package ebiten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardmap/pkg/game/renderer"
	"boardmap/pkg/game/setup"
)

func TestViewer_CollectsMaterializedBoard(t *testing.T) {
	v := New()
	m, err := setup.Build("1,2\nNormalCell,1\nNormalCell,0", setup.Options{Sink: v})
	require.NoError(t, err)

	assert.Len(t, v.snapshot.nodes, 2)
	assert.Len(t, v.snapshot.connectors, 2)
	assert.Equal(t, m.Board.Nodes(), v.snapshot.nodes)
}

func TestViewer_StatusSurvivesNewFrame(t *testing.T) {
	v := New()
	v.SetStatus("Level 2")

	m, err := setup.Build("1,1\nNormalCell", setup.Options{})
	require.NoError(t, err)
	require.NoError(t, v.RenderFrame(nil, renderer.Frame{Board: m.Board, Player: m.Board.Nodes()[0]}))

	assert.Equal(t, "Level 2", v.snapshot.status)
	assert.Same(t, m.Board.Nodes()[0], v.snapshot.player)
}

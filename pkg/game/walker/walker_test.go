package walker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/graph"
	"boardmap/pkg/game/materialize"
	"boardmap/pkg/game/property"
	"boardmap/pkg/game/renderer/tui"
	"boardmap/pkg/game/state"
)

// newWalker builds a 1x4 line 0 <-> 1 <-> 2 -> 3 where 2 is a bonus cell.
func newWalker(t *testing.T) (*Model, []*materialize.Node) {
	t.Helper()
	g, err := graph.Parse("1,4\nNormalCell,1\nNormalCell,0,2\nPosiCell,1,3\nNegaCell,2")
	require.NoError(t, err)
	b, err := materialize.New(world.DefaultLayout(g.Dims())).Materialize(g)
	require.NoError(t, err)
	game, err := state.NewGame(b, b.Nodes()[0], nil)
	require.NoError(t, err)

	r := tui.New()
	r.Plain = true
	r.Span = 2
	m := New(game, r, nil)
	m.Init()
	return m, b.Nodes()
}

func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestInit_OpensLevelTips(t *testing.T) {
	m, _ := newWalker(t)
	assert.Equal(t, "LEVEL_1_TIPS", m.Panel())

	press(m, "t")
	assert.Equal(t, "", m.Panel())
	press(m, "t")
	assert.Equal(t, "LEVEL_1_TIPS", m.Panel())
}

func TestMove_FollowsSelectedLink(t *testing.T) {
	m, nodes := newWalker(t)
	assert.Same(t, nodes[1], m.Selected())

	press(m, "enter")
	assert.Same(t, nodes[1], m.game.Player.Node)
	// edges are listed in reverse source order: 2 then 0
	assert.Same(t, nodes[2], m.Selected())

	press(m, "enter")
	assert.Same(t, nodes[1], m.game.Player.Node, "no moves left this turn")
	assert.Contains(t, m.game.Messages[len(m.game.Messages)-1], "no moves left")

	press(m, "e")
	assert.Equal(t, 2, m.game.Turn)
	press(m, "enter")
	assert.Same(t, nodes[2], m.game.Player.Node)
	assert.True(t, m.game.Inventory.Has(property.HorseID))
}

func TestTab_CyclesLinks(t *testing.T) {
	m, nodes := newWalker(t)
	press(m, "enter")
	require.Same(t, nodes[1], m.game.Player.Node)

	assert.Same(t, nodes[2], m.Selected())
	press(m, "tab")
	assert.Same(t, nodes[0], m.Selected())
	press(m, "tab")
	assert.Same(t, nodes[2], m.Selected())
}

func TestHorse(t *testing.T) {
	m, _ := newWalker(t)
	press(m, "h")
	assert.Contains(t, m.game.Messages[0], "do not have")

	_, err := m.game.GrantProperty(property.HorseID)
	require.NoError(t, err)
	press(m, "h")
	assert.Equal(t, property.HorseMoves, m.game.Player.MoveableTimes)
	assert.False(t, m.game.Inventory.Has(property.HorseID))
}

func TestQuit(t *testing.T) {
	m, _ := newWalker(t)
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	m, _ := newWalker(t)
	out := m.View()
	assert.Contains(t, out, "@")
	assert.Contains(t, out, "Level 1")
	assert.Contains(t, out, "Moves left: 1")
	assert.Contains(t, out, "Next step: cell 1 (Normal)")
	assert.Contains(t, out, "Move your token")
	assert.Contains(t, out, "In reach: cells 1")
}

func TestView_InReachWithHorse(t *testing.T) {
	m, _ := newWalker(t)
	_, err := m.game.GrantProperty(property.HorseID)
	require.NoError(t, err)
	press(m, "h")
	assert.Contains(t, m.View(), "In reach: cells 1, 2")
}

func TestReason_Translated(t *testing.T) {
	assert.Equal(t, "no moves left", reason(state.ErrNoMovesLeft))
	assert.Equal(t, "that is a hole", reason(errors.Wrap(state.ErrNotWalkable, "start")))
	assert.Equal(t, "not linked", reason(state.ErrNotAdjacent))
}

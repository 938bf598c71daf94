// Package walker is the interactive terminal front end: the player walks a
// token along the links of a materialized board, one step per turn.
package walker

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"boardmap/pkg/game/locale"
	"boardmap/pkg/game/materialize"
	"boardmap/pkg/game/property"
	"boardmap/pkg/game/renderer"
	"boardmap/pkg/game/state"
	"boardmap/pkg/game/tips"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tipStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("11"))
)

// panelView is the tips.Panels the walker shows beside the board.
type panelView struct {
	name string
}

func (p *panelView) Show(name string) { p.name = name }

func (p *panelView) Hide(name string) {
	if p.name == name {
		p.name = ""
	}
}

// Model is the bubbletea model for one level.
type Model struct {
	game     *state.Game
	render   renderer.Renderer
	tips     *tips.Tips
	panel    *panelView
	keys     keyMap
	help     help.Model
	logger   *log.Logger
	selected int // index into the player's neighbours
}

// New creates a walker for g drawing the board with r.
func New(g *state.Game, r renderer.Renderer, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	panel := &panelView{}
	return &Model{
		game:   g,
		render: r,
		tips:   tips.New(panel, nil),
		panel:  panel,
		keys:   defaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init opens the tips panel of the current level, if it has one
func (m *Model) Init() tea.Cmd {
	m.tips.Open(m.game.Level)
	return nil
}

// Panel returns the message id of the visible tips panel, or ""
func (m *Model) Panel() string {
	return m.panel.name
}

// Selected returns the neighbour the next move goes to, or nil
func (m *Model) Selected() *materialize.Node {
	links := m.game.Player.Node.Neighbors()
	if len(links) == 0 {
		return nil
	}
	return links[m.selected%len(links)]
}

// Update handles key presses
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
		case key.Matches(msg, m.keys.Move):
			m.move()
		case key.Matches(msg, m.keys.Horse):
			m.useHorse()
		case key.Matches(msg, m.keys.EndTurn):
			m.game.EndTurn()
			m.game.AddMessage(locale.Get("TURN_ENDED"))
		case key.Matches(msg, m.keys.Tips):
			if m.tips.Showing() {
				m.tips.Close(m.game.Level)
			} else {
				m.tips.Open(m.game.Level)
			}
		}
	}
	return m, nil
}

func (m *Model) cycle(step int) {
	n := len(m.game.Player.Node.Neighbors())
	if n == 0 {
		return
	}
	m.selected = ((m.selected+step)%n + n) % n
}

func (m *Model) move() {
	to := m.Selected()
	if to == nil {
		m.game.AddMessage(locale.Get("NO_LINKS"))
		return
	}
	landing, err := m.game.Step(to)
	if err != nil {
		m.logger.Debug("move refused", "from", m.game.Player.Node.Index, "to", to.Index, "err", err)
		m.game.AddMessage(locale.Format("CANNOT_MOVE", reason(err)))
		return
	}
	m.selected = 0
	m.logger.Debug("moved", "to", to.Index, "type", to.Type)
	m.game.AddMessage(locale.Format("MOVED_TO", describe(to)))
	if landing.Granted != nil {
		m.game.AddMessage(locale.Format("GOT_PROPERTY", locale.Get(landing.Granted.Name)))
	}
	if landing.TurnOver {
		m.game.AddMessage(locale.Get("TURN_ENDED"))
	}
}

func (m *Model) useHorse() {
	p, err := m.game.UseProperty(property.HorseID)
	if err != nil {
		m.game.AddMessage(locale.Format("NOT_OWNED", locale.Get("PROPERTY_HORSE")))
		return
	}
	m.game.AddMessage(locale.Format("USED_PROPERTY", locale.Get(p.Name)))
}

func reason(err error) string {
	switch {
	case errors.Is(err, state.ErrNoMovesLeft):
		return locale.Get("REASON_NO_MOVES")
	case errors.Is(err, state.ErrNotWalkable):
		return locale.Get("REASON_HOLE")
	case errors.Is(err, state.ErrNotAdjacent):
		return locale.Get("REASON_NOT_LINKED")
	default:
		return err.Error()
	}
}

func joinIndices(nodes []*materialize.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = strconv.Itoa(n.Index)
	}
	return strings.Join(parts, ", ")
}

func describe(n *materialize.Node) string {
	return fmt.Sprintf("%d (%s)", n.Index, locale.CellType(n.Type))
}

// View renders the board, the status panel and the key help
func (m *Model) View() string {
	var board strings.Builder
	frame := renderer.Frame{Board: m.game.Board, Player: m.game.Player.Node, Selected: m.Selected()}
	if err := m.render.RenderFrame(&board, frame); err != nil {
		board.WriteString(err.Error())
	}

	left := boardStyle.Render(strings.TrimRight(board.String(), "\n"))
	right := statusStyle.Render(m.status())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" + m.help.View(m.keys) + "\n"
}

func (m *Model) status() string {
	g := m.game
	lines := []string{
		titleStyle.Render(locale.Format("LEVEL_NUMBER", g.Level)),
		locale.Format("TURN_NUMBER", g.Turn),
		locale.Format("MOVES_LEFT", g.Player.MoveableTimes),
		"",
		titleStyle.Render(locale.Get("INVENTORY")),
	}
	if g.Inventory.Len() == 0 {
		lines = append(lines, locale.Get("INVENTORY_EMPTY"))
	}
	for _, p := range g.Inventory.Items() {
		lines = append(lines, "- "+m.render.FormatText("ITEM{%s}", p.Name))
	}

	lines = append(lines, "")
	if reach, err := m.game.InReach(); err == nil && len(reach) > 0 {
		lines = append(lines, locale.Format("IN_REACH", joinIndices(reach)))
	}
	if to := m.Selected(); to != nil {
		lines = append(lines, locale.Format("SELECTED_LINK", to.Index, locale.CellType(to.Type)))
	} else {
		lines = append(lines, locale.Get("NO_LINKS"))
	}

	if len(g.Messages) > 0 {
		lines = append(lines, "")
		lines = append(lines, g.Messages...)
	}
	if m.panel.name != "" {
		lines = append(lines, "", titleStyle.Render(locale.Get("TIPS")), tipStyle.Render(locale.Get(m.panel.name)))
	}
	return strings.Join(lines, "\n")
}

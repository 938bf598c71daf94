package state

import (
	"github.com/pkg/errors"

	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/materialize"
	"boardmap/pkg/game/property"
)

// DefaultMoveableTimes is the movement allowance at the start of each turn.
const DefaultMoveableTimes = 1

var (
	ErrNoMovesLeft = errors.New("state: no moves left this turn")
	ErrNotAdjacent = errors.New("state: target is not a neighbour of the current cell")
	ErrNotWalkable = errors.New("state: cell is empty")
)

// Player is the token moving on the board.
type Player struct {
	Node          *materialize.Node
	MoveableTimes int // moves left this turn
}

// SetMoveableTimes sets the moves left this turn
func (p *Player) SetMoveableTimes(n int) {
	p.MoveableTimes = n
}

// Game represents the state of one level
type Game struct {
	Board     *materialize.Board
	Player    *Player
	Inventory *property.Inventory
	Catalog   *property.Catalog

	Messages []string

	Level int // Current level number
	Turn  int
}

// NewGame creates a game on board with the player placed at start.
func NewGame(board *materialize.Board, start *materialize.Node, catalog *property.Catalog) (*Game, error) {
	if board == nil {
		return nil, errors.New("state: nil board")
	}
	if start == nil || start.Type.IsEmpty() {
		return nil, errors.Wrap(ErrNotWalkable, "state: start cell")
	}
	if catalog == nil {
		catalog = property.DefaultCatalog()
	}
	return &Game{
		Board:     board,
		Player:    &Player{Node: start, MoveableTimes: DefaultMoveableTimes},
		Inventory: property.NewInventory(),
		Catalog:   catalog,
		Messages:  make([]string, 0),
		Level:     1,
		Turn:      1,
	}, nil
}

// FirstWalkable returns the first non-Empty node in row-major order, or nil.
func FirstWalkable(b *materialize.Board) *materialize.Node {
	for _, n := range b.Nodes() {
		if !n.Type.IsEmpty() {
			return n
		}
	}
	return nil
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// CanMove reports whether the player may step onto to right now.
func (g *Game) CanMove(to *materialize.Node) error {
	if g.Player.MoveableTimes <= 0 {
		return ErrNoMovesLeft
	}
	if to == nil || to.Type.IsEmpty() {
		return ErrNotWalkable
	}
	if !g.Player.Node.HasNeighbor(to) {
		return errors.Wrapf(ErrNotAdjacent, "%s -> %s", g.Player.Node.Name(), to.Name())
	}
	return nil
}

// Move steps the player onto a resolved neighbour, spending one move.
func (g *Game) Move(to *materialize.Node) error {
	if err := g.CanMove(to); err != nil {
		return err
	}
	g.Player.Node = to
	g.Player.MoveableTimes--
	return nil
}

// InReach returns the walkable cells the player can still get to this turn,
// sorted by index.
func (g *Game) InReach() ([]*materialize.Node, error) {
	if g.Player.MoveableTimes <= 0 {
		return nil, nil
	}
	indices, err := g.Board.Graph().Within(g.Player.Node.Index, g.Player.MoveableTimes)
	if err != nil {
		return nil, err
	}
	nodes := make([]*materialize.Node, 0, len(indices))
	for _, i := range indices {
		n, err := g.Board.NodeAt(i)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// EndTurn resets the movement allowance and advances the turn counter
func (g *Game) EndTurn() {
	g.Player.MoveableTimes = DefaultMoveableTimes
	g.Turn++
}

// UseProperty applies an owned property to the player.
func (g *Game) UseProperty(id property.ID) (*property.Property, error) {
	return g.Inventory.Use(id, g.Player)
}

// GrantProperty gives the player a property from the catalog
func (g *Game) GrantProperty(id property.ID) (*property.Property, error) {
	return g.Inventory.Grant(g.Catalog, id)
}

// AdvanceLevel increments the level counter and resets level-specific state
func (g *Game) AdvanceLevel() {
	g.Level++
	g.Inventory.Clear()
	g.Player.MoveableTimes = DefaultMoveableTimes
	g.Turn = 1
}

// Landing reports what happened when the player stepped onto a cell.
type Landing struct {
	Node     *materialize.Node
	Granted  *property.Property // set on Positive cells
	TurnOver bool               // set on Negative cells
}

// Step moves the player to a neighbour and applies the cell's effect:
// a Positive cell grants a horse, a Negative cell ends the turn.
func (g *Game) Step(to *materialize.Node) (Landing, error) {
	if err := g.Move(to); err != nil {
		return Landing{}, err
	}
	landing := Landing{Node: to}
	switch to.Type {
	case world.Positive:
		p, err := g.GrantProperty(property.HorseID)
		if err != nil {
			return landing, err
		}
		landing.Granted = p
	case world.Negative:
		g.EndTurn()
		landing.TurnOver = true
	}
	return landing, nil
}

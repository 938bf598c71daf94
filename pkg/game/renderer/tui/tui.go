package tui

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"

	"boardmap/pkg/engine/terminal"
	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/locale"
	"boardmap/pkg/game/materialize"
	"boardmap/pkg/game/renderer"
)

// Icon constants for board cells
const (
	PlayerIcon   = '@'
	IconEmpty    = ' '
	IconNormal   = '●'
	IconPositive = '+'
	IconNegative = '-'
)

// Connector glyphs
const (
	LineHorizontal = '─'
	LineVertical   = '│'
	LineDiagDown   = '╲'
	LineDiagUp     = '╱'
	LineDiagCross  = '╳'
	ArrowRight     = '→'
	ArrowLeft      = '←'
	ArrowDown      = '↓'
	ArrowUp        = '↑'
)

// Horizontal distance between cell centres, in columns
const (
	MinCellSpan = 2
	MaxCellSpan = 6
)

// TUIRenderer draws boards as text with ANSI colours
type TUIRenderer struct {
	// Plain disables colour output
	Plain bool
	// Span fixes the horizontal cell distance; 0 fits the terminal width
	Span int

	colorCell     color.Style
	colorEmpty    color.Style
	colorPositive color.Style
	colorNegative color.Style
	colorLink     color.Style
	colorSelected color.Style
	colorPlayer   color.Style
	colorItem     color.Style
	colorAction   color.Style
	colorDenied   color.Style
	colorSubtle   color.Style
	colorHeading  color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	t := &TUIRenderer{}
	t.Init()
	return t
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.colorCell = color.Style{color.FgWhite}
	t.colorEmpty = color.Style{color.FgGray}
	t.colorPositive = color.Style{color.FgGreen, color.OpBold}
	t.colorNegative = color.Style{color.FgRed, color.OpBold}
	t.colorLink = color.Style{color.FgGray}
	t.colorSelected = color.Style{color.FgYellow, color.OpBold}
	t.colorPlayer = color.Style{color.FgCyan, color.BgBlack, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorAction = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorHeading = color.Style{color.FgBlue, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([A-Z_]*){([^}]+)}`)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.Plain {
		return text
	}
	switch style {
	case renderer.StyleCell:
		return t.colorCell.Sprint(text)
	case renderer.StyleEmpty:
		return t.colorEmpty.Sprint(text)
	case renderer.StylePositive:
		return t.colorPositive.Sprint(text)
	case renderer.StyleNegative:
		return t.colorNegative.Sprint(text)
	case renderer.StyleConnector:
		return t.colorLink.Sprint(text)
	case renderer.StyleSelected:
		return t.colorSelected.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system:
// GT{ID} translates, ITEM{x}, CELL{x} and ACTION{x} apply styles.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}

	for _, match := range t.regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = locale.Get(operand)
		case "ITEM":
			val = t.StyleText(locale.Get(operand), renderer.StyleItem)
		case "CELL":
			val = t.StyleText(operand, renderer.StyleCell)
		case "ACTION":
			_, size := utf8.DecodeRuneInString(operand)
			val = t.StyleText(operand[:size], renderer.StyleAction) + operand[size:]
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}
	return ret
}

// RenderFrame writes the board, legend and link notes to w
func (t *TUIRenderer) RenderFrame(w io.Writer, f renderer.Frame) error {
	_, err := io.WriteString(w, t.Render(f))
	return err
}

// Render returns the frame as a string
func (t *TUIRenderer) Render(f renderer.Frame) string {
	if f.Board == nil {
		return ""
	}
	span := t.Span
	if span <= 0 {
		span = terminal.CellSpan(f.Board.Dims().Cols, MinCellSpan, MaxCellSpan)
	}

	var sb strings.Builder
	sb.WriteString(t.drawBoard(f, span).render(t))
	sb.WriteString(t.legend())
	sb.WriteString(t.linkNotes(f.Board))
	return sb.String()
}

func iconFor(ct world.CellType) rune {
	switch ct {
	case world.Normal:
		return IconNormal
	case world.Positive:
		return IconPositive
	case world.Negative:
		return IconNegative
	default:
		return IconEmpty
	}
}

type linkPair struct {
	from, to *materialize.Node // from.Index < to.Index
	forward  bool              // from -> to declared
	backward bool              // to -> from declared
}

// pairs groups the directed connectors of a board by undirected pair.
func pairs(b *materialize.Board) []*linkPair {
	byKey := make(map[materialize.Segment]*linkPair)
	var out []*linkPair
	for _, c := range b.Connectors() {
		from, to, forward := c.From, c.To, true
		if from.Index > to.Index {
			from, to, forward = to, from, false
		}
		key := materialize.Segment{A: from.Index, B: to.Index}
		p, ok := byKey[key]
		if !ok {
			p = &linkPair{from: from, to: to}
			byKey[key] = p
			out = append(out, p)
		}
		if forward {
			p.forward = true
		} else {
			p.backward = true
		}
	}
	return out
}

func (t *TUIRenderer) drawBoard(f renderer.Frame, span int) *canvas {
	d := f.Board.Dims()
	cv := newCanvas((d.Cols-1)*span+1, (d.Rows-1)*2+1)
	at := func(c world.Coord) (int, int) {
		return c.Col * span, c.Row * 2
	}

	for _, p := range pairs(f.Board) {
		dir, adjacent := world.DirectionBetween(p.from.Coord, p.to.Coord)
		if !adjacent {
			continue
		}
		x, y := at(p.from.Coord)
		switch dir {
		case world.East:
			for i := 1; i < span; i++ {
				cv.set(x+i, y, LineHorizontal, renderer.StyleConnector)
			}
			if p.forward != p.backward {
				arrow := rune(ArrowRight)
				if p.backward {
					arrow = ArrowLeft
				}
				cv.set(x+span/2, y, arrow, renderer.StyleConnector)
			}
		case world.South:
			glyph := rune(LineVertical)
			if p.forward != p.backward {
				glyph = ArrowDown
				if p.backward {
					glyph = ArrowUp
				}
			}
			cv.set(x, y+1, glyph, renderer.StyleConnector)
		case world.SouthEast:
			cv.set(x+span/2, y+1, LineDiagDown, renderer.StyleConnector)
		case world.SouthWest:
			cv.set(x-span/2, y+1, LineDiagUp, renderer.StyleConnector)
		}
	}

	f.Board.ForEachNode(func(n *materialize.Node) {
		x, y := at(n.Coord)
		glyph, style := iconFor(n.Type), renderer.StyleForCell(n.Type)
		switch {
		case f.Player != nil && n == f.Player:
			glyph, style = PlayerIcon, renderer.StylePlayer
		case f.Selected != nil && n == f.Selected:
			style = renderer.StyleSelected
		}
		cv.set(x, y, glyph, style)
	})
	return cv
}

func (t *TUIRenderer) legend() string {
	parts := []string{
		t.StyleText(string(IconNormal), renderer.StyleCell) + " " + locale.CellType(world.Normal),
		t.StyleText(string(IconPositive), renderer.StylePositive) + " " + locale.CellType(world.Positive),
		t.StyleText(string(IconNegative), renderer.StyleNegative) + " " + locale.CellType(world.Negative),
		t.StyleText(string(PlayerIcon), renderer.StylePlayer) + " " + locale.Get("PLAYER"),
	}
	return "\n" + t.StyleText(locale.Get("LEGEND"), renderer.StyleHeading) + ": " + strings.Join(parts, "  ") + "\n"
}

// linkNotes lists links the grid drawing cannot show: one-way links and
// links between cells that are not grid neighbours.
func (t *TUIRenderer) linkNotes(b *materialize.Board) string {
	var oneWay, long []string
	for _, p := range pairs(b) {
		_, adjacent := world.DirectionBetween(p.from.Coord, p.to.Coord)
		if !adjacent {
			long = append(long, describePair(p))
		}
		if p.forward != p.backward {
			from, to := p.from, p.to
			if p.backward {
				from, to = to, from
			}
			oneWay = append(oneWay, fmt.Sprintf("%d -> %d", from.Index, to.Index))
		}
	}
	sort.Strings(oneWay)
	sort.Strings(long)

	var sb strings.Builder
	if len(oneWay) > 0 {
		sb.WriteString(t.StyleText(locale.Get("ONE_WAY_LINKS"), renderer.StyleHeading) + ": " + strings.Join(oneWay, ", ") + "\n")
	}
	if len(long) > 0 {
		sb.WriteString(t.StyleText(locale.Get("LONG_LINKS"), renderer.StyleHeading) + ": " + strings.Join(long, ", ") + "\n")
	}
	return sb.String()
}

func describePair(p *linkPair) string {
	switch {
	case p.forward && p.backward:
		return fmt.Sprintf("%d <-> %d", p.from.Index, p.to.Index)
	case p.forward:
		return fmt.Sprintf("%d -> %d", p.from.Index, p.to.Index)
	default:
		return fmt.Sprintf("%d -> %d", p.to.Index, p.from.Index)
	}
}

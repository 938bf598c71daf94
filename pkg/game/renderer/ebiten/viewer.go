package ebiten

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"boardmap/pkg/engine/world"
	"boardmap/pkg/game/locale"
	"boardmap/pkg/game/materialize"
	"boardmap/pkg/game/renderer"
)

// snapshot is what Draw reads; it is replaced whole so the game loop never
// sees a half-built board.
type snapshot struct {
	nodes      []*materialize.Node
	connectors []*materialize.Connector
	player     *materialize.Node
	selected   *materialize.Node
	status     string
}

// Viewer shows a board in a window. It is a materialize.Sink, so nodes
// and connectors appear as the materializer creates them, and a
// renderer.Renderer for frames produced later by the game.
type Viewer struct {
	Title string

	windowWidth  int
	windowHeight int

	snapshotMutex sync.RWMutex
	snapshot      snapshot

	monoFontSource *text.GoTextFaceSource
	cachedMonoFace *text.GoTextFace

	regexpMarkup *regexp.Regexp
}

// New creates a new viewer
func New() *Viewer {
	return &Viewer{
		Title:        "Board",
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		regexpMarkup: regexp.MustCompile(`([A-Z_]*){([^}]+)}`),
	}
}

// CreateNode records a node for drawing
func (v *Viewer) CreateNode(n *materialize.Node) error {
	v.snapshotMutex.Lock()
	defer v.snapshotMutex.Unlock()
	v.snapshot.nodes = append(v.snapshot.nodes, n)
	return nil
}

// CreateConnector records a connector for drawing
func (v *Viewer) CreateConnector(c *materialize.Connector) error {
	v.snapshotMutex.Lock()
	defer v.snapshotMutex.Unlock()
	v.snapshot.connectors = append(v.snapshot.connectors, c)
	return nil
}

// Init sets up the window and loads fonts
func (v *Viewer) Init() {
	ebiten.SetWindowSize(v.windowWidth, v.windowHeight)
	ebiten.SetWindowTitle(v.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// labels are skipped when the font fails to load
	_ = v.loadFonts()
}

// RenderFrame replaces the displayed board with f. Drawing happens on the
// next Draw call; w receives nothing.
func (v *Viewer) RenderFrame(w io.Writer, f renderer.Frame) error {
	snap := snapshot{player: f.Player, selected: f.Selected}
	if f.Board != nil {
		snap.nodes = f.Board.Nodes()
		snap.connectors = f.Board.Connectors()
	}
	v.snapshotMutex.Lock()
	snap.status = v.snapshot.status
	v.snapshot = snap
	v.snapshotMutex.Unlock()
	return nil
}

// SetStatus sets the line of text drawn under the board
func (v *Viewer) SetStatus(msg string) {
	v.snapshotMutex.Lock()
	v.snapshot.status = msg
	v.snapshotMutex.Unlock()
}

// StyleText returns text unchanged; colours come from the palette
func (v *Viewer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText resolves markup to plain text
func (v *Viewer) FormatText(msg string, args ...any) string {
	ret := msg
	if len(args) > 0 {
		ret = fmt.Sprintf(msg, args...)
	}
	for _, match := range v.regexpMarkup.FindAllStringSubmatch(ret, -1) {
		val := match[2]
		if match[1] == "GT" || match[1] == "ITEM" {
			val = locale.Get(match[2])
		}
		ret = strings.Replace(ret, match[0], val, 1)
	}
	return ret
}

// Update handles input; q or escape closes the window
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current snapshot
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.snapshotMutex.RLock()
	snap := v.snapshot
	v.snapshotMutex.RUnlock()

	screen.Fill(colorBackground)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	p := newProjection(snap.nodes, float64(w), float64(h))

	back := make(map[materialize.Segment]bool, len(snap.connectors))
	for _, c := range snap.connectors {
		back[materialize.Segment{A: c.From.Index, B: c.To.Index}] = true
	}
	for _, c := range snap.connectors {
		x0, y0 := p.apply(c.From.Position)
		x1, y1 := p.apply(c.To.Position)
		clr := colorConnector
		if !back[materialize.Segment{A: c.To.Index, B: c.From.Index}] {
			clr = colorOneWay
			// marker three quarters of the way towards the target
			mx, my := x0+(x1-x0)*0.75, y0+(y1-y0)*0.75
			vector.DrawFilledCircle(screen, mx, my, float32(arrowSize*p.scale), clr, true)
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, connectorWide, clr, true)
	}

	radius := float32(nodeRadius * p.scale)
	for _, n := range snap.nodes {
		x, y := p.apply(n.Position)
		if n.Type.IsEmpty() {
			vector.StrokeCircle(screen, x, y, radius, 1, colorEmpty, true)
			continue
		}
		vector.DrawFilledCircle(screen, x, y, radius, cellColor(n.Type), true)
		if n == snap.selected {
			vector.StrokeCircle(screen, x, y, radius+3, 2, colorOneWay, true)
		}
		if n == snap.player {
			vector.StrokeCircle(screen, x, y, radius+6, 3, colorPlayer, true)
		}
	}

	if v.monoFontSource == nil {
		return
	}
	face := v.getMonoFontFace()
	for _, n := range snap.nodes {
		if n.Type.IsEmpty() {
			continue
		}
		x, y := p.apply(n.Position)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x+radius+2), float64(y-radius-2)-baseFontSize)
		op.ColorScale.ScaleWithColor(colorSubtle)
		text.Draw(screen, fmt.Sprint(n.Index), face, op)
	}
	if snap.status != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(margin/2, float64(h)-margin/2-baseFontSize)
		op.ColorScale.ScaleWithColor(colorText)
		text.Draw(screen, snap.status, face, op)
	}
}

// Layout returns the game's logical screen size
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.windowWidth, v.windowHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run starts the Ebiten game loop and blocks until the window closes
func (v *Viewer) Run() error {
	return ebiten.RunGame(v)
}

// projection maps layout space (y up) onto the screen (y down).
type projection struct {
	minX, maxY float64
	scale      float64
	offX, offY float64
}

func newProjection(nodes []*materialize.Node, width, height float64) projection {
	if len(nodes) == 0 {
		return projection{scale: 1}
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, n := range nodes {
		minX, maxX = math.Min(minX, n.Position.X), math.Max(maxX, n.Position.X)
		minY, maxY = math.Min(minY, n.Position.Y), math.Max(maxY, n.Position.Y)
	}
	spanX, spanY := math.Max(maxX-minX, 1), math.Max(maxY-minY, 1)
	scale := math.Min((width-2*margin)/spanX, (height-2*margin)/spanY)
	if scale <= 0 {
		scale = 1
	}
	return projection{
		minX:  minX,
		maxY:  maxY,
		scale: scale,
		offX:  (width - (maxX-minX)*scale) / 2,
		offY:  (height - (maxY-minY)*scale) / 2,
	}
}

func (p projection) apply(v world.Vec2) (float32, float32) {
	return float32(p.offX + (v.X-p.minX)*p.scale), float32(p.offY + (p.maxY-v.Y)*p.scale)
}

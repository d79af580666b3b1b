package gui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/internal/layout"
	"github.com/plus3/blockfall/play"
)

// Game implements ebiten.Game. Each Update reads edge-triggered keys, steps
// the session once and each Draw renders the latest snapshot.
type Game struct {
	session  *play.Session
	layout   layout.Layout
	bindings []Binding

	imguiBackend *debugui_ebiten.ImguiBackend
	overlay      *debugui.Overlay
}

// New returns a window game for session with cellSize pixel cells.
func New(session *play.Session, cellSize int) *Game {
	return &Game{
		session:  session,
		layout:   layout.New(cellSize),
		bindings: DefaultBindings,
	}
}

// EnableDebug attaches the ImGui overlay. The backend owns the window from
// then on, so call it before Run.
func (g *Game) EnableDebug(title string) {
	g.imguiBackend = debugui_ebiten.NewImguiBackend(title, g.layout.Width()*2, g.layout.Height()+200)
	g.overlay = debugui.Attach(g.session)
}

// Run opens the window and blocks until it is closed or a Quit action is
// processed.
func (g *Game) Run(title string) error {
	if g.imguiBackend == nil {
		ebiten.SetWindowSize(g.layout.Width(), g.layout.Height())
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetTPS(g.session.TPS())

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *Game) Update() error {
	if g.imguiBackend != nil {
		g.imguiBackend.BeginFrame()
	}

	if g.overlay == nil || !g.overlay.Input.WantCaptureKeyboard {
		for _, a := range PressedActions(g.bindings, inpututil.IsKeyJustPressed) {
			g.session.Push(a)
		}
	}

	g.session.Step()

	if g.imguiBackend != nil {
		g.imguiBackend.EndFrame()
	}

	if g.session.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	drawBoard(screen, g.layout, &snap)
	drawPanel(screen, g.layout, &snap)

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.layout.Width(), g.layout.Height()
}

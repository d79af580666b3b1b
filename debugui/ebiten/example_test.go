package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/play"
)

// Game implements ebiten.Game and wraps each session step in an ImGui frame.
type Game struct {
	session      *play.Session
	overlay      *debugui.Overlay
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before stepping, so the overlay's windows can be built
	g.imguiBackend.BeginFrame()

	g.session.Step()

	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := debugui_ebiten.NewImguiBackend("blockfall debug", 1280, 720)

	session := play.NewSession(game.NewSeeded(1))

	g := &Game{
		session:      session,
		overlay:      debugui.Attach(session),
		imguiBackend: imguiBackend,
	}

	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
}

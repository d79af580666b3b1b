package rlgui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/internal/layout"
	"github.com/plus3/blockfall/play"
)

const (
	smallFont = 20
	largeFont = 30
)

// Window owns the raylib window for one session.
type Window struct {
	session  *play.Session
	layout   layout.Layout
	bindings []Binding
}

func New(session *play.Session, cellSize int) *Window {
	return &Window{
		session:  session,
		layout:   layout.New(cellSize),
		bindings: DefaultBindings,
	}
}

// Run opens the window and steps the session once per rendered frame until
// the window is closed or a Quit action is processed. Escape closes the
// window through raylib's own exit key.
func (w *Window) Run(title string) {
	rl.InitWindow(int32(w.layout.Width()), int32(w.layout.Height()), title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(w.session.TPS()))

	for !rl.WindowShouldClose() && !w.session.Quit() {
		for _, a := range PressedActions(w.bindings, rl.IsKeyPressed) {
			w.session.Push(a)
		}
		w.session.Step()

		snap := w.session.Snapshot()
		rl.BeginDrawing()
		rl.ClearBackground(layout.Background)
		w.drawBoard(&snap)
		w.drawPanel(&snap)
		rl.EndDrawing()
	}
}

func (w *Window) drawBoard(snap *game.Snapshot) {
	l := w.layout
	size := int32(l.Cell)
	rl.DrawRectangle(0, 0, int32(l.BoardWidth()), int32(l.BoardHeight()), layout.Board)

	for x := 1; x < game.Cols; x++ {
		px := int32(x * l.Cell)
		rl.DrawLine(px, 0, px, int32(l.BoardHeight()), layout.Grid)
	}
	for y := 1; y < game.Rows; y++ {
		py := int32(y * l.Cell)
		rl.DrawLine(0, py, int32(l.BoardWidth()), py, layout.Grid)
	}

	for y := 0; y < game.Rows; y++ {
		for x := 0; x < game.Cols; x++ {
			px, py := l.CellOrigin(x, y)
			switch k, ok := snap.Cells[y][x].Kind(); {
			case ok:
				rl.DrawRectangle(int32(px), int32(py), size, size, k.Color())
				rl.DrawRectangleLines(int32(px), int32(py), size, size, layout.Outline)
			case snap.HasActive && snap.Covers(x, y):
				rl.DrawRectangle(int32(px), int32(py), size, size, snap.ActiveKind.Color())
				rl.DrawRectangleLines(int32(px), int32(py), size, size, layout.Outline)
			case snap.HasActive && snap.Shadows(x, y):
				rl.DrawRectangle(int32(px), int32(py), size, size, layout.Ghost)
			}
		}
	}
}

func (w *Window) drawPanel(snap *game.Snapshot) {
	for _, line := range w.layout.PanelLines(snap) {
		font := int32(smallFont)
		if line.Large {
			font = largeFont
		}
		width := int(rl.MeasureText(line.Text, font))
		rl.DrawText(line.Text, int32(w.layout.CenteredX(width)), int32(line.Y), font, line.Color)
	}
}

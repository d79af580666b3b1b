package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/internal/layout"
)

// debugGlyphWidth is the advance of ebitenutil's debug font.
const debugGlyphWidth = 6

func drawBoard(screen *ebiten.Image, l layout.Layout, snap *game.Snapshot) {
	screen.Fill(layout.Background)
	vector.DrawFilledRect(screen, 0, 0, float32(l.BoardWidth()), float32(l.BoardHeight()), layout.Board, false)

	for y := 0; y < game.Rows; y++ {
		for x := 0; x < game.Cols; x++ {
			if k, ok := snap.Cells[y][x].Kind(); ok {
				drawCell(screen, l, x, y, k)
			}
		}
	}

	if snap.HasActive {
		for _, c := range snap.Ghost {
			if snap.Covers(c.X, c.Y) {
				continue
			}
			px, py := l.CellOrigin(c.X, c.Y)
			vector.DrawFilledRect(screen, float32(px), float32(py), float32(l.Cell), float32(l.Cell), layout.Ghost, false)
		}
		for _, c := range snap.Active {
			if game.InBounds(c.X, c.Y) {
				drawCell(screen, l, c.X, c.Y, snap.ActiveKind)
			}
		}
	}

	drawGrid(screen, l)
}

func drawCell(screen *ebiten.Image, l layout.Layout, x, y int, k game.Kind) {
	px, py := l.CellOrigin(x, y)
	size := float32(l.Cell)
	vector.DrawFilledRect(screen, float32(px), float32(py), size, size, k.Color(), false)
	vector.StrokeRect(screen, float32(px), float32(py), size, size, 1, layout.Outline, false)
}

func drawGrid(screen *ebiten.Image, l layout.Layout) {
	w, h := float32(l.BoardWidth()), float32(l.BoardHeight())
	for row := 0; row <= game.Rows; row++ {
		y := float32(row * l.Cell)
		vector.StrokeLine(screen, 0, y, w, y, 1, layout.Grid, false)
	}
	for col := 0; col <= game.Cols; col++ {
		x := float32(col * l.Cell)
		vector.StrokeLine(screen, x, 0, x, h, 1, layout.Grid, false)
	}
}

func drawPanel(screen *ebiten.Image, l layout.Layout, snap *game.Snapshot) {
	for _, line := range l.PanelLines(snap) {
		x := l.CenteredX(len(line.Text) * debugGlyphWidth)
		ebitenutil.DebugPrintAt(screen, line.Text, x, line.Y)
	}
}

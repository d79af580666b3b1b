package tui

import (
	"image/color"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/internal/layout"
	"github.com/plus3/blockfall/play"
)

// Each field cell is two terminal columns wide so pieces look square.
const cellWidth = 2

// board origin inside the border
const (
	boardX = 1
	boardY = 1
	panelX = boardX + game.Cols*cellWidth + 3
)

var (
	borderStyle = tcell.StyleDefault.Foreground(toColor(layout.Grid))
	emptyStyle  = tcell.StyleDefault.Foreground(toColor(layout.Board))
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	labelStyle  = tcell.StyleDefault.Foreground(toColor(layout.Label))
	valueStyle  = tcell.StyleDefault.Foreground(toColor(layout.Value)).Bold(true)
	titleStyle  = tcell.StyleDefault.Foreground(toColor(layout.Title)).Bold(true)
)

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func kindStyle(k game.Kind) tcell.Style {
	return tcell.StyleDefault.Foreground(toColor(k.Color()))
}

// Renderer draws the session's snapshot after every frame.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) Execute(f *frame.Frame[*play.Session]) {
	snap := f.World.Snapshot()
	r.Draw(&snap)
}

// Draw renders snap and shows the screen.
func (r *Renderer) Draw(snap *game.Snapshot) {
	r.screen.Clear()
	r.drawBorder()

	for y := 0; y < game.Rows; y++ {
		for x := 0; x < game.Cols; x++ {
			switch k, ok := snap.Cells[y][x].Kind(); {
			case ok:
				r.cell(x, y, '█', '█', kindStyle(k))
			case snap.HasActive && snap.Covers(x, y):
				r.cell(x, y, '█', '█', kindStyle(snap.ActiveKind))
			case snap.HasActive && snap.Shadows(x, y):
				r.cell(x, y, '░', '░', ghostStyle)
			default:
				r.cell(x, y, ' ', '·', emptyStyle)
			}
		}
	}

	r.drawPanel(snap)
	r.screen.Show()
}

func (r *Renderer) cell(x, y int, left, right rune, style tcell.Style) {
	sx := boardX + x*cellWidth
	sy := boardY + y
	r.screen.SetContent(sx, sy, left, nil, style)
	r.screen.SetContent(sx+1, sy, right, nil, style)
}

func (r *Renderer) drawBorder() {
	right := boardX + game.Cols*cellWidth
	bottom := boardY + game.Rows
	for x := boardX; x < right; x++ {
		r.screen.SetContent(x, 0, '─', nil, borderStyle)
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	for y := boardY; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	r.screen.SetContent(0, 0, '┌', nil, borderStyle)
	r.screen.SetContent(right, 0, '┐', nil, borderStyle)
	r.screen.SetContent(0, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *Renderer) drawPanel(snap *game.Snapshot) {
	if snap.Status == game.Ended {
		r.text(panelX, 2, layout.GameOver, titleStyle)
		r.text(panelX, 4, layout.FinalScore, labelStyle)
		r.text(panelX, 5, strconv.Itoa(snap.Score), valueStyle)
		r.text(panelX, 7, layout.RestartHint, labelStyle)
		return
	}

	r.text(panelX, 2, layout.ScoreLabel, labelStyle)
	r.text(panelX, 3, strconv.Itoa(snap.Score), valueStyle)
	r.text(panelX, 5, layout.LinesLabel, labelStyle)
	r.text(panelX, 6, strconv.Itoa(snap.Lines), valueStyle)
	r.text(panelX, 9, "←→ move  ↑ rotate", labelStyle)
	r.text(panelX, 10, "↓ drop  space hard drop", labelStyle)
	r.text(panelX, 11, "q quit", labelStyle)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

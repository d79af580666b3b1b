// Package layout holds the screen geometry and palette shared by the window
// frontends: a board of Cols x Rows cells next to a score panel.
package layout

import (
	"image/color"
	"strconv"

	"github.com/plus3/blockfall/game"
)

// Palette.
var (
	Background = color.RGBA{44, 44, 127, 255}
	Board      = color.RGBA{26, 31, 40, 255}
	Grid       = color.RGBA{13, 64, 216, 255}
	Outline    = color.RGBA{0, 0, 0, 255}
	Ghost      = color.RGBA{255, 255, 255, 80}
	Title      = color.RGBA{232, 18, 18, 255}
	Label      = color.RGBA{200, 200, 200, 255}
	Value      = color.RGBA{255, 255, 255, 255}
)

// Panel text.
const (
	ScoreLabel  = "SCORE"
	LinesLabel  = "LINES"
	GameOver    = "GAME OVER"
	FinalScore  = "FINAL SCORE"
	RestartHint = "Press ENTER to restart"
)

// DefaultCell is the cell size the panel width is designed for.
const (
	DefaultCell  = 30
	defaultPanel = 250
)

// Layout positions everything for a given cell size in pixels.
type Layout struct {
	Cell int
}

// New returns the layout for cell pixels per cell, falling back to
// DefaultCell for non-positive sizes.
func New(cell int) Layout {
	if cell <= 0 {
		cell = DefaultCell
	}
	return Layout{Cell: cell}
}

func (l Layout) BoardWidth() int  { return game.Cols * l.Cell }
func (l Layout) BoardHeight() int { return game.Rows * l.Cell }

// PanelWidth scales the score panel with the cell size.
func (l Layout) PanelWidth() int { return defaultPanel * l.Cell / DefaultCell }

func (l Layout) Width() int  { return l.BoardWidth() + l.PanelWidth() }
func (l Layout) Height() int { return l.BoardHeight() }

// CellOrigin returns the top-left pixel of field cell (x, y).
func (l Layout) CellOrigin(x, y int) (px, py int) {
	return x * l.Cell, y * l.Cell
}

// PanelCenterX is the horizontal center of the score panel.
func (l Layout) PanelCenterX() int {
	return l.BoardWidth() + l.PanelWidth()/2
}

// Line is one row of panel text.
type Line struct {
	Text  string
	Y     int
	Large bool
	Color color.RGBA
}

// PanelLines lists the panel text for snap, top to bottom. Y is in pixels
// from the top of the window.
func (l Layout) PanelLines(snap *game.Snapshot) []Line {
	step := l.Cell * 4 / 3
	if snap.Status == game.Ended {
		top := l.BoardWidth() / 2
		return []Line{
			{Text: GameOver, Y: top, Large: true, Color: Title},
			{Text: FinalScore, Y: top + step*2, Color: Label},
			{Text: strconv.Itoa(snap.Score), Y: top + step*3, Large: true, Color: Value},
			{Text: RestartHint, Y: top + step*5, Color: Label},
		}
	}

	top := l.Cell
	return []Line{
		{Text: ScoreLabel, Y: top, Color: Label},
		{Text: strconv.Itoa(snap.Score), Y: top + step, Large: true, Color: Value},
		{Text: LinesLabel, Y: top + step*3, Color: Label},
		{Text: strconv.Itoa(snap.Lines), Y: top + step*4, Large: true, Color: Value},
	}
}

// CenteredX returns the x at which text of width pixels is centered in the
// panel.
func (l Layout) CenteredX(width int) int {
	return l.PanelCenterX() - width/2
}

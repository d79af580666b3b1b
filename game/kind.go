// Package game implements the falling-block rules engine: the shape table,
// rotation transform, field, fit checks, piece controller, locking,
// line clearing, scoring and the game lifecycle.
//
// All mutable state lives in a State value owned by the caller. Nothing in the
// package blocks or starts goroutines; one Tick advances the game by one frame.
package game

import "image/color"

// Kind identifies one of the seven piece shapes.
type Kind int

const (
	Bar Kind = iota
	Box
	T
	L
	J
	Z
	S
)

// KindCount is the number of piece kinds.
const KindCount = 7

// patterns holds each kind as a 4x4 grid in row-major order. 'X' marks an
// occupied cell.
var patterns = [KindCount]string{
	"..X...X...X...X.",
	".XX..XX.........",
	".X..XXX.........",
	"..X...X...XX....",
	".X...X...XX.....",
	".X...XX...X.....",
	"..X..XX..X......",
}

var kindColors = [KindCount]color.RGBA{
	{166, 0, 247, 255},
	{237, 234, 4, 255},
	{47, 230, 23, 255},
	{232, 18, 18, 255},
	{226, 116, 17, 255},
	{21, 204, 209, 255},
	{13, 64, 216, 255},
}

var kindNames = [KindCount]string{"Bar", "Box", "T", "L", "J", "Z", "S"}

// Kinds returns every kind in table order.
func Kinds() []Kind {
	return []Kind{Bar, Box, T, L, J, Z, S}
}

// Valid reports whether k names one of the seven kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Color returns the fixed display color of the kind.
func (k Kind) Color() color.RGBA {
	if !k.Valid() {
		return color.RGBA{}
	}
	return kindColors[k]
}

// Pattern returns the unrotated 16 character occupancy pattern.
func (k Kind) Pattern() string {
	return patterns[k]
}

// Occupied reports whether the local cell (x, y) of the piece's 4x4 box is
// filled when the piece is in orientation o.
func Occupied(k Kind, x, y int, o Orientation) bool {
	return patterns[k][CellIndex(x, y, o)] == 'X'
}

// Point is a cell coordinate, either local to a piece box or absolute in the
// field.
type Point struct {
	X, Y int
}

// Cells lists the occupied local cells of k in orientation o, row by row.
func Cells(k Kind, o Orientation) []Point {
	cells := make([]Point, 0, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if Occupied(k, x, y, o) {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

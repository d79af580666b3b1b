package game

import "fmt"

// Piece is a placement of a kind: orientation plus the field position of the
// top left corner of its 4x4 box. Pieces are values; controller operations
// build a candidate copy and commit it only when it fits.
type Piece struct {
	Kind        Kind
	Orientation Orientation
	X, Y        int
}

// Moved returns a copy of p shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of p turned a quarter clockwise in place.
func (p Piece) Rotated() Piece {
	p.Orientation = p.Orientation.Next()
	return p
}

// Cells returns the absolute field coordinates covered by p.
func (p Piece) Cells() []Point {
	cells := Cells(p.Kind, p.Orientation)
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// Fits reports whether p is a legal placement on f.
func (p Piece) Fits(f *Field) bool {
	return Fits(p.Kind, p.Orientation, p.X, p.Y, f)
}

func (p Piece) String() string {
	return fmt.Sprintf("%s/%s@(%d,%d)", p.Kind, p.Orientation, p.X, p.Y)
}

package game

// Field dimensions in cells.
const (
	Cols = 10
	Rows = 20
)

// Cell is the content of one field cell: Empty, or the kind that locked it.
type Cell uint8

// Empty is the zero Cell.
const Empty Cell = 0

// CellOf returns the cell value written when a piece of kind k locks.
func CellOf(k Kind) Cell {
	return Cell(k + 1)
}

// Kind returns the kind that locked the cell. ok is false for Empty.
func (c Cell) Kind() (k Kind, ok bool) {
	if c == Empty {
		return 0, false
	}
	return Kind(c - 1), true
}

// Field is the grid of locked cells. The zero value is an empty field.
type Field struct {
	cells [Rows * Cols]Cell
}

// InBounds reports whether (x, y) lies inside the field.
func InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// At returns the cell at (x, y). Out of bounds coordinates read as Empty.
func (f *Field) At(x, y int) Cell {
	if !InBounds(x, y) {
		return Empty
	}
	return f.cells[y*Cols+x]
}

// Set writes c at (x, y). Out of bounds writes are ignored.
func (f *Field) Set(x, y int, c Cell) {
	if !InBounds(x, y) {
		return
	}
	f.cells[y*Cols+x] = c
}

// Clear empties every cell.
func (f *Field) Clear() {
	f.cells = [Rows * Cols]Cell{}
}

// RowFull reports whether every column of row y is occupied.
func (f *Field) RowFull(y int) bool {
	for x := 0; x < Cols; x++ {
		if f.cells[y*Cols+x] == Empty {
			return false
		}
	}
	return true
}

// RowEmpty reports whether row y has no occupied cell.
func (f *Field) RowEmpty(y int) bool {
	for x := 0; x < Cols; x++ {
		if f.cells[y*Cols+x] != Empty {
			return false
		}
	}
	return true
}

// Occupied counts the non-empty cells.
func (f *Field) Occupied() int {
	n := 0
	for _, c := range f.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// ClearLines removes every full row, scanning from the bottom up. Rows above a
// cleared row move down by one and the top row is emptied. The same row index
// is examined again after each collapse. It returns the number of rows
// removed.
func (f *Field) ClearLines() int {
	cleared := 0
	for y := Rows - 1; y >= 0; y-- {
		if !f.RowFull(y) {
			continue
		}

		for r := y; r > 0; r-- {
			copy(f.cells[r*Cols:(r+1)*Cols], f.cells[(r-1)*Cols:r*Cols])
		}
		for x := 0; x < Cols; x++ {
			f.cells[x] = Empty
		}

		cleared++
		y++
	}
	return cleared
}

// Grid returns a copy of the field as rows of cells.
func (f *Field) Grid() [Rows][Cols]Cell {
	var grid [Rows][Cols]Cell
	for y := 0; y < Rows; y++ {
		copy(grid[y][:], f.cells[y*Cols:(y+1)*Cols])
	}
	return grid
}

package game

// Fits reports whether a piece of kind k in orientation o with its box's top
// left corner at (x, y) lies entirely inside the field without overlapping a
// locked cell. Every change to a piece placement goes through Fits.
func Fits(k Kind, o Orientation, x, y int, f *Field) bool {
	for ly := 0; ly < 4; ly++ {
		for lx := 0; lx < 4; lx++ {
			if !Occupied(k, lx, ly, o) {
				continue
			}

			fx, fy := x+lx, y+ly
			if !InBounds(fx, fy) {
				return false
			}
			if f.At(fx, fy) != Empty {
				return false
			}
		}
	}
	return true
}

// overlaps reports whether any in-bounds cell of p covers a locked cell.
// Cells outside the field are not considered.
func overlaps(p Piece, f *Field) bool {
	for _, c := range p.Cells() {
		if InBounds(c.X, c.Y) && f.At(c.X, c.Y) != Empty {
			return true
		}
	}
	return false
}

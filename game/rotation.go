package game

// Orientation is one of four rotational states, a quarter turn apart.
type Orientation int

const (
	Up Orientation = iota
	Right
	Down
	Left
)

// Normalize maps any orientation value onto [0, 4).
func (o Orientation) Normalize() Orientation {
	o %= 4
	if o < 0 {
		o += 4
	}
	return o
}

// Next returns the orientation one quarter turn clockwise.
func (o Orientation) Next() Orientation {
	return (o.Normalize() + 1) % 4
}

func (o Orientation) String() string {
	switch o.Normalize() {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	default:
		return "Left"
	}
}

// rotations maps a local (x, y) to a pattern index, one entry per
// orientation. The order of the arithmetic matters.
var rotations = [4]func(x, y int) int{
	func(x, y int) int { return y*4 + x },
	func(x, y int) int { return 12 + y - x*4 },
	func(x, y int) int { return 15 - y*4 - x },
	func(x, y int) int { return 3 - y + x*4 },
}

// CellIndex returns the index into a kind's pattern for the local cell (x, y)
// of a piece in orientation o. x and y must be in [0, 4).
func CellIndex(x, y int, o Orientation) int {
	return rotations[o.Normalize()](x, y)
}

package game

// try commits candidate as the active piece when it fits.
func (s *State) try(candidate Piece) bool {
	if !s.Fits(candidate) {
		return false
	}
	s.active = candidate
	return true
}

func (s *State) controllable() bool {
	return s.status == Running && s.hasActive
}

// MoveLeft shifts the active piece one column left if the result fits.
func (s *State) MoveLeft() bool {
	if !s.controllable() {
		return false
	}
	return s.try(s.active.Moved(-1, 0))
}

// MoveRight shifts the active piece one column right if the result fits.
func (s *State) MoveRight() bool {
	if !s.controllable() {
		return false
	}
	return s.try(s.active.Moved(1, 0))
}

// SoftDrop moves the active piece down one row if the result fits.
func (s *State) SoftDrop() bool {
	if !s.controllable() {
		return false
	}
	return s.try(s.active.Moved(0, 1))
}

// Rotate turns the active piece a quarter clockwise in place. There is no
// kick search: a rotation that does not fit where it is gets rejected.
func (s *State) Rotate() bool {
	if !s.controllable() {
		return false
	}
	return s.try(s.active.Rotated())
}

// HardDrop moves the active piece down until the next row no longer fits and
// returns the number of rows travelled. The piece locks on the next gravity
// step, not here.
func (s *State) HardDrop() int {
	rows := 0
	for s.SoftDrop() {
		rows++
	}
	return rows
}

// landing returns where the active piece would rest after a hard drop.
func (s *State) landing() Piece {
	p := s.active
	for {
		next := p.Moved(0, 1)
		if !s.Fits(next) {
			return p
		}
		p = next
	}
}

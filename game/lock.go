package game

// scoreTable maps rows cleared in one pass to points.
var scoreTable = [...]int{0, 100, 300, 500, 800}

// ScoreFor returns the points awarded for clearing lines rows in one pass.
// Counts outside 1 through 4 score nothing.
func ScoreFor(lines int) int {
	if lines < 0 || lines >= len(scoreTable) {
		return 0
	}
	return scoreTable[lines]
}

// Lock writes the active piece into the field and clears the active slot. A
// cell locked into the top row ends the game. Lock reports false when there
// is nothing to lock.
func (s *State) Lock() bool {
	if !s.controllable() {
		return false
	}

	p := s.active
	topOut := false
	for _, c := range p.Cells() {
		if !InBounds(c.X, c.Y) {
			continue
		}
		s.field.Set(c.X, c.Y, CellOf(p.Kind))
		if c.Y <= 0 {
			topOut = true
		}
	}

	s.hasActive = false
	s.active = Piece{}
	s.pieces++
	s.emit(Event{Kind: EventLocked, Piece: p})

	if topOut {
		s.end(ReasonLockOut, p)
	}
	return true
}

// ClearLines removes full rows and awards points for the pass. It returns the
// number of rows removed.
func (s *State) ClearLines() int {
	lines := s.field.ClearLines()
	if lines == 0 {
		return 0
	}

	points := ScoreFor(lines)
	s.score += points
	s.lines += lines
	s.stats.recordClear(lines)
	s.stats.recordScore(s.score)
	s.emit(Event{Kind: EventLinesCleared, Lines: lines, Points: points})
	return lines
}

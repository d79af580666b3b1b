package game

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Cells      [Rows][Cols]Cell
	HasActive  bool
	ActiveKind Kind
	Active     []Point
	Ghost      []Point
	Score      int
	Lines      int
	Pieces     int
	Status     Status
}

// Snapshot copies the current state for rendering. Ghost holds the cells the
// active piece would cover after a hard drop.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Cells:  s.field.Grid(),
		Score:  s.score,
		Lines:  s.lines,
		Pieces: s.pieces,
		Status: s.status,
	}

	if s.hasActive {
		snap.HasActive = true
		snap.ActiveKind = s.active.Kind
		snap.Active = s.active.Cells()
		snap.Ghost = s.landing().Cells()
	}

	return snap
}

// Covers reports whether the snapshot's active piece occupies (x, y).
func (snap *Snapshot) Covers(x, y int) bool {
	for _, c := range snap.Active {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// Shadows reports whether the ghost piece occupies (x, y).
func (snap *Snapshot) Shadows(x, y int) bool {
	for _, c := range snap.Ghost {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

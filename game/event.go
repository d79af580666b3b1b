package game

// EventKind classifies an Event.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventLocked
	EventLinesCleared
	EventGameOver
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// EndReason tells which top-out condition ended a game.
type EndReason int

const (
	// ReasonNone is used by events other than EventGameOver.
	ReasonNone EndReason = iota
	// ReasonBlockOut: a new piece overlapped locked cells at spawn.
	ReasonBlockOut
	// ReasonLockOut: a piece locked with a cell in the top row.
	ReasonLockOut
)

func (r EndReason) String() string {
	switch r {
	case ReasonBlockOut:
		return "block_out"
	case ReasonLockOut:
		return "lock_out"
	default:
		return "none"
	}
}

// Event records something that happened during a tick. Events are buffered
// in the State until drained.
type Event struct {
	Kind   EventKind
	Piece  Piece
	Lines  int
	Points int
	Score  int
	Reason EndReason
}

func (s *State) emit(e Event) {
	e.Score = s.score
	s.events = append(s.events, e)
}

// Events returns the buffered events without clearing them.
func (s *State) Events() []Event {
	return s.events
}

// DrainEvents returns the buffered events and empties the buffer.
func (s *State) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.events = s.events[:0]
	return events
}

package game

import "math/rand/v2"

// DropFrames is the number of ticks between two gravity steps. At 60 ticks
// per second a piece falls one row every half second.
const DropFrames = 30

// SpawnX and SpawnY place a new piece's box centered at the top of the field.
const (
	SpawnX = Cols/2 - 2
	SpawnY = 0
)

// Status is the play state of a game.
type Status int

const (
	Running Status = iota
	Ended
)

func (s Status) String() string {
	if s == Ended {
		return "ended"
	}
	return "running"
}

// Source supplies the random draws for spawning. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// State is the complete mutable state of one game session.
type State struct {
	field     Field
	active    Piece
	hasActive bool

	score  int
	lines  int
	pieces int
	status Status

	// ticks since the last gravity step
	dropCounter int

	src    Source
	events []Event
	stats  *Stats
}

// New returns a running game on an empty field with no active piece. The
// first Spawn installs one.
func New(src Source) *State {
	return &State{
		src:   src,
		stats: newStats(),
	}
}

// NewSeeded returns a game whose spawn sequence is determined by seed.
func NewSeeded(seed int64) *State {
	return New(rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)))
}

// NewWithField returns a running game on a copy of f.
func NewWithField(src Source, f Field) *State {
	s := New(src)
	s.field = f
	return s
}

// Field returns a copy of the locked cells.
func (s *State) Field() Field {
	return s.field
}

// Active returns the falling piece. ok is false while no piece is active.
func (s *State) Active() (p Piece, ok bool) {
	return s.active, s.hasActive
}

func (s *State) Score() int { return s.score }
func (s *State) Lines() int { return s.lines }
func (s *State) Pieces() int { return s.pieces }
func (s *State) Status() Status { return s.status }
func (s *State) Ended() bool { return s.status == Ended }
func (s *State) Stats() *Stats { return s.stats }
func (s *State) DropCounter() int { return s.dropCounter }

// NeedsSpawn reports whether the game is running without an active piece.
func (s *State) NeedsSpawn() bool {
	return s.status == Running && !s.hasActive
}

// Fits reports whether p is a legal placement on the current field.
func (s *State) Fits(p Piece) bool {
	return p.Fits(&s.field)
}

// Spawn draws a uniformly random kind and orientation and spawns it.
func (s *State) Spawn() bool {
	k := Kind(s.src.IntN(KindCount))
	o := Orientation(s.src.IntN(4))
	return s.SpawnKind(k, o)
}

// SpawnKind places a piece of kind k in orientation o at the spawn position.
// If any of its cells overlaps a locked cell the game ends, the field is left
// untouched and no piece is installed.
func (s *State) SpawnKind(k Kind, o Orientation) bool {
	if s.status == Ended {
		return false
	}

	p := Piece{Kind: k, Orientation: o.Normalize(), X: SpawnX, Y: SpawnY}
	if overlaps(p, &s.field) {
		s.hasActive = false
		s.end(ReasonBlockOut, p)
		return false
	}

	s.install(p)
	s.stats.recordSpawn(k)
	s.emit(Event{Kind: EventSpawned, Piece: p})
	return true
}

// Place installs p as the active piece if it fits, replacing any current one.
func (s *State) Place(p Piece) bool {
	if s.status == Ended || !s.Fits(p) {
		return false
	}
	s.install(p)
	return true
}

func (s *State) install(p Piece) {
	s.active = p
	s.hasActive = true
	s.dropCounter = 0
}

// Tick advances gravity by one frame. Every DropFrames ticks the active piece
// moves down one row, or, if it cannot, is locked and full rows are cleared.
func (s *State) Tick() {
	if s.status == Ended || !s.hasActive {
		return
	}

	s.dropCounter++
	if s.dropCounter < DropFrames {
		return
	}
	s.dropCounter = 0

	if s.SoftDrop() {
		return
	}

	s.Lock()
	s.ClearLines()
}

// Reset empties the field, zeroes the score and returns to Running with no
// active piece. Cross-game Stats are kept.
func (s *State) Reset() {
	s.field.Clear()
	s.hasActive = false
	s.active = Piece{}
	s.score = 0
	s.lines = 0
	s.pieces = 0
	s.status = Running
	s.dropCounter = 0
	s.emit(Event{Kind: EventReset})
}

func (s *State) end(reason EndReason, p Piece) {
	if s.status == Ended {
		return
	}
	s.status = Ended
	s.stats.recordGameOver(s.score)
	s.emit(Event{Kind: EventGameOver, Piece: p, Reason: reason})
}

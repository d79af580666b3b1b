package play

import (
	"context"
	"sync"
	"time"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/game"
)

// DefaultTPS is the frame rate the gravity cadence is tuned for.
const DefaultTPS = 60

// Session owns a game.State and the scheduler that advances it. Actions may be
// pushed from any goroutine; everything else must happen on the goroutine
// that calls Step or Run.
type Session struct {
	state     *game.State
	scheduler *frame.Scheduler[*Session]
	listeners []Listener
	tps       int

	mu      sync.Mutex
	pending []Action

	quit   bool
	cancel context.CancelFunc
}

// NewSession wraps state and registers the core systems in order: input,
// gravity, spawn, events.
func NewSession(state *game.State, listeners ...Listener) *Session {
	s := &Session{
		state:     state,
		listeners: listeners,
		tps:       DefaultTPS,
	}

	s.scheduler = frame.NewScheduler(s)
	s.scheduler.Register(&InputSystem{})
	s.scheduler.Register(&GravitySystem{})
	s.scheduler.Register(&SpawnSystem{})
	s.scheduler.Register(&EventSystem{})

	return s
}

// SetTPS changes the delta time reported to systems. Gravity stays frame
// counted.
func (s *Session) SetTPS(tps int) {
	if tps > 0 {
		s.tps = tps
	}
}

// TPS returns the configured frame rate.
func (s *Session) TPS() int {
	return s.tps
}

// AddListener subscribes l to game events.
func (s *Session) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// AddSystem appends a system that runs after the core systems, typically a
// renderer.
func (s *Session) AddSystem(system frame.System[*Session]) {
	s.scheduler.Register(system)
}

// Push queues an action for the next frame.
func (s *Session) Push(a Action) {
	s.mu.Lock()
	s.pending = append(s.pending, a)
	s.mu.Unlock()
}

func (s *Session) drain() []Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return nil
	}
	actions := s.pending
	s.pending = nil
	return actions
}

// Step advances the game by one frame.
func (s *Session) Step() {
	s.scheduler.Once(1.0 / float64(s.tps))
}

// Run steps the game at the configured rate until ctx is cancelled or a Quit
// action is processed.
func (s *Session) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.cancel = cancel
	defer func() { s.cancel = nil }()

	if s.quit {
		return
	}
	s.scheduler.Run(ctx, time.Second/time.Duration(s.tps))
}

// Snapshot returns a read-only copy of the game for rendering.
func (s *Session) Snapshot() game.Snapshot {
	return s.state.Snapshot()
}

// Stats returns the cross-game statistics.
func (s *Session) Stats() *game.Stats {
	return s.state.Stats()
}

// SchedulerStats returns per-system timings.
func (s *Session) SchedulerStats() *frame.SchedulerStats {
	return s.scheduler.GetStats()
}

// Ticks returns the number of frames stepped.
func (s *Session) Ticks() uint64 {
	return s.scheduler.Ticks()
}

// Quit reports whether a Quit action has been processed.
func (s *Session) Quit() bool {
	return s.quit
}

func (s *Session) apply(a Action) bool {
	st := s.state
	switch a {
	case MoveLeft:
		return st.MoveLeft()
	case MoveRight:
		return st.MoveRight()
	case SoftDrop:
		return st.SoftDrop()
	case Rotate:
		return st.Rotate()
	case HardDrop:
		return st.HardDrop() > 0
	case Restart:
		if !st.Ended() {
			return false
		}
		st.Reset()
		return true
	case Quit:
		s.quit = true
		if s.cancel != nil {
			s.cancel()
		}
		return true
	}
	return false
}

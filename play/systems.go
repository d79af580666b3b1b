package play

import "github.com/plus3/blockfall/frame"

// InputSystem applies the actions queued since the previous frame.
type InputSystem struct {
	Applied  int
	Rejected int
}

func (s *InputSystem) Execute(f *frame.Frame[*Session]) {
	for _, a := range f.World.drain() {
		if f.World.apply(a) {
			s.Applied++
		} else {
			s.Rejected++
		}
	}
}

// GravitySystem advances the drop counter, moving, locking and clearing.
type GravitySystem struct{}

func (s *GravitySystem) Execute(f *frame.Frame[*Session]) {
	f.World.state.Tick()
}

// SpawnSystem installs a new piece when the game runs without one.
type SpawnSystem struct{}

func (s *SpawnSystem) Execute(f *frame.Frame[*Session]) {
	if f.World.state.NeedsSpawn() {
		f.World.state.Spawn()
	}
}

// EventSystem hands the frame's events to every listener once all systems
// have run.
type EventSystem struct {
	Delivered int
}

func (s *EventSystem) Execute(f *frame.Frame[*Session]) {
	events := f.World.state.DrainEvents()
	if len(events) == 0 {
		return
	}

	session := f.World
	f.Commands.Defer(func() {
		for _, e := range events {
			for _, l := range session.listeners {
				l.Handle(e)
			}
			s.Delivered++
		}
	})
}

package play_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/play"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kindSource spawns its kind every time, always in orientation Up.
type kindSource game.Kind

func (k kindSource) IntN(n int) int {
	if n == game.KindCount {
		return int(k)
	}
	return 0
}

type recorder struct {
	events []game.Event
}

func (r *recorder) Handle(e game.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []game.EventKind {
	kinds := make([]game.EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func columns(points []game.Point) []int {
	seen := map[int]bool{}
	var cols []int
	for _, p := range points {
		if !seen[p.X] {
			seen[p.X] = true
			cols = append(cols, p.X)
		}
	}
	return cols
}

func newBoxSession(t *testing.T) (*play.Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	s := play.NewSession(game.New(kindSource(game.Box)), rec)
	return s, rec
}

func TestFirstStepSpawns(t *testing.T) {
	s, rec := newBoxSession(t)

	s.Step()

	snap := s.Snapshot()
	require.True(t, snap.HasActive)
	assert.Equal(t, game.Box, snap.ActiveKind)
	assert.ElementsMatch(t, []int{4, 5}, columns(snap.Active))
	assert.Equal(t, []game.EventKind{game.EventSpawned}, rec.kinds())
	assert.Equal(t, uint64(1), s.Ticks())
}

func TestInputRunsBeforeSpawn(t *testing.T) {
	s, _ := newBoxSession(t)

	// no piece yet, so the move is rejected
	s.Push(play.MoveLeft)
	s.Step()
	assert.ElementsMatch(t, []int{4, 5}, columns(s.Snapshot().Active))

	s.Push(play.MoveLeft)
	s.Push(play.MoveLeft)
	s.Step()
	assert.ElementsMatch(t, []int{2, 3}, columns(s.Snapshot().Active))
}

func TestHardDropLocksOnGravityStep(t *testing.T) {
	s, rec := newBoxSession(t)
	s.Step()

	s.Push(play.HardDrop)
	s.Step()

	snap := s.Snapshot()
	require.True(t, snap.HasActive)
	assert.ElementsMatch(t, snap.Ghost, snap.Active)
	assert.Equal(t, 0, snap.Pieces)

	for i := 0; i < game.DropFrames && s.Snapshot().Pieces == 0; i++ {
		s.Step()
	}

	snap = s.Snapshot()
	assert.Equal(t, 1, snap.Pieces)
	assert.Equal(t, game.CellOf(game.Box), snap.Cells[game.Rows-1][4])
	assert.Equal(t, game.CellOf(game.Box), snap.Cells[game.Rows-2][5])
	assert.Equal(t,
		[]game.EventKind{game.EventSpawned, game.EventLocked, game.EventSpawned},
		rec.kinds())
}

func TestRestartOnlyWhileEnded(t *testing.T) {
	var f game.Field
	f.Set(4, 1, game.CellOf(game.T))

	rec := &recorder{}
	s := play.NewSession(game.NewWithField(kindSource(game.Box), f), rec)

	s.Step()
	require.Equal(t, game.Ended, s.Snapshot().Status)
	require.Len(t, rec.events, 1)
	assert.Equal(t, game.EventGameOver, rec.events[0].Kind)
	assert.Equal(t, game.ReasonBlockOut, rec.events[0].Reason)
	assert.Equal(t, game.CellOf(game.T), s.Snapshot().Cells[1][4])

	s.Push(play.Restart)
	s.Step()

	snap := s.Snapshot()
	assert.Equal(t, game.Running, snap.Status)
	assert.True(t, snap.HasActive)
	assert.Equal(t, game.Empty, snap.Cells[1][4])
	assert.Equal(t,
		[]game.EventKind{game.EventGameOver, game.EventReset, game.EventSpawned},
		rec.kinds())

	// a second restart while running is ignored
	s.Push(play.Restart)
	s.Step()
	assert.Len(t, rec.events, 3)
	assert.Equal(t, 1, s.Stats().Games)
}

func TestQuitStopsRun(t *testing.T) {
	s, _ := newBoxSession(t)
	s.SetTPS(1000)

	done := make(chan struct{})
	go func() {
		s.Run(context.Background())
		close(done)
	}()

	s.Push(play.Quit)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("session did not stop after quit")
	}
	assert.True(t, s.Quit())
}

func TestRunStopsOnCancel(t *testing.T) {
	s, _ := newBoxSession(t)
	s.SetTPS(1000)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("session did not stop after cancel")
	}
	assert.False(t, s.Quit())
	assert.NotZero(t, s.Ticks())
}

func TestSystemOrder(t *testing.T) {
	s, _ := newBoxSession(t)

	var sawActive bool
	s.AddSystem(frame.SystemFunc[*play.Session](func(f *frame.Frame[*play.Session]) {
		sawActive = f.World.Snapshot().HasActive
	}))
	s.Step()

	assert.True(t, sawActive)

	stats := s.SchedulerStats()
	names := make([]string, len(stats.Systems))
	for i, sys := range stats.Systems {
		names[i] = sys.Name
		assert.Equal(t, int64(1), sys.ExecutionCount)
	}
	assert.Equal(t, []string{"InputSystem", "GravitySystem", "SpawnSystem", "EventSystem"}, names[:4])
}

func TestSetTPSIgnoresNonPositive(t *testing.T) {
	s, _ := newBoxSession(t)
	assert.Equal(t, play.DefaultTPS, s.TPS())

	s.SetTPS(0)
	assert.Equal(t, play.DefaultTPS, s.TPS())

	s.SetTPS(120)
	assert.Equal(t, 120, s.TPS())
}

func TestActionString(t *testing.T) {
	assert.Len(t, play.Actions(), 7)
	assert.Equal(t, "hard_drop", play.HardDrop.String())
	assert.Equal(t, "unknown", play.Action(99).String())
}

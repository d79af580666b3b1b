package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/play"
)

// Overlay bundles the debug windows for one session.
type Overlay struct {
	Input ImguiInputState

	session   *play.Session
	inspector *StateInspector
	perf      *PerformanceStats
	events    *EventLog
	timer     *FrameTimer
}

// Attach creates the debug windows for session, subscribes the event log and
// registers the ImguiSystem after the session's core systems. The frontend
// must wrap Session.Step between the backend's BeginFrame and EndFrame.
func Attach(session *play.Session) *Overlay {
	o := &Overlay{
		session:   session,
		inspector: NewStateInspector(),
		perf:      NewPerformanceStats(120),
		events:    NewEventLog(200),
		timer:     NewFrameTimer(),
	}

	session.AddListener(o.events)
	session.AddSystem(&ImguiSystem{
		InputState: &o.Input,
		Items: []ImguiItem{
			{Render: o.renderControls},
			{Render: func() { o.inspector.Render(o.session.Snapshot()) }},
			{Render: func() {
				o.perf.Record(o.timer.GetDeltaTime())
				o.perf.Render(o.session.SchedulerStats(), o.session.Stats())
			}},
			{Render: o.events.Render},
		},
	})

	return o
}

// Events returns the overlay's event log.
func (o *Overlay) Events() *EventLog {
	return o.events
}

func (o *Overlay) renderControls() {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := o.session.Snapshot()
	imgui.Text(fmt.Sprintf("Tick: %d", o.session.Ticks()))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d  Pieces: %d", snap.Score, snap.Lines, snap.Pieces))

	if snap.Status == game.Ended {
		imgui.Text("Game over")
		if imgui.Button("Restart") {
			o.session.Push(play.Restart)
		}
	} else {
		if imgui.Button("Hard Drop") {
			o.session.Push(play.HardDrop)
		}
		imgui.SameLine()
		if imgui.Button("Rotate") {
			o.session.Push(play.Rotate)
		}
	}

	imgui.End()
}

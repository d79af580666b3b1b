package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
)

// EventEntry is one logged event with its sequence number.
type EventEntry struct {
	Seq   int
	Event game.Event
}

// EventLog keeps the most recent game events. It is a play.Listener.
type EventLog struct {
	capacity   int
	entries    []EventEntry
	next       int
	seq        int
	filterText string
}

func NewEventLog(capacity int) *EventLog {
	if capacity < 1 {
		capacity = 1
	}
	return &EventLog{
		capacity: capacity,
		entries:  make([]EventEntry, 0, capacity),
	}
}

// Handle records e, evicting the oldest entry once the log is full.
func (el *EventLog) Handle(e game.Event) {
	el.seq++
	entry := EventEntry{Seq: el.seq, Event: e}
	if len(el.entries) < el.capacity {
		el.entries = append(el.entries, entry)
		return
	}
	el.entries[el.next] = entry
	el.next = (el.next + 1) % el.capacity
}

// Entries returns the logged events, oldest first.
func (el *EventLog) Entries() []EventEntry {
	out := make([]EventEntry, 0, len(el.entries))
	out = append(out, el.entries[el.next:]...)
	out = append(out, el.entries[:el.next]...)
	return out
}

// Filtered returns the entries whose description contains filter.
func (el *EventLog) Filtered(filter string) []EventEntry {
	entries := el.Entries()
	if filter == "" {
		return entries
	}
	filter = strings.ToLower(filter)

	out := entries[:0]
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(Describe(entry.Event)), filter) {
			out = append(out, entry)
		}
	}
	return out
}

// Describe formats the details of e for display.
func Describe(e game.Event) string {
	switch e.Kind {
	case game.EventSpawned, game.EventLocked:
		return fmt.Sprintf("%s %s", e.Kind, e.Piece)
	case game.EventLinesCleared:
		return fmt.Sprintf("%s lines=%d points=%d", e.Kind, e.Lines, e.Points)
	case game.EventGameOver:
		return fmt.Sprintf("%s reason=%s", e.Kind, e.Reason)
	default:
		return e.Kind.String()
	}
}

func (el *EventLog) Render() {
	if !imgui.BeginV("Event Log", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##filter", "Filter...", &el.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		el.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EventTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Event")
		imgui.TableSetupColumn("Score")
		imgui.TableHeadersRow()

		entries := el.Filtered(el.filterText)
		for i := len(entries) - 1; i >= 0; i-- {
			entry := entries[i]
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entry.Seq))
			imgui.TableNextColumn()
			imgui.Text(Describe(entry.Event))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entry.Event.Score))
		}

		imgui.EndTable()
	}

	imgui.End()
}

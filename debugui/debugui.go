// Package debugui draws a Dear ImGui overlay on top of a running game session:
// a state inspector, system performance stats and a log of recent events.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/play"
)

// ImguiItem holds a Dear ImGui render function run once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether ImGui is consuming mouse or keyboard input.
// Frontends should skip game input while WantCaptureKeyboard is set.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes the input state and defers every item's render
// function so windows are built after the game systems have run.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState *ImguiInputState
}

// Execute updates input state and queues all ImGui render functions.
func (i *ImguiSystem) Execute(f *frame.Frame[*play.Session]) {
	if i.InputState != nil {
		io := imgui.CurrentIO()
		i.InputState.WantCaptureMouse = io.WantCaptureMouse()
		i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range i.Items {
		f.Commands.Defer(item.Render)
	}
}

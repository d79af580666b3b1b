// Package rlgui runs a session in a raylib window.
package rlgui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/blockfall/play"
)

// Binding maps one raylib key code to one action.
type Binding struct {
	Key    int32
	Action play.Action
}

var DefaultBindings = []Binding{
	{rl.KeyLeft, play.MoveLeft},
	{rl.KeyRight, play.MoveRight},
	{rl.KeyDown, play.SoftDrop},
	{rl.KeyUp, play.Rotate},
	{rl.KeySpace, play.HardDrop},
	{rl.KeyEnter, play.Restart},
	{rl.KeyKpEnter, play.Restart},
	{rl.KeyQ, play.Quit},
}

// PressedActions returns the actions whose key pressed reports, in binding
// order.
func PressedActions(bindings []Binding, pressed func(int32) bool) []play.Action {
	var actions []play.Action
	for _, b := range bindings {
		if pressed(b.Key) {
			actions = append(actions, b.Action)
		}
	}
	return actions
}

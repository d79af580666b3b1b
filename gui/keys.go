// Package gui runs a session in an Ebiten window.
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/play"
)

// Binding maps one key to one action.
type Binding struct {
	Key    ebiten.Key
	Action play.Action
}

// DefaultBindings are the arrow keys plus space, enter and escape or Q.
var DefaultBindings = []Binding{
	{ebiten.KeyArrowLeft, play.MoveLeft},
	{ebiten.KeyArrowRight, play.MoveRight},
	{ebiten.KeyArrowDown, play.SoftDrop},
	{ebiten.KeyArrowUp, play.Rotate},
	{ebiten.KeySpace, play.HardDrop},
	{ebiten.KeyEnter, play.Restart},
	{ebiten.KeyNumpadEnter, play.Restart},
	{ebiten.KeyEscape, play.Quit},
	{ebiten.KeyQ, play.Quit},
}

// PressedActions returns the actions whose key justPressed reports, in
// binding order.
func PressedActions(bindings []Binding, justPressed func(ebiten.Key) bool) []play.Action {
	var actions []play.Action
	for _, b := range bindings {
		if justPressed(b.Key) {
			actions = append(actions, b.Action)
		}
	}
	return actions
}

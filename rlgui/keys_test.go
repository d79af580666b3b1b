package rlgui_test

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/blockfall/play"
	"github.com/plus3/blockfall/rlgui"
	"github.com/stretchr/testify/assert"
)

func TestPressedActions(t *testing.T) {
	down := map[int32]bool{rl.KeyUp: true, rl.KeySpace: true, rl.KeyA: true}
	got := rlgui.PressedActions(rlgui.DefaultBindings, func(k int32) bool { return down[k] })
	assert.Equal(t, []play.Action{play.Rotate, play.HardDrop}, got)

	assert.Empty(t, rlgui.PressedActions(rlgui.DefaultBindings, func(int32) bool { return false }))
}

func TestDefaultBindingsCoverEveryAction(t *testing.T) {
	bound := map[play.Action]bool{}
	for _, b := range rlgui.DefaultBindings {
		bound[b.Action] = true
	}
	for _, a := range play.Actions() {
		assert.True(t, bound[a], "no key for %s", a)
	}
}

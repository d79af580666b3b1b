package gui_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/gui"
	"github.com/plus3/blockfall/play"
	"github.com/stretchr/testify/assert"
)

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := map[ebiten.Key]bool{}
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestPressedActions(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want []play.Action
	}{
		{name: "nothing", keys: nil, want: nil},
		{name: "left", keys: []ebiten.Key{ebiten.KeyArrowLeft}, want: []play.Action{play.MoveLeft}},
		{name: "rotate and drop", keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp}, want: []play.Action{play.Rotate, play.HardDrop}},
		{name: "restart", keys: []ebiten.Key{ebiten.KeyEnter}, want: []play.Action{play.Restart}},
		{name: "quit with q", keys: []ebiten.Key{ebiten.KeyQ}, want: []play.Action{play.Quit}},
		{name: "unbound", keys: []ebiten.Key{ebiten.KeyA}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gui.PressedActions(gui.DefaultBindings, pressed(tt.keys...)))
		})
	}
}

func TestDefaultBindingsCoverEveryAction(t *testing.T) {
	bound := map[play.Action]bool{}
	for _, b := range gui.DefaultBindings {
		bound[b.Action] = true
	}
	for _, a := range play.Actions() {
		assert.True(t, bound[a], "no key for %s", a)
	}
}

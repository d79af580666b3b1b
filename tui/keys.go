// Package tui runs a session on a terminal screen using tcell.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/play"
)

// ActionForKey maps a key event to a game action.
func ActionForKey(ev *tcell.EventKey) (play.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return play.MoveLeft, true
	case tcell.KeyRight:
		return play.MoveRight, true
	case tcell.KeyDown:
		return play.SoftDrop, true
	case tcell.KeyUp:
		return play.Rotate, true
	case tcell.KeyEnter:
		return play.Restart, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return play.Quit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return play.HardDrop, true
		case 'q', 'Q':
			return play.Quit, true
		}
	}
	return 0, false
}

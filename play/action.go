// Package play drives a game.State one frame at a time: it queues player
// actions, runs the input, gravity, spawn and event systems in a fixed order
// and fans game events out to listeners such as the logger or the sound
// manager.
package play

// Action is one edge-triggered player command.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	SoftDrop
	Rotate
	HardDrop
	Restart
	Quit
)

var actionNames = [...]string{
	MoveLeft:  "move_left",
	MoveRight: "move_right",
	SoftDrop:  "soft_drop",
	Rotate:    "rotate",
	HardDrop:  "hard_drop",
	Restart:   "restart",
	Quit:      "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Actions lists every action in declaration order.
func Actions() []Action {
	return []Action{MoveLeft, MoveRight, SoftDrop, Rotate, HardDrop, Restart, Quit}
}

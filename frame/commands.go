package frame

// Commands buffers work that must run after every system of the frame has
// executed, such as drawing debug windows or notifying listeners.
type Commands struct {
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues fn to run when the frame's commands are flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs all queued commands in order and resets the buffer. Commands
// queued while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i].fn()
	}
	c.defers = c.defers[:0]
}

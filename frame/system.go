// Package frame runs an ordered list of systems once per frame over a shared
// world value, with deferred commands and per-system timing statistics.
package frame

// System represents one step of a frame. Systems run in registration order and
// may keep their own state between frames.
type System[W any] interface {
	Execute(f *Frame[W])
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc[W any] func(f *Frame[W])

// Execute calls fn(f).
func (fn SystemFunc[W]) Execute(f *Frame[W]) {
	fn(f)
}

// Named can be implemented by a system to choose the name shown in stats.
type Named interface {
	Name() string
}

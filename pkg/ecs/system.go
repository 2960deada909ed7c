package ecs

// System is one independently schedulable unit of per-frame logic. Systems
// are keyed by their Go type inside a Scene: at most one instance of a given
// type can be added.
//
// Priority is fixed for the system's lifetime and only used for ordering;
// lower values run earlier. The enabled flag is runtime state, on by
// default, and is read at the moment the system's turn comes during an
// update pass, so disabling a system mid-pass prevents it from running in
// the same pass when it has not been reached yet.
type System interface {
	// Priority returns the fixed scheduling priority; lower runs first.
	Priority() int

	// Enabled reports whether the system should run.
	Enabled() bool

	// SetEnabled toggles the system on or off.
	SetEnabled(enabled bool)

	// Update runs one frame of the system's logic. dt is the elapsed time
	// in seconds since the previous frame.
	Update(scene *Scene, dt float64)
}

// BaseSystem carries the enabled flag so concrete systems only need to
// implement Priority and Update. Embed it by value.
type BaseSystem struct {
	disabled bool
}

// Enabled reports whether the system should run. Systems start enabled.
func (b *BaseSystem) Enabled() bool { return !b.disabled }

// SetEnabled toggles the system on or off. Setting the current value again
// has no further effect.
func (b *BaseSystem) SetEnabled(enabled bool) { b.disabled = !enabled }

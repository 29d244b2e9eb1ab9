package interaction

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ray is a controller's world-space pointing ray, refreshed every frame from
// the device pose.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// ControllerInput is the per-tick pose sample for one physical device.
type ControllerInput struct {
	Connected bool
	Visible   bool
	Origin    rl.Vector3
	Direction rl.Vector3
	Selecting bool
}

type rotationMode int

const (
	rotationYaw rotationMode = iota
	rotationPitch
)

// rotationState is captured once at select-start. The basis is frozen from
// the viewer orientation at that moment so head movement during the drag does
// not itself rotate the object.
type rotationState struct {
	mode         rotationMode
	pivot        rl.Vector3
	right        rl.Vector3
	back         rl.Vector3
	up           rl.Vector3
	initialAngle float32
	initialYaw   float32
	initialPitch float32
}

// scaleState is captured once at select-start of a volume scale gesture.
type scaleState struct {
	direction rl.Vector3 // frozen unit vector, volume center to handle
	baseline  float32    // start distance divided by the user scale at start
}

// ControllerEntry is the per-device interaction state. One exists per
// physical pointing device for the lifetime of the immersive session; it is
// reset to neutral on connect, disconnect and visibility loss.
type ControllerEntry struct {
	Index     int
	Connected bool
	Visible   bool

	Ray       Ray
	RayLength float32
	Selecting bool

	// Hover is re-resolved every frame and never persisted; Active is pinned
	// from hover at select-start and held until select-end.
	Hover         Target
	HoverDistance float32
	Active        Target

	// HoverTrackID is the trajectory the ray points at when no UI target is
	// hit; -1 when none.
	HoverTrackID int

	grabOffset rl.Vector3
	grabbing   bool
	rotation   *rotationState
	scale      *scaleState

	lastLocalX, lastLocalY float32
	lastLocalValid         bool
}

// NewControllerEntry creates a neutral entry for a device slot.
func NewControllerEntry(index int) *ControllerEntry {
	e := &ControllerEntry{Index: index}
	e.reset()
	return e
}

// reset drops all hover, selection and gesture state in one assignment. An
// in-progress drag is abandoned without firing its commit action.
func (e *ControllerEntry) reset() {
	*e = ControllerEntry{Index: e.Index, HoverTrackID: -1}
}

// clearGesture drops the transient gesture state while keeping connection
// and hover bookkeeping.
func (e *ControllerEntry) clearGesture() {
	e.grabOffset = rl.Vector3{}
	e.grabbing = false
	e.rotation = nil
	e.scale = nil
	e.lastLocalValid = false
}

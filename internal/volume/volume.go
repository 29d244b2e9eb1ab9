package volume

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"volview/internal/geom"
)

// Transform is the volume root's pose: a world-space pivot, yaw/pitch about
// that pivot, and a user scale applied on top of the dataset's base scale.
// The rendered root position is offset-compensated so the volume's content
// center stays on the pivot while rotating or scaling.
type Transform struct {
	Pivot     rl.Vector3
	Yaw       float32
	Pitch     float32
	UserScale float32

	// ContentOffset is the local offset from the volume root to the content
	// center, set once when the dataset loads.
	ContentOffset rl.Vector3

	defaults struct {
		pivot     rl.Vector3
		yaw       float32
		pitch     float32
		userScale float32
	}
}

// NewTransform creates a transform at the given pivot with unit user scale.
func NewTransform(pivot, contentOffset rl.Vector3) *Transform {
	t := &Transform{Pivot: pivot, UserScale: 1, ContentOffset: contentOffset}
	t.defaults.pivot = pivot
	t.defaults.userScale = 1
	return t
}

// RootPosition returns the world position of the volume root: the pivot minus
// the rotated, scaled content offset.
func (t *Transform) RootPosition() rl.Vector3 {
	m := geom.YawPitchMatrix(t.Yaw, t.Pitch)
	offset := rl.Vector3Transform(rl.Vector3Scale(t.ContentOffset, t.UserScale), m)
	return rl.Vector3Subtract(t.Pivot, offset)
}

// Translate moves the pivot by a world-space delta.
func (t *Transform) Translate(delta rl.Vector3) {
	t.Pivot = rl.Vector3Add(t.Pivot, delta)
}

// SetScale clamps and applies a new user scale.
func (t *Transform) SetScale(scale, minScale, maxScale float32) {
	t.UserScale = geom.Clamp(scale, minScale, maxScale)
}

// Reset restores the load-time pose.
func (t *Transform) Reset() {
	t.Pivot = t.defaults.pivot
	t.Yaw = t.defaults.yaw
	t.Pitch = t.defaults.pitch
	t.UserScale = t.defaults.userScale
}

// HandleKind tags the manipulation handles surrounding the volume.
type HandleKind int

const (
	HandleTranslate HandleKind = iota
	HandleScale
	HandleYawA
	HandleYawB
	HandlePitch
	handleKindCount
)

// Handles is the set of grab spheres around the volume's bounding box.
// Visible only while a session is active, content exists, and the dataset has
// depth greater than one slice.
type Handles struct {
	Transform   *Transform
	HalfExtents rl.Vector3
	Radius      float32

	visible bool
}

// NewHandles creates the handle set for a volume of the given half extents.
func NewHandles(transform *Transform, halfExtents rl.Vector3, radius float32) *Handles {
	return &Handles{Transform: transform, HalfExtents: halfExtents, Radius: radius}
}

// Refresh re-evaluates the visibility gate.
func (h *Handles) Refresh(sessionActive, hasContent bool, depth int) {
	h.visible = sessionActive && hasContent && depth > 1
}

// Visible reports whether the handles participate in candidate resolution.
func (h *Handles) Visible() bool {
	return h.visible
}

// Kinds returns all handle kinds in resolution order.
func Kinds() [handleKindCount]HandleKind {
	return [handleKindCount]HandleKind{HandleTranslate, HandleScale, HandleYawA, HandleYawB, HandlePitch}
}

// Position returns a handle's world-space center. Handles sit on the scaled
// bounding extents around the pivot, in world axes so they stay graspable
// regardless of the volume's rotation.
func (h *Handles) Position(kind HandleKind) rl.Vector3 {
	pad := h.Radius * 2
	s := h.Transform.UserScale
	ext := rl.Vector3Scale(h.HalfExtents, s)
	pivot := h.Transform.Pivot

	switch kind {
	case HandleTranslate:
		return rl.Vector3Add(pivot, rl.Vector3{Y: -ext.Y - pad})
	case HandleScale:
		return rl.Vector3Add(pivot, rl.Vector3{X: ext.X + pad, Y: -ext.Y - pad})
	case HandleYawA:
		return rl.Vector3Add(pivot, rl.Vector3{X: -ext.X - pad})
	case HandleYawB:
		return rl.Vector3Add(pivot, rl.Vector3{X: ext.X + pad})
	case HandlePitch:
		return rl.Vector3Add(pivot, rl.Vector3{Y: ext.Y + pad})
	}
	return pivot
}

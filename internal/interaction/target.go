package interaction

import (
	"volview/internal/hud"
	"volview/internal/volume"
)

// TargetKind tags what a controller ray is addressing.
type TargetKind int

const (
	TargetNone TargetKind = iota
	// TargetPanel is a surface background hit with nothing more specific
	// under the ray; grabbing it translates the whole HUD.
	TargetPanel
	// TargetRegion is a dynamic interactive region inside a surface.
	TargetRegion
	// TargetHUDHandle is one of a surface's chrome handles.
	TargetHUDHandle
	// TargetVolumeHandle is one of the volume manipulation spheres.
	TargetVolumeHandle
)

// Target identifies the element a controller addresses. It is a value type:
// two targets are the same element exactly when they compare equal, which is
// what keeps a drag glued to its handle across frames. The handle kinds
// disambiguate repeated spheres (the two yaw handles).
type Target struct {
	Kind         TargetKind
	Category     hud.Category
	Handle       hud.HandleKind
	VolumeHandle volume.HandleKind
	Region       hud.Region
}

// IsNone reports whether the target addresses nothing.
func (t Target) IsNone() bool { return t.Kind == TargetNone }

// InCategory reports whether the target belongs to the given surface.
func (t Target) InCategory(c hud.Category) bool {
	switch t.Kind {
	case TargetPanel, TargetRegion, TargetHUDHandle:
		return t.Category == c
	}
	return false
}

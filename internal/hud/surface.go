package hud

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"volview/internal/geom"
)

// HandleKind tags the chrome handles every surface carries for moving and
// rotating the HUD itself.
type HandleKind int

const (
	HandleTranslate HandleKind = iota
	HandleYawLeft
	HandleYawRight
	HandlePitch
)

// Handle is one grab/rotate sphere attached to a surface, at a local offset
// proportional to the surface half-extents.
type Handle struct {
	Kind   HandleKind
	Offset rl.Vector3
	Radius float32
}

// Offset factors relative to the surface half extents. The yaw spheres sit
// just outside the left/right edges, pitch above the top edge, translate
// below the bottom edge.
const (
	yawHandleFactor       = 1.15
	pitchHandleFactor     = 1.25
	translateHandleFactor = 1.25
)

// Surface is one oriented HUD rectangle plus its chrome handles and the
// dynamically regenerated list of interactive regions. Content drawing is
// external; the surface only owns geometry and hover state.
type Surface struct {
	Category Category
	Width    float32
	Height   float32

	Handles []Handle

	// Regions is replaced wholesale by the layout provider whenever the
	// underlying application data changes.
	Regions []Region

	// HoverRegion is the region a controller currently addresses, kept for
	// visual feedback only.
	HoverRegion *Region
}

// NewSurface creates a surface of the given size with its four chrome handles.
func NewSurface(category Category, width, height, handleRadius float32) *Surface {
	s := &Surface{Category: category, Width: width, Height: height}
	s.rebuildHandles(handleRadius)
	return s
}

func (s *Surface) rebuildHandles(radius float32) {
	halfW, halfH := s.Width/2, s.Height/2
	s.Handles = []Handle{
		{Kind: HandleTranslate, Offset: rl.Vector3{Y: -halfH * translateHandleFactor}, Radius: radius},
		{Kind: HandleYawLeft, Offset: rl.Vector3{X: -halfW * yawHandleFactor}, Radius: radius},
		{Kind: HandleYawRight, Offset: rl.Vector3{X: halfW * yawHandleFactor}, Radius: radius},
		{Kind: HandlePitch, Offset: rl.Vector3{Y: halfH * pitchHandleFactor}, Radius: radius},
	}
}

// Resize changes the surface height (the layout provider's measure pass can
// grow or shrink a panel) and repositions the chrome handles. The caller must
// re-run layout after a resize; see Measure.
func (s *Surface) Resize(height float32) {
	if s.Height == height {
		return
	}
	radius := float32(0)
	if len(s.Handles) > 0 {
		radius = s.Handles[0].Radius
	}
	s.Height = height
	s.rebuildHandles(radius)
}

// SetRegions replaces the region list wholesale. The previous hover region is
// re-pointed at its value-equal successor, or dropped when the element no
// longer exists.
func (s *Surface) SetRegions(regions []Region) {
	s.Regions = regions
	if s.HoverRegion == nil {
		return
	}
	prev := *s.HoverRegion
	s.HoverRegion = nil
	for i := range s.Regions {
		if s.Regions[i].Equal(prev) {
			s.HoverRegion = &s.Regions[i]
			return
		}
	}
}

// RegionAt returns the first region whose bounds contain the local point.
// Regions must not overlap, so first match wins. Disabled regions are treated
// as not hit.
func (s *Surface) RegionAt(x, y float32) *Region {
	for i := range s.Regions {
		r := &s.Regions[i]
		if r.Disabled {
			continue
		}
		if r.Bounds.Contains(x, y) {
			return r
		}
	}
	return nil
}

// Transform bundles a surface's world placement for coordinate conversions.
type Transform struct {
	Position rl.Vector3
	right    rl.Vector3
	up       rl.Vector3
	normal   rl.Vector3
}

// TransformFor derives the world transform of a surface from its placement.
func TransformFor(p Placement) Transform {
	m := geom.YawPitchMatrix(p.Yaw, p.Pitch)
	return Transform{
		Position: p.Position,
		right:    rl.Vector3Transform(rl.Vector3{X: 1}, m),
		up:       rl.Vector3Transform(rl.Vector3{Y: 1}, m),
		normal:   rl.Vector3Transform(rl.Vector3{Z: 1}, m),
	}
}

// Normal returns the surface plane normal in world space.
func (t Transform) Normal() rl.Vector3 { return t.normal }

// WorldToLocal projects a world point into the surface's local plane.
func (t Transform) WorldToLocal(p rl.Vector3) (x, y float32) {
	d := rl.Vector3Subtract(p, t.Position)
	return rl.Vector3DotProduct(d, t.right), rl.Vector3DotProduct(d, t.up)
}

// LocalToWorld lifts a local plane point back into world space.
func (t Transform) LocalToWorld(x, y float32) rl.Vector3 {
	return rl.Vector3Add(t.Position,
		rl.Vector3Add(rl.Vector3Scale(t.right, x), rl.Vector3Scale(t.up, y)))
}

// HandleWorldPosition returns a chrome handle's center in world space.
func (t Transform) HandleWorldPosition(h Handle) rl.Vector3 {
	return rl.Vector3Add(t.Position,
		rl.Vector3Add(
			rl.Vector3Add(
				rl.Vector3Scale(t.right, h.Offset.X),
				rl.Vector3Scale(t.up, h.Offset.Y)),
			rl.Vector3Scale(t.normal, h.Offset.Z)))
}

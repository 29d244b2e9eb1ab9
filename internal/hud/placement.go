package hud

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"volview/internal/geom"
)

// Placement is a HUD's position and orientation, decoupled from the rendered
// transform so the renderer only reapplies it when it actually changed.
type Placement struct {
	Position rl.Vector3
	Yaw      float32
	Pitch    float32
}

type recenterTween struct {
	x, y, z, yaw, pitch *gween.Tween
}

// PlacementStore owns the placement of every HUD category. Writes clamp the
// position to the floor minimum; reads for rendering go through Consume so an
// unchanged placement costs nothing.
type PlacementStore struct {
	floorMin float32
	epsilon  float32

	placements [CategoryCount]Placement
	defaults   [CategoryCount]Placement
	cached     [CategoryCount]Placement
	dirty      [CategoryCount]bool
	tweens     [CategoryCount]*recenterTween
}

// NewPlacementStore creates a store with every category at its default
// placement, marked dirty so the first render applies it.
func NewPlacementStore(floorMin, epsilon float32, defaults [CategoryCount]Placement) *PlacementStore {
	s := &PlacementStore{floorMin: floorMin, epsilon: epsilon, defaults: defaults}
	for c := Category(0); c < CategoryCount; c++ {
		p := defaults[c]
		p.Position.Y = max(p.Position.Y, floorMin)
		s.placements[c] = p
		s.dirty[c] = true
	}
	return s
}

// Get returns the current placement of a category.
func (s *PlacementStore) Get(c Category) Placement {
	return s.placements[c]
}

// Set writes a placement, clamping the position to the floor minimum. The
// dirty flag only trips when the new value differs from the cached rendered
// transform by more than the epsilon; re-setting an applied placement stays
// a no-op.
func (s *PlacementStore) Set(c Category, p Placement) {
	p.Position.Y = max(p.Position.Y, s.floorMin)
	s.placements[c] = p
	if !s.approxCached(c, p) {
		s.dirty[c] = true
	}
}

// SetPosition writes only the position of a category's placement.
func (s *PlacementStore) SetPosition(c Category, pos rl.Vector3) {
	p := s.placements[c]
	p.Position = pos
	s.Set(c, p)
}

// SetYaw writes only the yaw of a category's placement.
func (s *PlacementStore) SetYaw(c Category, yaw float32) {
	p := s.placements[c]
	p.Yaw = yaw
	s.Set(c, p)
}

// SetPitch writes only the pitch of a category's placement.
func (s *PlacementStore) SetPitch(c Category, pitch float32) {
	p := s.placements[c]
	p.Pitch = pitch
	s.Set(c, p)
}

// Dirty reports whether the rendered transform is stale for a category.
func (s *PlacementStore) Dirty(c Category) bool {
	return s.dirty[c]
}

// Consume returns the placement to render and whether it needs reapplying.
// After a true return the cache matches and further calls report false until
// the placement changes again.
func (s *PlacementStore) Consume(c Category) (Placement, bool) {
	if !s.dirty[c] {
		return s.placements[c], false
	}
	s.cached[c] = s.placements[c]
	s.dirty[c] = false
	return s.placements[c], true
}

// Recenter animates a category back to its default placement. A write through
// Set (a grab taking over the HUD) cancels the animation.
func (s *PlacementStore) Recenter(c Category, duration float32) {
	from := s.placements[c]
	to := s.defaults[c]
	if duration <= 0 {
		s.Set(c, to)
		return
	}
	s.tweens[c] = &recenterTween{
		x:     gween.New(from.Position.X, to.Position.X, duration, ease.OutQuad),
		y:     gween.New(from.Position.Y, to.Position.Y, duration, ease.OutQuad),
		z:     gween.New(from.Position.Z, to.Position.Z, duration, ease.OutQuad),
		yaw:   gween.New(from.Yaw, to.Yaw, duration, ease.OutQuad),
		pitch: gween.New(from.Pitch, to.Pitch, duration, ease.OutQuad),
	}
}

// CancelRecenter stops an in-flight recenter animation for a category.
func (s *PlacementStore) CancelRecenter(c Category) {
	s.tweens[c] = nil
}

// Recentering reports whether a category is animating back to its default.
func (s *PlacementStore) Recentering(c Category) bool {
	return s.tweens[c] != nil
}

// Tick advances recenter animations by dt seconds.
func (s *PlacementStore) Tick(dt float32) {
	for c := Category(0); c < CategoryCount; c++ {
		tw := s.tweens[c]
		if tw == nil {
			continue
		}
		x, _ := tw.x.Update(dt)
		y, _ := tw.y.Update(dt)
		z, _ := tw.z.Update(dt)
		yaw, _ := tw.yaw.Update(dt)
		pitch, done := tw.pitch.Update(dt)
		s.Set(c, Placement{Position: rl.Vector3{X: x, Y: y, Z: z}, Yaw: yaw, Pitch: pitch})
		if done {
			s.tweens[c] = nil
		}
	}
}

func (s *PlacementStore) approxCached(c Category, p Placement) bool {
	cached := s.cached[c]
	return geom.ApproxEqualVec3(p.Position, cached.Position, s.epsilon) &&
		geom.ApproxEqual(p.Yaw, cached.Yaw, s.epsilon) &&
		geom.ApproxEqual(p.Pitch, cached.Pitch, s.epsilon)
}

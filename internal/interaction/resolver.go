package interaction

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"volview/internal/dataset"
	"volview/internal/geom"
	"volview/internal/hud"
	"volview/internal/volume"
)

// resolution is the outcome of candidate resolution for one controller: the
// winning target plus the hit geometry the gesture update needs.
type resolution struct {
	target   Target
	hit      rl.Vector3
	localX   float32
	localY   float32
	distance float32
	ok       bool
}

// resolve produces at most one target for the controller this frame. Volume
// handle candidates always pre-empt panel candidates; among panels the
// nearest category candidate wins, with categories evaluated in a fixed order
// so equal distances resolve stably.
func (e *Engine) resolve(entry *ControllerEntry) resolution {
	if res, ok := e.resolveVolumeHandles(entry); ok {
		return res
	}

	var best resolution
	for c := hud.Category(0); c < hud.CategoryCount; c++ {
		res, ok := e.resolvePanel(entry, c)
		if ok && (!best.ok || res.distance < best.distance) {
			best = res
		}
	}
	return best
}

// resolveVolumeHandles scans the volume manipulation spheres by proximity of
// the controller origin. A handle stays a candidate while it is the active
// target even if the hand drifts outside the touch radius.
func (e *Engine) resolveVolumeHandles(entry *ControllerEntry) (resolution, bool) {
	v := e.Volume
	if v == nil || !v.Visible() {
		return resolution{}, false
	}

	var best resolution
	for _, kind := range volume.Kinds() {
		pos := v.Position(kind)
		d := rl.Vector3Distance(entry.Ray.Origin, pos)
		activeMatch := entry.Selecting &&
			entry.Active.Kind == TargetVolumeHandle &&
			entry.Active.VolumeHandle == kind
		if !activeMatch && d > e.cfg.TouchRadius {
			continue
		}
		if !best.ok || d < best.distance {
			best = resolution{
				target:   Target{Kind: TargetVolumeHandle, VolumeHandle: kind},
				hit:      pos,
				distance: d,
				ok:       true,
			}
		}
	}
	return best, best.ok
}

// resolvePanel produces at most one candidate for a single HUD category.
func (e *Engine) resolvePanel(entry *ControllerEntry, c hud.Category) (resolution, bool) {
	surf := e.Surfaces[c]
	if surf == nil {
		return resolution{}, false
	}

	tr := hud.TransformFor(e.Placements.Get(c))
	hit, ok := geom.RayPlane(entry.Ray.Origin, entry.Ray.Direction, tr.Position, tr.Normal())
	if !ok {
		return resolution{}, false
	}
	x, y := tr.WorldToLocal(hit)

	// The pointable area widens while this category owns an active drag so
	// the gesture is not lost at the rectangle edge.
	margin := e.cfg.PanelMargin
	if entry.Selecting && entry.Active.InCategory(c) {
		margin *= e.cfg.ActiveMarginScale
	}
	halfW, halfH := surf.Width/2, surf.Height/2
	if x < -halfW-margin || x > halfW+margin || y < -halfH-margin || y > halfH+margin {
		return resolution{}, false
	}
	rayDist := rl.Vector3Distance(entry.Ray.Origin, hit)

	var best resolution

	// Chrome handles first, by the same proximity rule as volume handles but
	// scoped to this panel.
	for i := range surf.Handles {
		h := surf.Handles[i]
		pos := tr.HandleWorldPosition(h)
		d := rl.Vector3Distance(entry.Ray.Origin, pos)
		activeMatch := entry.Selecting &&
			entry.Active.Kind == TargetHUDHandle &&
			entry.Active.Category == c &&
			entry.Active.Handle == h.Kind
		if !activeMatch && d > e.cfg.TouchRadius {
			continue
		}
		if !best.ok || d < best.distance {
			best = resolution{
				target:   Target{Kind: TargetHUDHandle, Category: c, Handle: h.Kind},
				hit:      pos,
				localX:   x,
				localY:   y,
				distance: d,
				ok:       true,
			}
		}
	}

	// Dynamic regions. An actively dragged continuous control stays the
	// resolved region even when the local point leaves its bounds.
	var region *hud.Region
	locked := false
	if entry.Selecting &&
		entry.Active.Kind == TargetRegion &&
		entry.Active.Category == c &&
		entry.Active.Region.Kind.Continuous() {
		r := entry.Active.Region
		region = &r
		locked = true
	} else {
		region = surf.RegionAt(x, y)
	}

	if region != nil {
		cand := resolution{
			target:   Target{Kind: TargetRegion, Category: c, Region: *region},
			hit:      hit,
			localX:   x,
			localY:   y,
			distance: rayDist,
			ok:       true,
		}
		if !best.ok || rayDist < best.distance {
			best = cand
		}
		// Value application for an actively held continuous control happens
		// here, with the just-computed hit point, so the visible effect does
		// not lag the ray by a frame.
		if region.Kind.Continuous() && (locked || (entry.Selecting && entry.Active == cand.target)) {
			entry.lastLocalX, entry.lastLocalY = x, y
			entry.lastLocalValid = true
			e.applyContinuous(region, x, y)
		}
	} else {
		// Bare panel background: the fallback target that gives whole-HUD
		// translate semantics.
		cand := resolution{
			target:   Target{Kind: TargetPanel, Category: c},
			hit:      hit,
			localX:   x,
			localY:   y,
			distance: rayDist,
			ok:       true,
		}
		if !best.ok || rayDist < best.distance {
			best = cand
		}
	}

	return best, best.ok
}

// applyContinuous translates a touch point on a continuous control into its
// domain callback.
func (e *Engine) applyContinuous(region *hud.Region, x, y float32) {
	switch region.Kind {
	case hud.RegionTimeSlider:
		v := SliderValue(region.Min, region.Max, region.Step, SliderRatio(region.Slider, x))
		e.Callbacks.SetTimeIndex.Invoke(int(v))
	case hud.RegionFPSSlider:
		v := SliderValue(region.Min, region.Max, region.Step, SliderRatio(region.Slider, x))
		e.Callbacks.SetFPS.Invoke(v)
	case hud.RegionLayerSlider:
		v := SliderValue(region.Min, region.Max, region.Step, SliderRatio(region.Slider, x))
		e.Callbacks.SetLayerValue.Invoke(dataset.LayerValue{
			ChannelID: region.ChannelID,
			LayerKey:  region.LayerKey,
			SliderKey: region.SliderKey,
			Value:     v,
		})
	case hud.RegionTrackOpacity:
		v := SliderValue(region.Min, region.Max, region.Step, SliderRatio(region.Slider, x))
		e.Callbacks.SetTrackOpacity.Invoke(dataset.TrackOpacity{TrackID: region.TrackID, Opacity: v})
	case hud.RegionScrollBar:
		e.Callbacks.ScrollTracks.Invoke(ScrollIndex(region.Scroll, y))
	}
}

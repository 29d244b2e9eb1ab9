package interaction

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"volview/internal/dataset"
	"volview/internal/geom"
	"volview/internal/hud"
	"volview/internal/volume"
)

// beginGesture runs the one-time setup for the target pinned at select-start:
// grab offsets, frozen rotation basis, scale baseline, or the immediate value
// application of a continuous control.
func (e *Engine) beginGesture(entry *ControllerEntry, res resolution) {
	t := entry.Active
	switch t.Kind {
	case TargetRegion:
		if t.Region.Kind.Continuous() {
			entry.lastLocalX, entry.lastLocalY = res.localX, res.localY
			entry.lastLocalValid = true
			e.applyContinuous(&t.Region, res.localX, res.localY)
		}

	case TargetPanel:
		e.beginHUDGrab(entry, t.Category)

	case TargetHUDHandle:
		switch t.Handle {
		case hud.HandleTranslate:
			e.beginHUDGrab(entry, t.Category)
		case hud.HandleYawLeft, hud.HandleYawRight:
			p := e.Placements.Get(t.Category)
			entry.rotation = e.captureRotation(entry, rotationYaw, p.Position, p.Yaw, p.Pitch)
		case hud.HandlePitch:
			p := e.Placements.Get(t.Category)
			entry.rotation = e.captureRotation(entry, rotationPitch, p.Position, p.Yaw, p.Pitch)
		}

	case TargetVolumeHandle:
		if e.Volume == nil {
			return
		}
		vt := e.Volume.Transform
		switch t.VolumeHandle {
		case volume.HandleTranslate:
			entry.grabOffset = rl.Vector3Subtract(e.Volume.Position(volume.HandleTranslate), entry.Ray.Origin)
			entry.grabbing = true
		case volume.HandleScale:
			entry.scale = e.captureScale(entry, vt)
		case volume.HandleYawA, volume.HandleYawB:
			entry.rotation = e.captureRotation(entry, rotationYaw, vt.Pivot, vt.Yaw, vt.Pitch)
		case volume.HandlePitch:
			entry.rotation = e.captureRotation(entry, rotationPitch, vt.Pivot, vt.Yaw, vt.Pitch)
		}
	}
}

// beginHUDGrab captures the offset between the HUD placement and the hand so
// the panel follows without snapping.
func (e *Engine) beginHUDGrab(entry *ControllerEntry, c hud.Category) {
	p := e.Placements.Get(c)
	entry.grabOffset = rl.Vector3Subtract(p.Position, entry.Ray.Origin)
	entry.grabbing = true
	e.Placements.CancelRecenter(c)
}

// captureRotation freezes the rotation basis from the viewer orientation at
// the moment the gesture starts.
func (e *Engine) captureRotation(entry *ControllerEntry, mode rotationMode, pivot rl.Vector3, yaw, pitch float32) *rotationState {
	back := e.viewerBack()
	up := rl.Vector3{Y: 1}
	right := rl.Vector3CrossProduct(up, back)

	st := &rotationState{
		mode:         mode,
		pivot:        pivot,
		right:        right,
		back:         back,
		up:           up,
		initialYaw:   yaw,
		initialPitch: pitch,
	}
	v := rl.Vector3Subtract(entry.Ray.Origin, pivot)
	if mode == rotationYaw {
		st.initialAngle = geom.AngleOnBasis(v, st.right, st.back)
	} else {
		st.initialAngle = geom.AngleOnBasis(v, st.up, st.back)
	}
	return st
}

// viewerBack returns the horizontalized opposite of the viewer forward, the
// stable reference direction for rotation gestures.
func (e *Engine) viewerBack() rl.Vector3 {
	back := rl.Vector3Negate(e.viewer.Forward)
	back.Y = 0
	if rl.Vector3Length(back) < 1e-6 {
		return rl.Vector3{Z: 1}
	}
	return rl.Vector3Normalize(back)
}

// captureScale freezes the center-to-handle direction and the baseline
// distance, normalized by the current user scale.
func (e *Engine) captureScale(entry *ControllerEntry, vt *volume.Transform) *scaleState {
	dir := rl.Vector3Subtract(e.Volume.Position(volume.HandleScale), vt.Pivot)
	if rl.Vector3Length(dir) < 1e-6 || vt.UserScale <= 0 {
		return nil
	}
	dir = rl.Vector3Normalize(dir)

	start := rl.Vector3DotProduct(rl.Vector3Subtract(entry.Ray.Origin, vt.Pivot), dir)
	if start <= 1e-6 {
		return nil
	}
	return &scaleState{direction: dir, baseline: start / vt.UserScale}
}

// updateGesture re-applies the continuous effect of the held target. Sliders
// and scroll bars are already applied during resolution; everything here
// moves a placement or the volume transform.
func (e *Engine) updateGesture(entry *ControllerEntry) {
	t := entry.Active
	switch t.Kind {
	case TargetPanel, TargetHUDHandle:
		if e.Surfaces[t.Category] == nil {
			// Surface torn down mid-gesture: abort without partial mutation.
			entry.Active = Target{}
			entry.clearGesture()
			return
		}
		switch {
		case entry.grabbing:
			e.Placements.SetPosition(t.Category, rl.Vector3Add(entry.Ray.Origin, entry.grabOffset))
		case entry.rotation != nil:
			e.updateHUDRotation(entry, t.Category)
		}

	case TargetVolumeHandle:
		if e.Volume == nil {
			entry.Active = Target{}
			entry.clearGesture()
			return
		}
		e.updateVolumeGesture(entry)
	}
}

func (e *Engine) updateHUDRotation(entry *ControllerEntry, c hud.Category) {
	st := entry.rotation
	v := rl.Vector3Subtract(entry.Ray.Origin, st.pivot)

	if st.mode == rotationYaw {
		current := geom.AngleOnBasis(v, st.right, st.back)
		delta := AngleDelta(st.initialAngle, current)
		e.Placements.SetYaw(c, st.initialYaw-delta)
		return
	}
	current := geom.AngleOnBasis(v, st.up, st.back)
	delta := AngleDelta(st.initialAngle, current)
	limit := float32(math.Pi/2) - e.cfg.PitchLimitEpsilon
	e.Placements.SetPitch(c, geom.Clamp(st.initialPitch-delta, -limit, limit))
}

func (e *Engine) updateVolumeGesture(entry *ControllerEntry) {
	vt := e.Volume.Transform
	switch entry.Active.VolumeHandle {
	case volume.HandleTranslate:
		if !entry.grabbing {
			return
		}
		// Incremental: move by the delta between where the grab wants the
		// handle and where it currently is, so the volume never snaps.
		desired := rl.Vector3Add(entry.Ray.Origin, entry.grabOffset)
		delta := rl.Vector3Subtract(desired, e.Volume.Position(volume.HandleTranslate))
		vt.Translate(delta)

	case volume.HandleScale:
		st := entry.scale
		if st == nil || st.baseline <= 0 {
			return
		}
		dist := rl.Vector3DotProduct(rl.Vector3Subtract(entry.Ray.Origin, vt.Pivot), st.direction)
		dist = geom.Clamp(dist, e.cfg.MinVolumeScale*st.baseline, e.cfg.MaxVolumeScale*st.baseline)
		vt.SetScale(dist/st.baseline, e.cfg.MinVolumeScale, e.cfg.MaxVolumeScale)

	case volume.HandleYawA, volume.HandleYawB:
		st := entry.rotation
		if st == nil {
			return
		}
		v := rl.Vector3Subtract(entry.Ray.Origin, st.pivot)
		current := geom.AngleOnBasis(v, st.right, st.back)
		vt.Yaw = geom.WrapAngle(st.initialYaw - AngleDelta(st.initialAngle, current))

	case volume.HandlePitch:
		st := entry.rotation
		if st == nil {
			return
		}
		v := rl.Vector3Subtract(entry.Ray.Origin, st.pivot)
		current := geom.AngleOnBasis(v, st.up, st.back)
		limit := float32(math.Pi/2) - e.cfg.PitchLimitEpsilon
		vt.Pitch = geom.Clamp(st.initialPitch-AngleDelta(st.initialAngle, current), -limit, limit)
	}
}

// endGesture fires the discrete commit of the released target exactly once.
func (e *Engine) endGesture(entry *ControllerEntry) {
	t := entry.Active
	switch t.Kind {
	case TargetRegion:
		e.commitRegion(entry, t.Region)

	case TargetNone:
		// No UI target, but the ray may rest on a 3D trajectory line.
		if entry.HoverTrackID >= 0 {
			e.Callbacks.FollowTrack.Invoke(entry.HoverTrackID)
		}
	}
}

func (e *Engine) commitRegion(entry *ControllerEntry, r hud.Region) {
	if r.Disabled {
		return
	}
	switch r.Kind {
	case hud.RegionPlayToggle:
		if !e.snapshot.Playback.Disabled {
			e.Callbacks.TogglePlayback.Invoke()
		}
	case hud.RegionTimeSlider, hud.RegionFPSSlider, hud.RegionLayerSlider, hud.RegionTrackOpacity:
		// Re-apply the final value so the commit matches the last frame.
		if entry.lastLocalValid {
			e.applyContinuous(&r, entry.lastLocalX, entry.lastLocalY)
		}
	case hud.RegionChannelTab:
		e.Callbacks.SelectChannelTab.Invoke(r.ChannelID)
	case hud.RegionChannelVisibility:
		e.Callbacks.ToggleChannelVisibility.Invoke(r.ChannelID)
	case hud.RegionLayerTab:
		e.Callbacks.SelectLayer.Invoke(dataset.LayerRef{ChannelID: r.ChannelID, LayerKey: r.LayerKey})
	case hud.RegionLayerReset:
		e.Callbacks.ResetLayer.Invoke(dataset.LayerRef{ChannelID: r.ChannelID, LayerKey: r.LayerKey})
	case hud.RegionResetPlacement:
		for c := hud.Category(0); c < hud.CategoryCount; c++ {
			e.Placements.Recenter(c, e.cfg.RecenterDuration)
			e.Callbacks.ResetHUDPlacement.Invoke(int(c))
		}
	case hud.RegionResetVolume:
		if e.Volume != nil {
			e.Volume.Transform.Reset()
		}
		e.Callbacks.ResetVolumeTransform.Invoke()
	case hud.RegionModeButton:
		e.Callbacks.TogglePassthrough.Invoke()
	case hud.RegionExitButton:
		e.Callbacks.RequestSessionEnd.Invoke()
	case hud.RegionTrackVisibility:
		e.Callbacks.ToggleTrackVisibility.Invoke(r.TrackID)
	case hud.RegionTrackColor:
		e.Callbacks.SetTrackColor.Invoke(dataset.TrackColor{TrackID: r.TrackID, Color: r.NextColor})
	case hud.RegionTrackFollow, hud.RegionTrackRow:
		e.Callbacks.FollowTrack.Invoke(r.TrackID)
	}
}

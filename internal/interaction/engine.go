package interaction

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"volview/internal/config"
	"volview/internal/dataset"
	"volview/internal/geom"
	"volview/internal/hud"
	"volview/internal/volume"
)

// ViewerPose is the head pose, used to freeze rotation bases at select-start.
type ViewerPose struct {
	Position rl.Vector3
	Forward  rl.Vector3
}

// ButtonState is the hover feedback for one discrete control kind.
type ButtonState struct {
	Hovered bool
	Active  bool
}

// HoverSummary is the per-tick visual feedback contract consumed by the
// rendering layer. Nothing in the engine reads it back.
type HoverSummary struct {
	TrackID int
	Buttons map[hud.RegionKind]ButtonState
}

// Engine is the spatial controller interaction engine. It runs synchronously
// inside the host's render loop: one Tick per frame, controllers processed in
// a fixed order, last write wins on shared placements.
type Engine struct {
	cfg config.Config

	Placements *hud.PlacementStore
	Surfaces   [hud.CategoryCount]*hud.Surface
	Volume     *volume.Handles
	Callbacks  *dataset.Callbacks

	// TrackHitTest resolves the trajectory a ray rests on when no UI target
	// is hit; provided by the host's track renderer. Optional.
	TrackHitTest func(origin, direction rl.Vector3) (int, bool)

	entries  []*ControllerEntry
	snapshot dataset.Snapshot
	viewer   ViewerPose
	summary  HoverSummary
}

// New creates an engine with one controller entry per device slot and the
// three HUD surfaces at their default placements.
func New(cfg config.Config, callbacks *dataset.Callbacks, controllers int, defaults [hud.CategoryCount]hud.Placement) *Engine {
	e := &Engine{
		cfg:        cfg,
		Placements: hud.NewPlacementStore(cfg.FloorMin, cfg.PlacementEpsilon, defaults),
		Callbacks:  callbacks,
		summary:    HoverSummary{TrackID: -1},
	}
	e.Surfaces[hud.CategoryPlayback] = hud.NewSurface(hud.CategoryPlayback, hud.PlaybackWidth, 0.14, cfg.HandleRadius)
	e.Surfaces[hud.CategoryChannels] = hud.NewSurface(hud.CategoryChannels, hud.ChannelsWidth, 0.14, cfg.HandleRadius)
	e.Surfaces[hud.CategoryTracks] = hud.NewSurface(hud.CategoryTracks, hud.TracksWidth, 0.14, cfg.HandleRadius)
	for i := range controllers {
		e.entries = append(e.entries, NewControllerEntry(i))
	}
	return e
}

// Entry returns the state of one controller slot.
func (e *Engine) Entry(i int) *ControllerEntry {
	return e.entries[i]
}

// Entries returns all controller slots in iteration order.
func (e *Engine) Entries() []*ControllerEntry {
	return e.entries
}

// SetSnapshot installs the read-only domain state for the coming ticks.
func (e *Engine) SetSnapshot(s dataset.Snapshot) {
	e.snapshot = s
}

// Snapshot returns the domain state the engine currently reads.
func (e *Engine) Snapshot() dataset.Snapshot {
	return e.snapshot
}

// SetViewerPose installs the head pose for the coming tick.
func (e *Engine) SetViewerPose(p ViewerPose) {
	e.viewer = p
}

// Summary returns the hover feedback of the last tick.
func (e *Engine) Summary() HoverSummary {
	return e.summary
}

// Config returns the engine tunables.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Tick runs one frame of interaction: per controller, refresh the pose,
// resolve the candidate target, and advance the gesture state machine; then
// advance placement animations and rebuild the hover summary.
func (e *Engine) Tick(dt float32, inputs []ControllerInput) {
	for c := hud.Category(0); c < hud.CategoryCount; c++ {
		if s := e.Surfaces[c]; s != nil {
			s.HoverRegion = nil
		}
	}

	for i, entry := range e.entries {
		var in ControllerInput
		if i < len(inputs) {
			in = inputs[i]
		}
		e.tickEntry(entry, in)
	}

	e.Placements.Tick(dt)
	e.refreshSummary()
}

func (e *Engine) tickEntry(entry *ControllerEntry, in ControllerInput) {
	if !in.Connected || !in.Visible {
		// Losing the device or its visibility abandons any drag without
		// firing its commit.
		entry.reset()
		entry.Connected = in.Connected
		entry.Visible = in.Visible
		return
	}
	entry.Connected = true
	entry.Visible = true

	dir := in.Direction
	if rl.Vector3Length(dir) < 1e-6 {
		return
	}
	entry.Ray = Ray{Origin: in.Origin, Direction: rl.Vector3Normalize(dir)}

	res := e.resolve(entry)
	entry.Hover = res.target
	entry.HoverDistance = res.distance
	if res.ok {
		entry.RayLength = geom.Clamp(res.distance, e.cfg.MinRayLength, e.cfg.MaxRayLength)
	} else {
		entry.RayLength = e.cfg.MaxRayLength
	}

	if res.target.Kind == TargetRegion {
		if s := e.Surfaces[res.target.Category]; s != nil {
			r := res.target.Region
			s.HoverRegion = &r
		}
	}

	// Trajectory picking only applies when no UI target is addressed.
	entry.HoverTrackID = -1
	if !res.ok && e.TrackHitTest != nil {
		if id, ok := e.TrackHitTest(entry.Ray.Origin, entry.Ray.Direction); ok {
			entry.HoverTrackID = id
		}
	}

	switch {
	case in.Selecting && !entry.Selecting:
		entry.Selecting = true
		entry.Active = res.target
		e.beginGesture(entry, res)
	case in.Selecting:
		e.updateGesture(entry)
	case entry.Selecting:
		e.endGesture(entry)
		entry.Selecting = false
		entry.Active = Target{}
		entry.clearGesture()
	}
}

// Discrete kinds surfaced in the hover summary for visual highlighting.
var summaryKinds = []hud.RegionKind{
	hud.RegionPlayToggle,
	hud.RegionLayerReset,
	hud.RegionResetPlacement,
	hud.RegionResetVolume,
	hud.RegionModeButton,
	hud.RegionExitButton,
	hud.RegionTrackVisibility,
	hud.RegionTrackColor,
	hud.RegionTrackFollow,
}

func (e *Engine) refreshSummary() {
	summary := HoverSummary{TrackID: -1, Buttons: make(map[hud.RegionKind]ButtonState, len(summaryKinds))}
	for _, kind := range summaryKinds {
		summary.Buttons[kind] = ButtonState{}
	}

	for _, entry := range e.entries {
		if entry.HoverTrackID >= 0 && summary.TrackID < 0 {
			summary.TrackID = entry.HoverTrackID
		}
		if entry.Hover.Kind == TargetRegion {
			st := summary.Buttons[entry.Hover.Region.Kind]
			st.Hovered = true
			summary.Buttons[entry.Hover.Region.Kind] = st
		}
		if entry.Selecting && entry.Active.Kind == TargetRegion {
			st := summary.Buttons[entry.Active.Region.Kind]
			st.Active = true
			summary.Buttons[entry.Active.Region.Kind] = st
		}
	}
	e.summary = summary
}

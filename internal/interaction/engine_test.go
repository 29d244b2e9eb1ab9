package interaction

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"volview/internal/config"
	"volview/internal/dataset"
	"volview/internal/hud"
	"volview/internal/volume"
)

// Panels far apart on the z=-1 plane so a straight -z ray only ever reaches
// the one in front of it.
var testDefaults = [hud.CategoryCount]hud.Placement{
	hud.CategoryPlayback: {Position: rl.Vector3{Y: 1.2, Z: -1}},
	hud.CategoryChannels: {Position: rl.Vector3{X: 3, Y: 1.2, Z: -1}},
	hud.CategoryTracks:   {Position: rl.Vector3{X: -3, Y: 1.2, Z: -1}},
}

func testSnapshot() dataset.Snapshot {
	snap := dataset.Snapshot{
		Playback:      dataset.Playback{FPS: 24, TotalTimepoints: 10},
		ActiveChannel: 0,
		Channels: []dataset.Channel{
			{ID: 0, Name: "ch0", Visible: true, ActiveLayer: "image", Layers: []dataset.Layer{
				{Key: "image", Values: map[string]float32{dataset.SliderContrast: 50}},
				{Key: "labels", Values: map[string]float32{dataset.SliderContrast: 50}},
			}},
			{ID: 1, Name: "ch1", Visible: true, ActiveLayer: "image", Layers: []dataset.Layer{
				{Key: "image", Values: map[string]float32{dataset.SliderContrast: 50}},
			}},
		},
		Volume: dataset.VolumeInfo{HasContent: true, Depth: 64, HalfExtents: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}},
	}
	for i := 0; i < 10; i++ {
		snap.Tracks = append(snap.Tracks, dataset.Track{ID: i, Visible: true, Color: hud.TrackPalette[i%len(hud.TrackPalette)], Opacity: 1})
	}
	return snap
}

func newTestEngine(t *testing.T, snap dataset.Snapshot) *Engine {
	t.Helper()
	e := New(config.Default(), &dataset.Callbacks{}, 2, testDefaults)
	e.SetSnapshot(snap)
	e.SetViewerPose(ViewerPose{Position: rl.Vector3{Y: 1.6}, Forward: rl.Vector3{Z: -1}})
	hud.Apply(hud.Measure(&snap), &e.Surfaces)
	return e
}

// pointAt returns an input whose -z ray crosses the playback plane at the
// given playback-local coordinates.
func pointAt(localX, localY float32, selecting bool) ControllerInput {
	p := testDefaults[hud.CategoryPlayback].Position
	return ControllerInput{
		Connected: true,
		Visible:   true,
		Origin:    rl.Vector3{X: p.X + localX, Y: p.Y + localY, Z: 0.5},
		Direction: rl.Vector3{Z: -1},
		Selecting: selecting,
	}
}

func tick(e *Engine, inputs ...ControllerInput) {
	e.Tick(1.0/72, inputs)
}

func TestTickResolvesTimeSliderHover(t *testing.T) {
	e := newTestEngine(t, testSnapshot())

	tick(e, pointAt(0.05, 0, false))

	entry := e.Entry(0)
	if entry.Hover.Kind != TargetRegion || entry.Hover.Region.Kind != hud.RegionTimeSlider {
		t.Fatalf("hover = %+v, want time slider region", entry.Hover)
	}
	if entry.Hover.Category != hud.CategoryPlayback {
		t.Errorf("hover category = %v, want playback", entry.Hover.Category)
	}
	// The panel plane is 1.5m down the ray.
	if math.Abs(float64(entry.RayLength-1.5)) > 1e-4 {
		t.Errorf("ray length = %v, want 1.5", entry.RayLength)
	}
	if e.Surfaces[hud.CategoryPlayback].HoverRegion == nil {
		t.Error("surface hover region not set")
	}
}

func TestTickNoTargetUsesMaxRayLength(t *testing.T) {
	e := newTestEngine(t, testSnapshot())

	in := pointAt(0, 0, false)
	in.Direction = rl.Vector3{Z: 1} // away from every panel
	tick(e, in)

	entry := e.Entry(0)
	if !entry.Hover.IsNone() {
		t.Fatalf("hover = %+v, want none", entry.Hover)
	}
	if entry.RayLength != e.Config().MaxRayLength {
		t.Errorf("ray length = %v, want max %v", entry.RayLength, e.Config().MaxRayLength)
	}
}

func TestDisabledRegionFallsThroughToPanel(t *testing.T) {
	snap := testSnapshot()
	snap.Playback.Disabled = true
	e := newTestEngine(t, snap)

	// Center of the play toggle, which is disabled along with playback.
	tick(e, pointAt(-0.195, 0, false))

	entry := e.Entry(0)
	if entry.Hover.Kind != TargetPanel {
		t.Fatalf("hover = %+v, want panel background", entry.Hover)
	}
}

func TestVolumeHandlePreemptsPanelCandidate(t *testing.T) {
	e := newTestEngine(t, testSnapshot())

	in := pointAt(0.05, 0, false)
	// Park a volume handle sphere exactly at the controller origin while the
	// ray still crosses the playback panel.
	pivot := rl.Vector3Add(in.Origin, rl.Vector3{Y: 0.54})
	vt := volume.NewTransform(pivot, rl.Vector3{})
	e.Volume = volume.NewHandles(vt, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, 0.02)
	e.Volume.Refresh(true, true, 64)

	tick(e, in)

	entry := e.Entry(0)
	if entry.Hover.Kind != TargetVolumeHandle {
		t.Fatalf("hover = %+v, want volume handle", entry.Hover)
	}
	if entry.Hover.VolumeHandle != volume.HandleTranslate {
		t.Errorf("handle = %v, want translate", entry.Hover.VolumeHandle)
	}
}

func TestVolumeHandlesGatedByDepth(t *testing.T) {
	e := newTestEngine(t, testSnapshot())

	in := pointAt(0.05, 0, false)
	pivot := rl.Vector3Add(in.Origin, rl.Vector3{Y: 0.54})
	vt := volume.NewTransform(pivot, rl.Vector3{})
	e.Volume = volume.NewHandles(vt, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, 0.02)
	e.Volume.Refresh(true, true, 1) // single slice

	tick(e, in)

	if e.Entry(0).Hover.Kind != TargetRegion {
		t.Fatalf("hover = %+v, want panel region when handles hidden", e.Entry(0).Hover)
	}
}

func TestTranslateHandleByProximity(t *testing.T) {
	e := newTestEngine(t, testSnapshot())

	// The translate handle hangs below the playback panel's bottom edge.
	tr := hud.TransformFor(e.Placements.Get(hud.CategoryPlayback))
	pos := tr.HandleWorldPosition(e.Surfaces[hud.CategoryPlayback].Handles[0])

	in := ControllerInput{
		Connected: true,
		Visible:   true,
		Origin:    rl.Vector3Add(pos, rl.Vector3{Z: 0.05}),
		Direction: rl.Vector3{Z: -1},
	}
	tick(e, in)

	entry := e.Entry(0)
	if entry.Hover.Kind != TargetHUDHandle || entry.Hover.Handle != hud.HandleTranslate {
		t.Fatalf("hover = %+v, want translate handle", entry.Hover)
	}
}

func TestActiveDragWidensMarginAndLocksSlider(t *testing.T) {
	e := newTestEngine(t, testSnapshot())
	var values []int
	e.Callbacks.SetTimeIndex.AddListener(func(v int) { values = append(values, v) })

	// Without a drag, a point past the base margin resolves nothing. Panel
	// half width is 0.23 and the margin 0.05, so 0.29 is out of reach.
	tick(e, pointAt(0.29, 0, false))
	if !e.Entry(0).Hover.IsNone() {
		t.Fatalf("hover = %+v, want none outside base margin", e.Entry(0).Hover)
	}

	// Start the drag on the slider, then drift past the base margin. The
	// widened margin keeps the panel pointable and the slider stays locked.
	tick(e, pointAt(0.05, 0, false))
	tick(e, pointAt(0.05, 0, true))
	tick(e, pointAt(0.29, 0, true))

	entry := e.Entry(0)
	if entry.Hover.Kind != TargetRegion || entry.Hover.Region.Kind != hud.RegionTimeSlider {
		t.Fatalf("hover = %+v, want locked time slider", entry.Hover)
	}
	if len(values) == 0 || values[len(values)-1] != 9 {
		t.Errorf("values = %v, want final pinned at 9", values)
	}
}

func TestHoverSummary(t *testing.T) {
	e := newTestEngine(t, testSnapshot())

	tick(e, pointAt(-0.195, 0, false))
	st := e.Summary().Buttons[hud.RegionPlayToggle]
	if !st.Hovered || st.Active {
		t.Fatalf("summary after hover = %+v, want hovered only", st)
	}

	tick(e, pointAt(-0.195, 0, true))
	st = e.Summary().Buttons[hud.RegionPlayToggle]
	if !st.Hovered || !st.Active {
		t.Errorf("summary while held = %+v, want hovered and active", st)
	}
}

func TestTrackHoverOnlyWithoutUITarget(t *testing.T) {
	e := newTestEngine(t, testSnapshot())
	e.TrackHitTest = func(origin, direction rl.Vector3) (int, bool) { return 3, true }

	tick(e, pointAt(0.05, 0, false))
	if e.Entry(0).HoverTrackID != -1 {
		t.Errorf("track id = %d while over a panel, want -1", e.Entry(0).HoverTrackID)
	}

	in := pointAt(0, 0, false)
	in.Direction = rl.Vector3{Z: 1}
	tick(e, in)
	if e.Entry(0).HoverTrackID != 3 {
		t.Errorf("track id = %d, want 3", e.Entry(0).HoverTrackID)
	}
	if e.Summary().TrackID != 3 {
		t.Errorf("summary track id = %d, want 3", e.Summary().TrackID)
	}
}

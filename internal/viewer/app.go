package viewer

import (
	"context"
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"volview/internal/camera"
	"volview/internal/config"
	"volview/internal/dataset"
	"volview/internal/geom"
	"volview/internal/hud"
	"volview/internal/interaction"
	"volview/internal/session"
	"volview/internal/volume"
)

const trackMarkerRadius = 0.025

// App is the windowed host around the interaction engine: it pumps mouse
// input in as an emulated controller, owns the demo dataset state, and draws
// the HUD surfaces and volume handles the engine reasons about.
type App struct {
	cfg       config.Config
	state     *State
	callbacks *dataset.Callbacks
	session   *session.Session
	engine    *interaction.Engine
	volume    *volume.Handles
	cam       *camera.FlyCamera

	transforms [hud.CategoryCount]hud.Transform

	controllerOn bool
	debugMode    bool
}

var defaultPlacements = [hud.CategoryCount]hud.Placement{
	hud.CategoryPlayback: {Position: rl.Vector3{X: -0.55, Y: 1.15, Z: -0.9}, Yaw: 0.35},
	hud.CategoryChannels: {Position: rl.Vector3{X: 0.55, Y: 1.25, Z: -0.9}, Yaw: -0.35},
	hud.CategoryTracks:   {Position: rl.Vector3{Y: 0.85, Z: -0.8}, Pitch: 0.5},
}

func New() *App {
	cfg := config.Load()
	a := &App{
		cfg:          cfg,
		state:        NewState(),
		callbacks:    &dataset.Callbacks{},
		session:      session.New(desktopDriver{}),
		cam:          camera.New(rl.Vector3{Y: 1.6, Z: 0.8}),
		controllerOn: true,
	}
	a.state.Subscribe(a.callbacks)
	a.callbacks.RequestSessionEnd.AddListener(func() {
		a.session.End(context.Background())
	})
	a.callbacks.TogglePassthrough.AddListener(a.session.TogglePassthrough)

	a.engine = interaction.New(cfg, a.callbacks, 1, defaultPlacements)

	snap := a.state.Snapshot()
	vt := volume.NewTransform(rl.Vector3{Y: 1.2, Z: -0.3}, rl.Vector3{})
	a.volume = volume.NewHandles(vt, snap.Volume.HalfExtents, cfg.HandleRadius)
	a.engine.Volume = a.volume
	a.engine.TrackHitTest = a.trackHitTest

	return a
}

func (a *App) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "volview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)

	a.session.Request(context.Background())

	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	dt := rl.GetFrameTime()
	a.cam.Update(dt)
	a.state.Advance(dt)

	snap := a.state.Snapshot()
	a.engine.SetSnapshot(snap)

	// Two passes when a panel height changes, so regions and content agree.
	if hud.Apply(hud.Measure(&snap), &a.engine.Surfaces) {
		hud.Apply(hud.Measure(&snap), &a.engine.Surfaces)
	}

	a.volume.Refresh(a.session.Active(), snap.Volume.HasContent, snap.Volume.Depth)
	a.engine.SetViewerPose(interaction.ViewerPose{
		Position: a.cam.Position,
		Forward:  a.cam.Forward(),
	})

	if rl.IsKeyPressed(rl.KeyC) {
		a.controllerOn = !a.controllerOn
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		a.debugMode = !a.debugMode
	}

	a.engine.Tick(dt, []interaction.ControllerInput{a.controllerInput()})

	for c := hud.Category(0); c < hud.CategoryCount; c++ {
		if p, changed := a.engine.Placements.Consume(c); changed {
			a.transforms[c] = hud.TransformFor(p)
		}
	}
}

// controllerInput emulates a spatial controller from the mouse: the pick ray
// stands in for the controller pose, the left button for the select action.
func (a *App) controllerInput() interaction.ControllerInput {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), a.cam.GetRaylibCamera())
	selecting := rl.IsMouseButtonDown(rl.MouseLeftButton) && !a.mouseOverOverlay()
	return interaction.ControllerInput{
		Connected: a.controllerOn && a.session.Active(),
		Visible:   a.controllerOn,
		Origin:    ray.Position,
		Direction: ray.Direction,
		Selecting: selecting,
	}
}

func (a *App) mouseOverOverlay() bool {
	m := rl.GetMousePosition()
	return m.X < 240 && m.Y < 110
}

// trackMarkerPosition spreads the demo trajectories on a ring around the
// volume, stepping with playback time.
func (a *App) trackMarkerPosition(i int) rl.Vector3 {
	snap := a.engine.Snapshot()
	n := len(snap.Tracks)
	if n == 0 {
		n = 1
	}
	phase := float64(snap.Playback.TimeIndex) * 0.05
	angle := 2*math.Pi*float64(i)/float64(n) + phase
	pivot := a.volume.Transform.Pivot
	r := float64(0.7 * a.volume.Transform.UserScale)
	return rl.Vector3{
		X: pivot.X + float32(r*math.Cos(angle)),
		Y: pivot.Y + 0.1*float32(math.Sin(3*angle)),
		Z: pivot.Z + float32(r*math.Sin(angle)),
	}
}

func (a *App) trackHitTest(origin, direction rl.Vector3) (int, bool) {
	snap := a.engine.Snapshot()
	bestID, bestT := -1, float32(0)
	for _, track := range snap.Tracks {
		if !track.Visible {
			continue
		}
		pos := a.trackMarkerPosition(track.ID)
		t, ok := geom.RaySphere(origin, direction, pos, trackMarkerRadius*3, a.cfg.MaxRayLength)
		if ok && (bestID < 0 || t < bestT) {
			bestID, bestT = track.ID, t
		}
	}
	return bestID, bestID >= 0
}

func (a *App) Draw() {
	rl.BeginDrawing()
	if a.session.Passthrough() {
		rl.ClearBackground(rl.NewColor(70, 70, 75, 255))
	} else {
		rl.ClearBackground(rl.NewColor(18, 18, 28, 255))
	}

	rl.BeginMode3D(a.cam.GetRaylibCamera())
	rl.DrawGrid(10, 0.5)
	a.drawVolume()
	a.drawTracks()
	for c := hud.Category(0); c < hud.CategoryCount; c++ {
		a.drawSurface(c)
	}
	a.drawRay()
	rl.EndMode3D()

	a.drawOverlay()
	rl.EndDrawing()
}

func (a *App) drawVolume() {
	vt := a.volume.Transform
	snap := a.engine.Snapshot()
	ext := rl.Vector3Scale(snap.Volume.HalfExtents, vt.UserScale)
	rl.DrawCubeWires(vt.Pivot, ext.X*2, ext.Y*2, ext.Z*2, rl.NewColor(120, 160, 220, 255))

	// Yaw indicator: a line from the pivot along the rotated local x axis.
	m := geom.YawPitchMatrix(vt.Yaw, vt.Pitch)
	axis := rl.Vector3Transform(rl.Vector3{X: ext.X}, m)
	rl.DrawLine3D(vt.Pivot, rl.Vector3Add(vt.Pivot, axis), rl.Yellow)

	if !a.volume.Visible() {
		return
	}
	colors := map[volume.HandleKind]rl.Color{
		volume.HandleTranslate: rl.SkyBlue,
		volume.HandleScale:     rl.Orange,
		volume.HandleYawA:      rl.Lime,
		volume.HandleYawB:      rl.Lime,
		volume.HandlePitch:     rl.Pink,
	}
	hover := a.engine.Entry(0).Hover
	for _, kind := range volume.Kinds() {
		c := colors[kind]
		if hover.Kind == interaction.TargetVolumeHandle && hover.VolumeHandle == kind {
			c = rl.White
		}
		rl.DrawSphere(a.volume.Position(kind), a.volume.Radius, c)
	}
}

func (a *App) drawTracks() {
	snap := a.engine.Snapshot()
	summary := a.engine.Summary()
	for _, track := range snap.Tracks {
		if !track.Visible {
			continue
		}
		pos := a.trackMarkerPosition(track.ID)
		c := track.Color
		c.A = uint8(geom.Clamp01(track.Opacity) * 255)
		radius := float32(trackMarkerRadius)
		if track.Followed || summary.TrackID == track.ID {
			radius *= 1.6
		}
		rl.DrawSphere(pos, radius, c)
	}
}

func (a *App) drawSurface(c hud.Category) {
	surf := a.engine.Surfaces[c]
	tr := a.transforms[c]
	halfW, halfH := surf.Width/2, surf.Height/2

	bl := tr.LocalToWorld(-halfW, -halfH)
	br := tr.LocalToWorld(halfW, -halfH)
	tl := tr.LocalToWorld(-halfW, halfH)
	trc := tr.LocalToWorld(halfW, halfH)

	fill := rl.NewColor(30, 34, 48, 230)
	rl.DrawTriangle3D(bl, br, trc, fill)
	rl.DrawTriangle3D(bl, trc, tl, fill)
	// Back faces so the panel is visible from behind.
	rl.DrawTriangle3D(trc, br, bl, fill)
	rl.DrawTriangle3D(tl, trc, bl, fill)

	for i := range surf.Regions {
		r := &surf.Regions[i]
		color := rl.NewColor(90, 100, 130, 255)
		if r.Disabled {
			color = rl.NewColor(55, 58, 70, 255)
		}
		if surf.HoverRegion != nil && surf.HoverRegion.Equal(*r) {
			color = rl.White
		}
		if r.Kind == hud.RegionTrackColor {
			color = r.NextColor
		}
		a.drawRegionOutline(tr, r.Bounds, color)
	}

	for _, h := range surf.Handles {
		pos := tr.HandleWorldPosition(h)
		color := rl.Gray
		hover := a.engine.Entry(0).Hover
		if hover.Kind == interaction.TargetHUDHandle && hover.Category == c && hover.Handle == h.Kind {
			color = rl.White
		}
		rl.DrawSphere(pos, h.Radius, color)
	}
}

func (a *App) drawRegionOutline(tr hud.Transform, b geom.Rect, color rl.Color) {
	bl := tr.LocalToWorld(b.MinX, b.MinY)
	br := tr.LocalToWorld(b.MaxX, b.MinY)
	tl := tr.LocalToWorld(b.MinX, b.MaxY)
	trc := tr.LocalToWorld(b.MaxX, b.MaxY)
	rl.DrawLine3D(bl, br, color)
	rl.DrawLine3D(br, trc, color)
	rl.DrawLine3D(trc, tl, color)
	rl.DrawLine3D(tl, bl, color)
}

func (a *App) drawRay() {
	entry := a.engine.Entry(0)
	if !entry.Connected || !entry.Visible {
		return
	}
	end := rl.Vector3Add(entry.Ray.Origin, rl.Vector3Scale(entry.Ray.Direction, entry.RayLength))
	rl.DrawLine3D(entry.Ray.Origin, end, rl.NewColor(180, 220, 255, 255))
	rl.DrawSphere(end, 0.006, rl.White)
}

func (a *App) drawOverlay() {
	if a.session.Active() {
		if gui.Button(rl.Rectangle{X: 10, Y: 10, Width: 110, Height: 26}, "End Session") {
			a.session.End(context.Background())
		}
	} else {
		if gui.Button(rl.Rectangle{X: 10, Y: 10, Width: 110, Height: 26}, "Start Session") {
			a.session.Request(context.Background())
		}
	}

	snap := a.engine.Snapshot()
	label := dataset.TimeLabel(snap.Playback.TimeIndex, snap.Playback.TotalTimepoints)
	rl.DrawText(fmt.Sprintf("t %s  fps %.0f", label, snap.Playback.FPS), 130, 16, 16, rl.RayWhite)
	rl.DrawText("drag panels and handles with the mouse ray", 10, 44, 14, rl.DarkGray)
	rl.DrawText("RMB look, WASD/QE move, C controller, F1 debug", 10, 62, 14, rl.DarkGray)
	rl.DrawFPS(10, 82)

	if a.debugMode {
		entry := a.engine.Entry(0)
		rl.DrawText(fmt.Sprintf("hover: %s  active: %s  ray %.2fm",
			targetLabel(entry.Hover), targetLabel(entry.Active), entry.RayLength),
			10, 110, 14, rl.Green)
		if a.session.Passthrough() {
			rl.DrawText("passthrough", 10, 128, 14, rl.Yellow)
		}
	}
}

func targetLabel(t interaction.Target) string {
	switch t.Kind {
	case interaction.TargetPanel:
		return t.Category.String() + " panel"
	case interaction.TargetRegion:
		return fmt.Sprintf("%s region %d", t.Category, t.Region.Kind)
	case interaction.TargetHUDHandle:
		return fmt.Sprintf("%s handle %d", t.Category, t.Handle)
	case interaction.TargetVolumeHandle:
		return fmt.Sprintf("volume handle %d", t.VolumeHandle)
	}
	return "none"
}

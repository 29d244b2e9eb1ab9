package hud

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"volview/internal/dataset"
	"volview/internal/geom"
)

// Panel metrics, in meters.
const (
	PlaybackWidth = 0.46
	ChannelsWidth = 0.44
	TracksWidth   = 0.40

	rowHeight    = 0.035
	rowGap       = 0.006
	panelPadding = 0.02

	timeSliderHalf = 0.16
	fpsSliderHalf  = 0.12

	maxVisibleTrackRows = 6
)

// FPS slider bounds.
const (
	MinFPS = 1
	MaxFPS = 60
)

// TrackPalette is the color cycle for track swatches.
var TrackPalette = []rl.Color{
	{R: 230, G: 80, B: 80, A: 255},
	{R: 80, G: 200, B: 120, A: 255},
	{R: 90, G: 140, B: 255, A: 255},
	{R: 240, G: 200, B: 80, A: 255},
	{R: 200, G: 100, B: 230, A: 255},
	{R: 90, G: 210, B: 210, A: 255},
}

// sliderSpec describes one per-layer imaging slider.
type sliderSpec struct {
	key            string
	min, max, step float32
}

var layerSliders = []sliderSpec{
	{dataset.SliderWindowMin, 0, 100, 1},
	{dataset.SliderWindowMax, 0, 100, 1},
	{dataset.SliderContrast, 0, 100, 1},
	{dataset.SliderBrightness, -1, 1, 0.01},
	{dataset.SliderOffsetX, -50, 50, 1},
	{dataset.SliderOffsetY, -50, 50, 1},
}

// MeasureResult is the outcome of a layout pass: the new region list and the
// desired height per surface.
type MeasureResult struct {
	Regions [CategoryCount][]Region
	Heights [CategoryCount]float32
}

// Measure computes region lists and surface heights from the domain snapshot.
// Contract with the content renderer: render, then Apply; when Apply reports a
// resize the caller must run Measure and render again so content and regions
// agree with the new height. Two passes, always.
func Measure(snap *dataset.Snapshot) MeasureResult {
	var res MeasureResult
	res.Regions[CategoryPlayback], res.Heights[CategoryPlayback] = measurePlayback(snap)
	res.Regions[CategoryChannels], res.Heights[CategoryChannels] = measureChannels(snap)
	res.Regions[CategoryTracks], res.Heights[CategoryTracks] = measureTracks(snap)
	return res
}

// Apply pushes a measure result onto the surfaces and reports whether any
// surface changed height, in which case content must be re-measured and
// re-rendered.
func Apply(res MeasureResult, surfaces *[CategoryCount]*Surface) bool {
	resized := false
	for c := Category(0); c < CategoryCount; c++ {
		s := surfaces[c]
		if s == nil {
			continue
		}
		if s.Height != res.Heights[c] {
			s.Resize(res.Heights[c])
			resized = true
		}
		s.SetRegions(res.Regions[c])
	}
	return resized
}

func measurePlayback(snap *dataset.Snapshot) ([]Region, float32) {
	const height = 0.14
	pb := snap.Playback

	maxIndex := pb.TotalTimepoints - 1
	if maxIndex < 0 {
		maxIndex = 0
	}

	regions := []Region{
		{
			Kind:     RegionPlayToggle,
			Bounds:   geom.Rect{MinX: -0.215, MaxX: -0.175, MinY: -0.02, MaxY: 0.02},
			Disabled: pb.Disabled,
		},
		{
			// Track centered at the local origin; the hit bounds are slightly
			// taller than the drawn 0.012 track.
			Kind:     RegionTimeSlider,
			Bounds:   geom.Rect{MinX: -timeSliderHalf - 0.01, MaxX: timeSliderHalf + 0.01, MinY: -0.02, MaxY: 0.02},
			Slider:   SliderRange{MinX: -timeSliderHalf, MaxX: timeSliderHalf},
			Min:      0,
			Max:      float32(maxIndex),
			Step:     1,
			Disabled: pb.Disabled || pb.TotalTimepoints <= 1,
		},
		{
			Kind:     RegionFPSSlider,
			Bounds:   geom.Rect{MinX: -fpsSliderHalf - 0.01, MaxX: fpsSliderHalf + 0.01, MinY: -0.06, MaxY: -0.028},
			Slider:   SliderRange{MinX: -fpsSliderHalf, MaxX: fpsSliderHalf},
			Min:      MinFPS,
			Max:      MaxFPS,
			Step:     1,
			Disabled: pb.Disabled,
		},
	}
	return regions, height
}

func measureChannels(snap *dataset.Snapshot) ([]Region, float32) {
	ch := snap.Channel(snap.ActiveChannel)

	// Rows: channel tabs, visibility, layer tabs, one per slider, buttons.
	rows := 3 + len(layerSliders) + 1
	height := float32(rows)*(rowHeight+rowGap) + 2*panelPadding
	halfW := float32(ChannelsWidth / 2)
	halfH := height / 2

	regions := make([]Region, 0, len(snap.Channels)+len(layerSliders)+8)
	y := halfH - panelPadding

	rowRect := func(top float32) geom.Rect {
		return geom.Rect{MinX: -halfW + panelPadding, MaxX: halfW - panelPadding, MinY: top - rowHeight, MaxY: top}
	}

	// Channel tabs share the top row.
	if n := len(snap.Channels); n > 0 {
		row := rowRect(y)
		tabW := row.Width() / float32(n)
		for i, c := range snap.Channels {
			regions = append(regions, Region{
				Kind:      RegionChannelTab,
				Bounds:    geom.Rect{MinX: row.MinX + float32(i)*tabW, MaxX: row.MinX + float32(i+1)*tabW, MinY: row.MinY, MaxY: row.MaxY},
				ChannelID: c.ID,
				Disabled:  c.ID == snap.ActiveChannel,
			})
		}
	}
	y -= rowHeight + rowGap

	if ch != nil {
		row := rowRect(y)
		regions = append(regions, Region{
			Kind:      RegionChannelVisibility,
			Bounds:    geom.Rect{MinX: row.MinX, MaxX: row.MinX + 0.05, MinY: row.MinY, MaxY: row.MaxY},
			ChannelID: ch.ID,
		})
		y -= rowHeight + rowGap

		// Layer tabs.
		if n := len(ch.Layers); n > 0 {
			row = rowRect(y)
			tabW := row.Width() / float32(n)
			for i, layer := range ch.Layers {
				regions = append(regions, Region{
					Kind:      RegionLayerTab,
					Bounds:    geom.Rect{MinX: row.MinX + float32(i)*tabW, MaxX: row.MinX + float32(i+1)*tabW, MinY: row.MinY, MaxY: row.MaxY},
					ChannelID: ch.ID,
					LayerKey:  layer.Key,
					Disabled:  layer.Key == ch.ActiveLayer,
				})
			}
		}
		y -= rowHeight + rowGap

		for _, spec := range layerSliders {
			row := rowRect(y)
			// Labels occupy the left third; the track spans the rest.
			trackMin := row.MinX + row.Width()/3
			regions = append(regions, Region{
				Kind:      RegionLayerSlider,
				Bounds:    geom.Rect{MinX: trackMin, MaxX: row.MaxX, MinY: row.MinY, MaxY: row.MaxY},
				ChannelID: ch.ID,
				LayerKey:  ch.ActiveLayer,
				SliderKey: spec.key,
				Slider:    SliderRange{MinX: trackMin + 0.01, MaxX: row.MaxX - 0.01},
				Min:       spec.min,
				Max:       spec.max,
				Step:      spec.step,
				Disabled:  !ch.Visible,
			})
			y -= rowHeight + rowGap
		}
	} else {
		y -= float32(2+len(layerSliders)) * (rowHeight + rowGap)
	}

	// Bottom button row: reset layer, recenter HUDs, reset volume,
	// passthrough, exit.
	row := rowRect(y)
	buttonW := row.Width() / 5
	kinds := []RegionKind{RegionLayerReset, RegionResetPlacement, RegionResetVolume, RegionModeButton, RegionExitButton}
	for i, kind := range kinds {
		r := Region{
			Kind:   kind,
			Bounds: geom.Rect{MinX: row.MinX + float32(i)*buttonW, MaxX: row.MinX + float32(i+1)*buttonW, MinY: row.MinY, MaxY: row.MaxY},
		}
		if kind == RegionLayerReset {
			if ch == nil {
				r.Disabled = true
			} else {
				r.ChannelID = ch.ID
				r.LayerKey = ch.ActiveLayer
			}
		}
		regions = append(regions, r)
	}

	return regions, height
}

func measureTracks(snap *dataset.Snapshot) ([]Region, float32) {
	total := len(snap.Tracks)
	visible := total
	if visible > maxVisibleTrackRows {
		visible = maxVisibleTrackRows
	}
	rows := visible
	if rows < 1 {
		rows = 1
	}
	height := float32(rows)*(rowHeight+rowGap) + 2*panelPadding
	halfW := float32(TracksWidth / 2)
	halfH := height / 2

	regions := make([]Region, 0, visible*5+1)

	// Scroll bar along the right edge; inverted so dragging down advances.
	regions = append(regions, Region{
		Kind:   RegionScrollBar,
		Bounds: geom.Rect{MinX: halfW - 0.025, MaxX: halfW - 0.005, MinY: -halfH + panelPadding, MaxY: halfH - panelPadding},
		Scroll: ScrollRange{
			MinY:        -halfH + panelPadding,
			MaxY:        halfH - panelPadding,
			TotalRows:   total,
			VisibleRows: visible,
			Inverted:    true,
		},
		Disabled: total <= visible,
	})

	first := geom.Clamp(float32(snap.TrackScroll), 0, float32(max(total-visible, 0)))
	y := halfH - panelPadding
	for i := int(first); i < int(first)+visible && i < total; i++ {
		track := snap.Tracks[i]
		rowTop := y
		rowBottom := y - rowHeight
		x := -halfW + panelPadding

		regions = append(regions,
			Region{
				Kind:    RegionTrackVisibility,
				Bounds:  geom.Rect{MinX: x, MaxX: x + 0.03, MinY: rowBottom, MaxY: rowTop},
				TrackID: track.ID,
			},
			Region{
				Kind:      RegionTrackColor,
				Bounds:    geom.Rect{MinX: x + 0.035, MaxX: x + 0.065, MinY: rowBottom, MaxY: rowTop},
				TrackID:   track.ID,
				NextColor: nextPaletteColor(track.Color),
			},
			Region{
				Kind:     RegionTrackOpacity,
				Bounds:   geom.Rect{MinX: x + 0.07, MaxX: x + 0.2, MinY: rowBottom, MaxY: rowTop},
				TrackID:  track.ID,
				Slider:   SliderRange{MinX: x + 0.075, MaxX: x + 0.195},
				Min:      0,
				Max:      1,
				Step:     0.05,
				Disabled: !track.Visible,
			},
			Region{
				Kind:     RegionTrackFollow,
				Bounds:   geom.Rect{MinX: x + 0.205, MaxX: x + 0.245, MinY: rowBottom, MaxY: rowTop},
				TrackID:  track.ID,
				Disabled: track.Followed,
			},
			Region{
				Kind:    RegionTrackRow,
				Bounds:  geom.Rect{MinX: x + 0.25, MaxX: halfW - 0.03, MinY: rowBottom, MaxY: rowTop},
				TrackID: track.ID,
			},
		)
		y -= rowHeight + rowGap
	}

	return regions, height
}

func nextPaletteColor(current rl.Color) rl.Color {
	for i, c := range TrackPalette {
		if c == current {
			return TrackPalette[(i+1)%len(TrackPalette)]
		}
	}
	return TrackPalette[0]
}

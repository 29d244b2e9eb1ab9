package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"volview/internal/dataset"
	"volview/internal/geom"
	"volview/internal/hud"
)

func defaultLayerValues() map[string]float32 {
	return map[string]float32{
		dataset.SliderWindowMin:  0,
		dataset.SliderWindowMax:  100,
		dataset.SliderContrast:   50,
		dataset.SliderBrightness: 0,
		dataset.SliderOffsetX:    0,
		dataset.SliderOffsetY:    0,
	}
}

// State is the viewer's mutable model of the demo dataset. The interaction
// engine only sees snapshots of it; every mutation arrives through the
// callback table.
type State struct {
	playing       bool
	fps           float32
	frameAccum    float32
	timeIndex     int
	timepoints    int
	channels      []dataset.Channel
	activeChannel int
	tracks        []dataset.Track
	trackScroll   int
	followed      int
	volume        dataset.VolumeInfo
}

// NewState seeds a synthetic multi-channel time series with trajectories,
// stand-in content for a real dataset loader.
func NewState() *State {
	s := &State{
		fps:        12,
		timepoints: 30,
		followed:   -1,
		volume: dataset.VolumeInfo{
			HasContent:  true,
			Depth:       64,
			HalfExtents: rl.Vector3{X: 0.4, Y: 0.3, Z: 0.25},
		},
	}
	names := []string{"nuclei", "membrane"}
	for i, name := range names {
		s.channels = append(s.channels, dataset.Channel{
			ID:          i,
			Name:        name,
			Visible:     true,
			ActiveLayer: "image",
			Layers: []dataset.Layer{
				{Key: "image", Values: defaultLayerValues()},
				{Key: "labels", Values: defaultLayerValues()},
			},
		})
	}
	for i := 0; i < 12; i++ {
		s.tracks = append(s.tracks, dataset.Track{
			ID:      i,
			Name:    "track",
			Visible: true,
			Color:   hud.TrackPalette[i%len(hud.TrackPalette)],
			Opacity: 1,
		})
	}
	return s
}

// Snapshot builds the read-only view the interaction engine consumes.
func (s *State) Snapshot() dataset.Snapshot {
	return dataset.Snapshot{
		Playback: dataset.Playback{
			Playing:         s.playing,
			FPS:             s.fps,
			TimeIndex:       s.timeIndex,
			TotalTimepoints: s.timepoints,
		},
		Channels:      s.channels,
		ActiveChannel: s.activeChannel,
		Tracks:        s.tracks,
		TrackScroll:   s.trackScroll,
		Volume:        s.volume,
	}
}

// Advance steps playback time, wrapping at the end of the series.
func (s *State) Advance(dt float32) {
	if !s.playing || s.timepoints <= 1 {
		return
	}
	s.frameAccum += dt
	frameDur := 1 / s.fps
	for s.frameAccum >= frameDur {
		s.frameAccum -= frameDur
		s.timeIndex = (s.timeIndex + 1) % s.timepoints
	}
}

// Subscribe wires every engine commit to its state mutation.
func (s *State) Subscribe(cb *dataset.Callbacks) {
	cb.TogglePlayback.AddListener(func() { s.playing = !s.playing })
	cb.SetTimeIndex.AddListener(func(i int) {
		s.timeIndex = int(geom.Clamp(float32(i), 0, float32(s.timepoints-1)))
	})
	cb.SetFPS.AddListener(func(v float32) { s.fps = geom.Clamp(v, 1, 60) })

	cb.SelectChannelTab.AddListener(func(id int) {
		if s.channel(id) != nil {
			s.activeChannel = id
		}
	})
	cb.ToggleChannelVisibility.AddListener(func(id int) {
		if c := s.channel(id); c != nil {
			c.Visible = !c.Visible
		}
	})
	cb.SelectLayer.AddListener(func(ref dataset.LayerRef) {
		if c := s.channel(ref.ChannelID); c != nil && c.Layer(ref.LayerKey) != nil {
			c.ActiveLayer = ref.LayerKey
		}
	})
	cb.SetLayerValue.AddListener(func(v dataset.LayerValue) {
		if c := s.channel(v.ChannelID); c != nil {
			if l := c.Layer(v.LayerKey); l != nil {
				l.Values[v.SliderKey] = v.Value
			}
		}
	})
	cb.ResetLayer.AddListener(func(ref dataset.LayerRef) {
		if c := s.channel(ref.ChannelID); c != nil {
			if l := c.Layer(ref.LayerKey); l != nil {
				l.Values = defaultLayerValues()
			}
		}
	})

	cb.ToggleTrackVisibility.AddListener(func(id int) {
		if t := s.track(id); t != nil {
			t.Visible = !t.Visible
		}
	})
	cb.SetTrackColor.AddListener(func(tc dataset.TrackColor) {
		if t := s.track(tc.TrackID); t != nil {
			t.Color = tc.Color
		}
	})
	cb.SetTrackOpacity.AddListener(func(to dataset.TrackOpacity) {
		if t := s.track(to.TrackID); t != nil {
			t.Opacity = geom.Clamp01(to.Opacity)
		}
	})
	cb.FollowTrack.AddListener(func(id int) {
		for i := range s.tracks {
			s.tracks[i].Followed = s.tracks[i].ID == id
		}
		s.followed = id
	})
	cb.ScrollTracks.AddListener(func(offset int) {
		maxOffset := len(s.tracks) - 1
		if maxOffset < 0 {
			maxOffset = 0
		}
		s.trackScroll = int(geom.Clamp(float32(offset), 0, float32(maxOffset)))
	})
}

func (s *State) channel(id int) *dataset.Channel {
	for i := range s.channels {
		if s.channels[i].ID == id {
			return &s.channels[i]
		}
	}
	return nil
}

func (s *State) track(id int) *dataset.Track {
	for i := range s.tracks {
		if s.tracks[i].ID == id {
			return &s.tracks[i]
		}
	}
	return nil
}

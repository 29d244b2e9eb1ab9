package dataset

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Slider keys for per-layer imaging values.
const (
	SliderWindowMin  = "window_min"
	SliderWindowMax  = "window_max"
	SliderContrast   = "contrast"
	SliderBrightness = "brightness"
	SliderOffsetX    = "offset_x"
	SliderOffsetY    = "offset_y"
)

// Playback is the transport state of the time-series, refreshed once per tick.
type Playback struct {
	Playing         bool
	Disabled        bool
	FPS             float32
	TimeIndex       int
	TotalTimepoints int
}

// Layer holds the imaging values of one channel layer, keyed by slider key.
type Layer struct {
	Key    string
	Values map[string]float32
}

// Channel is one imaging channel of the volume.
type Channel struct {
	ID          int
	Name        string
	Visible     bool
	ActiveLayer string
	Layers      []Layer
}

// Track is one trajectory in the dataset.
type Track struct {
	ID       int
	Name     string
	Visible  bool
	Color    rl.Color
	Opacity  float32
	Followed bool
}

// VolumeInfo describes the loaded volume, used to gate manipulation handles.
type VolumeInfo struct {
	HasContent  bool
	Depth       int
	HalfExtents rl.Vector3
}

// Snapshot is the read-only per-tick view of domain state the interaction
// engine consumes. The engine never mutates it; all changes go through the
// Callbacks table.
type Snapshot struct {
	Playback      Playback
	Channels      []Channel
	ActiveChannel int
	Tracks        []Track
	TrackScroll   int
	Volume        VolumeInfo
}

// Channel returns the channel with the given id, or nil.
func (s *Snapshot) Channel(id int) *Channel {
	for i := range s.Channels {
		if s.Channels[i].ID == id {
			return &s.Channels[i]
		}
	}
	return nil
}

// Layer returns the layer with the given key, or nil.
func (c *Channel) Layer(key string) *Layer {
	for i := range c.Layers {
		if c.Layers[i].Key == key {
			return &c.Layers[i]
		}
	}
	return nil
}

// TimeLabel formats a zero-based time index for display, e.g. "7 / 10".
func TimeLabel(index, total int) string {
	return fmt.Sprintf("%d / %d", index+1, total)
}

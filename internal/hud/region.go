package hud

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"volview/internal/geom"
)

// Category identifies one of the three HUD surfaces.
type Category int

const (
	CategoryPlayback Category = iota
	CategoryChannels
	CategoryTracks
	CategoryCount
)

func (c Category) String() string {
	switch c {
	case CategoryPlayback:
		return "playback"
	case CategoryChannels:
		return "channels"
	case CategoryTracks:
		return "tracks"
	}
	return "unknown"
}

// RegionKind tags one interactive element within a surface's local plane.
type RegionKind int

const (
	RegionPanel RegionKind = iota
	RegionPlayToggle
	RegionTimeSlider
	RegionFPSSlider
	RegionChannelTab
	RegionChannelVisibility
	RegionLayerTab
	RegionLayerSlider
	RegionLayerReset
	RegionResetPlacement
	RegionResetVolume
	RegionExitButton
	RegionModeButton
	RegionTrackRow
	RegionTrackVisibility
	RegionTrackColor
	RegionTrackOpacity
	RegionTrackFollow
	RegionScrollBar
)

// Continuous reports whether the kind is a continuous control that applies its
// value every frame while held and locks as the resolved target for the
// duration of the drag.
func (k RegionKind) Continuous() bool {
	switch k {
	case RegionTimeSlider, RegionFPSSlider, RegionLayerSlider, RegionTrackOpacity, RegionScrollBar:
		return true
	}
	return false
}

// SliderRange is the local x extent of a horizontal slider track.
type SliderRange struct {
	MinX, MaxX float32
}

// ScrollRange is the local y extent of a vertical scroll bar, plus the row
// counts needed to quantize the scroll offset.
type ScrollRange struct {
	MinY, MaxY  float32
	TotalRows   int
	VisibleRows int
	Inverted    bool
}

// MaxIndex returns the highest whole-row scroll offset.
func (s ScrollRange) MaxIndex() int {
	n := s.TotalRows - s.VisibleRows
	if n < 0 {
		n = 0
	}
	return n
}

// Region describes one interactive element in a surface's local frame.
// Regions are value objects: hover-change detection compares by field
// equality, not identity, because the list is rebuilt wholesale whenever the
// panel content changes.
type Region struct {
	Kind   RegionKind
	Bounds geom.Rect

	ChannelID int
	LayerKey  string
	SliderKey string
	TrackID   int

	Min, Max, Step float32
	Slider         SliderRange
	Scroll         ScrollRange

	// NextColor is the palette color a track swatch cycles to on commit.
	NextColor rl.Color

	Disabled bool
}

// Equal reports field-wise equality with another region.
func (r Region) Equal(o Region) bool {
	return r == o
}

package dataset

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"volview/internal/event"
)

// LayerRef identifies a layer within a channel.
type LayerRef struct {
	ChannelID int
	LayerKey  string
}

// LayerValue is a slider commit for one layer value.
type LayerValue struct {
	ChannelID int
	LayerKey  string
	SliderKey string
	Value     float32
}

// TrackColor is a color-swatch commit for one track.
type TrackColor struct {
	TrackID int
	Color   rl.Color
}

// TrackOpacity is an opacity slider commit for one track.
type TrackOpacity struct {
	TrackID int
	Opacity float32
}

// Callbacks is the engine's downstream mutation contract: one multicast event
// per committed action. The host subscribes domain mutations; the engine only
// invokes.
type Callbacks struct {
	TogglePlayback event.Event
	SetTimeIndex   event.EventWithArg[int]
	SetFPS         event.EventWithArg[float32]

	SelectChannelTab        event.EventWithArg[int]
	ToggleChannelVisibility event.EventWithArg[int]
	SelectLayer             event.EventWithArg[LayerRef]
	SetLayerValue           event.EventWithArg[LayerValue]
	ResetLayer              event.EventWithArg[LayerRef]

	ToggleTrackVisibility event.EventWithArg[int]
	SetTrackColor         event.EventWithArg[TrackColor]
	SetTrackOpacity       event.EventWithArg[TrackOpacity]
	FollowTrack           event.EventWithArg[int]
	ScrollTracks          event.EventWithArg[int]

	ResetVolumeTransform event.Event
	ResetHUDPlacement    event.EventWithArg[int]
	RequestSessionEnd    event.Event
	TogglePassthrough    event.Event
}

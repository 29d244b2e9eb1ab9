package interaction

import (
	"math"

	"volview/internal/geom"
	"volview/internal/hud"
)

// SliderRatio maps a local x coordinate onto a slider track as a ratio in
// [0, 1]. Degenerate tracks map to 0.
func SliderRatio(track hud.SliderRange, localX float32) float32 {
	span := track.MaxX - track.MinX
	if span <= 0 {
		return 0
	}
	return geom.Clamp01((localX - track.MinX) / span)
}

// SliderValue maps a ratio in [0, 1] onto [min, max], snapping to step
// increments when step is positive. The result is always within [min, max].
func SliderValue(min, max, step, ratio float32) float32 {
	raw := min + geom.Clamp01(ratio)*(max-min)
	if step > 0 {
		raw = min + float32(math.Round(float64((raw-min)/step)))*step
	}
	return geom.Clamp(raw, min, max)
}

// ScrollIndex maps a local y coordinate onto a whole-row scroll offset in
// [0, maxIndex]. A scroll range with nothing to scroll always yields 0.
func ScrollIndex(s hud.ScrollRange, localY float32) int {
	maxIndex := s.MaxIndex()
	if maxIndex == 0 {
		return 0
	}
	span := s.MaxY - s.MinY
	if span <= 0 {
		return 0
	}
	ratio := geom.Clamp01((localY - s.MinY) / span)
	if s.Inverted {
		ratio = 1 - ratio
	}
	return int(math.Round(float64(ratio * float32(maxIndex))))
}

// AngleDelta returns the wrapped difference between the current and initial
// gesture angles, always in [-pi, pi].
func AngleDelta(initial, current float32) float32 {
	return geom.WrapAngle(current - initial)
}

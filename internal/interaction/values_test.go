package interaction

import (
	"math"
	"testing"

	"volview/internal/dataset"
	"volview/internal/hud"
)

func TestSliderRatio(t *testing.T) {
	track := hud.SliderRange{MinX: -0.16, MaxX: 0.16}

	if got := SliderRatio(track, -0.16); got != 0 {
		t.Errorf("left edge ratio = %v, want 0", got)
	}
	if got := SliderRatio(track, 0.16); got != 1 {
		t.Errorf("right edge ratio = %v, want 1", got)
	}
	if got := SliderRatio(track, -0.5); got != 0 {
		t.Errorf("beyond left clamps to %v, want 0", got)
	}
	if got := SliderRatio(track, 0.5); got != 1 {
		t.Errorf("beyond right clamps to %v, want 1", got)
	}

	got := SliderRatio(track, 0.05)
	want := float32((0.05 + 0.16) / 0.32)
	if math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("ratio at 0.05 = %v, want %v", got, want)
	}
}

func TestSliderRatioDegenerateTrack(t *testing.T) {
	if got := SliderRatio(hud.SliderRange{MinX: 0.1, MaxX: 0.1}, 0.3); got != 0 {
		t.Errorf("zero-width track ratio = %v, want 0", got)
	}
}

func TestSliderValueTimeIndex(t *testing.T) {
	// 10 timepoints: indices 0..9, whole steps.
	ratio := SliderRatio(hud.SliderRange{MinX: -0.16, MaxX: 0.16}, 0.05)
	v := SliderValue(0, 9, 1, ratio)
	if int(v) != 6 {
		t.Fatalf("time index = %v, want 6", v)
	}
	if got := dataset.TimeLabel(int(v), 10); got != "7 / 10" {
		t.Errorf("label = %q, want %q", got, "7 / 10")
	}
}

func TestSliderValueContrast(t *testing.T) {
	if got := SliderValue(0, 100, 1, 0.337); got != 34 {
		t.Errorf("contrast = %v, want 34", got)
	}
}

func TestSliderValueStepAndClamp(t *testing.T) {
	if got := SliderValue(-1, 1, 0.01, 0.5); math.Abs(float64(got)) > 1e-6 {
		t.Errorf("midpoint of [-1,1] = %v, want 0", got)
	}
	if got := SliderValue(0, 9, 1, 1.7); got != 9 {
		t.Errorf("overdriven ratio = %v, want 9", got)
	}
	if got := SliderValue(0, 9, 1, -0.3); got != 0 {
		t.Errorf("negative ratio = %v, want 0", got)
	}
	// Step zero means no snapping.
	if got := SliderValue(0, 10, 0, 0.33); math.Abs(float64(got-3.3)) > 1e-5 {
		t.Errorf("unstepped value = %v, want 3.3", got)
	}
}

func TestSliderValueRoundTrip(t *testing.T) {
	// Mapped values stay within [min, max] and land on step increments.
	ranges := []struct{ min, max, step float32 }{
		{0, 9, 1},
		{1, 60, 1},
		{0, 100, 1},
		{-1, 1, 0.01},
		{-50, 50, 1},
		{0, 1, 0.05},
	}
	for _, r := range ranges {
		for ratio := float32(0); ratio <= 1.001; ratio += 0.07 {
			v := SliderValue(r.min, r.max, r.step, ratio)
			if v < r.min || v > r.max {
				t.Fatalf("value %v outside [%v,%v] at ratio %v", v, r.min, r.max, ratio)
			}
			steps := float64((v - r.min) / r.step)
			if math.Abs(steps-math.Round(steps)) > 1e-3 {
				t.Fatalf("value %v not on step grid %v (min %v)", v, r.step, r.min)
			}
		}
	}
}

func TestScrollIndex(t *testing.T) {
	s := hud.ScrollRange{MinY: -0.1, MaxY: 0.1, TotalRows: 10, VisibleRows: 6, Inverted: true}
	if got := s.MaxIndex(); got != 4 {
		t.Fatalf("MaxIndex = %d, want 4", got)
	}

	// Inverted: the top of the bar is offset 0, the bottom is the max.
	if got := ScrollIndex(s, 0.1); got != 0 {
		t.Errorf("top = %d, want 0", got)
	}
	if got := ScrollIndex(s, -0.1); got != 4 {
		t.Errorf("bottom = %d, want 4", got)
	}
	if got := ScrollIndex(s, 0); got != 2 {
		t.Errorf("middle = %d, want 2", got)
	}
	// Quantized to whole rows.
	if got := ScrollIndex(s, 0.04); got != 1 {
		t.Errorf("above middle = %d, want 1", got)
	}
}

func TestScrollIndexNothingToScroll(t *testing.T) {
	s := hud.ScrollRange{MinY: -0.1, MaxY: 0.1, TotalRows: 4, VisibleRows: 6}
	if got := ScrollIndex(s, -0.1); got != 0 {
		t.Errorf("index = %d, want 0 when all rows fit", got)
	}
}

func TestAngleDelta(t *testing.T) {
	cases := []struct {
		initial, current, want float32
	}{
		{0, 0.5, 0.5},
		{0.5, 0, -0.5},
		{3, -3, 2*math.Pi - 6},
		{-3, 3, 6 - 2*math.Pi},
		{math.Pi / 2, math.Pi, math.Pi / 2},
	}
	for _, c := range cases {
		got := AngleDelta(c.initial, c.current)
		if math.Abs(float64(got-c.want)) > 1e-5 {
			t.Errorf("AngleDelta(%v, %v) = %v, want %v", c.initial, c.current, got, c.want)
		}
	}
}

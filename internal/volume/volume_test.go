package volume

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"volview/internal/geom"
)

func TestRootPositionCompensatesOffset(t *testing.T) {
	pivot := rl.Vector3{X: 1, Y: 1, Z: 1}
	offset := rl.Vector3{X: 0.5, Y: 0, Z: 0}
	tr := NewTransform(pivot, offset)

	// Unrotated: root sits offset behind the pivot.
	got := tr.RootPosition()
	want := rl.Vector3{X: 0.5, Y: 1, Z: 1}
	if !geom.ApproxEqualVec3(got, want, 1e-5) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// A half-turn yaw flips the compensation; the content center stays pinned
	// to the pivot either way.
	tr.Yaw = math.Pi
	got = tr.RootPosition()
	want = rl.Vector3{X: 1.5, Y: 1, Z: 1}
	if !geom.ApproxEqualVec3(got, want, 1e-5) {
		t.Errorf("expected %v after yaw, got %v", want, got)
	}

	// Scale stretches the compensation with the content.
	tr.Yaw = 0
	tr.UserScale = 2
	got = tr.RootPosition()
	want = rl.Vector3{X: 0, Y: 1, Z: 1}
	if !geom.ApproxEqualVec3(got, want, 1e-5) {
		t.Errorf("expected %v after scale, got %v", want, got)
	}
}

func TestSetScaleClamps(t *testing.T) {
	tr := NewTransform(rl.Vector3{}, rl.Vector3{})

	tr.SetScale(10, 0.25, 4)
	if tr.UserScale != 4 {
		t.Errorf("expected clamp to 4, got %f", tr.UserScale)
	}
	tr.SetScale(0.01, 0.25, 4)
	if tr.UserScale != 0.25 {
		t.Errorf("expected clamp to 0.25, got %f", tr.UserScale)
	}
}

func TestReset(t *testing.T) {
	tr := NewTransform(rl.Vector3{X: 1}, rl.Vector3{})
	tr.Translate(rl.Vector3{X: 2, Y: 3, Z: 4})
	tr.Yaw = 1
	tr.Pitch = 0.5
	tr.UserScale = 3

	tr.Reset()

	if tr.Pivot.X != 1 || tr.Pivot.Y != 0 || tr.Yaw != 0 || tr.Pitch != 0 || tr.UserScale != 1 {
		t.Errorf("reset did not restore load-time pose: %+v", tr)
	}
}

func TestHandleVisibilityGate(t *testing.T) {
	h := NewHandles(NewTransform(rl.Vector3{}, rl.Vector3{}), rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, 0.02)

	cases := []struct {
		session, content bool
		depth            int
		want             bool
	}{
		{true, true, 30, true},
		{false, true, 30, false},
		{true, false, 30, false},
		{true, true, 1, false}, // single-slice datasets have no 3D handles
		{true, true, 2, true},
	}
	for _, c := range cases {
		h.Refresh(c.session, c.content, c.depth)
		if h.Visible() != c.want {
			t.Errorf("Refresh(%v, %v, %d): visible = %v, want %v",
				c.session, c.content, c.depth, h.Visible(), c.want)
		}
	}
}

func TestHandlePositionsScaleWithVolume(t *testing.T) {
	tr := NewTransform(rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{})
	h := NewHandles(tr, rl.Vector3{X: 0.5, Y: 0.4, Z: 0.3}, 0.02)

	yawA := h.Position(HandleYawA)
	yawB := h.Position(HandleYawB)
	if yawA.X >= tr.Pivot.X || yawB.X <= tr.Pivot.X {
		t.Error("yaw handles should straddle the pivot on X")
	}
	if h.Position(HandlePitch).Y <= tr.Pivot.Y {
		t.Error("pitch handle should sit above the pivot")
	}
	if h.Position(HandleTranslate).Y >= tr.Pivot.Y {
		t.Error("translate handle should sit below the pivot")
	}

	before := h.Position(HandleYawB).X - tr.Pivot.X
	tr.UserScale = 2
	after := h.Position(HandleYawB).X - tr.Pivot.X
	if after <= before {
		t.Error("handles should move out when the volume scales up")
	}
}

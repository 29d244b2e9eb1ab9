package geom

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const parallelEpsilon = 1e-6

// Rect is an axis-aligned rectangle in a surface's local plane.
type Rect struct {
	MinX, MaxX float32
	MinY, MaxY float32
}

// Contains reports whether the local point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Expand grows the rectangle by m on all sides.
func (r Rect) Expand(m float32) Rect {
	return Rect{MinX: r.MinX - m, MaxX: r.MaxX + m, MinY: r.MinY - m, MaxY: r.MaxY + m}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// RayPlane returns where a ray hits a plane (defined by point + normal).
// Rejects parallel rays and intersections behind the ray origin.
func RayPlane(rayOrigin, rayDir, planePoint, planeNormal rl.Vector3) (rl.Vector3, bool) {
	denom := rl.Vector3DotProduct(rayDir, planeNormal)
	if math.Abs(float64(denom)) < parallelEpsilon {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(planePoint, rayOrigin), planeNormal) / denom
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(rayOrigin, rl.Vector3Scale(rayDir, t)), true
}

// RaySphere returns the distance along the ray to the nearest intersection
// with the sphere, if one exists within maxDistance.
func RaySphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (float32, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return 0, false
	}

	sqrtD := float32(math.Sqrt(float64(discriminant)))
	t := (-b - sqrtD) / (2 * a)
	if t < 0 {
		t = (-b + sqrtD) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return 0, false
	}
	return t, true
}

// AngleOnBasis measures the signed angle of v projected onto the plane spanned
// by right and back, as atan2(v·right, v·back). The basis is captured once at
// gesture start so head movement during a drag does not rotate the target.
func AngleOnBasis(v, right, back rl.Vector3) float32 {
	return float32(math.Atan2(
		float64(rl.Vector3DotProduct(v, right)),
		float64(rl.Vector3DotProduct(v, back)),
	))
}

// WrapAngle wraps an angle into [-pi, pi] with a single correction.
func WrapAngle(a float32) float32 {
	if a > math.Pi {
		return a - 2*math.Pi
	}
	if a < -math.Pi {
		return a + 2*math.Pi
	}
	return a
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 bounds v to the [0..1] range.
func Clamp01(v float32) float32 {
	return Clamp(v, 0, 1)
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// ApproxEqualVec3 reports whether every component of a and b differs by at most eps.
func ApproxEqualVec3(a, b rl.Vector3, eps float32) bool {
	return ApproxEqual(a.X, b.X, eps) && ApproxEqual(a.Y, b.Y, eps) && ApproxEqual(a.Z, b.Z, eps)
}

// YawPitchMatrix builds the orientation matrix for a yaw (around Y) followed
// by a pitch (around X), the orientation model used by HUD surfaces and the
// volume root.
func YawPitchMatrix(yaw, pitch float32) rl.Matrix {
	return rl.MatrixMultiply(rl.MatrixRotateX(pitch), rl.MatrixRotateY(yaw))
}

package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: math32.Abs(size.X) / 2, Y: math32.Abs(size.Y) / 2, Z: math32.Abs(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Resolve returns the minimum translation vector to push a out of b, or the
// zero vector if they do not overlap.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	// Penetration depth in each direction
	dx1 := b.Max.X - a.Min.X // push a in +X
	dx2 := a.Max.X - b.Min.X // push a in -X
	dy1 := b.Max.Y - a.Min.Y // push a in +Y
	dy2 := a.Max.Y - b.Min.Y // push a in -Y
	dz1 := b.Max.Z - a.Min.Z // push a in +Z
	dz2 := a.Max.Z - b.Min.Z // push a in -Z

	min := dx1
	result := rl.Vector3{X: dx1}

	if dx2 < min {
		min = dx2
		result = rl.Vector3{X: -dx2}
	}
	if dy1 < min {
		min = dy1
		result = rl.Vector3{Y: dy1}
	}
	if dy2 < min {
		min = dy2
		result = rl.Vector3{Y: -dy2}
	}
	if dz1 < min {
		min = dz1
		result = rl.Vector3{Z: dz1}
	}
	if dz2 < min {
		result = rl.Vector3{Z: -dz2}
	}

	return result
}

// ClosestPoint clamps p into the box.
func (a AABB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: math32.Max(a.Min.X, math32.Min(p.X, a.Max.X)),
		Y: math32.Max(a.Min.Y, math32.Min(p.Y, a.Max.Y)),
		Z: math32.Max(a.Min.Z, math32.Min(p.Z, a.Max.Z)),
	}
}

// RayDistance intersects a ray with the box using the slab method. dir must
// be normalized. Returns the entry distance and the face normal hit.
func (a AABB) RayDistance(origin, dir rl.Vector3, maxDistance float32) (float32, rl.Vector3, bool) {
	tmin := float32(0)
	tmax := maxDistance
	var normal rl.Vector3

	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{dir.X, dir.Y, dir.Z}
	lo := [3]float32{a.Min.X, a.Min.Y, a.Min.Z}
	hi := [3]float32{a.Max.X, a.Max.Y, a.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if math32.Abs(d[axis]) < 1e-8 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return 0, rl.Vector3{}, false
			}
			continue
		}
		inv := 1 / d[axis]
		t1 := (lo[axis] - o[axis]) * inv
		t2 := (hi[axis] - o[axis]) * inv
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			normal = axisVector(axis, sign)
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, rl.Vector3{}, false
		}
	}
	return tmin, normal, true
}

func axisVector(axis int, sign float32) rl.Vector3 {
	switch axis {
	case 0:
		return rl.Vector3{X: sign}
	case 1:
		return rl.Vector3{Y: sign}
	default:
		return rl.Vector3{Z: sign}
	}
}

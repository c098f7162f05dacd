package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// contactBetween reports whether a and b overlap. normal pushes a out of b.
func contactBetween(a, b Collider) (rl.Vector3, float32, bool) {
	switch ca := a.(type) {
	case *SphereCollider:
		switch cb := b.(type) {
		case *SphereCollider:
			return sphereSphere(ca, cb)
		case *BoxCollider:
			return sphereBox(ca.Center(), ca.WorldRadius(), cb.Bounds())
		}
	case *BoxCollider:
		if cb, ok := b.(*SphereCollider); ok {
			n, d, hit := sphereBox(cb.Center(), cb.WorldRadius(), ca.Bounds())
			return rl.Vector3Negate(n), d, hit
		}
	}
	return boxBox(a.Bounds(), b.Bounds())
}

func boxBox(a, b AABB) (rl.Vector3, float32, bool) {
	mtv := a.Resolve(b)
	depth := rl.Vector3Length(mtv)
	if depth == 0 {
		return rl.Vector3{}, 0, false
	}
	return rl.Vector3Scale(mtv, 1/depth), depth, true
}

func sphereSphere(a, b *SphereCollider) (rl.Vector3, float32, bool) {
	delta := rl.Vector3Subtract(a.Center(), b.Center())
	dist := rl.Vector3Length(delta)
	overlap := a.WorldRadius() + b.WorldRadius() - dist
	if overlap <= 0 {
		return rl.Vector3{}, 0, false
	}
	if dist < 1e-6 {
		return rl.Vector3{Y: 1}, overlap, true
	}
	return rl.Vector3Scale(delta, 1/dist), overlap, true
}

// sphereBox pushes the sphere out of the box.
func sphereBox(center rl.Vector3, radius float32, box AABB) (rl.Vector3, float32, bool) {
	closest := box.ClosestPoint(center)
	delta := rl.Vector3Subtract(center, closest)
	dist := rl.Vector3Length(delta)
	if dist >= radius {
		return rl.Vector3{}, 0, false
	}
	if dist > 1e-6 {
		return rl.Vector3Scale(delta, 1/dist), radius - dist, true
	}
	// Center inside the box: leave through the nearest face.
	d := 2 * radius
	return boxBox(NewAABBFromCenter(center, rl.Vector3{X: d, Y: d, Z: d}), box)
}

// raySphere returns the entry distance of a normalized ray into a sphere.
func raySphere(origin, dir, center rl.Vector3, radius, maxDistance float32) (float32, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, dir)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - math32.Sqrt(disc)
	if t < 0 {
		t = 0 // origin inside the sphere
	}
	if t > maxDistance || -b+math32.Sqrt(disc) < 0 {
		return 0, false
	}
	return t, true
}

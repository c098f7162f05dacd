package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform is the local placement of a GameObject relative to its parent.
// World-space values are recomputed on demand from the parent chain.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3

	gameObject *GameObject
	parent     *Transform
	children   []*Transform
}

func newTransform(g *GameObject) *Transform {
	return &Transform{
		Rotation:   rl.QuaternionIdentity(),
		Scale:      rl.Vector3{X: 1, Y: 1, Z: 1},
		gameObject: g,
	}
}

func (t *Transform) GameObject() *GameObject {
	return t.gameObject
}

func (t *Transform) Parent() *Transform {
	return t.parent
}

// Children returns the child transforms in insertion order. The slice must
// not be modified by the caller.
func (t *Transform) Children() []*Transform {
	return t.children
}

func (t *Transform) ChildCount() int {
	return len(t.children)
}

// SetParent moves t under parent, or to the root when parent is nil.
// Parenting a transform under itself or one of its descendants panics.
func (t *Transform) SetParent(parent *Transform) {
	if parent == t.parent {
		return
	}
	for p := parent; p != nil; p = p.parent {
		if p == t {
			panic("engine: transform parent cycle")
		}
	}
	if t.parent != nil {
		t.parent.removeChild(t)
	}
	t.parent = parent
	if parent != nil {
		parent.children = append(parent.children, t)
	}
}

// removeChild rebuilds the slice so iterations over the old one stay valid.
func (t *Transform) removeChild(child *Transform) {
	for i, c := range t.children {
		if c == child {
			next := make([]*Transform, 0, len(t.children)-1)
			next = append(next, t.children[:i]...)
			t.children = append(next, t.children[i+1:]...)
			return
		}
	}
}

// IsChildOf reports whether t sits anywhere below other.
func (t *Transform) IsChildOf(other *Transform) bool {
	for p := t.parent; p != nil; p = p.parent {
		if p == other {
			return true
		}
	}
	return false
}

// Root returns the top-most ancestor, or t itself.
func (t *Transform) Root() *Transform {
	r := t
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// LocalMatrix composes scale, then rotation, then translation.
func (t *Transform) LocalMatrix() rl.Matrix {
	s := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	r := rl.QuaternionToMatrix(t.Rotation)
	tr := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(s, r), tr)
}

func (t *Transform) WorldMatrix() rl.Matrix {
	m := t.LocalMatrix()
	if t.parent == nil {
		return m
	}
	return rl.MatrixMultiply(m, t.parent.WorldMatrix())
}

func (t *Transform) WorldPosition() rl.Vector3 {
	if t.parent == nil {
		return t.Position
	}
	return rl.Vector3Transform(t.Position, t.parent.WorldMatrix())
}

func (t *Transform) WorldRotation() rl.Quaternion {
	if t.parent == nil {
		return t.Rotation
	}
	return rl.QuaternionMultiply(t.parent.WorldRotation(), t.Rotation)
}

// LossyScale ignores skew introduced by rotated, non-uniformly scaled parents.
func (t *Transform) LossyScale() rl.Vector3 {
	if t.parent == nil {
		return t.Scale
	}
	ps := t.parent.LossyScale()
	return rl.Vector3{X: ps.X * t.Scale.X, Y: ps.Y * t.Scale.Y, Z: ps.Z * t.Scale.Z}
}

// SetEulerAngles sets the local rotation from pitch/yaw/roll in degrees.
func (t *Transform) SetEulerAngles(deg rl.Vector3) {
	t.Rotation = rl.QuaternionFromEuler(deg.X*rl.Deg2rad, deg.Y*rl.Deg2rad, deg.Z*rl.Deg2rad)
}

// EulerAngles returns the local rotation as pitch/yaw/roll in degrees.
func (t *Transform) EulerAngles() rl.Vector3 {
	return rl.Vector3Scale(rl.QuaternionToEuler(t.Rotation), rl.Rad2deg)
}

// Translate moves the transform in its parent's space.
func (t *Transform) Translate(delta rl.Vector3) {
	t.Position = rl.Vector3Add(t.Position, delta)
}

// TranslateWorld moves the transform by a world-space offset, undoing the
// parent's rotation and scale.
func (t *Transform) TranslateWorld(delta rl.Vector3) {
	if t.parent == nil {
		t.Position = rl.Vector3Add(t.Position, delta)
		return
	}
	inv := rl.MatrixInvert(t.parent.WorldMatrix())
	origin := rl.Vector3Transform(rl.Vector3{}, inv)
	local := rl.Vector3Subtract(rl.Vector3Transform(delta, inv), origin)
	t.Position = rl.Vector3Add(t.Position, local)
}

// Rotate applies an additional local rotation of angle degrees around axis.
func (t *Transform) Rotate(axis rl.Vector3, angle float32) {
	q := rl.QuaternionFromAxisAngle(rl.Vector3Normalize(axis), angle*rl.Deg2rad)
	t.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(t.Rotation, q))
}

// Forward is the local -Z axis expressed in world space.
func (t *Transform) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Z: -1}, t.WorldRotation())
}

func (t *Transform) Up() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, t.WorldRotation())
}

func (t *Transform) Right() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, t.WorldRotation())
}

// LookAt turns the transform so that Forward points at target, keeping up
// as close to worldUp as possible.
func (t *Transform) LookAt(target, worldUp rl.Vector3) {
	eye := t.WorldPosition()
	if rl.Vector3Equals(eye, target) {
		return
	}
	view := rl.MatrixLookAt(eye, target, worldUp)
	world := rl.QuaternionInvert(rl.QuaternionFromMatrix(view))
	if t.parent != nil {
		world = rl.QuaternionMultiply(rl.QuaternionInvert(t.parent.WorldRotation()), world)
	}
	t.Rotation = rl.QuaternionNormalize(world)
}

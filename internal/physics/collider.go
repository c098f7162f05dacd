package physics

import (
	"unigo/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxCollider", func(p engine.Props) (engine.Component, error) {
		size, err := p.Vec3("size", rl.Vector3{X: 1, Y: 1, Z: 1})
		if err != nil {
			return nil, err
		}
		offset, err := p.Vec3("offset", rl.Vector3{})
		if err != nil {
			return nil, err
		}
		b := NewBoxCollider(size)
		b.Offset = offset
		b.Trigger = p.Bool("isTrigger", false)
		return b, nil
	})
	engine.RegisterComponent("SphereCollider", func(p engine.Props) (engine.Component, error) {
		offset, err := p.Vec3("offset", rl.Vector3{})
		if err != nil {
			return nil, err
		}
		s := NewSphereCollider(p.Float("radius", 0.5))
		s.Offset = offset
		s.Trigger = p.Bool("isTrigger", false)
		return s, nil
	})
}

// Collider is a shape the physics world tests for overlap.
type Collider interface {
	engine.Component
	Bounds() AABB
	IsTrigger() bool
}

// BoxCollider is an axis-aligned box scaled by the object's lossy scale.
// Rotation is ignored.
type BoxCollider struct {
	engine.BaseComponent
	Size    rl.Vector3
	Offset  rl.Vector3
	Trigger bool
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

func (b *BoxCollider) IsTrigger() bool { return b.Trigger }

func (b *BoxCollider) Center() rl.Vector3 {
	return rl.Vector3Add(b.Transform().WorldPosition(), b.Offset)
}

func (b *BoxCollider) WorldSize() rl.Vector3 {
	s := b.Transform().LossyScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

func (b *BoxCollider) Bounds() AABB {
	return NewAABBFromCenter(b.Center(), b.WorldSize())
}

func (b *BoxCollider) OnEnable() { register(b, b.Context()) }
func (b *BoxCollider) OnDisable() { unregister(b, b.Context()) }

// SphereCollider scales its radius by the largest axis of the lossy scale.
type SphereCollider struct {
	engine.BaseComponent
	Radius  float32
	Offset  rl.Vector3
	Trigger bool
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

func (s *SphereCollider) IsTrigger() bool { return s.Trigger }

func (s *SphereCollider) Center() rl.Vector3 {
	return rl.Vector3Add(s.Transform().WorldPosition(), s.Offset)
}

func (s *SphereCollider) WorldRadius() float32 {
	sc := s.Transform().LossyScale()
	m := math32.Max(math32.Abs(sc.X), math32.Max(math32.Abs(sc.Y), math32.Abs(sc.Z)))
	return s.Radius * m
}

func (s *SphereCollider) Bounds() AABB {
	d := 2 * s.WorldRadius()
	return NewAABBFromCenter(s.Center(), rl.Vector3{X: d, Y: d, Z: d})
}

func (s *SphereCollider) OnEnable() { register(s, s.Context()) }
func (s *SphereCollider) OnDisable() { unregister(s, s.Context()) }

func register(c Collider, ctx *engine.Context) {
	if w := worldOf(ctx); w != nil {
		w.addCollider(c)
	}
}

func unregister(c Collider, ctx *engine.Context) {
	if w := worldOf(ctx); w != nil {
		w.removeCollider(c)
	}
}

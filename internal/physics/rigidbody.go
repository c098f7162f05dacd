package physics

import (
	"unigo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Rigidbody", func(p engine.Props) (engine.Component, error) {
		rb := NewRigidbody()
		rb.Mass = p.Float("mass", rb.Mass)
		rb.Bounciness = p.Float("bounciness", rb.Bounciness)
		rb.Drag = p.Float("drag", rb.Drag)
		rb.GravityScale = p.Float("gravityScale", rb.GravityScale)
		rb.UseGravity = p.Bool("useGravity", rb.UseGravity)
		rb.IsKinematic = p.Bool("isKinematic", rb.IsKinematic)
		v, err := p.Vec3("velocity", rl.Vector3{})
		if err != nil {
			return nil, err
		}
		rb.Velocity = v
		return rb, nil
	})
}

// Rigidbody makes its GameObject move under gravity and be pushed apart
// from other colliders. A non-positive Mass means immovable.
type Rigidbody struct {
	engine.BaseComponent
	Velocity     rl.Vector3
	Mass         float32
	Bounciness   float32 // 0 = no bounce, 1 = perfect bounce
	Drag         float32 // fraction of velocity lost per second
	GravityScale float32
	UseGravity   bool
	IsKinematic  bool // moves only when scripted, never pushed
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:         1,
		Bounciness:   0,
		GravityScale: 1,
		UseGravity:   true,
	}
}

// InverseMass is zero for kinematic or massless bodies.
func (r *Rigidbody) InverseMass() float32 {
	if r == nil || r.IsKinematic || r.Mass <= 0 {
		return 0
	}
	return 1 / r.Mass
}

// AddImpulse changes velocity by impulse/mass.
func (r *Rigidbody) AddImpulse(impulse rl.Vector3) {
	if inv := r.InverseMass(); inv > 0 {
		r.Velocity = rl.Vector3Add(r.Velocity, rl.Vector3Scale(impulse, inv))
	}
}

func (r *Rigidbody) OnEnable() {
	if w := worldOf(r.Context()); w != nil {
		w.addBody(r)
	}
}

func (r *Rigidbody) OnDisable() {
	if w := worldOf(r.Context()); w != nil {
		w.removeBody(r)
	}
}

func (r *Rigidbody) integrate(gravity rl.Vector3, dt float32) {
	if r.IsKinematic {
		return
	}
	if r.UseGravity {
		r.Velocity = rl.Vector3Add(r.Velocity, rl.Vector3Scale(gravity, r.GravityScale*dt))
	}
	if r.Drag > 0 {
		damping := 1 - r.Drag*dt
		if damping < 0 {
			damping = 0
		}
		r.Velocity = rl.Vector3Scale(r.Velocity, damping)
	}
	r.Transform().TranslateWorld(rl.Vector3Scale(r.Velocity, dt))
}

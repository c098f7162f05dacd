package components

import (
	"unigo/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Orbit", func(p engine.Props) (engine.Component, error) {
		return &Orbit{
			Radius: p.Float("radius", 2),
			Speed:  p.Float("speed", 1),
			Bob:    p.Float("bob", 0),
			Phase:  p.Float("phase", 0),
		}, nil
	})
}

// Orbit circles its object around the position it had at Start, bobbing
// up and down at twice the orbit frequency.
type Orbit struct {
	engine.BaseComponent
	Radius float32
	Speed  float32 // radians per second
	Bob    float32
	Phase  float32

	center  rl.Vector3
	elapsed float32
}

func (o *Orbit) Start() {
	o.center = o.Transform().Position
}

func (o *Orbit) Update(ctx *engine.Context) {
	o.elapsed += ctx.Time.DeltaTime
	a := o.elapsed*o.Speed + o.Phase
	o.Transform().Position = rl.Vector3Add(o.center, rl.Vector3{
		X: math32.Cos(a) * o.Radius,
		Y: math32.Sin(a*2) * o.Bob,
		Z: math32.Sin(a) * o.Radius,
	})
}

// Center is the point being orbited.
func (o *Orbit) Center() rl.Vector3 {
	return o.center
}

package components

import (
	"unigo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Rotator", func(p engine.Props) (engine.Component, error) {
		axis, err := p.Vec3("axis", rl.Vector3{Y: 1})
		if err != nil {
			return nil, err
		}
		return &Rotator{Axis: axis, Speed: p.Float("speed", 90)}, nil
	})
}

// Rotator spins its object around a local axis, Speed degrees per second.
type Rotator struct {
	engine.BaseComponent
	Axis  rl.Vector3
	Speed float32
}

func (r *Rotator) Update(ctx *engine.Context) {
	if r.Speed == 0 || rl.Vector3Length(r.Axis) == 0 {
		return
	}
	r.Transform().Rotate(r.Axis, r.Speed*ctx.Time.DeltaTime)
}

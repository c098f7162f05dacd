package components

import (
	"unigo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("KeyMover", func(p engine.Props) (engine.Component, error) {
		return &KeyMover{Speed: p.Float("speed", 5)}, nil
	})
}

// KeyMover moves its object with WASD on the XZ plane and Q/E vertically,
// Speed units per second, in world axes.
type KeyMover struct {
	engine.BaseComponent
	Speed float32
}

func (k *KeyMover) Update(ctx *engine.Context) {
	in := ctx.Input
	if in == nil {
		return
	}
	var dir rl.Vector3
	if in.KeyDown(rl.KeyW) {
		dir.Z--
	}
	if in.KeyDown(rl.KeyS) {
		dir.Z++
	}
	if in.KeyDown(rl.KeyA) {
		dir.X--
	}
	if in.KeyDown(rl.KeyD) {
		dir.X++
	}
	if in.KeyDown(rl.KeyE) {
		dir.Y++
	}
	if in.KeyDown(rl.KeyQ) {
		dir.Y--
	}
	if rl.Vector3Length(dir) == 0 {
		return
	}
	step := rl.Vector3Scale(rl.Vector3Normalize(dir), k.Speed*ctx.Time.DeltaTime)
	k.Transform().Translate(step)
}

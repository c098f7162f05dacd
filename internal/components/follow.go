package components

import (
	"unigo/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Follow", func(p engine.Props) (engine.Component, error) {
		offset, err := p.Vec3("offset", rl.Vector3{Y: 2, Z: 6})
		if err != nil {
			return nil, err
		}
		f := &Follow{
			Offset:    offset,
			Smoothing: p.Float("smoothing", 0),
			LookAt:    p.Bool("lookAt", true),
		}
		f.Target.Name = p.String("target", "")
		f.Target.UID = uint64(p.Int("targetUid", 0))
		return f, nil
	})
}

// Follow keeps its object at Offset from the target after every Update has
// moved it. Smoothing is an exponential rate; zero snaps.
type Follow struct {
	engine.BaseComponent
	Target    engine.GameObjectRef
	Offset    rl.Vector3
	Smoothing float32
	LookAt    bool
}

func (f *Follow) LateUpdate(ctx *engine.Context) {
	target := f.Target.Get(ctx.ActiveScene())
	if target == nil || target.IsDestroyed() {
		return
	}
	t := f.Transform()
	aim := target.Transform.WorldPosition()
	want := rl.Vector3Add(aim, f.Offset)
	if f.Smoothing > 0 {
		k := 1 - math32.Exp(-f.Smoothing*ctx.Time.DeltaTime)
		want = rl.Vector3Lerp(t.Position, want, k)
	}
	t.Position = want
	if f.LookAt {
		t.LookAt(aim, rl.Vector3{Y: 1})
	}
}

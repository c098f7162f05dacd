package components

import (
	"fmt"
	"unigo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func init() {
	engine.RegisterComponent("Tween", func(p engine.Props) (engine.Component, error) {
		to, err := p.Vec3("to", rl.Vector3{})
		if err != nil {
			return nil, err
		}
		fn, err := LookupEase(p.String("ease", "linear"))
		if err != nil {
			return nil, err
		}
		mode, err := parseTweenMode(p.String("mode", "once"))
		if err != nil {
			return nil, err
		}
		tw := NewTween(to, p.Float("duration", 1), fn)
		tw.Mode = mode
		if p.Has("from") {
			from, err := p.Vec3("from", rl.Vector3{})
			if err != nil {
				return nil, err
			}
			tw.From = &from
		}
		return tw, nil
	})
}

type TweenMode int

const (
	TweenOnce TweenMode = iota
	TweenLoop
	TweenPingPong
)

func parseTweenMode(s string) (TweenMode, error) {
	switch s {
	case "once", "":
		return TweenOnce, nil
	case "loop":
		return TweenLoop, nil
	case "pingpong":
		return TweenPingPong, nil
	}
	return 0, fmt.Errorf("unknown tween mode %q", s)
}

var eases = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"outBounce":    ease.OutBounce,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
}

func LookupEase(name string) (ease.TweenFunc, error) {
	if fn, ok := eases[name]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("unknown ease %q", name)
}

// Tween eases its object's local position towards To over Duration
// seconds. Without From the animation starts wherever the object is at
// Start.
type Tween struct {
	engine.BaseComponent
	From     *rl.Vector3
	To       rl.Vector3
	Duration float32
	Ease     ease.TweenFunc
	Mode     TweenMode

	axes     [3]*gween.Tween
	from, to rl.Vector3
	done     bool
}

func NewTween(to rl.Vector3, duration float32, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{To: to, Duration: duration, Ease: fn}
}

func (tw *Tween) Start() {
	tw.from = tw.Transform().Position
	if tw.From != nil {
		tw.from = *tw.From
	}
	tw.to = tw.To
	tw.restart()
}

func (tw *Tween) restart() {
	tw.axes[0] = gween.New(tw.from.X, tw.to.X, tw.Duration, tw.Ease)
	tw.axes[1] = gween.New(tw.from.Y, tw.to.Y, tw.Duration, tw.Ease)
	tw.axes[2] = gween.New(tw.from.Z, tw.to.Z, tw.Duration, tw.Ease)
	tw.done = false
}

func (tw *Tween) Update(ctx *engine.Context) {
	if tw.done || tw.axes[0] == nil {
		return
	}
	dt := ctx.Time.DeltaTime
	var v [3]float32
	finished := true
	for i, a := range tw.axes {
		val, end := a.Update(dt)
		v[i] = val
		finished = finished && end
	}
	tw.Transform().Position = rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
	if !finished {
		return
	}
	switch tw.Mode {
	case TweenOnce:
		tw.done = true
	case TweenLoop:
		tw.restart()
	case TweenPingPong:
		tw.from, tw.to = tw.to, tw.from
		tw.restart()
	}
}

// Done reports whether a one-shot tween has reached its target.
func (tw *Tween) Done() bool {
	return tw.done
}

package components

import (
	"unigo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("DirectionalLight", func(p engine.Props) (engine.Component, error) {
		l := NewDirectionalLight()
		dir, err := p.Vec3("direction", l.Direction)
		if err != nil {
			return nil, err
		}
		if rl.Vector3Length(dir) > 0 {
			l.Direction = rl.Vector3Normalize(dir)
		}
		if l.Color, err = p.Color("color", l.Color); err != nil {
			return nil, err
		}
		if l.AmbientColor, err = p.Color("ambient", l.AmbientColor); err != nil {
			return nil, err
		}
		l.Intensity = p.Float("intensity", l.Intensity)
		return l, nil
	})
}

// DirectionalLight is registered with the context's light manager while it
// is enabled.
type DirectionalLight struct {
	engine.BaseComponent
	Direction    rl.Vector3
	Color        rl.Color
	Intensity    float32
	AmbientColor rl.Color
}

func NewDirectionalLight() *DirectionalLight {
	return &DirectionalLight{
		Direction:    rl.Vector3Normalize(rl.Vector3{X: 0.35, Y: -1.0, Z: -0.35}),
		Color:        rl.White,
		Intensity:    1.0,
		AmbientColor: rl.NewColor(25, 25, 25, 255),
	}
}

func (l *DirectionalLight) OnEnable() {
	if ctx := l.Context(); ctx != nil {
		ctx.Lights.Register(l)
	}
}

func (l *DirectionalLight) OnDisable() {
	if ctx := l.Context(); ctx != nil {
		ctx.Lights.Unregister(l)
	}
}

// LightData reports the direction in world space, so rotating the owning
// object turns the light.
func (l *DirectionalLight) LightData() engine.LightData {
	dir := l.Direction
	if t := l.Transform(); t != nil {
		dir = rl.Vector3RotateByQuaternion(dir, t.WorldRotation())
	}
	ambient := float32(l.AmbientColor.R) / 255
	return engine.LightData{
		Direction: dir,
		Color:     l.Color,
		Intensity: l.Intensity,
		Ambient:   ambient,
	}
}

package components

import (
	"unigo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Camera", func(p engine.Props) (engine.Component, error) {
		c := NewCamera()
		c.FOV = p.Float("fov", c.FOV)
		c.Near = p.Float("near", c.Near)
		c.Far = p.Float("far", c.Far)
		c.IsMain = p.Bool("isMain", c.IsMain)
		if p.String("projection", "perspective") == "orthographic" {
			c.Projection = rl.CameraOrthographic
		}
		return c, nil
	})
}

// Camera looks down its transform's forward axis. A main camera claims the
// context's main camera slot while it is enabled.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
	}
}

func (c *Camera) OnEnable() {
	if !c.IsMain {
		return
	}
	if ctx := c.Context(); ctx != nil {
		ctx.SetMainCamera(c)
	}
}

func (c *Camera) OnDisable() {
	if ctx := c.Context(); ctx != nil {
		ctx.ClearMainCamera(c)
	}
}

// Camera3D builds the raylib camera from the world transform. The target
// sits one unit along the forward axis.
func (c *Camera) Camera3D() rl.Camera3D {
	t := c.Transform()
	if t == nil {
		return rl.Camera3D{}
	}
	eye := t.WorldPosition()
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, t.Forward()),
		Up:         t.Up(),
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}

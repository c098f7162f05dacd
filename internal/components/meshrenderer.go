package components

import (
	"fmt"
	"unigo/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("MeshRenderer", func(p engine.Props) (engine.Component, error) {
		mesh, err := ParseMeshType(p.String("mesh", "cube"))
		if err != nil {
			return nil, err
		}
		color, err := p.Color("color", rl.White)
		if err != nil {
			return nil, err
		}
		size, err := p.Vec3("size", rl.Vector3{X: 1, Y: 1, Z: 1})
		if err != nil {
			return nil, err
		}
		m := NewMeshRenderer(mesh, color, size)
		m.Wireframe = p.Bool("wireframe", false)
		return m, nil
	})
}

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

var meshNames = map[string]MeshType{
	"cube":   MeshCube,
	"sphere": MeshSphere,
	"plane":  MeshPlane,
}

func ParseMeshType(name string) (MeshType, error) {
	if t, ok := meshNames[name]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown mesh %q", name)
}

// MeshRenderer draws a raylib primitive at its object's world transform.
// For spheres Size.X is the radius; planes use Size.X by Size.Z.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType  MeshType
	Color     rl.Color
	Size      rl.Vector3
	Wireframe bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Render(cam rl.Camera3D) {
	t := m.Transform()
	if t == nil {
		return
	}
	pushTransform(t)
	defer rl.PopMatrix()

	switch m.MeshType {
	case MeshCube:
		if m.Wireframe {
			rl.DrawCubeWiresV(rl.Vector3{}, m.Size, m.Color)
		} else {
			rl.DrawCubeV(rl.Vector3{}, m.Size, m.Color)
		}
	case MeshSphere:
		if m.Wireframe {
			rl.DrawSphereWires(rl.Vector3{}, m.Size.X, 12, 12, m.Color)
		} else {
			rl.DrawSphere(rl.Vector3{}, m.Size.X, m.Color)
		}
	case MeshPlane:
		rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: m.Size.X, Y: m.Size.Z}, m.Color)
	}
}

// pushTransform loads the object's world placement onto the rlgl matrix
// stack. The caller pops it.
func pushTransform(t *engine.Transform) {
	pos := t.WorldPosition()
	axis, angle := axisAngle(t.WorldRotation())
	scale := t.LossyScale()

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	if angle != 0 {
		rl.Rotatef(angle*rl.Rad2deg, axis.X, axis.Y, axis.Z)
	}
	rl.Scalef(scale.X, scale.Y, scale.Z)
}

// axisAngle decomposes a rotation; the identity yields a zero angle.
func axisAngle(q rl.Quaternion) (rl.Vector3, float32) {
	if q.W > 1 || q.W < -1 {
		q = rl.QuaternionNormalize(q)
	}
	s := math32.Sqrt(1 - q.W*q.W)
	if s < 1e-6 {
		return rl.Vector3{Y: 1}, 0
	}
	return rl.Vector3{X: q.X / s, Y: q.Y / s, Z: q.Z / s}, 2 * math32.Acos(q.W)
}

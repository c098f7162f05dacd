package components

import (
	"path/filepath"
	"testing"
	"unigo/internal/assets"
	"unigo/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// load activates a scene built from roots and returns its context.
func load(t *testing.T, roots ...*engine.GameObject) *engine.Context {
	t.Helper()
	ctx := engine.NewContext(0.02, nil)
	ctx.Assets = assets.NewManager(nil)
	_, err := ctx.Scenes.Load(func() (*engine.Scene, error) {
		return engine.NewScene("Test", roots...), nil
	})
	require.NoError(t, err)
	return ctx
}

func step(ctx *engine.Context, dt float32) {
	ctx.Time.DeltaTime = dt
	ctx.Time.FrameDeltaTime = dt
}

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-3, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-3, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-3, "z")
}

type keys map[int32]bool

func (k keys) Update() {}
func (k keys) KeyDown(key int32) bool { return k[key] }
func (k keys) KeyPressed(key int32) bool { return false }

func TestCameraClaimsMainSlot(t *testing.T) {
	cam := NewCamera()
	cam.IsMain = true
	ctx := load(t, engine.NewGameObject("Camera", cam))

	assert.Same(t, cam, ctx.MainCamera())

	cam.SetEnabled(false)
	assert.Nil(t, ctx.MainCamera())

	cam.SetEnabled(true)
	assert.Same(t, cam, ctx.MainCamera())
}

func TestCameraNotMainLeavesSlotAlone(t *testing.T) {
	ctx := load(t, engine.NewGameObject("Camera", NewCamera()))
	assert.Nil(t, ctx.MainCamera())
}

func TestCamera3DLooksForward(t *testing.T) {
	cam := NewCamera()
	g := engine.NewGameObject("Camera", cam)
	g.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	load(t, g)

	c := cam.Camera3D()

	assertVec(t, rl.Vector3{X: 1, Y: 2, Z: 3}, c.Position)
	assertVec(t, rl.Vector3{X: 1, Y: 2, Z: 2}, c.Target)
	assertVec(t, rl.Vector3{Y: 1}, c.Up)
	assert.Equal(t, float32(45), c.Fovy)
}

func TestDirectionalLightRegistration(t *testing.T) {
	light := NewDirectionalLight()
	ctx := load(t, engine.NewGameObject("Sun", light))

	require.Equal(t, 1, ctx.Lights.Len())

	light.SetEnabled(false)
	assert.Equal(t, 0, ctx.Lights.Len())

	light.SetEnabled(true)
	assert.Equal(t, 1, ctx.Lights.Len())

	ctx.Scenes.Shutdown()
	assert.Equal(t, 0, ctx.Lights.Len())
}

func TestDirectionalLightFollowsRotation(t *testing.T) {
	light := NewDirectionalLight()
	light.Direction = rl.Vector3{X: 1}
	g := engine.NewGameObject("Sun", light)
	g.Transform.SetEulerAngles(rl.Vector3{Y: 180})

	assertVec(t, rl.Vector3{X: -1}, light.LightData().Direction)
}

func TestParseMeshType(t *testing.T) {
	for name, want := range map[string]MeshType{"cube": MeshCube, "sphere": MeshSphere, "plane": MeshPlane} {
		got, err := ParseMeshType(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMeshType("teapot")
	assert.Error(t, err)
}

func TestMeshRendererFactory(t *testing.T) {
	c, err := engine.CreateComponent("MeshRenderer", engine.Props{
		"mesh":  "sphere",
		"color": []any{1.0, 0.0, 0.0},
		"size":  []any{0.5, 0.5, 0.5},
	})
	require.NoError(t, err)

	m := c.(*MeshRenderer)
	assert.Equal(t, MeshSphere, m.MeshType)
	assert.Equal(t, uint8(255), m.Color.R)
	assert.Equal(t, uint8(0), m.Color.G)
	assertVec(t, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, m.Size)

	_, err = engine.CreateComponent("MeshRenderer", engine.Props{"mesh": "teapot"})
	assert.Error(t, err)
}

func TestAxisAngle(t *testing.T) {
	_, angle := axisAngle(rl.QuaternionIdentity())
	assert.Zero(t, angle)

	q := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math32.Pi/2)
	axis, angle := axisAngle(q)
	assertVec(t, rl.Vector3{Y: 1}, axis)
	assert.InDelta(t, math32.Pi/2, angle, 1e-4)
}

func TestModelRendererMissingFile(t *testing.T) {
	m := NewModelRenderer(filepath.Join(t.TempDir(), "missing.glb"), rl.White)
	load(t, engine.NewGameObject("Ship", m))

	assert.True(t, m.IsAwake())
	assert.False(t, m.Loaded())
	assert.NotPanics(t, func() { m.Render(rl.Camera3D{}) })
}

func TestRotatorSpinsAroundAxis(t *testing.T) {
	r := &Rotator{Axis: rl.Vector3{Y: 1}, Speed: 90}
	g := engine.NewGameObject("Spinner", r)
	ctx := load(t, g)

	step(ctx, 0.5)
	r.Update(ctx)

	assert.InDelta(t, 45, g.Transform.EulerAngles().Y, 1e-2)
}

func TestRotatorFactoryDefaults(t *testing.T) {
	c, err := engine.CreateComponent("Rotator", engine.Props{})
	require.NoError(t, err)
	r := c.(*Rotator)
	assert.Equal(t, float32(90), r.Speed)
	assertVec(t, rl.Vector3{Y: 1}, r.Axis)
}

func TestOrbitCirclesStartPosition(t *testing.T) {
	o := &Orbit{Radius: 2, Speed: math32.Pi, Bob: 1}
	g := engine.NewGameObject("Moon", o)
	g.Transform.Position = rl.Vector3{X: 10}
	ctx := load(t, g)
	o.Start()

	step(ctx, 0.5)
	o.Update(ctx)

	assertVec(t, rl.Vector3{X: 10}, o.Center())
	assertVec(t, rl.Vector3{X: 10, Y: 0, Z: 2}, g.Transform.Position)
}

func TestTweenOnce(t *testing.T) {
	tw := NewTween(rl.Vector3{X: 10}, 1, nil)
	g := engine.NewGameObject("Box", tw)
	ctx := load(t, g)
	tw.Start()

	step(ctx, 0.5)
	tw.Update(ctx)
	assertVec(t, rl.Vector3{X: 5}, g.Transform.Position)
	assert.False(t, tw.Done())

	tw.Update(ctx)
	assertVec(t, rl.Vector3{X: 10}, g.Transform.Position)
	assert.True(t, tw.Done())

	tw.Update(ctx)
	assertVec(t, rl.Vector3{X: 10}, g.Transform.Position)
}

func TestTweenPingPong(t *testing.T) {
	tw := NewTween(rl.Vector3{Y: 4}, 1, nil)
	tw.Mode = TweenPingPong
	g := engine.NewGameObject("Box", tw)
	ctx := load(t, g)
	tw.Start()

	step(ctx, 1)
	tw.Update(ctx)
	assertVec(t, rl.Vector3{Y: 4}, g.Transform.Position)

	step(ctx, 0.5)
	tw.Update(ctx)
	assertVec(t, rl.Vector3{Y: 2}, g.Transform.Position)
	assert.False(t, tw.Done())
}

func TestTweenFactory(t *testing.T) {
	c, err := engine.CreateComponent("Tween", engine.Props{
		"from":     []any{1.0, 1.0, 1.0},
		"to":       []any{2.0, 2.0, 2.0},
		"duration": 3.0,
		"ease":     "inOutQuad",
		"mode":     "loop",
	})
	require.NoError(t, err)
	tw := c.(*Tween)
	require.NotNil(t, tw.From)
	assertVec(t, rl.Vector3{X: 1, Y: 1, Z: 1}, *tw.From)
	assert.Equal(t, TweenLoop, tw.Mode)
	assert.Equal(t, float32(3), tw.Duration)

	_, err = engine.CreateComponent("Tween", engine.Props{"ease": "wobble"})
	assert.Error(t, err)
	_, err = engine.CreateComponent("Tween", engine.Props{"mode": "sideways"})
	assert.Error(t, err)
}

func TestKeyMover(t *testing.T) {
	k := &KeyMover{Speed: 4}
	g := engine.NewGameObject("Player", k)
	ctx := load(t, g)
	step(ctx, 0.5)

	ctx.Input = keys{rl.KeyW: true}
	k.Update(ctx)
	assertVec(t, rl.Vector3{Z: -2}, g.Transform.Position)

	ctx.Input = keys{rl.KeyW: true, rl.KeyS: true}
	k.Update(ctx)
	assertVec(t, rl.Vector3{Z: -2}, g.Transform.Position)

	ctx.Input = nil
	assert.NotPanics(t, func() { k.Update(ctx) })
}

func TestFollowSnapsAndAims(t *testing.T) {
	target := engine.NewGameObject("Player")
	target.Transform.Position = rl.Vector3{X: 1}
	f := &Follow{Offset: rl.Vector3{Y: 2, Z: 6}, LookAt: true}
	f.Target.Name = "Player"
	cam := engine.NewGameObject("Camera", f)
	ctx := load(t, target, cam)
	step(ctx, 0.02)

	f.LateUpdate(ctx)

	assertVec(t, rl.Vector3{X: 1, Y: 2, Z: 6}, cam.Transform.Position)
	want := rl.Vector3Normalize(rl.Vector3{Y: -2, Z: -6})
	assertVec(t, want, cam.Transform.Forward())
}

func TestFollowMissingTarget(t *testing.T) {
	f := &Follow{}
	f.Target.Name = "Nobody"
	cam := engine.NewGameObject("Camera", f)
	ctx := load(t, cam)

	f.LateUpdate(ctx)
	assertVec(t, rl.Vector3{}, cam.Transform.Position)
}

func TestHitFlashTintsWhileTouching(t *testing.T) {
	mesh := NewMeshRenderer(MeshCube, rl.Gray, rl.Vector3{X: 1, Y: 1, Z: 1})
	flash := &HitFlash{Color: rl.Red}
	load(t, engine.NewGameObject("Box", mesh, flash))

	flash.OnCollisionEnter(engine.Collision{})
	flash.OnTriggerEnter(nil)
	assert.Equal(t, rl.Red, mesh.Color)
	assert.Equal(t, 2, flash.Touching())

	flash.OnCollisionExit(engine.Collision{})
	assert.Equal(t, rl.Red, mesh.Color)

	flash.OnTriggerExit(nil)
	assert.Equal(t, rl.Gray, mesh.Color)
	assert.Equal(t, 0, flash.Touching())
}

package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

type fakeViewer struct {
	BaseComponent
}

func (v *fakeViewer) Camera3D() rl.Camera3D { return rl.Camera3D{Fovy: 60} }

type fakeLight struct {
	BaseComponent
	intensity float32
}

func (l *fakeLight) LightData() LightData { return LightData{Intensity: l.intensity} }

func TestContextMainCamera(t *testing.T) {
	ctx := NewContext(0, nil)
	cam := &fakeViewer{}
	NewGameObject("Camera", cam)

	assert.Nil(t, ctx.MainCamera())

	ctx.SetMainCamera(cam)
	assert.Nil(t, ctx.MainCamera(), "a camera that is not awake does not render")

	cam.CheckAwake()
	assert.Equal(t, Viewer(cam), ctx.MainCamera())

	ctx.ClearMainCamera(&fakeViewer{})
	assert.NotNil(t, ctx.MainCamera(), "clearing another camera leaves the main one")

	ctx.ClearMainCamera(cam)
	assert.Nil(t, ctx.MainCamera())
}

func TestTimeSwitchesBetweenFixedAndFrameDelta(t *testing.T) {
	tm := NewTime(0)
	assert.Equal(t, float32(DefaultFixedDeltaTime), tm.FixedDeltaTime)

	tm.UpdateFrame(0.05)
	tm.SetDeltaTimeFixed()
	assert.Equal(t, float32(0.02), tm.DeltaTime)

	tm.SetDeltaTimeFrame()
	assert.Equal(t, float32(0.05), tm.DeltaTime)
	assert.Equal(t, uint64(1), tm.FrameCount)
	assert.InDelta(t, 0.05, tm.TimeSinceStart, 1e-9)
}

func TestLightManagerKeepsRegistrationOrder(t *testing.T) {
	m := NewLightManager()
	a := &fakeLight{intensity: 1}
	b := &fakeLight{intensity: 2}

	m.Register(a)
	m.Register(b)
	m.Register(a)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []LightData{{Intensity: 1}, {Intensity: 2}}, m.Data())

	m.Unregister(a)
	assert.Equal(t, []LightData{{Intensity: 2}}, m.Data())
}

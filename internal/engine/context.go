package engine

import (
	"log/slog"
	"unigo/internal/assets"
)

// Input is the per-frame key state polled during the input phase.
type Input interface {
	Update()
	KeyDown(key int32) bool
	KeyPressed(key int32) bool
}

// Physics advances the simulation by one fixed step.
type Physics interface {
	SimulatePositionCorrection(dt float32)
}

// Context is the runtime state shared with components. It is owned by the
// scheduler and bound to every scene the SceneManager loads.
type Context struct {
	Time    *Time
	Input   Input
	Physics Physics
	Lights  *LightManager
	Assets  *assets.Manager
	Scenes  *SceneManager
	Logger  *slog.Logger

	mainCamera Viewer
}

// NewContext returns a context with a fresh clock, light list and scene
// manager. Input, physics and assets are optional and left for the caller.
func NewContext(fixedDeltaTime float32, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	ctx := &Context{
		Time:   NewTime(fixedDeltaTime),
		Lights: NewLightManager(),
		Logger: logger,
	}
	ctx.Scenes = NewSceneManager(ctx)
	return ctx
}

// MainCamera returns the camera the render pass draws through, or nil.
func (c *Context) MainCamera() Viewer {
	if c.mainCamera != nil && !c.mainCamera.Enabled() {
		return nil
	}
	return c.mainCamera
}

func (c *Context) SetMainCamera(v Viewer) {
	c.mainCamera = v
}

// ClearMainCamera unsets the main camera if it is still v.
func (c *Context) ClearMainCamera(v Viewer) {
	if c.mainCamera == v {
		c.mainCamera = nil
	}
}

// ActiveScene is shorthand for Scenes.Active.
func (c *Context) ActiveScene() *Scene {
	if c.Scenes == nil {
		return nil
	}
	return c.Scenes.Active()
}

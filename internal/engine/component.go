package engine

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Component is the unit of behaviour attached to a GameObject. Concrete
// components embed BaseComponent and opt into lifecycle and per-frame
// callbacks by implementing the capability interfaces below.
type Component interface {
	GetGameObject() *GameObject
	Enabled() bool
	SetEnabled(v bool)
	CheckAwake()
	CheckStart()
	IsDestroyed() bool
	base() *BaseComponent
}

// Awaker runs once, the first time the component becomes enabled.
type Awaker interface {
	Awake()
}

// Starter runs once, on the first scheduler pass after Awake.
type Starter interface {
	Start()
}

// Enabler is notified on every transition to enabled.
type Enabler interface {
	OnEnable()
}

// Disabler is notified on every transition away from enabled.
type Disabler interface {
	OnDisable()
}

// Destroyer is notified once at destruction if Awake ever ran.
type Destroyer interface {
	OnDestroy()
}

// FixedUpdater participates in the fixed-timestep pass.
type FixedUpdater interface {
	Component
	FixedUpdate(ctx *Context)
}

// Updater participates in the per-frame Update pass.
type Updater interface {
	Component
	Update(ctx *Context)
}

// LateUpdater participates in the LateUpdate pass, after every Update.
type LateUpdater interface {
	Component
	LateUpdate(ctx *Context)
}

// Renderer draws itself for the main camera during the render pass.
type Renderer interface {
	Component
	Render(cam rl.Camera3D)
}

// Viewer is implemented by camera components.
type Viewer interface {
	Component
	Camera3D() rl.Camera3D
}

// Collision describes contact with another collider.
type Collision struct {
	GameObject *GameObject // the other object
	Collider   Component   // the other object's collider
	Normal     rl.Vector3  // points from the other collider toward this one
	Depth      float32
}

// CollisionHandler receives contact callbacks from the physics world.
type CollisionHandler interface {
	OnCollisionEnter(c Collision)
	OnCollisionStay(c Collision)
	OnCollisionExit(c Collision)
}

// TriggerHandler receives overlap callbacks for trigger colliders.
type TriggerHandler interface {
	OnTriggerEnter(other Component)
	OnTriggerStay(other Component)
	OnTriggerExit(other Component)
}

// BaseComponent carries the lifecycle flags shared by every component.
// The zero value is raw-enabled and not yet awoken.
type BaseComponent struct {
	gameObject *GameObject
	self       Component
	enabled    Property[bool]

	disabled    bool // raw flag, inverted so the zero value is enabled
	awakeCalled bool
	startCalled bool
	live        bool // OnEnable delivered, OnDisable still owed
	destroyed   bool
}

func (b *BaseComponent) base() *BaseComponent {
	return b
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// Transform returns the owning GameObject's transform, or nil when detached.
func (b *BaseComponent) Transform() *Transform {
	if b.gameObject == nil {
		return nil
	}
	return b.gameObject.Transform
}

// Name returns the owning GameObject's name.
func (b *BaseComponent) Name() string {
	if b.gameObject == nil {
		return ""
	}
	return b.gameObject.Name
}

// Context returns the runtime context of the scene the component lives in,
// or nil when its GameObject is not part of an active scene.
func (b *BaseComponent) Context() *Context {
	if b.gameObject == nil || b.gameObject.scene == nil {
		return nil
	}
	return b.gameObject.scene.ctx
}

// Logger returns the context logger, falling back to slog.Default.
func (b *BaseComponent) Logger() *slog.Logger {
	if ctx := b.Context(); ctx != nil && ctx.Logger != nil {
		return ctx.Logger
	}
	return slog.Default()
}

// EnabledProperty returns the enabled accessor pair. Reading yields the raw
// flag AND whether Awake has run; assigning drives Awake/OnEnable/OnDisable.
func (b *BaseComponent) EnabledProperty() Property[bool] {
	if b.enabled.set == nil {
		b.enabled = NewProperty(b.readEnabled, b.writeEnabled)
	}
	return b.enabled
}

func (b *BaseComponent) Enabled() bool {
	return b.EnabledProperty().Get()
}

func (b *BaseComponent) SetEnabled(v bool) {
	b.EnabledProperty().Set(v)
}

// EnabledSelf reports the raw flag regardless of whether Awake has run.
func (b *BaseComponent) EnabledSelf() bool {
	return !b.disabled
}

func (b *BaseComponent) IsAwake() bool {
	return b.awakeCalled
}

func (b *BaseComponent) IsStarted() bool {
	return b.startCalled
}

func (b *BaseComponent) IsDestroyed() bool {
	return b.destroyed
}

func (b *BaseComponent) readEnabled() bool {
	return !b.disabled && b.awakeCalled
}

// writeEnabled stores the raw value first so callbacks observe the new
// state, then notifies. Nothing happens when the raw value is unchanged.
func (b *BaseComponent) writeEnabled(v bool) {
	if b.destroyed || v == !b.disabled {
		return
	}
	b.disabled = !v
	if b.self == nil {
		return
	}
	if v {
		if !b.awakeCalled {
			b.awakeCalled = true
			if a, ok := b.self.(Awaker); ok {
				a.Awake()
			}
		}
		b.notifyEnable()
		return
	}
	b.notifyDisable()
}

// CheckAwake runs Awake (then OnEnable) once, and only while raw-enabled.
// A component disabled before its first sweep stays asleep until enabled.
func (b *BaseComponent) CheckAwake() {
	if b.awakeCalled || b.disabled || b.destroyed || b.self == nil {
		return
	}
	b.awakeCalled = true
	if a, ok := b.self.(Awaker); ok {
		a.Awake()
	}
	b.notifyEnable()
}

// CheckStart runs Start once, after Awake, while the component is enabled.
func (b *BaseComponent) CheckStart() {
	if b.startCalled || !b.readEnabled() || b.self == nil {
		return
	}
	b.startCalled = true
	if s, ok := b.self.(Starter); ok {
		s.Start()
	}
}

func (b *BaseComponent) notifyEnable() {
	if b.live || b.disabled || b.destroyed {
		return
	}
	b.live = true
	if e, ok := b.self.(Enabler); ok {
		e.OnEnable()
	}
}

func (b *BaseComponent) notifyDisable() {
	if !b.live {
		return
	}
	b.live = false
	if d, ok := b.self.(Disabler); ok {
		d.OnDisable()
	}
}

// destroy forces the component disabled, then runs OnDestroy if Awake ever
// ran. Both flags are set before OnDisable so that nothing it triggers can
// bring the component back. Safe to call more than once.
func (b *BaseComponent) destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.disabled = true
	b.notifyDisable()
	if b.awakeCalled && b.self != nil {
		if d, ok := b.self.(Destroyer); ok {
			d.OnDestroy()
		}
	}
}

func (b *BaseComponent) bind(g *GameObject, self Component) {
	if b.gameObject != nil && b.gameObject != g {
		panic("engine: component is already attached to " + b.gameObject.Name)
	}
	b.gameObject = g
	b.self = self
}

package engine

import (
	"errors"
	"fmt"
)

// ErrNoActiveScene is returned when an operation needs a loaded scene.
var ErrNoActiveScene = errors.New("no active scene")

// SceneBuilder constructs a fresh scene. Builders are kept so a scene can be
// reloaded.
type SceneBuilder func() (*Scene, error)

// SceneManager owns the single active scene.
type SceneManager struct {
	SceneLoaded   EventWithArg[*Scene]
	SceneUnloaded EventWithArg[*Scene]

	ctx     *Context
	active  *Scene
	builder SceneBuilder
	pending SceneBuilder
}

func NewSceneManager(ctx *Context) *SceneManager {
	return &SceneManager{ctx: ctx}
}

func (m *SceneManager) Active() *Scene {
	return m.active
}

// Load builds a scene, tears the previous one down and activates the new
// one with a one-time Awake sweep over the whole forest. On a build error
// the current scene stays active.
func (m *SceneManager) Load(build SceneBuilder) (*Scene, error) {
	if build == nil {
		return nil, errors.New("scene manager: nil builder")
	}
	s, err := build()
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	if s == nil {
		return nil, errors.New("build scene: builder returned no scene")
	}
	m.unloadActive()
	m.builder = build
	m.Activate(s)
	return s, nil
}

// Activate makes an already-built scene active. Any previous scene must have
// been unloaded by the caller.
func (m *SceneManager) Activate(s *Scene) {
	s.ctx = m.ctx
	m.active = s
	s.Walk(func(g *GameObject) bool {
		for _, c := range g.components {
			c.CheckAwake()
		}
		return true
	})
	if m.ctx != nil && m.ctx.Logger != nil {
		m.ctx.Logger.Info("scene loaded", "scene", s.Name, "objects", s.Len())
	}
	m.SceneLoaded.Invoke(s)
}

// RequestLoad defers a scene swap to the start of the next frame so the
// current traversal never sees a half-torn-down tree.
func (m *SceneManager) RequestLoad(build SceneBuilder) {
	m.pending = build
}

func (m *SceneManager) HasPending() bool {
	return m.pending != nil
}

// ApplyPending performs a deferred load, if any.
func (m *SceneManager) ApplyPending() error {
	if m.pending == nil {
		return nil
	}
	build := m.pending
	m.pending = nil
	_, err := m.Load(build)
	return err
}

// Reload rebuilds the active scene from the builder that produced it.
func (m *SceneManager) Reload() error {
	if m.builder == nil {
		return ErrNoActiveScene
	}
	_, err := m.Load(m.builder)
	return err
}

// Shutdown destroys the active scene. Safe to call with nothing loaded.
func (m *SceneManager) Shutdown() {
	m.pending = nil
	m.unloadActive()
}

func (m *SceneManager) unloadActive() {
	s := m.active
	if s == nil {
		return
	}
	m.active = nil
	s.Destroy()
	if m.ctx != nil {
		if m.ctx.Logger != nil {
			m.ctx.Logger.Info("scene unloaded", "scene", s.Name)
		}
		m.ctx.mainCamera = nil
	}
	s.ctx = nil
	m.SceneUnloaded.Invoke(s)
}

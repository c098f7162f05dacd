package engine

import (
	"fmt"
	"sync/atomic"
)

var nextUID atomic.Uint64

// GameObject is a node of the scene tree: a name, one Transform and an
// ordered list of components.
type GameObject struct {
	Name      string
	Tags      []string
	UID       uint64
	Transform *Transform

	components    []Component
	fixedUpdaters []FixedUpdater
	updaters      []Updater
	lateUpdaters  []LateUpdater
	renderers     []Renderer

	scene     *Scene
	destroyed bool
}

// NewGameObject builds an object from a name plus any mix of components
// and child GameObjects, attached in argument order.
func NewGameObject(name string, parts ...any) *GameObject {
	g := &GameObject{
		Name:       name,
		UID:        nextUID.Add(1),
		components: make([]Component, 0, len(parts)),
	}
	g.Transform = newTransform(g)
	for _, p := range parts {
		switch v := p.(type) {
		case Component:
			g.AddComponent(v)
		case *GameObject:
			g.AddChild(v)
		case nil:
		default:
			panic(fmt.Sprintf("engine: NewGameObject(%q): unsupported part %T", name, p))
		}
	}
	return g
}

// AddComponent attaches c and files it under every capability it implements.
// Awake is deferred to the next sweep.
func (g *GameObject) AddComponent(c Component) Component {
	if c == nil {
		panic("engine: AddComponent(nil)")
	}
	c.base().bind(g, c)
	g.components = append(g.components, c)
	if v, ok := c.(FixedUpdater); ok {
		g.fixedUpdaters = append(g.fixedUpdaters, v)
	}
	if v, ok := c.(Updater); ok {
		g.updaters = append(g.updaters, v)
	}
	if v, ok := c.(LateUpdater); ok {
		g.lateUpdaters = append(g.lateUpdaters, v)
	}
	if v, ok := c.(Renderer); ok {
		g.renderers = append(g.renderers, v)
	}
	return c
}

// RemoveComponent detaches c and runs its destruction contract.
func (g *GameObject) RemoveComponent(c Component) bool {
	if !containsComponent(g.components, c) {
		return false
	}
	g.components = without(g.components, func(x Component) bool { return x == c })
	g.fixedUpdaters = without(g.fixedUpdaters, func(x FixedUpdater) bool { return Component(x) == c })
	g.updaters = without(g.updaters, func(x Updater) bool { return Component(x) == c })
	g.lateUpdaters = without(g.lateUpdaters, func(x LateUpdater) bool { return Component(x) == c })
	g.renderers = without(g.renderers, func(x Renderer) bool { return Component(x) == c })
	c.base().destroy()
	return true
}

func containsComponent(list []Component, c Component) bool {
	for _, x := range list {
		if x == c {
			return true
		}
	}
	return false
}

// without returns a fresh slice so that callers iterating the old one are
// unaffected.
func without[T any](list []T, drop func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, x := range list {
		if !drop(x) {
			out = append(out, x)
		}
	}
	return out
}

// GetComponent returns the first component assignable to T. Components that
// are not currently enabled are skipped unless includeInactive is set.
func GetComponent[T any](g *GameObject, includeInactive bool) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if !includeInactive && !c.Enabled() {
			continue
		}
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// GetComponents returns every component assignable to T, in attachment order.
func GetComponents[T any](g *GameObject, includeInactive bool) []T {
	var out []T
	if g == nil {
		return out
	}
	for _, c := range g.components {
		if !includeInactive && !c.Enabled() {
			continue
		}
		if typed, ok := c.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

// Components returns the owned components in attachment order.
func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) FixedUpdaters() []FixedUpdater { return g.fixedUpdaters }
func (g *GameObject) Updaters() []Updater { return g.updaters }
func (g *GameObject) LateUpdaters() []LateUpdater { return g.lateUpdaters }
func (g *GameObject) Renderers() []Renderer { return g.renderers }

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) Scene() *Scene {
	return g.scene
}

func (g *GameObject) IsDestroyed() bool {
	return g.destroyed
}

func (g *GameObject) Parent() *GameObject {
	if p := g.Transform.parent; p != nil {
		return p.gameObject
	}
	return nil
}

// Children returns the child objects in child order.
func (g *GameObject) Children() []*GameObject {
	children := g.Transform.children
	out := make([]*GameObject, len(children))
	for i, t := range children {
		out[i] = t.gameObject
	}
	return out
}

// AddChild reparents child under g, pulling it out of the scene roots if
// it was one.
func (g *GameObject) AddChild(child *GameObject) {
	if child == nil {
		panic("engine: AddChild(nil)")
	}
	child.SetParent(g)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	if child != nil && child.Parent() == g {
		child.SetParent(nil)
	}
}

// SetParent moves g under parent. A nil parent makes g a root of its scene.
func (g *GameObject) SetParent(parent *GameObject) {
	if parent == g.Parent() {
		return
	}
	if g.Transform.parent == nil && g.scene != nil {
		g.scene.removeRoot(g)
	}
	var pt *Transform
	if parent != nil {
		pt = parent.Transform
	}
	oldScene := g.scene
	g.Transform.SetParent(pt)
	switch {
	case parent != nil:
		g.setScene(parent.scene)
	case oldScene != nil:
		oldScene.roots = append(oldScene.roots, g)
	}
}

// setScene moves the subtree into s, keeping both UID indexes in sync. When
// the move changes the runtime context, live components get OnDisable while
// still attached to the old one and OnEnable once attached to the new one, so
// registrations made in OnEnable follow the object.
func (g *GameObject) setScene(s *Scene) {
	if g.scene == s {
		return
	}
	from, to := g.scene.Context(), s.Context()
	if from != to {
		WalkComponents(g, func(c Component) { c.base().notifyDisable() })
	}
	g.rescene(s)
	if from != to {
		WalkComponents(g, func(c Component) {
			if b := c.base(); b.awakeCalled {
				b.notifyEnable()
			}
		})
	}
}

func (g *GameObject) rescene(s *Scene) {
	if g.scene != nil {
		g.scene.unindex(g)
	}
	g.scene = s
	if s != nil {
		s.index(g)
	}
	for _, c := range g.Transform.children {
		c.gameObject.rescene(s)
	}
}

// Destroy tears the object down immediately: its components in attachment
// order, then its children in child order. The object is detached from its
// parent or scene afterwards.
func (g *GameObject) Destroy() {
	if g.destroyed {
		return
	}
	scene := g.scene
	g.destroyTree()
	if g.Transform.parent != nil {
		g.Transform.parent.removeChild(g.Transform)
		g.Transform.parent = nil
	} else if scene != nil {
		scene.removeRoot(g)
	}
}

func (g *GameObject) destroyTree() {
	g.destroyed = true
	for _, c := range g.components {
		c.base().destroy()
	}
	for _, child := range g.Transform.children {
		if !child.gameObject.destroyed {
			child.gameObject.destroyTree()
		}
	}
	if g.scene != nil {
		g.scene.unindex(g)
		g.scene = nil
	}
}

func (g *GameObject) String() string {
	return fmt.Sprintf("%s#%d", g.Name, g.UID)
}

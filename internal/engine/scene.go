package engine

import (
	"github.com/kamstrup/intmap"
)

// Scene is a forest of GameObjects representing one loadable world state.
type Scene struct {
	Name string

	roots          []*GameObject
	byUID          *intmap.Map[uint64, *GameObject]
	ctx            *Context
	pendingDestroy []*GameObject
}

func NewScene(name string, roots ...*GameObject) *Scene {
	s := &Scene{
		Name:  name,
		roots: make([]*GameObject, 0, len(roots)),
		byUID: intmap.New[uint64, *GameObject](64),
	}
	for _, g := range roots {
		s.Add(g)
	}
	return s
}

// Add makes g a root of the scene, detaching it from any previous parent.
func (s *Scene) Add(g *GameObject) {
	if g == nil {
		panic("engine: Scene.Add(nil)")
	}
	if g.Parent() != nil {
		g.Transform.SetParent(nil)
	} else if g.scene != nil {
		g.scene.removeRoot(g)
	}
	g.setScene(s)
	s.roots = append(s.roots, g)
}

// Remove detaches a root from the scene without destroying it.
func (s *Scene) Remove(g *GameObject) bool {
	if g == nil || g.scene != s || g.Parent() != nil {
		return false
	}
	s.removeRoot(g)
	g.setScene(nil)
	return true
}

func (s *Scene) removeRoot(g *GameObject) {
	s.roots = without(s.roots, func(x *GameObject) bool { return x == g })
}

func (s *Scene) index(g *GameObject) {
	s.byUID.Put(g.UID, g)
}

func (s *Scene) unindex(g *GameObject) {
	s.byUID.Del(g.UID)
}

// RootGameObjects returns the roots in insertion order. The slice must not
// be modified by the caller.
func (s *Scene) RootGameObjects() []*GameObject {
	return s.roots
}

// Len counts every live object in the scene.
func (s *Scene) Len() int {
	return s.byUID.Len()
}

// Context returns the runtime context of an active scene. Nil-safe.
func (s *Scene) Context() *Context {
	if s == nil {
		return nil
	}
	return s.ctx
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	g, ok := s.byUID.Get(uid)
	if !ok {
		return nil
	}
	return g
}

// FindByName returns the first object with the given name in depth-first
// order.
func (s *Scene) FindByName(name string) *GameObject {
	var found *GameObject
	s.Walk(func(g *GameObject) bool {
		if g.Name == name {
			found = g
			return false
		}
		return true
	})
	return found
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	s.Walk(func(g *GameObject) bool {
		if g.HasTag(tag) {
			result = append(result, g)
		}
		return true
	})
	return result
}

// Walk visits the forest depth-first, parent before children. Returning
// false from fn stops the walk.
func (s *Scene) Walk(fn func(g *GameObject) bool) {
	for _, g := range s.roots {
		if !Walk(g, fn) {
			return
		}
	}
}

// DestroyLater queues g for destruction at the end of the current frame.
func (s *Scene) DestroyLater(g *GameObject) {
	if g == nil || g.destroyed {
		return
	}
	for _, p := range s.pendingDestroy {
		if p == g {
			return
		}
	}
	s.pendingDestroy = append(s.pendingDestroy, g)
}

// FlushDestroyed destroys everything queued by DestroyLater and returns how
// many objects were processed.
func (s *Scene) FlushDestroyed() int {
	n := 0
	for len(s.pendingDestroy) > 0 {
		queue := s.pendingDestroy
		s.pendingDestroy = nil
		for _, g := range queue {
			g.Destroy()
			n++
		}
	}
	return n
}

// Destroy tears down every root, in order.
func (s *Scene) Destroy() {
	s.pendingDestroy = nil
	for _, g := range s.roots {
		g.Destroy()
	}
	s.roots = nil
	s.byUID.Clear()
}

package engine

// GameObjectRef refers to a GameObject by UID so that components can hold
// references that survive scene reloads and serialization.
//
//	type Follow struct {
//	    engine.BaseComponent
//	    Target engine.GameObjectRef
//	}
//
//	func (f *Follow) LateUpdate(ctx *engine.Context) {
//	    if target := f.Target.Get(ctx.ActiveScene()); target != nil {
//	        ...
//	    }
//	}
type GameObjectRef struct {
	UID  uint64 // 0 = none
	Name string // resolved by name when UID is 0, as scene files do
}

// Get resolves the reference in scene. Returns nil when empty, when the
// scene is nil, or when nothing matches.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if scene == nil {
		return nil
	}
	if r.UID != 0 {
		return scene.FindByUID(r.UID)
	}
	if r.Name != "" {
		return scene.FindByName(r.Name)
	}
	return nil
}

// IsValid reports whether the reference points at something. It does not
// check that the object still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0 || r.Name != ""
}

// Set points the reference at g. Nil clears it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.Clear()
		return
	}
	r.UID = g.UID
	r.Name = g.Name
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
	r.Name = ""
}

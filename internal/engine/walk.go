package engine

// Walk visits g and its descendants depth-first, parent before children,
// in child order. Each node's child list is captured when the node is
// entered: children attached during the visit are not reached this walk,
// and destroyed objects are skipped. Returns false if fn stopped the walk.
func Walk(g *GameObject, fn func(g *GameObject) bool) bool {
	if g == nil || g.destroyed {
		return true
	}
	if !fn(g) {
		return false
	}
	children := g.Transform.children
	for _, c := range children {
		if !Walk(c.gameObject, fn) {
			return false
		}
	}
	return true
}

// WalkComponents runs fn on every component of the subtree in traversal
// order: a node's own components first, then its children's.
func WalkComponents(g *GameObject, fn func(c Component)) {
	Walk(g, func(g *GameObject) bool {
		for _, c := range g.components {
			if !c.IsDestroyed() {
				fn(c)
			}
		}
		return true
	})
}

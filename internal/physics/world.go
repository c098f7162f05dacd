package physics

import (
	"log/slog"
	"unigo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultGravity is Earth gravity along -Y.
var DefaultGravity = rl.Vector3{Y: -9.81}

// World integrates registered rigidbodies and separates overlapping
// colliders once per fixed step. Bodies and colliders register themselves
// while enabled.
type World struct {
	Gravity rl.Vector3
	Logger  *slog.Logger

	bodies    []*Rigidbody
	colliders []Collider

	contacts     map[pair]contact
	contactOrder []pair
}

type pair struct {
	a, b Collider
}

type contact struct {
	normal  rl.Vector3 // pushes a out of b
	depth   float32
	trigger bool
}

// RaycastHit describes the closest collider a ray hit.
type RaycastHit struct {
	GameObject *engine.GameObject
	Collider   Collider
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

func NewWorld(gravity rl.Vector3, logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	return &World{
		Gravity:  gravity,
		Logger:   logger,
		contacts: make(map[pair]contact),
	}
}

func worldOf(ctx *engine.Context) *World {
	if ctx == nil {
		return nil
	}
	w, _ := ctx.Physics.(*World)
	return w
}

func (w *World) BodyCount() int { return len(w.bodies) }
func (w *World) ColliderCount() int { return len(w.colliders) }

// ContactCount is the number of overlapping pairs found by the last step.
func (w *World) ContactCount() int { return len(w.contactOrder) }

func (w *World) addBody(r *Rigidbody) {
	for _, b := range w.bodies {
		if b == r {
			return
		}
	}
	w.bodies = append(w.bodies, r)
}

func (w *World) removeBody(r *Rigidbody) {
	out := make([]*Rigidbody, 0, len(w.bodies))
	for _, b := range w.bodies {
		if b != r {
			out = append(out, b)
		}
	}
	w.bodies = out
}

func (w *World) addCollider(c Collider) {
	for _, x := range w.colliders {
		if x == c {
			return
		}
	}
	w.colliders = append(w.colliders, c)
}

func (w *World) removeCollider(c Collider) {
	out := make([]Collider, 0, len(w.colliders))
	for _, x := range w.colliders {
		if x != c {
			out = append(out, x)
		}
	}
	w.colliders = out
}

// SimulatePositionCorrection advances one fixed step: integrate bodies,
// separate overlapping colliders, then dispatch Enter/Stay/Exit callbacks.
func (w *World) SimulatePositionCorrection(dt float32) {
	for _, rb := range w.bodies {
		if live(rb) {
			rb.integrate(w.Gravity, dt)
		}
	}

	current := make(map[pair]contact, len(w.contacts))
	var order []pair
	cols := w.colliders
	for i, a := range cols {
		if !live(a) {
			continue
		}
		for _, b := range cols[i+1:] {
			if !live(b) || a.GetGameObject() == b.GetGameObject() {
				continue
			}
			n, depth, ok := contactBetween(a, b)
			if !ok {
				continue
			}
			key := pair{a, b}
			c := contact{normal: n, depth: depth, trigger: a.IsTrigger() || b.IsTrigger()}
			current[key] = c
			order = append(order, key)
			if !c.trigger {
				w.separate(a, b, c)
			}
		}
	}

	for _, key := range order {
		c := current[key]
		if _, was := w.contacts[key]; was {
			w.notify(key, c, stay)
		} else {
			w.notify(key, c, enter)
		}
	}
	for _, key := range w.contactOrder {
		if _, still := current[key]; !still {
			w.notify(key, w.contacts[key], exit)
		}
	}
	w.contacts = current
	w.contactOrder = order
}

func bodyOf(c Collider) *Rigidbody {
	rb := engine.GetComponent[*Rigidbody](c.GetGameObject(), false)
	return rb
}

// separate moves each side out by its share of inverse mass and removes the
// approaching part of the relative velocity.
func (w *World) separate(a, b Collider, c contact) {
	rbA, rbB := bodyOf(a), bodyOf(b)
	invA, invB := rbA.InverseMass(), rbB.InverseMass()
	total := invA + invB
	if total == 0 {
		return
	}

	a.GetGameObject().Transform.TranslateWorld(rl.Vector3Scale(c.normal, c.depth*invA/total))
	b.GetGameObject().Transform.TranslateWorld(rl.Vector3Scale(c.normal, -c.depth*invB/total))

	var vA, vB rl.Vector3
	var bounce float32
	if invA > 0 {
		vA = rbA.Velocity
		bounce = rbA.Bounciness
	}
	if invB > 0 {
		vB = rbB.Velocity
		if invA > 0 {
			bounce = (bounce + rbB.Bounciness) / 2
		} else {
			bounce = rbB.Bounciness
		}
	}
	velAlongNormal := rl.Vector3DotProduct(rl.Vector3Subtract(vA, vB), c.normal)
	if velAlongNormal >= 0 {
		return
	}
	j := -(1 + bounce) * velAlongNormal / total
	impulse := rl.Vector3Scale(c.normal, j)
	if invA > 0 {
		rbA.Velocity = rl.Vector3Add(rbA.Velocity, rl.Vector3Scale(impulse, invA))
	}
	if invB > 0 {
		rbB.Velocity = rl.Vector3Subtract(rbB.Velocity, rl.Vector3Scale(impulse, invB))
	}
}

type stage int

const (
	enter stage = iota
	stay
	exit
)

func (w *World) notify(key pair, c contact, st stage) {
	if st != stay {
		w.Logger.Debug("contact",
			"a", key.a.GetGameObject().Name, "b", key.b.GetGameObject().Name,
			"trigger", c.trigger, "exit", st == exit)
	}
	if c.trigger {
		notifyTrigger(key.a, key.b, st)
		notifyTrigger(key.b, key.a, st)
		return
	}
	notifyCollision(key.a, engine.Collision{
		GameObject: key.b.GetGameObject(), Collider: key.b, Normal: c.normal, Depth: c.depth,
	}, st)
	notifyCollision(key.b, engine.Collision{
		GameObject: key.a.GetGameObject(), Collider: key.a, Normal: rl.Vector3Negate(c.normal), Depth: c.depth,
	}, st)
}

func notifyCollision(self Collider, col engine.Collision, st stage) {
	for _, comp := range self.GetGameObject().Components() {
		h, ok := comp.(engine.CollisionHandler)
		if !ok || !live(comp) {
			continue
		}
		switch st {
		case enter:
			h.OnCollisionEnter(col)
		case stay:
			h.OnCollisionStay(col)
		case exit:
			h.OnCollisionExit(col)
		}
	}
}

func notifyTrigger(self, other Collider, st stage) {
	for _, comp := range self.GetGameObject().Components() {
		h, ok := comp.(engine.TriggerHandler)
		if !ok || !live(comp) {
			continue
		}
		switch st {
		case enter:
			h.OnTriggerEnter(other)
		case stay:
			h.OnTriggerStay(other)
		case exit:
			h.OnTriggerExit(other)
		}
	}
}

func live(c engine.Component) bool {
	return !c.IsDestroyed() && c.Enabled()
}

// Raycast returns the closest non-trigger collider along the ray.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	dir := rl.Vector3Normalize(direction)
	closest := RaycastHit{Distance: maxDistance}
	hit := false
	for _, c := range w.colliders {
		if !live(c) || c.IsTrigger() {
			continue
		}
		var dist float32
		var normal rl.Vector3
		var ok bool
		if s, isSphere := c.(*SphereCollider); isSphere {
			dist, ok = raySphere(origin, dir, s.Center(), s.WorldRadius(), closest.Distance)
			if ok {
				point := rl.Vector3Add(origin, rl.Vector3Scale(dir, dist))
				normal = rl.Vector3Normalize(rl.Vector3Subtract(point, s.Center()))
			}
		} else {
			dist, normal, ok = c.Bounds().RayDistance(origin, dir, closest.Distance)
		}
		if !ok || dist > closest.Distance {
			continue
		}
		closest = RaycastHit{
			GameObject: c.GetGameObject(),
			Collider:   c,
			Point:      rl.Vector3Add(origin, rl.Vector3Scale(dir, dist)),
			Normal:     normal,
			Distance:   dist,
		}
		hit = true
	}
	return closest, hit
}

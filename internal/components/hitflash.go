package components

import (
	"unigo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("HitFlash", func(p engine.Props) (engine.Component, error) {
		c, err := p.Color("color", rl.Red)
		if err != nil {
			return nil, err
		}
		return &HitFlash{Color: c}, nil
	})
}

// HitFlash tints the sibling MeshRenderer while anything touches or
// overlaps the object.
type HitFlash struct {
	engine.BaseComponent
	Color rl.Color

	mesh     *MeshRenderer
	original rl.Color
	touching int
}

func (h *HitFlash) Awake() {
	h.mesh = engine.GetComponent[*MeshRenderer](h.GetGameObject(), true)
	if h.mesh != nil {
		h.original = h.mesh.Color
	}
}

// Touching is the number of contacts currently held.
func (h *HitFlash) Touching() int {
	return h.touching
}

func (h *HitFlash) enter() {
	h.touching++
	if h.mesh != nil {
		h.mesh.Color = h.Color
	}
}

func (h *HitFlash) exit() {
	if h.touching > 0 {
		h.touching--
	}
	if h.touching == 0 && h.mesh != nil {
		h.mesh.Color = h.original
	}
}

func (h *HitFlash) OnCollisionEnter(engine.Collision) { h.enter() }
func (h *HitFlash) OnCollisionStay(engine.Collision) {}
func (h *HitFlash) OnCollisionExit(engine.Collision) { h.exit() }
func (h *HitFlash) OnTriggerEnter(engine.Component) { h.enter() }
func (h *HitFlash) OnTriggerStay(engine.Component) {}
func (h *HitFlash) OnTriggerExit(engine.Component) { h.exit() }

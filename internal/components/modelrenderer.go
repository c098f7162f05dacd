package components

import (
	"unigo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("ModelRenderer", func(p engine.Props) (engine.Component, error) {
		tint, err := p.Color("tint", rl.White)
		if err != nil {
			return nil, err
		}
		m := NewModelRenderer(p.String("model", ""), tint)
		m.MaterialPath = p.String("material", "")
		return m, nil
	})
}

// ModelRenderer draws a model file loaded through the context's asset
// manager. A model that fails to load is logged and never drawn.
type ModelRenderer struct {
	engine.BaseComponent
	Path         string
	MaterialPath string
	Tint         rl.Color

	model  rl.Model
	loaded bool
}

func NewModelRenderer(path string, tint rl.Color) *ModelRenderer {
	return &ModelRenderer{Path: path, Tint: tint}
}

func (m *ModelRenderer) Awake() {
	ctx := m.Context()
	if ctx == nil || ctx.Assets == nil || m.Path == "" {
		return
	}
	model, err := ctx.Assets.LoadModel(m.Path)
	if err != nil {
		m.Logger().Warn("model renderer disabled", "object", m.Name(), "err", err)
		return
	}
	m.model = model
	m.loaded = true

	if m.MaterialPath == "" {
		return
	}
	mat, err := ctx.Assets.LoadMaterial(m.MaterialPath)
	if err != nil {
		return
	}
	m.Tint = mat.Color
}

// Loaded reports whether Awake produced a drawable model.
func (m *ModelRenderer) Loaded() bool {
	return m.loaded
}

func (m *ModelRenderer) Render(cam rl.Camera3D) {
	t := m.Transform()
	if !m.loaded || t == nil {
		return
	}
	m.model.Transform = t.WorldMatrix()
	rl.DrawModel(m.model, rl.Vector3{}, 1.0, m.Tint)
}

// OnDestroy drops the reference; the asset manager owns the GPU memory.
func (m *ModelRenderer) OnDestroy() {
	m.model = rl.Model{}
	m.loaded = false
}

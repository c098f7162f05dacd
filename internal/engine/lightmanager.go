package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// LightData is what the render device needs from a light.
type LightData struct {
	Direction rl.Vector3
	Color     rl.Color
	Intensity float32
	Ambient   float32
}

// Light is implemented by components that contribute to scene lighting.
type Light interface {
	Component
	LightData() LightData
}

// LightManager keeps the lights that are currently enabled, in the order
// they were enabled.
type LightManager struct {
	lights []Light
}

func NewLightManager() *LightManager {
	return &LightManager{}
}

func (m *LightManager) Register(l Light) {
	for _, existing := range m.lights {
		if existing == l {
			return
		}
	}
	m.lights = append(m.lights, l)
}

func (m *LightManager) Unregister(l Light) {
	for i, existing := range m.lights {
		if existing == l {
			m.lights = append(m.lights[:i:i], m.lights[i+1:]...)
			return
		}
	}
}

func (m *LightManager) Len() int {
	return len(m.lights)
}

// Data snapshots every registered light.
func (m *LightManager) Data() []LightData {
	out := make([]LightData, 0, len(m.lights))
	for _, l := range m.lights {
		out = append(out, l.LightData())
	}
	return out
}

func (m *LightManager) Clear() {
	m.lights = nil
}

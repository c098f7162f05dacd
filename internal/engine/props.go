package engine

import (
	"fmt"
	"unigo/internal/assets"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Props are the loosely typed properties a scene file supplies to a
// component factory. Numbers may arrive as float64 (JSON), int (YAML) or
// float32 (Go literals).
type Props map[string]any

func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p Props) Float(key string, def float32) float32 {
	if f, ok := toFloat(p[key]); ok {
		return f
	}
	return def
}

func (p Props) Int(key string, def int) int {
	if f, ok := toFloat(p[key]); ok {
		return int(f)
	}
	return def
}

func (p Props) Bool(key string, def bool) bool {
	if b, ok := p[key].(bool); ok {
		return b
	}
	return def
}

func (p Props) String(key, def string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return def
}

// Vec3 reads a three-element list.
func (p Props) Vec3(key string, def rl.Vector3) (rl.Vector3, error) {
	raw, ok := p[key]
	if !ok {
		return def, nil
	}
	v, err := ToVector3(raw)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// Color reads either a color name or a list of three or four components
// in the 0..1 range.
func (p Props) Color(key string, def rl.Color) (rl.Color, error) {
	raw, ok := p[key]
	if !ok {
		return def, nil
	}
	if name, ok := raw.(string); ok {
		c, found := assets.LookupColor(name)
		if !found {
			return def, fmt.Errorf("%s: unknown color %q", key, name)
		}
		return c, nil
	}
	list, ok := raw.([]any)
	if !ok || (len(list) != 3 && len(list) != 4) {
		return def, fmt.Errorf("%s: expected 3 or 4 numbers, got %v", key, raw)
	}
	ch := [4]float32{1, 1, 1, 1}
	for i, item := range list {
		f, ok := toFloat(item)
		if !ok {
			return def, fmt.Errorf("%s: element %d is not a number", key, i)
		}
		ch[i] = f
	}
	return rl.ColorFromNormalized(rl.Vector4{X: ch[0], Y: ch[1], Z: ch[2], W: ch[3]}), nil
}

// ToVector3 converts a decoded three-element list into a vector.
func ToVector3(raw any) (rl.Vector3, error) {
	var list []any
	switch v := raw.(type) {
	case []any:
		list = v
	case []float64:
		return floatsToVector3(v)
	case []float32:
		if len(v) != 3 {
			return rl.Vector3{}, fmt.Errorf("expected 3 numbers, got %d", len(v))
		}
		return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}, nil
	default:
		return rl.Vector3{}, fmt.Errorf("expected a list of 3 numbers, got %T", raw)
	}
	if len(list) != 3 {
		return rl.Vector3{}, fmt.Errorf("expected 3 numbers, got %d", len(list))
	}
	var out [3]float32
	for i, item := range list {
		f, ok := toFloat(item)
		if !ok {
			return rl.Vector3{}, fmt.Errorf("element %d is not a number", i)
		}
		out[i] = f
	}
	return rl.Vector3{X: out[0], Y: out[1], Z: out[2]}, nil
}

func floatsToVector3(v []float64) (rl.Vector3, error) {
	if len(v) != 3 {
		return rl.Vector3{}, fmt.Errorf("expected 3 numbers, got %d", len(v))
	}
	return rl.Vector3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}, nil
}

func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	case uint64:
		return float32(n), true
	}
	return 0, false
}

package world

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unigo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// SceneFile is the on-disk scene format, read from JSON or YAML.
type SceneFile struct {
	Name    string      `json:"name" yaml:"name"`
	Objects []ObjectDef `json:"objects" yaml:"objects"`
}

type ObjectDef struct {
	Name       string         `json:"name" yaml:"name"`
	Tags       []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Position   [3]float32     `json:"position" yaml:"position"`
	Rotation   [3]float32     `json:"rotation" yaml:"rotation"` // euler degrees
	Scale      [3]float32     `json:"scale" yaml:"scale"`
	Components []ComponentDef `json:"components,omitempty" yaml:"components,omitempty"`
	Children   []ObjectDef    `json:"children,omitempty" yaml:"children,omitempty"`
}

type ComponentDef struct {
	Type    string         `json:"type" yaml:"type"`
	Enabled *bool          `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Props   map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
}

// Format selects the decoder for a scene file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported scene file %q", path)
}

func Parse(data []byte, format Format) (*SceneFile, error) {
	var sf SceneFile
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &sf)
	default:
		err = json.Unmarshal(data, &sf)
	}
	if err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &sf, nil
}

func ReadSceneFile(path string) (*SceneFile, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	sf, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if sf.Name == "" {
		sf.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sf, nil
}

// FileScene returns a builder that rereads path every time it runs, so a
// reload picks up edits.
func FileScene(path string) engine.SceneBuilder {
	return func() (*engine.Scene, error) {
		sf, err := ReadSceneFile(path)
		if err != nil {
			return nil, err
		}
		return sf.Build()
	}
}

// Build instantiates every object through the component registry. Any
// failing component fails the whole scene; nothing is half-built.
func (sf *SceneFile) Build() (*engine.Scene, error) {
	roots := make([]*engine.GameObject, 0, len(sf.Objects))
	for i := range sf.Objects {
		g, err := buildObject(&sf.Objects[i])
		if err != nil {
			return nil, err
		}
		roots = append(roots, g)
	}
	return engine.NewScene(sf.Name, roots...), nil
}

func buildObject(def *ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = vec3(def.Position)
	g.Transform.SetEulerAngles(vec3(def.Rotation))
	// Default scale to 1 if zero
	if def.Scale != [3]float32{} {
		g.Transform.Scale = vec3(def.Scale)
	}

	for i, cd := range def.Components {
		c, err := engine.CreateComponent(cd.Type, engine.Props(cd.Props))
		if err != nil {
			return nil, fmt.Errorf("object %q component %d: %w", def.Name, i, err)
		}
		if cd.Enabled != nil && !*cd.Enabled {
			c.SetEnabled(false)
		}
		g.AddComponent(c)
	}
	for i := range def.Children {
		child, err := buildObject(&def.Children[i])
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}
	return g, nil
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

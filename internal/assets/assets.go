package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrLoadFailed wraps every failure to bring an asset into memory.
var ErrLoadFailed = errors.New("asset load failed")

// Material defines surface properties for rendering
type Material struct {
	Name      string
	Color     rl.Color
	Metallic  float32
	Roughness float32
	Emissive  float32
	Texture   string
}

// materialDef is the JSON format for material files
type materialDef struct {
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	Metallic  float32 `json:"metallic"`
	Roughness float32 `json:"roughness"`
	Emissive  float32 `json:"emissive"`
	Texture   string  `json:"texture"`
}

// DefaultMaterial is what renderers fall back to when no material is set.
var DefaultMaterial = Material{
	Name:      "default",
	Color:     rl.White,
	Roughness: 0.5,
}

var colorByName = map[string]rl.Color{
	"red":       rl.Red,
	"blue":      rl.Blue,
	"green":     rl.Green,
	"purple":    rl.Purple,
	"orange":    rl.Orange,
	"yellow":    rl.Yellow,
	"gold":      rl.Gold,
	"white":     rl.White,
	"gray":      rl.Gray,
	"lightgray": rl.LightGray,
	"darkgray":  rl.DarkGray,
	"black":     rl.Black,
	"pink":      rl.Pink,
	"maroon":    rl.Maroon,
	"brown":     rl.Brown,
	"beige":     rl.Beige,
	"skyblue":   rl.SkyBlue,
	"darkblue":  rl.DarkBlue,
	"lime":      rl.Lime,
	"darkgreen": rl.DarkGreen,
}

// LookupColor resolves a color name, case-insensitively.
func LookupColor(name string) (rl.Color, bool) {
	c, ok := colorByName[strings.ToLower(name)]
	return c, ok
}

// Manager caches models, textures and materials by path. It is owned by
// the engine context; nothing here is global.
type Manager struct {
	logger    *slog.Logger
	models    map[string]rl.Model
	textures  map[string]rl.Texture2D
	materials map[string]*Material

	// raylib entry points, replaceable so caching can be exercised without
	// a GPU context
	loadModel     func(string) rl.Model
	unloadModel   func(rl.Model)
	loadTexture   func(string) rl.Texture2D
	unloadTexture func(rl.Texture2D)
}

func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger:        logger,
		models:        make(map[string]rl.Model),
		textures:      make(map[string]rl.Texture2D),
		materials:     make(map[string]*Material),
		loadModel:     rl.LoadModel,
		unloadModel:   rl.UnloadModel,
		loadTexture:   rl.LoadTexture,
		unloadTexture: rl.UnloadTexture,
	}
}

// LoadModel returns the cached model for path, loading it on first use.
// raylib substitutes a placeholder for unreadable files, so the file is
// checked up front and an empty result is treated as a failure.
func (m *Manager) LoadModel(path string) (rl.Model, error) {
	if model, ok := m.models[path]; ok {
		return model, nil
	}
	if err := m.checkFile(path); err != nil {
		return rl.Model{}, err
	}
	model := m.loadModel(path)
	if model.MeshCount == 0 {
		return rl.Model{}, m.fail(path, errors.New("no meshes"))
	}
	m.models[path] = model
	m.logger.Debug("model loaded", "path", path, "meshes", model.MeshCount)
	return model, nil
}

func (m *Manager) LoadTexture(path string) (rl.Texture2D, error) {
	if tex, ok := m.textures[path]; ok {
		return tex, nil
	}
	if err := m.checkFile(path); err != nil {
		return rl.Texture2D{}, err
	}
	tex := m.loadTexture(path)
	if tex.ID == 0 {
		return rl.Texture2D{}, m.fail(path, errors.New("no texture id"))
	}
	m.textures[path] = tex
	m.logger.Debug("texture loaded", "path", path, "width", tex.Width, "height", tex.Height)
	return tex, nil
}

// LoadMaterial reads a JSON material file, caching it for reuse.
func (m *Manager) LoadMaterial(path string) (*Material, error) {
	if mat, ok := m.materials[path]; ok {
		return mat, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, m.fail(path, err)
	}
	mat, err := ParseMaterial(data)
	if err != nil {
		return nil, m.fail(path, err)
	}
	m.materials[path] = mat
	return mat, nil
}

// ParseMaterial decodes a material definition. Unknown color names are an
// error; an empty color keeps the default white.
func ParseMaterial(data []byte) (*Material, error) {
	var def materialDef
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse material: %w", err)
	}
	mat := DefaultMaterial
	if def.Name != "" {
		mat.Name = def.Name
	}
	if def.Color != "" {
		c, ok := LookupColor(def.Color)
		if !ok {
			return nil, fmt.Errorf("parse material: unknown color %q", def.Color)
		}
		mat.Color = c
	}
	mat.Metallic = def.Metallic
	if def.Roughness != 0 {
		mat.Roughness = def.Roughness
	}
	mat.Emissive = def.Emissive
	mat.Texture = def.Texture
	return &mat, nil
}

func (m *Manager) checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return m.fail(path, err)
	}
	if info.IsDir() {
		return m.fail(path, errors.New("is a directory"))
	}
	return nil
}

func (m *Manager) fail(path string, cause error) error {
	m.logger.Warn("asset load failed", "path", path, "err", cause)
	return fmt.Errorf("%w: %s: %w", ErrLoadFailed, path, cause)
}

// Cached reports how many models, textures and materials are held.
func (m *Manager) Cached() (models, textures, materials int) {
	return len(m.models), len(m.textures), len(m.materials)
}

// Unload releases every cached GPU resource and empties the caches.
func (m *Manager) Unload() {
	for _, model := range m.models {
		m.unloadModel(model)
	}
	for _, tex := range m.textures {
		m.unloadTexture(tex)
	}
	m.models = make(map[string]rl.Model)
	m.textures = make(map[string]rl.Texture2D)
	m.materials = make(map[string]*Material)
}

package engine

import (
	"errors"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockScript struct {
	BaseComponent
	Speed  float32
	Health int
	Label  string
}

func mockFactory(props Props) (Component, error) {
	if props.Int("health", 1) < 0 {
		return nil, errors.New("negative health")
	}
	return &mockScript{
		Speed:  props.Float("speed", 1),
		Health: props.Int("health", 1),
		Label:  props.String("label", ""),
	}, nil
}

func withCleanRegistry(t *testing.T) {
	saved := registry
	registry = map[string]ComponentFactory{}
	t.Cleanup(func() { registry = saved })
}

func TestRegisterComponent(t *testing.T) {
	withCleanRegistry(t)

	RegisterComponent("MockScript", mockFactory)

	if !IsRegistered("MockScript") {
		t.Error("MockScript should be registered")
	}
}

func TestRegisterComponentDuplicatePanics(t *testing.T) {
	withCleanRegistry(t)
	RegisterComponent("MockScript", mockFactory)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	RegisterComponent("MockScript", mockFactory)
}

func TestCreateComponent(t *testing.T) {
	withCleanRegistry(t)
	RegisterComponent("MockScript", mockFactory)

	c, err := CreateComponent("MockScript", Props{"speed": 5.5, "health": 100, "label": "hero"})
	require.NoError(t, err)

	script, ok := c.(*mockScript)
	require.True(t, ok, "Expected *mockScript, got %T", c)
	assert.Equal(t, float32(5.5), script.Speed)
	assert.Equal(t, 100, script.Health)
	assert.Equal(t, "hero", script.Label)
}

func TestCreateComponentErrors(t *testing.T) {
	withCleanRegistry(t)
	RegisterComponent("MockScript", mockFactory)

	_, err := CreateComponent("Nope", nil)
	assert.ErrorIs(t, err, ErrUnknownComponent)

	_, err = CreateComponent("MockScript", Props{"health": -1})
	assert.ErrorContains(t, err, "negative health")
}

func TestRegisteredComponentsSorted(t *testing.T) {
	withCleanRegistry(t)
	RegisterComponent("Zeta", mockFactory)
	RegisterComponent("Alpha", mockFactory)
	RegisterComponent("Mid", mockFactory)

	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, RegisteredComponents())
}

func TestPropsNumbersFromAnyDecoder(t *testing.T) {
	p := Props{"json": 1.5, "yaml": 3, "go": float32(2.5), "text": "x"}

	assert.Equal(t, float32(1.5), p.Float("json", 0))
	assert.Equal(t, float32(3), p.Float("yaml", 0))
	assert.Equal(t, float32(2.5), p.Float("go", 0))
	assert.Equal(t, float32(9), p.Float("text", 9), "non-numbers fall back to the default")
	assert.Equal(t, float32(7), p.Float("missing", 7))
}

func TestPropsVec3(t *testing.T) {
	p := Props{"pos": []any{1.0, 2, float32(3)}, "bad": []any{1.0}, "worse": "up"}

	v, err := p.Vec3("pos", rl.Vector3{})
	require.NoError(t, err)
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, v)

	def := rl.Vector3{Y: 1}
	v, err = p.Vec3("missing", def)
	require.NoError(t, err)
	assert.Equal(t, def, v)

	_, err = p.Vec3("bad", def)
	assert.Error(t, err)
	_, err = p.Vec3("worse", def)
	assert.Error(t, err)
}

func TestPropsColor(t *testing.T) {
	p := Props{"c": []any{1.0, 0.0, 0.0}}

	c, err := p.Color("c", rl.White)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(255), c.A)
}

func TestPropsColorByName(t *testing.T) {
	p := Props{"c": "SkyBlue", "bad": "ultraviolet"}

	c, err := p.Color("c", rl.White)
	require.NoError(t, err)
	assert.Equal(t, rl.SkyBlue, c)

	c, err = p.Color("bad", rl.White)
	assert.Error(t, err)
	assert.Equal(t, rl.White, c)
}

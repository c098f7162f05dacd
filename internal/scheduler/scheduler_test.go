package scheduler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"testing"
	"unigo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type behaviour struct {
	engine.BaseComponent
	id  string
	log *[]string
}

func (b *behaviour) note(event string) {
	*b.log = append(*b.log, fmt.Sprintf("%s.%s", b.id, event))
}

func (b *behaviour) Awake() { b.note("Awake") }
func (b *behaviour) Start() { b.note("Start") }
func (b *behaviour) FixedUpdate(*engine.Context) { b.note("FixedUpdate") }
func (b *behaviour) Update(*engine.Context) { b.note("Update") }
func (b *behaviour) LateUpdate(*engine.Context) { b.note("LateUpdate") }

type drawable struct {
	engine.BaseComponent
	log *[]string
}

func (d *drawable) Render(rl.Camera3D) { *d.log = append(*d.log, "draw") }

type camera struct {
	engine.BaseComponent
}

func (c *camera) Camera3D() rl.Camera3D { return rl.Camera3D{Fovy: 45} }

func (c *camera) OnEnable() { c.Context().SetMainCamera(c) }

type fakeDevice struct {
	calls []string
}

func (d *fakeDevice) Clear(rl.Color) { d.calls = append(d.calls, "Clear") }
func (d *fakeDevice) BeginCamera(_ rl.Camera3D, lights []engine.LightData) {
	d.calls = append(d.calls, fmt.Sprintf("BeginCamera(%d)", len(lights)))
}
func (d *fakeDevice) EndCamera() { d.calls = append(d.calls, "EndCamera") }
func (d *fakeDevice) Present() { d.calls = append(d.calls, "Present") }

type fakePhysics struct {
	steps int
	dts   []float32
}

func (p *fakePhysics) SimulatePositionCorrection(dt float32) {
	p.steps++
	p.dts = append(p.dts, dt)
}

type fakeInput struct {
	polls    int
	messages []Message
}

func (i *fakeInput) Update() { i.polls++ }
func (i *fakeInput) KeyDown(int32) bool { return false }
func (i *fakeInput) KeyPressed(int32) bool { return false }
func (i *fakeInput) HandleMessage(m Message) { i.messages = append(i.messages, m) }

// scriptedWindow hands out the messages queued for each frame, then quits.
type scriptedWindow struct {
	frames [][]Message
	frame  int
	pos    int
}

func (w *scriptedWindow) PeekMessage() (Message, bool) {
	if w.frame >= len(w.frames) {
		return Message{Kind: MessageQuit}, true
	}
	msgs := w.frames[w.frame]
	if w.pos < len(msgs) {
		m := msgs[w.pos]
		w.pos++
		return m, true
	}
	w.frame++
	w.pos = 0
	return Message{}, false
}

func newTestContext(fixed float32) (*engine.Context, *fakePhysics, *fakeInput) {
	ctx := engine.NewContext(fixed, slog.New(slog.NewTextHandler(io.Discard, nil)))
	phys := &fakePhysics{}
	in := &fakeInput{}
	ctx.Physics = phys
	ctx.Input = in
	return ctx, phys, in
}

func sceneOf(roots ...*engine.GameObject) engine.SceneBuilder {
	return func() (*engine.Scene, error) {
		return engine.NewScene("Test", roots...), nil
	}
}

func TestTraversalOrderAndDisabledBehaviour(t *testing.T) {
	var log []string
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})

	b1 := &behaviour{id: "B1", log: &log}
	b1.SetEnabled(false)
	a := &behaviour{id: "A", log: &log}
	b2 := &behaviour{id: "B2", log: &log}
	sib := &behaviour{id: "S", log: &log}

	o := engine.NewGameObject("O", a, b1, engine.NewGameObject("C", b2))
	_, err := s.CreateScene(sceneOf(o, engine.NewGameObject("Sibling", sib)))
	require.NoError(t, err)

	s.Step(0)

	assert.Zero(t, countOf(log, "B1.Awake")+countOf(log, "B1.Start")+countOf(log, "B1.Update"))
	assert.Equal(t, 1, countOf(log, "B2.Awake"))
	assert.Equal(t, 1, countOf(log, "B2.Start"))
	assert.Equal(t, 1, countOf(log, "B2.Update"))

	updates := filter(log, ".Update")
	assert.Equal(t, []string{"A.Update", "B2.Update", "S.Update"}, updates)
}

func TestStartRunsBeforeFirstUpdate(t *testing.T) {
	var log []string
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	_, err := s.CreateScene(sceneOf(engine.NewGameObject("O", &behaviour{id: "A", log: &log})))
	require.NoError(t, err)

	s.Step(0)
	s.Step(0)

	assert.Equal(t, []string{"A.Awake", "A.Start", "A.Update", "A.LateUpdate", "A.Update", "A.LateUpdate"}, log)
}

func TestLateComponentAwakesInStartSweep(t *testing.T) {
	var log []string
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	o := engine.NewGameObject("O")
	_, err := s.CreateScene(sceneOf(o))
	require.NoError(t, err)
	s.Step(0)

	o.AddComponent(&behaviour{id: "Late", log: &log})
	o.AddChild(engine.NewGameObject("Child", &behaviour{id: "Kid", log: &log}))
	s.Step(0)

	assert.Equal(t, []string{
		"Late.Awake", "Late.Start", "Kid.Awake", "Kid.Start",
		"Late.Update", "Kid.Update",
		"Late.LateUpdate", "Kid.LateUpdate",
	}, log)
}

func TestTraversalIsDeterministic(t *testing.T) {
	var log []string
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	root := engine.NewGameObject("Root",
		&behaviour{id: "R", log: &log},
		engine.NewGameObject("A", &behaviour{id: "A", log: &log},
			engine.NewGameObject("AA", &behaviour{id: "AA", log: &log})),
		engine.NewGameObject("B", &behaviour{id: "B", log: &log}),
	)
	_, err := s.CreateScene(sceneOf(root))
	require.NoError(t, err)
	s.Step(0)

	log = log[:0]
	s.Step(0)
	first := append([]string(nil), log...)
	log = log[:0]
	s.Step(0)

	assert.Equal(t, first, log)
	assert.Equal(t, []string{"R.Update", "A.Update", "AA.Update", "B.Update"}, filter(first, ".Update"))
}

func TestFixedStepAccumulator(t *testing.T) {
	ctx, phys, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	_, err := s.CreateScene(sceneOf())
	require.NoError(t, err)

	s.Step(0.05)

	assert.Equal(t, 2, phys.steps)
	assert.InDelta(t, 0.01, s.Accumulator(), 1e-6)
	assert.Equal(t, []float32{0.02, 0.02}, phys.dts)

	s.Step(0.01)
	assert.Equal(t, 3, phys.steps, "the carried remainder completes a step")
}

func TestFixedStepCountMatchesFloorOfElapsedTime(t *testing.T) {
	ctx, phys, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	_, err := s.CreateScene(sceneOf())
	require.NoError(t, err)

	fixed := float64(ctx.Time.FixedDeltaTime)
	cumulative := 0.0
	for _, d := range []float64{0.016, 0.033, 0.005, 0.041, 0.1, 0, 0.019, 0.021, 0.25, 0.04} {
		s.Step(d)
		cumulative += d
		want := int(math.Floor(cumulative/fixed + 1e-9))
		assert.Equal(t, want, phys.steps, "after %.3fs", cumulative)
	}
	assert.Equal(t, uint64(phys.steps), s.Stats().FixedSteps)
}

func TestFixedUpdateRunsOncePerStep(t *testing.T) {
	var log []string
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	_, err := s.CreateScene(sceneOf(engine.NewGameObject("O", &behaviour{id: "A", log: &log})))
	require.NoError(t, err)

	s.Step(0.065)

	assert.Equal(t, 3, countOf(log, "A.FixedUpdate"))
	assert.Equal(t, "A.FixedUpdate", log[1], "fixed steps run before the start sweep of the frame")
}

func TestMaxFixedStepsCap(t *testing.T) {
	ctx, phys, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{MaxFixedSteps: 3})
	_, err := s.CreateScene(sceneOf())
	require.NoError(t, err)

	s.Step(1.005)

	assert.Equal(t, 3, phys.steps)
	assert.Less(t, s.Accumulator(), 0.02)
}

func TestUnboundedCatchUpByDefault(t *testing.T) {
	ctx, phys, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	_, err := s.CreateScene(sceneOf())
	require.NoError(t, err)

	s.Step(1.005)
	assert.Equal(t, 50, phys.steps)
}

func TestInputPolledOncePerFrame(t *testing.T) {
	ctx, _, in := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	_, err := s.CreateScene(sceneOf())
	require.NoError(t, err)

	s.Step(0.1)
	s.Step(0.1)
	assert.Equal(t, 2, in.polls)
}

func TestRenderSkippedWithoutMainCamera(t *testing.T) {
	var log []string
	ctx, _, _ := newTestContext(0.02)
	dev := &fakeDevice{}
	s := New(ctx, dev, nil, Options{})
	_, err := s.CreateScene(sceneOf(engine.NewGameObject("Mesh", &drawable{log: &log})))
	require.NoError(t, err)

	s.Step(0)

	assert.Equal(t, []string{"Clear", "Present"}, dev.calls)
	assert.Empty(t, log)
}

func TestRenderThroughMainCamera(t *testing.T) {
	var log []string
	ctx, _, _ := newTestContext(0.02)
	dev := &fakeDevice{}
	s := New(ctx, dev, nil, Options{})
	hidden := &drawable{log: &log}
	hidden.SetEnabled(false)
	_, err := s.CreateScene(sceneOf(
		engine.NewGameObject("Camera", &camera{}),
		engine.NewGameObject("Mesh", &drawable{log: &log}, hidden),
	))
	require.NoError(t, err)

	s.Step(0)

	assert.Equal(t, []string{"Clear", "BeginCamera(0)", "EndCamera", "Present"}, dev.calls)
	assert.Equal(t, []string{"draw"}, log)
}

func TestStepWithoutActiveScenePanics(t *testing.T) {
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})

	assert.Panics(t, func() { s.Step(0.016) })
}

func TestCallbackPanicsPropagate(t *testing.T) {
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	_, err := s.CreateScene(sceneOf(engine.NewGameObject("O", &panicky{})))
	require.NoError(t, err)

	assert.PanicsWithValue(t, "boom", func() { s.Step(0) })
}

type panicky struct {
	engine.BaseComponent
}

func (p *panicky) Update(*engine.Context) { panic("boom") }

func TestDestroyLaterAppliesAtEndOfFrame(t *testing.T) {
	var log []string
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	victim := engine.NewGameObject("Victim", &behaviour{id: "V", log: &log})
	killer := &killer{target: victim}
	_, err := s.CreateScene(sceneOf(engine.NewGameObject("Killer", killer), victim))
	require.NoError(t, err)

	s.Step(0)
	assert.Equal(t, 1, countOf(log, "V.LateUpdate"), "queued objects finish the frame")
	assert.True(t, victim.IsDestroyed())

	s.Step(0)
	assert.Equal(t, 1, countOf(log, "V.Update"))
}

type killer struct {
	engine.BaseComponent
	target *engine.GameObject
}

func (k *killer) Update(ctx *engine.Context) {
	ctx.ActiveScene().DestroyLater(k.target)
}

// meddler runs act from inside its first Update.
type meddler struct {
	engine.BaseComponent
	act  func()
	done bool
}

func (m *meddler) Update(*engine.Context) {
	if !m.done {
		m.done = true
		m.act()
	}
}

func TestUpdateSkipsSiblingComponentRemovedMidPass(t *testing.T) {
	var log []string
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	removed := &behaviour{id: "Removed", log: &log}
	o := engine.NewGameObject("O")
	o.AddComponent(&meddler{act: func() { o.RemoveComponent(removed) }})
	o.AddComponent(&behaviour{id: "Kept", log: &log})
	o.AddComponent(removed)
	_, err := s.CreateScene(sceneOf(o))
	require.NoError(t, err)

	s.Step(0)

	assert.Equal(t, []string{"Kept.Update"}, filter(log, ".Update"))
	assert.True(t, removed.IsDestroyed())
	assert.Len(t, o.Components(), 2)
}

func TestComponentAddedMidPassWaitsForNextFrame(t *testing.T) {
	var log []string
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	o := engine.NewGameObject("O")
	o.AddComponent(&meddler{act: func() {
		o.AddComponent(&behaviour{id: "New", log: &log})
	}})
	_, err := s.CreateScene(sceneOf(o))
	require.NoError(t, err)

	s.Step(0)
	assert.Empty(t, log)

	s.Step(0)
	assert.Equal(t, []string{"New.Awake", "New.Start", "New.Update", "New.LateUpdate"}, log)
}

func TestUpdateSkipsSiblingObjectDestroyedMidPass(t *testing.T) {
	var log []string
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	victim := engine.NewGameObject("Victim", &behaviour{id: "V", log: &log},
		engine.NewGameObject("Kid", &behaviour{id: "K", log: &log}))
	first := engine.NewGameObject("First", &meddler{act: victim.Destroy})
	last := engine.NewGameObject("Last", &behaviour{id: "L", log: &log})
	_, err := s.CreateScene(sceneOf(first, victim, last))
	require.NoError(t, err)

	s.Step(0)

	assert.Equal(t, []string{"L.Update"}, filter(log, ".Update"))
	assert.Equal(t, []string{"L.LateUpdate"}, filter(log, ".LateUpdate"))
	assert.Len(t, ctx.ActiveScene().RootGameObjects(), 2)
}

func TestRequestLoadAppliedAtNextFrame(t *testing.T) {
	var log []string
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	_, err := s.CreateScene(sceneOf(engine.NewGameObject("Old", &behaviour{id: "Old", log: &log})))
	require.NoError(t, err)
	s.Step(0)

	ctx.Scenes.RequestLoad(sceneOf(engine.NewGameObject("New", &behaviour{id: "New", log: &log})))
	assert.Equal(t, "Old", ctx.ActiveScene().RootGameObjects()[0].Name)

	log = log[:0]
	s.Step(0)
	assert.Equal(t, []string{"New.Awake", "New.Start", "New.Update", "New.LateUpdate"}, log)
}

func TestRunStopsOnQuitAndFinalizes(t *testing.T) {
	var log []string
	ctx, _, in := newTestContext(0.02)
	win := &scriptedWindow{frames: [][]Message{
		nil,
		{{Kind: MessageKeyDown, Key: 32}},
		nil,
	}}
	s := New(ctx, nil, win, Options{})
	_, err := s.CreateScene(sceneOf(engine.NewGameObject("O", &behaviour{id: "A", log: &log})))
	require.NoError(t, err)

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, 3, countOf(log, "A.Update"))
	assert.Equal(t, []Message{{Kind: MessageKeyDown, Key: 32}}, in.messages)
	assert.Nil(t, ctx.ActiveScene(), "finalize shuts the scene down")
	assert.Equal(t, uint64(3), s.Stats().Frames)
}

func TestRunReloadMessage(t *testing.T) {
	ctx, _, _ := newTestContext(0.02)
	builds := 0
	win := &scriptedWindow{frames: [][]Message{{{Kind: MessageReloadScene}}}}
	s := New(ctx, nil, win, Options{})
	_, err := s.CreateScene(func() (*engine.Scene, error) {
		builds++
		return engine.NewScene("Main"), nil
	})
	require.NoError(t, err)

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, 2, builds)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	_, err := s.CreateScene(sceneOf())
	require.NoError(t, err)

	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.Run(cctx))
	assert.Equal(t, uint64(0), s.Stats().Frames)
}

func TestRunWithoutSceneFails(t *testing.T) {
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})

	assert.ErrorIs(t, s.Run(context.Background()), engine.ErrNoActiveScene)
}

func TestStatsCountPhases(t *testing.T) {
	ctx, _, _ := newTestContext(0.02)
	s := New(ctx, nil, nil, Options{})
	_, err := s.CreateScene(sceneOf())
	require.NoError(t, err)

	s.Step(0.045)
	s.Step(0)

	st := s.Stats()
	require.Len(t, st.Phases, len(Phases()))
	assert.Equal(t, int64(2), st.Phases[PhaseFixedUpdate].ExecutionCount)
	assert.Equal(t, int64(2), st.Phases[PhasePhysics].ExecutionCount)
	assert.Equal(t, int64(2), st.Phases[PhaseUpdate].ExecutionCount)
	assert.Equal(t, int64(2), st.Phases[PhaseRender].ExecutionCount)
	assert.Equal(t, "LateUpdate", PhaseLateUpdate.String())
	assert.Equal(t, PhaseRender, s.Phase())
}

func countOf(log []string, entry string) int {
	n := 0
	for _, e := range log {
		if e == entry {
			n++
		}
	}
	return n
}

func filter(log []string, suffix string) []string {
	var out []string
	for _, e := range log {
		if len(e) >= len(suffix) && e[len(e)-len(suffix):] == suffix {
			out = append(out, e)
		}
	}
	return out
}

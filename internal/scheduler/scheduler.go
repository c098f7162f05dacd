package scheduler

import (
	"context"
	"math"
	"time"
	"unigo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// stepEpsilon absorbs float drift so that a frame whose accumulated time is
// an exact multiple of the fixed step runs all of its steps.
const stepEpsilon = 1e-9

// Options tune the frame loop.
type Options struct {
	// MaxFixedSteps caps fixed steps per frame. Zero means unbounded: a
	// long stall is caught up in one burst.
	MaxFixedSteps int
	ClearColor    rl.Color
	// Now replaces time.Now, for tests.
	Now func() time.Time
}

// DefaultClearColor is the sky blue the device clears to each frame.
var DefaultClearColor = rl.ColorFromNormalized(rl.Vector4{X: 0.3, Y: 0.5, Z: 0.9, W: 1})

// Scheduler drives the per-frame lifecycle over the active scene:
// FixedUpdate and Physics per fixed step, then Input, the Start sweep,
// Update, LateUpdate and Render once per frame.
type Scheduler struct {
	ctx    *engine.Context
	device Device
	window Window
	opts   Options

	accumulator float64
	phase       Phase
	stats       [phaseCount]*phaseStats
}

// New builds a scheduler. A nil device runs headless (no clear, render or
// present); a nil window never delivers messages.
func New(ctx *engine.Context, device Device, window Window, opts Options) *Scheduler {
	if ctx == nil {
		panic("scheduler: nil context")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ClearColor == (rl.Color{}) {
		opts.ClearColor = DefaultClearColor
	}
	s := &Scheduler{
		ctx:    ctx,
		device: device,
		window: window,
		opts:   opts,
	}
	for i := range s.stats {
		s.stats[i] = newPhaseStats()
	}
	return s
}

func (s *Scheduler) Context() *engine.Context {
	return s.ctx
}

// CreateScene loads the first scene and runs its Awake sweep.
func (s *Scheduler) CreateScene(build engine.SceneBuilder) (*engine.Scene, error) {
	return s.ctx.Scenes.Load(build)
}

// Accumulator is the simulation time not yet consumed by fixed steps.
func (s *Scheduler) Accumulator() float64 {
	return s.accumulator
}

// Phase reports the phase currently executing, or the last one executed.
func (s *Scheduler) Phase() Phase {
	return s.phase
}

// Run pumps messages and steps frames until a quit message arrives or ctx
// is cancelled, then shuts the active scene down.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.ctx.Scenes.Active() == nil && !s.ctx.Scenes.HasPending() {
		return engine.ErrNoActiveScene
	}
	log := s.ctx.Logger
	last := s.opts.Now()
	for {
		if s.pump() {
			log.Info("quit requested")
			break
		}
		if err := ctx.Err(); err != nil {
			log.Info("run cancelled", "reason", err)
			break
		}
		now := s.opts.Now()
		delta := now.Sub(last).Seconds()
		last = now
		s.Step(delta)
	}
	s.finalize()
	return nil
}

// pump drains pending window messages. Returns true on quit.
func (s *Scheduler) pump() bool {
	if s.window == nil {
		return false
	}
	for {
		msg, ok := s.window.PeekMessage()
		if !ok {
			return false
		}
		switch msg.Kind {
		case MessageQuit:
			return true
		case MessageReloadScene:
			if err := s.ctx.Scenes.Reload(); err != nil {
				s.ctx.Logger.Error("scene reload failed", "path", msg.Path, "err", err)
			}
		default:
			if h, ok := s.ctx.Input.(MessageHandler); ok {
				h.HandleMessage(msg)
			}
		}
	}
}

func (s *Scheduler) finalize() {
	s.ctx.Scenes.Shutdown()
	st := s.Stats()
	s.ctx.Logger.Info("scheduler finalized", "frames", st.Frames, "fixed_steps", st.FixedSteps)
}

// Step runs one frame. delta is the real time elapsed since the previous
// frame, in seconds. Stepping without an active scene panics.
func (s *Scheduler) Step(delta float64) {
	scenes := s.ctx.Scenes
	if err := scenes.ApplyPending(); err != nil {
		s.ctx.Logger.Error("deferred scene load failed", "err", err)
	}
	scene := scenes.Active()
	if scene == nil {
		panic(engine.ErrNoActiveScene)
	}
	if delta < 0 {
		delta = 0
	}

	if s.device != nil {
		s.device.Clear(s.opts.ClearColor)
	}

	t := s.ctx.Time
	fixed := float64(t.FixedDeltaTime)
	s.accumulator += delta
	t.SetDeltaTimeFixed()
	steps := 0
	for s.accumulator >= fixed-stepEpsilon {
		if s.opts.MaxFixedSteps > 0 && steps >= s.opts.MaxFixedSteps {
			dropped := s.accumulator - math.Mod(s.accumulator, fixed)
			s.accumulator -= dropped
			s.ctx.Logger.Warn("fixed step cap reached", "steps", steps, "dropped_seconds", dropped)
			break
		}
		s.run(PhaseFixedUpdate, func() { s.fixedUpdatePass(scene) })
		s.run(PhasePhysics, func() {
			if s.ctx.Physics != nil {
				s.ctx.Physics.SimulatePositionCorrection(t.FixedDeltaTime)
			}
		})
		s.accumulator -= fixed
		t.FixedStepCount++
		steps++
	}
	if s.accumulator < 0 {
		s.accumulator = 0
	}
	t.SetDeltaTimeFrame()

	s.run(PhaseInput, func() {
		if s.ctx.Input != nil {
			s.ctx.Input.Update()
		}
	})
	s.run(PhaseUpdate, func() {
		s.startSweep(scene)
		s.updatePass(scene)
	})
	s.run(PhaseLateUpdate, func() { s.lateUpdatePass(scene) })
	s.run(PhaseRender, func() { s.renderPass(scene) })

	if s.device != nil {
		s.device.Present()
	}
	t.UpdateFrame(delta)
	scene.FlushDestroyed()
}

func (s *Scheduler) run(p Phase, fn func()) {
	s.phase = p
	start := time.Now()
	fn()
	s.stats[p].record(time.Since(start))
}

// startSweep awakes and starts every component that has not been yet,
// so late arrivals get Start before their first Update.
func (s *Scheduler) startSweep(scene *engine.Scene) {
	for _, root := range scene.RootGameObjects() {
		engine.WalkComponents(root, func(c engine.Component) {
			c.CheckAwake()
			c.CheckStart()
		})
	}
}

func (s *Scheduler) fixedUpdatePass(scene *engine.Scene) {
	ctx := s.ctx
	visit(scene, func(g *engine.GameObject) {
		for _, c := range g.FixedUpdaters() {
			if live(c) {
				c.FixedUpdate(ctx)
			}
		}
	})
}

func (s *Scheduler) updatePass(scene *engine.Scene) {
	ctx := s.ctx
	visit(scene, func(g *engine.GameObject) {
		for _, c := range g.Updaters() {
			if live(c) {
				c.Update(ctx)
			}
		}
	})
}

func (s *Scheduler) lateUpdatePass(scene *engine.Scene) {
	ctx := s.ctx
	visit(scene, func(g *engine.GameObject) {
		for _, c := range g.LateUpdaters() {
			if live(c) {
				c.LateUpdate(ctx)
			}
		}
	})
}

// renderPass is skipped entirely without a main camera or a device.
func (s *Scheduler) renderPass(scene *engine.Scene) {
	if s.device == nil {
		return
	}
	viewer := s.ctx.MainCamera()
	if viewer == nil {
		return
	}
	cam := viewer.Camera3D()
	s.device.BeginCamera(cam, s.ctx.Lights.Data())
	visit(scene, func(g *engine.GameObject) {
		for _, r := range g.Renderers() {
			if live(r) {
				r.Render(cam)
			}
		}
	})
	s.device.EndCamera()
}

func visit(scene *engine.Scene, fn func(g *engine.GameObject)) {
	for _, root := range scene.RootGameObjects() {
		engine.Walk(root, func(g *engine.GameObject) bool {
			fn(g)
			return true
		})
	}
}

func live(c engine.Component) bool {
	return !c.IsDestroyed() && c.Enabled()
}

// Stats returns execution statistics for every phase.
func (s *Scheduler) Stats() Stats {
	out := Stats{
		Frames:     s.ctx.Time.FrameCount,
		FixedSteps: s.ctx.Time.FixedStepCount,
		Phases:     make([]PhaseStats, phaseCount),
	}
	for i, st := range s.stats {
		out.Phases[i] = st.snapshot(Phase(i))
	}
	return out
}

// Headless stress run: drops N bodies onto a floor and reports how long
// each scheduler phase takes.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"
	"unigo/internal/config"
	"unigo/internal/engine"
	"unigo/internal/game"
	"unigo/internal/logging"
	"unigo/internal/physics"
	"unigo/internal/scheduler"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	frames := flag.Int("frames", 300, "frames to simulate per run")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	cfg := config.Default()
	cfg.Log.Level = "warn"
	logger := logging.New(cfg.Log, os.Stderr)

	for _, count := range []int{50, 100, 200, 400, 800} {
		run(cfg, logger, count, *frames, *seed)
	}
}

func run(cfg config.Config, logger *slog.Logger, count, frames int, seed int64) {
	ctx := game.NewContext(cfg, logger)
	sched := scheduler.New(ctx, nil, nil, game.SchedulerOptions(cfg))
	rng := rand.New(rand.NewSource(seed))

	_, err := sched.CreateScene(func() (*engine.Scene, error) {
		return spawn(rng, count), nil
	})
	if err != nil {
		logger.Warn("scene build failed", "err", err)
		return
	}

	const frameDelta = 1.0 / 60
	start := time.Now()
	for i := 0; i < frames; i++ {
		sched.Step(frameDelta)
	}
	elapsed := time.Since(start)

	w := ctx.Physics.(*physics.World)
	st := sched.Stats()
	fmt.Printf("%4d bodies: %v/frame, %d contacts at end\n", count, elapsed/time.Duration(frames), w.ContactCount())
	for _, p := range st.Phases {
		if p.ExecutionCount == 0 {
			continue
		}
		fmt.Printf("    %-12s avg %-10v max %v\n", p.Phase, p.AvgDuration, p.MaxDuration)
	}
	ctx.Scenes.Shutdown()
}

// spawn scatters spheres and boxes above a static floor. The spawn volume
// grows with count to keep density reasonable.
func spawn(rng *rand.Rand, count int) *engine.Scene {
	floor := engine.NewGameObject("Floor", physics.NewBoxCollider(rl.Vector3{X: 200, Y: 1, Z: 200}))
	floor.Transform.Position = rl.Vector3{Y: -0.5}
	scene := engine.NewScene("Stress", floor)

	spawnSize := float32(20.0) + float32(count)/20.0
	for i := 0; i < count; i++ {
		var collider engine.Component
		if i%2 == 0 {
			collider = physics.NewSphereCollider(0.5 + rng.Float32()*0.5)
		} else {
			collider = physics.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
		}
		rb := physics.NewRigidbody()
		rb.Bounciness = rng.Float32() * 0.5
		g := engine.NewGameObject(fmt.Sprintf("Body_%d", i), collider, rb)
		g.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: 1 + rng.Float32()*spawnSize,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		scene.Add(g)
	}
	return scene
}

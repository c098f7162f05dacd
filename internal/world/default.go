package world

import (
	"unigo/internal/components"
	"unigo/internal/engine"
	"unigo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween/ease"
)

// DefaultScene is shown when no scene file is configured: a floor, a
// player cube driven by WASD, a chase camera and a few animated props.
func DefaultScene() (*engine.Scene, error) {
	floor := engine.NewGameObject("Floor",
		components.NewMeshRenderer(components.MeshPlane, rl.LightGray, rl.Vector3{X: 30, Z: 30}),
		physics.NewBoxCollider(rl.Vector3{X: 30, Y: 0.2, Z: 30}),
	)
	floor.Transform.Position = rl.Vector3{Y: -0.1}

	body := physics.NewRigidbody()
	body.Bounciness = 0.2
	player := engine.NewGameObject("Player",
		components.NewMeshRenderer(components.MeshCube, rl.Orange, rl.Vector3{X: 1, Y: 1, Z: 1}),
		physics.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}),
		body,
		&components.KeyMover{Speed: 5},
	)
	player.Tags = []string{"player"}
	player.Transform.Position = rl.Vector3{Y: 3}

	cam := components.NewCamera()
	cam.IsMain = true
	follow := &components.Follow{Offset: rl.Vector3{Y: 5, Z: 10}, Smoothing: 4, LookAt: true}
	follow.Target.Set(player)
	camera := engine.NewGameObject("Main Camera", cam, follow)
	camera.Transform.Position = rl.Vector3{Y: 5, Z: 10}

	sun := engine.NewGameObject("Sun", components.NewDirectionalLight())

	spinner := engine.NewGameObject("Spinner",
		components.NewMeshRenderer(components.MeshCube, rl.Purple, rl.Vector3{X: 1, Y: 1, Z: 1}),
		&components.Rotator{Axis: rl.Vector3{X: 0.3, Y: 1}, Speed: 60},
		engine.NewGameObject("Satellite",
			components.NewMeshRenderer(components.MeshSphere, rl.Gold, rl.Vector3{X: 0.25}),
		),
	)
	spinner.Transform.Position = rl.Vector3{X: -4, Y: 1.5}
	spinner.Children()[0].Transform.Position = rl.Vector3{X: 1.5}

	moon := engine.NewGameObject("Moon",
		components.NewMeshRenderer(components.MeshSphere, rl.SkyBlue, rl.Vector3{X: 0.5}),
		&components.Orbit{Radius: 3, Speed: 0.8, Bob: 0.5},
	)
	moon.Transform.Position = rl.Vector3{X: 4, Y: 2}

	lift := components.NewTween(rl.Vector3{Z: -6, Y: 3}, 2, ease.InOutSine)
	lift.Mode = components.TweenPingPong
	platform := engine.NewGameObject("Platform",
		components.NewMeshRenderer(components.MeshCube, rl.DarkGreen, rl.Vector3{X: 2, Y: 0.3, Z: 2}),
		lift,
	)
	platform.Transform.Position = rl.Vector3{Z: -6, Y: 0.5}

	zone := physics.NewBoxCollider(rl.Vector3{X: 3, Y: 2, Z: 3})
	zone.Trigger = true
	pad := engine.NewGameObject("Pad",
		components.NewMeshRenderer(components.MeshCube, rl.Fade(rl.Lime, 0.4), rl.Vector3{X: 3, Y: 0.05, Z: 3}),
		zone,
		&components.HitFlash{Color: rl.Red},
	)
	pad.Transform.Position = rl.Vector3{X: 5, Z: 4}

	return engine.NewScene("Default", floor, player, camera, sun, spinner, moon, platform, pad), nil
}

package game

import (
	"unigo/internal/engine"
	"unigo/internal/scheduler"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Device draws through raylib's immediate mode. Each frame is bracketed by
// Clear and Present; the scheduler opens one camera pass in between.
type Device struct {
	Overlay *Overlay // nil hides the debug overlay

	lights []engine.LightData
}

func (d *Device) Clear(color rl.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(color)
}

func (d *Device) BeginCamera(cam rl.Camera3D, lights []engine.LightData) {
	d.lights = append(d.lights[:0], lights...)
	rl.BeginMode3D(cam)
	if d.Overlay != nil && d.Overlay.Visible {
		d.drawLightGizmos(cam)
	}
}

// drawLightGizmos draws each light's direction as a ray ending at the
// camera target.
func (d *Device) drawLightGizmos(cam rl.Camera3D) {
	for _, l := range d.lights {
		from := rl.Vector3Subtract(cam.Target, rl.Vector3Scale(l.Direction, 3))
		rl.DrawLine3D(from, cam.Target, l.Color)
		rl.DrawSphere(from, 0.1, l.Color)
	}
}

func (d *Device) EndCamera() {
	rl.EndMode3D()
}

func (d *Device) Present() {
	if d.Overlay != nil {
		d.Overlay.Draw(len(d.lights))
	}
	rl.EndDrawing()
}

var _ scheduler.Device = (*Device)(nil)

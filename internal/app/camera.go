package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/segplot/pkg/geometry"
)

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// updateCamera copies the orbit camera into the raylib camera
func (d *raylibDisplay) updateCamera() {
	orbit := d.Camera.orbit
	d.Camera.camera.Position = toRaylib(orbit.Position)
	d.Camera.camera.Target = toRaylib(orbit.Target)
	d.Camera.camera.Up = toRaylib(orbit.Up)
}

// handleInput processes mouse and keyboard input
func (d *raylibDisplay) handleInput() {
	orbit := d.Camera.orbit

	if rl.IsKeyPressed(rl.KeyHome) {
		orbit.Reset()
	}

	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	panning := (rl.IsMouseButtonDown(rl.MouseLeftButton) && shiftPressed) || rl.IsMouseButtonDown(rl.MouseMiddleButton)

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		if panning {
			orbit.Pan(float64(delta.X), float64(delta.Y))
		} else if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			orbit.Rotate(float64(delta.Y)*0.01, float64(-delta.X)*0.01)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		orbit.Zoom(-float64(wheel) * 0.05)
	}
}

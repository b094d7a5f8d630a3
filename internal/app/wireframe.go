package app

import (
	"fmt"
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func toRaylibColor(c color.Color) rl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

// ShowAndRun opens the window and renders until it is closed
func (d *raylibDisplay) ShowAndRun() {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(d.opts.width, d.opts.height, d.opts.title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	d.Camera.camera = rl.Camera3D{
		Fovy:       float32(d.Camera.orbit.FOV * 180 / math.Pi),
		Projection: rl.CameraPerspective,
	}

	background := toRaylibColor(d.opts.style.Background)

	for !rl.WindowShouldClose() {
		d.applyPendingFigure()
		d.handleInput()
		d.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(background)

		rl.BeginMode3D(d.Camera.camera)
		d.drawWireframe()
		rl.EndMode3D()

		// Markers are flat glyphs, drawn in screen space after 3D mode
		d.drawMarkers()

		if d.opts.showInfo {
			d.drawInfo()
		}

		rl.EndDrawing()
	}

	d.logger.Debug("window closed")
}

// drawWireframe draws the axes box and one 3D line per segment
func (d *raylibDisplay) drawWireframe() {
	fig := d.Figure.figure

	if d.opts.style.ShowAxes && !fig.Bounds().IsEmpty() {
		bounds := fig.Bounds()
		rl.DrawBoundingBox(rl.BoundingBox{
			Min: toRaylib(bounds.Min),
			Max: toRaylib(bounds.Max),
		}, toRaylibColor(d.opts.style.AxesColor))
	}

	for _, line := range fig.Lines() {
		rl.DrawLine3D(toRaylib(line.Segment.P0), toRaylib(line.Segment.P1), toRaylibColor(line.Color))
	}
}

// drawMarkers draws a star (pentagram) at each marker's projected position
func (d *raylibDisplay) drawMarkers() {
	radius := float64(d.opts.style.MarkerSize) / 2

	for _, m := range d.Figure.figure.Markers() {
		center := rl.GetWorldToScreen(toRaylib(m.Position), d.Camera.camera)
		col := toRaylibColor(m.Color)

		var tips [5]rl.Vector2
		for i := range tips {
			angle := -math.Pi/2 + float64(i)*2*math.Pi/5
			tips[i] = rl.Vector2{
				X: center.X + float32(radius*math.Cos(angle)),
				Y: center.Y + float32(radius*math.Sin(angle)),
			}
		}
		for i := range tips {
			rl.DrawLineEx(tips[i], tips[(i+2)%len(tips)], 1.5, col)
		}
	}
}

// drawInfo draws the segment count and controls in the top-left corner
func (d *raylibDisplay) drawInfo() {
	textColor := rl.NewColor(90, 90, 90, 255)
	rl.DrawText(fmt.Sprintf("Segments: %d", len(d.Figure.figure.Lines())), 10, 10, 18, textColor)
	rl.DrawText("Drag: rotate  Shift+drag: pan  Wheel: zoom  Home: reset", 10, 32, 14, textColor)
}

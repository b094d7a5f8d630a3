package app

import (
	"log/slog"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/segplot/pkg/plot"
	"github.com/philipparndt/segplot/pkg/viewer"
)

// raylibOptions configures the raylib window
type raylibOptions struct {
	title    string
	width    int32
	height   int32
	showInfo bool
	style    viewer.Style
}

// CameraState holds the orbit camera and its raylib counterpart
type CameraState struct {
	orbit  *viewer.Camera
	camera rl.Camera3D
}

// FigureState holds the figure on screen and the one waiting to replace it
type FigureState struct {
	figure  *plot.Figure
	mu      sync.Mutex
	pending *plot.Figure // set by reloads, applied on the render goroutine
}

// raylibDisplay shows a figure in a raylib window
type raylibDisplay struct {
	opts   raylibOptions
	logger *slog.Logger
	Camera CameraState
	Figure FigureState
}

func newRaylibDisplay(fig *plot.Figure, opts raylibOptions, logger *slog.Logger) *raylibDisplay {
	d := &raylibDisplay{
		opts:   opts,
		logger: logger,
		Camera: CameraState{orbit: viewer.NewCamera(fig.Bounds())},
	}
	d.Figure.figure = fig
	return d
}

// Update queues fig; the render loop picks it up on the next frame
func (d *raylibDisplay) Update(fig *plot.Figure) {
	d.Figure.mu.Lock()
	defer d.Figure.mu.Unlock()
	d.Figure.pending = fig
}

// applyPendingFigure swaps in a reloaded figure (must be called on the render goroutine)
func (d *raylibDisplay) applyPendingFigure() {
	d.Figure.mu.Lock()
	fig := d.Figure.pending
	d.Figure.pending = nil
	d.Figure.mu.Unlock()

	if fig == nil {
		return
	}

	// Keep the view angles, reframe on the new data
	orbit := d.Camera.orbit
	rotX, rotY := orbit.RotationX, orbit.RotationY
	orbit.Frame(fig.Bounds())
	orbit.RotationX, orbit.RotationY = rotX, rotY
	orbit.UpdatePosition()

	d.Figure.figure = fig
}

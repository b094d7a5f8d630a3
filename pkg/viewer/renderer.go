package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/segplot/pkg/geometry"
	"github.com/philipparndt/segplot/pkg/plot"
)

// Style controls how a figure is drawn
type Style struct {
	Background color.Color
	AxesColor  color.Color
	LineWidth  float32
	MarkerSize float32
	ShowAxes   bool
}

// DefaultStyle returns the style used when none is configured
func DefaultStyle() Style {
	return Style{
		Background: color.White,
		AxesColor:  color.NRGBA{R: 176, G: 176, B: 176, A: 255},
		LineWidth:  1.5,
		MarkerSize: 10,
		ShowAxes:   true,
	}
}

// boxEdges indexes geometry.BoundingBox.Corners
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// FigureRenderer draws a figure in 3D and lets the user orbit around it
type FigureRenderer struct {
	widget.BaseWidget
	figure  *plot.Figure
	camera  *Camera
	style   Style
	objects []fyne.CanvasObject
	width   float64
	height  float64
}

// NewFigureRenderer creates a renderer for fig
func NewFigureRenderer(fig *plot.Figure, style Style) *FigureRenderer {
	r := &FigureRenderer{
		figure: fig,
		camera: NewCamera(fig.Bounds()),
		style:  style,
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetFigure replaces the figure and keeps the current view angles.
// Must be called on the fyne main goroutine.
func (r *FigureRenderer) SetFigure(fig *plot.Figure) {
	rotX, rotY := r.camera.RotationX, r.camera.RotationY
	r.figure = fig
	r.camera.Frame(fig.Bounds())
	r.camera.RotationX, r.camera.RotationY = rotX, rotY
	r.camera.UpdatePosition()
	r.Render(r.width, r.height)
}

// CreateRenderer creates the renderer for the widget
func (r *FigureRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &figureWidgetRenderer{renderer: r}
}

// Render rebuilds the scene for the given size
func (r *FigureRenderer) Render(width, height float64) {
	r.width = width
	r.height = height
	r.objects = buildScene(r.figure, r.camera, r.style, width, height)
	r.Refresh()
}

// buildScene projects the figure into canvas objects: background, axes box, lines, markers
func buildScene(fig *plot.Figure, cam *Camera, style Style, width, height float64) []fyne.CanvasObject {
	if width <= 0 || height <= 0 {
		return nil
	}

	bg := canvas.NewRectangle(style.Background)
	bg.Resize(fyne.NewSize(float32(width), float32(height)))
	objects := []fyne.CanvasObject{bg}

	project := func(p geometry.Vector3) fyne.Position {
		x, y, _ := cam.Project(p, width, height)
		return fyne.NewPos(float32(x), float32(y))
	}

	if style.ShowAxes && !fig.Bounds().IsEmpty() {
		corners := fig.Bounds().Corners()
		for _, e := range boxEdges {
			objects = append(objects, newLine(project(corners[e[0]]), project(corners[e[1]]), style.AxesColor, 1))
		}
	}

	for _, l := range fig.Lines() {
		objects = append(objects, newLine(project(l.Segment.P0), project(l.Segment.P1), l.Color, style.LineWidth))
	}

	for _, m := range fig.Markers() {
		objects = append(objects, markerStrokes(project(m.Position), m, style)...)
	}

	return objects
}

func newLine(p1, p2 fyne.Position, col color.Color, width float32) *canvas.Line {
	line := canvas.NewLine(col)
	line.StrokeWidth = width
	line.Position1 = p1
	line.Position2 = p2
	return line
}

// markerStrokes draws a star marker centered on pos as a pentagram
func markerStrokes(pos fyne.Position, m plot.Point, style Style) []fyne.CanvasObject {
	radius := float64(style.MarkerSize) / 2

	var tips [5]fyne.Position
	for i := range tips {
		angle := -math.Pi/2 + float64(i)*2*math.Pi/5
		tips[i] = fyne.NewPos(
			pos.X+float32(radius*math.Cos(angle)),
			pos.Y+float32(radius*math.Sin(angle)),
		)
	}

	strokes := make([]fyne.CanvasObject, 0, len(tips))
	for i := range tips {
		strokes = append(strokes, newLine(tips[i], tips[(i+2)%len(tips)], m.Color, 1.5))
	}
	return strokes
}

// Dragged handles mouse drag events for rotation
func (r *FigureRenderer) Dragged(event *fyne.DragEvent) {
	r.camera.Rotate(float64(event.Dragged.DY)*0.01, float64(-event.Dragged.DX)*0.01)
	r.Render(r.width, r.height)
}

// DragEnd handles the end of a drag event
func (r *FigureRenderer) DragEnd() {}

// Scrolled handles scroll events for zooming
func (r *FigureRenderer) Scrolled(event *fyne.ScrollEvent) {
	r.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	r.Render(r.width, r.height)
}

// DoubleTapped restores the initial view
func (r *FigureRenderer) DoubleTapped(*fyne.PointEvent) {
	r.camera.Reset()
	r.Render(r.width, r.height)
}

// figureWidgetRenderer implements fyne.WidgetRenderer
type figureWidgetRenderer struct {
	renderer *FigureRenderer
	objects  []fyne.CanvasObject
}

func (m *figureWidgetRenderer) Layout(size fyne.Size) {
	m.renderer.Render(float64(size.Width), float64(size.Height))
}

func (m *figureWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *figureWidgetRenderer) Refresh() {
	m.objects = m.renderer.objects
	canvas.Refresh(m.renderer)
}

func (m *figureWidgetRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *figureWidgetRenderer) Destroy() {}

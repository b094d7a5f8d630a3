package viewer

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/segplot/pkg/analysis"
	"github.com/philipparndt/segplot/pkg/plot"
)

const appID = "io.github.philipparndt.segplot"

// Options configures the plot window
type Options struct {
	Title    string
	Width    float32
	Height   float32
	ShowInfo bool
	Style    Style
}

// Window is the interactive plot window
type Window struct {
	app      fyne.App
	window   fyne.Window
	renderer *FigureRenderer
	info     *widget.Label
}

// NewWindow creates the application and a window showing fig
func NewWindow(fig *plot.Figure, opts Options) *Window {
	a := app.NewWithID(appID)
	w := a.NewWindow(opts.Title)

	win := &Window{
		app:      a,
		window:   w,
		renderer: NewFigureRenderer(fig, opts.Style),
		info:     widget.NewLabel(summary(fig)),
	}

	var content fyne.CanvasObject = win.renderer
	if opts.ShowInfo {
		instructions := widget.NewLabel(
			"Drag to rotate\n" +
				"Scroll to zoom\n" +
				"Double click to reset the view",
		)
		panel := container.NewVBox(
			widget.NewLabel("Figure:"),
			widget.NewSeparator(),
			win.info,
			widget.NewSeparator(),
			instructions,
		)
		scroll := container.NewVScroll(panel)
		scroll.SetMinSize(fyne.NewSize(240, 0))
		content = container.NewBorder(nil, nil, nil, scroll, win.renderer)
	}

	w.SetContent(content)
	w.Resize(fyne.NewSize(opts.Width, opts.Height))
	return win
}

// Update swaps in a new figure. Safe to call from any goroutine.
func (w *Window) Update(fig *plot.Figure) {
	fyne.Do(func() {
		w.renderer.SetFigure(fig)
		w.info.SetText(summary(fig))
	})
}

// ShowAndRun shows the window and blocks until it is closed
func (w *Window) ShowAndRun() {
	w.window.ShowAndRun()
}

func summary(fig *plot.Figure) string {
	result := analysis.AnalyzeFigure(fig)
	if result.SegmentCount == 0 {
		return "Segments: 0"
	}
	return fmt.Sprintf(
		"Segments: %d\nTotal length: %.3f\n\nDimensions:\n  X: %.3f\n  Y: %.3f\n  Z: %.3f",
		result.SegmentCount,
		result.TotalLength,
		result.Dimensions.X,
		result.Dimensions.Y,
		result.Dimensions.Z,
	)
}

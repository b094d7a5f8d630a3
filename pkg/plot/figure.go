package plot

import (
	"image/color"

	"github.com/philipparndt/segplot/pkg/geometry"
)

// Palette is the default colour cycle (matplotlib "tab10")
var Palette = []color.NRGBA{
	{31, 119, 180, 255},
	{255, 127, 14, 255},
	{44, 160, 44, 255},
	{214, 39, 40, 255},
	{148, 103, 189, 255},
	{140, 86, 75, 255},
	{227, 119, 194, 255},
	{127, 127, 127, 255},
	{188, 189, 34, 255},
	{23, 190, 207, 255},
}

// Line is a recorded Line3D call
type Line struct {
	Segment geometry.Segment
	Color   color.NRGBA
}

// Point is a recorded Scatter call
type Point struct {
	Position geometry.Vector3
	Marker   Marker
	Color    color.NRGBA
}

// Figure accumulates draw calls until it is displayed.
// Lines and markers take colours from independent cycles.
type Figure struct {
	lines   []Line
	markers []Point
	bounds  geometry.BoundingBox
}

// NewFigure creates an empty figure
func NewFigure() *Figure {
	return &Figure{bounds: geometry.NewBoundingBox()}
}

// Line3D implements Canvas
func (f *Figure) Line3D(p0, p1 geometry.Vector3) {
	f.lines = append(f.lines, Line{
		Segment: geometry.NewSegment(p0, p1),
		Color:   Palette[len(f.lines)%len(Palette)],
	})
	f.bounds.Extend(p0)
	f.bounds.Extend(p1)
}

// Scatter implements Canvas
func (f *Figure) Scatter(p geometry.Vector3, marker Marker) {
	f.markers = append(f.markers, Point{
		Position: p,
		Marker:   marker,
		Color:    Palette[len(f.markers)%len(Palette)],
	})
	f.bounds.Extend(p)
}

// Lines returns the recorded lines in draw order
func (f *Figure) Lines() []Line {
	return f.lines
}

// Markers returns the recorded markers in draw order
func (f *Figure) Markers() []Point {
	return f.markers
}

// Bounds returns the box around everything drawn so far
func (f *Figure) Bounds() geometry.BoundingBox {
	return f.bounds
}

// IsEmpty reports whether nothing has been drawn
func (f *Figure) IsEmpty() bool {
	return len(f.lines) == 0 && len(f.markers) == 0
}

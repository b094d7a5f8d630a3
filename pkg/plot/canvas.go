package plot

import (
	"github.com/philipparndt/segplot/pkg/geometry"
)

// Marker is the glyph drawn by a scatter call
type Marker int

// MarkerStar is a five-pointed star
const MarkerStar Marker = iota

func (m Marker) String() string {
	switch m {
	case MarkerStar:
		return "star"
	default:
		return "unknown"
	}
}

// Canvas receives draw calls in plot space
type Canvas interface {
	Line3D(p0, p1 geometry.Vector3)
	Scatter(p geometry.Vector3, marker Marker)
}

// Plot draws one segment: a line between both endpoints and a star at the start point.
// The end point gets no marker.
func Plot(c Canvas, s geometry.Segment) {
	c.Line3D(s.P0, s.P1)
	c.Scatter(s.P0, MarkerStar)
}

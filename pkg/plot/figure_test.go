package plot

import (
	"testing"

	"github.com/philipparndt/segplot/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCanvas struct {
	calls []string
}

func (r *recordingCanvas) Line3D(p0, p1 geometry.Vector3) {
	r.calls = append(r.calls, "line "+p0.String()+" "+p1.String())
}

func (r *recordingCanvas) Scatter(p geometry.Vector3, m Marker) {
	r.calls = append(r.calls, m.String()+" "+p.String())
}

func TestPlotDrawsLineThenStartMarker(t *testing.T) {
	c := &recordingCanvas{}
	Plot(c, geometry.NewSegment(geometry.NewVector3(1, 2, 3), geometry.NewVector3(4, 5, 6)))

	assert.Equal(t, []string{
		"line (1, 2, 3) (4, 5, 6)",
		"star (1, 2, 3)",
	}, c.calls)
}

func TestFigureRecordsDrawCalls(t *testing.T) {
	fig := NewFigure()
	require.True(t, fig.IsEmpty())

	Plot(fig, geometry.NewSegment(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1, 1)))
	Plot(fig, geometry.NewSegment(geometry.NewVector3(2, 2, 2), geometry.NewVector3(3, 3, 3)))

	require.Len(t, fig.Lines(), 2)
	require.Len(t, fig.Markers(), 2)
	assert.False(t, fig.IsEmpty())

	assert.Equal(t, geometry.NewVector3(1, 1, 1), fig.Lines()[0].Segment.P1)
	assert.Equal(t, geometry.NewVector3(2, 2, 2), fig.Markers()[1].Position)
	assert.Equal(t, MarkerStar, fig.Markers()[1].Marker)

	assert.Equal(t, geometry.NewVector3(0, 0, 0), fig.Bounds().Min)
	assert.Equal(t, geometry.NewVector3(3, 3, 3), fig.Bounds().Max)
}

func TestFigureColourCycle(t *testing.T) {
	fig := NewFigure()
	for i := 0; i < len(Palette)+1; i++ {
		fig.Line3D(geometry.Vector3{}, geometry.NewVector3(float64(i), 0, 0))
	}
	fig.Scatter(geometry.Vector3{}, MarkerStar)

	lines := fig.Lines()
	assert.Equal(t, Palette[0], lines[0].Color)
	assert.Equal(t, Palette[1], lines[1].Color)
	assert.Equal(t, Palette[0], lines[len(Palette)].Color, "cycle wraps around")
	assert.Equal(t, Palette[0], fig.Markers()[0].Color, "markers cycle independently")
}

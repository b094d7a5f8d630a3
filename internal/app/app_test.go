package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/segplot/internal/config"
	"github.com/philipparndt/segplot/pkg/geometry"
	"github.com/philipparndt/segplot/pkg/plot"
	"github.com/philipparndt/segplot/pkg/segments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func writeSegments(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "segments.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

type fakeDisplay struct {
	updates chan *plot.Figure
}

func (f *fakeDisplay) Update(fig *plot.Figure) { f.updates <- fig }
func (f *fakeDisplay) ShowAndRun()             {}

func TestLoadFigure(t *testing.T) {
	fig, err := loadFigure(writeSegments(t, "0,0,0,1,1,1\n2,2,2,3,3,3\n"), discard)

	require.NoError(t, err)
	assert.Len(t, fig.Lines(), 2)
	assert.Len(t, fig.Markers(), 2)
}

func TestLoadFigureErrors(t *testing.T) {
	_, err := loadFigure(writeSegments(t, "1,2,3\n"), discard)
	assert.ErrorIs(t, err, segments.ErrTooFewFields)

	_, err = loadFigure(filepath.Join(t.TempDir(), "missing.txt"), discard)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunFailsBeforeDisplay(t *testing.T) {
	cfg := config.DefaultConfig()

	err := Run(context.Background(), writeSegments(t, "a,b,c,d,e,f\n"), cfg)
	assert.Error(t, err)

	err = Run(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), cfg)
	assert.Error(t, err)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Backend = "opengl"

	err := Run(context.Background(), writeSegments(t, ""), cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestWatchFigureReloads(t *testing.T) {
	path := writeSegments(t, "0,0,0,1,1,1\n")
	d := &fakeDisplay{updates: make(chan *plot.Figure, 4)}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fw, err := watchFigure(ctx, path, 20*time.Millisecond, d, discard)
	require.NoError(t, err)
	defer fw.Close()

	// A broken file is skipped, the next good one is shown
	require.NoError(t, os.WriteFile(path, []byte("broken\n"), 0o644))
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("0,0,0,1,1,1\n2,2,2,3,3,3\n"), 0o644))

	select {
	case fig := <-d.updates:
		assert.Len(t, fig.Lines(), 2)
	case <-time.After(5 * time.Second):
		t.Fatal("figure was not reloaded")
	}
}

func TestRaylibDisplayAppliesPendingFigure(t *testing.T) {
	first := plot.NewFigure()
	plot.Plot(first, geometry.NewSegment(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 1, 1)))
	d := newRaylibDisplay(first, raylibOptions{}, discard)
	d.Camera.orbit.Rotate(0.2, 0.4)
	rotX, rotY := d.Camera.orbit.RotationX, d.Camera.orbit.RotationY

	d.applyPendingFigure()
	assert.Same(t, first, d.Figure.figure, "nothing pending")

	second := plot.NewFigure()
	plot.Plot(second, geometry.NewSegment(geometry.NewVector3(10, 10, 10), geometry.NewVector3(12, 12, 12)))
	d.Update(second)
	d.applyPendingFigure()

	assert.Same(t, second, d.Figure.figure)
	assert.Nil(t, d.Figure.pending)
	assert.Equal(t, geometry.NewVector3(11, 11, 11), d.Camera.orbit.Target)
	assert.Equal(t, rotX, d.Camera.orbit.RotationX)
	assert.Equal(t, rotY, d.Camera.orbit.RotationY)
}

func TestNewDisplayRaylib(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Backend = config.BackendRaylib
	cfg.Background = "#000000"

	d, err := newDisplay(plot.NewFigure(), "/tmp/segments.txt", cfg, discard)

	require.NoError(t, err)
	rd, ok := d.(*raylibDisplay)
	require.True(t, ok)
	assert.Equal(t, "segplot - segments.txt", rd.opts.title)
	assert.Equal(t, int32(1200), rd.opts.width)
	assert.Equal(t, float32(1.5), rd.opts.style.LineWidth)
}

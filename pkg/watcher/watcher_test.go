package watcher

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T) *FileWatcher {
	t.Helper()
	fw, err := NewFileWatcher(50*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { fw.Close() })
	return fw
}

func TestWatchTriggersDebouncedCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "segments.txt")
	require.NoError(t, os.WriteFile(path, []byte("0,0,0,1,1,1\n"), 0o644))

	fw := newTestWatcher(t)
	changed := make(chan string, 4)
	var calls atomic.Int32
	require.NoError(t, fw.Watch([]string{path}, func(p string) {
		calls.Add(1)
		changed <- p
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("1,1,1,2,2,2\n"), 0o644))
	}

	select {
	case p := <-changed:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "rapid writes are coalesced")
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "segments.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw := newTestWatcher(t)
	var calls atomic.Int32
	require.NoError(t, fw.Watch([]string{path}, func(string) { calls.Add(1) }))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	time.Sleep(300 * time.Millisecond)

	assert.Zero(t, calls.Load())
}

func TestWatchMissingDirectory(t *testing.T) {
	fw := newTestWatcher(t)

	err := fw.Watch([]string{filepath.Join(t.TempDir(), "nope", "segments.txt")}, func(string) {})

	assert.Error(t, err)
}

func TestSlowCallbackRunsSerially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segments.txt")
	abs, err := filepath.Abs(path)
	require.NoError(t, err)

	fw := newTestWatcher(t)
	var calls, active, maxActive atomic.Int32
	require.NoError(t, fw.Watch([]string{path}, func(string) {
		n := active.Add(1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(150 * time.Millisecond)
		active.Add(-1)
		calls.Add(1)
	}))

	// First reload starts at ~50ms and runs until ~200ms; both later changes
	// fire while it is in flight and collapse into one follow-up reload.
	fw.handleFileChange(abs)
	time.Sleep(80 * time.Millisecond)
	fw.handleFileChange(abs)
	time.Sleep(60 * time.Millisecond)
	fw.handleFileChange(abs)

	require.Eventually(t, func() bool { return calls.Load() == 2 }, 5*time.Second, 10*time.Millisecond)
	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, int32(1), maxActive.Load(), "reloads of one file never overlap")
}

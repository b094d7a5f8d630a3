package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/philipparndt/segplot/pkg/plot"
	"github.com/philipparndt/segplot/pkg/segments"
	"github.com/philipparndt/segplot/pkg/watcher"
)

// loadFigure plots every segment of a file onto a new figure
func loadFigure(filePath string, logger *slog.Logger) (*plot.Figure, error) {
	start := time.Now()
	fig := plot.NewFigure()

	if err := segments.Load(filePath, fig); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filePath, err)
	}

	logger.Debug("segments loaded",
		"file", filePath,
		"segments", len(fig.Lines()),
		"elapsed", time.Since(start))
	return fig, nil
}

// watchFigure reloads the file into d whenever it changes.
// A file that fails to parse is reported and the previous figure stays on screen.
func watchFigure(ctx context.Context, sourceFile string, debounce time.Duration, d display, logger *slog.Logger) (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(debounce, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	reload := func(changedFile string) {
		fig, err := loadFigure(changedFile, logger)
		if err != nil {
			logger.Error("reload failed, keeping previous plot", "error", err)
			return
		}
		logger.Info("plot reloaded", "file", changedFile, "segments", len(fig.Lines()))
		d.Update(fig)
	}

	if err := fw.Watch([]string{sourceFile}, reload); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start(ctx)
	logger.Info("watching file for changes", "file", sourceFile)
	return fw, nil
}

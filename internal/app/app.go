package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/philipparndt/segplot/internal/config"
	"github.com/philipparndt/segplot/internal/logging"
	"github.com/philipparndt/segplot/pkg/plot"
	"github.com/philipparndt/segplot/pkg/viewer"
)

// display is a window that shows a figure until the user closes it
type display interface {
	// Update replaces the figure; safe to call from any goroutine
	Update(fig *plot.Figure)
	// ShowAndRun blocks until the window is closed
	ShowAndRun()
}

// Run loads the segment file and shows it. Nothing is displayed when loading fails.
func Run(ctx context.Context, sourceFile string, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	fig, err := loadFigure(sourceFile, logger)
	if err != nil {
		return err
	}

	d, err := newDisplay(fig, sourceFile, cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Watch {
		fw, err := watchFigure(ctx, sourceFile, cfg.WatchDebounce, d, logger)
		if err != nil {
			logger.Warn("auto-reload disabled", "error", err)
		} else {
			defer fw.Close()
		}
	}

	logger.Debug("showing plot", "backend", cfg.Backend)
	d.ShowAndRun()
	return nil
}

func newDisplay(fig *plot.Figure, sourceFile string, cfg *config.Config, logger *slog.Logger) (display, error) {
	background, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}

	title := cfg.Title
	if title == "" {
		title = "segplot - " + filepath.Base(sourceFile)
	}

	style := viewer.DefaultStyle()
	style.Background = background
	style.LineWidth = float32(cfg.LineWidth)
	style.MarkerSize = float32(cfg.MarkerSize)
	style.ShowAxes = cfg.ShowAxes

	switch cfg.Backend {
	case config.BackendRaylib:
		return newRaylibDisplay(fig, raylibOptions{
			title:    title,
			width:    int32(cfg.Width),
			height:   int32(cfg.Height),
			showInfo: cfg.ShowInfo,
			style:    style,
		}, logger), nil
	default:
		return viewer.NewWindow(fig, viewer.Options{
			Title:    title,
			Width:    float32(cfg.Width),
			Height:   float32(cfg.Height),
			ShowInfo: cfg.ShowInfo,
			Style:    style,
		}), nil
	}
}

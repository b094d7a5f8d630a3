package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/segplot/internal/app"
	"github.com/philipparndt/segplot/internal/config"
	"github.com/philipparndt/segplot/version"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	backend    string
	watch      bool
	logLevel   string
}

// NewRootCmd builds the segplot command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "segplot <file>",
		Short: "3D line segment plotter",
		Long: `segplot draws the 3D line segments listed in a text file and shows them in an
interactive window. Each line of the file holds one segment as six comma-separated
numbers: x0,y0,z0,x1,y1,z1. The start point of every segment is marked with a star.`,
		Args:          cobra.ExactArgs(1),
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), args[0], cfg)
		},
	}

	rootCmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "TOML file with viewer settings")
	rootCmd.Flags().StringVarP(&opts.backend, "backend", "b", config.BackendFyne, "Window backend (fyne or raylib)")
	rootCmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the plot when the file changes")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newCompletionCmd(rootCmd))

	return rootCmd
}

// resolve loads the config file and applies flags the user set explicitly
func (o *rootOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = o.backend
	}
	if flags.Changed("watch") {
		cfg.Watch = o.watch
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}

	return cfg, nil
}

// Execute runs the root command
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

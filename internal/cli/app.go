// Package cli implements the ggchart command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/ggchart"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// App is the ggchart command-line application.
type App struct {
	root    *cobra.Command
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
}

// New creates the application with all subcommands.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "ggchart",
		Short: "Render cylinder and wave charts with gg",
		Long: `ggchart renders chart descriptions written in YAML to PNG images.

Examples:
  # Render a chart
  ggchart render -c chart.yaml -o chart.png

  # Show the axis ticks picked for a dataset
  ggchart ticks 19 39 68 98 112 160`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if app.verbose {
				ggchart.SetLogger(slog.New(slog.NewTextHandler(app.stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}
	app.root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Log layout decisions to stderr")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newRenderCmd(),
		app.newTicksCmd(),
	)
	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the application until it finishes or is interrupted.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the application with args instead of os.Args.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "ggchart version %s\n", Version)
		},
	}
}

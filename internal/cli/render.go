package cli

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/config"
	"github.com/gogpu/ggchart/render"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	configPath string
	output     string
	background string
}

func (a *App) newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart description to PNG",
		Long: `Render a YAML chart description to a PNG image.

Examples:
  ggchart render -c chart.yaml -o chart.png
  ggchart render -c wave.yaml -o wave.png --background "#FFFFFFFF"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			return a.render(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to the chart description")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "chart.png", "Output PNG file")
	cmd.Flags().StringVar(&opts.background, "background", "", "Background colour (#AARRGGBB); transparent when empty")

	return cmd
}

func (a *App) render(opts *renderOptions) error {
	if opts.configPath == "" {
		return errors.New("chart description path is required (-c flag)")
	}
	f, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	ops, err := chartOps(f)
	if err != nil {
		return err
	}
	icons, err := f.LoadIcons()
	if err != nil {
		return err
	}

	w, h, err := f.Size()
	if err != nil {
		return err
	}
	dc := gg.NewContext(w, h)
	if opts.background != "" {
		bg, err := ggchart.ParseColor(opts.background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		dc.ClearWithColor(bg.RGBA())
	}

	canvas, err := render.NewCanvas(dc, render.WithIcons(icons...))
	if err != nil {
		return err
	}
	if err := canvas.Draw(ops); err != nil {
		return err
	}
	if err := dc.SavePNG(opts.output); err != nil {
		return fmt.Errorf("save %s: %w", opts.output, err)
	}
	fmt.Fprintf(a.stdout, "Rendered %s chart to %s (%dx%d, %d ops)\n", f.Kind, opts.output, w, h, len(ops))
	return nil
}

func chartOps(f *config.File) ([]ggchart.Op, error) {
	switch f.Kind {
	case config.KindWave:
		w, err := f.Wave()
		if err != nil {
			return nil, err
		}
		return w.DrawOps()
	default:
		c, err := f.Cylinder()
		if err != nil {
			return nil, err
		}
		return c.DrawOps()
	}
}

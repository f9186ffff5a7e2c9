package cli

import (
	"fmt"

	"github.com/gogpu/ggchart"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

type ticksOptions struct {
	strict bool
	locale string
}

func (a *App) newTicksCmd() *cobra.Command {
	opts := &ticksOptions{}

	cmd := &cobra.Command{
		Use:   "ticks VALUE...",
		Short: "Print the axis ticks picked for a dataset",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ticks(opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on a dataset whose values are all equal")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "Format labels for a BCP 47 locale, e.g. en or de")

	return cmd
}

func (a *App) ticks(opts *ticksOptions, args []string) error {
	values := make([]float64, len(args))
	for i, s := range args {
		v, err := cast.ToFloat64E(s)
		if err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = v
	}

	var scaleOpts []ggchart.ScaleOption
	if opts.strict {
		scaleOpts = append(scaleOpts, ggchart.WithStrictRange())
	}
	if opts.locale != "" {
		tag, err := language.Parse(opts.locale)
		if err != nil {
			return fmt.Errorf("locale: %w", err)
		}
		scaleOpts = append(scaleOpts, ggchart.WithLocale(tag))
	}

	s, err := ggchart.NiceScale(values, scaleOpts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "step %v range [%v, %v]\n", s.Step, s.Range.Lower, s.Range.Upper)
	for _, t := range s.Ticks {
		fmt.Fprintf(a.stdout, "%v\t%s\n", t.Value, t.Label)
	}
	return nil
}

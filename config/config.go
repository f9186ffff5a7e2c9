// Package config reads YAML chart descriptions and turns them into ggchart
// charts.
//
// A description names the chart kind and its data:
//
//	kind: cylinder
//	width: 640
//	height: 400
//	orientation: bottom
//	colors:
//	  bar: "#FF3F51B5"
//	icons: [run.png, bike.png]
//	bars:
//	  - {value: 160, icon: 0}
//	  - {value: "112", label: "112 km", icon: 1}
//
// Numbers may be written as YAML numbers or strings. ${VAR},
// ${VAR:-default} and ${VAR:?message} references are expanded from the
// environment before parsing; any other $ is kept as written.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Chart kinds.
const (
	KindCylinder = "cylinder"
	KindWave     = "wave"
)

var (
	// ErrUnknownKind is returned for a kind other than cylinder or wave.
	ErrUnknownKind = errors.New("config: unknown chart kind")

	// ErrWrongKind is returned when a chart of one kind is built from a
	// description of another.
	ErrWrongKind = errors.New("config: wrong chart kind")

	// ErrInvalidSize is returned for a non-positive width or height.
	ErrInvalidSize = errors.New("config: invalid size")
)

// File is a parsed chart description.
type File struct {
	Kind        string   `yaml:"kind"`
	Width       any      `yaml:"width"`
	Height      any      `yaml:"height"`
	Locale      string   `yaml:"locale"`
	Strict      bool     `yaml:"strict"`
	Colors      Colors   `yaml:"colors"`
	Icons       []string `yaml:"icons"`

	// Cylinder fields.
	Orientation string `yaml:"orientation"`
	RoundedBase bool   `yaml:"rounded_base"`
	Slots       any    `yaml:"slots"`
	AlphaStep   any    `yaml:"alpha_step"`
	Bars        []Bar  `yaml:"bars"`

	// Wave fields.
	Focus       any      `yaml:"focus"`
	StrokeWidth any      `yaml:"stroke_width"`
	Series      []Series `yaml:"series"`
	XTicks      []Tick   `yaml:"x_ticks"`
	YTicks      []Tick   `yaml:"y_ticks"`

	dir string
}

// Colors holds optional hex colours; empty keeps the chart default.
type Colors struct {
	Bar      string `yaml:"bar"`
	Disabled string `yaml:"disabled"`
	Text     string `yaml:"text"`
	Line     string `yaml:"line"`
	Track    string `yaml:"track"`
}

// Bar is one cylinder bar. A missing icon means no icon.
type Bar struct {
	Value    any    `yaml:"value"`
	Label    string `yaml:"label"`
	Icon     any    `yaml:"icon"`
	Disabled bool   `yaml:"disabled"`
}

// Series is one wave curve, given either as [x, y] points or as values at
// x = 0, 1, 2...
type Series struct {
	Line   string  `yaml:"line"`
	Fill   string  `yaml:"fill"`
	Points [][]any `yaml:"points"`
	Values []any   `yaml:"values"`
}

// Tick is an explicit axis tick.
type Tick struct {
	Value any    `yaml:"value"`
	Label string `yaml:"label"`
}

// Load reads the description at path. Relative icon paths are resolved
// against the file's directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Decode parses a description from r.
func Decode(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	src, err := expandEnv(string(data))
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal([]byte(src), &f); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	f.Kind = strings.ToLower(strings.TrimSpace(f.Kind))
	switch f.Kind {
	case KindCylinder, KindWave:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}
	ggchart.Logger().Debug("config: decoded chart", "kind", f.Kind, "bars", len(f.Bars), "series", len(f.Series))
	return &f, nil
}

// Size returns the canvas size in pixels.
func (f *File) Size() (width, height int, err error) {
	if width, err = cast.ToIntE(f.Width); err != nil {
		return 0, 0, fmt.Errorf("config: width: %w", err)
	}
	if height, err = cast.ToIntE(f.Height); err != nil {
		return 0, 0, fmt.Errorf("config: height: %w", err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return width, height, nil
}

// Bounds returns the full canvas rectangle.
func (f *File) Bounds() (ggchart.Rect, error) {
	w, h, err := f.Size()
	if err != nil {
		return ggchart.Rect{}, err
	}
	return ggchart.NewRect(0, 0, float64(w), float64(h)), nil
}

func (f *File) scaleOptions() ([]ggchart.ScaleOption, error) {
	var opts []ggchart.ScaleOption
	if f.Strict {
		opts = append(opts, ggchart.WithStrictRange())
	}
	if f.Locale != "" {
		tag, err := language.Parse(f.Locale)
		if err != nil {
			return nil, fmt.Errorf("config: locale: %w", err)
		}
		opts = append(opts, ggchart.WithLocale(tag))
	}
	return opts, nil
}

// Cylinder builds the cylinder chart the file describes.
func (f *File) Cylinder() (*ggchart.CylinderChart, error) {
	if f.Kind != KindCylinder {
		return nil, fmt.Errorf("%w: %q is not %q", ErrWrongKind, f.Kind, KindCylinder)
	}
	bounds, err := f.Bounds()
	if err != nil {
		return nil, err
	}
	bars := make([]ggchart.Bar, len(f.Bars))
	for i, b := range f.Bars {
		v, err := cast.ToFloat64E(b.Value)
		if err != nil {
			return nil, fmt.Errorf("config: bars[%d].value: %w", i, err)
		}
		icon := ggchart.NoIcon
		if b.Icon != nil {
			if icon, err = cast.ToIntE(b.Icon); err != nil {
				return nil, fmt.Errorf("config: bars[%d].icon: %w", i, err)
			}
		}
		bars[i] = ggchart.Bar{Value: v, Label: b.Label, Icon: icon, Disabled: b.Disabled}
	}

	opts := []ggchart.CylinderOption{ggchart.WithRoundedBase(f.RoundedBase)}
	if f.Orientation != "" {
		o, err := ggchart.ParseOrientation(f.Orientation)
		if err != nil {
			return nil, fmt.Errorf("config: orientation: %w", err)
		}
		opts = append(opts, ggchart.WithOrientation(o))
	}
	if f.Slots != nil {
		n, err := cast.ToIntE(f.Slots)
		if err != nil {
			return nil, fmt.Errorf("config: slots: %w", err)
		}
		opts = append(opts, ggchart.WithSlots(n))
	}
	if f.AlphaStep != nil {
		step, err := cast.ToFloat64E(f.AlphaStep)
		if err != nil {
			return nil, fmt.Errorf("config: alpha_step: %w", err)
		}
		opts = append(opts, ggchart.WithAlphaStep(step))
	}

	colors := []struct {
		name string
		hex  string
		opt  func(ggchart.Color) ggchart.CylinderOption
	}{
		{"bar", f.Colors.Bar, ggchart.WithBarColor},
		{"disabled", f.Colors.Disabled, ggchart.WithDisabledColor},
		{"text", f.Colors.Text, ggchart.WithLabelColor},
		{"line", f.Colors.Line, ggchart.WithAxisColor},
		{"track", f.Colors.Track, ggchart.WithTrackColor},
	}
	for _, c := range colors {
		if c.hex == "" {
			continue
		}
		col, err := ggchart.ParseColor(c.hex)
		if err != nil {
			return nil, fmt.Errorf("config: colors.%s: %w", c.name, err)
		}
		opts = append(opts, c.opt(col))
	}

	scale, err := f.scaleOptions()
	if err != nil {
		return nil, err
	}
	if len(scale) > 0 {
		opts = append(opts, ggchart.WithScaleOptions(scale...))
	}
	return ggchart.NewCylinderChart(bounds, bars, opts...), nil
}

// Wave builds the wave chart the file describes.
func (f *File) Wave() (*ggchart.WaveChart, error) {
	if f.Kind != KindWave {
		return nil, fmt.Errorf("%w: %q is not %q", ErrWrongKind, f.Kind, KindWave)
	}
	bounds, err := f.Bounds()
	if err != nil {
		return nil, err
	}
	series := make([]ggchart.Series, len(f.Series))
	for i, s := range f.Series {
		if series[i], err = s.build(); err != nil {
			return nil, fmt.Errorf("config: series[%d].%w", i, err)
		}
	}

	var opts []ggchart.WaveOption
	if f.Focus != nil {
		idx, err := cast.ToIntE(f.Focus)
		if err != nil {
			return nil, fmt.Errorf("config: focus: %w", err)
		}
		opts = append(opts, ggchart.WithFocus(idx))
	}
	if f.StrokeWidth != nil {
		sw, err := cast.ToFloat64E(f.StrokeWidth)
		if err != nil {
			return nil, fmt.Errorf("config: stroke_width: %w", err)
		}
		opts = append(opts, ggchart.WithStrokeWidth(sw))
	}
	if f.Colors.Text != "" {
		col, err := ggchart.ParseColor(f.Colors.Text)
		if err != nil {
			return nil, fmt.Errorf("config: colors.text: %w", err)
		}
		opts = append(opts, ggchart.WithWaveTextColor(col))
	}
	if f.XTicks != nil || f.YTicks != nil {
		x, err := buildTicks("x_ticks", f.XTicks)
		if err != nil {
			return nil, err
		}
		y, err := buildTicks("y_ticks", f.YTicks)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ggchart.WithTicks(x, y))
	}
	scale, err := f.scaleOptions()
	if err != nil {
		return nil, err
	}
	if len(scale) > 0 {
		opts = append(opts, ggchart.WithWaveScaleOptions(scale...))
	}
	return ggchart.NewWaveChart(bounds, series, opts...), nil
}

func (s Series) build() (ggchart.Series, error) {
	var out ggchart.Series
	var err error
	if s.Line != "" {
		if out.LineColor, err = ggchart.ParseColor(s.Line); err != nil {
			return out, fmt.Errorf("line: %w", err)
		}
	}
	if s.Fill != "" {
		if out.FillColor, err = ggchart.ParseColor(s.Fill); err != nil {
			return out, fmt.Errorf("fill: %w", err)
		}
	}
	for j, p := range s.Points {
		if len(p) != 2 {
			return out, fmt.Errorf("points[%d]: want [x, y], got %d values", j, len(p))
		}
		x, err := cast.ToFloat64E(p[0])
		if err != nil {
			return out, fmt.Errorf("points[%d].x: %w", j, err)
		}
		y, err := cast.ToFloat64E(p[1])
		if err != nil {
			return out, fmt.Errorf("points[%d].y: %w", j, err)
		}
		out.Points = append(out.Points, gg.Pt(x, y))
	}
	for j, v := range s.Values {
		y, err := cast.ToFloat64E(v)
		if err != nil {
			return out, fmt.Errorf("values[%d]: %w", j, err)
		}
		out.Points = append(out.Points, gg.Pt(float64(len(out.Points)), y))
	}
	return out, nil
}

// buildTicks converts explicit ticks; nil stays nil so that the chart
// derives that axis.
func buildTicks(field string, ticks []Tick) ([]ggchart.Tick, error) {
	if ticks == nil {
		return nil, nil
	}
	out := make([]ggchart.Tick, len(ticks))
	for i, t := range ticks {
		v, err := cast.ToFloat64E(t.Value)
		if err != nil {
			return nil, fmt.Errorf("config: %s[%d].value: %w", field, i, err)
		}
		label := t.Label
		if label == "" {
			label = cast.ToString(t.Value)
		}
		out[i] = ggchart.Tick{Value: v, Label: label}
	}
	return out, nil
}

package ggchart

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/gogpu/gg"
)

// Cylinder chart defaults.
const (
	DefaultSlots             = 6
	DefaultThicknessRatio    = 0.053
	DefaultIconPaddingRatio  = 0.2
	DefaultLabelPaddingRatio = 0.0736
	DefaultTextRatio         = 0.5
	DefaultIconRatio         = 1.2
	DefaultAlphaStep         = 0.2
	DefaultLineWidth         = 2
)

// Default cylinder colours.
const (
	DefaultBarColor      Color = 0xFF0000FF
	DefaultDisabledColor Color = 0xFF888888
	DefaultTextColor     Color = 0xFF888888
	DefaultLineColor     Color = 0xFF888888
)

// NoIcon marks a bar without an icon.
const NoIcon = -1

// GridDash is the on/off pattern of gridlines and assist lines.
var GridDash = []float64{10, 10}

// PercentFunc maps a bar's target percent to the percent drawn now. Hosts
// use it to animate bars; slot is the bar's position after sorting.
type PercentFunc func(slot int, target float64) float64

// Bar is one value of a cylinder chart.
type Bar struct {
	Value float64
	// Label is drawn at the bar head. Empty means the formatted value.
	Label string
	// Icon indexes the renderer's icon list, or NoIcon.
	Icon     int
	Disabled bool
}

// CylinderChart is a row of pill-shaped progress bars with a value axis and
// an icon row along the base edge.
type CylinderChart struct {
	Bounds      Rect
	Orientation Orientation
	Bars        []Bar

	Slots             int
	ThicknessRatio    float64
	IconPaddingRatio  float64
	LabelPaddingRatio float64
	TextRatio         float64
	IconRatio         float64
	LineWidth         float64
	RoundedBase       bool

	Color         Color
	DisabledColor Color
	TextColor     Color
	LineColor     Color
	TrackColor    Color // zero leaves the remainder unpainted
	AlphaStep     float64

	PercentFunc  PercentFunc
	ScaleOptions []ScaleOption
}

// NewCylinderChart creates a chart with the default layout and colours.
func NewCylinderChart(bounds Rect, bars []Bar, opts ...CylinderOption) *CylinderChart {
	c := &CylinderChart{
		Bounds:            bounds,
		Orientation:       OrientBottom,
		Bars:              bars,
		Slots:             DefaultSlots,
		ThicknessRatio:    DefaultThicknessRatio,
		IconPaddingRatio:  DefaultIconPaddingRatio,
		LabelPaddingRatio: DefaultLabelPaddingRatio,
		TextRatio:         DefaultTextRatio,
		IconRatio:         DefaultIconRatio,
		LineWidth:         DefaultLineWidth,
		Color:             DefaultBarColor,
		DisabledColor:     DefaultDisabledColor,
		TextColor:         DefaultTextColor,
		LineColor:         DefaultLineColor,
		AlphaStep:         DefaultAlphaStep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CylinderLayout is the resolved geometry of a CylinderChart.
type CylinderLayout struct {
	// Plot is the area between the value axis and the icon axis.
	Plot Rect
	// Bars holds the drawn bars, sorted by value descending.
	Bars []Bar
	// BarRects is the full-length rectangle of each drawn bar.
	BarRects []Rect
	// Percents is the live percent of each drawn bar.
	Percents []float64
	// Icons is the pixel rectangle of each bar's icon.
	Icons []Rect
	// IconFractions is the icon centre as a fraction across the plot.
	IconFractions []float64

	Thickness   float64
	IconPadding float64
	TextSize    float64
	IconSize    float64
	Scale       Scale
}

func (c *CylinderChart) slots() int {
	if c.Slots <= 0 {
		return DefaultSlots
	}
	return c.Slots
}

// Layout resolves the plot area, bar rectangles, percents and value scale.
func (c *CylinderChart) Layout() (CylinderLayout, error) {
	spec, err := c.Orientation.spec()
	if err != nil {
		return CylinderLayout{}, fmt.Errorf("cylinder layout: %w", err)
	}

	values := make([]float64, len(c.Bars))
	for i, b := range c.Bars {
		values[i] = b.Value
	}
	scale, err := NiceScale(values, c.ScaleOptions...)
	if err != nil {
		return CylinderLayout{}, fmt.Errorf("cylinder layout: %w", err)
	}

	bars := slices.Clone(c.Bars)
	slices.SortStableFunc(bars, func(a, b Bar) int { return cmp.Compare(b.Value, a.Value) })
	if n := c.slots(); len(bars) > n {
		Logger().Debug("ggchart: bars beyond slot count skipped", "bars", len(bars), "slots", n)
		bars = bars[:n]
	}

	thickness := spec.thickness(c.Bounds) * c.ThicknessRatio
	iconPad := spec.length(c.Bounds) * c.IconPaddingRatio
	labelPad := spec.thickness(c.Bounds) * c.LabelPaddingRatio
	plot := c.Bounds.Inset(spec.base, iconPad).Inset(spec.label, labelPad)

	lay := CylinderLayout{
		Plot:        plot,
		Bars:        bars,
		Thickness:   thickness,
		IconPadding: iconPad,
		TextSize:    thickness * c.TextRatio,
		IconSize:    math.Min(thickness*c.IconRatio, iconPad*0.8),
		Scale:       scale,
	}

	across, _ := CrossMapper(plot, c.Orientation)
	slots := float64(c.slots())
	// Icons sit centred in the padding strip outside the base edge.
	iconAlong := plot.Edge(spec.base) - spec.sign*iconPad/2
	for i, b := range bars {
		f := (float64(i) + 0.5) / slots
		mid := across.Fraction(f)
		lay.IconFractions = append(lay.IconFractions, f)
		lay.BarRects = append(lay.BarRects, spec.band(plot, mid-thickness/2, mid+thickness/2))
		lay.Icons = append(lay.Icons, iconRect(spec.point(iconAlong, mid), lay.IconSize))
		lay.Percents = append(lay.Percents, c.percent(i, scale.Range.Fraction(b.Value)))
	}
	return lay, nil
}

func (c *CylinderChart) percent(slot int, target float64) float64 {
	if c.PercentFunc != nil {
		target = c.PercentFunc(slot, target)
	}
	return clampPercent(target)
}

// iconRect snaps a square of side size centred on p to whole pixels.
func iconRect(p gg.Point, size float64) Rect {
	left := math.Floor(p.X - size/2 + 0.5)
	top := math.Floor(p.Y - size/2 + 0.5)
	return Rect{Left: left, Top: top, Right: math.Floor(left + size), Bottom: math.Floor(top + size)}
}

// band returns the part of plot between lo and hi across the growth axis.
func (s orientSpec) band(plot Rect, lo, hi float64) Rect {
	if s.vertical {
		return Rect{Left: lo, Top: plot.Top, Right: hi, Bottom: plot.Bottom}
	}
	return Rect{Left: plot.Left, Top: lo, Right: plot.Right, Bottom: hi}
}

// DrawOps lays out the chart and returns its draw operations: axis lines,
// gridlines and tick labels, then each bar with its head label, then the
// icons.
func (c *CylinderChart) DrawOps() ([]Op, error) {
	lay, err := c.Layout()
	if err != nil {
		return nil, err
	}
	spec := orientTable[c.Orientation]
	plot := lay.Plot

	var ops []Op
	line := func(a, b gg.Point, dash []float64) {
		ops = append(ops, StrokeOp{Path: linePath(a, b), Color: c.LineColor, Width: c.LineWidth, Dash: dash})
	}

	// Icon axis along the base edge across the full bounds, value axis on
	// the label edge of the plot.
	base := plot.Edge(spec.base)
	blo, bhi := spec.cross(c.Bounds)
	line(spec.point(base, blo), spec.point(base, bhi), nil)
	labelAt := plot.Edge(spec.label)
	line(spec.point(base, labelAt), spec.point(plot.Edge(spec.far), labelAt), nil)

	values, err := NewMapper(plot, c.Orientation, lay.Scale.Range)
	if err != nil {
		return nil, err
	}
	plo, phi := spec.cross(plot)
	for _, t := range lay.Scale.Ticks {
		pos := values.Map(t.Value)
		line(spec.point(pos, plo), spec.point(pos, phi), GridDash)
		ops = append(ops, c.tickLabel(spec, plot, pos, t.Label, lay.TextSize))
	}

	for i, b := range lay.Bars {
		pp, err := BuildProgress(lay.BarRects[i], c.Orientation, lay.Percents[i], c.RoundedBase)
		if err != nil {
			return nil, err
		}
		if c.TrackColor != 0 {
			ops = append(ops, FillOp{Path: pp.Remainder, Paint: c.TrackColor})
		}
		ops = append(ops, FillOp{Path: pp.Fill, Paint: c.barColor(i, b)})
		ops = append(ops, c.headLabel(pp, lay.BarRects[i], b, lay.TextSize))
	}

	for i, b := range lay.Bars {
		if b.Icon < 0 {
			continue
		}
		ops = append(ops, IconOp{Index: b.Icon, Bounds: lay.Icons[i]})
	}
	return ops, nil
}

// barColor fades each following bar by AlphaStep. Disabled bars use
// DisabledColor unfaded.
func (c *CylinderChart) barColor(slot int, b Bar) Color {
	if b.Disabled {
		return c.DisabledColor
	}
	return Blend(c.Color, math.Max(0, 1-c.AlphaStep*float64(slot)))
}

// tickLabel places a value-axis label. Labels on the axis origin are pushed
// inside the plot instead of being centred on the tick.
func (c *CylinderChart) tickLabel(spec orientSpec, plot Rect, pos float64, text string, ts float64) TextOp {
	op := TextOp{Text: text, Size: ts, Color: c.TextColor}
	if spec.vertical {
		op.X, op.Y = c.Bounds.Left, pos
		op.Align, op.Baseline = AlignLeft, BaselineMiddle
		switch {
		case c.Orientation == OrientBottom && math.Abs(pos-plot.Bottom) < 1:
			op.Y, op.Baseline = pos-ts*0.2, BaselineAlphabetic
		case c.Orientation == OrientTop && math.Abs(pos-plot.Top) < 1:
			op.Y, op.Baseline = pos+ts*1.2, BaselineAlphabetic
		}
		return op
	}

	op.X, op.Y = pos, (plot.Bottom+c.Bounds.Bottom)/2
	op.Align, op.Baseline = AlignCenter, BaselineMiddle
	switch {
	case c.Orientation == OrientLeft && math.Abs(pos-plot.Left) < 1:
		op.X, op.Align = pos+ts*0.5, AlignLeft
	case c.Orientation == OrientRight && math.Abs(pos-plot.Right) < 1:
		op.X, op.Align = pos-ts*0.5, AlignRight
	}
	return op
}

// headLabel places the bar label just beyond the bar head.
func (c *CylinderChart) headLabel(pp ProgressPath, bar Rect, b Bar, ts float64) TextOp {
	text := b.Label
	if text == "" {
		text = strconv.FormatFloat(b.Value, 'f', -1, 64)
	}
	op := TextOp{Text: text, Size: ts, Color: c.TextColor}
	switch c.Orientation {
	case OrientTop:
		op.X, op.Y = bar.CenterX(), pp.Head.Y+ts*1.3
		op.Align, op.Baseline = AlignCenter, BaselineAlphabetic
	case OrientLeft:
		op.X, op.Y = pp.Head.X+ts*0.5, bar.CenterY()
		op.Align, op.Baseline = AlignLeft, BaselineMiddle
	case OrientRight:
		op.X, op.Y = pp.Head.X-ts*0.5, bar.CenterY()
		op.Align, op.Baseline = AlignRight, BaselineMiddle
	default:
		op.X, op.Y = bar.CenterX(), pp.Head.Y-ts*0.5
		op.Align, op.Baseline = AlignCenter, BaselineAlphabetic
	}
	return op
}

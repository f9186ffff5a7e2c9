package ggchart

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// Wave chart defaults.
const (
	DefaultStrokeWidth   = 6
	DefaultFocusAlpha    = 1.0
	DefaultHaloAlpha     = 0.3
	DefaultWaveTextRatio = 0.03

	// fillDepth is where the gradient under a curve reaches its last stop,
	// as a fraction of the axis area height.
	fillDepth = 0.8
)

// DefaultWavePadding is the axis-area padding of a wave chart.
var DefaultWavePadding = Insets{Left: 0.1, Top: 0, Right: 0.1, Bottom: 0.12}

// DefaultWaveStops is the alpha ramp of the fill under a curve.
var DefaultWaveStops = []Stop{{Offset: 0, Alpha: 0.10}, {Offset: 1, Alpha: 0.016}}

// Insets are per-edge fractions of a rectangle's size.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// Series is one curve of a wave chart. Points must be ordered by X.
type Series struct {
	Points    []gg.Point
	LineColor Color
	// FillColor is the base colour of the gradient under the curve; a zero
	// alpha is read as opaque. Zero uses LineColor.
	FillColor Color
}

func (s Series) fillBase() Color {
	if s.FillColor == 0 {
		return s.LineColor.WithDefaultAlpha()
	}
	return s.FillColor.WithDefaultAlpha()
}

// WaveChart draws smoothed line series over a shared pair of axes.
type WaveChart struct {
	Bounds  Rect
	Padding Insets
	Series  []Series

	// XTicks and YTicks are derived from the data when nil.
	XTicks, YTicks []Tick
	// XRange and YRange are derived from the ticks when nil.
	XRange, YRange *Range

	FocusIndex    int
	StrokeWidth   float64
	LineWidth     float64
	GradientStops []Stop
	FocusAlpha    float64
	HaloAlpha     float64
	TextColor     Color
	TextRatio     float64

	ScaleOptions []ScaleOption
}

// NewWaveChart creates a chart with the default layout.
func NewWaveChart(bounds Rect, series []Series, opts ...WaveOption) *WaveChart {
	w := &WaveChart{
		Bounds:        bounds,
		Padding:       DefaultWavePadding,
		Series:        series,
		FocusIndex:    -1,
		StrokeWidth:   DefaultStrokeWidth,
		LineWidth:     DefaultLineWidth,
		GradientStops: DefaultWaveStops,
		FocusAlpha:    DefaultFocusAlpha,
		HaloAlpha:     DefaultHaloAlpha,
		TextColor:     DefaultTextColor,
		TextRatio:     DefaultWaveTextRatio,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WaveLayout is the resolved geometry of a WaveChart.
type WaveLayout struct {
	// Area is the axis area in whole pixels.
	Area           Rect
	XTicks, YTicks []Tick
	XRange, YRange Range
	TextSize       float64
	// Points holds the pixel points of each series.
	Points [][]gg.Point
}

// Layout resolves the axis area, ticks, ranges and pixel points.
func (w *WaveChart) Layout() (WaveLayout, error) {
	lay := WaveLayout{
		Area:     w.area(),
		XTicks:   w.XTicks,
		YTicks:   w.YTicks,
		TextSize: w.Bounds.Width() * w.TextRatio,
	}

	var xs, ys []float64
	for _, s := range w.Series {
		for _, p := range s.Points {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}

	if lay.YTicks == nil {
		scale, err := NiceScale(ys, w.ScaleOptions...)
		if err != nil {
			return WaveLayout{}, fmt.Errorf("wave layout: y axis: %w", err)
		}
		lay.YTicks = scale.Ticks
		lay.YRange = scale.Range
	} else {
		lay.YRange = RangeOf(lay.YTicks)
	}
	if w.YRange != nil {
		lay.YRange = *w.YRange
	}

	if lay.XTicks == nil {
		lay.XTicks = pointTicks(xs)
	}
	lay.XRange = tickSpan(lay.XTicks)
	if w.XRange != nil {
		lay.XRange = *w.XRange
	}

	xm, _ := NewMapper(lay.Area, OrientLeft, lay.XRange)
	// Keep half a stroke between the curve and the area edges.
	half := w.StrokeWidth / 2
	curve := lay.Area.Inset(EdgeTop, half).Inset(EdgeBottom, half)
	ym, _ := NewMapper(curve, OrientBottom, lay.YRange)

	for _, s := range w.Series {
		pts := make([]gg.Point, len(s.Points))
		for i, p := range s.Points {
			pts[i] = gg.Pt(xm.Map(p.X), ym.Map(p.Y))
		}
		lay.Points = append(lay.Points, pts)
	}
	return lay, nil
}

// area insets the bounds by the padding fractions, rounded to whole pixels.
func (w *WaveChart) area() Rect {
	b := w.Bounds
	width, height := b.Width(), b.Height()
	round := func(v float64) float64 { return math.Floor(v + 0.5) }
	return Rect{
		Left:   b.Left + round(width*w.Padding.Left),
		Top:    b.Top + round(height*w.Padding.Top),
		Right:  b.Left + round(width*(1-w.Padding.Right)),
		Bottom: b.Top + round(height*(1-w.Padding.Bottom)),
	}
}

// pointTicks returns one tick per distinct X, ascending.
func pointTicks(xs []float64) []Tick {
	xs = slices.Clone(xs)
	slices.Sort(xs)
	xs = slices.Compact(xs)
	ticks := make([]Tick, len(xs))
	for i, x := range xs {
		ticks[i] = Tick{Value: x, Label: formatPlain(x)}
	}
	return ticks
}

// tickSpan is the range from the first to the last tick.
func tickSpan(ticks []Tick) Range {
	if len(ticks) == 0 {
		return Range{}
	}
	return Range{Lower: ticks[0].Value, Upper: ticks[len(ticks)-1].Value}
}

// DrawOps lays out the chart and returns its draw operations: the X axis
// with labels and assist lines, the Y labels, then each series as gradient
// fill, curve and focus dot.
func (w *WaveChart) DrawOps() ([]Op, error) {
	lay, err := w.Layout()
	if err != nil {
		return nil, err
	}
	area, ts := lay.Area, lay.TextSize
	xm, _ := NewMapper(area, OrientLeft, lay.XRange)
	ym, _ := NewMapper(area, OrientBottom, lay.YRange)

	var ops []Op
	ops = append(ops, StrokeOp{
		Path:  linePath(gg.Pt(w.Bounds.Left, area.Bottom), gg.Pt(w.Bounds.Right, area.Bottom)),
		Color: w.TextColor,
		Width: w.LineWidth,
	})

	labelY := area.Bottom + math.Min(ts*1.3, (w.Bounds.Bottom-area.Bottom-ts)/2+ts)
	for _, t := range lay.XTicks {
		x := xm.Map(t.Value)
		if x < area.Left || x > area.Right {
			continue
		}
		ops = append(ops, TextOp{Text: t.Label, X: x, Y: labelY, Size: ts, Align: AlignCenter, Color: w.TextColor})
	}
	focusX, hasFocus := w.focusX()
	for _, t := range lay.XTicks {
		x := xm.Map(t.Value)
		if x < area.Left || x > area.Right {
			continue
		}
		op := StrokeOp{Path: linePath(gg.Pt(x, area.Top), gg.Pt(x, area.Bottom)), Color: w.TextColor, Width: w.LineWidth}
		if !hasFocus || t.Value != focusX {
			op.Dash = GridDash
		}
		ops = append(ops, op)
	}
	for _, t := range lay.YTicks {
		y := ym.Map(t.Value)
		if y < area.Top || y > area.Bottom {
			continue
		}
		ops = append(ops, TextOp{Text: t.Label, X: w.Bounds.Left, Y: y + ts/2, Size: ts, Align: AlignLeft, Color: w.TextColor})
	}

	for i, s := range w.Series {
		pts := lay.Points[i]
		if len(pts) == 0 {
			continue
		}
		segs := Segments(pts, ControlPoints(pts))
		ops = append(ops, w.fillOp(area, s, pts, segs))

		line := gg.NewPath()
		line.MoveTo(pts[0].X, pts[0].Y)
		appendSegments(line, segs)
		ops = append(ops, StrokeOp{Path: line, Color: s.LineColor, Width: w.StrokeWidth})

		if w.FocusIndex >= 0 && w.FocusIndex < len(pts) {
			p := pts[w.FocusIndex]
			ops = append(ops,
				FillOp{Path: circlePath(p, w.StrokeWidth*4), Paint: Blend(s.LineColor, w.HaloAlpha)},
				FillOp{Path: circlePath(p, w.StrokeWidth*2), Paint: Blend(s.LineColor, w.FocusAlpha)},
			)
		}
	}
	return ops, nil
}

// focusX is the X value of the focused point in the first series long
// enough to have one.
func (w *WaveChart) focusX() (float64, bool) {
	if w.FocusIndex < 0 {
		return 0, false
	}
	for _, s := range w.Series {
		if w.FocusIndex < len(s.Points) {
			return s.Points[w.FocusIndex].X, true
		}
	}
	return 0, false
}

// fillOp closes the curve down to the area bottom and paints it with a
// vertical gradient starting at the topmost point.
func (w *WaveChart) fillOp(area Rect, s Series, pts []gg.Point, segs []gg.CubicBez) FillOp {
	first, last := pts[0], pts[len(pts)-1]
	p := gg.NewPath()
	p.MoveTo(area.Left, area.Bottom)
	p.LineTo(area.Left, first.Y)
	p.LineTo(first.X, first.Y)
	appendSegments(p, segs)
	p.LineTo(last.X, area.Bottom)
	p.Close()

	top := first.Y
	for _, q := range pts {
		top = math.Min(top, q.Y)
	}
	grad := LinearGradient(s.fillBase(), w.GradientStops,
		gg.Pt(area.Left, top), gg.Pt(area.Left, area.Top+area.Height()*fillDepth))
	return FillOp{Path: p, Paint: grad}
}

func circlePath(c gg.Point, r float64) *gg.Path {
	p := gg.NewPath()
	p.Circle(c.X, c.Y, r)
	return p
}

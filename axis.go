package ggchart

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// MinStep is the tick step used when every value in a dataset is equal.
	MinStep = 1.0

	// Headroom is the fraction of the displayed range covered by the ticks.
	// The top tick sits at 90% of the axis so bars never touch the far edge.
	Headroom = 0.9

	// targetDivisions is the number of intervals the raw span is split into
	// before rounding up to a readable step.
	targetDivisions = 3

	// maxExactMark bounds |value|/step so consecutive tick marks differ.
	maxExactMark = 1 << 52
)

// Tick is one labelled axis mark.
type Tick struct {
	Value float64
	Label string
}

// Range is the inclusive interval an axis displays.
type Range struct {
	Lower, Upper float64
}

// Span returns Upper - Lower.
func (r Range) Span() float64 { return r.Upper - r.Lower }

// Fraction returns where v falls in the range, 0 at Lower and 1 at Upper.
// A zero-span range maps everything to 0.
func (r Range) Fraction(v float64) float64 {
	span := r.Span()
	if span == 0 {
		return 0
	}
	return (v - r.Lower) / span
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Lower && v <= r.Upper
}

// Scale is the result of NiceScale: ascending ticks, the displayed range and
// the step between ticks.
type Scale struct {
	Ticks []Tick
	Range Range
	Step  float64

	// Degenerate is set when the dataset had no spread and Step was
	// snapped to MinStep.
	Degenerate bool
}

// LabelFunc formats a tick value.
type LabelFunc func(v float64) string

// ScaleOption configures NiceScale.
type ScaleOption func(*scaleOptions)

type scaleOptions struct {
	strict bool
	label  LabelFunc
}

func defaultScaleOptions() scaleOptions {
	return scaleOptions{label: formatPlain}
}

// WithStrictRange makes NiceScale return ErrDegenerateRange for a dataset
// whose values are all equal instead of snapping to MinStep.
func WithStrictRange() ScaleOption {
	return func(o *scaleOptions) {
		o.strict = true
	}
}

// WithLabelFormat sets the tick label formatter.
func WithLabelFormat(fn LabelFunc) ScaleOption {
	return func(o *scaleOptions) {
		if fn != nil {
			o.label = fn
		}
	}
}

// WithLocale formats tick labels with the digit grouping of tag,
// e.g. 1200 becomes "1,200" for English.
func WithLocale(tag language.Tag) ScaleOption {
	return func(o *scaleOptions) {
		o.label = LocaleLabels(tag)
	}
}

// LocaleLabels returns a LabelFunc printing values for tag.
func LocaleLabels(tag language.Tag) LabelFunc {
	p := message.NewPrinter(tag)
	return func(v float64) string {
		return p.Sprint(number.Decimal(v))
	}
}

func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NiceScale computes human-readable ticks for values.
//
// The raw span is divided into three, rounded up to a single significant
// digit times a power of ten, and the ticks run from one step below the
// minimum (never below zero for non-negative data) to the first step at or
// above the maximum.
func NiceScale(values []float64, opts ...ScaleOption) (Scale, error) {
	o := defaultScaleOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(values) == 0 {
		return Scale{}, fmt.Errorf("nice scale: %w", ErrEmptyDataset)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Scale{}, fmt.Errorf("nice scale: value %d is %v: %w", i, v, ErrNonFiniteValue)
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	step := niceStep(hi - lo)
	degenerate := step == 0
	if degenerate {
		if o.strict {
			return Scale{}, fmt.Errorf("nice scale: all %d values equal %v: %w", len(values), lo, ErrDegenerateRange)
		}
		step = MinStep
		Logger().Debug("ggchart: flat dataset, snapping tick step",
			"value", lo, "count", len(values), "step", step)
	}

	// Tick marks are counted in float64, so they must stay exact integers.
	if mag := math.Max(math.Abs(lo), math.Abs(hi)); mag/step >= maxExactMark {
		narrow := step
		for mag/step >= maxExactMark {
			step *= 10
		}
		Logger().Debug("ggchart: widening tick step to value precision",
			"value", mag, "from", narrow, "step", step)
	}

	minMark := math.Ceil(lo/step) - 1
	if lo >= 0 && minMark < 0 {
		minMark = 0
	}
	maxMark := math.Ceil(hi / step)

	n := int(maxMark-minMark) + 1
	ticks := make([]Tick, n)
	for i := range n {
		v := (minMark + float64(i)) * step
		ticks[i] = Tick{Value: v, Label: o.label(v)}
	}

	return Scale{
		Ticks:      ticks,
		Range:      rangeFor(ticks, step),
		Step:       step,
		Degenerate: degenerate,
	}, nil
}

// niceStep rounds span/3 up to d*10^k with d in 1..9 (or 10^(k+1)).
// Spans below 3 yield 1; a zero span yields 0.
func niceStep(span float64) float64 {
	divide := span / targetDivisions
	zero := 0
	for divide >= 10 {
		divide /= 10
		zero++
	}
	return math.Ceil(divide) * math.Pow(10, float64(zero))
}

// RangeOf derives the displayed range from ascending ticks: it starts at the
// first tick and places the last tick at Headroom of the span. Fewer than two
// ticks use MinStep as the tick span.
func RangeOf(ticks []Tick) Range {
	return rangeFor(ticks, MinStep)
}

func rangeFor(ticks []Tick, step float64) Range {
	if len(ticks) == 0 {
		return Range{Upper: step / Headroom}
	}
	lower := ticks[0].Value
	span := ticks[len(ticks)-1].Value - lower
	if len(ticks) < 2 || span <= 0 {
		span = step
	}
	return Range{Lower: lower, Upper: lower + span/Headroom}
}

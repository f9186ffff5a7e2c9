package ggchart

// CylinderOption configures a CylinderChart during creation.
//
// Example:
//
//	chart := ggchart.NewCylinderChart(bounds, bars,
//	    ggchart.WithOrientation(ggchart.OrientLeft),
//	    ggchart.WithRoundedBase(true),
//	)
type CylinderOption func(*CylinderChart)

// WithOrientation sets the edge the bars grow from.
func WithOrientation(o Orientation) CylinderOption {
	return func(c *CylinderChart) {
		c.Orientation = o
	}
}

// WithSlots sets the number of bar slots. Non-positive values are ignored.
func WithSlots(n int) CylinderOption {
	return func(c *CylinderChart) {
		if n > 0 {
			c.Slots = n
		}
	}
}

// WithRoundedBase rounds the base end of every bar.
func WithRoundedBase(rounded bool) CylinderOption {
	return func(c *CylinderChart) {
		c.RoundedBase = rounded
	}
}

// WithBarColor sets the colour of enabled bars.
func WithBarColor(col Color) CylinderOption {
	return func(c *CylinderChart) {
		c.Color = col
	}
}

// WithDisabledColor sets the colour of disabled bars.
func WithDisabledColor(col Color) CylinderOption {
	return func(c *CylinderChart) {
		c.DisabledColor = col
	}
}

// WithLabelColor sets the colour of tick and head labels.
func WithLabelColor(col Color) CylinderOption {
	return func(c *CylinderChart) {
		c.TextColor = col
	}
}

// WithAxisColor sets the colour of axis lines and gridlines.
func WithAxisColor(col Color) CylinderOption {
	return func(c *CylinderChart) {
		c.LineColor = col
	}
}

// WithTrackColor paints the unfilled part of each bar. Zero disables it.
func WithTrackColor(col Color) CylinderOption {
	return func(c *CylinderChart) {
		c.TrackColor = col
	}
}

// WithAlphaStep sets how much alpha each following bar loses.
func WithAlphaStep(step float64) CylinderOption {
	return func(c *CylinderChart) {
		c.AlphaStep = step
	}
}

// WithPercentFunc installs the live percent hook used for animation.
func WithPercentFunc(fn PercentFunc) CylinderOption {
	return func(c *CylinderChart) {
		c.PercentFunc = fn
	}
}

// WithRatios overrides the layout ratios: bar thickness and label padding
// relative to the cross extent, icon padding relative to the bar length.
// Non-positive values keep the current ratio.
func WithRatios(thickness, iconPadding, labelPadding float64) CylinderOption {
	return func(c *CylinderChart) {
		if thickness > 0 {
			c.ThicknessRatio = thickness
		}
		if iconPadding > 0 {
			c.IconPaddingRatio = iconPadding
		}
		if labelPadding > 0 {
			c.LabelPaddingRatio = labelPadding
		}
	}
}

// WithScaleOptions passes options to the NiceScale call of the value axis.
func WithScaleOptions(opts ...ScaleOption) CylinderOption {
	return func(c *CylinderChart) {
		c.ScaleOptions = append(c.ScaleOptions, opts...)
	}
}

// WaveOption configures a WaveChart during creation.
type WaveOption func(*WaveChart)

// WithFocus highlights the point at index i of every series. A negative
// index disables the focus dot.
func WithFocus(i int) WaveOption {
	return func(w *WaveChart) {
		w.FocusIndex = i
	}
}

// WithStrokeWidth sets the curve line width.
func WithStrokeWidth(width float64) WaveOption {
	return func(w *WaveChart) {
		if width > 0 {
			w.StrokeWidth = width
		}
	}
}

// WithGradient sets the alpha stops of the fill under each curve.
func WithGradient(stops ...Stop) WaveOption {
	return func(w *WaveChart) {
		w.GradientStops = stops
	}
}

// WithWaveTextColor sets the axis label colour.
func WithWaveTextColor(col Color) WaveOption {
	return func(w *WaveChart) {
		w.TextColor = col
	}
}

// WithTicks sets explicit axis ticks. A nil slice keeps the derived ticks
// for that axis.
func WithTicks(x, y []Tick) WaveOption {
	return func(w *WaveChart) {
		w.XTicks = x
		w.YTicks = y
	}
}

// WithPadding sets the axis-area padding as fractions of the bounds.
func WithPadding(p Insets) WaveOption {
	return func(w *WaveChart) {
		w.Padding = p
	}
}

// WithWaveScaleOptions passes options to the NiceScale call of the Y axis.
func WithWaveScaleOptions(opts ...ScaleOption) WaveOption {
	return func(w *WaveChart) {
		w.ScaleOptions = append(w.ScaleOptions, opts...)
	}
}

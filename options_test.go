package ggchart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCylinderDefaults(t *testing.T) {
	c := NewCylinderChart(NewRect(0, 0, 10, 10), nil)
	if c.Orientation != OrientBottom || c.Slots != DefaultSlots || c.RoundedBase {
		t.Errorf("orientation/slots/rounded = %v/%d/%v", c.Orientation, c.Slots, c.RoundedBase)
	}
	if c.Color != DefaultBarColor || c.TrackColor != 0 || c.AlphaStep != DefaultAlphaStep {
		t.Errorf("colour/track/alpha step = %v/%v/%v", c.Color, c.TrackColor, c.AlphaStep)
	}
}

func TestCylinderOptionValues(t *testing.T) {
	c := NewCylinderChart(NewRect(0, 0, 10, 10), nil,
		WithSlots(0), // ignored
		WithRatios(0.1, 0, 0.05),
		WithLabelColor(0xFF010203),
		WithAxisColor(0xFF040506),
		WithAlphaStep(0.1),
		WithScaleOptions(WithStrictRange()),
	)
	if c.Slots != DefaultSlots {
		t.Errorf("slots = %d, want default kept", c.Slots)
	}
	if c.ThicknessRatio != 0.1 || c.IconPaddingRatio != DefaultIconPaddingRatio || c.LabelPaddingRatio != 0.05 {
		t.Errorf("ratios = %v/%v/%v", c.ThicknessRatio, c.IconPaddingRatio, c.LabelPaddingRatio)
	}
	if c.TextColor != 0xFF010203 || c.LineColor != 0xFF040506 || c.AlphaStep != 0.1 {
		t.Errorf("text/line/alpha = %v/%v/%v", c.TextColor, c.LineColor, c.AlphaStep)
	}
	if len(c.ScaleOptions) != 1 {
		t.Errorf("got %d scale options, want 1", len(c.ScaleOptions))
	}
}

func TestWaveOptionValues(t *testing.T) {
	w := NewWaveChart(NewRect(0, 0, 10, 10), nil)
	if w.FocusIndex != -1 || w.StrokeWidth != DefaultStrokeWidth || w.Padding != DefaultWavePadding {
		t.Errorf("defaults = focus %d stroke %v padding %+v", w.FocusIndex, w.StrokeWidth, w.Padding)
	}

	pad := Insets{Left: 0.2, Bottom: 0.2}
	stops := []Stop{{Offset: 0, Alpha: 0.5}, {Offset: 1, Alpha: 0}}
	w = NewWaveChart(NewRect(0, 0, 10, 10), nil,
		WithFocus(3),
		WithStrokeWidth(-1), // ignored
		WithGradient(stops...),
		WithWaveTextColor(0xFF112233),
		WithPadding(pad),
		WithWaveScaleOptions(WithStrictRange()),
	)
	if w.FocusIndex != 3 || w.StrokeWidth != DefaultStrokeWidth || w.TextColor != 0xFF112233 || w.Padding != pad {
		t.Errorf("focus/stroke/text/padding = %d/%v/%v/%+v", w.FocusIndex, w.StrokeWidth, w.TextColor, w.Padding)
	}
	if diff := cmp.Diff(stops, w.GradientStops); diff != "" {
		t.Errorf("stops (-want +got):\n%s", diff)
	}
	if len(w.ScaleOptions) != 1 {
		t.Errorf("got %d scale options, want 1", len(w.ScaleOptions))
	}
}

package ggchart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Color is a packed 0xAARRGGBB colour.
type Color uint32

// ARGB packs four 8-bit channels.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// WithDefaultAlpha reads a zero alpha as fully opaque. Colours given as
// plain 0xRRGGBB literals use this convention.
func (c Color) WithDefaultAlpha() Color {
	if c.A() == 0 {
		return c.WithAlpha(0xFF)
	}
	return c
}

// RGBA converts c to gg's float colour.
func (c Color) RGBA() gg.RGBA {
	return gg.RGBA{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
		A: float64(c.A()) / 255,
	}
}

// String formats c as "#AARRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor parses "#AARRGGBB" or "#RRGGBB" (the '#' is optional).
// Six-digit colours are opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("ggchart: parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("ggchart: parse color %q: %w", s, err)
	}
	c := Color(v)
	if len(hex) == 6 {
		c = c.WithAlpha(0xFF)
	}
	return c, nil
}

// Blend scales the alpha of c by factor, rounding to the nearest step and
// clamping to [0, 255]. The RGB channels are unchanged. A NaN factor gives a
// transparent colour.
func Blend(c Color, factor float64) Color {
	if math.IsNaN(factor) {
		return c.WithAlpha(0)
	}
	a := math.Round(float64(c.A()) * factor)
	a = math.Max(0, math.Min(255, a))
	return c.WithAlpha(uint8(a))
}

// Stop is a gradient stop expressed as an alpha factor applied to a base
// colour.
type Stop struct {
	Offset float64
	Alpha  float64
}

// ColorStop is a resolved gradient stop.
type ColorStop struct {
	Offset float64
	Color  Color
}

// GradientStops resolves stops against base, keeping their order and
// offsets.
func GradientStops(base Color, stops []Stop) []ColorStop {
	if len(stops) == 0 {
		return nil
	}
	out := make([]ColorStop, len(stops))
	for i, s := range stops {
		out[i] = ColorStop{Offset: s.Offset, Color: Blend(base, s.Alpha)}
	}
	return out
}

// Gradient is a linear gradient between two pixel points.
type Gradient struct {
	Start, End gg.Point
	Stops      []ColorStop
}

// LinearGradient builds a gradient of base from -> to.
func LinearGradient(base Color, stops []Stop, from, to gg.Point) *Gradient {
	return &Gradient{Start: from, End: to, Stops: GradientStops(base, stops)}
}

// Brush converts the gradient into a gg brush.
func (g *Gradient) Brush() *gg.LinearGradientBrush {
	b := gg.NewLinearGradientBrush(g.Start.X, g.Start.Y, g.End.X, g.End.Y)
	for _, s := range g.Stops {
		b.AddColorStop(s.Offset, s.Color.RGBA())
	}
	return b
}

package ggchart

import (
	"math"

	"github.com/gogpu/gg"
)

// ProgressPath is the geometry of one progress bar.
//
// Track is the whole bar area. Fill is the part reached by Percent, with a
// rounded head; Remainder is the rest of Track. Fill and Remainder share
// their boundary curves, so together they cover Track exactly once.
type ProgressPath struct {
	Orientation Orientation
	Percent     float64
	Radius      float64

	// Head is the leading point of Fill on the bar's centre line.
	Head gg.Point

	Fill      *gg.Path
	Remainder *gg.Path
	Track     *gg.Path
}

// BuildProgress computes the progress bar geometry inside r.
//
// The bar grows from the orientation's base edge. Its thickness is the
// extent of r across the growth axis and the head radius is half of that,
// limited to half the bar length. With roundedBase the base end is rounded
// too. percent is clamped into [0, 1].
func BuildProgress(r Rect, o Orientation, percent float64, roundedBase bool) (ProgressPath, error) {
	spec, err := o.spec()
	if err != nil {
		return ProgressPath{}, err
	}
	if clamped := clampPercent(percent); clamped != percent {
		Logger().Debug("ggchart: progress percent clamped", "percent", percent, "clamped", clamped)
		percent = clamped
	}

	length := math.Max(spec.length(r), 0)
	radius := math.Max(math.Min(spec.thickness(r), length)/2, 0)
	m := spec.frame(r)

	g := progressGeom{L: length, r: radius, t: length * percent, rounded: roundedBase}
	pp := ProgressPath{
		Orientation: o,
		Percent:     percent,
		Radius:      radius,
		Head:        m.TransformPoint(gg.Pt(g.t, 0)),
		Fill:        gg.NewPath(),
		Remainder:   gg.NewPath(),
		Track:       gg.NewPath(),
	}
	if radius == 0 {
		return pp, nil
	}

	pp.Track = g.track().Transform(m)
	pp.Fill = g.fill().Transform(m)
	pp.Remainder = g.remainder().Transform(m)
	return pp, nil
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// progressGeom builds bar outlines in the local frame: u runs from the base
// edge (u = 0) to the far edge (u = L), v across the centre line (|v| <= r).
// The head circle is centred at u = t - r; a rounded base is a circle centred
// at u = r. All outlines wind the same way.
type progressGeom struct {
	L, r, t float64
	rounded bool
}

func (g progressGeom) head() float64 { return g.t - g.r }

func (g progressGeom) track() *gg.Path {
	p := gg.NewPath()
	if !g.rounded {
		p.Rectangle(0, -g.r, g.L, 2*g.r)
		return p
	}
	p.MoveTo(g.r, -g.r)
	p.LineTo(g.L, -g.r)
	p.LineTo(g.L, g.r)
	p.LineTo(g.r, g.r)
	arcTo(p, gg.Pt(g.r, 0), g.r, math.Pi/2, math.Pi)
	p.Close()
	return p
}

func (g progressGeom) fill() *gg.Path {
	p := gg.NewPath()
	if g.t <= 0 {
		return p
	}
	c, r := g.head(), g.r
	hc := gg.Pt(c, 0)

	switch {
	case !g.rounded && c >= 0:
		p.MoveTo(0, -r)
		p.LineTo(c, -r)
		arcTo(p, hc, r, -math.Pi/2, math.Pi)
		p.LineTo(0, r)
	case !g.rounded:
		// Head circle cut by the base edge.
		phi := math.Acos(-c / r)
		arcTo(p, hc, r, -phi, 2*phi)
	case c >= r:
		p.MoveTo(r, -r)
		p.LineTo(c, -r)
		arcTo(p, hc, r, -math.Pi/2, math.Pi)
		p.LineTo(r, r)
		arcTo(p, gg.Pt(r, 0), r, math.Pi/2, math.Pi)
	default:
		// Lens between the base and head circles.
		phi := math.Acos((r - c) / (2 * r))
		arcTo(p, hc, r, -phi, 2*phi)
		arcTo(p, gg.Pt(r, 0), r, math.Pi-phi, 2*phi)
	}
	p.Close()
	return p
}

func (g progressGeom) remainder() *gg.Path {
	if g.t <= 0 {
		return g.track()
	}
	p := gg.NewPath()
	c, r := g.head(), g.r
	hc := gg.Pt(c, 0)

	p.MoveTo(g.L, -r)
	p.LineTo(g.L, r)
	switch {
	case (!g.rounded && c >= 0) || (g.rounded && c >= r):
		p.LineTo(c, r)
		arcTo(p, hc, r, math.Pi/2, -math.Pi)
	case !g.rounded:
		phi := math.Acos(-c / r)
		p.LineTo(0, r)
		arcTo(p, hc, r, phi, -2*phi)
		p.LineTo(0, -r)
	default:
		phi := math.Acos((r - c) / (2 * r))
		p.LineTo(r, r)
		arcTo(p, gg.Pt(r, 0), r, math.Pi/2, math.Pi/2-phi)
		arcTo(p, hc, r, phi, -2*phi)
		arcTo(p, gg.Pt(r, 0), r, math.Pi+phi, math.Pi/2-phi)
	}
	p.Close()
	return p
}

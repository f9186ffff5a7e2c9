package ggchart

import (
	"math"

	"github.com/gogpu/gg"
)

// SlopeRate is the fraction of the horizontal distance to a neighbour at
// which a control point is placed.
const SlopeRate = 0.4

// ControlPair holds the incoming and outgoing Bezier handles of one point.
type ControlPair struct {
	In, Out gg.Point
}

// ControlPoints computes Bezier handles for a smooth curve through pts,
// which must be ordered by X.
//
// The tangent at an interior point follows the line through its neighbours
// and is flat at local extrema and at both ends. Every handle is clamped into
// the Y band of the segment it shapes, so no segment leaves the band spanned
// by its endpoints. Two points produce a straight line.
func ControlPoints(pts []gg.Point) []ControlPair {
	switch len(pts) {
	case 0:
		return nil
	case 1:
		return []ControlPair{{In: pts[0], Out: pts[0]}}
	case 2:
		a, b := pts[0], pts[1]
		return []ControlPair{
			{In: a, Out: a.Lerp(b, SlopeRate)},
			{In: b.Lerp(a, SlopeRate), Out: b},
		}
	}

	pairs := make([]ControlPair, len(pts))
	last := len(pts) - 1
	for i, p := range pts {
		slope := 0.0
		if i > 0 && i < last {
			slope = tangentSlope(pts[i-1], p, pts[i+1])
		}

		in, out := p, p
		if i > 0 {
			prev := pts[i-1]
			x := p.X - SlopeRate*(p.X-prev.X)
			y := p.Y - slope*(p.X-x)
			in = gg.Pt(x, clampBand(y, prev.Y, p.Y))
		}
		if i < last {
			next := pts[i+1]
			x := p.X + SlopeRate*(next.X-p.X)
			y := p.Y + slope*(x-p.X)
			out = gg.Pt(x, clampBand(y, p.Y, next.Y))
		}
		pairs[i] = ControlPair{In: in, Out: out}
	}
	return pairs
}

// tangentSlope is the slope of the chord prev→next, or 0 when p is a local
// extremum or the neighbours share an X.
func tangentSlope(prev, p, next gg.Point) float64 {
	if (prev.Y >= p.Y && next.Y >= p.Y) || (prev.Y <= p.Y && next.Y <= p.Y) {
		return 0
	}
	dx := next.X - prev.X
	if dx == 0 {
		return 0
	}
	return (next.Y - prev.Y) / dx
}

func clampBand(y, a, b float64) float64 {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return math.Max(lo, math.Min(hi, y))
}

// Segments pairs consecutive points with their handles. It returns nil when
// pairs does not match pts.
func Segments(pts []gg.Point, pairs []ControlPair) []gg.CubicBez {
	if len(pts) < 2 || len(pairs) != len(pts) {
		return nil
	}
	segs := make([]gg.CubicBez, len(pts)-1)
	for i := range segs {
		segs[i] = gg.NewCubicBez(pts[i], pairs[i].Out, pairs[i+1].In, pts[i+1])
	}
	return segs
}

// SplinePath returns an open path through pts.
func SplinePath(pts []gg.Point) *gg.Path {
	p := gg.NewPath()
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	appendSegments(p, Segments(pts, ControlPoints(pts)))
	return p
}

// appendSegments continues p through segs from its current point.
func appendSegments(p *gg.Path, segs []gg.CubicBez) {
	for _, s := range segs {
		p.CubicTo(s.P1.X, s.P1.Y, s.P2.X, s.P2.Y, s.P3.X, s.P3.Y)
	}
}

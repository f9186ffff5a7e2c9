package ggchart

import (
	"math"

	"github.com/gogpu/gg"
)

// arcTo appends a circular arc around c starting at angle a0 and turning by
// sweep radians; a negative sweep runs the other way. The arc is joined to
// the current point with a line, or starts a new subpath on an empty path.
// Segments span at most 90 degrees, with the same handle construction as
// gg.Path.Arc.
func arcTo(p *gg.Path, c gg.Point, r, a0, sweep float64) {
	start := gg.Pt(c.X+r*math.Cos(a0), c.Y+r*math.Sin(a0))
	switch {
	case !p.HasCurrentPoint():
		p.MoveTo(start.X, start.Y)
	case p.CurrentPoint().Distance(start) > 1e-9:
		p.LineTo(start.X, start.Y)
	}
	if sweep == 0 || r <= 0 {
		return
	}

	n := int(math.Ceil(math.Abs(sweep)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	t := math.Tan(step / 2)
	alpha := math.Sin(step) * (math.Sqrt(4+3*t*t) - 1) / 3

	for i := 0; i < n; i++ {
		a1 := a0 + float64(i)*step
		a2 := a1 + step
		sin1, cos1 := math.Sincos(a1)
		sin2, cos2 := math.Sincos(a2)
		x1, y1 := c.X+r*cos1, c.Y+r*sin1
		x2, y2 := c.X+r*cos2, c.Y+r*sin2
		p.CubicTo(
			x1-alpha*r*sin1, y1+alpha*r*cos1,
			x2+alpha*r*sin2, y2-alpha*r*cos2,
			x2, y2,
		)
	}
}

package ggchart

import "github.com/gogpu/gg"

// Mapper converts values to pixel coordinates along one axis of a Rect.
//
// A value mapper (NewMapper) runs along the orientation's growth axis from
// the base edge (Start) to the far edge (End). A cross mapper (CrossMapper)
// maps fractions across the perpendicular dimension.
type Mapper struct {
	Start, End float64
	Range      Range

	spec  orientSpec
	cross bool
}

// NewMapper returns a Mapper taking rng onto the growth axis of r.
func NewMapper(r Rect, o Orientation, rng Range) (Mapper, error) {
	spec, err := o.spec()
	if err != nil {
		return Mapper{}, err
	}
	return Mapper{
		Start: r.Edge(spec.base),
		End:   r.Edge(spec.far),
		Range: rng,
		spec:  spec,
	}, nil
}

// CrossMapper returns a Mapper taking [0, 1] across the growth axis of r:
// left to right for vertical orientations, top to bottom otherwise.
func CrossMapper(r Rect, o Orientation) (Mapper, error) {
	spec, err := o.spec()
	if err != nil {
		return Mapper{}, err
	}
	lo, hi := spec.cross(r)
	return Mapper{
		Start: lo,
		End:   hi,
		Range: Range{Lower: 0, Upper: 1},
		spec:  spec,
		cross: true,
	}, nil
}

// Map returns the pixel coordinate of v.
func (m Mapper) Map(v float64) float64 {
	return m.Fraction(m.Range.Fraction(v))
}

// Fraction returns the pixel coordinate at fraction f of the axis.
func (m Mapper) Fraction(f float64) float64 {
	return m.Start + (m.End-m.Start)*f
}

// Point returns the pixel point for v on this axis and other on the
// perpendicular one.
func (m Mapper) Point(v, other float64) gg.Point {
	if m.cross {
		return m.spec.point(other, m.Map(v))
	}
	return m.spec.point(m.Map(v), other)
}

// Length returns the unsigned pixel length of the axis.
func (m Mapper) Length() float64 {
	if m.End < m.Start {
		return m.Start - m.End
	}
	return m.End - m.Start
}

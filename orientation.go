package ggchart

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// Orientation selects the edge of the plotting rectangle a chart element is
// anchored to and grows away from.
type Orientation int

const (
	// OrientBottom anchors bars to the bottom edge; they grow upward.
	OrientBottom Orientation = iota
	// OrientTop anchors bars to the top edge; they grow downward.
	OrientTop
	// OrientLeft anchors bars to the left edge; they grow rightward.
	OrientLeft
	// OrientRight anchors bars to the right edge; they grow leftward.
	OrientRight
)

// orientSpec holds the per-orientation coefficients every component reads.
type orientSpec struct {
	name     string
	vertical bool    // long axis is y
	sign     float64 // +1 when growth runs toward increasing pixel coordinates
	base     Edge    // edge the element grows from
	far      Edge    // edge the element grows toward
	label    Edge    // edge of the plot that carries value labels
}

var orientTable = [...]orientSpec{
	OrientBottom: {name: "bottom", vertical: true, sign: -1, base: EdgeBottom, far: EdgeTop, label: EdgeLeft},
	OrientTop:    {name: "top", vertical: true, sign: 1, base: EdgeTop, far: EdgeBottom, label: EdgeLeft},
	OrientLeft:   {name: "left", vertical: false, sign: 1, base: EdgeLeft, far: EdgeRight, label: EdgeBottom},
	OrientRight:  {name: "right", vertical: false, sign: -1, base: EdgeRight, far: EdgeLeft, label: EdgeBottom},
}

// Valid reports whether o is one of the four defined orientations.
func (o Orientation) Valid() bool {
	return o >= OrientBottom && int(o) < len(orientTable)
}

// Vertical reports whether elements grow along the y axis.
func (o Orientation) Vertical() bool {
	return o.Valid() && orientTable[o].vertical
}

// String returns the lower-case orientation name.
func (o Orientation) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientTable[o].name
}

// ParseOrientation parses "bottom", "top", "left" or "right" (any case).
func ParseOrientation(s string) (Orientation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, spec := range orientTable {
		if spec.name == name {
			return Orientation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
}

// spec returns the table entry for o or ErrInvalidOrientation.
func (o Orientation) spec() (orientSpec, error) {
	if !o.Valid() {
		return orientSpec{}, fmt.Errorf("%w: %d", ErrInvalidOrientation, int(o))
	}
	return orientTable[o], nil
}

// length is the extent of r along the growth axis.
func (s orientSpec) length(r Rect) float64 {
	if s.vertical {
		return r.Height()
	}
	return r.Width()
}

// thickness is the extent of r across the growth axis.
func (s orientSpec) thickness(r Rect) float64 {
	if s.vertical {
		return r.Width()
	}
	return r.Height()
}

// cross returns the low and high pixel coordinates across the growth axis.
func (s orientSpec) cross(r Rect) (lo, hi float64) {
	if s.vertical {
		return r.Left, r.Right
	}
	return r.Top, r.Bottom
}

// point builds a pixel point from a coordinate along the growth axis and
// one across it.
func (s orientSpec) point(along, across float64) gg.Point {
	if s.vertical {
		return gg.Pt(across, along)
	}
	return gg.Pt(along, across)
}

// frame returns the matrix taking local (u, v) coordinates to pixels: u is
// measured from the base edge in the growth direction, v across from the
// centre line of r.
func (s orientSpec) frame(r Rect) gg.Matrix {
	if s.vertical {
		return gg.Matrix{
			A: 0, B: 1, C: r.CenterX(),
			D: s.sign, E: 0, F: r.Edge(s.base),
		}
	}
	return gg.Matrix{
		A: s.sign, B: 0, C: r.Edge(s.base),
		D: 0, E: 1, F: r.CenterY(),
	}
}

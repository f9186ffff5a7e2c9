package ggchart

import "github.com/gogpu/gg"

// Edge names one side of a Rect.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

// Rect is an axis-aligned pixel rectangle. Y grows downward.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect creates a Rect from its four edges.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal centre.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical centre.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Center returns the centre point.
func (r Rect) Center() gg.Point { return gg.Pt(r.CenterX(), r.CenterY()) }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Edge returns the coordinate of the given side.
func (r Rect) Edge(e Edge) float64 {
	switch e {
	case EdgeLeft:
		return r.Left
	case EdgeTop:
		return r.Top
	case EdgeRight:
		return r.Right
	default:
		return r.Bottom
	}
}

// Inset moves one side of the rectangle inward by d pixels.
func (r Rect) Inset(e Edge, d float64) Rect {
	switch e {
	case EdgeLeft:
		r.Left += d
	case EdgeTop:
		r.Top += d
	case EdgeRight:
		r.Right -= d
	default:
		r.Bottom -= d
	}
	return r
}

// Path returns the rectangle as a closed gg path.
func (r Rect) Path() *gg.Path {
	p := gg.NewPath()
	p.Rectangle(r.Left, r.Top, r.Width(), r.Height())
	return p
}

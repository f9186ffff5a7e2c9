package ggchart

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

var allOrientations = []Orientation{OrientBottom, OrientTop, OrientLeft, OrientRight}

// barRect returns a 40x300 bar laid along o's growth axis.
func barRect(o Orientation) Rect {
	if o.Vertical() {
		return NewRect(100, 50, 140, 350)
	}
	return NewRect(50, 100, 350, 140)
}

func TestBuildProgressHead(t *testing.T) {
	for _, o := range allOrientations {
		r := barRect(o)
		spec := orientTable[o]
		mid := centreAcross(spec, r)
		base := spec.point(r.Edge(spec.base), mid)
		far := spec.point(r.Edge(spec.far), mid)

		for _, rounded := range []bool{false, true} {
			p0, err := BuildProgress(r, o, 0, rounded)
			if err != nil {
				t.Fatalf("%v: %v", o, err)
			}
			if !near(p0.Head.X, base.X) || !near(p0.Head.Y, base.Y) {
				t.Errorf("%v rounded=%v: head at 0%% = %v, want %v", o, rounded, p0.Head, base)
			}
			if n := len(p0.Fill.Elements()); n != 0 {
				t.Errorf("%v rounded=%v: fill at 0%% has %d elements", o, rounded, n)
			}

			p1, _ := BuildProgress(r, o, 1, rounded)
			if !near(p1.Head.X, far.X) || !near(p1.Head.Y, far.Y) {
				t.Errorf("%v rounded=%v: head at 100%% = %v, want %v", o, rounded, p1.Head, far)
			}

			half, _ := BuildProgress(r, o, 0.5, rounded)
			halfway := base.Lerp(far, 0.5)
			if !near(half.Head.X, halfway.X) || !near(half.Head.Y, halfway.Y) {
				t.Errorf("%v rounded=%v: head at 50%% = %v, want %v", o, rounded, half.Head, halfway)
			}
		}
	}
}

func TestBuildProgressTiling(t *testing.T) {
	const w, l = 40.0, 300.0
	for _, o := range allOrientations {
		for _, rounded := range []bool{false, true} {
			for _, pct := range []float64{0, 0.01, 0.05, 0.25, 0.5, 0.75, 1} {
				pp, err := BuildProgress(barRect(o), o, pct, rounded)
				if err != nil {
					t.Fatal(err)
				}
				fill := math.Abs(pp.Fill.Area())
				rem := math.Abs(pp.Remainder.Area())
				track := math.Abs(pp.Track.Area())

				// Base arcs are split differently in Track, so allow for the
				// cubic approximation error.
				if d := math.Abs(fill + rem - track); d > track*1e-3 {
					t.Errorf("%v rounded=%v %v: |fill|+|rem| = %v, |track| = %v", o, rounded, pct, fill+rem, track)
				}
				if !rounded && !near(track, w*l) {
					t.Errorf("%v %v: square track area = %v, want %v", o, pct, track, w*l)
				}
				if pct > 0 && fill == 0 {
					t.Errorf("%v rounded=%v %v: empty fill", o, rounded, pct)
				}
			}
		}
	}
}

func TestBuildProgressSquareExact(t *testing.T) {
	// Fill and Remainder share the head arc exactly, so the square base
	// tiles without approximation error.
	for _, o := range allOrientations {
		for _, pct := range []float64{0.01, 0.25, 0.5, 0.75, 1} {
			pp, _ := BuildProgress(barRect(o), o, pct, false)
			sum := math.Abs(pp.Fill.Area()) + math.Abs(pp.Remainder.Area())
			if !near(sum, 40*300) {
				t.Errorf("%v %v: |fill|+|rem| = %v, want 12000", o, pct, sum)
			}
		}
	}
}

func TestBuildProgressFillArea(t *testing.T) {
	// At 50% a square-base bar is a rectangle up to the head circle centre
	// plus a half disc.
	pp, _ := BuildProgress(barRect(OrientBottom), OrientBottom, 0.5, false)
	r := 20.0
	want := (150-r)*2*r + math.Pi*r*r/2
	if got := math.Abs(pp.Fill.Area()); math.Abs(got-want) > want*1e-3 {
		t.Errorf("fill area = %v, want ~%v", got, want)
	}
}

func TestBuildProgressStaysInside(t *testing.T) {
	for _, o := range allOrientations {
		r := barRect(o)
		for _, rounded := range []bool{false, true} {
			for _, pct := range []float64{0.03, 0.5, 1} {
				pp, _ := BuildProgress(r, o, pct, rounded)
				for _, path := range []*gg.Path{pp.Fill, pp.Remainder, pp.Track} {
					for _, el := range path.Elements() {
						for _, p := range elementPoints(el) {
							if p.X < r.Left-eps || p.X > r.Right+eps || p.Y < r.Top-eps || p.Y > r.Bottom+eps {
								t.Errorf("%v rounded=%v %v: point %v outside %+v", o, rounded, pct, p, r)
							}
						}
					}
				}
			}
		}
	}
}

func elementPoints(el gg.PathElement) []gg.Point {
	switch e := el.(type) {
	case gg.MoveTo:
		return []gg.Point{e.Point}
	case gg.LineTo:
		return []gg.Point{e.Point}
	case gg.CubicTo:
		return []gg.Point{e.Point}
	}
	return nil
}

func TestBuildProgressClamp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{1.7, 1},
		{math.NaN(), 0},
		{0.3, 0.3},
	}
	for _, tt := range tests {
		pp, err := BuildProgress(barRect(OrientLeft), OrientLeft, tt.in, true)
		if err != nil {
			t.Fatal(err)
		}
		if pp.Percent != tt.want {
			t.Errorf("percent %v clamped to %v, want %v", tt.in, pp.Percent, tt.want)
		}
	}
}

func TestBuildProgressRadius(t *testing.T) {
	pp, _ := BuildProgress(NewRect(0, 0, 40, 300), OrientBottom, 0.5, false)
	if pp.Radius != 20 {
		t.Errorf("radius = %v, want 20", pp.Radius)
	}
	// A bar shorter than it is wide limits the radius to half its length.
	pp, _ = BuildProgress(NewRect(0, 0, 40, 10), OrientTop, 0.5, true)
	if pp.Radius != 5 {
		t.Errorf("radius = %v, want 5", pp.Radius)
	}
	pp, _ = BuildProgress(NewRect(0, 0, 0, 100), OrientBottom, 0.5, false)
	if pp.Radius != 0 || len(pp.Fill.Elements()) != 0 {
		t.Errorf("zero-width bar: radius %v, %d fill elements", pp.Radius, len(pp.Fill.Elements()))
	}
}

func TestBuildProgressInvalidOrientation(t *testing.T) {
	_, err := BuildProgress(NewRect(0, 0, 10, 10), Orientation(4), 0.5, false)
	if !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("error = %v, want ErrInvalidOrientation", err)
	}
}

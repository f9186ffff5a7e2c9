package ggchart

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

func pts(xy ...float64) []gg.Point {
	out := make([]gg.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, gg.Pt(xy[i], xy[i+1]))
	}
	return out
}

func TestControlPointsSmall(t *testing.T) {
	if got := ControlPoints(nil); got != nil {
		t.Errorf("ControlPoints(nil) = %v, want nil", got)
	}
	one := ControlPoints(pts(3, 4))
	if diff := cmp.Diff([]ControlPair{{In: gg.Pt(3, 4), Out: gg.Pt(3, 4)}}, one); diff != "" {
		t.Errorf("single point (-want +got):\n%s", diff)
	}
}

func TestControlPointsInterior(t *testing.T) {
	// Middle point of a rising run takes the chord slope (20-0)/(20-0) = 1.
	p := pts(0, 0, 10, 5, 20, 20)
	pairs := ControlPoints(p)
	want := []ControlPair{
		{In: gg.Pt(0, 0), Out: gg.Pt(4, 0)},
		{In: gg.Pt(6, 1), Out: gg.Pt(14, 9)},
		{In: gg.Pt(16, 20), Out: gg.Pt(20, 20)},
	}
	opt := cmp.Comparer(func(a, b gg.Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) })
	if diff := cmp.Diff(want, pairs, opt); diff != "" {
		t.Errorf("ControlPoints mismatch (-want +got):\n%s", diff)
	}
}

func TestControlPointsExtremumIsFlat(t *testing.T) {
	pairs := ControlPoints(pts(0, 0, 1, 9, 2, 4))
	if pairs[1].In.Y != 9 || pairs[1].Out.Y != 9 {
		t.Errorf("peak handles = %+v, want flat at y=9", pairs[1])
	}
	// Equal neighbours on one side count as an extremum too.
	pairs = ControlPoints(pts(0, 13, 1, 13, 2, 23))
	if pairs[1].Out.Y != 13 {
		t.Errorf("plateau handle = %+v, want flat at y=13", pairs[1])
	}
}

func TestControlPointsVerticalNeighbours(t *testing.T) {
	pairs := ControlPoints(pts(5, 0, 5, 3, 5, 9))
	for i, pr := range pairs {
		if math.IsNaN(pr.In.Y) || math.IsNaN(pr.Out.Y) || math.IsInf(pr.In.Y, 0) || math.IsInf(pr.Out.Y, 0) {
			t.Errorf("pair %d not finite: %+v", i, pr)
		}
	}
}

// sampleBand checks every cubic stays within its endpoints' Y band.
func sampleBand(t *testing.T, name string, p []gg.Point) {
	t.Helper()
	segs := Segments(p, ControlPoints(p))
	if len(segs) != len(p)-1 {
		t.Fatalf("%s: %d segments for %d points", name, len(segs), len(p))
	}
	for i, s := range segs {
		lo, hi := math.Min(s.P0.Y, s.P3.Y), math.Max(s.P0.Y, s.P3.Y)
		for k := 0; k <= 64; k++ {
			y := s.Eval(float64(k) / 64).Y
			if y < lo-1e-9 || y > hi+1e-9 {
				t.Errorf("%s: segment %d overshoots at t=%v: y=%v outside [%v, %v]", name, i, float64(k)/64, y, lo, hi)
				break
			}
		}
	}
}

func TestSplineNoOvershoot(t *testing.T) {
	tests := map[string][]gg.Point{
		"monotonic":       pts(0, 0, 1, 10, 2, 11, 3, 30),
		"steep then flat": pts(0, 0, 1, 100, 2, 101, 3, 102),
		"wave":            pts(0, 0, 1, 4, 2, 9, 3, 0, 4, 13, 5, 13, 6, 23),
		"uneven spacing":  pts(0, 5, 0.5, 6, 10, 40, 10.5, 41),
		"descending":      pts(0, 50, 2, 30, 3, 29, 9, 0),
	}
	for name, p := range tests {
		sampleBand(t, name, p)
	}
}

func TestSplineTwoPointsIsStraight(t *testing.T) {
	a, b := gg.Pt(0, 0), gg.Pt(10, 30)
	segs := Segments([]gg.Point{a, b}, ControlPoints([]gg.Point{a, b}))
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	for k := 0; k <= 20; k++ {
		p := segs[0].Eval(float64(k) / 20)
		// Distance from the chord y = 3x.
		if d := math.Abs(3*p.X-p.Y) / math.Sqrt(10); d > 1e-9 {
			t.Errorf("t=%v: point %v is %v off the chord", float64(k)/20, p, d)
		}
	}
}

func TestSplinePath(t *testing.T) {
	if n := len(SplinePath(nil).Elements()); n != 0 {
		t.Errorf("empty SplinePath has %d elements", n)
	}
	path := SplinePath(pts(0, 0, 1, 1, 2, 0))
	el := path.Elements()
	if len(el) != 3 {
		t.Fatalf("got %d elements, want MoveTo + 2 CubicTo", len(el))
	}
	if _, ok := el[0].(gg.MoveTo); !ok {
		t.Errorf("first element %T, want gg.MoveTo", el[0])
	}
	for _, e := range el[1:] {
		if _, ok := e.(gg.CubicTo); !ok {
			t.Errorf("element %T, want gg.CubicTo", e)
		}
	}
	if got := path.CurrentPoint(); got != gg.Pt(2, 0) {
		t.Errorf("path ends at %v, want (2,0)", got)
	}
	if Segments(pts(0, 0, 1, 1), nil) != nil {
		t.Error("Segments with mismatched pairs should be nil")
	}
}

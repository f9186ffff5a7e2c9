package ggchart

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const eps = 1e-4

func near(a, b float64) bool { return math.Abs(a-b) <= eps }

func TestMapperEndpoints(t *testing.T) {
	r := NewRect(10, 20, 210, 120)
	rng := Range{Lower: 0, Upper: 222.2}
	tests := []struct {
		o          Orientation
		start, end float64
	}{
		{OrientBottom, 120, 20},
		{OrientTop, 20, 120},
		{OrientLeft, 10, 210},
		{OrientRight, 210, 10},
	}
	for _, tt := range tests {
		t.Run(tt.o.String(), func(t *testing.T) {
			m, err := NewMapper(r, tt.o, rng)
			if err != nil {
				t.Fatalf("NewMapper: %v", err)
			}
			if m.Start != tt.start || m.End != tt.end {
				t.Errorf("Start/End = %v/%v, want %v/%v", m.Start, m.End, tt.start, tt.end)
			}
			if got := m.Map(rng.Lower); !near(got, tt.start) {
				t.Errorf("Map(lower) = %v, want %v", got, tt.start)
			}
			if got := m.Map(rng.Upper); !near(got, tt.end) {
				t.Errorf("Map(upper) = %v, want %v", got, tt.end)
			}

			// Strictly monotonic in the growth direction.
			dir := math.Copysign(1, tt.end-tt.start)
			prev := m.Map(rng.Lower)
			for v := 10.0; v <= rng.Upper; v += 10 {
				cur := m.Map(v)
				if (cur-prev)*dir <= 0 {
					t.Fatalf("Map not monotonic at %v: %v after %v", v, cur, prev)
				}
				prev = cur
			}
		})
	}
}

func TestMapperZeroSpan(t *testing.T) {
	m, err := NewMapper(NewRect(0, 0, 100, 50), OrientBottom, Range{Lower: 5, Upper: 5})
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []float64{-1, 5, 100} {
		if got := m.Map(v); got != m.Start {
			t.Errorf("Map(%v) = %v, want Start %v", v, got, m.Start)
		}
	}
}

func TestMapperPoint(t *testing.T) {
	r := NewRect(0, 0, 100, 50)
	vm, _ := NewMapper(r, OrientBottom, Range{Lower: 0, Upper: 10})
	if got, want := vm.Point(5, 30), gg.Pt(30, 25); got != want {
		t.Errorf("vertical Point = %v, want %v", got, want)
	}
	hm, _ := NewMapper(r, OrientRight, Range{Lower: 0, Upper: 10})
	if got, want := hm.Point(5, 30), gg.Pt(50, 30); got != want {
		t.Errorf("horizontal Point = %v, want %v", got, want)
	}

	cm, err := CrossMapper(r, OrientBottom)
	if err != nil {
		t.Fatal(err)
	}
	if cm.Start != 0 || cm.End != 100 {
		t.Errorf("cross Start/End = %v/%v, want 0/100", cm.Start, cm.End)
	}
	if got, want := cm.Point(0.25, 40), gg.Pt(25, 40); got != want {
		t.Errorf("cross Point = %v, want %v", got, want)
	}
	cl, _ := CrossMapper(r, OrientLeft)
	if cl.Start != 0 || cl.End != 50 || cl.Length() != 50 {
		t.Errorf("cross (left) = %+v, want 0..50", cl)
	}
}

func TestMapperInvalidOrientation(t *testing.T) {
	if _, err := NewMapper(NewRect(0, 0, 1, 1), Orientation(9), Range{}); !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("NewMapper error = %v, want ErrInvalidOrientation", err)
	}
	if _, err := CrossMapper(NewRect(0, 0, 1, 1), Orientation(-1)); !errors.Is(err, ErrInvalidOrientation) {
		t.Errorf("CrossMapper error = %v, want ErrInvalidOrientation", err)
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in      string
		want    Orientation
		wantErr bool
	}{
		{"bottom", OrientBottom, false},
		{"Top", OrientTop, false},
		{" LEFT ", OrientLeft, false},
		{"right", OrientRight, false},
		{"diagonal", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseOrientation(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOrientation(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidOrientation) {
			t.Errorf("ParseOrientation(%q) error = %v, want ErrInvalidOrientation", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseOrientation(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if s := Orientation(7).String(); s != "Orientation(7)" {
		t.Errorf("String() = %q", s)
	}
	if !OrientTop.Vertical() || OrientLeft.Vertical() || Orientation(7).Vertical() {
		t.Error("Vertical() mismatch")
	}
}

func TestOrientationFrame(t *testing.T) {
	r := NewRect(10, 20, 50, 220)
	for o := OrientBottom; o <= OrientRight; o++ {
		spec := orientTable[o]
		m := spec.frame(r)
		base := m.TransformPoint(gg.Pt(0, 0))
		far := m.TransformPoint(gg.Pt(spec.length(r), 0))

		wantBase := spec.point(r.Edge(spec.base), centreAcross(spec, r))
		wantFar := spec.point(r.Edge(spec.far), centreAcross(spec, r))
		if !near(base.X, wantBase.X) || !near(base.Y, wantBase.Y) {
			t.Errorf("%v: frame origin = %v, want %v", o, base, wantBase)
		}
		if !near(far.X, wantFar.X) || !near(far.Y, wantFar.Y) {
			t.Errorf("%v: frame far end = %v, want %v", o, far, wantFar)
		}
	}
}

func centreAcross(s orientSpec, r Rect) float64 {
	lo, hi := s.cross(r)
	return (lo + hi) / 2
}

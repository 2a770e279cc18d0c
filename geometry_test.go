package charts

import (
	"math"
	"testing"
)

func TestPolarToCartesian(t *testing.T) {
	tests := []struct {
		CX, CY, Radius, Angle float64
		Want                  Pos
	}{
		{
			Radius: 1,
			Want:   NewPos(1, 0),
		},
		{
			CX:     10,
			CY:     10,
			Radius: 5,
			Angle:  math.Pi / 2,
			Want:   NewPos(10, 15),
		},
		{
			CX:     100,
			CY:     50,
			Radius: 20,
			Angle:  math.Pi,
			Want:   NewPos(80, 50),
		},
	}
	for _, c := range tests {
		got := PolarToCartesian(c.CX, c.CY, c.Radius, c.Angle)
		if !samePos(got, c.Want) {
			t.Errorf("position mismatched! want %v - got %v", c.Want, got)
		}
	}
}

func TestPieSlicePathLargeArc(t *testing.T) {
	tests := []struct {
		End  float64
		Want bool
	}{
		{End: 1.5 * math.Pi, Want: true},
		{End: 0.5 * math.Pi, Want: false},
		{End: math.Pi, Want: false},
		{End: math.Pi + 0.01, Want: true},
	}
	for _, c := range tests {
		arcs := PieSlicePath(0, 0, 10, 0, c.End).Arcs()
		if len(arcs) != 1 {
			t.Errorf("%f: expected one arc, got %d", c.End, len(arcs))
			continue
		}
		if got := arcs[0].LargeArc(); got != c.Want {
			t.Errorf("%f: large arc flag mismatched! want %t - got %t", c.End, c.Want, got)
		}
		if !arcs[0].Sweep() {
			t.Errorf("%f: pie arc should sweep clockwise", c.End)
		}
	}
}

func TestPieSlicePathString(t *testing.T) {
	got := PieSlicePath(0, 0, 10, 0, math.Pi/2).String()
	want := "M0 0 L10 0 A10 10 0 0 1 0 10 Z"
	if got != want {
		t.Errorf("path mismatched! want %s - got %s", want, got)
	}
}

func TestDonutSlicePath(t *testing.T) {
	tests := []struct {
		Start, End float64
		Large      bool
	}{
		{Start: 0, End: 1.5 * math.Pi, Large: true},
		{Start: 0.2, End: 1.2, Large: false},
	}
	for _, c := range tests {
		pat := DonutSlicePath(50, 50, 40, 24, c.Start, c.End)
		arcs := pat.Arcs()
		if len(arcs) != 2 {
			t.Fatalf("expected two arcs, got %d", len(arcs))
		}
		outer, inner := arcs[0], arcs[1]
		if !outer.Sweep() || inner.Sweep() {
			t.Errorf("sweep flags mismatched: outer %t, inner %t", outer.Sweep(), inner.Sweep())
		}
		if outer.LargeArc() != c.Large || inner.LargeArc() != c.Large {
			t.Errorf("large arc flags mismatched! want %t - got %t/%t", c.Large, outer.LargeArc(), inner.LargeArc())
		}
		if outer.Args[0] != 40 || inner.Args[0] != 24 {
			t.Errorf("radius mismatched! got %f/%f", outer.Args[0], inner.Args[0])
		}
		end, _ := inner.End()
		if want := PolarToCartesian(50, 50, 24, c.Start); !samePos(end, want) {
			t.Errorf("inner arc should end at start angle! want %v - got %v", want, end)
		}
	}
}

func TestFullCircleSlice(t *testing.T) {
	pat := PieSlicePath(0, 0, 10, 0, 2*math.Pi)
	arcs := pat.Arcs()
	if len(arcs) != 2 {
		t.Fatalf("full circle should be drawn with two arcs, got %d", len(arcs))
	}
	for _, a := range arcs {
		if a.LargeArc() {
			t.Errorf("half arcs should not use the large arc flag")
		}
	}
	mid, _ := arcs[0].End()
	if !samePos(mid, NewPos(-10, 0)) {
		t.Errorf("first half should stop opposite to the start, got %v", mid)
	}

	arcs = DonutSlicePath(0, 0, 10, 6, 0, 2*math.Pi).Arcs()
	if len(arcs) != 4 {
		t.Fatalf("full ring should be drawn with four arcs, got %d", len(arcs))
	}
}

func samePos(a, b Pos) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

package charts

import (
	"testing"
)

func TestNumberScaler(t *testing.T) {
	scale := NumberScaler(NumberDomain(100, 0), NewRange(40, 260))
	tests := []struct {
		Value float64
		Want  float64
	}{
		{Value: 100, Want: 40},
		{Value: 0, Want: 260},
		{Value: 50, Want: 150},
	}
	for _, c := range tests {
		if got := scale.Scale(c.Value); got != c.Want {
			t.Errorf("%f: scaled value mismatched! want %f - got %f", c.Value, c.Want, got)
		}
	}
}

func TestBandScaler(t *testing.T) {
	scale := BandScaler(4, NewRange(40, 360))
	if got := scale.Space(); got != 80 {
		t.Errorf("band mismatched! want 80 - got %f", got)
	}
	for i, want := range []float64{40, 120, 200, 280} {
		if got := scale.Scale(i); got != want {
			t.Errorf("%d: band start mismatched! want %f - got %f", i, want, got)
		}
	}
}

func TestPointScaler(t *testing.T) {
	scale := PointScaler(5, NewRange(40, 360))
	if got := scale.Space(); got != 80 {
		t.Errorf("spacing mismatched! want 80 - got %f", got)
	}
	if got := scale.Scale(4); got != 360 {
		t.Errorf("last point should be at the end of the range, got %f", got)
	}

	single := PointScaler(1, NewRange(40, 360))
	if got := single.Space(); got != 0 {
		t.Errorf("single point should have no spacing, got %f", got)
	}
	if got := single.Scale(0); got != 200 {
		t.Errorf("single point should be centered! want 200 - got %f", got)
	}
}

func TestViewportGridLines(t *testing.T) {
	got := DefaultViewport().GridLines()
	want := []float64{40, 84, 128, 172, 216, 260}
	if len(got) != len(want) {
		t.Fatalf("grid lines count mismatched! want %d - got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%d: grid line mismatched! want %f - got %f", i, want[i], got[i])
		}
	}
}

func TestViewportValidate(t *testing.T) {
	tests := []struct {
		Viewport
		Valid bool
	}{
		{Viewport: DefaultViewport(), Valid: true},
		{Viewport: Viewport{Width: 0, Height: 300}},
		{Viewport: Viewport{Width: 60, Height: 300, Padding: UniformPadding(40), Margin: 10}},
		{Viewport: Viewport{Width: 400, Height: 300, Margin: 150}},
	}
	for _, c := range tests {
		err := c.Validate()
		if c.Valid && err != nil {
			t.Errorf("%v: unexpected error: %s", c.Viewport, err)
		}
		if !c.Valid && err == nil {
			t.Errorf("%v: expected an error", c.Viewport)
		}
	}
}

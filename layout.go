package charts

import (
	"fmt"
)

const (
	DefaultWidth   = 400.0
	DefaultHeight  = 300.0
	DefaultPadding = 40.0
	DefaultMargin  = 20.0

	// DonutRatio is the inner radius of a donut relative to its outer radius.
	DonutRatio = 0.6
	// BarRatio is the share of its band a bar occupies.
	BarRatio = 0.8
	// GridDivisions is the number of equal parts the grid splits the plot in.
	GridDivisions = 5
)

type Padding struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

func UniformPadding(size float64) Padding {
	return Padding{
		Top:    size,
		Right:  size,
		Bottom: size,
		Left:   size,
	}
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Viewport is the logical coordinate space charts are computed in. Line and
// bar charts plot inside the padding, pie and donut charts keep Margin
// between their outer radius and the closest edge.
type Viewport struct {
	Width  float64
	Height float64
	Padding
	Margin float64
}

func DefaultViewport() Viewport {
	return Viewport{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Padding: UniformPadding(DefaultPadding),
		Margin:  DefaultMargin,
	}
}

func (v Viewport) DrawingWidth() float64 {
	return v.Width - v.Padding.Horizontal()
}

func (v Viewport) DrawingHeight() float64 {
	return v.Height - v.Padding.Vertical()
}

func (v Viewport) Baseline() float64 {
	return v.Padding.Top + v.DrawingHeight()
}

func (v Viewport) Radius() float64 {
	return min(v.Width, v.Height)/2 - v.Margin
}

func (v Viewport) InnerRadius() float64 {
	return v.Radius() * DonutRatio
}

// Center gives the center of a pie or donut. When a legend is drawn the
// circle moves left to leave the right side of the viewport to the legend.
func (v Viewport) Center(legend bool) Pos {
	if legend && v.Width > v.Height {
		return NewPos(v.Height/2, v.Height/2)
	}
	return NewPos(v.Width/2, v.Height/2)
}

func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidViewport, v.Width, v.Height)
	}
	if v.DrawingWidth() <= 0 || v.DrawingHeight() <= 0 {
		return fmt.Errorf("%w: padding leaves no room to draw", ErrInvalidViewport)
	}
	if v.Radius() <= 0 {
		return fmt.Errorf("%w: margin leaves no room to draw", ErrInvalidViewport)
	}
	return nil
}

func (v Viewport) horizontal() Range {
	return NewRange(v.Padding.Left, v.Padding.Left+v.DrawingWidth())
}

func (v Viewport) vertical() Range {
	return NewRange(v.Padding.Top, v.Baseline())
}

// SpanScaler maps values from [floor, peak] onto the plot height, peak at
// the top. The span always includes zero so that bars keep a common origin.
func (v Viewport) SpanScaler(peak, floor float64) Scaler[float64] {
	peak = max(peak, 0)
	floor = min(floor, 0)
	if peak == floor {
		peak = 1
	}
	return NumberScaler(NumberDomain(peak, floor), v.vertical())
}

func (v Viewport) BandScaler(count int) Scaler[int] {
	return BandScaler(count, v.horizontal())
}

func (v Viewport) PointScaler(count int) Scaler[int] {
	return PointScaler(count, v.horizontal())
}

// GridLines gives the y coordinates of the horizontal reference lines, from
// the top of the plot to the baseline. They do not depend on the data.
func (v Viewport) GridLines() []float64 {
	var (
		list = make([]float64, 0, GridDivisions+1)
		step = v.DrawingHeight() / GridDivisions
	)
	for i := 0; i <= GridDivisions; i++ {
		list = append(list, v.Padding.Top+float64(i)*step)
	}
	return list
}

package charts

import (
	"math"
)

const (
	fullcircle = 2 * math.Pi
	halfcircle = math.Pi
	epsilon    = 1e-9
)

type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

type Dim struct {
	W float64
	H float64
}

func NewDim(w, h float64) Dim {
	return Dim{
		W: w,
		H: h,
	}
}

// PolarToCartesian converts an angle in radians, measured from the positive
// x axis, to a position on the circle of the given radius. With the y axis
// pointing down, increasing angles run clockwise on screen.
func PolarToCartesian(cx, cy, radius, angle float64) Pos {
	return NewPos(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
}

// PieSlicePath traces a wedge: center, arc start, arc end, back to center.
func PieSlicePath(cx, cy, radius, start, end float64) Path {
	var pat Path
	pat.AbsMoveTo(NewPos(cx, cy))
	pat.AbsLineTo(PolarToCartesian(cx, cy, radius, start))
	arcTo(&pat, cx, cy, radius, start, end, true)
	pat.ClosePath()
	return pat
}

// DonutSlicePath traces an annular wedge: forward along the outer arc,
// then backward along the inner one with the opposite sweep.
func DonutSlicePath(cx, cy, outer, inner, start, end float64) Path {
	var pat Path
	pat.AbsMoveTo(PolarToCartesian(cx, cy, outer, start))
	arcTo(&pat, cx, cy, outer, start, end, true)
	pat.AbsLineTo(PolarToCartesian(cx, cy, inner, end))
	arcTo(&pat, cx, cy, inner, end, start, false)
	pat.ClosePath()
	return pat
}

func arcTo(pat *Path, cx, cy, radius, from, to float64, sweep bool) {
	if isFullCircle(from, to) {
		mid := (from + to) / 2
		pat.AbsArcTo(PolarToCartesian(cx, cy, radius, mid), radius, radius, 0, false, sweep)
		from = mid
	}
	pat.AbsArcTo(PolarToCartesian(cx, cy, radius, to), radius, radius, 0, isLargeArc(from, to), sweep)
}

func isLargeArc(start, end float64) bool {
	return math.Abs(end-start) > halfcircle
}

// an arc whose end point equals its start point is not drawn at all.
func isFullCircle(start, end float64) bool {
	return math.Abs(end-start) >= fullcircle-epsilon
}

package charts

import (
	"slices"
)

type ShapeKind int

const (
	KindPath ShapeKind = iota
	KindRect
	KindCircle
	KindLine
	KindText
)

func (k ShapeKind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Shape is one record of a scene: its kind, its geometry and its style.
// Index refers to the data point the shape stands for, -1 for decorations
// (grid, labels, legend).
type Shape struct {
	Kind  ShapeKind
	Class []string
	Index int

	Pos    Pos
	End    Pos
	Dim    Dim
	Radius float64
	Path   Path
	Text   string

	Paint Paint
	Font  Font

	Tooltip string
}

func (s Shape) Interactive() bool {
	return s.Tooltip != ""
}

func (s Shape) Is(class string) bool {
	return slices.Contains(s.Class, class)
}

type Slice struct {
	Label string
	Value float64
	Share float64
	Start float64
	End   float64
	Color string
}

func (s Slice) Extent() float64 {
	return s.End - s.Start
}

type LegendEntry struct {
	Label string
	Color string
}

// Scene is the immutable description of a rendered chart. It is produced by
// a Renderer and translated to SVG by WriteSVG.
type Scene struct {
	Type     ChartType
	Title    string
	Viewport Viewport
	Theme    Theme
	Shapes   []Shape
	Slices   []Slice
	Legend   []LegendEntry
	Animated bool
	Empty    bool
}

func (s Scene) Filter(class string) []Shape {
	var list []Shape
	for _, el := range s.Shapes {
		if el.Is(class) {
			list = append(list, el)
		}
	}
	return list
}

func (s Scene) Interactive() []Shape {
	var list []Shape
	for _, el := range s.Shapes {
		if el.Interactive() {
			list = append(list, el)
		}
	}
	return list
}

func (s *Scene) append(el ...Shape) {
	s.Shapes = append(s.Shapes, el...)
}

var DefaultSize float64 = MarkerRadius * 2

type PointFunc func(Pos, Paint) Shape

func MarkerFunc(name string) PointFunc {
	switch name {
	case "square":
		return GetSquare
	case "diamond":
		return GetDiamond
	default:
		return GetCircle
	}
}

func GetCircle(pos Pos, paint Paint) Shape {
	return Shape{
		Kind:   KindCircle,
		Class:  []string{"marker"},
		Pos:    pos,
		Radius: DefaultSize / 2,
		Paint:  paint,
	}
}

func GetSquare(pos Pos, paint Paint) Shape {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half
	return Shape{
		Kind:  KindRect,
		Class: []string{"marker"},
		Pos:   pos,
		Dim:   NewDim(DefaultSize, DefaultSize),
		Paint: paint,
	}
}

func GetDiamond(pos Pos, paint Paint) Shape {
	var (
		half = DefaultSize / 2
		pat  Path
	)
	pat.AbsMoveTo(NewPos(pos.X, pos.Y-half))
	pat.AbsLineTo(NewPos(pos.X+half, pos.Y))
	pat.AbsLineTo(NewPos(pos.X, pos.Y+half))
	pat.AbsLineTo(NewPos(pos.X-half, pos.Y))
	pat.ClosePath()
	return Shape{
		Kind:  KindPath,
		Class: []string{"marker"},
		Pos:   pos,
		Path:  pat,
		Paint: paint,
	}
}

func newText(str string, pos Pos, font Font, color string, class ...string) Shape {
	return Shape{
		Kind:  KindText,
		Class: class,
		Index: -1,
		Pos:   pos,
		Text:  str,
		Font:  font,
		Paint: FillPaint(color),
	}
}

func newLine(from, to Pos, paint Paint, class ...string) Shape {
	return Shape{
		Kind:  KindLine,
		Class: class,
		Index: -1,
		Pos:   from,
		End:   to,
		Paint: paint,
	}
}

func newRect(pos Pos, dim Dim, paint Paint, class ...string) Shape {
	return Shape{
		Kind:  KindRect,
		Class: class,
		Index: -1,
		Pos:   pos,
		Dim:   dim,
		Paint: paint,
	}
}

func newPath(pat Path, paint Paint, class ...string) Shape {
	return Shape{
		Kind:  KindPath,
		Class: class,
		Index: -1,
		Path:  pat,
		Paint: paint,
	}
}

package charts

import (
	"strconv"
	"strings"
)

const (
	FontSize     = 12.0
	LineWidth    = 3.0
	MarkerRadius = 4.0
	MarkerStroke = 2.0
)

type Paint struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	LineCap     string
	LineJoin    string
	Opacity     float64
}

func FillPaint(color string) Paint {
	return Paint{
		Fill: color,
	}
}

func StrokePaint(color string, width float64) Paint {
	return Paint{
		Fill:        "none",
		Stroke:      color,
		StrokeWidth: width,
	}
}

func (p Paint) css() string {
	var list []string
	if p.Fill != "" {
		list = append(list, "fill:"+p.Fill)
	}
	if p.Stroke != "" {
		list = append(list, "stroke:"+p.Stroke)
	}
	if p.StrokeWidth > 0 {
		list = append(list, "stroke-width:"+formatCoord(p.StrokeWidth))
	}
	if p.LineCap != "" {
		list = append(list, "stroke-linecap:"+p.LineCap)
	}
	if p.LineJoin != "" {
		list = append(list, "stroke-linejoin:"+p.LineJoin)
	}
	if p.Opacity > 0 && p.Opacity < 1 {
		list = append(list, "opacity:"+strconv.FormatFloat(p.Opacity, 'f', -1, 64))
	}
	return strings.Join(list, ";")
}

type Font struct {
	Size     float64
	Weight   string
	Anchor   string
	Baseline string
}

func NewFont(size float64) Font {
	return Font{
		Size:   size,
		Anchor: "middle",
	}
}

func (f Font) css() string {
	var list []string
	if f.Size > 0 {
		list = append(list, "font-size:"+formatCoord(f.Size)+"px")
	}
	if f.Weight != "" {
		list = append(list, "font-weight:"+f.Weight)
	}
	if f.Anchor != "" {
		list = append(list, "text-anchor:"+f.Anchor)
	}
	if f.Baseline != "" {
		list = append(list, "dominant-baseline:"+f.Baseline)
	}
	return strings.Join(list, ";")
}

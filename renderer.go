package charts

import (
	"math"
	"strconv"
	"strings"
)

// Renderer turns a dataset into the scene of one kind of chart. It does not
// keep any state between calls.
type Renderer interface {
	Render(Dataset, Options) (Scene, error)
}

func NewRenderer(t ChartType, vp Viewport, theme Theme) (Renderer, error) {
	switch t {
	case TypeLine:
		return LineRenderer{Viewport: vp, Theme: theme}, nil
	case TypeBar:
		return BarRenderer{Viewport: vp, Theme: theme, Width: BarRatio}, nil
	case TypePie:
		return PieRenderer{Viewport: vp, Theme: theme}, nil
	case TypeDonut:
		return DonutRenderer{Viewport: vp, Theme: theme}, nil
	default:
		return nil, UnsupportedTypeError{Type: string(t)}
	}
}

type LineRenderer struct {
	Viewport Viewport
	Theme    Theme
	Point    PointFunc
}

func (r LineRenderer) Render(data Dataset, opts Options) (Scene, error) {
	scene, err := newScene(TypeLine, r.Viewport, r.Theme, opts)
	if err != nil {
		return scene, err
	}
	if err := data.checkFinite(); err != nil {
		return scene, err
	}
	if len(data) == 0 {
		return emptyScene(scene), nil
	}
	color, err := scene.Theme.fill("", TokenPrimary)
	if err != nil {
		return scene, err
	}
	ring, err := scene.Theme.fill("", TokenBackground)
	if err != nil {
		return scene, err
	}
	if r.Point == nil {
		r.Point = MarkerFunc(opts.Marker)
	}
	scene.append(axisDecorations(r.Viewport, scene.Theme, opts)...)

	var (
		xs      = r.Viewport.PointScaler(len(data))
		ys      = r.Viewport.SpanScaler(data.Max(), data.Min())
		pat     Path
		markers []Shape
		labels  []Shape
	)
	for i, pt := range data {
		pos := NewPos(xs.Scale(i), ys.Scale(pt.Value))
		if i == 0 {
			pat.AbsMoveTo(pos)
		} else {
			pat.AbsLineTo(pos)
		}
		fill, err := scene.Theme.fill(pt.Color, color)
		if err != nil {
			return scene, err
		}
		el := r.Point(pos, Paint{
			Fill:        fill,
			Stroke:      ring,
			StrokeWidth: MarkerStroke,
		})
		el.Index = i
		el.Tooltip = lineTooltip(pt, opts)
		markers = append(markers, el)

		if opts.ShowValues {
			labels = append(labels, valueText(FormatNumber(pt.Value), pos.X, pos.Y-MarkerRadius, scene.Theme))
		}
		if opts.ShowLabels {
			labels = append(labels, categoryText(pt.Label, pos.X, r.Viewport, scene.Theme))
		}
	}
	if len(data) > 1 {
		line := newPath(pat, Paint{
			Fill:        "none",
			Stroke:      color,
			StrokeWidth: LineWidth,
			LineCap:     "round",
			LineJoin:    "round",
		}, "line")
		scene.append(line)
	}
	scene.append(markers...)
	scene.append(labels...)
	return scene, nil
}

type BarRenderer struct {
	Viewport Viewport
	Theme    Theme
	Width    float64
}

func (r BarRenderer) Render(data Dataset, opts Options) (Scene, error) {
	if r.Width <= 0 || r.Width > 1 {
		r.Width = BarRatio
	}
	scene, err := newScene(TypeBar, r.Viewport, r.Theme, opts)
	if err != nil {
		return scene, err
	}
	if err := data.checkFinite(); err != nil {
		return scene, err
	}
	if len(data) == 0 {
		return emptyScene(scene), nil
	}
	color, err := scene.Theme.fill("", TokenPrimary)
	if err != nil {
		return scene, err
	}
	scene.append(axisDecorations(r.Viewport, scene.Theme, opts)...)

	var (
		xs     = r.Viewport.BandScaler(len(data))
		ys     = r.Viewport.SpanScaler(data.Max(), data.Min())
		zero   = ys.Scale(0)
		labels []Shape
	)
	for i, pt := range data {
		var (
			w = xs.Space() * r.Width
			o = (xs.Space() - w) / 2
			x = xs.Scale(i) + o
			y = min(ys.Scale(pt.Value), zero)
			h = math.Abs(ys.Scale(pt.Value) - zero)
		)
		fill, err := scene.Theme.fill(pt.Color, color)
		if err != nil {
			return scene, err
		}
		el := newRect(NewPos(x, y), NewDim(w, h), FillPaint(fill), "bar")
		el.Index = i
		el.Tooltip = barTooltip(pt, opts)
		scene.append(el)

		if opts.ShowValues {
			top := y
			if pt.Value < 0 {
				top = y + h + FontSize
			}
			labels = append(labels, valueText(FormatNumber(pt.Value), x+w/2, top, scene.Theme))
		}
		if opts.ShowLabels {
			labels = append(labels, categoryText(pt.Label, x+w/2, r.Viewport, scene.Theme))
		}
	}
	scene.append(labels...)
	return scene, nil
}

type PieRenderer struct {
	Viewport Viewport
	Theme    Theme
}

func (r PieRenderer) Render(data Dataset, opts Options) (Scene, error) {
	scene, err := newScene(TypePie, r.Viewport, r.Theme, opts)
	if err != nil {
		return scene, err
	}
	if err := data.checkProportions(); err != nil {
		return scene, err
	}
	if len(data) == 0 || data.Total() <= 0 {
		return emptyScene(scene), nil
	}
	parts, err := sliceLayout(data, scene.Theme)
	if err != nil {
		return scene, err
	}
	var (
		center = r.Viewport.Center(opts.ShowLegend)
		radius = r.Viewport.Radius()
	)
	for i, s := range parts {
		if s.Extent() <= 0 {
			continue
		}
		pat := PieSlicePath(center.X, center.Y, radius, s.Start, s.End)
		scene.append(sliceShape(i, s, pat, scene.Theme))
	}
	if opts.ShowValues {
		scene.append(shareLabels(parts, center, radius*0.65, scene.Theme)...)
	}
	scene.Slices = parts
	return withLegend(scene, opts), nil
}

type DonutRenderer struct {
	Viewport Viewport
	Theme    Theme
}

func (r DonutRenderer) Render(data Dataset, opts Options) (Scene, error) {
	scene, err := newScene(TypeDonut, r.Viewport, r.Theme, opts)
	if err != nil {
		return scene, err
	}
	if err := data.checkProportions(); err != nil {
		return scene, err
	}
	if len(data) == 0 || data.Total() <= 0 {
		return emptyScene(scene), nil
	}
	parts, err := sliceLayout(data, scene.Theme)
	if err != nil {
		return scene, err
	}
	var (
		center = r.Viewport.Center(opts.ShowLegend)
		outer  = r.Viewport.Radius()
		inner  = r.Viewport.InnerRadius()
	)
	for i, s := range parts {
		if s.Extent() <= 0 {
			continue
		}
		pat := DonutSlicePath(center.X, center.Y, outer, inner, s.Start, s.End)
		scene.append(sliceShape(i, s, pat, scene.Theme))
	}
	if opts.ShowValues {
		scene.append(shareLabels(parts, center, (outer+inner)/2, scene.Theme)...)
	}
	scene.append(centerLabel(data, opts, center, scene.Theme)...)
	scene.Slices = parts
	return withLegend(scene, opts), nil
}

func centerLabel(data Dataset, opts Options, center Pos, theme Theme) []Shape {
	value := opts.Center
	if value == "" {
		value = strconv.FormatFloat(CenterValue(data), 'f', 1, 64)
	}
	vf := NewFont(FontSize * 2)
	vf.Weight = "bold"
	vf.Baseline = "auto"

	cf := NewFont(FontSize)
	cf.Baseline = "hanging"

	return []Shape{
		newText(value, NewPos(center.X, center.Y), vf, theme.Foreground, "center", "center-value"),
		newText(opts.caption(), NewPos(center.X, center.Y+FontSize*0.4), cf, theme.Muted, "center", "center-caption"),
	}
}

// CenterValue is the summary shown in the hollow of a donut. When every
// label is a number (a distribution of ratings for example) it is the
// average of the labels weighted by the values, otherwise the mean of the
// values.
func CenterValue(data Dataset) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum, weight float64
	for _, pt := range data {
		n, err := strconv.ParseFloat(strings.TrimSpace(pt.Label), 64)
		if err != nil {
			return data.Total() / float64(len(data))
		}
		sum += n * pt.Value
		weight += pt.Value
	}
	if weight == 0 {
		return 0
	}
	return sum / weight
}

// sliceLayout accumulates the angle of each slice from 0. The last slice
// always ends at exactly one full turn.
func sliceLayout(data Dataset, theme Theme) ([]Slice, error) {
	var (
		total = data.Total()
		list  = make([]Slice, 0, len(data))
		angle float64
	)
	for i, pt := range data {
		var (
			share = pt.Value / total
			end   = angle + share*fullcircle
		)
		if i == len(data)-1 {
			end = fullcircle
		}
		fallback := theme.Palette.At(i)
		if fallback == "" {
			fallback = TokenPrimary
		}
		color, err := theme.fill(pt.Color, fallback)
		if err != nil {
			return nil, err
		}
		list = append(list, Slice{
			Label: pt.Label,
			Value: pt.Value,
			Share: share,
			Start: angle,
			End:   end,
			Color: color,
		})
		angle = end
	}
	return list, nil
}

func sliceShape(i int, s Slice, pat Path, theme Theme) Shape {
	el := newPath(pat, Paint{
		Fill:        s.Color,
		Stroke:      theme.Background,
		StrokeWidth: 1,
	}, "slice")
	el.Index = i
	el.Tooltip = sliceTooltip(s)
	return el
}

func shareLabels(parts []Slice, center Pos, radius float64, theme Theme) []Shape {
	var list []Shape
	for _, s := range parts {
		if s.Extent() <= 0 {
			continue
		}
		var (
			pos  = PolarToCartesian(center.X, center.Y, radius, s.Start+s.Extent()/2)
			font = NewFont(FontSize)
		)
		font.Baseline = "middle"
		font.Weight = "500"
		list = append(list, newText(FormatPercent(s.Share), pos, font, theme.Background, "value"))
	}
	return list
}

func withLegend(scene Scene, opts Options) Scene {
	if !opts.ShowLegend {
		return scene
	}
	for _, s := range scene.Slices {
		scene.Legend = append(scene.Legend, LegendEntry{
			Label: s.Label,
			Color: s.Color,
		})
	}
	scene.append(drawLegend(scene.Legend, scene.Viewport, scene.Theme)...)
	return scene
}

func axisDecorations(vp Viewport, theme Theme, opts Options) []Shape {
	var list []Shape
	if opts.ShowGrid {
		list = append(list, drawGrid(vp, theme)...)
	} else {
		list = append(list, domainLine(vp, theme))
	}
	if opts.Title != "" {
		font := NewFont(FontSize * 1.2)
		font.Weight = "600"
		font.Baseline = "middle"
		list = append(list, newText(opts.Title, NewPos(vp.Width/2, vp.Padding.Top/2), font, theme.Foreground, "title"))
	}
	return list
}

func newScene(t ChartType, vp Viewport, theme Theme, opts Options) (Scene, error) {
	theme = opts.Theme.Merge(theme)
	scene := Scene{
		Type:     t,
		Title:    opts.Title,
		Viewport: vp,
		Theme:    theme,
		Animated: opts.Animated,
	}
	if err := vp.Validate(); err != nil {
		return scene, err
	}
	var err error
	scene.Theme, err = theme.normalize()
	return scene, err
}

func emptyScene(scene Scene) Scene {
	scene.Empty = true
	scene.append(placeholder(scene.Viewport, scene.Theme))
	return scene
}

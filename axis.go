package charts

const labelGap = FontSize * 0.8

func drawGrid(vp Viewport, theme Theme) []Shape {
	var (
		list  []Shape
		paint = StrokePaint(theme.Border, 1)
		rg    = vp.horizontal()
	)
	for _, y := range vp.GridLines() {
		el := newLine(NewPos(rg.Min(), y), NewPos(rg.Max(), y), paint, "grid")
		list = append(list, el)
	}
	return list
}

func domainLine(vp Viewport, theme Theme) Shape {
	var (
		rg = vp.horizontal()
		y  = vp.Baseline()
	)
	return newLine(NewPos(rg.Min(), y), NewPos(rg.Max(), y), StrokePaint(theme.Border, 1), "axis")
}

// categoryText is the label drawn under the baseline at x.
func categoryText(str string, x float64, vp Viewport, theme Theme) Shape {
	font := NewFont(FontSize)
	font.Baseline = "hanging"
	return newText(str, NewPos(x, vp.Baseline()+labelGap), font, theme.Muted, "label")
}

// valueText is the label drawn right above a bar whose top is at y.
func valueText(str string, x, y float64, theme Theme) Shape {
	font := NewFont(FontSize)
	font.Baseline = "auto"
	font.Weight = "500"
	return newText(str, NewPos(x, y-labelGap/2), font, theme.Foreground, "value")
}

func placeholder(vp Viewport, theme Theme) Shape {
	font := NewFont(FontSize * 1.2)
	font.Baseline = "middle"
	return newText("No data", NewPos(vp.Width/2, vp.Height/2), font, theme.Muted, "placeholder")
}

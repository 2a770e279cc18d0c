package charts

type Orientation int

const (
	OrientRight Orientation = 1 << iota
	OrientBottom
)

const swatchSize = FontSize

func legendOrientation(vp Viewport) Orientation {
	if vp.Width > vp.Height {
		return OrientRight
	}
	return OrientBottom
}

// drawLegend lays out one swatch and one label per entry, on the right of
// the circle when the viewport is wider than tall, under it otherwise.
func drawLegend(entries []LegendEntry, vp Viewport, theme Theme) []Shape {
	if len(entries) == 0 {
		return nil
	}
	var (
		offset = FontSize * 1.6
		list   []Shape
		left   float64
		top    float64
	)
	switch legendOrientation(vp) {
	case OrientRight:
		height := float64(len(entries)) * offset
		left = vp.Center(true).X + vp.Radius() + vp.Margin
		top = (vp.Height - height + offset) / 2
	case OrientBottom:
		left = vp.Margin
		top = vp.Height - vp.Margin/2
	}
	for i, e := range entries {
		var pos Pos
		if legendOrientation(vp) == OrientRight {
			pos = NewPos(left, top+float64(i)*offset)
		} else {
			pos = NewPos(left+float64(i)*(vp.Width-vp.Margin*2)/float64(len(entries)), top)
		}
		sw := newRect(NewPos(pos.X, pos.Y-swatchSize/2), NewDim(swatchSize, swatchSize), FillPaint(e.Color), "legend", "legend-swatch")
		sw.Index = i

		font := NewFont(FontSize)
		font.Anchor = "start"
		font.Baseline = "middle"
		tx := newText(e.Label, NewPos(pos.X+swatchSize*1.5, pos.Y), font, theme.Foreground, "legend", "legend-label")
		tx.Index = i

		list = append(list, sw, tx)
	}
	return list
}

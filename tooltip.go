package charts

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	DefaultCurrency = "$"
	DefaultCaption  = "Average"
)

// TooltipOffset is added to the pointer position when the tooltip shows.
var TooltipOffset = NewPos(12, -12)

// Tooltip is the state of the tooltip shared by every shape of a chart.
// It is not kept inside the viewport: near the edges it may be drawn
// partially outside.
type Tooltip struct {
	Content string
	Pos     Pos
	Index   int
	Visible bool
}

// Enter shows the tooltip of shape next to the pointer. Shapes without a
// tooltip leave the state untouched.
func (t *Tooltip) Enter(shape Shape, pointer Pos) bool {
	if !shape.Interactive() {
		return false
	}
	t.Content = shape.Tooltip
	t.Index = shape.Index
	t.Pos = NewPos(pointer.X+TooltipOffset.X, pointer.Y+TooltipOffset.Y)
	t.Visible = true
	return true
}

func (t *Tooltip) Leave() {
	t.Visible = false
}

func (t Tooltip) Class() string {
	if t.Visible {
		return "chart-tooltip visible"
	}
	return "chart-tooltip"
}

func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	var (
		neg = v < 0
		str string
	)
	v = math.Abs(v)
	if v == math.Trunc(v) {
		str = humanize.FormatFloat("#,###.", v)
	} else {
		str = humanize.FormatFloat("#,###.##", v)
	}
	if neg {
		str = "-" + str
	}
	return str
}

func FormatCurrency(v float64, symbol string) string {
	if v < 0 {
		return "-" + symbol + FormatNumber(-v)
	}
	return symbol + FormatNumber(v)
}

func FormatPercent(share float64) string {
	return strconv.FormatFloat(share*100, 'f', 1, 64) + "%"
}

func FormatUnit(v float64, unit string) string {
	str := FormatNumber(v)
	if unit = strings.TrimSpace(unit); unit != "" {
		str += " " + unit
	}
	return str
}

func lineTooltip(pt DataPoint, opts Options) string {
	return pt.Label + ": " + FormatCurrency(pt.Value, opts.currency())
}

func barTooltip(pt DataPoint, opts Options) string {
	return pt.Label + ": " + FormatUnit(pt.Value, opts.Unit)
}

func sliceTooltip(s Slice) string {
	return s.Label + ": " + FormatPercent(s.Share)
}

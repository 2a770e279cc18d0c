package charts

import (
	"strings"
)

type ChartType string

const (
	TypeLine  ChartType = "line"
	TypeBar   ChartType = "bar"
	TypePie   ChartType = "pie"
	TypeDonut ChartType = "donut"
)

func ParseChartType(str string) (ChartType, error) {
	switch t := ChartType(strings.ToLower(strings.TrimSpace(str))); t {
	case TypeLine, TypeBar, TypePie, TypeDonut:
		return t, nil
	default:
		return "", UnsupportedTypeError{Type: str}
	}
}

func (t ChartType) String() string {
	return string(t)
}

// Proportional reports whether the chart draws shares of a total.
func (t ChartType) Proportional() bool {
	return t == TypePie || t == TypeDonut
}

type Options struct {
	ShowGrid   bool
	ShowLabels bool
	ShowValues bool
	ShowLegend bool
	Animated   bool

	Title    string
	Marker   string
	Unit     string
	Currency string
	Caption  string
	Center   string

	// Theme overrides the tokens of the renderer theme. Empty values are
	// inherited.
	Theme Theme
}

// DefaultOptions gives the options each kind of chart is drawn with when
// the caller has no preference.
func DefaultOptions(t ChartType) Options {
	opts := Options{
		Animated: true,
		Currency: DefaultCurrency,
		Caption:  DefaultCaption,
	}
	if t.Proportional() {
		opts.ShowLegend = true
		return opts
	}
	switch t {
	case TypeLine:
		opts.ShowGrid = true
		opts.ShowLabels = true
	case TypeBar:
		opts.ShowGrid = true
		opts.ShowLabels = true
		opts.ShowValues = true
	default:
	}
	return opts
}

func (o Options) Equal(other Options) bool {
	if !o.Theme.Equal(other.Theme) {
		return false
	}
	return o.flags() == other.flags()
}

type optionFlags struct {
	grid, labels, values, legend, animated bool

	title, marker, unit, currency, caption, center string
}

func (o Options) flags() optionFlags {
	return optionFlags{
		grid:     o.ShowGrid,
		labels:   o.ShowLabels,
		values:   o.ShowValues,
		legend:   o.ShowLegend,
		animated: o.Animated,
		title:    o.Title,
		marker:   o.Marker,
		unit:     o.Unit,
		currency: o.Currency,
		caption:  o.Caption,
		center:   o.Center,
	}
}

func (o Options) currency() string {
	if o.Currency == "" {
		return DefaultCurrency
	}
	return o.Currency
}

func (o Options) caption() string {
	if o.Caption == "" {
		return DefaultCaption
	}
	return o.Caption
}

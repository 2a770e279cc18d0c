package dash

import (
	"github.com/midbel/dashcharts"
)

// Style holds the display options of a chart as written in a definition.
// Unset flags fall back on the dashboard style, then on the defaults of the
// chart type.
type Style struct {
	Grid     *bool `yaml:"showGrid"`
	Labels   *bool `yaml:"showLabels"`
	Values   *bool `yaml:"showValues"`
	Legend   *bool `yaml:"showLegend"`
	Animated *bool `yaml:"animated"`

	Marker   string `yaml:"marker"`
	Unit     string `yaml:"unit"`
	Currency string `yaml:"currency"`
	Caption  string `yaml:"caption"`
	Center   string `yaml:"center"`
}

func (s Style) merge(g Style) Style {
	if s.Grid == nil {
		s.Grid = g.Grid
	}
	if s.Labels == nil {
		s.Labels = g.Labels
	}
	if s.Values == nil {
		s.Values = g.Values
	}
	if s.Legend == nil {
		s.Legend = g.Legend
	}
	if s.Animated == nil {
		s.Animated = g.Animated
	}
	if s.Marker == "" {
		s.Marker = g.Marker
	}
	if s.Unit == "" {
		s.Unit = g.Unit
	}
	if s.Currency == "" {
		s.Currency = g.Currency
	}
	if s.Caption == "" {
		s.Caption = g.Caption
	}
	if s.Center == "" {
		s.Center = g.Center
	}
	return s
}

func (s Style) options(t charts.ChartType) charts.Options {
	opts := charts.DefaultOptions(t)
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&opts.ShowGrid, s.Grid)
	set(&opts.ShowLabels, s.Labels)
	set(&opts.ShowValues, s.Values)
	set(&opts.ShowLegend, s.Legend)
	set(&opts.Animated, s.Animated)

	opts.Marker = s.Marker
	opts.Unit = s.Unit
	opts.Center = s.Center
	if s.Currency != "" {
		opts.Currency = s.Currency
	}
	if s.Caption != "" {
		opts.Caption = s.Caption
	}
	return opts
}

func Bool(b bool) *bool {
	return &b
}

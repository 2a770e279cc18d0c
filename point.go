package charts

import (
	"math"
)

type DataPoint struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
	Color string  `yaml:"color,omitempty"`
}

func Point(label string, value float64) DataPoint {
	return DataPoint{
		Label: label,
		Value: value,
	}
}

func ColorPoint(label string, value float64, color string) DataPoint {
	pt := Point(label, value)
	pt.Color = color
	return pt
}

func (p DataPoint) finite() bool {
	return !math.IsNaN(p.Value) && !math.IsInf(p.Value, 0)
}

package charts

import (
	"slices"
)

// Dataset is an ordered sequence of points. Order matters for line and bar
// charts; pie and donut charts iterate it in the same order.
type Dataset []DataPoint

func (d Dataset) Len() int {
	return len(d)
}

func (d Dataset) Total() float64 {
	var total float64
	for _, pt := range d {
		total += pt.Value
	}
	return total
}

func (d Dataset) Max() float64 {
	if len(d) == 0 {
		return 0
	}
	m := d[0].Value
	for _, pt := range d[1:] {
		m = max(m, pt.Value)
	}
	return m
}

func (d Dataset) Min() float64 {
	if len(d) == 0 {
		return 0
	}
	m := d[0].Value
	for _, pt := range d[1:] {
		m = min(m, pt.Value)
	}
	return m
}

func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	return slices.Clone(d)
}

func (d Dataset) Equal(other Dataset) bool {
	return slices.Equal(d, other)
}

func (d Dataset) checkFinite() error {
	for _, pt := range d {
		if !pt.finite() {
			return ValueError{
				Label:  pt.Label,
				Value:  pt.Value,
				Reason: "not a finite number",
			}
		}
	}
	return nil
}

func (d Dataset) checkProportions() error {
	if err := d.checkFinite(); err != nil {
		return err
	}
	for _, pt := range d {
		if pt.Value < 0 {
			return ValueError{
				Label:  pt.Label,
				Value:  pt.Value,
				Reason: "negative share",
			}
		}
	}
	return nil
}

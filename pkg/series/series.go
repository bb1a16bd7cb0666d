// Package series holds the fixed five-point year axis and the numeric time
// series aligned with it, plus the keyed tables every projection stage reads
// and writes.
package series

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Points is the number of reference years every series carries.
const Points = 5

// Series is one value per reference year. Index 0 is the base year.
type Series [Points]float64

// Years is the reference year axis.
type Years [Points]int

// DefaultYears is used when a project does not define its own axis.
var DefaultYears = Years{2020, 2025, 2030, 2040, 2050}

// YearsFrom converts a project's stored year list. An empty list yields
// DefaultYears.
func YearsFrom(list []int) (Years, error) {
	if len(list) == 0 {
		return DefaultYears, nil
	}
	if len(list) != Points {
		return Years{}, fmt.Errorf("reference years: want %d entries, got %d", Points, len(list))
	}
	var y Years
	copy(y[:], list)
	if err := y.Validate(); err != nil {
		return Years{}, err
	}
	return y, nil
}

// Validate checks that the axis is strictly increasing.
func (y Years) Validate() error {
	for i := 1; i < Points; i++ {
		if y[i] <= y[i-1] {
			return fmt.Errorf("reference years must be strictly increasing: %d follows %d", y[i], y[i-1])
		}
	}
	return nil
}

// Gaps returns the number of calendar years in each of the four intervals.
func (y Years) Gaps() [Points - 1]int {
	var g [Points - 1]int
	for i := 1; i < Points; i++ {
		g[i-1] = y[i] - y[i-1]
	}
	return g
}

// FromSlice copies up to Points values; missing entries are 0.
func FromSlice(xs []float64) Series {
	var s Series
	copy(s[:], xs)
	return s
}

// Add accumulates s into dst element-wise.
func (dst *Series) Add(s Series) {
	floats.Add(dst[:], s[:])
}

// Scale returns s multiplied by c.
func (s Series) Scale(c float64) Series {
	out := s
	floats.Scale(c, out[:])
	return out
}

// Total returns the sum of all five values.
func (s Series) Total() float64 {
	return floats.Sum(s[:])
}

// Sum adds any number of series element-wise.
func Sum(ss ...Series) Series {
	var out Series
	for _, s := range ss {
		out.Add(s)
	}
	return out
}

// Ratio divides part by whole per year. A zero whole yields 0 for that year.
func Ratio(part, whole Series) Series {
	var out Series
	for k := range out {
		if whole[k] != 0 {
			out[k] = part[k] / whole[k]
		}
	}
	return out
}

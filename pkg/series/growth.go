package series

import "math"

// RateIndex selects which entry of a rate list drives growth into year i.
type RateIndex int

const (
	// RateBefore reads rates[i-1]: the list holds exactly one rate per interval.
	RateBefore RateIndex = 0
	// RateAt reads rates[i]: the list is [base, r1..r4] and rates[0] is the base
	// value itself. Average energy consumption input is stored this way.
	RateAt RateIndex = 1
)

// Grow projects base along the year axis with compound annual growth:
//
//	v[i] = v[i-1] * (1 + rate/100) ^ (years[i] - years[i-1])
//
// A missing rate is treated as 0.
func Grow(base float64, rates []float64, idx RateIndex, years Years) Series {
	var out Series
	out[0] = base
	gaps := years.Gaps()
	for i := 1; i < Points; i++ {
		rate := At(rates, i-1+int(idx))
		out[i] = out[i-1] * math.Pow(1+rate/100, float64(gaps[i-1]))
	}
	return out
}

package engine

import "github.com/adrienbihorel/myc-emissions-calculator/pkg/series"

// ProjectConsumption grows average energy consumption per vehicle and fuel.
//
// Each input list is [base, r1, r2, r3, r4], so the rate used to reach year
// index i sits at offset i, not i-1 as in the socio-economic and VKT inputs.
// Stored project data depends on this layout; keep it.
func ProjectConsumption(in series.Nested[[]float64], years series.Years) series.Nested[series.Series] {
	out := make(series.Nested[series.Series], len(in))
	for _, vtype := range in.Keys() {
		fuels := make(series.Table[series.Series], len(in[vtype]))
		for fuel, values := range in[vtype] {
			fuels[fuel] = series.Grow(series.At(values, 0), values, series.RateAt, years)
		}
		out[vtype] = fuels
	}
	return out
}

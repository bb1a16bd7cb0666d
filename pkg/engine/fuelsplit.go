package engine

import "github.com/adrienbihorel/myc-emissions-calculator/pkg/series"

// SplitVKTByFuel allocates each vehicle type's VKT to its fuels:
//
//	vkt[vtype][k] / 100 * percent[vtype][fuel][k]
//
// Percentages are not required to sum to 100. A vehicle type absent from
// split gets no fuel entries; one absent from vkt allocates zeros.
func SplitVKTByFuel(split series.Nested[[]float64], vkt series.Table[series.Series]) series.Nested[series.Series] {
	out := make(series.Nested[series.Series], len(split))
	for _, vtype := range split.Keys() {
		total := series.GetOr(vkt, vtype, series.Series{})
		shares := split[vtype]
		fuels := make(series.Table[series.Series], len(shares))
		for _, fuel := range shares.Keys() {
			pct := series.FromSlice(shares[fuel])
			var s series.Series
			for k := range s {
				s[k] = total[k] / 100 * pct[k]
			}
			fuels[fuel] = s
		}
		out[vtype] = fuels
	}
	return out
}

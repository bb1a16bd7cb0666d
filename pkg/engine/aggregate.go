package engine

import "github.com/adrienbihorel/myc-emissions-calculator/pkg/series"

// SumByVehicle adds energy and CO2 across all fuels of each vehicle type.
func SumByVehicle(in series.Nested[EnergyAndEmissions]) series.Table[EnergyAndEmissions] {
	out := make(series.Table[EnergyAndEmissions], len(in))
	for _, vtype := range in.Keys() {
		var sum EnergyAndEmissions
		fuels := in[vtype]
		for _, fuel := range fuels.Keys() {
			sum.Energy.Add(fuels[fuel].Energy)
			sum.CO2.Add(fuels[fuel].CO2)
		}
		out[vtype] = sum
	}
	return out
}

package engine

import (
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/project"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
)

// DefaultOccupancy applies to vehicle types without a stats entry.
const DefaultOccupancy = 1.0

// Occupancy returns the passengers (or tons) per vehicle for vtype.
func Occupancy(stats series.Table[project.VehicleStats], vtype string) float64 {
	if o := series.GetOr(stats, vtype, project.VehicleStats{}).Occupancy; o != 0 {
		return o
	}
	return DefaultOccupancy
}

// TransportPerformance converts per-fuel VKT into passenger-km or ton-km by
// applying the vehicle type's occupancy to every fuel and year.
func TransportPerformance(vktPerFuel series.Nested[series.Series], stats series.Table[project.VehicleStats]) series.Nested[series.Series] {
	out := make(series.Nested[series.Series], len(vktPerFuel))
	for _, vtype := range vktPerFuel.Keys() {
		occupancy := Occupancy(stats, vtype)
		fuels := make(series.Table[series.Series], len(vktPerFuel[vtype]))
		for fuel, vkt := range vktPerFuel[vtype] {
			fuels[fuel] = vkt.Scale(occupancy)
		}
		out[vtype] = fuels
	}
	return out
}

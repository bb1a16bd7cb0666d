package engine

import (
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/project"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
)

// EnergyBalance is energy use per fuel, split between passenger and freight
// transport.
type EnergyBalance struct {
	Passengers series.Table[series.Series] `json:"passengers"`
	Freight    series.Table[series.Series] `json:"freight"`
}

// ComputeEnergyBalance sums energy per fuel over the vehicle types of each
// subset. Vehicle types missing from vehicleTypes count as passenger.
func ComputeEnergyBalance(totals series.Nested[EnergyAndEmissions], vehicleTypes series.Table[project.VehicleType]) EnergyBalance {
	b := EnergyBalance{
		Passengers: make(series.Table[series.Series]),
		Freight:    make(series.Table[series.Series]),
	}
	for _, vtype := range totals.Keys() {
		dst := b.Passengers
		if series.GetOr(vehicleTypes, vtype, project.VehicleType{}).IsFreight {
			dst = b.Freight
		}
		fuels := totals[vtype]
		for _, fuel := range fuels.Keys() {
			s := dst[fuel]
			s.Add(fuels[fuel].Energy)
			dst[fuel] = s
		}
	}
	return b
}

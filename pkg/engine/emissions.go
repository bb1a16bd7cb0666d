package engine

import (
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/factors"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/project"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
)

// EnergyAndEmissions pairs an energy series with its CO2 series.
type EnergyAndEmissions struct {
	Energy series.Series `json:"energy"`
	CO2    series.Series `json:"co2"`
}

// ComputeEnergyAndEmissions computes, per year k,
//
//	energy[k] = pci * vkt[k] * consumption[k] / 100
//	co2[k]    = energy[k] * ges[k] / 1e6
//
// for every vehicle type of consumption crossed with every fuel of table.
// A pair with no VKT, consumption or factor yields zero series rather than
// being left out.
func ComputeEnergyAndEmissions(consumption series.Nested[series.Series], table factors.Table, vktPerFuel series.Nested[series.Series]) series.Nested[EnergyAndEmissions] {
	fuels := table.Keys()
	out := make(series.Nested[EnergyAndEmissions], len(consumption))
	for _, vtype := range consumption.Keys() {
		row := make(series.Table[EnergyAndEmissions], len(fuels))
		for _, fuel := range fuels {
			f := table[fuel]
			vkt := vktPerFuel.Lookup(vtype, fuel, series.Series{})
			avg := consumption.Lookup(vtype, fuel, series.Series{})

			var e EnergyAndEmissions
			for k := 0; k < series.Points; k++ {
				e.Energy[k] = f.PCI * vkt[k] * avg[k] / 100
				e.CO2[k] = e.Energy[k] * f.GESAt(k) / 1_000_000
			}
			row[fuel] = e
		}
		out[vtype] = row
	}
	return out
}

// SelectFactors picks the factor tables for a scenario. When the project
// supplies WTW factors both its WTW and TTW tables are used and projectLevel
// is true; otherwise only defaults is returned, as the WTW table.
func SelectFactors(step *project.EmissionFactorsStep, defaults factors.Table) (wtw, ttw factors.Table, projectLevel bool) {
	if step == nil || step.WTW == nil {
		return defaults, nil, false
	}
	ttw = step.TTW
	if ttw == nil {
		ttw = factors.Table{}
	}
	return step.WTW, ttw, true
}

// Package summary reduces a computed scenario to per-year totals.
package summary

import (
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/engine"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
)

// Summary holds the headline totals of one scenario, one value per reference
// year.
type Summary struct {
	ReferenceYears series.Years   `json:"referenceYears"`
	VKT            series.Series  `json:"vkt"`
	PassengerKm    series.Series  `json:"passengerKm"`
	TonKm          series.Series  `json:"tonKm"`
	EnergyWTW      series.Series  `json:"energyWTW"`
	CO2WTW         series.Series  `json:"co2WTW"`
	CO2TTW         *series.Series `json:"co2TTW,omitempty"`
	// CO2PerPkm is passenger vehicles' WTW CO2 per passenger-km.
	CO2PerPkm series.Series `json:"co2PerPkm"`
}

// Row is one labelled line of a year table.
type Row struct {
	Label  string
	Unit   string
	Values series.Series
}

// Summarize totals a result. Passenger and freight transport performance are
// told apart by the modal share partition already carried in r.
func Summarize(r *engine.Result) *Summary {
	s := &Summary{ReferenceYears: r.ReferenceYears}

	for _, vtype := range r.VKT.Keys() {
		s.VKT.Add(r.VKT[vtype])
	}

	for _, vtype := range r.TransportPerformance.Keys() {
		var perf series.Series
		fuels := r.TransportPerformance[vtype]
		for _, fuel := range fuels.Keys() {
			perf.Add(fuels[fuel])
		}
		if isFreight(r, vtype) {
			s.TonKm.Add(perf)
		} else {
			s.PassengerKm.Add(perf)
		}
	}

	var passengerCO2 series.Series
	for _, vtype := range r.SumTotalEnergyAndEmissionsWTW.Keys() {
		e := r.SumTotalEnergyAndEmissionsWTW[vtype]
		s.EnergyWTW.Add(e.Energy)
		s.CO2WTW.Add(e.CO2)
		if !isFreight(r, vtype) {
			passengerCO2.Add(e.CO2)
		}
	}

	if r.HasTTW() {
		var ttw series.Series
		for _, vtype := range r.SumTotalEnergyAndEmissionsTTW.Keys() {
			ttw.Add(r.SumTotalEnergyAndEmissionsTTW[vtype].CO2)
		}
		s.CO2TTW = &ttw
	}

	s.CO2PerPkm = series.Ratio(passengerCO2, s.PassengerKm).Scale(GramsPerPkm)
	return s
}

// isFreight follows the modal share partition: a vehicle type is freight
// when it has a freight share.
func isFreight(r *engine.Result, vtype string) bool {
	_, ok := r.FreightModalShare[vtype]
	return ok
}

// Rows lists the summary in display order. The TTW row is present only when
// TTW emissions were computed.
func (s *Summary) Rows() []Row {
	rows := []Row{
		{Label: "VKT", Unit: VKTUnit, Values: s.VKT},
		{Label: "Passenger-km", Unit: PassengerKmUnit, Values: s.PassengerKm},
		{Label: "Ton-km", Unit: TonKmUnit, Values: s.TonKm},
		{Label: "Energy (WTW)", Unit: EnergyUnit, Values: s.EnergyWTW},
		{Label: "CO2 (WTW)", Unit: CO2Unit, Values: s.CO2WTW},
	}
	if s.CO2TTW != nil {
		rows = append(rows, Row{Label: "CO2 (TTW)", Unit: CO2Unit, Values: *s.CO2TTW})
	}
	return append(rows, Row{Label: "CO2 per passenger-km", Unit: IntensityUnit, Values: s.CO2PerPkm})
}

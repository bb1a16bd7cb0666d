package summary

// Units of the engine's inputs and outputs. VKT is entered in millions of
// vehicle-km, consumption in units per 100 km, PCI in MJ per unit and GES in
// kg CO2 per TJ.
const (
	VKTUnit         = "Mvkm"
	PassengerKmUnit = "Mpkm"
	TonKmUnit       = "Mtkm"
	EnergyUnit      = "TJ"
	CO2Unit         = "kt"
	IntensityUnit   = "g/pkm"

	// GramsPerPkm converts kt per Mpkm to g per pkm.
	GramsPerPkm = 1000.0
)

package factors

// Built-in well-to-wheel defaults.
//
// PCI is in MJ per fuel unit (l, kg, m³ or kWh), which makes
// pci × VKT [Mkm] × consumption [unit/100km] / 100 come out in TJ.
// GES is in kg CO2 per TJ, one value per reference year; the electricity
// and hydrogen rows decline with the expected production mix.
var builtinWTW = Table{
	"gasoline": {PCI: 32.2, GES: []float64{89400, 89400, 89400, 89400, 89400}},
	"diesel":   {PCI: 35.9, GES: []float64{92200, 92200, 92200, 92200, 92200}},
	"lpg":      {PCI: 24.7, GES: []float64{75600, 75600, 75600, 75600, 75600}},
	"cng":      {PCI: 36.0, GES: []float64{69300, 69300, 69300, 69300, 69300}},
	"hybrid":   {PCI: 32.2, GES: []float64{89400, 89400, 89400, 89400, 89400}},
	"electric": {PCI: 3.6, GES: []float64{150000, 130000, 110000, 80000, 50000}},
	"hydrogen": {PCI: 120.0, GES: []float64{110000, 100000, 85000, 60000, 40000}},
	"none":     {PCI: 0, GES: []float64{0, 0, 0, 0, 0}},
}

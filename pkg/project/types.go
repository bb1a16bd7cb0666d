package project

import (
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/factors"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
)

// Project is a snapshot of one project record: its reference year axis and
// the step inputs of every scenario stage.
type Project struct {
	ID             int                  `yaml:"id" json:"id"`
	Name           string               `yaml:"name" json:"name"`
	Owner          string               `yaml:"owner" json:"owner"`
	Status         string               `yaml:"status" json:"status"`
	ReferenceYears []int                `yaml:"referenceYears" json:"referenceYears"`
	Stages         map[Stage][]Scenario `yaml:"stages" json:"stages"`
}

// Scenario is one set of step inputs within a stage.
type Scenario struct {
	Name  string `yaml:"name" json:"name"`
	Steps Steps  `yaml:"steps" json:"steps"`
}

// Steps holds the typed input of each numbered step. A nil field means the
// step has not been filled in. Source notes live next to the numeric input
// rather than inside it. Method is only set on Climate scenarios.
type Steps struct {
	Method            Method                    `yaml:"method,omitempty" json:"method,omitempty"`
	SocioEconomic     *SocioEconomic            `yaml:"socioEconomic,omitempty" json:"socioEconomic,omitempty"`
	VehicleTypes      series.Table[VehicleType] `yaml:"vehicleTypes,omitempty" json:"vehicleTypes,omitempty"`
	Activity          *ActivityStep             `yaml:"activity,omitempty" json:"activity,omitempty"`
	VehicleStats      *VehicleStatsStep         `yaml:"vehicleStats,omitempty" json:"vehicleStats,omitempty"`
	EmissionFactors   *EmissionFactorsStep      `yaml:"emissionFactors,omitempty" json:"emissionFactors,omitempty"`
	FuelSplit         *FuelSplitStep            `yaml:"fuelSplit,omitempty" json:"fuelSplit,omitempty"`
	EnergyConsumption *EnergyConsumptionStep    `yaml:"energyConsumption,omitempty" json:"energyConsumption,omitempty"`
}

// SocioEconomic is step 1: base population and GDP with one annual growth
// rate (percent) per interval.
type SocioEconomic struct {
	Source         string    `yaml:"source,omitempty" json:"source,omitempty"`
	Population     float64   `yaml:"population" json:"population"`
	GDP            float64   `yaml:"gdp" json:"gdp"`
	PopulationRate []float64 `yaml:"populationRate" json:"populationRate"`
	GDPRate        []float64 `yaml:"gdpRate" json:"gdpRate"`
}

// VehicleType is a step 2 entry.
type VehicleType struct {
	IsFreight bool `yaml:"isFreight" json:"isFreight"`
}

// ActivityStep is step 3: base VKT (millions of km) and growth per vehicle type.
type ActivityStep struct {
	VKTSource            string                      `yaml:"vktSource,omitempty" json:"vktSource,omitempty"`
	VKTGrowthSource      string                      `yaml:"vktGrowthSource,omitempty" json:"vktGrowthSource,omitempty"`
	VehicleStockSource   string                      `yaml:"vehicleStockSource,omitempty" json:"vehicleStockSource,omitempty"`
	AverageMileageSource string                      `yaml:"averageMileageSource,omitempty" json:"averageMileageSource,omitempty"`
	Vehicles             series.Table[ActivityInput] `yaml:"vehicles" json:"vehicles"`
}

// ActivityInput is the VKT input of one vehicle type. VKTPerYear holds the
// VKT of each reference year after the base year and replaces growth by
// VKTRate in with-upstream Climate scenarios.
type ActivityInput struct {
	VKT        float64   `yaml:"vkt" json:"vkt"`
	VKTRate    []float64 `yaml:"vktRate" json:"vktRate"`
	VKTPerYear []float64 `yaml:"vktPerYear,omitempty" json:"vktPerYear,omitempty"`
}

// VehicleStatsStep is step 4.
type VehicleStatsStep struct {
	Source   string                     `yaml:"source,omitempty" json:"source,omitempty"`
	Vehicles series.Table[VehicleStats] `yaml:"vehicles" json:"vehicles"`
}

// VehicleStats holds passengers (or tons) per vehicle. Zero means unset.
type VehicleStats struct {
	Occupancy float64 `yaml:"occupancy" json:"occupancy"`
}

// EmissionFactorsStep is step 5. When WTW is nil the global default table
// applies.
type EmissionFactorsStep struct {
	Source string        `yaml:"source,omitempty" json:"source,omitempty"`
	WTW    factors.Table `yaml:"WTW,omitempty" json:"WTW,omitempty"`
	TTW    factors.Table `yaml:"TTW,omitempty" json:"TTW,omitempty"`
}

// FuelSplitStep is step 6: percent (0-100) of each vehicle type's VKT run on
// each fuel, one value per reference year.
type FuelSplitStep struct {
	Source   string                   `yaml:"source,omitempty" json:"source,omitempty"`
	Vehicles series.Nested[[]float64] `yaml:"vehicles" json:"vehicles"`
}

// EnergyConsumptionStep is step 7: per vehicle and fuel, [base, r1, r2, r3, r4]
// where base is consumption per 100 km and r1..r4 are annual percent changes.
type EnergyConsumptionStep struct {
	EnergySource       string                   `yaml:"energySource,omitempty" json:"energySource,omitempty"`
	EnergyGrowthSource string                   `yaml:"energyGrowthSource,omitempty" json:"energyGrowthSource,omitempty"`
	Vehicles           series.Nested[[]float64] `yaml:"vehicles" json:"vehicles"`
}

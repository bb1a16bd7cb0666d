package project

import (
	"fmt"
	"sort"
)

// Step numbers, in the order analysts fill them in.
const (
	StepSocioEconomic     = 1
	StepVehicleTypes      = 2
	StepActivity          = 3
	StepVehicleStats      = 4
	StepEmissionFactors   = 5
	StepFuelSplit         = 6
	StepEnergyConsumption = 7
)

// StepNames maps step numbers to the field names used in project files.
var StepNames = map[int]string{
	StepSocioEconomic:     "socioEconomic",
	StepVehicleTypes:      "vehicleTypes",
	StepActivity:          "activity",
	StepVehicleStats:      "vehicleStats",
	StepEmissionFactors:   "emissionFactors",
	StepFuelSplit:         "fuelSplit",
	StepEnergyConsumption: "energyConsumption",
}

// Has reports whether step n is filled in.
func (s *Steps) Has(n int) bool {
	switch n {
	case StepSocioEconomic:
		return s.SocioEconomic != nil
	case StepVehicleTypes:
		return s.VehicleTypes != nil
	case StepActivity:
		return s.Activity != nil
	case StepVehicleStats:
		return s.VehicleStats != nil
	case StepEmissionFactors:
		return s.EmissionFactors != nil
	case StepFuelSplit:
		return s.FuelSplit != nil
	case StepEnergyConsumption:
		return s.EnergyConsumption != nil
	}
	return false
}

// Missing returns the required step numbers that are not filled in, in
// ascending order.
func (s *Steps) Missing(required ...int) []int {
	var missing []int
	for _, n := range required {
		if !s.Has(n) {
			missing = append(missing, n)
		}
	}
	sort.Ints(missing)
	return missing
}

// LastStep returns the highest consecutive step filled in starting from
// step 1, or 0 when step 1 is absent.
func (s *Steps) LastStep() int {
	last := 0
	for n := StepSocioEconomic; n <= StepEnergyConsumption; n++ {
		if !s.Has(n) {
			break
		}
		last = n
	}
	return last
}

// IsFreight reports the step 2 classification of a vehicle type. Types not
// listed in step 2 count as passenger vehicles.
func (s *Steps) IsFreight(vtype string) bool {
	return s.VehicleTypes[vtype].IsFreight
}

// Stage groups scenarios of the same kind.
type Stage string

const (
	StageInventory Stage = "Inventory"
	StageBAU       Stage = "BAU"
	StageClimate   Stage = "Climate"
)

// ParseStage accepts a stage name as it appears in URLs and project files.
func ParseStage(name string) (Stage, error) {
	switch Stage(name) {
	case StageInventory, StageBAU, StageClimate:
		return Stage(name), nil
	}
	return "", fmt.Errorf("unknown stage %q (want Inventory, BAU or Climate)", name)
}

// Method is how a Climate scenario derives its activity.
type Method string

const (
	// MethodWithoutUpstream grows base VKT by rates like every other stage.
	MethodWithoutUpstream Method = "Without"
	// MethodWithUpstream takes VKT per reference year as entered, typically
	// from an upstream transport model.
	MethodWithUpstream Method = "With"
)

// ParseMethod accepts a method name as it appears in URLs and project files.
func ParseMethod(name string) (Method, error) {
	switch Method(name) {
	case MethodWithoutUpstream, MethodWithUpstream:
		return Method(name), nil
	}
	return "", fmt.Errorf("unknown method %q (want With or Without)", name)
}

// DirectVKT reports whether VKT is entered per year instead of grown.
func (s *Steps) DirectVKT() bool {
	return s.Method == MethodWithUpstream
}

// Scenario returns the scenario with the given index within a stage.
func (p *Project) Scenario(stage Stage, id int) (*Scenario, error) {
	scenarios, ok := p.Stages[stage]
	if !ok || len(scenarios) == 0 {
		return nil, fmt.Errorf("project has no %s stage", stage)
	}
	if id < 0 || id >= len(scenarios) {
		return nil, fmt.Errorf("%s scenario %d not found (have %d)", stage, id, len(scenarios))
	}
	return &scenarios[id], nil
}

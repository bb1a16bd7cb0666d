package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrienbihorel/myc-emissions-calculator/pkg/factors"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/project"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
)

// ErrMissingSteps is matched by every MissingStepsError.
var ErrMissingSteps = errors.New("missing steps")

// MissingStepsError reports which required steps a scenario lacks.
type MissingStepsError struct {
	Steps []int
}

func (e *MissingStepsError) Error() string {
	names := make([]string, len(e.Steps))
	for i, n := range e.Steps {
		names[i] = fmt.Sprintf("%d (%s)", n, project.StepNames[n])
	}
	return "missing steps: " + strings.Join(names, ", ")
}

// Is makes errors.Is(err, ErrMissingSteps) hold.
func (e *MissingStepsError) Is(target error) bool {
	return target == ErrMissingSteps
}

// RequiredSteps must all be present before a scenario is computed. Step 5
// (emission factors) is optional: without it the default table applies.
var RequiredSteps = []int{
	project.StepSocioEconomic,
	project.StepVehicleTypes,
	project.StepActivity,
	project.StepVehicleStats,
	project.StepFuelSplit,
	project.StepEnergyConsumption,
}

// Result accumulates the output of every stage for one scenario.
type Result struct {
	ReferenceYears series.Years   `json:"referenceYears"`
	Method         project.Method `json:"method,omitempty"`

	SocioEconomic            SocioEconomic                `json:"socioEconomic"`
	VKT                      series.Table[series.Series]  `json:"vkt"`
	VKTPerFuel               series.Nested[series.Series] `json:"vktPerFuel"`
	TransportPerformance     series.Nested[series.Series] `json:"transportPerformance"`
	PassengerModalShare      series.Table[series.Series]  `json:"passengerModalShare"`
	FreightModalShare        series.Table[series.Series]  `json:"freightModalShare"`
	AverageEnergyConsumption series.Nested[series.Series] `json:"averageEnergyConsumption"`

	TotalEnergyAndEmissionsWTW    series.Nested[EnergyAndEmissions] `json:"totalEnergyAndEmissionsWTW"`
	TotalEnergyAndEmissionsTTW    series.Nested[EnergyAndEmissions] `json:"totalEnergyAndEmissionsTTW,omitempty"`
	SumTotalEnergyAndEmissionsWTW series.Table[EnergyAndEmissions]  `json:"sumTotalEnergyAndEmissionsWTW"`
	SumTotalEnergyAndEmissionsTTW series.Table[EnergyAndEmissions]  `json:"sumTotalEnergyAndEmissionsTTW,omitempty"`

	EnergyBalance EnergyBalance `json:"energyBalance"`

	// ProjectFactors is true when the project's own WTW/TTW factors were used.
	ProjectFactors bool `json:"projectFactors"`
}

// HasTTW reports whether tank-to-wheel results were computed.
func (r *Result) HasTTW() bool {
	return r.TotalEnergyAndEmissionsTTW != nil
}

// Run computes every stage for one scenario. It returns a *MissingStepsError
// and no result when a required step is absent. defaults is the table used
// when the scenario has no emission factors of its own; it is only read.
func Run(years series.Years, steps *project.Steps, defaults factors.Table) (*Result, error) {
	if missing := steps.Missing(RequiredSteps...); len(missing) > 0 {
		return nil, &MissingStepsError{Steps: missing}
	}

	r := &Result{ReferenceYears: years, Method: steps.Method}

	// 1. Socio-economic projection
	r.SocioEconomic = ProjectSocioEconomic(*steps.SocioEconomic, years)

	// 2. Activity and its fuel allocation
	r.VKT = ProjectVKT(steps.Activity.Vehicles, years, steps.DirectVKT())
	r.VKTPerFuel = SplitVKTByFuel(steps.FuelSplit.Vehicles, r.VKT)

	// 3. Transport performance and modal share
	r.TransportPerformance = TransportPerformance(r.VKTPerFuel, steps.VehicleStats.Vehicles)
	r.PassengerModalShare, r.FreightModalShare = ModalShares(r.TransportPerformance, steps.VehicleTypes)

	// 4. Average energy consumption
	r.AverageEnergyConsumption = ProjectConsumption(steps.EnergyConsumption.Vehicles, years)

	// 5. Energy and emissions
	wtw, ttw, projectLevel := SelectFactors(steps.EmissionFactors, defaults)
	r.ProjectFactors = projectLevel
	r.TotalEnergyAndEmissionsWTW = ComputeEnergyAndEmissions(r.AverageEnergyConsumption, wtw, r.VKTPerFuel)
	if projectLevel {
		r.TotalEnergyAndEmissionsTTW = ComputeEnergyAndEmissions(r.AverageEnergyConsumption, ttw, r.VKTPerFuel)
		r.SumTotalEnergyAndEmissionsTTW = SumByVehicle(r.TotalEnergyAndEmissionsTTW)
	}
	r.SumTotalEnergyAndEmissionsWTW = SumByVehicle(r.TotalEnergyAndEmissionsWTW)

	// 6. Energy balance
	r.EnergyBalance = ComputeEnergyBalance(r.TotalEnergyAndEmissionsWTW, steps.VehicleTypes)

	return r, nil
}

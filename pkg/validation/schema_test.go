package validation

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/adrienbihorel/myc-emissions-calculator/pkg/factors"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/project"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
)

func validSteps() project.Steps {
	return project.Steps{
		SocioEconomic: &project.SocioEconomic{
			Population: 1000, GDP: 10,
			PopulationRate: []float64{1, 1, 1, 1}, GDPRate: []float64{2, 2, 2, 2},
		},
		VehicleTypes: series.Table[project.VehicleType]{
			"car":   {IsFreight: false},
			"truck": {IsFreight: true},
		},
		Activity: &project.ActivityStep{Vehicles: series.Table[project.ActivityInput]{
			"car":   {VKT: 1000, VKTRate: []float64{0, 0, 0, 0}},
			"truck": {VKT: 100, VKTRate: []float64{1, 1, 1, 1}},
		}},
		VehicleStats: &project.VehicleStatsStep{Vehicles: series.Table[project.VehicleStats]{
			"car": {Occupancy: 1.5},
		}},
		EmissionFactors: &project.EmissionFactorsStep{
			WTW: factors.Table{"diesel": {PCI: 10, GES: []float64{1, 1, 1, 1, 1}}},
			TTW: factors.Table{"diesel": {PCI: 10, GES: []float64{1, 1, 1, 1, 1}}},
		},
		FuelSplit: &project.FuelSplitStep{Vehicles: series.Nested[[]float64]{
			"car":   {"diesel": {100, 100, 100, 100, 100}},
			"truck": {"diesel": {100, 100, 100, 100, 100}},
		}},
		EnergyConsumption: &project.EnergyConsumptionStep{Vehicles: series.Nested[[]float64]{
			"car":   {"diesel": {8, 0, 0, 0, 0}},
			"truck": {"diesel": {30, 0, 0, 0, 0}},
		}},
	}
}

func validProject() *project.Project {
	return &project.Project{
		Name:           "test",
		ReferenceYears: []int{2020, 2025, 2030, 2040, 2050},
		Stages: map[project.Stage][]project.Scenario{
			project.StageInventory: {{Name: "base", Steps: validSteps()}},
		},
	}
}

func hasPath(results []Result, substr string) bool {
	for _, r := range results {
		if strings.Contains(r.Path, substr) {
			return true
		}
	}
	return false
}

func TestValidProject(t *testing.T) {
	r := ValidateProject(validProject())
	if !r.Valid {
		t.Errorf("valid project should pass, got errors: %+v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %+v", r.Warnings)
	}
}

func TestReferenceYearsNotIncreasing(t *testing.T) {
	p := validProject()
	p.ReferenceYears = []int{2020, 2030, 2025, 2040, 2050}
	r := ValidateProject(p)
	if r.Valid {
		t.Error("expected error for non-increasing years")
	}
	if !hasPath(r.Errors, "referenceYears") {
		t.Errorf("expected referenceYears error, got %+v", r.Errors)
	}
}

func TestReferenceYearsWrongLength(t *testing.T) {
	p := validProject()
	p.ReferenceYears = []int{2020, 2030}
	if r := ValidateProject(p); r.Valid {
		t.Error("expected error for a 2-year axis")
	}
}

func TestReferenceYearsDefault(t *testing.T) {
	p := validProject()
	p.ReferenceYears = nil
	r := ValidateProject(p)
	if !r.Valid {
		t.Errorf("missing years should fall back to defaults, got %+v", r.Errors)
	}
	if len(r.Info) != 1 {
		t.Errorf("expected 1 info about default years, got %d", len(r.Info))
	}
}

func TestNoStages(t *testing.T) {
	p := validProject()
	p.Stages = nil
	if r := ValidateProject(p); r.Valid {
		t.Error("expected error for a project without stages")
	}
}

func TestUnknownStage(t *testing.T) {
	p := validProject()
	p.Stages["Future"] = []project.Scenario{{Steps: validSteps()}}
	r := ValidateProject(p)
	if r.Valid {
		t.Error("expected error for unknown stage")
	}
}

func TestNegativeValues(t *testing.T) {
	p := validProject()
	steps := &p.Stages[project.StageInventory][0].Steps
	steps.SocioEconomic.Population = -1
	steps.Activity.Vehicles["car"] = project.ActivityInput{VKT: -5}
	steps.VehicleStats.Vehicles["car"] = project.VehicleStats{Occupancy: -2}

	r := ValidateProject(p)
	if len(r.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %d: %+v", len(r.Errors), r.Errors)
	}
	for _, want := range []string{"socioEconomic.population", "activity.vehicles.car.vkt", "vehicleStats.vehicles.car.occupancy"} {
		if !hasPath(r.Errors, want) {
			t.Errorf("missing error for %s", want)
		}
	}
}

func TestFuelSplitOutOfRange(t *testing.T) {
	p := validProject()
	steps := &p.Stages[project.StageInventory][0].Steps
	steps.FuelSplit.Vehicles["car"]["diesel"] = []float64{100, 120, 100, -1, 100}

	r := ValidateProject(p)
	if len(r.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d: %+v", len(r.Errors), r.Errors)
	}
	if r.Errors[0].Step != project.StepFuelSplit {
		t.Errorf("step = %d, want %d", r.Errors[0].Step, project.StepFuelSplit)
	}
}

func TestUndeclaredVehicleType(t *testing.T) {
	p := validProject()
	steps := &p.Stages[project.StageInventory][0].Steps
	steps.Activity.Vehicles["bus"] = project.ActivityInput{VKT: 10}

	r := ValidateProject(p)
	if !r.Valid {
		t.Errorf("undeclared type should only warn, got %+v", r.Errors)
	}
	if !hasPath(r.Warnings, "activity.vehicles.bus") {
		t.Errorf("expected warning for bus, got %+v", r.Warnings)
	}
}

func TestTooManyRatesWarns(t *testing.T) {
	p := validProject()
	steps := &p.Stages[project.StageInventory][0].Steps
	steps.SocioEconomic.GDPRate = []float64{1, 1, 1, 1, 1}

	r := ValidateProject(p)
	if !hasPath(r.Warnings, "gdpRate") {
		t.Errorf("expected gdpRate warning, got %+v", r.Warnings)
	}
}

func TestFactorTableChecks(t *testing.T) {
	p := validProject()
	steps := &p.Stages[project.StageInventory][0].Steps
	steps.EmissionFactors.TTW["diesel"] = factors.Factor{PCI: -1, GES: []float64{1, 2, 3, 4, 5, 6}}

	r := ValidateProject(p)
	if len(r.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d: %+v", len(r.Errors), r.Errors)
	}
	if !hasPath(r.Errors, "emissionFactors.TTW.diesel") {
		t.Errorf("expected TTW diesel errors, got %+v", r.Errors)
	}
}

func TestConsumptionChecks(t *testing.T) {
	p := validProject()
	steps := &p.Stages[project.StageInventory][0].Steps
	steps.EnergyConsumption.Vehicles["car"]["diesel"] = []float64{-8, 0, 0, 0, 0, 0}

	r := ValidateProject(p)
	if len(r.Errors) != 1 || len(r.Warnings) != 1 {
		t.Errorf("got %d errors and %d warnings, want 1 and 1", len(r.Errors), len(r.Warnings))
	}
}

const nonFiniteProject = `
referenceYears: [2020, 2025, 2030, 2040, 2050]
stages:
  Inventory:
    - steps:
        socioEconomic: {population: .nan, gdp: 10, populationRate: [1, 1, 1, 1], gdpRate: [0, -.inf, 0, 0]}
        activity:
          vehicles:
            car: {vkt: .inf}
`

func TestNonFiniteValuesRejected(t *testing.T) {
	p, err := project.Parse([]byte(nonFiniteProject))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r := ValidateProject(p)
	if r.Valid {
		t.Fatal("NaN and Inf inputs must invalidate the project")
	}
	for _, want := range []string{"socioEconomic.population", "socioEconomic.gdpRate[1]", "activity.vehicles.car.vkt"} {
		if !hasPath(r.Errors, want) {
			t.Errorf("missing error for %s in %+v", want, r.Errors)
		}
	}
	if len(r.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d", len(r.Errors))
	}
	if _, err := json.Marshal(r); err != nil {
		t.Errorf("report must stay encodable: %v", err)
	}
}

func TestNonFiniteStepValues(t *testing.T) {
	p := validProject()
	steps := &p.Stages[project.StageInventory][0].Steps
	steps.FuelSplit.Vehicles["car"]["diesel"] = []float64{100, math.NaN(), 100, 100, 100}
	steps.EnergyConsumption.Vehicles["truck"]["diesel"] = []float64{30, math.Inf(1), 0, 0, 0}
	steps.EmissionFactors.WTW["diesel"] = factors.Factor{PCI: 10, GES: []float64{1, math.NaN()}}
	steps.VehicleStats.Vehicles["car"] = project.VehicleStats{Occupancy: math.Inf(-1)}

	r := ValidateProject(p)
	for _, want := range []string{
		"fuelSplit.vehicles.car.diesel[1]",
		"energyConsumption.vehicles.truck.diesel[1]",
		"emissionFactors.WTW.diesel.ges[1]",
		"vehicleStats.vehicles.car.occupancy",
	} {
		if !hasPath(r.Errors, want) {
			t.Errorf("missing error for %s", want)
		}
	}
	if len(r.Errors) != 4 {
		t.Errorf("expected 4 errors, got %d: %+v", len(r.Errors), r.Errors)
	}
}

func climateProject(method project.Method, perYear []float64) *project.Project {
	p := validProject()
	steps := validSteps()
	steps.Method = method
	steps.Activity.Vehicles["car"] = project.ActivityInput{VKT: 1000, VKTPerYear: perYear}
	steps.Activity.Vehicles["truck"] = project.ActivityInput{VKT: 100, VKTPerYear: perYear}
	p.Stages[project.StageClimate] = []project.Scenario{{Name: "upstream", Steps: steps}}
	return p
}

func TestClimateMethod(t *testing.T) {
	r := ValidateProject(climateProject(project.MethodWithUpstream, []float64{1, 2, 3, 4}))
	if !r.Valid {
		t.Errorf("complete With scenario should pass, got %+v", r.Errors)
	}

	r = ValidateProject(climateProject(project.MethodWithUpstream, []float64{1, 2}))
	if !hasPath(r.Errors, "Climate[0].steps.activity.vehicles.car.vktPerYear") {
		t.Errorf("expected vktPerYear length error, got %+v", r.Errors)
	}

	r = ValidateProject(climateProject("Sideways", nil))
	if !hasPath(r.Errors, "Climate[0].steps.method") {
		t.Errorf("expected unknown method error, got %+v", r.Errors)
	}

	r = ValidateProject(climateProject(project.MethodWithoutUpstream, []float64{1, 2, 3, 4}))
	if !r.Valid || !hasPath(r.Warnings, "vktPerYear") {
		t.Errorf("unused vktPerYear should only warn, got errors %+v warnings %+v", r.Errors, r.Warnings)
	}
}

func TestMethodOutsideClimate(t *testing.T) {
	p := validProject()
	p.Stages[project.StageInventory][0].Steps.Method = project.MethodWithUpstream
	r := ValidateProject(p)
	if !hasPath(r.Errors, "Inventory[0].steps.method") {
		t.Errorf("expected method error on Inventory, got %+v", r.Errors)
	}
}

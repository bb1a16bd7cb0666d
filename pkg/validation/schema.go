package validation

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/adrienbihorel/myc-emissions-calculator/pkg/factors"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/project"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
)

// ValidateProject performs schema validation on a parsed project. It checks
// structural correctness before any computation.
func ValidateProject(p *project.Project) *Report {
	r := NewReport()

	validateReferenceYears(p, r)
	validateStages(p, r)

	for _, stage := range sortedStages(p) {
		scenarios := p.Stages[stage]
		for i := range scenarios {
			prefix := fmt.Sprintf("stages.%s[%d].steps", stage, i)
			if stage != project.StageClimate && scenarios[i].Steps.Method != "" {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("method is only valid on Climate scenarios, not %s", stage),
					Path:        prefix + ".method",
					ActualValue: string(scenarios[i].Steps.Method),
				})
			}
			ValidateSteps(prefix, &scenarios[i].Steps, r)
		}
	}

	return r
}

// ValidateSteps checks one scenario's step inputs, reporting paths under prefix.
func ValidateSteps(prefix string, s *project.Steps, r *Report) {
	validateMethod(prefix, s, r)
	validateSocioEconomic(prefix, s, r)
	validateActivity(prefix, s, r)
	validateVehicleStats(prefix, s, r)
	validateEmissionFactors(prefix, s, r)
	validateFuelSplit(prefix, s, r)
	validateEnergyConsumption(prefix, s, r)
}

func validateReferenceYears(p *project.Project, r *Report) {
	if len(p.ReferenceYears) == 0 {
		r.AddInfo(Result{
			Level:   LevelSchema,
			Message: fmt.Sprintf("referenceYears not set; using %v", series.DefaultYears),
			Path:    "referenceYears",
		})
		return
	}
	if _, err := series.YearsFrom(p.ReferenceYears); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     err.Error(),
			Path:        "referenceYears",
			ActualValue: p.ReferenceYears,
			Expected:    fmt.Sprintf("%d strictly increasing years", series.Points),
		})
	}
}

func validateStages(p *project.Project, r *Report) {
	if len(p.Stages) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "project must define at least one stage",
			Path:     "stages",
			Expected: "Inventory, BAU or Climate",
		})
		return
	}
	for _, stage := range sortedStages(p) {
		if _, err := project.ParseStage(string(stage)); err != nil {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     err.Error(),
				Path:        "stages",
				ActualValue: string(stage),
			})
		}
	}
}

func sortedStages(p *project.Project) []project.Stage {
	stages := make([]project.Stage, 0, len(p.Stages))
	for stage := range p.Stages {
		stages = append(stages, stage)
	}
	sort.Slice(stages, func(i, j int) bool { return stages[i] < stages[j] })
	return stages
}

func validateRates(path string, step int, rates []float64, r *Report) {
	if len(rates) > series.Points-1 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s has %d rates; only the first %d are used", path, len(rates), series.Points-1),
			Path:        path,
			Step:        step,
			ActualValue: len(rates),
		})
	}
	validateFiniteList(path, step, rates, r)
}

// validateFinite reports NaN and infinite values, which cannot be computed
// with or encoded as JSON. It returns false when v was reported.
func validateFinite(path string, step int, v float64, r *Report) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be a finite number", path),
			Path:        path,
			Step:        step,
			ActualValue: strconv.FormatFloat(v, 'g', -1, 64),
			Expected:    "finite number",
		})
		return false
	}
	return true
}

func validateFiniteList(path string, step int, values []float64, r *Report) {
	for k, v := range values {
		validateFinite(fmt.Sprintf("%s[%d]", path, k), step, v, r)
	}
}

func validateNonNegative(path string, step int, v float64, r *Report) {
	if !validateFinite(path, step, v, r) {
		return
	}
	if v < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s must be non-negative", path),
			Path:        path,
			Step:        step,
			ActualValue: v,
			Expected:    ">= 0",
		})
	}
}

func validateMethod(prefix string, s *project.Steps, r *Report) {
	if s.Method == "" {
		return
	}
	if _, err := project.ParseMethod(string(s.Method)); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     err.Error(),
			Path:        prefix + ".method",
			ActualValue: string(s.Method),
			Expected:    "With or Without",
		})
	}
}

func validateSocioEconomic(prefix string, s *project.Steps, r *Report) {
	se := s.SocioEconomic
	if se == nil {
		return
	}
	path := prefix + ".socioEconomic"
	validateNonNegative(path+".population", project.StepSocioEconomic, se.Population, r)
	validateNonNegative(path+".gdp", project.StepSocioEconomic, se.GDP, r)
	validateRates(path+".populationRate", project.StepSocioEconomic, se.PopulationRate, r)
	validateRates(path+".gdpRate", project.StepSocioEconomic, se.GDPRate, r)
}

func validateActivity(prefix string, s *project.Steps, r *Report) {
	if s.Activity == nil {
		return
	}
	for _, vtype := range s.Activity.Vehicles.Keys() {
		a := s.Activity.Vehicles[vtype]
		path := fmt.Sprintf("%s.activity.vehicles.%s", prefix, vtype)
		validateNonNegative(path+".vkt", project.StepActivity, a.VKT, r)
		validateRates(path+".vktRate", project.StepActivity, a.VKTRate, r)
		validateVKTPerYear(path+".vktPerYear", s.DirectVKT(), a.VKTPerYear, r)

		if s.VehicleTypes != nil {
			if _, ok := s.VehicleTypes[vtype]; !ok {
				r.AddWarning(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("vehicle type %q has activity data but is not declared in step 2; it is treated as a passenger type", vtype),
					Path:        path,
					Step:        project.StepVehicleTypes,
					ActualValue: vtype,
					Suggestions: []string{fmt.Sprintf("Add %s to vehicleTypes with its isFreight flag", vtype)},
				})
			}
		}
	}
}

func validateVKTPerYear(path string, direct bool, values []float64, r *Report) {
	if !direct {
		if len(values) > 0 {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s is only used by the With method; VKT is grown by rates", path),
				Path:        path,
				Step:        project.StepActivity,
				Suggestions: []string{"Set method: With on the Climate scenario"},
			})
		}
		return
	}
	if len(values) != series.Points-1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s needs one VKT per reference year after the base year", path),
			Path:        path,
			Step:        project.StepActivity,
			ActualValue: len(values),
			Expected:    fmt.Sprintf("%d values", series.Points-1),
		})
	}
	for k, v := range values {
		validateNonNegative(fmt.Sprintf("%s[%d]", path, k), project.StepActivity, v, r)
	}
}

func validateVehicleStats(prefix string, s *project.Steps, r *Report) {
	if s.VehicleStats == nil {
		return
	}
	for _, vtype := range s.VehicleStats.Vehicles.Keys() {
		path := fmt.Sprintf("%s.vehicleStats.vehicles.%s.occupancy", prefix, vtype)
		validateNonNegative(path, project.StepVehicleStats, s.VehicleStats.Vehicles[vtype].Occupancy, r)
	}
}

func validateEmissionFactors(prefix string, s *project.Steps, r *Report) {
	ef := s.EmissionFactors
	if ef == nil {
		return
	}
	validateFactorTable(fmt.Sprintf("%s.emissionFactors.WTW", prefix), ef.WTW, r)
	validateFactorTable(fmt.Sprintf("%s.emissionFactors.TTW", prefix), ef.TTW, r)
}

func validateFactorTable(prefix string, t factors.Table, r *Report) {
	for _, fuel := range t.Keys() {
		f := t[fuel]
		path := prefix + "." + fuel
		validateNonNegative(path+".pci", project.StepEmissionFactors, f.PCI, r)
		validateFiniteList(path+".ges", project.StepEmissionFactors, f.GES, r)
		if len(f.GES) > series.Points {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s.ges has %d values, want at most %d", path, len(f.GES), series.Points),
				Path:        path + ".ges",
				Step:        project.StepEmissionFactors,
				ActualValue: len(f.GES),
			})
		}
	}
}

func validateFuelSplit(prefix string, s *project.Steps, r *Report) {
	if s.FuelSplit == nil {
		return
	}
	for _, vtype := range s.FuelSplit.Vehicles.Keys() {
		fuels := s.FuelSplit.Vehicles[vtype]
		for _, fuel := range fuels.Keys() {
			path := fmt.Sprintf("%s.fuelSplit.vehicles.%s.%s", prefix, vtype, fuel)
			for k, pct := range fuels[fuel] {
				if !validateFinite(fmt.Sprintf("%s[%d]", path, k), project.StepFuelSplit, pct, r) {
					continue
				}
				if pct < 0 || pct > 100 {
					r.AddError(Result{
						Level:       LevelSchema,
						Message:     fmt.Sprintf("%s[%d] must be a percentage between 0 and 100", path, k),
						Path:        fmt.Sprintf("%s[%d]", path, k),
						Step:        project.StepFuelSplit,
						ActualValue: pct,
						Expected:    "0-100",
					})
				}
			}
			if len(fuels[fuel]) > series.Points {
				r.AddWarning(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("%s has %d values; only the first %d are used", path, len(fuels[fuel]), series.Points),
					Path:        path,
					Step:        project.StepFuelSplit,
					ActualValue: len(fuels[fuel]),
				})
			}
		}
	}
}

func validateEnergyConsumption(prefix string, s *project.Steps, r *Report) {
	if s.EnergyConsumption == nil {
		return
	}
	for _, vtype := range s.EnergyConsumption.Vehicles.Keys() {
		fuels := s.EnergyConsumption.Vehicles[vtype]
		for _, fuel := range fuels.Keys() {
			path := fmt.Sprintf("%s.energyConsumption.vehicles.%s.%s", prefix, vtype, fuel)
			values := fuels[fuel]
			validateNonNegative(path+"[0]", project.StepEnergyConsumption, series.At(values, 0), r)
			for k := 1; k < len(values); k++ {
				validateFinite(fmt.Sprintf("%s[%d]", path, k), project.StepEnergyConsumption, values[k], r)
			}
			if len(values) > series.Points {
				r.AddWarning(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("%s has %d values; want [base, r1, r2, r3, r4]", path, len(values)),
					Path:        path,
					Step:        project.StepEnergyConsumption,
					ActualValue: len(values),
				})
			}
		}
	}
}

package engine

import (
	"fmt"
	"math"

	"github.com/adrienbihorel/myc-emissions-calculator/pkg/factors"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/project"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/validation"
)

// splitTolerance is how far from 100 a year's fuel split may sum before it is
// reported.
const splitTolerance = 0.01

// Resolve runs the pipeline for one scenario and reports analytical findings
// about its inputs. The report is returned even when err is non-nil.
func Resolve(years series.Years, steps *project.Steps, defaults factors.Table) (*Result, *validation.Report, error) {
	report := validation.NewReport()
	validation.ValidateSteps("steps", steps, report)

	result, err := Run(years, steps, defaults)
	if err != nil {
		report.AddError(validation.Result{
			Level:   validation.LevelAnalytical,
			Message: err.Error(),
			Path:    "steps",
		})
		return nil, report, err
	}

	Analyze("steps", years, steps, result, defaults, report)
	return result, report, nil
}

// ValidateProject runs schema validation on p, computes every scenario and
// adds the analytical findings of each. Scenarios with missing steps are
// reported as info since projects are filled in step by step.
func ValidateProject(p *project.Project, defaults factors.Table) *validation.Report {
	report := validation.ValidateProject(p)
	if !report.Valid {
		return report
	}

	years, _ := p.Years()
	outcomes, err := RunAll(p, defaults)
	if err != nil {
		return report
	}
	for _, o := range outcomes {
		prefix := fmt.Sprintf("stages.%s[%d].steps", o.Stage, o.Scenario)
		if o.Err != nil {
			report.AddInfo(validation.Result{
				Level:   validation.LevelAnalytical,
				Message: fmt.Sprintf("%s scenario %d not computed: %v", o.Stage, o.Scenario, o.Err),
				Path:    prefix,
			})
			continue
		}
		Analyze(prefix, years, &p.Stages[o.Stage][o.Scenario].Steps, o.Result, defaults, report)
	}
	return report
}

// Analyze adds analytical findings about a computed scenario to r, with
// paths under prefix.
func Analyze(prefix string, years series.Years, steps *project.Steps, result *Result, defaults factors.Table, r *validation.Report) {
	checkFuelSplitTotals(prefix, steps, years, r)
	wtw, ttw, projectLevel := SelectFactors(steps.EmissionFactors, defaults)
	checkFactorCoverage(prefix, steps, result, wtw, r)
	if projectLevel && len(ttw) == 0 {
		r.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     "WTW emission factors are set without TTW factors; TTW emissions are all zero",
			Path:        prefix + ".emissionFactors.TTW",
			Step:        project.StepEmissionFactors,
			Suggestions: []string{"Fill in TTW factors for every fuel used"},
		})
	}
	if !projectLevel {
		r.AddInfo(validation.Result{
			Level:   validation.LevelAnalytical,
			Message: "no project emission factors; default WTW factors are used and TTW is not computed",
			Path:    prefix + ".emissionFactors",
			Step:    project.StepEmissionFactors,
		})
	}
}

func checkFuelSplitTotals(prefix string, steps *project.Steps, years series.Years, r *validation.Report) {
	for _, vtype := range steps.FuelSplit.Vehicles.Keys() {
		fuels := steps.FuelSplit.Vehicles[vtype]
		var total series.Series
		for _, fuel := range fuels.Keys() {
			total.Add(series.FromSlice(fuels[fuel]))
		}
		for k, sum := range total {
			if math.Abs(sum-100) > splitTolerance {
				r.AddWarning(validation.Result{
					Level:       validation.LevelAnalytical,
					Message:     fmt.Sprintf("fuel split of %s sums to %.2f%% in %d", vtype, sum, years[k]),
					Path:        fmt.Sprintf("%s.fuelSplit.vehicles.%s", prefix, vtype),
					Step:        project.StepFuelSplit,
					ActualValue: sum,
					Expected:    "100",
				})
			}
		}
	}
}

// checkFactorCoverage warns about fuels that carry VKT for a vehicle type but
// either have no emission factor or no consumption entry. Such pairs compute
// to zero emissions silently.
func checkFactorCoverage(prefix string, steps *project.Steps, result *Result, wtw factors.Table, r *validation.Report) {
	for _, vtype := range result.VKTPerFuel.Keys() {
		fuels := result.VKTPerFuel[vtype]
		for _, fuel := range fuels.Keys() {
			if fuels[fuel].Total() == 0 {
				continue
			}
			path := fmt.Sprintf("%s.fuelSplit.vehicles.%s.%s", prefix, vtype, fuel)
			if _, ok := wtw[fuel]; !ok {
				r.AddWarning(validation.Result{
					Level:       validation.LevelAnalytical,
					Message:     fmt.Sprintf("%s runs on %s but no emission factor exists for it", vtype, fuel),
					Path:        path,
					Step:        project.StepEmissionFactors,
					ActualValue: fuel,
				})
			}
			if _, ok := steps.EnergyConsumption.Vehicles[vtype][fuel]; !ok {
				r.AddWarning(validation.Result{
					Level:       validation.LevelAnalytical,
					Message:     fmt.Sprintf("%s runs on %s but has no energy consumption for it", vtype, fuel),
					Path:        path,
					Step:        project.StepEnergyConsumption,
					ActualValue: fuel,
				})
			}
		}
	}
}

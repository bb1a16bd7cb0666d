package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/adrienbihorel/myc-emissions-calculator/internal/config"
	"github.com/adrienbihorel/myc-emissions-calculator/internal/logger"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/engine"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/factors"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/project"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/summary"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/validation"
)

// app holds what every command needs once the config is read.
var app struct {
	cfg      *config.Config
	defaults factors.Table
}

func setup(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	defaults := factors.Defaults()
	if cfg.Factors.File != "" {
		defaults, err = factors.LoadFile(cfg.Factors.File)
		if err != nil {
			return fmt.Errorf("loading emission factors: %w", err)
		}
		logger.Info("Using emission factors from %s", cfg.Factors.File)
	}

	app.cfg = cfg
	app.defaults = defaults
	return nil
}

// loadAndValidate loads the project and runs schema validation.
func loadAndValidate(projectPath string) (*project.Project, *validation.Report, error) {
	p, err := project.LoadProject(projectPath, app.cfg.Project.FileName)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	return p, validation.ValidateProject(p), nil
}

func runValidate(projectPath string) error {
	p, err := project.LoadProject(projectPath, app.cfg.Project.FileName)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	report := engine.ValidateProject(p, app.defaults)
	printValidationReport(report)

	if !report.Valid {
		return fmt.Errorf("project has validation errors")
	}
	return nil
}

func runCompute(projectPath, stageName string, scenario int, asJSON bool) error {
	p, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("project has validation errors; fix before computing")
	}

	runID := uuid.NewString()
	logger.Debug("run %s: computing %s", runID, projectPath)

	var outcomes []engine.Outcome
	if stageName == "" {
		outcomes, err = engine.RunAll(p, app.defaults)
		if err != nil {
			return err
		}
	} else {
		o, err := computeOne(p, stageName, scenario)
		if err != nil {
			return err
		}
		outcomes = []engine.Outcome{o}
	}

	if asJSON {
		return printOutcomesJSON(runID, outcomes)
	}

	fmt.Printf("Run %s\n\n", runID)
	for _, o := range outcomes {
		printScenarioHeader(o)
		if o.Err != nil {
			printMissing(o.Err)
			continue
		}
		printResult(o.Result)
		fmt.Println()
	}
	return nil
}

func computeOne(p *project.Project, stageName string, id int) (engine.Outcome, error) {
	stage, err := project.ParseStage(stageName)
	if err != nil {
		return engine.Outcome{}, err
	}
	sc, err := p.Scenario(stage, id)
	if err != nil {
		return engine.Outcome{}, err
	}
	years, err := p.Years()
	if err != nil {
		return engine.Outcome{}, err
	}

	result, err := engine.Run(years, &sc.Steps, app.defaults)
	o := engine.Outcome{Stage: stage, Scenario: id, Name: sc.Name, Result: result, Err: err}
	if err != nil && !errors.Is(err, engine.ErrMissingSteps) {
		return o, err
	}
	return o, nil
}

func runSummary(projectPath string) error {
	p, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("project has validation errors; fix before computing")
	}

	outcomes, err := engine.RunAll(p, app.defaults)
	if err != nil {
		return err
	}
	for _, o := range outcomes {
		printScenarioHeader(o)
		if o.Err != nil {
			printMissing(o.Err)
			continue
		}
		s := summary.Summarize(o.Result)
		printYearTable(s.ReferenceYears, s.Rows())
		fmt.Println()
	}
	return nil
}

type outcomeJSON struct {
	engine.Outcome
	Status  string `json:"status"`
	Missing []int  `json:"missing,omitempty"`
}

func printOutcomesJSON(runID string, outcomes []engine.Outcome) error {
	out := make([]outcomeJSON, len(outcomes))
	for i, o := range outcomes {
		out[i] = outcomeJSON{Outcome: o, Status: "ok"}
		var missing *engine.MissingStepsError
		if errors.As(o.Err, &missing) {
			out[i].Status = "missing steps"
			out[i].Missing = missing.Steps
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"runId":     runID,
		"scenarios": out,
	})
}

package engine

import (
	"sync"

	"github.com/adrienbihorel/myc-emissions-calculator/pkg/factors"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/project"
)

// StageOrder is the order scenarios are reported in.
var StageOrder = []project.Stage{project.StageInventory, project.StageBAU, project.StageClimate}

// Outcome is the result of one scenario within a project.
type Outcome struct {
	Stage    project.Stage `json:"stage"`
	Scenario int           `json:"scenario"`
	Name     string        `json:"name"`
	Result   *Result       `json:"result,omitempty"`
	Err      error         `json:"-"`
}

// RunAll computes every scenario of p concurrently. Scenarios share nothing
// but the read-only defaults table. Outcomes follow StageOrder, then scenario
// index. A scenario that cannot be computed carries its error in Err; the
// returned error is only set when the project's year axis is invalid.
func RunAll(p *project.Project, defaults factors.Table) ([]Outcome, error) {
	years, err := p.Years()
	if err != nil {
		return nil, err
	}

	var outcomes []Outcome
	for _, stage := range StageOrder {
		for i, sc := range p.Stages[stage] {
			outcomes = append(outcomes, Outcome{Stage: stage, Scenario: i, Name: sc.Name})
		}
	}

	var wg sync.WaitGroup
	for i := range outcomes {
		o := &outcomes[i]
		steps := &p.Stages[o.Stage][o.Scenario].Steps
		wg.Add(1)
		go func() {
			defer wg.Done()
			o.Result, o.Err = Run(years, steps, defaults)
		}()
	}
	wg.Wait()

	return outcomes, nil
}

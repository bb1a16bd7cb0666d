package engine

import (
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/project"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
)

// SocioEconomic is the population and GDP projection.
type SocioEconomic struct {
	Population series.Series `json:"population"`
	GDP        series.Series `json:"gdp"`
}

// ProjectSocioEconomic grows base population and GDP with one rate per interval.
func ProjectSocioEconomic(in project.SocioEconomic, years series.Years) SocioEconomic {
	return SocioEconomic{
		Population: series.Grow(in.Population, in.PopulationRate, series.RateBefore, years),
		GDP:        series.Grow(in.GDP, in.GDPRate, series.RateBefore, years),
	}
}

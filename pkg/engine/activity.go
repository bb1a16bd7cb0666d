package engine

import (
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/project"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
)

// ProjectVKT derives each vehicle type's VKT per reference year. By default
// base VKT is grown by its rates. With direct set, the base year keeps VKT
// and later years take VKTPerYear as entered; missing entries are 0. The
// output has exactly the vehicle types of the input.
func ProjectVKT(in series.Table[project.ActivityInput], years series.Years, direct bool) series.Table[series.Series] {
	out := make(series.Table[series.Series], len(in))
	for _, vtype := range in.Keys() {
		a := in[vtype]
		if direct {
			s := series.Series{a.VKT}
			copy(s[1:], a.VKTPerYear)
			out[vtype] = s
			continue
		}
		out[vtype] = series.Grow(a.VKT, a.VKTRate, series.RateBefore, years)
	}
	return out
}

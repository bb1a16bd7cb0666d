package engine

import (
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/project"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
)

// ModalShare returns each vehicle type's fraction of the total transport
// performance in perf, per year. A year whose total is 0 has every share 0.
func ModalShare(perf series.Nested[series.Series]) series.Table[series.Series] {
	sums := make(series.Table[series.Series], len(perf))
	var total series.Series
	for _, vtype := range perf.Keys() {
		var sum series.Series
		fuels := perf[vtype]
		for _, fuel := range fuels.Keys() {
			total.Add(fuels[fuel])
			sum.Add(fuels[fuel])
		}
		sums[vtype] = sum
	}

	out := make(series.Table[series.Series], len(sums))
	for vtype, sum := range sums {
		out[vtype] = series.Ratio(sum, total)
	}
	return out
}

// PartitionByFreight splits perf into passenger and freight vehicle types
// using the step 2 classification. Unclassified types are passenger types.
func PartitionByFreight(perf series.Nested[series.Series], vehicleTypes series.Table[project.VehicleType]) (passenger, freight series.Nested[series.Series]) {
	passenger = make(series.Nested[series.Series])
	freight = make(series.Nested[series.Series])
	for vtype, fuels := range perf {
		if series.GetOr(vehicleTypes, vtype, project.VehicleType{}).IsFreight {
			freight[vtype] = fuels
		} else {
			passenger[vtype] = fuels
		}
	}
	return passenger, freight
}

// ModalShares partitions perf first and normalizes each subset against its
// own total, never against the combined total.
func ModalShares(perf series.Nested[series.Series], vehicleTypes series.Table[project.VehicleType]) (passenger, freight series.Table[series.Series]) {
	p, f := PartitionByFreight(perf, vehicleTypes)
	return ModalShare(p), ModalShare(f)
}

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/adrienbihorel/myc-emissions-calculator/pkg/engine"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/factors"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/summary"
	"github.com/adrienbihorel/myc-emissions-calculator/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printFinding(e)
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			printFinding(w)
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printFinding(f validation.Result) {
	fmt.Printf("  [%s] %s\n", f.Level, f.Message)
	if f.Path != "" {
		fmt.Printf("    -> %s = %v\n", f.Path, f.ActualValue)
	}
	if f.Expected != "" {
		fmt.Printf("    expected: %s\n", f.Expected)
	}
	for _, s := range f.Suggestions {
		fmt.Printf("    * %s\n", s)
	}
}

func printScenarioHeader(o engine.Outcome) {
	title := fmt.Sprintf("%s #%d", o.Stage, o.Scenario)
	if o.Name != "" {
		title += ": " + o.Name
	}
	fmt.Println(title)
	for range title {
		fmt.Print("=")
	}
	fmt.Println()
}

func printMissing(err error) {
	fmt.Printf("  not computed: %v\n\n", err)
}

func printResult(r *engine.Result) {
	s := summary.Summarize(r)
	printYearTable(r.ReferenceYears, s.Rows())

	fmt.Println()
	fmt.Println("CO2 by vehicle type (WTW, " + summary.CO2Unit + ")")
	rows := make([]summary.Row, 0, len(r.SumTotalEnergyAndEmissionsWTW))
	for _, vtype := range r.SumTotalEnergyAndEmissionsWTW.Keys() {
		rows = append(rows, summary.Row{Label: vtype, Values: r.SumTotalEnergyAndEmissionsWTW[vtype].CO2})
	}
	printYearTable(r.ReferenceYears, rows)

	fmt.Println()
	fmt.Println("Passenger modal share (%)")
	printYearTable(r.ReferenceYears, shareRows(r.PassengerModalShare))
	if len(r.FreightModalShare) > 0 {
		fmt.Println()
		fmt.Println("Freight modal share (%)")
		printYearTable(r.ReferenceYears, shareRows(r.FreightModalShare))
	}
}

func shareRows(shares series.Table[series.Series]) []summary.Row {
	rows := make([]summary.Row, 0, len(shares))
	for _, vtype := range shares.Keys() {
		rows = append(rows, summary.Row{Label: vtype, Values: shares[vtype].Scale(100)})
	}
	return rows
}

func printYearTable(years series.Years, rows []summary.Row) {
	fmt.Printf("%-24s %-6s", "", "")
	for _, y := range years {
		fmt.Printf(" %12d", y)
	}
	fmt.Println()

	for _, row := range rows {
		fmt.Printf("%-24s %-6s", row.Label, row.Unit)
		for _, v := range row.Values {
			fmt.Printf(" %12s", formatValue(v))
		}
		fmt.Println()
	}
}

func printFactors(t factors.Table) {
	fmt.Printf("Default emission factors (%s)\n\n", factors.WellToWheel)
	fmt.Printf("%-10s %8s  %s\n", "Fuel", "PCI", "GES (kg CO2/TJ) per reference year")
	for _, fuel := range t.Keys() {
		f := t[fuel]
		fmt.Printf("%-10s %8s ", fuel, formatValue(f.PCI))
		for k := 0; k < series.Points; k++ {
			fmt.Printf(" %9s", formatValue(f.GESAt(k)))
		}
		fmt.Println()
	}
}

// formatValue rounds to a precision that suits the magnitude.
func formatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	d := decimal.NewFromFloat(v)
	switch a := math.Abs(v); {
	case a == 0:
		return "0"
	case a >= 1000:
		return d.StringFixed(0)
	case a >= 1:
		return d.StringFixed(2)
	}
	return d.StringFixed(4)
}

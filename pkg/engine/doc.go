// Package engine turns a scenario's step inputs into the derived time series
// of road transport activity, modal share, energy use and CO2 emissions.
//
// Every stage is a pure function of its inputs: it allocates a new output
// and never modifies what it was given. Absent keys read as zero, so no
// stage fails on partial data. The only failure Run reports is a scenario
// whose required steps are not all filled in.
package engine

// Package factors holds per-fuel energy and emission default values: the
// lower calorific value (PCI) and a CO2 factor for each reference year.
package factors

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
)

// Boundary names an emission accounting boundary.
type Boundary string

const (
	WellToWheel Boundary = "WTW"
	TankToWheel Boundary = "TTW"
)

// Factor is the default value set for one fuel.
type Factor struct {
	PCI float64   `yaml:"pci" json:"pci"`
	GES []float64 `yaml:"ges" json:"ges"`
}

// GESAt returns the CO2 factor for year index k, or 0 when unset.
func (f Factor) GESAt(k int) float64 {
	return series.At(f.GES, k)
}

// Table maps fuel type to its factor.
type Table = series.Table[Factor]

// Clone returns a deep copy so callers can never alias a shared table.
func Clone(t Table) Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for fuel, f := range t {
		out[fuel] = Factor{PCI: f.PCI, GES: append([]float64(nil), f.GES...)}
	}
	return out
}

// Defaults returns a fresh copy of the built-in well-to-wheel table used
// when a project supplies no emission factors of its own.
func Defaults() Table {
	return Clone(builtinWTW)
}

// LoadFile reads a factor table from a YAML or JSON file.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading factor table: %w", err)
	}

	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing factor table: %w", err)
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("factor table %s defines no fuels", path)
	}
	for fuel, f := range t {
		if f.PCI < 0 {
			return nil, fmt.Errorf("factor table: %s pci must be non-negative", fuel)
		}
		if len(f.GES) > series.Points {
			return nil, fmt.Errorf("factor table: %s ges has %d values, want at most %d", fuel, len(f.GES), series.Points)
		}
	}
	return t, nil
}

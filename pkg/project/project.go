// Package project defines the project snapshot consumed by the engine and
// loads it from YAML or JSON files.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/adrienbihorel/myc-emissions-calculator/pkg/series"
)

// DefaultFileName is the project file looked up inside a project directory.
const DefaultFileName = "project.yaml"

// Load reads a project from a YAML or JSON file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a project document. JSON input is accepted as YAML.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}
	return &p, nil
}

// LoadProject loads a project from a directory containing fileName, or from
// path directly when it names a file. An empty fileName means DefaultFileName.
func LoadProject(path, fileName string) (*Project, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading project: %w", err)
	}
	if !info.IsDir() {
		return Load(path)
	}
	if fileName == "" {
		fileName = DefaultFileName
	}
	return Load(filepath.Join(path, fileName))
}

// Years returns the project's reference year axis.
func (p *Project) Years() (series.Years, error) {
	return series.YearsFrom(p.ReferenceYears)
}

// Package settings defines the platform settings contract for covreport.
//
// A platform supplies a Manager to scope the merged coverage data. The
// returned patterns are glob-style strings understood by the report
// generator; covreport does not validate their syntax.
package settings

import (
	"fmt"

	"github.com/jinzhu/configor"
)

// Manager provides the platform-specific filter lists for a coverage run.
// Both lists default to empty; order is preserved in the filter expression.
type Manager interface {
	// InclusionPatterns returns file patterns to include in the report.
	InclusionPatterns() []string

	// ExclusionPatterns returns file patterns to exclude from the report.
	ExclusionPatterns() []string
}

// Default is a Manager with no inclusions and no exclusions.
type Default struct{}

func (Default) InclusionPatterns() []string { return nil }

func (Default) ExclusionPatterns() []string { return nil }

// File is a Manager backed by a settings file on disk.
type File struct {
	Include []string `json:"include" yaml:"include"`
	Exclude []string `json:"exclude" yaml:"exclude"`
}

func (f *File) InclusionPatterns() []string { return f.Include }

func (f *File) ExclusionPatterns() []string { return f.Exclude }

// LoadFile reads a yaml or json settings file into a File manager.
// List order in the file is preserved.
func LoadFile(path string) (*File, error) {
	var f File
	if err := configor.Load(&f, path); err != nil {
		return nil, fmt.Errorf("loading settings file %s: %w", path, err)
	}
	return &f, nil
}

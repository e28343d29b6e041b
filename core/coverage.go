// Package core implements the coverage invocable: discover the coverage
// files produced by a build, merge them through the external report
// generator, and write a formatted report scoped by the platform's
// include/exclude patterns.
package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/termfx/covreport/settings"
)

// Defaults for the three run options.
const (
	DefaultCoverageFiles = "Build/**/coverage.xml"
	DefaultReportType    = "Cobertura"
	DefaultOutputDir     = "Build/Coverage"
	DefaultGenerator     = "reportgenerator"
)

// LogFileName tags the log stream for a coverage run.
const LogFileName = "COVERAGE"

// Coverage merges build coverage files into a single formatted report.
// Fields are populated once from the command line and environment, then
// read-only for the duration of the run.
type Coverage struct {
	// CoverageFiles is the glob of coverage data files to merge.
	CoverageFiles string
	// ReportType names the output format, e.g. Cobertura or Html.
	ReportType string
	// OutputDir receives the generated report.
	OutputDir string
	// Generator is the report generator executable name.
	Generator string

	// Settings supplies the platform include/exclude lists.
	Settings settings.Manager
	// Executor runs the generator process.
	Executor Executor

	Log *zap.SugaredLogger
}

// RunInfo describes one completed (or aborted) coverage run.
type RunInfo struct {
	Filters      string
	MatchedFiles int
	ExitCode     int
	Duration     time.Duration
}

// Go executes the run. ExitCode is 0 on success, -1 when the coverage-file
// glob is unset or the generator cannot be started, otherwise the
// generator's own exit code.
func (c *Coverage) Go(ctx context.Context) RunInfo {
	start := time.Now()
	log := c.log()

	excludes := append(append([]string{}, DefaultExclusions...), c.platform().ExclusionPatterns()...)
	includes := c.platform().InclusionPatterns()

	if c.CoverageFiles == "" {
		log.Error("path to coverage files is required")
		return RunInfo{ExitCode: -1, Duration: time.Since(start)}
	}

	filters := BuildFileFilters(excludes, includes)

	matched, err := CountMatches(c.CoverageFiles)
	if err != nil {
		log.Warnw("could not expand coverage glob", "glob", c.CoverageFiles, "error", err)
	} else if matched == 0 {
		log.Warnw("coverage glob matched no files", "glob", c.CoverageFiles)
	} else {
		log.Debugw("coverage files discovered", "glob", c.CoverageFiles, "count", matched)
	}

	args := []string{
		"-reports:" + c.CoverageFiles,
		"-targetdir:" + c.OutputDir,
		"-reporttypes:" + c.ReportType,
		"-filefilters:" + filters,
	}

	generator := c.Generator
	if generator == "" {
		generator = DefaultGenerator
	}

	rc, err := c.executor().Run(ctx, generator, args)
	info := RunInfo{
		Filters:      filters,
		MatchedFiles: matched,
		ExitCode:     rc,
		Duration:     time.Since(start),
	}
	if err != nil {
		log.Errorw("failed to start report generator", "generator", generator, "error", err)
		return info
	}
	if rc != 0 {
		log.Errorw("report generator returned error", "exit_code", rc)
		return info
	}

	log.Debug("report generator command returned successfully")
	return info
}

func (c *Coverage) platform() settings.Manager {
	if c.Settings == nil {
		return settings.Default{}
	}
	return c.Settings
}

func (c *Coverage) executor() Executor {
	if c.Executor == nil {
		return NewProcessExecutor()
	}
	return c.Executor
}

func (c *Coverage) log() *zap.SugaredLogger {
	if c.Log == nil {
		return zap.NewNop().Sugar()
	}
	return c.Log
}

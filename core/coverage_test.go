package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor records the invocation and returns a canned exit code.
type fakeExecutor struct {
	called bool
	name   string
	args   []string

	exitCode int
	err      error
}

func (f *fakeExecutor) Run(_ context.Context, name string, args []string) (int, error) {
	f.called = true
	f.name = name
	f.args = args
	return f.exitCode, f.err
}

// listSettings is a Manager with fixed lists.
type listSettings struct {
	include []string
	exclude []string
}

func (s listSettings) InclusionPatterns() []string { return s.include }
func (s listSettings) ExclusionPatterns() []string { return s.exclude }

func newCoverage(exec Executor, mgr listSettings) *Coverage {
	return &Coverage{
		CoverageFiles: DefaultCoverageFiles,
		ReportType:    DefaultReportType,
		OutputDir:     DefaultOutputDir,
		Settings:      mgr,
		Executor:      exec,
	}
}

func TestGoMissingCoverageFiles(t *testing.T) {
	exec := &fakeExecutor{}
	cov := newCoverage(exec, listSettings{})
	cov.CoverageFiles = ""

	info := cov.Go(context.Background())

	assert.Equal(t, -1, info.ExitCode)
	assert.False(t, exec.called, "generator must not run without a coverage glob")
}

func TestGoSuccess(t *testing.T) {
	exec := &fakeExecutor{exitCode: 0}
	cov := newCoverage(exec, listSettings{})

	info := cov.Go(context.Background())

	assert.Equal(t, 0, info.ExitCode)
	assert.True(t, exec.called)
	assert.Equal(t, "reportgenerator", exec.name)
}

func TestGoPropagatesGeneratorExitCode(t *testing.T) {
	for _, code := range []int{1, 2, 77} {
		exec := &fakeExecutor{exitCode: code}
		cov := newCoverage(exec, listSettings{})

		info := cov.Go(context.Background())
		assert.Equal(t, code, info.ExitCode)
	}
}

func TestGoArgumentConstruction(t *testing.T) {
	exec := &fakeExecutor{}
	cov := newCoverage(exec, listSettings{
		include: []string{"Foo.c"},
		exclude: []string{"Bar.c"},
	})
	cov.CoverageFiles = "Build/**/coverage.xml"
	cov.ReportType = "Html"
	cov.OutputDir = "Build/Coverage"

	info := cov.Go(context.Background())
	require.True(t, exec.called)

	assert.Equal(t, []string{
		"-reports:Build/**/coverage.xml",
		"-targetdir:Build/Coverage",
		"-reporttypes:Html",
		"-filefilters:-*AutoGen.c;-*UnitTest*;-Bar.c;+Foo.c",
	}, exec.args)
	assert.Equal(t, "-*AutoGen.c;-*UnitTest*;-Bar.c;+Foo.c", info.Filters)
}

func TestGoBaselineAlwaysPrepended(t *testing.T) {
	exec := &fakeExecutor{}
	cov := newCoverage(exec, listSettings{exclude: []string{"*AutoGen.c"}})

	info := cov.Go(context.Background())

	// Platform repeating a baseline pattern does not replace it.
	assert.Equal(t, "-*AutoGen.c;-*UnitTest*;-*AutoGen.c", info.Filters)
}

func TestGoCustomGenerator(t *testing.T) {
	exec := &fakeExecutor{}
	cov := newCoverage(exec, listSettings{})
	cov.Generator = "/opt/tools/reportgenerator"

	cov.Go(context.Background())
	assert.Equal(t, "/opt/tools/reportgenerator", exec.name)
}

func TestGoStartFailure(t *testing.T) {
	exec := &fakeExecutor{exitCode: -1, err: assert.AnError}
	cov := newCoverage(exec, listSettings{})

	info := cov.Go(context.Background())
	assert.Equal(t, -1, info.ExitCode)
}

func TestGoNilSettingsDefaultsToEmptyLists(t *testing.T) {
	exec := &fakeExecutor{}
	cov := &Coverage{
		CoverageFiles: DefaultCoverageFiles,
		ReportType:    DefaultReportType,
		OutputDir:     DefaultOutputDir,
		Executor:      exec,
	}

	info := cov.Go(context.Background())
	assert.Equal(t, "-*AutoGen.c;-*UnitTest*", info.Filters)
}

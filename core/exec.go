package core

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// Executor runs the external report generator and reports its exit code.
// The seam exists so tests can observe arguments and fake exit codes.
type Executor interface {
	Run(ctx context.Context, name string, args []string) (int, error)
}

// processExecutor invokes the generator as a child process, streaming its
// output to our own stdout/stderr. Single synchronous attempt, no retries.
type processExecutor struct{}

// NewProcessExecutor returns the Executor used outside of tests.
func NewProcessExecutor() Executor {
	return processExecutor{}
}

func (processExecutor) Run(ctx context.Context, name string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	// Start failure: binary missing or not executable.
	return -1, err
}

package executor

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const maxLineSize = 1024 * 1024

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command and returns its stdout
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", commandError(name, err, stderr.String())
	}

	return stdout.String(), nil
}

// Stream runs an external command and calls onLine for every stdout line as it arrives.
// Stderr is kept and attached to the error if the command fails.
func (e *implExecutor) Stream(ctx context.Context, onLine LineFunc, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe for '%s': %w", name, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start '%s': %w", name, err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if onLine != nil {
			onLine(scanner.Text())
		}
	}
	scanErr := scanner.Err()

	if err := cmd.Wait(); err != nil {
		return commandError(name, err, stderr.String())
	}
	if scanErr != nil {
		return fmt.Errorf("read output of '%s': %w", name, scanErr)
	}

	return nil
}

func commandError(name string, err error, stderr string) error {
	stderr = strings.TrimSpace(stderr)
	if stderr != "" {
		return fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, stderr)
	}
	return fmt.Errorf("command '%s' failed: %w", name, err)
}

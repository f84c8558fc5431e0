package executor

import "context"

// LineFunc receives each line a command writes to stdout
type LineFunc func(line string)

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	Stream(ctx context.Context, onLine LineFunc, name string, args ...string) error
}

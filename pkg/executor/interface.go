package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteWithEnv runs name with env appended to the current environment.
	// Later entries win, so env overrides inherited values.
	ExecuteWithEnv(ctx context.Context, env []string, name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}

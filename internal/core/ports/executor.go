// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
)

// Executor defines the interface for running the intercepted build.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs argv in dir with the given environment.
	//
	// The env parameter contains environment variables in "KEY=VALUE" format and
	// replaces the inherited environment entirely.
	//
	// A build that runs but exits non-zero yields a *domain.BuildFailure.
	Execute(ctx context.Context, argv, env []string, dir string, stdout, stderr io.Writer) error
}

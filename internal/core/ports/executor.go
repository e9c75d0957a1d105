// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cascade/internal/core/domain"
)

// Executor defines the interface for running external programs.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command synchronously with the inherited standard streams.
	//
	// The env parameter contains environment variables in "KEY=VALUE" format
	// that are layered over the process environment.
	//
	// It returns the exit status of the program. A non-nil error means the
	// program could not be started at all.
	Execute(ctx context.Context, cmd *domain.CommandLine, env []string) (int, error)
}

package ports

import (
	"context"
	"io"

	"go.trai.ch/wandler/internal/core/domain"
)

// Executor defines the interface for executing tasks.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the task's command with workDir as the working directory
	// and blocks until the process exits.
	//
	// The process writes straight to stdout and stderr.
	// It returns an error matching domain.ErrTaskExecutionFailed if the
	// command cannot be tokenized, cannot be started, or exits nonzero.
	Execute(ctx context.Context, task domain.Task, workDir string, stdout, stderr io.Writer) error
}

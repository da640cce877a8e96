// Package shell runs task commands as child processes.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/wandler/internal/core/domain"
	"go.trai.ch/wandler/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor with os/exec.
// Commands are split into words with shell quoting rules and started
// directly, never through a shell, so globs, pipes and variables stay literal.
type Executor struct {
	logger ports.Logger
	stdin  io.Reader
}

// NewExecutor creates a new Executor. Child processes inherit os.Stdin.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdin:  os.Stdin,
	}
}

// WithStdin replaces the reader handed to child processes.
func (e *Executor) WithStdin(r io.Reader) *Executor {
	e.stdin = r
	return e
}

// Execute runs the task's command in workDir and waits for it to exit.
// Output is not captured: the child writes straight to stdout and stderr.
func (e *Executor) Execute(ctx context.Context, task domain.Task, workDir string, stdout, stderr io.Writer) error {
	args, err := Split(task.Command)
	if err != nil {
		return failure(task, err)
	}

	e.logger.Debug(fmt.Sprintf("executing %q in %s", args, workDir))

	cmd := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // command comes from the user's configuration
	cmd.Dir = workDir
	cmd.Stdin = e.stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to start command"), "command", args[0])
		return failure(task, err)
	}

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		e.logger.Debug(fmt.Sprintf("task %q exited with code %d", task.Name, exitCode))
		return failure(task, zerr.With(err, "exit_code", exitCode))
	}

	e.logger.Debug(fmt.Sprintf("task %q exited with code 0", task.Name))
	return nil
}

// Split tokenizes command with shell word-splitting rules.
// It fails on unbalanced quotes or a trailing escape, and on commands without words.
func Split(command string) ([]string, error) {
	words, err := shellquote.Split(command)
	if err != nil {
		return nil, zerr.Wrap(err, "command is not valid shell syntax")
	}
	if len(words) == 0 {
		return nil, zerr.Wrap(domain.ErrEmptyCommand, "")
	}
	return words, nil
}

func failure(task domain.Task, err error) error {
	err = zerr.With(zerr.Wrap(err, "task '"+task.Name+"' failed"), "task", task.Name)
	return domain.Classify(domain.ErrTaskExecutionFailed, err)
}

package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// User-facing error kinds. Every failure of an invocation is classified as exactly one of them.
var (
	// ErrConfig covers every failure before task resolution: discovery, reading, parsing and validation.
	ErrConfig = zerr.New("configuration error")

	// ErrTask covers task resolution and execution failures.
	ErrTask = zerr.New("task error")
)

// Failure sub-kinds. They stay reachable through errors.Is after the boundary kind is attached.
var (
	// ErrConfigNotFound is returned when no configuration file exists in the working directory or its ancestors.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file is not well-formed YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the configuration parses but violates the schema.
	ErrConfigInvalid = zerr.New("invalid config file")

	// ErrTaskNotFound is returned when a requested task is not declared in the configuration.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrTaskExecutionFailed is returned when a task's process fails to start or exits nonzero.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrTaskAlreadyExists is returned when two tasks are declared under the same name.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrEmptyCommand is returned when a command tokenizes to no words.
	ErrEmptyCommand = zerr.New("command is empty")
)

// ClassifiedError marks an error chain as belonging to a kind.
// errors.Is(e, e.Kind) holds while the wrapped chain is left untouched.
type ClassifiedError struct {
	Kind error
	Err  error
}

// Classify attaches kind to err. It returns nil if err is nil.
func Classify(kind, err error) error {
	if err == nil {
		return nil
	}
	return &ClassifiedError{Kind: kind, Err: err}
}

// Error returns the message of the wrapped chain.
func (e *ClassifiedError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped chain.
func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the attached kind.
func (e *ClassifiedError) Is(target error) bool {
	return target == e.Kind
}

// KindOf returns ErrConfig or ErrTask for a classified error, or nil if err carries neither kind.
func KindOf(err error) error {
	switch {
	case errors.Is(err, ErrConfig):
		return ErrConfig
	case errors.Is(err, ErrTask):
		return ErrTask
	default:
		return nil
	}
}

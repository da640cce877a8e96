package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/wandler/internal/core/domain"
	"go.trai.ch/wandler/internal/core/ports"
	"go.trai.ch/zerr"
)

// TaskRunner resolves a task, runs it and reports the outcome.
// Every error it returns is classified as domain.ErrTask.
type TaskRunner struct {
	executor ports.Executor
	sink     ports.OutputSink
	tracer   ports.Tracer
	resolver Resolver
	stdout   io.Writer
	stderr   io.Writer
}

// NewTaskRunner creates a TaskRunner whose tasks write to the process streams.
func NewTaskRunner(executor ports.Executor, sink ports.OutputSink, tracer ports.Tracer) *TaskRunner {
	return &TaskRunner{
		executor: executor,
		sink:     sink,
		tracer:   tracer,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithStreams replaces the streams handed to task processes.
func (r *TaskRunner) WithStreams(stdout, stderr io.Writer) *TaskRunner {
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// Run resolves name in cfg and executes it in baseDir.
func (r *TaskRunner) Run(ctx context.Context, cfg *domain.Configuration, baseDir, name string) error {
	var task domain.Task
	err := trackStage(ctx, r.tracer, domain.StageResolved, func(_ context.Context, span ports.Span) error {
		var err error
		task, err = r.resolver.Resolve(cfg, name)
		span.SetAttribute("task", name)
		return err
	})
	if err != nil {
		return domain.Classify(domain.ErrTask, err)
	}

	r.sink.Info("Running command: " + task.Command)

	err = trackStage(ctx, r.tracer, domain.StageExecuting, func(ctx context.Context, span ports.Span) error {
		span.SetAttribute("command", task.Command)
		span.SetAttribute("dir", baseDir)
		return r.executor.Execute(ctx, task, baseDir, r.stdout, r.stderr)
	})
	if err != nil {
		return domain.Classify(domain.ErrTask, err)
	}

	r.sink.Success("Task '" + name + "' completed successfully.")
	return nil
}

// trackStage runs fn inside a span named after stage.
// A failure is recorded on the span and tagged with the stage it happened in.
func trackStage(
	ctx context.Context,
	tracer ports.Tracer,
	stage domain.Stage,
	fn func(context.Context, ports.Span) error,
) error {
	ctx, span := tracer.Start(ctx, stage.String())
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return zerr.With(err, "stage", stage.String())
	}
	return nil
}

// Package app implements the application layer for wandler.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/wandler/internal/core/domain"
	"go.trai.ch/wandler/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	listHeader     = "Available tasks:"
	listNoTasks    = "No tasks found in the configuration file."
	listNoDesc     = "No description"
	listLineFormat = "%-20s - %s"
	runSpanName    = "wandler.run"
	listSpanName   = "wandler.list"
	spanAttrTask   = "task"
)

// App represents the main application logic.
type App struct {
	locator  ports.ConfigLocator
	loader   ports.ConfigLoader
	executor ports.Executor
	sink     ports.OutputSink
	tracer   ports.Tracer
	logger   ports.Logger

	workDir    string
	configFile string
	stdout     io.Writer
	stderr     io.Writer
}

// New creates a new App instance.
func New(
	locator ports.ConfigLocator,
	loader ports.ConfigLoader,
	executor ports.Executor,
	sink ports.OutputSink,
	tracer ports.Tracer,
	logger ports.Logger,
) *App {
	return &App{
		locator:  locator,
		loader:   loader,
		executor: executor,
		sink:     sink,
		tracer:   tracer,
		logger:   logger,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithWorkDir sets the directory the configuration search starts from.
// Empty means the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithConfigFile makes every invocation use path instead of searching.
// Empty restores the search.
func (a *App) WithConfigFile(path string) *App {
	a.configFile = path
	return a
}

// WithStreams sets the streams task processes write to.
func (a *App) WithStreams(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// Run locates and loads the configuration, then runs the named task.
// Errors match domain.ErrConfig or domain.ErrTask.
func (a *App) Run(ctx context.Context, name string) error {
	ctx, span := a.tracer.Start(ctx, runSpanName, ports.WithAttribute(spanAttrTask, name))
	defer span.End()

	session, err := a.newSession()
	if err != nil {
		span.RecordError(err)
		return err
	}

	cfg, baseDir, err := a.load(ctx, session)
	if err != nil {
		span.RecordError(err)
		return err
	}

	runner := NewTaskRunner(a.executor, a.sink, a.tracer).WithStreams(a.stdout, a.stderr)
	if err := runner.Run(ctx, cfg, baseDir, name); err != nil {
		span.RecordError(err)
		a.logger.Debug(fmt.Sprintf("%s failed in stage %s", name, failedStage(err)))
		return err
	}
	return nil
}

// List prints every task with its description in declaration order.
// A configuration without tasks produces a warning and no error.
func (a *App) List(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, listSpanName)
	defer span.End()

	session, err := a.newSession()
	if err != nil {
		span.RecordError(err)
		return err
	}

	cfg, _, err := a.load(ctx, session)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if cfg.Len() == 0 {
		a.sink.Warn(listNoTasks)
		return nil
	}

	a.sink.Info(listHeader)
	for _, task := range cfg.Tasks() {
		a.sink.Info(formatListLine(task))
	}
	return nil
}

func formatListLine(task domain.Task) string {
	desc := task.Description
	if desc == "" {
		desc = listNoDesc
	}
	return fmt.Sprintf(listLineFormat, task.Name, desc)
}

// newSession creates the context object for one invocation.
func (a *App) newSession() (*Session, error) {
	dir := a.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			err = zerr.Wrap(err, "failed to get working directory")
			return nil, domain.Classify(domain.ErrConfig, domain.Classify(domain.ErrConfigNotFound, err))
		}
		dir = wd
	}
	return NewSession(a.locator, a.loader, dir).WithConfigFile(a.configFile), nil
}

// load runs the located and loaded stages.
func (a *App) load(ctx context.Context, session *Session) (*domain.Configuration, string, error) {
	var baseDir string
	err := trackStage(ctx, a.tracer, domain.StageLocated, func(_ context.Context, span ports.Span) error {
		var err error
		baseDir, err = session.BaseDir()
		if err == nil {
			path, _ := session.ConfigPath()
			span.SetAttribute("path", path)
		}
		return err
	})
	if err != nil {
		return nil, "", domain.Classify(domain.ErrConfig, err)
	}

	var cfg *domain.Configuration
	err = trackStage(ctx, a.tracer, domain.StageLoaded, func(_ context.Context, span ports.Span) error {
		var err error
		cfg, err = session.Config()
		if err == nil {
			span.SetAttribute("tasks", cfg.Len())
		}
		return err
	})
	if err != nil {
		return nil, "", domain.Classify(domain.ErrConfig, err)
	}

	return cfg, baseDir, nil
}

// failedStage returns the stage recorded on err, or "unknown".
func failedStage(err error) string {
	var zErr *zerr.Error
	if errors.As(err, &zErr) {
		if stage, ok := zErr.Metadata()["stage"].(string); ok {
			return stage
		}
	}
	return "unknown"
}

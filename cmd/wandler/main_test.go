package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/wandler/internal/adapters/logger"
	"go.trai.ch/wandler/internal/adapters/telemetry"
	"go.trai.ch/wandler/internal/adapters/terminal"
	"go.trai.ch/wandler/internal/app"
	"go.trai.ch/wandler/internal/core/domain"
	"go.trai.ch/wandler/internal/core/ports/mocks"
	"go.trai.ch/wandler/internal/ui/output"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"wandler": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   filepath.Join("testdata", "script"),
		Setup: setupScript,
	})
}

func setupScript(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "")

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, domain.DirPerm); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	return nil
}

type testComponents struct {
	*app.Components
	locator  *mocks.MockConfigLocator
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
}

func newTestComponents(t *testing.T) *testComponents {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	locator := mocks.NewMockConfigLocator(ctrl)
	loader := mocks.NewMockConfigLoader(ctrl)
	executor := mocks.NewMockExecutor(ctrl)

	log := logger.New()
	sink := terminal.New(nil, nil, output.ColorProfileASCII)
	tracer := telemetry.NewOTelTracer(log)
	application := app.New(locator, loader, executor, sink, tracer, log).WithWorkDir("/repo")

	return &testComponents{
		Components: app.NewComponents(application, log, sink, tracer),
		locator:    locator,
		loader:     loader,
		executor:   executor,
	}
}

func (tc *testComponents) provider(_ context.Context) (*app.Components, func(), error) {
	return tc.Components, func() {}, nil
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	tc := newTestComponents(t)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, tc.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "wandler version")
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_TaskError verifies that a task failure is reported once on stderr with exit code 1.
func TestRun_TaskError(t *testing.T) {
	tc := newTestComponents(t)

	cfg, err := domain.NewConfiguration(domain.Task{Name: "test", Command: "pytest"})
	assert.NoError(t, err)
	tc.locator.EXPECT().Find("/repo").Return("/repo/wandler.yaml", nil)
	tc.loader.EXPECT().Load("/repo/wandler.yaml").Return(cfg, nil)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"run", "lint"}, stdout, stderr, tc.provider)

	assert.Equal(t, 1, exitCode)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "task 'lint' not found in the configuration\n", stderr.String())
}

// TestRun_ConfigError verifies that a missing configuration fails before any task logic runs.
func TestRun_ConfigError(t *testing.T) {
	tc := newTestComponents(t)

	notFound := domain.Classify(domain.ErrConfigNotFound, zerr.New("no wandler.yaml configuration file found"))
	tc.locator.EXPECT().Find("/repo").Return("", notFound)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"list"}, new(bytes.Buffer), stderr, tc.provider)

	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "no wandler.yaml configuration file found\n", stderr.String())
}

// TestRun_InvalidFlagValue verifies that bad global flag values fail the invocation.
func TestRun_InvalidFlagValue(t *testing.T) {
	tc := newTestComponents(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"list", "--log-format", "xml"}, new(bytes.Buffer), stderr, tc.provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "invalid log format")
}

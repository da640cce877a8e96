package app_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wandler/internal/adapters/telemetry"
	"go.trai.ch/wandler/internal/app"
	"go.trai.ch/wandler/internal/core/domain"
	"go.trai.ch/wandler/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestTaskRunner_Run(t *testing.T) {
	f := newFixture(t)
	var stdout, stderr bytes.Buffer

	f.executor.EXPECT().
		Execute(gomock.Any(), domain.Task{Name: "build", Command: "go build ./..."}, "/base", &stdout, &stderr).
		Return(nil)

	runner := app.NewTaskRunner(f.executor, f.sink, telemetry.NewNoOpTracer()).WithStreams(&stdout, &stderr)
	require.NoError(t, runner.Run(context.Background(), sampleConfig(t), "/base", "build"))

	assert.Equal(t, []message{
		{Level: "info", Text: "Running command: go build ./..."},
		{Level: "success", Text: "Task 'build' completed successfully."},
	}, f.sink.messages)
}

func TestTaskRunner_ClassifiesEveryFailureAsTaskError(t *testing.T) {
	f := newFixture(t)

	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(zerr.New("unclassified"))

	runner := app.NewTaskRunner(f.executor, f.sink, telemetry.NewNoOpTracer())
	err := runner.Run(context.Background(), sampleConfig(t), "/base", "test")
	require.Error(t, err)
	assert.Equal(t, domain.ErrTask, domain.KindOf(err))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "executing", zErr.Metadata()["stage"])
}

func TestTaskRunner_NotifiesAroundExecution(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockOutputSink(ctrl)
	executor := mocks.NewMockExecutor(ctrl)

	gomock.InOrder(
		sink.EXPECT().Info("Running command: pytest"),
		executor.EXPECT().Execute(gomock.Any(), gomock.Any(), "/base", gomock.Any(), gomock.Any()).Return(nil),
		sink.EXPECT().Success("Task 'test' completed successfully."),
	)

	runner := app.NewTaskRunner(executor, sink, telemetry.NewNoOpTracer())
	require.NoError(t, runner.Run(context.Background(), sampleConfig(t), "/base", "test"))
}

func TestTaskRunner_UnknownTaskNeverExecutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockOutputSink(ctrl)
	executor := mocks.NewMockExecutor(ctrl)

	runner := app.NewTaskRunner(executor, sink, telemetry.NewNoOpTracer())
	err := runner.Run(context.Background(), sampleConfig(t), "/base", "deploy")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.ErrorIs(t, err, domain.ErrTask)
}

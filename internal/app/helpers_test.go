package app_test

import (
	"testing"

	"go.trai.ch/wandler/internal/adapters/telemetry"
	"go.trai.ch/wandler/internal/app"
	"go.trai.ch/wandler/internal/core/domain"
	"go.trai.ch/wandler/internal/core/ports"
	"go.trai.ch/wandler/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type message struct {
	Level    string
	Text     string
	Emphasis bool
}

// recordingSink captures everything sent to ports.OutputSink.
type recordingSink struct {
	messages []message
}

var _ ports.OutputSink = (*recordingSink)(nil)

func (s *recordingSink) Info(text string)    { s.record("info", text, false) }
func (s *recordingSink) Success(text string) { s.record("success", text, false) }
func (s *recordingSink) Warn(text string)    { s.record("warn", text, false) }

func (s *recordingSink) Error(text string, emphasis bool) {
	s.record("error", text, emphasis)
}

func (s *recordingSink) record(level, text string, emphasis bool) {
	s.messages = append(s.messages, message{Level: level, Text: text, Emphasis: emphasis})
}

type fixture struct {
	locator  *mocks.MockConfigLocator
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
	sink     *recordingSink
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		locator:  mocks.NewMockConfigLocator(ctrl),
		loader:   mocks.NewMockConfigLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		sink:     &recordingSink{},
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return f
}

func (f *fixture) app(tracer ports.Tracer) *app.App {
	if tracer == nil {
		tracer = telemetry.NewNoOpTracer()
	}
	return app.New(f.locator, f.loader, f.executor, f.sink, tracer, f.logger).WithWorkDir("/repo/sub")
}

func sampleConfig(t *testing.T) *domain.Configuration {
	t.Helper()
	cfg, err := domain.NewConfiguration(
		domain.Task{Name: "test", Command: "pytest", Description: "run tests"},
		domain.Task{Name: "build", Command: "go build ./..."},
		domain.Task{Name: "lint", Command: "golangci-lint run", Description: "static checks"},
	)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

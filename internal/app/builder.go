package app

import (
	"context"
	"io"

	"go.trai.ch/wandler/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/wandler/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wandler/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/wandler/internal/adapters/terminal"  //nolint:depguard // Wired in app layer
	"go.trai.ch/zerr"
)

// Log formats accepted by Settings.LogFormat.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// Color modes accepted by Settings.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings holds the global flags of one invocation.
type Settings struct {
	ConfigFile string
	Verbose    bool
	LogFormat  string
	Color      string
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger *logger.Logger
	Sink   *terminal.Sink
	Tracer *telemetry.OTelTracer

	verbose bool
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, log *logger.Logger, sink *terminal.Sink, tracer *telemetry.OTelTracer) *Components {
	return &Components{
		App:    app,
		Logger: log,
		Sink:   sink,
		Tracer: tracer,
	}
}

// Apply configures the components from the global flags.
func (c *Components) Apply(s Settings) error {
	switch s.LogFormat {
	case "", LogFormatPretty:
		c.Logger.SetJSON(false)
	case LogFormatJSON:
		c.Logger.SetJSON(true)
	default:
		return zerr.With(zerr.New("invalid log format"), "value", s.LogFormat)
	}

	switch s.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
		c.Sink.SetProfile(detector.Profile(detector.ResolveMode(detector.DetectEnvironment(), s.Color)))
	default:
		return zerr.With(zerr.New("invalid color mode"), "value", s.Color)
	}

	c.verbose = s.Verbose
	c.Logger.SetVerbose(s.Verbose)
	c.App.WithConfigFile(s.ConfigFile)
	return nil
}

// SetOutput redirects every user-facing and diagnostic stream.
// Task processes inherit stdout and stderr as well.
func (c *Components) SetOutput(stdout, stderr io.Writer) {
	c.Sink.SetOutput(stdout, stderr)
	c.Logger.SetOutput(stderr)
	c.App.WithStreams(stdout, stderr)
}

// ReportError prints err through the sink.
// In verbose mode the full cause chain is logged as well.
func (c *Components) ReportError(err error) {
	c.Sink.Error(err.Error(), true)
	if c.verbose {
		c.Logger.Error(err)
	}
}

// Shutdown flushes the tracer.
func (c *Components) Shutdown(ctx context.Context) error {
	return c.Tracer.Shutdown(ctx)
}

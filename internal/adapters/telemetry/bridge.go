// Package telemetry records pipeline stages as OpenTelemetry spans.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/wandler/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor by reporting span transitions
// to the diagnostic logger at debug level.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	b.logger.Debug(describe(s.Name()+" started", s))
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "stage failed"
		}
		b.logger.Debug(describe(fmt.Sprintf("%s failed after %s: %s", s.Name(), elapsed, desc), s))
		return
	}
	b.logger.Debug(describe(fmt.Sprintf("%s finished in %s", s.Name(), elapsed), s))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// describe appends the span's attributes as key=value pairs.
func describe(msg string, s sdktrace.ReadOnlySpan) string {
	for _, kv := range s.Attributes() {
		msg += " " + string(kv.Key) + "=" + kv.Value.Emit()
	}
	return msg
}

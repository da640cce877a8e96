package ports

// OutputSink receives the user-facing messages of an invocation.
// Every call is a fire-and-forget write; callers must not depend on formatting.
//
//go:generate go run go.uber.org/mock/mockgen -source=output.go -destination=mocks/mock_output.go -package=mocks
type OutputSink interface {
	// Info prints a standard informational message.
	Info(text string)
	// Success prints a success message.
	Success(text string)
	// Warn prints a warning message.
	Warn(text string)
	// Error prints an error message, emphasized when emphasis is true.
	Error(text string, emphasis bool)
}

// Package main is the entry point for the wandler task runner.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/wandler/cmd/wandler/commands"
	"go.trai.ch/wandler/internal/app"
	_ "go.trai.ch/wandler/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, provideComponents))
}

func provideComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, func() { _ = c.Shutdown(ctx) }, nil
}

// run executes the CLI and returns the process exit code.
// No signal handler is installed: an interrupt reaches wandler and the task directly.
func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// The sink is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	components.SetOutput(stdout, stderr)

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)
	cli.SetGlobalsHook(components.Apply)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.ReportError(err)
		return 1
	}
	return 0
}

// Package commands implements the CLI commands for wandler.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/wandler/internal/app"
	"go.trai.ch/wandler/internal/build"
)

// errVersionShown stops a subcommand after --version was handled.
var errVersionShown = errors.New("version shown")

// CLI represents the command line interface for wandler.
type CLI struct {
	app         Application
	rootCmd     *cobra.Command
	settings    app.Settings
	globalsHook func(app.Settings) error
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, name string) error
	List(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "wandler",
		Short:         "A small task runner for project commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.settings.ConfigFile, "config", "c", "", "Use this configuration file instead of searching for one")
	flags.BoolVar(&c.settings.Verbose, "verbose", false, "Print diagnostic logs")
	flags.StringVar(&c.settings.LogFormat, "log-format", app.LogFormatPretty, "Diagnostic log format: pretty or json")
	flags.StringVar(&c.settings.Color, "color", app.ColorAuto, "Color output: auto, always or never")
	flags.BoolP("version", "v", false, "Print the application version")

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentPreRunE = c.preRun

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// SetGlobalsHook registers fn to receive the global flags before any command runs.
func (c *CLI) SetGlobalsHook(fn func(app.Settings) error) {
	c.globalsHook = fn
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if errors.Is(err, errVersionShown) {
		return nil
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// preRun handles --version for subcommands and applies the global flags.
// The root command prints its version through cobra before this hook runs.
func (c *CLI) preRun(cmd *cobra.Command, _ []string) error {
	if show, _ := cmd.Flags().GetBool("version"); show {
		printVersion(cmd.OutOrStdout())
		return errVersionShown
	}

	if c.globalsHook != nil {
		return c.globalsHook(c.settings)
	}
	return nil
}

func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "wandler version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)
}

// Package commands implements the CLI commands for cdb.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cdb/internal/app"
	"go.trai.ch/cdb/internal/build"
	"go.trai.ch/cdb/internal/engine/analyzer"
)

// CLI represents the command line interface for cdb.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Capture(ctx context.Context, opts app.CaptureOptions) error
	Filter(ctx context.Context, opts app.FilterOptions) error
	Classify(argv []string, dir string) (analyzer.Result, error)
	MergeSymbols(ctx context.Context, inputDir, outputFile string) error
	ConfigureLogging(verbose, jsonLogs bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cdb",
		Short:         "Generate a compilation database by intercepting a build",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Declared before the version flag so that -v stays with verbose.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every dropped invocation and the session timings")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		c.app.ConfigureLogging(verbose, jsonLogs)
	}

	rootCmd.AddCommand(c.newCaptureCmd())
	rootCmd.AddCommand(c.newFilterCmd())
	rootCmd.AddCommand(c.newClassifyCmd())
	rootCmd.AddCommand(c.newCTUCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
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

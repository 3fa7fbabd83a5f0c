// Package cli implements the cargo-scorecard command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/buildinfo"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/errors"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/report"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string
}

// New creates a new CLI instance. Logs and status output go to w; the report
// goes to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: w,
		getenv: os.Getenv,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// ReportError prints the user-facing message of a failed run. The full
// error chain, codes included, is only logged at debug level.
func (c *CLI) ReportError(err error) {
	c.Logger.Debug("command failed", "err", err)
	printError(c.stderr, "%s", errors.UserMessage(err))
}

// RootCommand creates the root cobra command. Running it without a
// subcommand scans the project in the working directory.
func (c *CLI) RootCommand() *cobra.Command {
	var opts scanOpts

	root := &cobra.Command{
		Use:   buildinfo.Name,
		Short: "Report OpenSSF Scorecard security scores for a Rust project's dependencies",
		Long: `cargo-scorecard lists the dependencies of a Cargo project, looks up each
crate's source repository on crates.io and fetches that repository's
OpenSSF Scorecard security score. Lookups run concurrently; a failed lookup
only marks its own row as unavailable.`,
		Example: `  cargo-scorecard
  cargo-scorecard --manifest-path ../app/Cargo.toml -f table
  cargo-scorecard --lockfile Cargo.lock -f json -o scores.json
  cargo tree --prefix none | cargo-scorecard -i -`,
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScan(cmd, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	f := root.Flags()
	f.StringVarP(&opts.format, "format", "f", string(report.FormatMarkdown), "report format (markdown, table, json)")
	f.StringVarP(&opts.output, "output", "o", "", "write the report to a file instead of stdout")
	f.StringVar(&opts.lockfile, "lockfile", "", "list dependencies from a Cargo.lock instead of running cargo tree")
	f.StringVar(&opts.manifestPath, "manifest-path", "", "path to the Cargo.toml passed to cargo tree")
	f.StringVarP(&opts.input, "input", "i", "", `read "name version" lines from a file ("-" for stdin)`)
	f.StringVar(&opts.registryURL, flagRegistryURL, "", "crates.io API root (default "+envRegistryURL+" or the public registry)")
	f.StringVar(&opts.scorecardURL, flagScorecardURL, "", "Scorecard API root (default "+envScorecardURL+" or the public service)")
	f.DurationVar(&opts.timeout, flagTimeout, 0, "per-request timeout (default "+envTimeout+" or 10s)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", defaultEnvFile, "dotenv file with configuration defaults")
	root.MarkFlagsMutuallyExclusive("lockfile", "input", "manifest-path")

	root.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(report.Formats))
		for i, f := range report.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(c.completionCommand())

	return root
}

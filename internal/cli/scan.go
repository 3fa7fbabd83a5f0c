package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/deps"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/deps/rust"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/enrich"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/errors"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations/crates"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations/scorecard"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/report"
)

type scanOpts struct {
	format       string
	output       string
	lockfile     string
	manifestPath string
	input        string
	registryURL  string
	scorecardURL string
	timeout      time.Duration
	envFile      string
}

func (c *CLI) runScan(cmd *cobra.Command, opts scanOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	cfg, err := c.resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	lister := c.newLister(logger, opts)
	logger.Debug("listing dependencies", "lister", lister.Type())
	prog := newProgress(logger)
	list, err := lister.List(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	prog.done(fmt.Sprintf("Found %d dependencies", len(list)))

	results := c.enrichAll(ctx, cfg, list)
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Info(report.Summarize(results).String())

	return c.writeReport(opts.output, format, results)
}

// resolveConfig merges the dotenv file, the environment and explicitly set
// flags, in increasing order of precedence.
func (c *CLI) resolveConfig(cmd *cobra.Command, opts scanOpts) (config, error) {
	if err := loadEnvFile(opts.envFile); err != nil {
		return config{}, err
	}
	cfg, err := configFromEnv(c.getenv)
	if err != nil {
		return config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed(flagRegistryURL) {
		cfg.RegistryURL = opts.registryURL
	}
	if flags.Changed(flagScorecardURL) {
		cfg.ScorecardURL = opts.scorecardURL
	}
	if flags.Changed(flagTimeout) {
		cfg.Timeout = opts.timeout
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	cfg.RegistryURL = withoutTrailingSlash(cfg.RegistryURL)
	cfg.ScorecardURL = withoutTrailingSlash(cfg.ScorecardURL)
	return cfg, nil
}

func (c *CLI) newLister(logger *log.Logger, opts scanOpts) deps.Lister {
	switch {
	case opts.input != "":
		return &deps.TextList{Path: opts.input, Stdin: c.stdin}
	case opts.lockfile != "":
		lf := &rust.Lockfile{Path: opts.lockfile}
		if !lf.Supports(filepath.Base(opts.lockfile)) {
			logger.Warn("lockfile name is not Cargo.lock", "path", opts.lockfile)
		}
		return lf
	default:
		return rust.NewCargoTree(opts.manifestPath)
	}
}

// enrichAll runs the batch against one shared HTTP client.
func (c *CLI) enrichAll(ctx context.Context, cfg config, list []deps.Dependency) []enrich.Result {
	logger := loggerFromContext(ctx)
	hc := integrations.NewHTTPClient(cfg.Timeout)
	e := enrich.New(
		crates.NewClientWithBaseURL(hc, cfg.RegistryURL),
		scorecard.NewClientWithBaseURL(hc, cfg.ScorecardURL),
		enrich.Options{Logger: logger.Debugf},
	)

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, c.stderr, "Fetching repository URLs and security scores...")
	spinner.Start()
	results := e.Enrich(ctx, list)
	if ctx.Err() != nil {
		spinner.StopWithError("Cancelled")
		return results
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Enriched %d dependencies", len(results)))
	return results
}

func (c *CLI) writeReport(path string, format report.Format, results []enrich.Result) error {
	if path == "" {
		return report.Render(c.stdout, format, results)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	if err := report.Render(f, format, results); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printSuccess(c.stderr, "Wrote %s report", format)
	printFile(c.stderr, path)
	return nil
}

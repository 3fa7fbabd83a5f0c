package cli

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/errors"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations/crates"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations/scorecard"
)

const defaultEnvFile = ".env"

// Environment variables that supply configuration defaults.
const (
	envRegistryURL  = "CARGO_SCORECARD_REGISTRY_URL"
	envScorecardURL = "CARGO_SCORECARD_API_URL"
	envTimeout      = "CARGO_SCORECARD_TIMEOUT"
)

const (
	flagRegistryURL  = "registry-url"
	flagScorecardURL = "scorecard-url"
	flagTimeout      = "timeout"
)

// config is the resolved upstream configuration of a run.
// Precedence: flag, then environment (including the dotenv file), then default.
type config struct {
	RegistryURL  string
	ScorecardURL string
	Timeout      time.Duration
}

func defaultConfig() config {
	return config{
		RegistryURL:  crates.DefaultBaseURL,
		ScorecardURL: scorecard.DefaultBaseURL,
		Timeout:      integrations.DefaultTimeout,
	}
}

// loadEnvFile exports the variables of a dotenv file into the process
// environment. Variables already set are left alone; a missing file is not
// an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "load %s", path)
	}
	return nil
}

// configFromEnv overlays environment values on the defaults.
func configFromEnv(getenv func(string) string) (config, error) {
	cfg := defaultConfig()
	if v := strings.TrimSpace(getenv(envRegistryURL)); v != "" {
		cfg.RegistryURL = v
	}
	if v := strings.TrimSpace(getenv(envScorecardURL)); v != "" {
		cfg.ScorecardURL = v
	}
	if v := strings.TrimSpace(getenv(envTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s", envTimeout)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

func (c config) validate() error {
	if err := errors.ValidateURL(c.RegistryURL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "registry URL")
	}
	if err := errors.ValidateURL(c.ScorecardURL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "scorecard URL")
	}
	if c.Timeout <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// withoutTrailingSlash keeps joined request paths free of "//".
func withoutTrailingSlash(u string) string {
	return strings.TrimRight(u, "/")
}

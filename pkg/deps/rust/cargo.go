package rust

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/deps"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/errors"
)

// runFunc executes a command and returns its stdout.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// CargoTree lists dependencies by running `cargo tree --prefix none` and
// parsing its output with [deps.ParseList].
type CargoTree struct {
	// ManifestPath is passed as --manifest-path when non-empty.
	ManifestPath string

	run runFunc
}

// NewCargoTree returns a CargoTree lister for the project whose Cargo.toml
// is at manifestPath, or for the current directory if manifestPath is empty.
func NewCargoTree(manifestPath string) *CargoTree {
	return &CargoTree{ManifestPath: manifestPath, run: runCommand}
}

func (c *CargoTree) Type() string { return "cargo-tree" }

// List runs cargo and returns the sorted, deduplicated dependency batch.
// A missing cargo binary or a non-zero exit fails with [errors.ErrCodeLister].
func (c *CargoTree) List(ctx context.Context) ([]deps.Dependency, error) {
	args := []string{"tree", "--prefix", "none"}
	if c.ManifestPath != "" {
		args = append(args, "--manifest-path", c.ManifestPath)
	}

	run := c.run
	if run == nil {
		run = runCommand
	}
	out, err := run(ctx, "cargo", args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLister, err, "cargo %s", strings.Join(args, " "))
	}

	list, err := deps.ParseList(bytes.NewReader(out))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLister, err, "parse cargo tree output")
	}
	return list, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}

var _ deps.Lister = (*CargoTree)(nil)

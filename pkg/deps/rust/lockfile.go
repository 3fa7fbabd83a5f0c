package rust

import (
	"context"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/deps"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/errors"
)

// Lockfile lists dependencies from the [[package]] entries of a Cargo.lock.
//
// Packages without a source are members of the local workspace and are
// skipped, which matches what `cargo tree --prefix none` leaves after
// dropping path-annotated lines.
type Lockfile struct {
	Path string
}

func (l *Lockfile) Type() string { return "Cargo.lock" }

// Supports reports whether name looks like a Cargo lockfile.
func (l *Lockfile) Supports(name string) bool { return strings.EqualFold(name, "cargo.lock") }

// List parses the lockfile and returns the sorted, deduplicated dependency batch.
func (l *Lockfile) List(_ context.Context) ([]deps.Dependency, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLister, err, "read %s", l.Path)
	}
	list, err := ParseLockfile(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLister, err, "parse %s", l.Path)
	}
	return list, nil
}

// ParseLockfile extracts registry and git packages from Cargo.lock content.
func ParseLockfile(data []byte) ([]deps.Dependency, error) {
	var lock cargoLock
	if err := toml.Unmarshal(data, &lock); err != nil {
		return nil, err
	}

	var out []deps.Dependency
	for _, p := range lock.Packages {
		if p.Source == "" || p.Name == "" {
			continue
		}
		out = append(out, deps.Dependency{Name: p.Name, Version: p.Version})
	}
	return deps.SortUnique(out), nil
}

type cargoLock struct {
	Version  int `toml:"version"`
	Packages []struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
		Source  string `toml:"source"`
	} `toml:"package"`
}

var _ deps.Lister = (*Lockfile)(nil)

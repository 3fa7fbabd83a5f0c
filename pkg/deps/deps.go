package deps

import (
	"bufio"
	"context"
	"io"
	"slices"
	"strings"
)

// Dependency identifies one entry of a project's dependency graph as
// reported by the build tool. It is a value type and never mutated after
// construction.
type Dependency struct {
	Name    string `json:"name"`    // Crate name (e.g., "serde")
	Version string `json:"version"` // Version as reported by the lister (e.g., "v1.0.193")
}

// Lister produces the dependency batch of a project.
type Lister interface {
	// List returns the project's dependencies, sorted and without
	// duplicate entries.
	List(ctx context.Context) ([]Dependency, error)
	// Type returns the lister identifier (e.g., "cargo-tree", "Cargo.lock").
	Type() string
}

// ParseList reads whitespace-separated "name version" lines from r.
//
// Lines are trimmed, sorted and deduplicated before they are split, so the
// result is in byte order with one entry per distinct line. Lines that do
// not split into exactly two fields (blank lines, "serde v1.0.0 (*)",
// "my-app v0.1.0 (/src/my-app)") are discarded.
func ParseList(r io.Reader) ([]Dependency, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	slices.Sort(lines)
	lines = slices.Compact(lines)

	out := make([]Dependency, 0, len(lines))
	for _, line := range lines {
		parts := strings.Fields(line)
		if len(parts) != 2 {
			continue
		}
		out = append(out, Dependency{Name: parts[0], Version: parts[1]})
	}
	return out, nil
}

// SortUnique sorts deps by name, then version, and removes exact
// duplicates in place. The returned slice shares deps' backing array.
func SortUnique(deps []Dependency) []Dependency {
	slices.SortFunc(deps, func(a, b Dependency) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Version, b.Version)
	})
	return slices.Compact(deps)
}

package deps

import (
	"context"
	"io"
	"os"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/errors"
)

// TextList lists dependencies from pre-listed "name version" lines, such as
// saved `cargo tree --prefix none` output. A Path of "-" reads Stdin.
type TextList struct {
	Path  string
	Stdin io.Reader
}

func (t *TextList) Type() string { return "text" }

// List reads and parses the input with [ParseList].
func (t *TextList) List(_ context.Context) ([]Dependency, error) {
	var r io.Reader
	if t.Path == "-" {
		if t.Stdin == nil {
			return nil, errors.New(errors.ErrCodeLister, "no standard input to read dependencies from")
		}
		r = t.Stdin
	} else {
		f, err := os.Open(t.Path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeLister, err, "open %s", t.Path)
		}
		defer f.Close()
		r = f
	}

	list, err := ParseList(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLister, err, "read %s", t.Path)
	}
	return list, nil
}

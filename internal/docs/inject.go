package docs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// ErrEmptyPlaceholder is returned when there is no token to look for.
var ErrEmptyPlaceholder = errors.New("placeholder token is empty")

// Result describes one injection run.
type Result struct {
	Path  string
	Value string
	// Replaced is false when the template did not contain the token. The file
	// is rewritten unchanged in that case.
	Replaced bool
}

// Inject replaces the first occurrence of placeholder in the template at path
// with value and writes the whole document back in place. Later occurrences
// are left untouched. Read and write failures are returned as is; there is no
// fallback.
func Inject(fsys afero.Fs, path, placeholder, value string) (Result, error) {
	res := Result{Path: path, Value: value}
	if placeholder == "" {
		return res, ErrEmptyPlaceholder
	}

	info, err := fsys.Stat(path)
	if err != nil {
		return res, fmt.Errorf("reading template: %w", err)
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return res, fmt.Errorf("reading template: %w", err)
	}

	content := string(data)
	res.Replaced = strings.Contains(content, placeholder)
	content = strings.Replace(content, placeholder, value, 1)

	if err := afero.WriteFile(fsys, path, []byte(content), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("writing template: %w", err)
	}
	return res, nil
}

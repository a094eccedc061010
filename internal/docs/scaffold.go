package docs

import (
	"fmt"

	"github.com/spf13/afero"
)

// Scaffold writes the default template to path unless a file already exists
// there. With force it overwrites. It reports whether anything was written.
func Scaffold(fsys afero.Fs, path string, template []byte, force bool) (bool, error) {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return false, fmt.Errorf("checking template: %w", err)
	}
	if exists && !force {
		return false, nil
	}
	if err := afero.WriteFile(fsys, path, template, 0644); err != nil {
		return false, fmt.Errorf("writing template: %w", err)
	}
	return true, nil
}

// Package docs holds the two deployment steps of the static API docs site:
// detecting a pre-generated OpenAPI document and injecting the API base URL
// into the HTML page that renders it.
package docs

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Mode is the documentation mode a deployment ends up in.
type Mode int

const (
	// ModeMissing means no OpenAPI document was found.
	ModeMissing Mode = iota
	// ModeStatic means the pre-generated OpenAPI document is served as is.
	ModeStatic
)

func (m Mode) String() string {
	switch m {
	case ModeStatic:
		return "static"
	default:
		return "missing"
	}
}

// GenerateScript is the helper that produces the OpenAPI document.
const GenerateScript = "generate-openapi.sh"

// Check reports whether the OpenAPI document at specPath exists and logs which
// documentation mode the deployment will use. A missing document is expected;
// Check never fails and never touches the filesystem beyond a stat.
func Check(fsys afero.Fs, specPath string) Mode {
	name := filepath.Base(specPath)

	info, err := fsys.Stat(specPath)
	switch {
	case err == nil && !info.IsDir():
		log.Info().Str("path", specPath).Msgf("OpenAPI JSON file found: %s", name)
		log.Info().Msg("deploying in static documentation mode")
		return ModeStatic
	case err == nil:
		log.Warn().Str("path", specPath).Msg("OpenAPI path is a directory")
	case !errors.Is(err, fs.ErrNotExist):
		log.Warn().Err(err).Str("path", specPath).Msg("cannot stat OpenAPI JSON file")
	}

	log.Warn().Str("path", specPath).Msg("OpenAPI JSON file not found")
	log.Info().Msgf("static documentation requires %s", name)
	log.Info().Msgf("run %s to generate it", GenerateScript)
	return ModeMissing
}

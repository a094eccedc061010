package docs

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/afero"
)

// Summary is what the build log shows about a static OpenAPI document.
type Summary struct {
	OpenAPI string
	Title   string
	Version string
	Paths   int
}

// Inspect parses and validates the OpenAPI document at specPath.
func Inspect(ctx context.Context, fsys afero.Fs, specPath string) (Summary, error) {
	data, err := afero.ReadFile(fsys, specPath)
	if err != nil {
		return Summary{}, fmt.Errorf("reading OpenAPI document: %w", err)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return Summary{}, fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	sum := Summary{OpenAPI: doc.OpenAPI}
	if doc.Info != nil {
		sum.Title = doc.Info.Title
		sum.Version = doc.Info.Version
	}
	if doc.Paths != nil {
		sum.Paths = doc.Paths.Len()
	}

	if err := doc.Validate(ctx); err != nil {
		return sum, fmt.Errorf("validating OpenAPI document: %w", err)
	}
	return sum, nil
}

package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_StaticMode(t *testing.T) {
	buf := captureLogs(t)
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/site/openapi.json", []byte(`{}`), 0644))

	mode := Check(fsys, "/site/openapi.json")

	assert.Equal(t, ModeStatic, mode)
	assert.Contains(t, buf.String(), "OpenAPI JSON file found: openapi.json")
	assert.Contains(t, buf.String(), "static documentation mode")
	assert.NotContains(t, buf.String(), GenerateScript)
}

func TestCheck_MissingMode(t *testing.T) {
	buf := captureLogs(t)
	fsys := afero.NewMemMapFs()

	mode := Check(fsys, "/site/openapi.json")

	assert.Equal(t, ModeMissing, mode)
	assert.Contains(t, buf.String(), "OpenAPI JSON file not found")
	assert.Contains(t, buf.String(), "static documentation requires openapi.json")
	assert.Contains(t, buf.String(), GenerateScript)
	assert.NotContains(t, buf.String(), "static documentation mode")
}

func TestCheck_DirectoryIsMissing(t *testing.T) {
	buf := captureLogs(t)
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/site/openapi.json", 0755))

	assert.Equal(t, ModeMissing, Check(fsys, "/site/openapi.json"))
	assert.Contains(t, buf.String(), "is a directory")
}

func TestCheck_DoesNotMutate(t *testing.T) {
	captureLogs(t)
	dir := t.TempDir()
	specPath := filepath.Join(dir, "openapi.json")
	if err := os.WriteFile(specPath, []byte(`{"openapi":"3.0.0"}`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	Check(afero.NewOsFs(), specPath)
	Check(afero.NewOsFs(), filepath.Join(dir, "other.json"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(specPath)
	require.NoError(t, err)
	assert.Equal(t, `{"openapi":"3.0.0"}`, string(data))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "static", ModeStatic.String())
	assert.Equal(t, "missing", ModeMissing.String())
}

package docs

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// captureLogs swaps the global logger for one writing JSON lines to a buffer.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	oldLogger := log.Logger
	t.Cleanup(func() { log.Logger = oldLogger })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	return &buf
}

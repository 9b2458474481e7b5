package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("booking admitted id=%s", "abc")
	log.Debug("hidden at info level")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booking admitted id=abc")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNew_CreatesLogDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "app.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("started")
	require.NoError(t, log.Close())

	assert.FileExists(t, path)
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/hop/internal/errors"
	"github.com/conneroisu/hop/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LevelError,
		Format: "text",
		Output: os.Stderr,
	})
}

func TestDiscover_ExplicitPath(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), Filename)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		found, err := Discover(path, testLogger())
		require.NoError(t, err)
		assert.Equal(t, path, found)
	})

	t.Run("missing file is an error, no fallback", func(t *testing.T) {
		_, err := Discover(filepath.Join(t.TempDir(), "absent.yaml"), testLogger())
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeIO))
	})
}

func TestCandidatePaths(t *testing.T) {
	paths := candidatePaths()
	require.NotEmpty(t, paths)
	assert.Equal(t, filepath.Join("/etc", Filename), paths[0])
	for _, p := range paths {
		assert.Equal(t, Filename, filepath.Base(p))
	}
}

func TestDefaultConfigEmbedded(t *testing.T) {
	assert.NotEmpty(t, defaultConfig)
}

package config

import (
	_ "embed"
	"context"
	"os"
	"path/filepath"

	"github.com/conneroisu/hop/internal/errors"
	"github.com/conneroisu/hop/internal/logging"
)

// Filename is the config file name looked for in each candidate location.
const Filename = "hop.yaml"

//go:embed hop.default.yaml
var defaultConfig []byte

// candidatePaths lists config locations in priority order: the system-wide
// config directory, the user config directory, then the user's home.
func candidatePaths() []string {
	paths := []string{filepath.Join("/etc", Filename)}

	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, Filename))
	}
	if dir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(dir, Filename))
	}

	return paths
}

// Discover returns the config path to use. An explicit path is trusted and
// only checked for readability. Otherwise the candidate locations are
// checked in priority order; if none holds a readable config yet, the
// default config is written to the first writable location. When no
// candidate is readable or writable the service cannot start.
func Discover(explicit string, logger logging.Logger) (string, error) {
	ctx := context.Background()

	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.NewIOError("reading config", err).WithPath(explicit)
		}
		return explicit, nil
	}

	candidates := candidatePaths()
	logger.Debug(ctx, "checking config locations", "candidates", candidates)

	for _, path := range candidates {
		file, err := os.Open(path)
		if err != nil {
			logger.Debug(ctx, "config location not readable", "path", path, "reason", err.Error())
			continue
		}
		file.Close()
		logger.Debug(ctx, "found config", "path", path)
		return path, nil
	}

	// No config exists yet. Seed the first writable location with the
	// default config.
	for _, path := range candidates {
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			logger.Debug(ctx, "config location not writable", "path", path, "reason", err.Error())
			continue
		}
		_, writeErr := file.Write(defaultConfig)
		closeErr := file.Close()
		if writeErr != nil {
			return "", errors.NewIOError("writing default config", writeErr).WithPath(path)
		}
		if closeErr != nil {
			return "", errors.NewIOError("writing default config", closeErr).WithPath(path)
		}
		logger.Info(ctx, "created new config file", "path", path)
		return path, nil
	}

	return "", errors.NewNoConfigPathError()
}

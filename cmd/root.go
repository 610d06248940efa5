// Package cmd provides the command-line interface for hop.
//
// Flags can also be set through environment variables using the HOP_ prefix
// with dashes replaced by underscores (HOP_CONFIG, HOP_LOG_LEVEL,
// HOP_LARGE_CONFIG).
package cmd

import (
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/hop/internal/config"
	"github.com/conneroisu/hop/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "hop",
	Short: "A keyword-based redirect service",
	Long: `hop resolves free-text queries against a configured route table:
the first word selects a route by keyword, the rest become its arguments.
A route either redirects to an external URL template or runs a local
program whose output decides the response. The route configuration is
reloaded live whenever the config file changes.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default: /etc/hop.yaml, then user config dir, then home)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().Bool("large-config", false, "allow config files larger than 100MB")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("large-config", rootCmd.PersistentFlags().Lookup("large-config"))
}

func initViper() {
	viper.SetEnvPrefix("HOP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newLogger builds the process logger from the persistent flags.
func newLogger() logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(viper.GetString("log-level")),
		Format: viper.GetString("log-format"),
		Output: os.Stderr,
	})
}

// maxConfigSize returns the effective config size limit.
func maxConfigSize() int64 {
	if viper.GetBool("large-config") {
		return math.MaxInt64
	}
	return config.DefaultMaxSize
}

// loadConfig discovers and loads the route configuration.
func loadConfig(logger logging.Logger) (*config.Config, string, error) {
	path, err := config.Discover(viper.GetString("config"), logger)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(path, maxConfigSize())
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

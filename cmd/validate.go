package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the route configuration and exit",
	Long: `Load the route configuration, run all validation that serve would
run at startup, and exit. Exits non-zero if the config cannot be used.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, path, err := loadConfig(logger)
	if err != nil {
		return err
	}

	routeCount := 0
	for _, group := range cfg.Groups {
		routeCount += len(group.Routes)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d groups, %d routes)\n",
		path, len(cfg.Groups), routeCount)
	return nil
}

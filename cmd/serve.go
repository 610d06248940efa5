package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conneroisu/hop/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the redirect service",
	Long: `Start the redirect service on the configured bind address.

The config file is watched for changes; edits take effect without a
restart. A config that fails to load at startup is fatal, while a config
that fails to reload later is logged and ignored, keeping the active
route table serving.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, path, err := loadConfig(logger)
	if err != nil {
		logger.Error(ctx, err, "cannot load configuration")
		return err
	}

	srv, err := server.New(server.Options{
		Config:        cfg,
		ConfigPath:    path,
		MaxConfigSize: maxConfigSize(),
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

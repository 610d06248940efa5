// Package server provides the HTTP transport for hop: query resolution,
// the route listing, the landing page, and the OpenSearch descriptor.
//
// Each request reads the current snapshot once and works against that value
// for its whole lifetime, so reloads never disturb in-flight requests. Route
// programs run synchronously on the request's goroutine; net/http gives
// every request its own goroutine, which is the blocking-tolerant tier the
// executor requires.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/conneroisu/hop/internal/config"
	"github.com/conneroisu/hop/internal/executor"
	"github.com/conneroisu/hop/internal/logging"
	"github.com/conneroisu/hop/internal/snapshot"
	"github.com/conneroisu/hop/internal/watcher"
)

const reloadDebounce = 500 * time.Millisecond

// Options configures a Server.
type Options struct {
	Config        *config.Config
	ConfigPath    string
	MaxConfigSize int64
	Logger        logging.Logger
}

// Server serves hop's HTTP interface and owns the reload path.
type Server struct {
	bindAddress   string
	configPath    string
	maxConfigSize int64
	store         *snapshot.Store
	executor      *executor.Executor
	watcher       *watcher.ConfigWatcher
	httpServer    *http.Server
	templates     *templateSet
	logger        logging.Logger
}

// New creates a server from an initial, already-validated config.
func New(opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	s := &Server{
		bindAddress:   cfg.BindAddress,
		configPath:    opts.ConfigPath,
		maxConfigSize: opts.MaxConfigSize,
		store:         snapshot.NewStore(snapshot.New(cfg.PublicAddress, cfg.DefaultRoute, cfg.Groups)),
		executor:      executor.New(logger),
		templates:     templates,
		logger:        logger.WithComponent("server"),
	}

	configWatcher, err := watcher.New(opts.ConfigPath, reloadDebounce, s.Reload, logger)
	if err != nil {
		return nil, err
	}
	s.watcher = configWatcher

	return s, nil
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /ls", s.handleList)
	mux.HandleFunc("GET /hop", s.handleHop)
	mux.HandleFunc("GET /hopsearch.xml", s.handleOpenSearch)
	return mux
}

// Start runs the server until ctx is canceled. The config watch is
// best-effort: if it cannot be established the server still serves with the
// startup config, it just won't pick up changes.
func (s *Server) Start(ctx context.Context) error {
	if err := s.watcher.Start(ctx); err != nil {
		s.logger.Warn(ctx, err, "cannot watch config file, changes will not be seen",
			"path", s.configPath)
	}
	defer s.watcher.Stop()

	s.httpServer = &http.Server{
		Addr:              s.bindAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "listening", "address", s.bindAddress)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Reload re-reads the config file and publishes a new snapshot. Any failure
// leaves the previously published snapshot serving; a reload can never tear
// down the active configuration.
func (s *Server) Reload() {
	ctx := context.Background()

	cfg, err := config.Load(s.configPath, s.maxConfigSize)
	if err != nil {
		s.logger.Warn(ctx, err, "config reload failed, keeping active configuration",
			"path", s.configPath)
		return
	}

	s.store.Publish(snapshot.New(cfg.PublicAddress, cfg.DefaultRoute, cfg.Groups))
	s.logger.Info(ctx, "config reloaded",
		"path", s.configPath,
		"groups", len(cfg.Groups))
}

// Store exposes the snapshot store, mainly for tests.
func (s *Server) Store() *snapshot.Store {
	return s.store
}

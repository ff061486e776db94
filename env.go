package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/llehouerou/shutter/internal/config"
	"github.com/llehouerou/shutter/internal/favorites"
	"github.com/llehouerou/shutter/internal/feed"
	"github.com/llehouerou/shutter/internal/flickr"
	"github.com/llehouerou/shutter/internal/logging"
	"github.com/llehouerou/shutter/internal/state"
)

// env holds everything a command needs. Close releases it.
type env struct {
	cfg       *config.Config
	logger    *slog.Logger
	state     *state.Manager
	favorites *favorites.Store
	flickr    *flickr.Client

	closers []io.Closer
}

func openEnv(ctx context.Context, configPath string) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}

	logPath, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	logger, logFile, err := logging.Open(logPath, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	e.logger = logger
	e.closers = append(e.closers, logFile)

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		e.Close()
		return nil, err
	}
	mgr, err := state.Open(ctx, dbPath)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.state = mgr
	e.favorites = favorites.New(mgr.DB())

	fc := cfg.GetFlickrConfig()
	if !cfg.HasFlickrConfig() {
		logger.Warn("flickr_api_key_missing")
	}
	e.flickr = flickr.NewClient(fc.Endpoint, fc.APIKey, fc.PerPage)

	logger.Info("started", "database", dbPath, "endpoint", fc.Endpoint)
	return e, nil
}

func (e *env) newFeed() *feed.State {
	return feed.New(e.flickr, e.favorites, e.logger)
}

// Close closes the database before the log file.
func (e *env) Close() error {
	var errs []error
	if e.state != nil {
		errs = append(errs, e.state.Close())
	}
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}
	return errors.Join(errs...)
}

package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/appengine-ltd/clickquest/internal/assets"
	"github.com/appengine-ltd/clickquest/internal/config"
	"github.com/appengine-ltd/clickquest/internal/game"
	"github.com/appengine-ltd/clickquest/internal/observability"
	"github.com/appengine-ltd/clickquest/internal/store"
)

// version is injected at build time.
var version = "dev"

type services struct {
	cfg     config.Config
	logger  *zap.Logger
	store   store.Store
	session *game.Session
	// terminalLogger stays silent unless logging.file is set.
	terminalLogger *zap.Logger
}

// setup loads settings and wires the session. Terminal mode logs through
// terminalLogger from the start; the window switches to it on hand-off.
func setup(ctx context.Context, configPath string, terminal bool) (*services, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	terminalLogger, err := observability.NewTerminalLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger := terminalLogger
	if !terminal {
		if logger, err = observability.NewLogger(cfg.Logging); err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	saves, err := store.Open(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	session := game.NewSession(game.WorldFile{Path: cfg.World.Path}, saves, assets.Default(), logger)
	logger.Info("clickquest starting",
		zap.String("version", version),
		zap.String("world", cfg.World.Path),
		zap.String("save_backend", cfg.Save.Backend))

	return &services{cfg: cfg, logger: logger, store: saves, session: session, terminalLogger: terminalLogger}, nil
}

func (r *services) Close() {
	if err := r.store.Close(); err != nil {
		r.logger.Warn("failed to close save store", zap.Error(err))
	}
	_ = r.logger.Sync()
	_ = r.terminalLogger.Sync()
}

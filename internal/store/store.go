// Package store keeps save files somewhere: on disk, in Redis, or in memory.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/appengine-ltd/clickquest/internal/config"
	"github.com/appengine-ltd/clickquest/internal/game"
)

// Store is a game.SaveStore that may hold a connection.
type Store interface {
	game.SaveStore
	Close() error
}

var (
	_ Store = (*File)(nil)
	_ Store = (*Redis)(nil)
	_ Store = (*Memory)(nil)
)

// Open selects the backend named by cfg.Save.Backend. The redis backend is
// pinged before it is returned.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch cfg.Save.Backend {
	case "file":
		return NewFile(cfg.Save.Path), nil
	case "memory":
		return NewMemory(), nil
	case "redis":
		r := NewRedis(cfg.Redis, logger)
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			return nil, err
		}
		logger.Info("redis save store ready", zap.String("addr", cfg.Redis.Addr), zap.String("key", r.Key()))
		return r, nil
	default:
		return nil, fmt.Errorf("unknown save backend %q", cfg.Save.Backend)
	}
}

func encode(save *game.SaveFile) ([]byte, error) {
	data, err := json.MarshalIndent(save, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding save: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*game.SaveFile, error) {
	var save game.SaveFile
	if err := json.Unmarshal(data, &save); err != nil {
		return nil, fmt.Errorf("decoding save: %w", err)
	}
	if save.FormatVersion > game.SaveFormatVersion {
		return nil, fmt.Errorf("save format %d is newer than supported %d", save.FormatVersion, game.SaveFormatVersion)
	}
	return &save, nil
}

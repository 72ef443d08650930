package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/appengine-ltd/clickquest/internal/config"
	"github.com/appengine-ltd/clickquest/internal/game"
)

const keyPrefix = "clickquest:save:"

// Redis keeps one save per slot under clickquest:save:<slot>. Saves never
// expire.
type Redis struct {
	client *redis.Client
	slot   string
	logger *zap.Logger
}

func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	return NewRedisClient(redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), cfg.Slot, logger)
}

// NewRedisClient wraps an existing client.
func NewRedisClient(client *redis.Client, slot string, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	if slot == "" {
		slot = "default"
	}
	return &Redis{client: client, slot: slot, logger: logger}
}

func (r *Redis) Key() string {
	return keyPrefix + r.slot
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *Redis) Save(ctx context.Context, save *game.SaveFile) error {
	data, err := encode(save)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.Key(), data, 0).Err(); err != nil {
		r.logger.Error("failed to write save", zap.String("key", r.Key()), zap.Error(err))
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

func (r *Redis) Load(ctx context.Context) (*game.SaveFile, error) {
	data, err := r.client.Get(ctx, r.Key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, game.ErrNoSave
	}
	if err != nil {
		r.logger.Error("failed to read save", zap.String("key", r.Key()), zap.Error(err))
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return decode(data)
}

// Delete removes the slot's save. Deleting a missing save is not an error.
func (r *Redis) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.Key()).Err(); err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

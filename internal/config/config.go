// Package config loads the launcher settings: where the world and saves
// live, how to log, and how the window is set up.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultFile is looked up in the working directory when no -config path is
// given. It is optional.
const DefaultFile = "clickquest.yaml"

type WorldConfig struct {
	// Path is the world definition, JSON or YAML by extension.
	Path string `mapstructure:"path"`
}

type SaveConfig struct {
	// Backend is "file", "redis" or "memory".
	Backend string `mapstructure:"backend"`
	// Path is the save file used by the file backend.
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// Slot names the save inside Redis so several players can share one server.
	Slot string `mapstructure:"slot"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File receives the log when set. Empty means stderr for the window
	// frontend and no logging at all for the terminal one.
	File string `mapstructure:"file"`
}

type WindowConfig struct {
	Title string `mapstructure:"title"`
	FPS   int    `mapstructure:"fps"`
}

type Config struct {
	World   WorldConfig   `mapstructure:"world"`
	Save    SaveConfig    `mapstructure:"save"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Logging LoggingConfig `mapstructure:"logging"`
	Window  WindowConfig  `mapstructure:"window"`
}

// Validate checks every setting and reports all violations together.
func (c Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.World.Path) == "" {
		errs = append(errs, "world.path must not be empty")
	}
	switch c.Save.Backend {
	case "file":
		if strings.TrimSpace(c.Save.Path) == "" {
			errs = append(errs, "save.path must not be empty for the file backend")
		}
	case "redis":
		if c.Redis.Addr == "" {
			errs = append(errs, "redis.addr must not be empty for the redis backend")
		}
		if c.Redis.Slot == "" {
			errs = append(errs, "redis.slot must not be empty for the redis backend")
		}
		if c.Redis.DB < 0 {
			errs = append(errs, fmt.Sprintf("redis.db must be >= 0, got %d", c.Redis.DB))
		}
	case "memory":
	default:
		errs = append(errs, fmt.Sprintf("save.backend must be one of [file, redis, memory], got %q", c.Save.Backend))
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Window.FPS < 1 || c.Window.FPS > 240 {
		errs = append(errs, fmt.Sprintf("window.fps must be 1-240, got %d", c.Window.FPS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads settings from path, or from DefaultFile when path is empty,
// applies CLICKQUEST_* environment overrides and validates the result. A
// missing DefaultFile is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CLICKQUEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("world.path", "data/game_config.json")

	v.SetDefault("save.backend", "file")
	v.SetDefault("save.path", "savegame.json")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.slot", "default")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")

	v.SetDefault("window.title", "Point and Click Adventure")
	v.SetDefault("window.fps", 60)
}

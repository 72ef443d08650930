package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "data/game_config.json", cfg.World.Path)
	assert.Equal(t, "file", cfg.Save.Backend)
	assert.Equal(t, "savegame.json", cfg.Save.Path)
	assert.Equal(t, 60, cfg.Window.FPS)
	assert.Equal(t, "Point and Click Adventure", cfg.Window.Title)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clickquest.yaml")
	err := os.WriteFile(path, []byte(`
world:
  path: worlds/manor.yaml
save:
  backend: redis
redis:
  addr: 127.0.0.1:6380
  slot: alice
logging:
  level: debug
  format: json
window:
  fps: 30
`), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "worlds/manor.yaml", cfg.World.Path)
	assert.Equal(t, "redis", cfg.Save.Backend)
	assert.Equal(t, "127.0.0.1:6380", cfg.Redis.Addr)
	assert.Equal(t, "alice", cfg.Redis.Slot)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 30, cfg.Window.FPS)
	assert.Equal(t, "savegame.json", cfg.Save.Path, "unset keys keep their defaults")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CLICKQUEST_SAVE_BACKEND", "memory")
	t.Setenv("CLICKQUEST_WINDOW_FPS", "144")
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Save.Backend)
	assert.Equal(t, 144, cfg.Window.FPS)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadWithoutDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/clickquest.yaml")
	assert.Error(t, err)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.World.Path = " "
	cfg.Save.Backend = "s3"
	cfg.Logging.Format = "xml"
	cfg.Window.FPS = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "world.path")
	assert.Contains(t, err.Error(), "save.backend")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "window.fps")
}

func TestValidateBackendRequirements(t *testing.T) {
	cfg := Default()
	cfg.Save.Path = ""
	assert.Error(t, cfg.Validate())

	cfg.Save.Backend = "memory"
	assert.NoError(t, cfg.Validate(), "memory does not need a path")

	cfg.Save.Backend = "redis"
	cfg.Redis.Slot = ""
	assert.ErrorContains(t, cfg.Validate(), "redis.slot")
}

func TestValidateLoggingLevels(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.String().Draw(t, "level")
		cfg := Default()
		cfg.Logging.Level = level
		valid := level == "debug" || level == "info" || level == "warn" || level == "error"
		if err := cfg.Validate(); (err == nil) != valid {
			t.Fatalf("level %q: valid=%v err=%v", level, valid, err)
		}
	})
}

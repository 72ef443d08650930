package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/clickquest/internal/game"
)

const DefaultFile = "savegame.json"

// File keeps the save in a single JSON file. Writes go through a temp file
// in the same directory and a rename, so a crash never leaves half a save.
type File struct {
	Path string
}

func NewFile(path string) *File {
	if path == "" {
		path = DefaultFile
	}
	return &File{Path: path}
}

func (f *File) Save(_ context.Context, save *game.SaveFile) error {
	data, err := encode(save)
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating save dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "savegame-*.tmp")
	if err != nil {
		return fmt.Errorf("writing save: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing save: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing save: %w", err)
	}
	if err := os.Rename(tmpPath, f.Path); err != nil {
		return fmt.Errorf("writing save: %w", err)
	}

	cleanup = false
	return nil
}

func (f *File) Load(context.Context) (*game.SaveFile, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, game.ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("reading save %s: %w", f.Path, err)
	}
	return decode(data)
}

func (f *File) Close() error { return nil }

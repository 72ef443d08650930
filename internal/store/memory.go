package store

import (
	"context"
	"sync"

	"github.com/appengine-ltd/clickquest/internal/game"
)

// Memory holds the encoded save in process. Nothing survives a restart.
type Memory struct {
	mu   sync.Mutex
	data []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(_ context.Context, save *game.SaveFile) error {
	data, err := encode(save)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}

func (m *Memory) Load(context.Context) (*game.SaveFile, error) {
	m.mu.Lock()
	data := m.data
	m.mu.Unlock()
	if data == nil {
		return nil, game.ErrNoSave
	}
	return decode(data)
}

func (m *Memory) Close() error { return nil }

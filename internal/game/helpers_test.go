package game

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/appengine-ltd/clickquest/internal/assets"
)

type staticSource struct {
	cfg *WorldConfig
	err error
}

func (s *staticSource) LoadWorld() (*WorldConfig, error) {
	return s.cfg, s.err
}

// memStore round-trips through JSON so tests see exactly what a file would
// hold.
type memStore struct {
	data []byte
}

func (m *memStore) Save(_ context.Context, save *SaveFile) error {
	data, err := json.Marshal(save)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

func (m *memStore) Load(context.Context) (*SaveFile, error) {
	if m.data == nil {
		return nil, ErrNoSave
	}
	var save SaveFile
	if err := json.Unmarshal(m.data, &save); err != nil {
		return nil, err
	}
	return &save, nil
}

func kitchenConfig() *WorldConfig {
	return &WorldConfig{
		StartRoom: "kitchen",
		Rooms: map[string]RoomConfig{
			"kitchen": {
				Background: "kitchen_bg",
				Items: []ItemDef{
					{Name: "knife", X: 200, Y: 300, Image: "knife", Interactions: Interactions{"rope": {"knife": ActionCut}}},
					{Name: "rope", X: 350, Y: 250, Image: "rope"},
				},
			},
			"hallway": {
				Background: "hallway_bg",
				State:      "dark",
				Exits:      map[string]string{"door": "kitchen"},
				Items: []ItemDef{
					{Name: "door", X: 140, Y: 200, Image: "door", Interactions: Interactions{"door": {"key": ActionUnlock}}},
				},
			},
		},
	}
}

func newTestWorld(t *testing.T, cfg *WorldConfig) *World {
	t.Helper()
	w, err := NewWorld(cfg, assets.Default())
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return w
}

func newTestSession(t *testing.T, cfg *WorldConfig) (*Session, *memStore) {
	t.Helper()
	store := &memStore{}
	s := NewSession(&staticSource{cfg: cfg}, store, assets.Default(), nil)
	if err := s.NewGame(context.Background()); err != nil {
		t.Fatalf("new game: %v", err)
	}
	return s, store
}

func centre(it *Item) Point {
	return it.Bounds().Center()
}

func objectNames(items []*Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

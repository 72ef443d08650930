package game

import (
	"fmt"
	"maps"

	"github.com/google/uuid"

	"github.com/appengine-ltd/clickquest/internal/assets"
)

// World is every room plus the player. Rooms own the items lying in them;
// the player owns the inventory. An item is in exactly one of those lists.
type World struct {
	ID      uuid.UUID
	Rooms   map[string]*Room
	Player  *Player
	palette assets.Palette
	catalog map[string]ItemDef
}

// NewWorld builds a fresh world from cfg. base is the palette the config's
// own assets are merged over.
func NewWorld(cfg *WorldConfig, base assets.Palette) (*World, error) {
	palette, err := cfg.Palette(base)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(palette); err != nil {
		return nil, err
	}

	w := newWorld(uuid.New(), cfg, palette)
	for name, rc := range cfg.Rooms {
		room := w.Rooms[name]
		for _, def := range rc.Items {
			room.Append(NewItem(def))
		}
	}
	w.Player.CurrentRoom = cfg.StartRoom
	return w, nil
}

// newWorld creates the rooms of cfg without any items in them.
func newWorld(id uuid.UUID, cfg *WorldConfig, palette assets.Palette) *World {
	w := &World{
		ID:      id,
		Rooms:   make(map[string]*Room, len(cfg.Rooms)),
		Player:  &Player{},
		palette: palette,
		catalog: cfg.catalog(),
	}
	for name, rc := range cfg.Rooms {
		w.Rooms[name] = &Room{
			Name:       name,
			Background: rc.Background,
			Exits:      maps.Clone(rc.Exits),
			State:      rc.State,
		}
	}
	return w
}

func (w *World) Current() *Room {
	return w.Rooms[w.Player.CurrentRoom]
}

func (w *World) Palette() assets.Palette {
	return w.palette
}

func (w *World) Travel(room string) error {
	if _, ok := w.Rooms[room]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRoom, room)
	}
	w.Player.CurrentRoom = room
	return nil
}

// PickUp moves it from the current room into the inventory. Nothing changes
// when the item is not lying in the current room.
func (w *World) PickUp(it *Item) bool {
	if !w.Current().Remove(it) {
		return false
	}
	w.Player.Add(it)
	return true
}

// spawn creates a new item from the catalog definition for name, or from a
// stock definition when the world config never mentions it.
func (w *World) spawn(name string, x, y int) *Item {
	def, ok := w.catalog[name]
	if !ok {
		def = stockDef(name)
	}
	def.X, def.Y = x, y
	return NewItem(def)
}

func stockDef(name string) ItemDef {
	def := ItemDef{Name: name, Image: name}
	if name == keyName {
		def.Description = "A shiny key."
	}
	return def
}

package game

import (
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/appengine-ltd/clickquest/internal/assets"
)

const SaveFormatVersion = 2

// SaveFile is the on-disk save. Version 1 files (no format_version) carry
// only name, position and state per item; version 2 also stores the item
// definition so restoring does not depend on the config item order.
type SaveFile struct {
	FormatVersion int                  `json:"format_version,omitempty"`
	ID            uuid.UUID            `json:"id"`
	SavedAt       time.Time            `json:"saved_at"`
	CurrentRoom   string               `json:"current_room"`
	Inventory     []SavedItem          `json:"inventory"`
	Rooms         map[string]SavedRoom `json:"rooms"`
}

type SavedItem struct {
	Name         string       `json:"name"`
	X            int          `json:"x"`
	Y            int          `json:"y"`
	State        string       `json:"state"`
	Image        string       `json:"image,omitempty"`
	Description  string       `json:"description,omitempty"`
	Interactions Interactions `json:"interactions,omitempty"`
}

type SavedRoom struct {
	Objects []SavedItem       `json:"objects"`
	Exits   map[string]string `json:"exits"`
	State   string            `json:"state"`
}

// Snapshot captures w as a save file.
func Snapshot(w *World, now time.Time) *SaveFile {
	save := &SaveFile{
		FormatVersion: SaveFormatVersion,
		ID:            w.ID,
		SavedAt:       now.UTC(),
		CurrentRoom:   w.Player.CurrentRoom,
		Inventory:     savedItems(w.Player.Inventory),
		Rooms:         make(map[string]SavedRoom, len(w.Rooms)),
	}
	for name, room := range w.Rooms {
		exits := maps.Clone(room.Exits)
		if exits == nil {
			exits = map[string]string{}
		}
		save.Rooms[name] = SavedRoom{
			Objects: savedItems(room.Objects),
			Exits:   exits,
			State:   room.State,
		}
	}
	return save
}

func savedItems(items []*Item) []SavedItem {
	out := make([]SavedItem, 0, len(items))
	for _, it := range items {
		out = append(out, SavedItem{
			Name:         it.Name,
			X:            it.X,
			Y:            it.Y,
			State:        it.State,
			Image:        it.Image,
			Description:  it.Description,
			Interactions: it.Interactions.clone(),
		})
	}
	return out
}

// Restore rebuilds a world from save, taking backgrounds and anything the
// save does not carry from cfg. The returned world is complete or nil.
func Restore(save *SaveFile, cfg *WorldConfig, base assets.Palette) (*World, error) {
	palette, err := cfg.Palette(base)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(palette); err != nil {
		return nil, err
	}

	id := save.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	w := newWorld(id, cfg, palette)
	r := restorer{cfg: cfg, palette: palette, catalog: w.catalog}

	for name, sr := range save.Rooms {
		room, ok := w.Rooms[name]
		if !ok {
			return nil, fmt.Errorf("save room %q: %w", name, ErrUnknownRoom)
		}
		for i, si := range sr.Objects {
			it, err := r.item(name, i, si)
			if err != nil {
				return nil, err
			}
			room.Append(it)
		}
		room.Exits = maps.Clone(sr.Exits)
		room.State = sr.State
	}

	// Rooms added to the config after the save was written start fresh.
	for name, rc := range cfg.Rooms {
		if _, saved := save.Rooms[name]; saved {
			continue
		}
		for _, def := range rc.Items {
			w.Rooms[name].Append(NewItem(def))
		}
	}

	for name, room := range w.Rooms {
		for door, dest := range room.Exits {
			if _, ok := w.Rooms[dest]; !ok {
				return nil, fmt.Errorf("save room %q exit %q: %w: %q", name, door, ErrUnknownRoom, dest)
			}
		}
	}

	for i, si := range save.Inventory {
		it, err := r.item("", i, si)
		if err != nil {
			return nil, err
		}
		w.Player.Add(it)
	}

	if err := w.Travel(save.CurrentRoom); err != nil {
		return nil, fmt.Errorf("save current_room: %w", err)
	}
	return w, nil
}

type restorer struct {
	cfg     *WorldConfig
	palette assets.Palette
	catalog map[string]ItemDef
}

func (r restorer) item(room string, index int, si SavedItem) (*Item, error) {
	def := ItemDef{
		Name:         si.Name,
		X:            si.X,
		Y:            si.Y,
		Image:        si.Image,
		Description:  si.Description,
		Interactions: si.Interactions,
	}
	if si.Image == "" {
		base := r.definition(room, index, si.Name)
		def.Image = base.Image
		def.Description = base.Description
		def.Interactions = base.Interactions
	}
	if !r.palette.Has(def.Image) {
		return nil, fmt.Errorf("save item %q: %w: %q", si.Name, ErrUnknownAsset, def.Image)
	}
	it := NewItem(def)
	it.State = si.State
	return it, nil
}

// definition finds the config entry for an item from an older save: the
// entry at the same index in the same room when its name agrees, then the
// first entry with that name in the same room, then the catalog. Items the
// config never mentions get the stock definition a spawned item would.
func (r restorer) definition(room string, index int, name string) ItemDef {
	if rc, ok := r.cfg.Rooms[room]; ok {
		if index < len(rc.Items) && rc.Items[index].Name == name {
			return rc.Items[index]
		}
		for _, def := range rc.Items {
			if def.Name == name {
				return def
			}
		}
	}
	if def, ok := r.catalog[name]; ok {
		return def
	}
	return stockDef(name)
}

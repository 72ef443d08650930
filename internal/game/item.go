package game

import (
	"fmt"
	"maps"
)

const (
	ItemWidth  = 32
	ItemHeight = 32
	DoorHeight = 64

	// KeyDrop is how far below a cut item the revealed key lands.
	KeyDrop = 40

	doorName = "door"
	keyName  = "key"
)

// Action is the tag stored in an interaction table.
type Action string

const (
	ActionCut    Action = "cut"
	ActionUnlock Action = "unlock"
)

// ActionKind is the closed set of effects an Action can have.
type ActionKind int

const (
	KindCustom ActionKind = iota
	KindCut
	KindUnlock
)

func (a Action) Kind() ActionKind {
	switch a {
	case ActionCut:
		return KindCut
	case ActionUnlock:
		return KindUnlock
	default:
		return KindCustom
	}
}

// Interactions maps target item name → used item name → action.
type Interactions map[string]map[string]Action

func (in Interactions) Lookup(target, tool string) (Action, bool) {
	a, ok := in[target][tool]
	return a, ok
}

func (in Interactions) clone() Interactions {
	if in == nil {
		return nil
	}
	out := make(Interactions, len(in))
	for k, v := range in {
		out[k] = maps.Clone(v)
	}
	return out
}

// Item is a clickable world object. Names are not unique; identity is the
// pointer.
type Item struct {
	Name         string
	X            int
	Y            int
	Image        string
	Description  string
	Interactions Interactions
	State        string
}

func NewItem(def ItemDef) *Item {
	desc := def.Description
	if desc == "" {
		desc = fmt.Sprintf("A %s.", def.Name)
	}
	return &Item{
		Name:         def.Name,
		X:            def.X,
		Y:            def.Y,
		Image:        def.Image,
		Description:  desc,
		Interactions: def.Interactions.clone(),
	}
}

// Size is fixed by name: doors are twice as tall as everything else.
func (it *Item) Size() (int, int) {
	if it.Name == doorName {
		return ItemWidth, DoorHeight
	}
	return ItemWidth, ItemHeight
}

func (it *Item) Bounds() Rect {
	w, h := it.Size()
	return Rect{X: it.X, Y: it.Y, W: w, H: h}
}

func (it *Item) Tooltip() string {
	return it.Name + ": " + it.Description
}

// Outcome describes what Use did.
type Outcome struct {
	Matched bool
	Action  Action
	Message string
	Spawned *Item
}

// Use applies tool to it, the clicked target. The rule is looked up as
// interactions[target][tool], first in the target's own table and then in
// the tool's. A miss changes nothing.
func (it *Item) Use(tool *Item, w *World) Outcome {
	action, ok := it.resolve(tool)
	if !ok {
		return Outcome{Message: "Nothing happens."}
	}

	out := Outcome{Matched: true, Action: action}
	switch action.Kind() {
	case KindCut:
		out.Message, out.Spawned = it.cut(w)
	case KindUnlock:
		out.Message = it.unlock(w)
	case KindCustom:
		it.State = string(action)
		out.Message = fmt.Sprintf("Used %s on %s: %s", tool.Name, it.Name, action)
	}
	return out
}

func (it *Item) resolve(tool *Item) (Action, bool) {
	if tool == nil {
		return "", false
	}
	if a, ok := it.Interactions.Lookup(it.Name, tool.Name); ok {
		return a, true
	}
	return tool.Interactions.Lookup(it.Name, tool.Name)
}

func (it *Item) cut(w *World) (string, *Item) {
	it.State = "cut"
	room := w.Current()
	if !room.Remove(it) {
		w.Player.Remove(it)
	}
	key := w.spawn(keyName, it.X, it.Y+KeyDrop)
	room.Append(key)
	return fmt.Sprintf("The %s falls away, revealing a key!", it.Name), key
}

// unlock leaves the exit mapping alone; only the blocking object goes away.
func (it *Item) unlock(w *World) string {
	it.State = "unlocked"
	room := w.Current()
	if _, ok := room.Exits[it.Name]; ok {
		room.Remove(it)
		return fmt.Sprintf("The %s is unlocked and opens!", it.Name)
	}
	return fmt.Sprintf("The %s unlocks, but it doesn't lead anywhere yet.", it.Name)
}

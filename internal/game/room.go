package game

import "slices"

// Room owns the items lying in it. Objects are kept in draw order: later
// entries are drawn over earlier ones.
type Room struct {
	Name       string
	Background string
	Objects    []*Item
	Exits      map[string]string
	State      string
}

func (r *Room) Contains(it *Item) bool {
	return slices.Contains(r.Objects, it)
}

func (r *Room) Remove(it *Item) bool {
	i := slices.Index(r.Objects, it)
	if i < 0 {
		return false
	}
	r.Objects = slices.Delete(r.Objects, i, i+1)
	return true
}

func (r *Room) Append(it *Item) {
	r.Objects = append(r.Objects, it)
}

// Destination returns the room an object named name leads to, if any.
func (r *Room) Destination(name string) (string, bool) {
	dest, ok := r.Exits[name]
	return dest, ok
}

// ObjectAt returns the topmost object under p.
func (r *Room) ObjectAt(p Point) *Item {
	for i := len(r.Objects) - 1; i >= 0; i-- {
		if r.Objects[i].Bounds().Contains(p) {
			return r.Objects[i]
		}
	}
	return nil
}

// Find returns the topmost object called name.
func (r *Room) Find(name string) *Item {
	for i := len(r.Objects) - 1; i >= 0; i-- {
		if r.Objects[i].Name == name {
			return r.Objects[i]
		}
	}
	return nil
}

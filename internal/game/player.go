package game

import "slices"

// Player refers to its room by key so rebuilt room maps never leave it
// pointing at a stale Room.
type Player struct {
	CurrentRoom string
	Inventory   []*Item
}

func (p *Player) Holds(it *Item) bool {
	return slices.Contains(p.Inventory, it)
}

func (p *Player) Add(it *Item) {
	p.Inventory = append(p.Inventory, it)
}

func (p *Player) Remove(it *Item) bool {
	i := slices.Index(p.Inventory, it)
	if i < 0 {
		return false
	}
	p.Inventory = slices.Delete(p.Inventory, i, i+1)
	return true
}

// Find returns the first held item called name.
func (p *Player) Find(name string) (int, *Item) {
	for i, it := range p.Inventory {
		if it.Name == name {
			return i, it
		}
	}
	return -1, nil
}

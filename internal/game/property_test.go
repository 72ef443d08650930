package game

import (
	"context"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/appengine-ltd/clickquest/internal/assets"
)

func TestScrollAlwaysWithinBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewSession(&staticSource{cfg: kitchenConfig()}, &memStore{}, assets.Default(), nil)
		if err := s.NewGame(context.Background()); err != nil {
			t.Fatalf("new game: %v", err)
		}
		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for range steps {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				name := rapid.SampledFrom([]string{"knife", "rope", "key"}).Draw(t, "item")
				s.World().Current().Append(NewItem(ItemDef{Name: name, X: 300, Y: 300, Image: name}))
				s.Activate(s.World().Current().Find(name))
			case 1:
				s.Wheel(rapid.Float64Range(-5, 5).Draw(t, "dy"))
			case 2:
				inv := s.World().Player.Inventory
				if len(inv) > 0 {
					i := rapid.IntRange(0, len(inv)-1).Draw(t, "slot")
					s.SelectInventory(i)
					target := NewItem(ItemDef{Name: "rope", X: 500, Y: 100, Image: "rope"})
					s.World().Current().Append(target)
					s.Activate(target)
				}
			}
			n := len(s.World().Player.Inventory)
			if got := s.Scroll(); got < 0 || got > MaxScroll(n) {
				t.Fatalf("scroll %d outside [0,%d] with %d items", got, MaxScroll(n), n)
			}
		}
	})
}

func TestUnmatchedUseNeverMutates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := kitchenConfig()
		w, err := NewWorld(cfg, assets.Default())
		if err != nil {
			t.Fatalf("new world: %v", err)
		}
		names := []string{"lamp", "coin", "book", "chair"}
		target := NewItem(ItemDef{Name: rapid.SampledFrom(names).Draw(t, "target"), Image: "key"})
		tool := NewItem(ItemDef{Name: rapid.SampledFrom(names).Draw(t, "tool"), Image: "key"})
		if rapid.Bool().Draw(t, "held") {
			w.Player.Add(target)
		} else {
			w.Current().Append(target)
		}
		w.Player.Add(tool)
		roomBefore := slices.Clone(w.Current().Objects)
		invBefore := slices.Clone(w.Player.Inventory)

		out := target.Use(tool, w)

		if out.Matched || target.State != "" || tool.State != "" {
			t.Fatalf("unexpected effect %+v", out)
		}
		if !slices.Equal(roomBefore, w.Current().Objects) || !slices.Equal(invBefore, w.Player.Inventory) {
			t.Fatalf("containers changed")
		}
	})
}

func TestClampScrollProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 100).Draw(t, "n")
		offset := rapid.IntRange(-10000, 10000).Draw(t, "offset")
		got := ClampScroll(offset, n)
		if got < 0 || got > MaxScroll(n) {
			t.Fatalf("ClampScroll(%d,%d)=%d", offset, n, got)
		}
		if offset >= 0 && offset <= MaxScroll(n) && got != offset {
			t.Fatalf("in-range offset %d changed to %d", offset, got)
		}
		if ClampScroll(got, n) != got {
			t.Fatalf("clamp is not idempotent")
		}
	})
}

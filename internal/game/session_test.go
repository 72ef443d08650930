package game

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/appengine-ltd/clickquest/internal/assets"
)

func TestTitleQuitButton(t *testing.T) {
	s := NewSession(&staticSource{cfg: kitchenConfig()}, &memStore{}, nil, nil)

	s.LeftClick(context.Background(), Point{X: 10, Y: 10})
	if s.ShouldQuit() || s.Screen() != ScreenTitle {
		t.Fatalf("click outside the buttons must do nothing")
	}

	s.LeftClick(context.Background(), TitleButtons[2].Rect.Center())
	if !s.ShouldQuit() {
		t.Fatalf("expected quit after pressing Quit")
	}
}

func TestTitleNewGameButton(t *testing.T) {
	s := NewSession(&staticSource{cfg: kitchenConfig()}, &memStore{}, nil, nil)

	s.LeftClick(context.Background(), Point{X: 200, Y: 200})

	if s.Screen() != ScreenGame {
		t.Fatalf("screen = %v, want game", s.Screen())
	}
	if s.World().Player.CurrentRoom != "kitchen" {
		t.Fatalf("room = %q", s.World().Player.CurrentRoom)
	}
}

func TestTitleButtonEdgesAreHalfOpen(t *testing.T) {
	s := NewSession(&staticSource{cfg: kitchenConfig()}, &memStore{}, nil, nil)
	s.LeftClick(context.Background(), Point{X: 440, Y: 220})
	if s.Screen() != ScreenTitle {
		t.Fatalf("right edge of the button must not register")
	}
}

func TestLoadWithoutSaveStaysOnTitle(t *testing.T) {
	s := NewSession(&staticSource{cfg: kitchenConfig()}, &memStore{}, nil, nil)

	s.LeftClick(context.Background(), TitleButtons[1].Rect.Center())

	if s.Screen() != ScreenTitle {
		t.Fatalf("screen = %v, want title", s.Screen())
	}
	if s.Status() != "No save file found!" {
		t.Fatalf("status = %q", s.Status())
	}
}

func TestNewGameReportsBrokenConfig(t *testing.T) {
	cfg := kitchenConfig()
	cfg.StartRoom = "kitchn"
	s := NewSession(&staticSource{cfg: cfg}, &memStore{}, nil, nil)

	err := s.NewGame(context.Background())

	if !errors.Is(err, ErrUnknownRoom) {
		t.Fatalf("expected ErrUnknownRoom, got %v", err)
	}
	if s.Screen() != ScreenTitle || s.World() != nil {
		t.Fatalf("failed new game must not leave the title screen")
	}
}

func TestKnifeCutsRopeScenario(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, kitchenConfig())
	room := s.World().Current()
	knife, rope := room.Find("knife"), room.Find("rope")

	s.LeftClick(ctx, centre(knife))
	if !s.World().Player.Holds(knife) || room.Contains(knife) {
		t.Fatalf("knife should be picked up")
	}
	if s.Status() != "Picked up the knife." {
		t.Fatalf("status = %q", s.Status())
	}

	s.LeftClick(ctx, Point{X: 20, Y: 20})
	if s.Selected() != knife {
		t.Fatalf("expected knife selected")
	}
	if s.Tooltip() != "knife: A knife." {
		t.Fatalf("tooltip = %q", s.Tooltip())
	}

	s.LeftClick(ctx, centre(rope))

	if rope.State != "cut" {
		t.Fatalf("rope state = %q", rope.State)
	}
	if got := objectNames(room.Objects); !slices.Equal(got, []string{"key"}) {
		t.Fatalf("room objects = %v", got)
	}
	if key := room.Find("key"); key.X != 350 || key.Y != 290 {
		t.Fatalf("key at (%d,%d)", key.X, key.Y)
	}
	if s.Selected() != nil {
		t.Fatalf("selection should be spent")
	}
	if !s.World().Player.Holds(knife) {
		t.Fatalf("knife should stay in the inventory")
	}
	if s.Status() != "The rope falls away, revealing a key!" {
		t.Fatalf("status = %q", s.Status())
	}
}

func TestClickingExitTravels(t *testing.T) {
	cfg := kitchenConfig()
	cfg.StartRoom = "hallway"
	s, _ := newTestSession(t, cfg)
	door := s.World().Current().Find("door")

	s.LeftClick(context.Background(), centre(door))

	if s.World().Player.CurrentRoom != "kitchen" {
		t.Fatalf("room = %q, want kitchen", s.World().Player.CurrentRoom)
	}
	if s.World().Player.Holds(door) {
		t.Fatalf("doors that are exits are never picked up")
	}
	if s.Status() != "Moved to kitchen." {
		t.Fatalf("status = %q", s.Status())
	}
}

func TestDoorClickUsesLowerHalf(t *testing.T) {
	cfg := kitchenConfig()
	cfg.StartRoom = "hallway"
	s, _ := newTestSession(t, cfg)

	// the door is 64 pixels tall; y=250 is below a 32 pixel box
	s.LeftClick(context.Background(), Point{X: 150, Y: 250})

	if s.World().Player.CurrentRoom != "kitchen" {
		t.Fatalf("door hit box should be 32x64")
	}
}

func TestSelectionIsSpentWhenNothingHappens(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, kitchenConfig())
	room := s.World().Current()
	rope := room.Find("rope")

	s.LeftClick(ctx, centre(rope))
	s.LeftClick(ctx, Point{X: 20, Y: 20})
	if s.Selected() != rope {
		t.Fatalf("expected rope selected")
	}

	knife := room.Find("knife")
	s.LeftClick(ctx, centre(knife))

	if s.Selected() != nil {
		t.Fatalf("selection should be cleared")
	}
	if s.Status() != "Nothing happens." {
		t.Fatalf("status = %q", s.Status())
	}
	if !room.Contains(knife) {
		t.Fatalf("a failed use must not pick the target up")
	}
}

func TestClickOnEmptyFloorKeepsSelection(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, kitchenConfig())
	s.LeftClick(ctx, centre(s.World().Current().Find("knife")))
	s.LeftClick(ctx, Point{X: 20, Y: 20})

	s.LeftClick(ctx, Point{X: 600, Y: 20})

	if s.Selected() == nil {
		t.Fatalf("clicking nothing should not spend the selection")
	}
}

func TestRightClickTooltip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, kitchenConfig())
	s.LeftClick(ctx, centre(s.World().Current().Find("knife")))

	s.RightClick(Point{X: 15, Y: 15})
	if s.Tooltip() != "knife: A knife." {
		t.Fatalf("tooltip = %q", s.Tooltip())
	}
	if s.Selected() != nil {
		t.Fatalf("right click must not select")
	}

	s.RightClick(Point{X: 300, Y: 300})
	if s.Tooltip() != "" {
		t.Fatalf("tooltip should clear, got %q", s.Tooltip())
	}
}

func TestScrollIsClamped(t *testing.T) {
	s, _ := newTestSession(t, kitchenConfig())
	inv := s.World().Player
	for i := range 8 {
		inv.Add(NewItem(ItemDef{Name: "pebble" + string(rune('a'+i)), Image: "key"}))
	}

	s.Wheel(-10)
	if s.Scroll() != 120 {
		t.Fatalf("scroll = %d, want 120", s.Scroll())
	}
	s.Wheel(1)
	if s.Scroll() != 100 {
		t.Fatalf("scroll = %d, want 100", s.Scroll())
	}
	s.Wheel(50)
	if s.Scroll() != 0 {
		t.Fatalf("scroll = %d, want 0", s.Scroll())
	}
}

func TestScrollWithFewItemsStaysAtZero(t *testing.T) {
	s, _ := newTestSession(t, kitchenConfig())
	s.Wheel(-3)
	if s.Scroll() != 0 {
		t.Fatalf("scroll = %d", s.Scroll())
	}
}

func TestHiddenSlotIsNotClickable(t *testing.T) {
	s, _ := newTestSession(t, kitchenConfig())
	for i := range 13 {
		s.World().Player.Add(NewItem(ItemDef{Name: "pebble" + string(rune('a'+i)), Image: "key"}))
	}

	slots := s.Slots()
	if !slots[11].Visible || slots[12].Visible {
		t.Fatalf("expected slots 0-11 visible, got 11=%v 12=%v", slots[11].Visible, slots[12].Visible)
	}

	s.Wheel(-1)
	if s.Scroll() != 20 {
		t.Fatalf("scroll = %d", s.Scroll())
	}
	// slot 0 now sits at y=-10 and its centre is still inside the panel
	if !s.Slots()[0].Visible {
		t.Fatalf("slot 0 should remain visible")
	}
	s.LeftClick(context.Background(), Point{X: 20, Y: 2})
	if s.Selected() == nil || s.Selected().Name != "pebblea" {
		t.Fatalf("expected pebblea selected, got %v", s.Selected())
	}
}

func TestSaveAndLoadRestoresWorld(t *testing.T) {
	ctx := context.Background()
	s, store := newTestSession(t, kitchenConfig())
	room := s.World().Current()
	s.LeftClick(ctx, centre(room.Find("knife")))
	s.LeftClick(ctx, Point{X: 20, Y: 20})
	s.LeftClick(ctx, centre(room.Find("rope")))

	if err := s.SaveGame(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.Status() != "Game saved!" {
		t.Fatalf("status = %q", s.Status())
	}
	saved := s.World()

	fresh := NewSession(&staticSource{cfg: kitchenConfig()}, store, nil, nil)
	if err := fresh.LoadGame(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if fresh.Status() != "Game loaded!" || fresh.Screen() != ScreenGame {
		t.Fatalf("unexpected state after load: %q %v", fresh.Status(), fresh.Screen())
	}
	w := fresh.World()
	if w.ID != saved.ID {
		t.Fatalf("world id changed")
	}
	if got := objectNames(w.Player.Inventory); !slices.Equal(got, []string{"knife"}) {
		t.Fatalf("inventory = %v", got)
	}
	key := w.Current().Find("key")
	if key == nil || key.X != 350 || key.Y != 290 || key.Description != "A shiny key." {
		t.Fatalf("key not restored: %+v", key)
	}
	if w.Rooms["hallway"].State != "dark" {
		t.Fatalf("room state lost")
	}
	if fresh.Selected() != nil || fresh.Scroll() != 0 {
		t.Fatalf("transient state should reset on load")
	}
}

func TestFailedLoadKeepsCurrentWorld(t *testing.T) {
	ctx := context.Background()
	s, store := newTestSession(t, kitchenConfig())
	s.LeftClick(ctx, centre(s.World().Current().Find("knife")))
	before := s.World()

	bad := Snapshot(before, s.now())
	bad.CurrentRoom = "cellar"
	if err := store.Save(ctx, bad); err != nil {
		t.Fatal(err)
	}

	err := s.LoadGame(ctx)

	if !errors.Is(err, ErrUnknownRoom) {
		t.Fatalf("expected ErrUnknownRoom, got %v", err)
	}
	if s.World() != before || len(before.Player.Inventory) != 1 {
		t.Fatalf("world must be untouched")
	}
	if !strings.HasPrefix(s.Status(), "Load failed") {
		t.Fatalf("status = %q", s.Status())
	}
}

func TestSaveOnTitleIsRejected(t *testing.T) {
	s := NewSession(&staticSource{cfg: kitchenConfig()}, &memStore{}, nil, nil)
	if err := s.SaveGame(context.Background()); !errors.Is(err, ErrNotPlaying) {
		t.Fatalf("expected ErrNotPlaying, got %v", err)
	}
}

func TestPaletteFollowsWorldAssets(t *testing.T) {
	cfg := kitchenConfig()
	cfg.Assets = map[string]assets.SwatchSpec{"lamp": {Color: "#ffee00"}}
	s := NewSession(&staticSource{cfg: cfg}, &memStore{}, nil, nil)
	if s.Palette().Has("lamp") {
		t.Fatalf("title palette should not carry world assets")
	}
	if err := s.NewGame(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !s.Palette().Has("lamp") {
		t.Fatalf("world palette should include lamp")
	}
}

func TestMessagesAreBounded(t *testing.T) {
	s := NewSession(&staticSource{cfg: kitchenConfig()}, &memStore{}, nil, nil)
	for range maxMessages + 5 {
		_ = s.LoadGame(context.Background())
	}
	if got := len(s.Messages()); got != maxMessages {
		t.Fatalf("messages = %d, want %d", got, maxMessages)
	}
}

func TestSetLoggerRedirectsSessionLogs(t *testing.T) {
	before, beforeLogs := observer.New(zap.InfoLevel)
	after, afterLogs := observer.New(zap.InfoLevel)
	s := NewSession(&staticSource{cfg: kitchenConfig()}, &memStore{}, nil, zap.New(before))
	if err := s.NewGame(context.Background()); err != nil {
		t.Fatalf("new game: %v", err)
	}
	logged := beforeLogs.Len()

	s.SetLogger(zap.New(after))
	if err := s.SaveGame(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if beforeLogs.Len() != logged {
		t.Fatalf("old logger still written to")
	}
	if afterLogs.FilterMessage("game saved").Len() != 1 {
		t.Fatalf("expected save logged to the new logger, got %v", afterLogs.All())
	}

	s.SetLogger(nil)
	if err := s.SaveGame(context.Background()); err != nil {
		t.Fatalf("save with nil logger: %v", err)
	}
}

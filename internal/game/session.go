package game

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/appengine-ltd/clickquest/internal/assets"
)

type Screen int

const (
	ScreenTitle Screen = iota
	ScreenGame
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenGame:
		return "game"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// SaveStore persists one save. Load returns ErrNoSave when nothing has been
// saved yet.
type SaveStore interface {
	Save(ctx context.Context, save *SaveFile) error
	Load(ctx context.Context) (*SaveFile, error)
}

const maxMessages = 100

// Session is the controller both frontends drive: it owns the world and
// the transient UI state, and turns input into world changes.
type Session struct {
	source  WorldSource
	store   SaveStore
	palette assets.Palette
	logger  *zap.Logger
	now     func() time.Time

	screen   Screen
	world    *World
	selected *Item
	scroll   int
	tooltip  string
	messages []string
	said     int
	quit     bool
}

func NewSession(source WorldSource, store SaveStore, palette assets.Palette, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if palette == nil {
		palette = assets.Default()
	}
	return &Session{
		source:  source,
		store:   store,
		palette: palette,
		logger:  logger,
		now:     time.Now,
		screen:  ScreenTitle,
	}
}

// SetLogger swaps the logger, for a frontend that must not write to the
// terminal it draws on.
func (s *Session) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
}

func (s *Session) Screen() Screen   { return s.screen }
func (s *Session) World() *World    { return s.world }
func (s *Session) Selected() *Item  { return s.selected }
func (s *Session) Scroll() int      { return s.scroll }
func (s *Session) Tooltip() string  { return s.tooltip }
func (s *Session) ShouldQuit() bool { return s.quit }

// Status is the most recent message.
func (s *Session) Status() string {
	if len(s.messages) == 0 {
		return ""
	}
	return s.messages[len(s.messages)-1]
}

func (s *Session) Messages() []string {
	return append([]string(nil), s.messages...)
}

// Seq counts every message ever reported, including ones that have since
// dropped out of Messages.
func (s *Session) Seq() int { return s.said }

// Palette is the palette of the running world, or the base palette on the
// title screen.
func (s *Session) Palette() assets.Palette {
	if s.world != nil {
		return s.world.Palette()
	}
	return s.palette
}

func (s *Session) Quit() {
	s.quit = true
}

func (s *Session) NewGame(ctx context.Context) error {
	cfg, err := s.source.LoadWorld()
	if err != nil {
		s.say("New game failed: " + err.Error())
		return err
	}
	w, err := NewWorld(cfg, s.palette)
	if err != nil {
		s.say("New game failed: " + err.Error())
		return err
	}
	for _, tag := range cfg.UnknownActions() {
		s.logger.Warn("interaction has no built-in effect", zap.String("rule", tag))
	}
	s.begin(w)
	s.logger.Info("new game", zap.Stringer("world", w.ID), zap.String("room", w.Player.CurrentRoom))
	s.say("New game started in the " + w.Player.CurrentRoom + ".")
	return nil
}

// LoadGame replaces the world with the saved one. On any error the current
// world is left untouched.
func (s *Session) LoadGame(ctx context.Context) error {
	save, err := s.store.Load(ctx)
	if errors.Is(err, ErrNoSave) {
		s.logger.Info("no save file found")
		s.say("No save file found!")
		return err
	}
	if err != nil {
		s.logger.Error("load failed", zap.Error(err))
		s.say("Load failed: " + err.Error())
		return err
	}
	cfg, err := s.source.LoadWorld()
	if err != nil {
		s.logger.Error("load failed", zap.Error(err))
		s.say("Load failed: " + err.Error())
		return err
	}
	w, err := Restore(save, cfg, s.palette)
	if err != nil {
		s.logger.Error("load failed", zap.Error(err))
		s.say("Load failed: " + err.Error())
		return err
	}
	s.begin(w)
	s.logger.Info("game loaded", zap.Stringer("world", w.ID), zap.String("room", w.Player.CurrentRoom))
	s.say("Game loaded!")
	return nil
}

func (s *Session) SaveGame(ctx context.Context) error {
	if s.screen != ScreenGame || s.world == nil {
		return ErrNotPlaying
	}
	if err := s.store.Save(ctx, Snapshot(s.world, s.now())); err != nil {
		s.logger.Error("save failed", zap.Error(err))
		s.say("Save failed: " + err.Error())
		return err
	}
	s.logger.Info("game saved", zap.Stringer("world", s.world.ID))
	s.say("Game saved!")
	return nil
}

func (s *Session) begin(w *World) {
	s.world = w
	s.selected = nil
	s.scroll = 0
	s.tooltip = ""
	s.screen = ScreenGame
}

// LeftClick handles a primary click. On the title screen it presses a
// button; in the game it selects an inventory slot, or else acts on the
// topmost room object under p.
func (s *Session) LeftClick(ctx context.Context, p Point) {
	switch s.screen {
	case ScreenTitle:
		action, ok := titleButtonAt(p)
		if !ok {
			return
		}
		switch action {
		case TitleNewGame:
			_ = s.NewGame(ctx)
		case TitleLoadGame:
			_ = s.LoadGame(ctx)
		case TitleQuit:
			s.Quit()
		}
	case ScreenGame:
		if i, ok := s.slotAt(p); ok {
			s.SelectInventory(i)
			return
		}
		if obj := s.world.Current().ObjectAt(p); obj != nil {
			s.Activate(obj)
		}
	}
}

// RightClick shows the tooltip of the inventory item under p, or clears it.
func (s *Session) RightClick(p Point) {
	if s.screen != ScreenGame {
		return
	}
	if i, ok := s.slotAt(p); ok {
		s.tooltip = s.world.Player.Inventory[i].Tooltip()
		return
	}
	s.tooltip = ""
}

// Wheel moves the inventory by dy wheel notches; positive dy scrolls up.
func (s *Session) Wheel(dy float64) {
	if s.screen != ScreenGame {
		return
	}
	step := int(math.Round(dy * ScrollStep))
	s.scroll = ClampScroll(s.scroll-step, len(s.world.Player.Inventory))
}

func (s *Session) SelectInventory(i int) bool {
	if s.screen != ScreenGame || i < 0 || i >= len(s.world.Player.Inventory) {
		return false
	}
	it := s.world.Player.Inventory[i]
	s.selected = it
	s.tooltip = it.Tooltip()
	s.logger.Debug("selected", zap.String("item", it.Name))
	return true
}

// Activate is a click on a room object. A selected item is used on it and
// the selection is spent whether or not anything happened. Without a
// selection an exit is followed, and anything else is picked up.
func (s *Session) Activate(obj *Item) {
	if s.screen != ScreenGame {
		return
	}
	room := s.world.Current()
	if s.selected != nil {
		tool := s.selected
		s.selected = nil
		out := obj.Use(tool, s.world)
		if out.Matched {
			s.logger.Info("used item",
				zap.String("tool", tool.Name),
				zap.String("target", obj.Name),
				zap.String("action", string(out.Action)))
		} else {
			s.logger.Info("nothing happens", zap.String("tool", tool.Name), zap.String("target", obj.Name))
		}
		s.say(out.Message)
		s.clampScroll()
		return
	}

	if dest, ok := room.Destination(obj.Name); ok {
		if err := s.world.Travel(dest); err != nil {
			s.logger.Error("travel failed", zap.Error(err))
			s.say(err.Error())
			return
		}
		s.logger.Info("moved", zap.String("from", room.Name), zap.String("to", dest))
		s.say("Moved to " + dest + ".")
		return
	}

	if s.world.PickUp(obj) {
		s.logger.Info("picked up", zap.String("item", obj.Name))
		s.say("Picked up the " + obj.Name + ".")
		s.clampScroll()
	}
}

// Deselect drops the current selection without using it.
func (s *Session) Deselect() {
	s.selected = nil
}

// Inspect shows an item's tooltip without selecting it.
func (s *Session) Inspect(it *Item) {
	if it != nil {
		s.tooltip = it.Tooltip()
	}
}

// Slots lays out the inventory for the current scroll offset.
func (s *Session) Slots() []Slot {
	if s.world == nil {
		return nil
	}
	inv := s.world.Player.Inventory
	out := make([]Slot, 0, len(inv))
	for i, it := range inv {
		r := SlotRect(i, it, s.scroll)
		out = append(out, Slot{Index: i, Item: it, Rect: r, Visible: SlotVisible(r)})
	}
	return out
}

func (s *Session) slotAt(p Point) (int, bool) {
	for _, slot := range s.Slots() {
		if slot.Visible && slot.Rect.Contains(p) {
			return slot.Index, true
		}
	}
	return -1, false
}

func (s *Session) clampScroll() {
	s.scroll = ClampScroll(s.scroll, len(s.world.Player.Inventory))
}

func (s *Session) say(msg string) {
	if msg == "" {
		return
	}
	s.said++
	s.messages = append(s.messages, msg)
	if len(s.messages) > maxMessages {
		s.messages = append([]string(nil), s.messages[len(s.messages)-maxMessages:]...)
	}
}

package game

// Point is a screen coordinate in window pixels.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned box. Contains follows the half-open convention:
// the right and bottom edges are outside.
type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inventory panel geometry.
const (
	SlotX       = 10
	SlotY       = 10
	SlotSpacing = 40
	ScrollStep  = 20

	// scrollWindow is how much of the slot column is reachable without scrolling.
	scrollWindow = 200
)

// InventoryPanel is the strip on the left edge where held items are listed.
var InventoryPanel = Rect{X: 0, Y: 0, W: 100, H: 480}

// TooltipOrigin is where the tooltip text is drawn.
var TooltipOrigin = Point{X: 110, Y: 10}

// MaxScroll is the largest valid inventory scroll offset for n held items.
func MaxScroll(n int) int {
	return max(0, n*SlotSpacing-scrollWindow)
}

// ClampScroll clamps offset into [0, MaxScroll(n)].
func ClampScroll(offset, n int) int {
	return min(max(offset, 0), MaxScroll(n))
}

// SlotRect is the on-screen box of inventory slot i.
func SlotRect(i int, it *Item, offset int) Rect {
	w, h := it.Size()
	return Rect{X: SlotX, Y: SlotY + i*SlotSpacing - offset, W: w, H: h}
}

// SlotVisible reports whether a slot is drawn (and therefore clickable).
func SlotVisible(r Rect) bool {
	return InventoryPanel.Contains(r.Center())
}

// Slot is an inventory entry laid out for the current scroll offset.
type Slot struct {
	Index   int
	Item    *Item
	Rect    Rect
	Visible bool
}

type TitleAction int

const (
	TitleNewGame TitleAction = iota
	TitleLoadGame
	TitleQuit
)

type TitleButton struct {
	Action TitleAction
	Label  string
	Rect   Rect
}

var TitleButtons = []TitleButton{
	{Action: TitleNewGame, Label: "New Game", Rect: Rect{X: 200, Y: 200, W: 240, H: 50}},
	{Action: TitleLoadGame, Label: "Load Game", Rect: Rect{X: 200, Y: 270, W: 240, H: 50}},
	{Action: TitleQuit, Label: "Quit", Rect: Rect{X: 200, Y: 340, W: 240, H: 50}},
}

func titleButtonAt(p Point) (TitleAction, bool) {
	for _, b := range TitleButtons {
		if b.Rect.Contains(p) {
			return b.Action, true
		}
	}
	return 0, false
}

package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Window chrome. Scene art comes from the asset palette.
var (
	InventoryPanel = rl.NewColor(50, 50, 50, 255)
	SlotHighlight  = rl.NewColor(0xFF, 0xD7, 0x00, 255)
	TooltipText    = rl.White
	TooltipShadow  = rl.Fade(rl.Black, 0.55)
	StatusBand     = rl.Fade(rl.Black, 0.6)
	StatusText     = rl.NewColor(0xE8, 0xE2, 0xD8, 255)
	ButtonLabel    = rl.White
	Border         = rl.NewColor(0x2E, 0x3A, 0x40, 255)
	Focus          = rl.White
	TextMuted      = rl.NewColor(0x7D, 0x85, 0x8A, 255)

	// Title buttons in order: new game, load game, quit.
	ButtonFills = []rl.Color{
		rl.NewColor(0, 255, 0, 255),
		rl.NewColor(0, 0, 255, 255),
		rl.NewColor(255, 0, 0, 255),
	}
)

package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	Padding        = float32(6)
	CornerRadius   = float32(0.12)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.5)
	StatusHeight     = float32(26)
)

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
)

// DrawButton fills rect and centres text on it. Hovered buttons get a
// brighter outline.
func DrawButton(rect rl.Rectangle, fill rl.Color, state ButtonState, text string) {
	stroke := Border
	strokeWidth := BorderWidth
	if state == ButtonHovered {
		fill = mix(fill, rl.White, 0.2)
		stroke = Focus
		strokeWidth = BorderWidthFocus
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)

	if text == "" {
		return
	}
	size := Type.Button
	labelW := measureText(text, size)
	textX := int32(rect.X + (rect.Width-float32(labelW))/2)
	textY := int32(rect.Y + (rect.Height-float32(size))/2 - 1)
	drawText(text, textX+1, textY+1, size, rl.Fade(rl.Black, 0.5))
	drawText(text, textX, textY, size, ButtonLabel)
}

func DrawInventoryPanel(rect rl.Rectangle) {
	rl.DrawRectangleRec(rect, InventoryPanel)
}

// DrawSlotHighlight outlines the selected inventory item.
func DrawSlotHighlight(rect rl.Rectangle) {
	outer := rl.NewRectangle(rect.X-2, rect.Y-2, rect.Width+4, rect.Height+4)
	rl.DrawRectangleLinesEx(outer, 2, SlotHighlight)
}

// DrawTooltip draws text with a drop shadow at (x, y).
func DrawTooltip(text string, x, y int32) {
	if text == "" {
		return
	}
	size := Type.Tooltip
	drawText(text, x+1, y+1, size, TooltipShadow)
	drawText(text, x, y, size, TooltipText)
}

// DrawStatus draws a translucent band along the bottom of a screen.
func DrawStatus(text string, screenW, screenH int32) {
	if text == "" {
		return
	}
	band := rl.NewRectangle(0, float32(screenH)-StatusHeight, float32(screenW), StatusHeight)
	rl.DrawRectangleRec(band, StatusBand)
	y := int32(band.Y + (StatusHeight-float32(Type.Status))/2)
	drawText(text, int32(band.X+Padding)+100, y, Type.Status, StatusText)
}

func DrawTitle(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := measureText(text, Type.Title)
	x := (screenW - w) / 2
	drawText(text, x+2, y+2, Type.Title, rl.Fade(rl.Black, 0.5))
	drawText(text, x, y, Type.Title, rl.White)
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Small, TextMuted)
}

func mix(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}

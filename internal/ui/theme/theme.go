// Package theme holds the raylib drawing helpers shared by the window
// screens.
package theme

import rl "github.com/gen2brain/raylib-go/raylib"

type TextDrawFunc func(text string, x, y, fontSize int32, clr rl.Color)

type TextMeasureFunc func(text string, fontSize int32) int32

var (
	textDrawFn TextDrawFunc = func(text string, x, y, fontSize int32, clr rl.Color) {
		rl.DrawText(text, x, y, fontSize, clr)
	}
	textMeasureFn TextMeasureFunc = func(text string, fontSize int32) int32 {
		return int32(rl.MeasureText(text, fontSize))
	}
)

// SetTextRenderer replaces the default raylib font. Nil arguments keep the
// current function.
func SetTextRenderer(draw TextDrawFunc, measure TextMeasureFunc) {
	if draw != nil {
		textDrawFn = draw
	}
	if measure != nil {
		textMeasureFn = measure
	}
}

// FitText shortens text with an ellipsis until it is at most maxW pixels
// wide at fontSize.
func FitText(text string, fontSize, maxW int32) string {
	if measureText(text, fontSize) <= maxW {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if measureText(candidate, fontSize) <= maxW {
			return candidate
		}
	}
	return ""
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	textDrawFn(text, x, y, fontSize, clr)
}

func measureText(text string, fontSize int32) int32 {
	return textMeasureFn(text, fontSize)
}

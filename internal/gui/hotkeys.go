package gui

import rl "github.com/gen2brain/raylib-go/raylib"

// saveRequested is S, with or without Ctrl. Edge-triggered so holding the
// key saves once.
func saveRequested() bool {
	return rl.IsKeyPressed(rl.KeyS)
}

// classicRequested switches to the terminal frontend: F2 or Shift+C.
func classicRequested() bool {
	return rl.IsKeyPressed(rl.KeyF2) || ShiftKeyPressed(rl.KeyC)
}

func ShiftKeyPressed(key int32) bool {
	if shiftDown() && rl.IsKeyPressed(key) {
		return true
	}
	// Accept either key order: Shift then key, or key then Shift.
	if rl.IsKeyDown(key) && (rl.IsKeyPressed(rl.KeyLeftShift) || rl.IsKeyPressed(rl.KeyRightShift)) {
		return true
	}
	return false
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

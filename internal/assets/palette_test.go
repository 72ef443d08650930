package assets

import (
	"image/color"
	"testing"
)

func TestDefaultPaletteMatchesStockWorld(t *testing.T) {
	p := Default()
	for _, key := range []string{"title_bg", "kitchen_bg", "hallway_bg", "knife", "rope", "key", "door"} {
		if !p.Has(key) {
			t.Fatalf("expected default palette to define %q", key)
		}
	}
	if door := p["door"]; door.Width != 32 || door.Height != 64 {
		t.Fatalf("door should be 32x64, got %dx%d", door.Width, door.Height)
	}
	if bg := p["kitchen_bg"]; bg.Width != ScreenWidth || bg.Height != ScreenHeight {
		t.Fatalf("backgrounds should fill the screen, got %dx%d", bg.Width, bg.Height)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#ff0000", want: color.RGBA{R: 255, A: 255}},
		{in: "8b4513", want: color.RGBA{R: 139, G: 69, B: 19, A: 255}},
		{in: "#00000080", want: color.RGBA{A: 128}},
		{in: "#fff", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseHex(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseHex(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseHex(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseHex(%q)=%v want=%v", tc.in, got, tc.want)
		}
	}
}

func TestMergeOverridesWithoutMutatingBase(t *testing.T) {
	base := Default()
	merged := base.Merge(Palette{"knife": {Color: color.RGBA{B: 255, A: 255}, Width: 16, Height: 16}, "lamp": {Width: 32, Height: 32}})
	if merged["knife"].Width != 16 {
		t.Fatalf("expected override to win, got %+v", merged["knife"])
	}
	if !merged.Has("lamp") {
		t.Fatalf("expected new key to be added")
	}
	if base["knife"].Width != 32 {
		t.Fatalf("base palette must not be mutated")
	}
}

func TestFromSpecsDefaultsSize(t *testing.T) {
	p, err := FromSpecs(map[string]SwatchSpec{"lamp": {Color: "#ffffff"}})
	if err != nil {
		t.Fatalf("FromSpecs: %v", err)
	}
	if p["lamp"].Width != 32 || p["lamp"].Height != 32 {
		t.Fatalf("expected 32x32 default, got %+v", p["lamp"])
	}
	if _, err := FromSpecs(map[string]SwatchSpec{"bad": {Color: "nope"}}); err == nil {
		t.Fatalf("expected error for bad colour")
	}
}

//go:build ignore

// gen_placeholders.go – run with:
//
//	go run scripts/gen_placeholders.go
//
// Writes assets/<key>.png for every key of the built-in palette: a flat fill
// with a one-pixel darker outline. The window prefers these files over
// generated swatches, so replacing one with real art changes the game.
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/clickquest/internal/assets"
)

func main() {
	if err := os.MkdirAll("assets", 0o755); err != nil {
		log.Fatal(err)
	}

	palette := assets.Default()
	for _, key := range palette.Keys() {
		sw := palette[key]
		genTexture(filepath.Join("assets", key+".png"), sw)
	}

	log.Println("Placeholder textures written to assets/")
}

func genTexture(path string, sw assets.Swatch) {
	edge := darken(sw.Color)
	img := image.NewRGBA(image.Rect(0, 0, sw.Width, sw.Height))
	for y := 0; y < sw.Height; y++ {
		for x := 0; x < sw.Width; x++ {
			if x == 0 || y == 0 || x == sw.Width-1 || y == sw.Height-1 {
				img.SetRGBA(x, y, edge)
			} else {
				img.SetRGBA(x, y, sw.Color)
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	log.Printf("  wrote %s (%dx%d)", path, sw.Width, sw.Height)
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}

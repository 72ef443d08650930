package gui

import (
	"image/color"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/appengine-ltd/clickquest/internal/assets"
)

const textureCacheSize = 64

// missingSwatch stands in for asset keys the palette does not define.
var missingSwatch = assets.Swatch{Color: color.RGBA{R: 255, G: 0, B: 255, A: 255}, Width: 32, Height: 32}

// textureKey includes the swatch so a world that recolours an asset gets a
// fresh texture instead of the previous world's.
type textureKey struct {
	Asset  string
	Swatch assets.Swatch
}

// textureCache keeps GPU textures for recently drawn assets. Evicted and
// purged textures are unloaded.
type textureCache struct {
	cache *lru.Cache[textureKey, rl.Texture2D]
	load  func(textureKey) rl.Texture2D
}

func newTextureCache(size int, load func(textureKey) rl.Texture2D, unload func(rl.Texture2D)) (*textureCache, error) {
	cache, err := lru.NewWithEvict(size, func(_ textureKey, tex rl.Texture2D) {
		unload(tex)
	})
	if err != nil {
		return nil, err
	}
	return &textureCache{cache: cache, load: load}, nil
}

func (c *textureCache) Get(key textureKey) rl.Texture2D {
	if tex, ok := c.cache.Get(key); ok {
		return tex
	}
	tex := c.load(key)
	c.cache.Add(key, tex)
	return tex
}

func (c *textureCache) Len() int {
	return c.cache.Len()
}

func (c *textureCache) Purge() {
	c.cache.Purge()
}

func texturePath(dir, asset string) string {
	return filepath.Join(dir, asset+".png")
}

// loadTextureFile loads <dir>/<asset>.png when it exists.
func loadTextureFile(dir, asset string) (rl.Texture2D, bool) {
	path := texturePath(dir, asset)
	if _, err := os.Stat(path); err != nil {
		return rl.Texture2D{}, false
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return rl.Texture2D{}, false
	}
	return tex, true
}

// swatchTexture builds a flat-colour placeholder.
func swatchTexture(sw assets.Swatch) rl.Texture2D {
	img := rl.GenImageColor(sw.Width, sw.Height, toColor(sw.Color))
	defer rl.UnloadImage(img)
	return rl.LoadTextureFromImage(img)
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

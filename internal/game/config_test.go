package game

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/clickquest/internal/assets"
)

const worldYAML = `
start_room: kitchen
assets:
  lamp: {color: "#ffee00"}
rooms:
  kitchen:
    bg: kitchen_bg
    exits: {door: hallway}
    items:
      - {name: lamp, x: 10, y: 20, image: lamp, description: An oil lamp.}
      - name: door
        x: 560
        y: 200
        image: door
        interactions:
          door: {key: unlock}
  hallway:
    bg: hallway_bg
`

func TestDecodeWorldYAML(t *testing.T) {
	cfg, err := DecodeWorld([]byte(worldYAML), ".yml")
	require.NoError(t, err)

	assert.Equal(t, "kitchen", cfg.StartRoom)
	require.Len(t, cfg.Rooms["kitchen"].Items, 2)
	assert.Equal(t, "An oil lamp.", cfg.Rooms["kitchen"].Items[0].Description)
	assert.Equal(t, ActionUnlock, cfg.Rooms["kitchen"].Items[1].Interactions["door"]["key"])
	assert.Equal(t, "#ffee00", cfg.Assets["lamp"].Color)

	w, err := NewWorld(cfg, assets.Default())
	require.NoError(t, err)
	assert.Equal(t, 32, w.Palette()["lamp"].Width)
}

func TestDecodeWorldJSONErrors(t *testing.T) {
	_, err := DecodeWorld([]byte(`{"start_room": `), ".json")
	assert.ErrorContains(t, err, "parsing world JSON")
}

func TestStockWorldFile(t *testing.T) {
	cfg, err := WorldFile{Path: filepath.Join("..", "..", "data", "game_config.json")}.LoadWorld()
	require.NoError(t, err)

	w, err := NewWorld(cfg, assets.Default())
	require.NoError(t, err)

	assert.Equal(t, "kitchen", w.Player.CurrentRoom)
	assert.Equal(t, []string{"knife", "rope", "door"}, objectNames(w.Rooms["kitchen"].Objects))
	assert.Equal(t, []string{"door", "cabinet"}, objectNames(w.Rooms["hallway"].Objects))
	assert.Empty(t, cfg.UnknownActions())

	// Unlocking an exit door removes it and with it the way through, so the
	// stock world keeps its locks off exits.
	for name, room := range w.Rooms {
		for _, obj := range room.Objects {
			if _, exit := room.Exits[obj.Name]; !exit {
				continue
			}
			for _, rules := range obj.Interactions {
				for tool, action := range rules {
					assert.NotEqual(t, ActionUnlock, action, "%s: %s unlocks exit %s", name, tool, obj.Name)
				}
			}
		}
	}
}

func TestWorldFileMissing(t *testing.T) {
	_, err := WorldFile{Path: filepath.Join(t.TempDir(), "nope.json")}.LoadWorld()
	assert.ErrorContains(t, err, "reading world config")
}

func TestValidateSuggestsNames(t *testing.T) {
	cfg := kitchenConfig()
	cfg.StartRoom = "kichen"
	hall := cfg.Rooms["hallway"]
	hall.Background = "hallway_bgg"
	hall.Exits = map[string]string{"door": "kitchn"}
	cfg.Rooms["hallway"] = hall

	err := cfg.Validate(assets.Default())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRoom)
	assert.ErrorIs(t, err, ErrUnknownAsset)
	msg := err.Error()
	assert.Contains(t, msg, `start_room: unknown room: "kichen" (did you mean "kitchen"?)`)
	assert.Contains(t, msg, `rooms.hallway.bg: unknown asset: "hallway_bgg" (did you mean "hallway_bg"?)`)
	assert.Contains(t, msg, `rooms.hallway.exits.door: unknown room: "kitchn" (did you mean "kitchen"?)`)
}

func TestValidateRequiredFields(t *testing.T) {
	cfg := &WorldConfig{
		Rooms: map[string]RoomConfig{
			"kitchen": {Items: []ItemDef{{X: 1}}},
		},
	}

	err := cfg.Validate(assets.Default())

	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "StartRoom is required")
	assert.Contains(t, msg, "Background is required")
	assert.Contains(t, msg, "Name is required")
	assert.Contains(t, msg, "Image is required")
}

func TestValidateNoSuggestionForDistantNames(t *testing.T) {
	cfg := kitchenConfig()
	cfg.StartRoom = "observatory"

	err := cfg.Validate(assets.Default())

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestUnknownActionsAreListed(t *testing.T) {
	cfg := kitchenConfig()
	kitchen := cfg.Rooms["kitchen"]
	kitchen.Items[1].Interactions = Interactions{"rope": {"knife": "fray"}}
	cfg.Rooms["kitchen"] = kitchen

	assert.Equal(t, []string{"rope: rope+knife=fray"}, cfg.UnknownActions())
}

func TestBadAssetColour(t *testing.T) {
	cfg := kitchenConfig()
	cfg.Assets = map[string]assets.SwatchSpec{"lamp": {Color: "yellow"}}

	_, err := NewWorld(cfg, assets.Default())

	assert.ErrorContains(t, err, `asset "lamp"`)
}

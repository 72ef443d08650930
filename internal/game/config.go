package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/clickquest/internal/assets"
)

// WorldConfig is the static world definition read at New Game and again at
// Load Game.
type WorldConfig struct {
	StartRoom string                       `json:"start_room" yaml:"start_room" validate:"required"`
	Rooms     map[string]RoomConfig        `json:"rooms" yaml:"rooms" validate:"required,min=1,dive"`
	Assets    map[string]assets.SwatchSpec `json:"assets,omitempty" yaml:"assets,omitempty" validate:"omitempty,dive"`
}

type RoomConfig struct {
	Background string            `json:"bg" yaml:"bg" validate:"required"`
	State      string            `json:"state,omitempty" yaml:"state,omitempty"`
	Exits      map[string]string `json:"exits,omitempty" yaml:"exits,omitempty"`
	Items      []ItemDef         `json:"items,omitempty" yaml:"items,omitempty" validate:"dive"`
}

type ItemDef struct {
	Name         string       `json:"name" yaml:"name" validate:"required"`
	X            int          `json:"x" yaml:"x"`
	Y            int          `json:"y" yaml:"y"`
	Image        string       `json:"image" yaml:"image" validate:"required"`
	Description  string       `json:"description,omitempty" yaml:"description,omitempty"`
	Interactions Interactions `json:"interactions,omitempty" yaml:"interactions,omitempty"`
}

// WorldSource supplies the world config. It is read again on every load so
// the file must still be present when a save is restored.
type WorldSource interface {
	LoadWorld() (*WorldConfig, error)
}

// WorldFile reads a world config from disk; .yaml and .yml are parsed as
// YAML, anything else as JSON.
type WorldFile struct {
	Path string
}

func (f WorldFile) LoadWorld() (*WorldConfig, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading world config %s: %w", f.Path, err)
	}
	return DecodeWorld(data, filepath.Ext(f.Path))
}

// DecodeWorld parses data; ext selects the format the way WorldFile does.
func DecodeWorld(data []byte, ext string) (*WorldConfig, error) {
	var cfg WorldConfig
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing world YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing world JSON: %w", err)
		}
	}
	return &cfg, nil
}

// Palette merges the config's own assets over base.
func (c *WorldConfig) Palette(base assets.Palette) (assets.Palette, error) {
	if len(c.Assets) == 0 {
		return base, nil
	}
	extra, err := assets.FromSpecs(c.Assets)
	if err != nil {
		return nil, err
	}
	return base.Merge(extra), nil
}

var validate = validator.New()

// Validate checks the config shape and that every room, exit and asset it
// references exists. All violations are reported together.
func (c *WorldConfig) Validate(palette assets.Palette) error {
	var errs []error
	if err := validate.Struct(c); err != nil {
		errs = append(errs, validationErrors(err)...)
	}

	rooms := c.RoomNames()
	if _, ok := c.Rooms[c.StartRoom]; c.StartRoom != "" && !ok {
		errs = append(errs, fmt.Errorf("start_room: %w: %q%s", ErrUnknownRoom, c.StartRoom, suggest(c.StartRoom, rooms)))
	}

	assetKeys := palette.Keys()
	for _, name := range rooms {
		rc := c.Rooms[name]
		if rc.Background != "" && !palette.Has(rc.Background) {
			errs = append(errs, fmt.Errorf("rooms.%s.bg: %w: %q%s", name, ErrUnknownAsset, rc.Background, suggest(rc.Background, assetKeys)))
		}
		for _, door := range slices.Sorted(maps.Keys(rc.Exits)) {
			dest := rc.Exits[door]
			if _, ok := c.Rooms[dest]; !ok {
				errs = append(errs, fmt.Errorf("rooms.%s.exits.%s: %w: %q%s", name, door, ErrUnknownRoom, dest, suggest(dest, rooms)))
			}
		}
		for i, def := range rc.Items {
			if def.Image != "" && !palette.Has(def.Image) {
				errs = append(errs, fmt.Errorf("rooms.%s.items[%d].image: %w: %q%s", name, i, ErrUnknownAsset, def.Image, suggest(def.Image, assetKeys)))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid world config: %w", errors.Join(errs...))
	}
	return nil
}

// UnknownActions lists interaction tags that have no built-in effect. They
// are legal and only end up in the item's state.
func (c *WorldConfig) UnknownActions() []string {
	var out []string
	for _, name := range c.RoomNames() {
		for _, def := range c.Rooms[name].Items {
			for target, rules := range def.Interactions {
				for tool, action := range rules {
					if action.Kind() == KindCustom {
						out = append(out, fmt.Sprintf("%s: %s+%s=%s", def.Name, target, tool, action))
					}
				}
			}
		}
	}
	slices.Sort(out)
	return out
}

func (c *WorldConfig) RoomNames() []string {
	return slices.Sorted(maps.Keys(c.Rooms))
}

// catalog returns the first definition of every item name, scanning rooms in
// name order.
func (c *WorldConfig) catalog() map[string]ItemDef {
	out := make(map[string]ItemDef)
	for _, name := range c.RoomNames() {
		for _, def := range c.Rooms[name].Items {
			if _, ok := out[def.Name]; !ok {
				out[def.Name] = def
			}
		}
	}
	return out
}

func validationErrors(err error) []error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []error{err}
	}
	out := make([]error, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "WorldConfig.")
		switch e.Tag() {
		case "required":
			out = append(out, fmt.Errorf("%s is required", field))
		case "min":
			out = append(out, fmt.Errorf("%s needs at least %s entries", field, e.Param()))
		default:
			out = append(out, fmt.Errorf("%s failed %q", field, e.Tag()))
		}
	}
	return out
}

// suggest returns a did-you-mean hint for the closest candidate, or "".
func suggest(got string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(got, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" || bestDist > suggestLimit(len(best)) {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

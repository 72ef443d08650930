package gui

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/clickquest/internal/assets"
	"github.com/appengine-ltd/clickquest/internal/game"
	legacyui "github.com/appengine-ltd/clickquest/internal/ui"
	uitheme "github.com/appengine-ltd/clickquest/internal/ui/theme"
)

type AppConfig struct {
	Version  string
	Title    string
	FPS      int32
	AssetDir string
	Session  *game.Session
	Logger   *zap.Logger
	// TerminalLogger replaces Logger after switching to terminal mode.
	TerminalLogger *zap.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui := newGameUI(a.cfg)
	return ui.Run()
}

type gameUI struct {
	cfg     AppConfig
	session *game.Session
	logger  *zap.Logger

	textures *textureCache

	width         int32
	height        int32
	launchClassic bool
}

func newGameUI(cfg AppConfig) *gameUI {
	if cfg.Title == "" {
		cfg.Title = "Point and Click Adventure"
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	if cfg.AssetDir == "" {
		cfg.AssetDir = "assets"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TerminalLogger == nil {
		cfg.TerminalLogger = zap.NewNop()
	}
	return &gameUI{
		cfg:     cfg,
		session: cfg.Session,
		logger:  logger,
		width:   assets.ScreenWidth,
		height:  assets.ScreenHeight,
	}
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, ui.cfg.Title)
	rl.SetExitKey(0)
	rl.SetTargetFPS(ui.cfg.FPS)
	initTypography()

	textures, err := newTextureCache(textureCacheSize, ui.loadTexture, rl.UnloadTexture)
	if err != nil {
		rl.CloseWindow()
		return err
	}
	ui.textures = textures
	ui.logger.Info("window opened", zap.String("title", ui.cfg.Title), zap.Int32("fps", ui.cfg.FPS))

	for !ui.session.ShouldQuit() && !rl.WindowShouldClose() {
		ui.update()
		if ui.launchClassic {
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		ui.draw()
		rl.EndDrawing()
	}

	ui.textures.Purge()
	shutdownTypography()
	rl.CloseWindow()
	ui.logger.Info("window closed")

	if ui.launchClassic {
		return legacyui.NewApp(ui.classicConfig()).Run()
	}
	return nil
}

// classicConfig hands the session over to terminal mode and points its
// logging away from the terminal.
func (ui *gameUI) classicConfig() legacyui.AppConfig {
	ui.session.SetLogger(ui.cfg.TerminalLogger)
	return legacyui.AppConfig{
		Version: ui.cfg.Version,
		Title:   ui.cfg.Title,
		Session: ui.session,
		Logger:  ui.cfg.TerminalLogger,
	}
}

func (ui *gameUI) update() {
	if classicRequested() {
		ui.launchClassic = true
		return
	}

	ctx := context.Background()
	p := mousePoint()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		ui.session.LeftClick(ctx, p)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		ui.session.RightClick(p)
	}
	if ui.session.Screen() != game.ScreenGame {
		return
	}
	if dy := rl.GetMouseWheelMove(); dy != 0 {
		ui.session.Wheel(float64(dy))
	}
	if saveRequested() {
		_ = ui.session.SaveGame(ctx)
	}
}

func (ui *gameUI) draw() {
	switch ui.session.Screen() {
	case game.ScreenTitle:
		ui.drawTitle()
	case game.ScreenGame:
		ui.drawGame()
	}
}

func (ui *gameUI) drawTitle() {
	ui.drawBackground("title_bg")
	uitheme.DrawTitle(ui.cfg.Title, ui.width, 110)

	mouse := mousePoint()
	for i, btn := range game.TitleButtons {
		uitheme.DrawButton(toRect(btn.Rect), buttonFill(i), buttonState(btn.Rect, mouse), btn.Label)
	}
	if ui.cfg.Version != "" {
		uitheme.DrawHintText("v"+ui.cfg.Version, 8, ui.height-20)
	}
	uitheme.DrawHintText("F2 terminal mode", ui.width-130, ui.height-20)
	uitheme.DrawStatus(ui.session.Status(), ui.width, ui.height-24)
}

// drawGame paints the room, then the inventory panel, then the tooltip.
func (ui *gameUI) drawGame() {
	w := ui.session.World()
	room := w.Current()
	ui.drawBackground(room.Background)
	for _, obj := range room.Objects {
		ui.drawItem(obj, obj.Bounds())
	}

	uitheme.DrawInventoryPanel(toRect(game.InventoryPanel))
	selected := ui.session.Selected()
	for _, slot := range ui.session.Slots() {
		if !slot.Visible {
			continue
		}
		ui.drawItem(slot.Item, slot.Rect)
		if slot.Item == selected {
			uitheme.DrawSlotHighlight(toRect(slot.Rect))
		}
	}

	if tip := ui.session.Tooltip(); tip != "" {
		o := game.TooltipOrigin
		maxW := ui.width - int32(o.X) - 10
		uitheme.DrawTooltip(uitheme.FitText(tip, uitheme.Type.Tooltip, maxW), int32(o.X), int32(o.Y))
	}
	uitheme.DrawStatus(ui.session.Status(), ui.width, ui.height)
}

func (ui *gameUI) drawBackground(key string) {
	tex := ui.textures.Get(ui.textureKey(key))
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(0, 0, float32(ui.width), float32(ui.height))
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
}

func (ui *gameUI) drawItem(it *game.Item, at game.Rect) {
	tex := ui.textures.Get(ui.textureKey(it.Image))
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	rl.DrawTexturePro(tex, src, toRect(at), rl.Vector2{}, 0, rl.White)
}

func (ui *gameUI) textureKey(asset string) textureKey {
	sw, ok := ui.session.Palette()[asset]
	if !ok {
		sw = missingSwatch
	}
	return textureKey{Asset: asset, Swatch: sw}
}

func (ui *gameUI) loadTexture(key textureKey) rl.Texture2D {
	if tex, ok := loadTextureFile(ui.cfg.AssetDir, key.Asset); ok {
		ui.logger.Debug("texture loaded", zap.String("asset", key.Asset))
		return tex
	}
	return swatchTexture(key.Swatch)
}

func mousePoint() game.Point {
	m := rl.GetMousePosition()
	return game.Point{X: int(m.X), Y: int(m.Y)}
}

func toRect(r game.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

func buttonState(r game.Rect, mouse game.Point) uitheme.ButtonState {
	if r.Contains(mouse) {
		return uitheme.ButtonHovered
	}
	return uitheme.ButtonNormal
}

func buttonFill(i int) rl.Color {
	if i >= 0 && i < len(uitheme.ButtonFills) {
		return uitheme.ButtonFills[i]
	}
	return uitheme.Border
}

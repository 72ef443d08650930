// Package ui is the terminal frontend. It drives the same game.Session as
// the window, naming things instead of clicking on them.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/appengine-ltd/clickquest/internal/game"
	"github.com/appengine-ltd/clickquest/internal/parser"
)

type AppConfig struct {
	Version string
	Title   string
	Session *game.Session
	Logger  *zap.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m := newMenuModel(a.cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	amber       = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	sidePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1)
)

// --- Menu model ---

type menuModel struct {
	cfg     AppConfig
	session *game.Session
	parser  *parser.Parser
	logger  *zap.Logger

	idx int

	input      textarea.Model
	log        viewport.Model
	history    []string
	seen       int
	pending    []parser.Intent
	lastEntity string

	width  int
	height int
}

func newMenuModel(cfg AppConfig) menuModel {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ta := textarea.New()
	ta.Placeholder = "use knife on rope"
	ta.Focus()
	ta.Prompt = brightGreen.Render("> ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	vp := viewport.New(50, 16)
	vp.MouseWheelEnabled = true

	return menuModel{
		cfg:     cfg,
		session: cfg.Session,
		parser:  parser.New(),
		logger:  logger,
		input:   ta,
		log:     vp,
	}
}

func (m menuModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(size.Width, size.Height)
		return m, nil
	}
	if m.session.Screen() == game.ScreenTitle {
		return m.updateTitle(msg)
	}
	return m.updateGame(msg)
}

func (m *menuModel) resize(w, h int) {
	m.width, m.height = w, h
	logW := max(w-sideWidth-4, 20)
	m.log.Width = logW
	m.log.Height = max(h-6, 4)
	m.input.SetWidth(logW)
	m.refreshLog()
}

func (m menuModel) updateTitle(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	n := len(game.TitleButtons)
	switch key.String() {
	case "ctrl+c", "q":
		m.session.Quit()
		return m, tea.Quit
	case "up", "k":
		m.idx = (m.idx + n - 1) % n
	case "down", "j":
		m.idx = (m.idx + 1) % n
	case "n":
		return m.press(0)
	case "l":
		return m.press(1)
	case "enter":
		return m.press(m.idx)
	}
	return m, nil
}

// press clicks the centre of a title button so the terminal and the window
// share one code path.
func (m menuModel) press(i int) (tea.Model, tea.Cmd) {
	m.session.LeftClick(context.Background(), game.TitleButtons[i].Rect.Center())
	m.collect()
	if m.session.ShouldQuit() {
		return m, tea.Quit
	}
	if m.session.Screen() == game.ScreenGame {
		m.describeRoom()
	}
	m.refreshLog()
	return m, nil
}

func (m menuModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC:
			m.session.Quit()
			return m, tea.Quit
		case tea.KeyCtrlS:
			m.run("save")
			return m, nil
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			m.run(line)
			if m.session.ShouldQuit() {
				return m, tea.Quit
			}
			return m, nil
		}
	}
	m.input, tiCmd = m.input.Update(msg)
	m.log, vpCmd = m.log.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

func (m menuModel) View() string {
	if m.session.Screen() == game.ScreenTitle {
		return m.titleView()
	}
	return m.gameView()
}

func (m menuModel) titleView() string {
	title := m.cfg.Title
	if title == "" {
		title = "Point and Click Adventure"
	}
	var b strings.Builder
	b.WriteString(brightGreen.Render(strings.ToUpper(title)))
	if m.cfg.Version != "" {
		b.WriteString(dimGreen.Render("  v" + m.cfg.Version))
	}
	b.WriteString("\n")
	b.WriteString(border.Render(strings.Repeat("-", 40)) + "\n\n")

	for i, btn := range game.TitleButtons {
		cursor := "  "
		line := green.Render(btn.Label)
		if i == m.idx {
			cursor = "> "
			line = brightGreen.Render(btn.Label)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n" + border.Render(strings.Repeat("-", 40)) + "\n")
	b.WriteString(dimGreen.Render("↑/↓ to move, Enter to select, q to quit") + "\n")
	if status := m.session.Status(); status != "" {
		b.WriteString("\n" + green.Render(status) + "\n")
	}
	return b.String()
}

func (m menuModel) gameView() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.log.View(),
		border.Render(strings.Repeat("-", max(m.log.Width, 10))),
		m.input.View(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.sidePanel())
}

// collect copies messages the session reported since the last call into
// the history.
func (m *menuModel) collect() {
	n := m.session.Seq() - m.seen
	m.seen = m.session.Seq()
	if n <= 0 {
		return
	}
	msgs := m.session.Messages()
	if n > len(msgs) {
		n = len(msgs)
	}
	for _, msg := range msgs[len(msgs)-n:] {
		m.say(msg)
	}
}

func (m *menuModel) say(lines ...string) {
	m.history = append(m.history, lines...)
	if len(m.history) > maxHistory {
		m.history = append([]string(nil), m.history[len(m.history)-maxHistory:]...)
	}
}

func (m *menuModel) echo(line string) {
	m.say(dimGreen.Render("> " + line))
}

const maxHistory = 300

func (m *menuModel) refreshLog() {
	m.log.SetContent(renderHistory(m.history, m.log.Width))
	m.log.GotoBottom()
}

package ui

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/appengine-ltd/clickquest/internal/game"
	"github.com/appengine-ltd/clickquest/internal/parser"
)

const sideWidth = 26

var titleCaser = cases.Title(language.English)

var helpLines = []string{
	"look                   describe the room",
	"inventory              list what you carry",
	"take <item>            pick something up",
	"go <door|room>         walk through an exit",
	"use <item> on <thing>  use a held item",
	"cut/unlock <thing> with <item>",
	"inspect <thing>        read its description",
	"select <item>          ready a held item",
	"save, load, new, quit",
}

// run parses and executes one command line.
func (m *menuModel) run(line string) {
	m.echo(line)
	defer m.refreshLog()

	if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && len(m.pending) > 0 {
		if n < 1 || n > len(m.pending) {
			m.say(fmt.Sprintf("Pick 1-%d.", len(m.pending)))
			return
		}
		intent := m.pending[n-1]
		m.pending = nil
		m.execute(intent)
		return
	}
	m.pending = nil

	intent := m.parser.Parse(m.parseContext(), line)
	m.logger.Debug("parsed command",
		zap.String("verb", intent.Verb),
		zap.Strings("args", intent.Args),
		zap.Float64("confidence", intent.Confidence))
	if intent.Clarify != nil {
		m.say(intent.Clarify.Prompt)
		for i, opt := range intent.Clarify.Options {
			m.say(fmt.Sprintf("  %d. %s", i+1, parser.IntentToCommandString(opt)))
		}
		m.pending = intent.Clarify.Options
		return
	}
	m.execute(intent)
}

func (m *menuModel) parseContext() parser.ParseContext {
	ctx := parser.ParseContext{LastEntity: m.lastEntity}
	w := m.session.World()
	if w == nil {
		return ctx
	}
	for _, it := range w.Player.Inventory {
		ctx.Inventory = append(ctx.Inventory, it.Name)
	}
	room := w.Current()
	for _, it := range room.Objects {
		ctx.Nearby = append(ctx.Nearby, it.Name)
	}
	for _, door := range slices.Sorted(maps.Keys(room.Exits)) {
		if room.Find(door) != nil {
			ctx.Exits = append(ctx.Exits, door, room.Exits[door])
		}
	}
	return ctx
}

func (m *menuModel) execute(intent parser.Intent) {
	ctx := context.Background()
	defer m.collect()

	arg := ""
	if len(intent.Args) > 0 {
		arg = intent.Args[0]
	}
	switch intent.Verb {
	case "take", "use", "go", "inspect", "select":
		if arg == "" {
			m.say(fmt.Sprintf("What should I %s?", intent.Verb))
			return
		}
	}

	switch intent.Verb {
	case "help":
		m.say(helpLines...)
	case "look":
		m.describeRoom()
	case "inventory":
		m.describeInventory()
	case "take":
		m.take(arg)
	case "use":
		m.use(arg, intent.Target)
	case "go":
		m.travel(arg)
	case "inspect":
		m.inspect(arg)
	case "select":
		m.selectItem(arg)
	case "save":
		_ = m.session.SaveGame(ctx)
	case "load":
		if m.session.LoadGame(ctx) == nil {
			m.describeRoom()
		}
	case "new":
		if m.session.NewGame(ctx) == nil {
			m.describeRoom()
		}
	case "quit":
		m.session.Quit()
	default:
		m.say("I don't know how to do that.")
	}
}

func (m *menuModel) take(name string) {
	room := m.session.World().Current()
	obj := findObject(room, name)
	if obj == nil {
		m.say(fmt.Sprintf("You don't see a %s here.", name))
		return
	}
	if _, ok := room.Destination(obj.Name); ok {
		m.say(fmt.Sprintf("The %s won't budge.", obj.Name))
		return
	}
	m.lastEntity = obj.Name
	m.session.Deselect()
	m.session.Activate(obj)
}

func (m *menuModel) use(toolName, targetName string) {
	w := m.session.World()
	i, tool := findHeld(w.Player, toolName)
	if tool == nil {
		m.say(fmt.Sprintf("You aren't holding a %s.", toolName))
		return
	}
	target := findObject(w.Current(), targetName)
	if target == nil {
		if _, held := findHeld(w.Player, targetName); held != nil && held != tool {
			target = held
		}
	}
	if target == nil {
		m.say(fmt.Sprintf("You don't see a %s here.", targetName))
		return
	}
	m.lastEntity = target.Name
	m.session.SelectInventory(i)
	m.session.Activate(target)
}

func (m *menuModel) travel(name string) {
	room := m.session.World().Current()
	for _, door := range slices.Sorted(maps.Keys(room.Exits)) {
		if !sameName(door, name) && !sameName(room.Exits[door], name) {
			continue
		}
		if obj := room.Find(door); obj != nil {
			m.session.Deselect()
			m.session.Activate(obj)
			m.describeRoom()
			return
		}
	}
	m.say("You can't go that way.")
}

func (m *menuModel) inspect(name string) {
	w := m.session.World()
	it := findObject(w.Current(), name)
	if it == nil {
		_, it = findHeld(w.Player, name)
	}
	if it == nil {
		m.say(fmt.Sprintf("You don't see a %s here.", name))
		return
	}
	m.lastEntity = it.Name
	m.session.Inspect(it)
	m.say(m.session.Tooltip())
}

func (m *menuModel) selectItem(name string) {
	i, it := findHeld(m.session.World().Player, name)
	if it == nil {
		m.say(fmt.Sprintf("You aren't holding a %s.", name))
		return
	}
	m.lastEntity = it.Name
	m.session.SelectInventory(i)
	m.say(fmt.Sprintf("You ready the %s.", it.Name))
}

func (m *menuModel) describeRoom() {
	w := m.session.World()
	if w == nil {
		return
	}
	m.collect()
	room := w.Current()
	header := titleCaser.String(room.Name)
	if room.State != "" {
		header += " (" + room.State + ")"
	}
	m.say(brightGreen.Render(header))
	if len(room.Objects) == 0 {
		m.say("There is nothing here.")
	} else {
		m.say("You see: " + strings.Join(names(room.Objects), ", ") + ".")
	}
	var exits []string
	for _, door := range slices.Sorted(maps.Keys(room.Exits)) {
		if room.Find(door) != nil {
			exits = append(exits, fmt.Sprintf("%s to the %s", door, room.Exits[door]))
		}
	}
	if len(exits) > 0 {
		m.say("Exits: " + strings.Join(exits, ", ") + ".")
	}
}

func (m *menuModel) describeInventory() {
	inv := m.session.World().Player.Inventory
	if len(inv) == 0 {
		m.say("You are carrying nothing.")
		return
	}
	m.say("You are carrying: " + strings.Join(names(inv), ", ") + ".")
}

func (m menuModel) sidePanel() string {
	var b strings.Builder
	w := m.session.World()
	b.WriteString(brightGreen.Render("INVENTORY") + "\n")
	if w == nil || len(w.Player.Inventory) == 0 {
		b.WriteString(dimGreen.Render("(empty)") + "\n")
	} else {
		for _, it := range w.Player.Inventory {
			marker := "  "
			line := green.Render(it.Name)
			if it == m.session.Selected() {
				marker = "* "
				line = amber.Render(it.Name)
			}
			b.WriteString(marker + line + "\n")
		}
	}
	if w != nil {
		b.WriteString("\n" + brightGreen.Render(strings.ToUpper(w.Current().Name)) + "\n")
		for _, it := range w.Current().Objects {
			b.WriteString("  " + green.Render(it.Name) + "\n")
		}
	}
	if tip := m.session.Tooltip(); tip != "" {
		b.WriteString("\n" + wordwrap.String(tip, sideWidth-4) + "\n")
	}
	b.WriteString("\n" + dimGreen.Render("ctrl+s save  ctrl+c quit"))
	return sidePanelStyle.Width(sideWidth).Render(b.String())
}

func renderHistory(lines []string, width int) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(wordwrap.String(line, max(width-1, 10)))
		b.WriteByte('\n')
	}
	return b.String()
}

func names(items []*game.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

// Typed names come back from the parser normalised, so they are matched
// against item names in the same form.
func sameName(a, b string) bool {
	return parser.Normalise(a) == parser.Normalise(b)
}

func findObject(room *game.Room, name string) *game.Item {
	for i := len(room.Objects) - 1; i >= 0; i-- {
		if sameName(room.Objects[i].Name, name) {
			return room.Objects[i]
		}
	}
	return nil
}

func findHeld(p *game.Player, name string) (int, *game.Item) {
	for i, it := range p.Inventory {
		if sameName(it.Name, name) {
			return i, it
		}
	}
	return -1, nil
}

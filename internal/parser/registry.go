package parser

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// phrase is one way of writing a verb: the canonical name or an alias.
type phrase struct {
	verb  string
	text  string
	words []string
}

func (p phrase) isAlias() bool { return p.text != p.verb }

// Registry maps typed phrases onto command definitions.
type Registry struct {
	commands map[string]CommandDef
	phrases  []phrase
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]CommandDef)}
}

// RegisterCommand adds c under its canonical name and every alias. A
// missing HandlerKey defaults to the canonical name.
func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if c.HandlerKey == "" {
		c.HandlerKey = c.Canonical
	}
	r.commands[c.Canonical] = c

	for _, text := range append([]string{c.Canonical}, c.Aliases...) {
		text = normaliseInput(text)
		if text == "" {
			continue
		}
		r.phrases = append(r.phrases, phrase{verb: c.Canonical, text: text, words: tokenise(text)})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

type commandCandidate struct {
	Canonical string
	Alias     string
	Consumed  int
	Score     float64
	Source    string
}

// Match scores, best first: exact canonical 1.0, exact alias 0.97, prefix
// of a one-word phrase 0.9, then edit distance from 0.72 down.
const (
	scoreExact  = 1.0
	scoreAlias  = 0.97
	scorePrefix = 0.9
	scoreFuzzy  = 0.72
	fuzzyStep   = 0.08
	maxAltVerbs = 4
)

// matchCommand finds the verb the leading tokens name. It returns the best
// candidate and up to four runners-up for other verbs.
func (r *Registry) matchCommand(tokens []string) (commandCandidate, []commandCandidate) {
	if len(tokens) == 0 {
		return commandCandidate{}, nil
	}
	line := strings.Join(tokens, " ")
	var cands []commandCandidate
	for _, p := range r.phrases {
		if c, ok := scorePhrase(tokens, line, p); ok {
			cands = append(cands, c)
		}
	}
	if len(cands) == 0 {
		return commandCandidate{}, nil
	}

	slices.SortStableFunc(cands, func(a, b commandCandidate) int {
		if a.Score != b.Score {
			return cmp.Compare(b.Score, a.Score)
		}
		if a.Consumed != b.Consumed {
			return cmp.Compare(b.Consumed, a.Consumed)
		}
		return strings.Compare(a.Canonical, b.Canonical)
	})
	return cands[0], runnersUp(cands)
}

func scorePhrase(tokens []string, line string, p phrase) (commandCandidate, bool) {
	if len(p.words) == 0 {
		return commandCandidate{}, false
	}
	c := commandCandidate{Canonical: p.verb, Alias: p.text}
	n := min(len(tokens), len(p.words))
	lead := strings.Join(tokens[:n], " ")

	switch {
	case n == len(p.words) && lead == p.text:
		c.Consumed, c.Score, c.Source = n, scoreExact, "exact"
		if p.isAlias() {
			c.Score, c.Source = scoreAlias, "alias"
		}
		return c, true
	case len(p.words) == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(p.text, tokens[0]):
		c.Consumed, c.Score, c.Source = 1, scorePrefix, "prefix"
		return c, true
	}

	// Multi-word phrases compare the same number of words when the input
	// has them.
	if len(p.words) > 1 && len(tokens) >= len(p.words) {
		n = len(p.words)
		lead = strings.Join(tokens[:n], " ")
	}
	if n == 0 || len(lead) < 3 {
		return commandCandidate{}, false
	}
	dist := levenshtein.ComputeDistance(lead, p.text)
	if dist > levenshteinLimit(len(p.text)) {
		return commandCandidate{}, false
	}
	c.Consumed, c.Source = n, "lev"
	c.Score = scoreFuzzy - fuzzyStep*float64(dist)
	if strings.Contains(line, p.text) {
		c.Score += 0.04
	}
	if p.isAlias() {
		c.Score += 0.03
	}
	return c, true
}

// runnersUp keeps the best candidate of each other verb.
func runnersUp(sorted []commandCandidate) []commandCandidate {
	seen := map[string]bool{sorted[0].Canonical: true}
	var alts []commandCandidate
	for _, c := range sorted[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) == maxAltVerbs {
			break
		}
	}
	return alts
}

// levenshteinLimit is the largest edit distance accepted for a word of the
// given length.
func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "help"},
		{Canonical: "look", Aliases: []string{"l", "look around", "where am i", "room"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "look"},
		{Canonical: "inventory", Aliases: []string{"inv", "items", "pockets"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "inventory"},
		{Canonical: "take", Aliases: []string{"get", "grab", "pickup", "pick up"}, MinArgs: 1, MaxArgs: 1, HandlerKey: "take"},
		{Canonical: "use", Aliases: []string{"apply", "combine"}, MinArgs: 1, MaxArgs: 2, HandlerKey: "use"},
		{Canonical: "cut", Aliases: []string{"slice", "chop"}, MinArgs: 1, MaxArgs: 2, HandlerKey: "use", Reversed: true},
		{Canonical: "unlock", Aliases: []string{"open"}, MinArgs: 1, MaxArgs: 2, HandlerKey: "use", Reversed: true},
		{Canonical: "go", Aliases: []string{"walk", "enter", "move", "travel", "head"}, MinArgs: 1, MaxArgs: 1, HandlerKey: "go"},
		{Canonical: "inspect", Aliases: []string{"examine", "x", "check", "describe"}, MinArgs: 1, MaxArgs: 1, HandlerKey: "inspect"},
		{Canonical: "select", Aliases: []string{"hold", "wield", "ready"}, MinArgs: 1, MaxArgs: 1, HandlerKey: "select"},

		// Title and session commands.
		{Canonical: "save", Aliases: []string{"save game"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "save"},
		{Canonical: "load", Aliases: []string{"load game", "restore"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "load"},
		{Canonical: "new", Aliases: []string{"new game", "restart"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "new"},
		{Canonical: "quit", Aliases: []string{"q", "exit", "bye"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "quit"},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}

package parser

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// scopeBoost favours names the verb most likely refers to, such as held
// items for "use".
const scopeBoost = 0.08

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

// Confidence thresholds.
const (
	minVerbScore   = 0.5
	minIntentScore = 0.52
	ambiguityGap   = 0.05
)

const (
	askEmpty     = "Enter a command, or help."
	askUnknown   = "I couldn't map that to a command. Try help, look, inventory, take, use, go, inspect, save, load."
	askRephrase  = "I can't tell what you mean. Try naming the thing exactly."
	askAmbiguous = "Did you mean:"
)

// Parse turns one typed line into an intent. When the line is ambiguous
// or incomplete the intent carries a clarify question instead.
func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{Raw: raw, Normalised: normaliseInput(raw), Kind: Unknown}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: askEmpty}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	best, others := p.registry.matchCommand(tokens)
	if best.Canonical == "" || best.Score < minVerbScore {
		if guess := inferFreeTextIntent(ctx, raw, intent.Normalised); guess != nil {
			return *guess
		}
		intent.Clarify = &ClarifyQuestion{Prompt: askUnknown}
		return intent
	}
	if len(others) > 0 && best.Score-others[0].Score < ambiguityGap && others[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt:  askAmbiguous,
			Options: []Intent{p.verbOption(raw, best), p.verbOption(raw, others[0])},
		}
		return intent
	}

	def, _ := p.registry.command(best.Canonical)
	rest := tokens[min(best.Consumed, len(tokens)):]
	// "look at X" is inspect.
	if def.HandlerKey == "look" && len(rest) > 1 && rest[0] == "at" {
		def, _ = p.registry.command("inspect")
		rest = rest[1:]
	}
	rest = stripArticles(rest)

	intent.Verb = def.HandlerKey
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(best.Score)

	switch {
	case def.MaxArgs == 0:
		if len(rest) > 0 {
			intent.Confidence = clampScore(intent.Confidence - 0.05)
		}
		return intent
	case intent.Verb == "use":
		return p.parseUse(ctx, def, intent, rest)
	case len(rest) == 0:
		return needsArgument(ctx, def, intent)
	}

	entity, score, clarify := resolvePhrase(rest, ctx, intent.Verb)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = []string{entity}
	return settle(intent, score)
}

// settle blends the verb and object scores and asks for a rephrase when
// the result is too weak to act on.
func settle(intent Intent, objectScore float64) Intent {
	intent.Confidence = clampScore(intent.Confidence*0.75 + objectScore*0.25)
	if intent.Confidence < minIntentScore {
		intent.Clarify = &ClarifyQuestion{Prompt: askRephrase}
	}
	return intent
}

func (p *Parser) verbOption(raw string, c commandCandidate) Intent {
	def, _ := p.registry.command(c.Canonical)
	return Intent{
		Raw:        raw,
		Normalised: c.Canonical,
		Kind:       commandKind(def.HandlerKey),
		Verb:       def.HandlerKey,
		Confidence: c.Score,
	}
}

// parseUse fills Args[0] with the held item and Target with what it is used
// on. Reversed verbs name the target first.
func (p *Parser) parseUse(ctx ParseContext, def CommandDef, intent Intent, tokens []string) Intent {
	left, right, _ := splitConnector(tokens)
	toolTokens, targetTokens := left, right
	if def.Reversed {
		toolTokens, targetTokens = right, left
	}

	var tool, target string
	var toolClarify, targetClarify *ClarifyQuestion
	score := 0.9
	if len(toolTokens) > 0 {
		var s float64
		tool, s, toolClarify = resolveIn(toolTokens, ctx, ctx.Inventory, ctx.Inventory)
		score = min(score, s)
	}
	if len(targetTokens) > 0 {
		var s float64
		target, s, targetClarify = resolveIn(targetTokens, ctx, mergeUnique(ctx.Nearby, ctx.Inventory), ctx.Nearby)
		score = min(score, s)
	}
	if toolClarify != nil || targetClarify != nil {
		clarify := toolClarify
		if clarify == nil {
			clarify = targetClarify
		}
		for i := range clarify.Options {
			opt := &clarify.Options[i]
			opt.Verb = "use"
			if clarify == toolClarify {
				opt.Target = target
			} else {
				opt.Target = opt.Args[0]
				opt.Args = []string{tool}
			}
		}
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}

	switch {
	case tool == "" && target == "":
		return needsArgument(ctx, def, intent)
	case tool == "":
		intent.Clarify = &ClarifyQuestion{
			Prompt:  fmt.Sprintf("What should I use on the %s?", target),
			Options: useOptions(ctx.Inventory, nil, target),
		}
		intent.Confidence = 0.46
		return intent
	case target == "":
		intent.Clarify = &ClarifyQuestion{
			Prompt:  fmt.Sprintf("Use the %s on what?", tool),
			Options: useOptions([]string{tool}, ctx.Nearby, ""),
		}
		intent.Confidence = 0.46
		return intent
	}

	intent.Args = []string{tool}
	intent.Target = target
	return settle(intent, score)
}

// needsArgument offers the names in scope for a verb typed on its own.
func needsArgument(ctx ParseContext, def CommandDef, intent Intent) Intent {
	intent.Confidence = 0.46
	intent.Clarify = &ClarifyQuestion{
		Prompt:  fmt.Sprintf("What should I %s?", def.Canonical),
		Options: buildEntityOptions(ctx, intent.Verb, 5),
	}
	if len(intent.Clarify.Options) == 0 {
		intent.Confidence = 0.42
		intent.Clarify.Prompt = fmt.Sprintf("There is nothing here to %s.", def.Canonical)
	}
	return intent
}

func useOptions(tools, targets []string, target string) []Intent {
	options := make([]Intent, 0, 5)
	add := func(tool, target string) {
		if len(options) < 5 && tool != target {
			options = append(options, Intent{Kind: Command, Verb: "use", Args: []string{tool}, Target: target, Confidence: 0.88})
		}
	}
	if target != "" {
		for _, tool := range tools {
			add(normaliseInput(tool), target)
		}
		return options
	}
	for _, t := range targets {
		add(normaliseInput(tools[0]), normaliseInput(t))
	}
	return options
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "look", "inspect", "inventory":
		return Query
	default:
		return Command
	}
}

// pool returns the names a verb's object is resolved against, and the names
// that get a scope boost.
func pool(ctx ParseContext, verb string) ([]string, []string) {
	switch verb {
	case "take":
		return ctx.Nearby, ctx.Nearby
	case "select":
		return ctx.Inventory, ctx.Inventory
	case "go":
		return ctx.Exits, nil
	default:
		return mergeUnique(ctx.Nearby, ctx.Inventory), ctx.Inventory
	}
}

func resolvePhrase(tokens []string, ctx ParseContext, verb string) (string, float64, *ClarifyQuestion) {
	all, boost := pool(ctx, verb)
	name, score, clarify := resolveIn(tokens, ctx, all, boost)
	if clarify != nil {
		for i := range clarify.Options {
			clarify.Options[i].Verb = verb
			clarify.Options[i].Kind = commandKind(verb)
		}
	}
	return name, score, clarify
}

// resolveIn maps a phrase onto one of candidates. A phrase that matches
// nothing is returned as typed with a low score so the caller can report it.
func resolveIn(tokens []string, ctx ParseContext, candidates, boost []string) (string, float64, *ClarifyQuestion) {
	phrase := strings.Join(tokens, " ")
	if len(tokens) == 1 && isPronoun(tokens[0]) {
		if strings.TrimSpace(ctx.LastEntity) == "" {
			return "", 0.4, &ClarifyQuestion{Prompt: "What does that pronoun refer to?"}
		}
		return normaliseInput(ctx.LastEntity), 0.82, nil
	}
	entity, confidence, tie := resolveEntity(phrase, candidates, boost)
	if tie && len(entity) >= 2 {
		options := make([]Intent, 0, 2)
		for idx := 0; idx < 2; idx++ {
			options = append(options, Intent{
				Kind:       Command,
				Args:       []string{entity[idx]},
				Confidence: confidence - float64(idx)*0.01,
			})
		}
		return "", 0.52, &ClarifyQuestion{Prompt: "Which one?", Options: options}
	}
	if len(entity) == 1 {
		return entity[0], confidence, nil
	}
	return phrase, 0.55, nil
}

func resolveEntity(token string, candidates, boost []string) ([]string, float64, bool) {
	n := normaliseInput(token)
	if n == "" {
		return nil, 0, false
	}
	all := mergeUnique(candidates, nil)
	boosted := mergeUnique(boost, nil)
	return bestMatches(n, all, boosted)
}

// nameScore rates how well a typed word names cand, on the same scale as
// verb matching.
func nameScore(token, cand string) (float64, bool) {
	switch {
	case token == cand:
		return scoreExact, true
	case len(token) >= 2 && strings.HasPrefix(cand, token):
		return scorePrefix, true
	}
	dist := levenshtein.ComputeDistance(token, cand)
	if dist > levenshteinLimit(len(cand)) {
		return 0, false
	}
	return scoreFuzzy - fuzzyStep*float64(dist), true
}

type scoredName struct {
	name  string
	score float64
}

// bestMatches returns the best candidate for token, or the top two when
// they are too close to call.
func bestMatches(token string, all []string, boost []string) ([]string, float64, bool) {
	var results []scoredName
	for _, cand := range all {
		score, ok := nameScore(token, normaliseInput(cand))
		if !ok {
			continue
		}
		if slices.Contains(boost, cand) {
			score += scopeBoost
		}
		results = append(results, scoredName{name: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	slices.SortStableFunc(results, func(a, b scoredName) int {
		if a.score != b.score {
			return cmp.Compare(b.score, a.score)
		}
		return strings.Compare(a.name, b.name)
	})

	best := results[0]
	if len(results) > 1 && best.score-results[1].score < 0.05 && results[1].score > 0.6 {
		return []string{best.name, results[1].name}, best.score, true
	}
	return []string{best.name}, best.score, false
}

func buildEntityOptions(ctx ParseContext, verb string, maxOptions int) []Intent {
	var candidates []string
	switch verb {
	case "take":
		candidates = ctx.Nearby
	case "go":
		candidates = ctx.Exits
	case "inspect":
		candidates = mergeUnique(ctx.Nearby, ctx.Inventory)
	default:
		candidates = ctx.Inventory
	}
	seen := map[string]bool{}
	options := make([]Intent, 0, maxOptions)
	for _, entity := range candidates {
		n := normaliseInput(entity)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		options = append(options, Intent{
			Kind:       commandKind(verb),
			Verb:       verb,
			Args:       []string{n},
			Confidence: 0.88,
		})
		if len(options) >= maxOptions {
			break
		}
	}
	return options
}

// freeText maps whole phrases that carry no verb of their own.
var freeText = []struct {
	phrases    []string
	kind       IntentKind
	verb       string
	confidence float64
}{
	{[]string{"what do i have", "what have i got", "what am i holding", "my inventory", "empty my pockets"}, Query, "inventory", 0.92},
	{[]string{"where am i", "look around", "look about", "what is here", "what s here"}, Query, "look", 0.88},
	{[]string{"start over", "new game", "begin again"}, Command, "new", 0.84},
	{[]string{"save my game", "save the game", "save progress"}, Command, "save", 0.86},
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	guess := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{Raw: raw, Normalised: normalised, Kind: kind, Verb: verb, Args: args, Confidence: clampScore(confidence)}
	}
	padded := " " + normalised + " "
	for _, rule := range freeText {
		for _, ph := range rule.phrases {
			if strings.Contains(padded, " "+ph+" ") {
				return guess(rule.kind, rule.verb, nil, rule.confidence)
			}
		}
	}

	// "leave through the door"
	tokens := tokenise(normalised)
	if i := slices.Index(tokens, "through"); i >= 0 {
		rest := stripArticles(tokens[i+1:])
		if len(rest) == 0 {
			return nil
		}
		if m, confidence, tie := resolveEntity(strings.Join(rest, " "), ctx.Exits, nil); len(m) == 1 && !tie {
			return guess(Command, "go", m, confidence*0.9)
		}
	}
	return nil
}

// mergeUnique normalises a then b, dropping blanks and repeats.
func mergeUnique(a, b []string) []string {
	var out []string
	for _, v := range slices.Concat(a, b) {
		if n := normaliseInput(v); n != "" && !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

func clampScore(v float64) float64 {
	return min(max(v, 0), 1)
}

// IntentToCommandString renders an intent back into the command line it
// stands for, e.g. "use knife on rope".
func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args)+2)
	for _, arg := range intent.Args {
		n := normaliseInput(arg)
		if n != "" {
			args = append(args, n)
		}
	}
	if t := normaliseInput(intent.Target); t != "" {
		args = append(args, "on", t)
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}

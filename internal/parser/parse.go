package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxEntityWords bounds how many words a single item name may span.
const maxEntityWords = 3

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Commands() []CommandDef {
	return p.registry.Commands()
}

// Normalise exposes the parser's folding so callers can key names the same way.
func Normalise(raw string) string {
	return normaliseInput(raw)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		if inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised); inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try help, status, cycle, pack, trash, give up, buy, start, save.",
		}
		return intent
	}

	if len(alternates) > 0 && alternates[0].Consumed >= cmdMatch.Consumed &&
		(cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				{Raw: raw, Normalised: cmdMatch.Canonical, Kind: commandKind(cmdMatch.Canonical), Verb: cmdMatch.Canonical, Confidence: cmdMatch.Score},
				{Raw: raw, Normalised: alternates[0].Canonical, Kind: commandKind(alternates[0].Canonical), Verb: alternates[0].Canonical, Confidence: alternates[0].Score},
			},
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}
	if intent.Verb != "pack" {
		argsTokens, intent.Quantity = splitQuantity(argsTokens)
	}

	def, _ := p.registry.command(intent.Verb)
	resolvedArgs, clarify, argScore := resolveArgs(ctx, def, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolvedArgs
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if len(intent.Args) < def.MinArgs {
		if options := buildEntityOptions(ctx, def.Canonical, 5); len(options) > 0 {
			intent.Clarify = &ClarifyQuestion{
				Prompt:  fmt.Sprintf("What should I %s?", def.Canonical),
				Options: options,
			}
			intent.Confidence = 0.46
			return intent
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}

	if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 && intent.Clarify == nil {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "status", "shop":
		return Query
	default:
		return Command
	}
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for _, token := range tokens {
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				q = candidate
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}

func resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}
	pool := entityPool(ctx, def.Canonical)
	if len(pool) == 0 {
		return append([]string(nil), args...), nil, 0.9
	}

	resolved := make([]string, 0, len(args))
	score := 0.9
	repeat := 1
	for i := 0; i < len(args); i++ {
		token := args[i]
		if isFiller(token) {
			continue
		}
		if def.Canonical == "pack" {
			if q := parseQuantityToken(token); q != nil {
				repeat = q.N
				continue
			}
		}
		if isPronoun(token) {
			if strings.TrimSpace(ctx.LastEntity) == "" {
				return nil, &ClarifyQuestion{Prompt: "What does that refer to?"}, 0.4
			}
			resolved = appendRepeated(resolved, normaliseInput(ctx.LastEntity), repeat)
			repeat = 1
			score -= 0.08
			continue
		}
		// Greedily prefer the longest run of words that names an item exactly.
		joined := token
		for width := min(maxEntityWords, len(args)-i); width > 1; width-- {
			try := strings.Join(args[i:i+width], " ")
			if _, s, _ := bestMatches(try, pool); s > 0.9 {
				joined = try
				i += width - 1
				break
			}
		}
		entity, confidence, tie := bestMatches(joined, pool)
		if tie && len(entity) >= 2 {
			options := make([]Intent, 0, 2)
			for idx := 0; idx < 2; idx++ {
				options = append(options, Intent{
					Kind:       commandKind(def.Canonical),
					Verb:       def.Canonical,
					Args:       []string{entity[idx]},
					Confidence: confidence - float64(idx)*0.01,
				})
			}
			return nil, &ClarifyQuestion{
				Prompt:  fmt.Sprintf("Which %q did you mean?", joined),
				Options: options,
			}, 0.52
		}
		if len(entity) == 1 {
			resolved = appendRepeated(resolved, entity[0], repeat)
			repeat = 1
			score = minScore(score, confidence)
			continue
		}
		return nil, &ClarifyQuestion{Prompt: fmt.Sprintf("I don't know %q.", joined)}, 0.4
	}
	return resolved, nil, clampScore(score)
}

func appendRepeated(out []string, value string, n int) []string {
	for k := 0; k < max(n, 1); k++ {
		out = append(out, value)
	}
	return out
}

func entityPool(ctx ParseContext, verb string) []string {
	switch verb {
	case "pack":
		return mergeUnique(ctx.Menu, nil)
	case "buy":
		return mergeUnique(ctx.Shop, nil)
	default:
		return nil
	}
}

func bestMatches(token string, all []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}
	singular := strings.TrimSuffix(token, "s")

	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case singular != token && singular == cand:
			score = 0.98
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func buildEntityOptions(ctx ParseContext, verb string, maxOptions int) []Intent {
	pool := entityPool(ctx, verb)
	options := make([]Intent, 0, maxOptions)
	for _, entity := range pool {
		options = append(options, Intent{
			Kind:       commandKind(verb),
			Verb:       verb,
			Args:       []string{entity},
			Confidence: 0.88,
		})
		if len(options) >= maxOptions {
			break
		}
	}
	return options
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n, "i give up", "we give up", "call it a day", "shut the kitchen", "close the kitchen") {
		return makeIntent(Command, "give up", nil, 0.86)
	}
	if containsAnyPhrase(n, "next order", "other ticket", "next one", "switch ticket") {
		return makeIntent(Command, "cycle", nil, 0.84)
	}
	if containsAnyPhrase(n, "how am i doing", "how much money", "what is on the rail", "whats on the rail") {
		return makeIntent(Query, "status", nil, 0.88)
	}
	if containsAnyPhrase(n, "throw it out", "throw away", "bin it", "start over") {
		return makeIntent(Command, "trash", nil, 0.8)
	}
	if containsAnyPhrase(n, "open up", "open the doors", "lets go", "let s go") {
		return makeIntent(Command, "start", nil, 0.8)
	}

	// "one burger and a cola" with no verb reads as a bag to pack.
	if len(ctx.Menu) > 0 {
		def := CommandDef{Canonical: "pack"}
		args, clarify, score := resolveArgs(ctx, def, tokenise(n))
		if clarify == nil && len(args) > 0 && score >= 0.7 {
			return makeIntent(Command, "pack", args, score*0.9)
		}
	}
	if containsWord(n, "buy") || containsWord(n, "order") {
		return makeIntent(Query, "shop", nil, 0.7)
	}
	return nil
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func containsWord(value, word string) bool {
	w := normaliseInput(word)
	if w == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+w+" ")
}

func mergeUnique(a, b []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(a)+len(b))
	add := func(list []string) {
		for _, v := range list {
			n := normaliseInput(v)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	add(a)
	add(b)
	return out
}

func minScore(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clampScore(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// IntentToCommandString renders an intent back into console form.
func IntentToCommandString(intent Intent) string {
	parts := []string{intent.Verb}
	if intent.Quantity != nil {
		parts = append(parts, fmt.Sprintf("%d", intent.Quantity.N))
	}
	parts = append(parts, intent.Args...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

package parser

import (
	"slices"
	"strings"
	"unicode"
)

// normaliseInput lowercases raw, keeps letters and digits, turns
// separators into single spaces and drops everything else.
func normaliseInput(raw string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case unicode.IsSpace(r), r == '-', r == '_', r == '/', r == '\'':
			return ' '
		default:
			return -1
		}
	}, strings.ToLower(raw))
	return strings.Join(strings.Fields(mapped), " ")
}

// Normalise puts a name in the form Parse reports names in.
func Normalise(name string) string {
	return normaliseInput(name)
}

func tokenise(normalised string) []string {
	return strings.Fields(normalised)
}

func stripArticles(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		switch t {
		case "the", "a", "an", "my", "to", "into", "through":
			continue
		}
		out = append(out, t)
	}
	return out
}

// splitConnector splits "knife on rope" into ["knife"] and ["rope"].
func splitConnector(tokens []string) ([]string, []string, bool) {
	i := slices.IndexFunc(tokens, func(t string) bool {
		switch t {
		case "on", "onto", "with", "at", "using":
			return true
		}
		return false
	})
	if i < 0 {
		return tokens, nil, false
	}
	return tokens[:i], tokens[i+1:], true
}

func isPronoun(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "it", "that", "them", "this", "those":
		return true
	default:
		return false
	}
}

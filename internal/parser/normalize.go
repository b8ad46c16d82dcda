package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		switch r {
		case ' ', '\t', '\n', '\r', '-', '_', '/', '\'', ',', '+', '&', ';':
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

func parseQuantityToken(token string) *Quantity {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return nil
	}
	if strings.HasPrefix(token, "x") {
		token = strings.TrimPrefix(token, "x")
	}
	if n, err := strconv.Atoi(token); err == nil && n > 0 {
		return &Quantity{Raw: token, N: n}
	}
	return nil
}

func isPronoun(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "it", "that", "them", "this", "another":
		return true
	default:
		return false
	}
}

// isFiller drops words that join items in a bag description.
func isFiller(token string) bool {
	switch token {
	case "a", "an", "the", "and", "with", "w", "plus", "some", "of", "one":
		return true
	default:
		return false
	}
}

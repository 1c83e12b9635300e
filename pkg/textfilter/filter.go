// Package textfilter turns free-text queries into case-insensitive "every token present"
// predicates over normalized names.
package textfilter

import "strings"

// Filter matches a normalized name when every token is a substring of it. The zero value
// matches everything.
type Filter struct {
	tokens []string
}

// Normalize returns the form of a display name that filters are matched against.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "/", `\`)
}

// Build tokenizes query on single spaces after normalizing it. Empty tokens are dropped since
// the empty string is contained in every name.
func Build(query string) Filter {
	parts := strings.Split(Normalize(query), " ")
	tokens := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			tokens = append(tokens, part)
		}
	}

	if len(tokens) == 0 {
		return Filter{}
	}

	return Filter{tokens: tokens}
}

func (f Filter) Tokens() []string {
	return append([]string(nil), f.tokens...)
}

func (f Filter) IsEmpty() bool {
	return len(f.tokens) == 0
}

func (f Filter) Matches(normalizedName string) bool {
	for _, token := range f.tokens {
		if !strings.Contains(normalizedName, token) {
			return false
		}
	}

	return true
}

// MatchesAny reports whether at least one of the normalized names matches.
func (f Filter) MatchesAny(normalizedNames ...string) bool {
	if f.IsEmpty() {
		return true
	}

	for _, name := range normalizedNames {
		if f.Matches(name) {
			return true
		}
	}

	return false
}

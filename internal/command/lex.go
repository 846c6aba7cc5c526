package command

import (
	"strings"
	"unicode"
)

// articles is the fixed stop-set of words dropped during normalization when
// they appear as standalone tokens.
var articles = map[string]bool{
	"the": true,
	"a":   true,
	"an":  true,
}

// Normalize splits raw input into the lowercase word tokens the pattern
// matcher consumes. Tokens are split on whitespace, have leading and trailing
// punctuation trimmed, and standalone articles are dropped. Punctuation
// inside a word is left alone, so "let's" stays one token.
//
// Empty or whitespace-only input yields an empty slice, never an error; an
// empty token sequence is legal input to Match, which reports it as an empty
// command.
func Normalize(raw string) []string {
	var tokens []string

	for _, field := range strings.Fields(strings.ToLower(raw)) {
		tok := strings.TrimFunc(field, isPunct)
		if tok == "" {
			// the token was pure punctuation; words like "?" are valid
			// vocabulary, so keep the original rather than dropping it
			tok = field
		}

		if articles[tok] {
			continue
		}

		tokens = append(tokens, tok)
	}

	return tokens
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r)
}

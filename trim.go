package latex

import (
	"strings"
	"unicode"
)

// trim removes whitespace from the sides of text tokens which touch sections
// and environments (inline math excluded). Text tokens which become empty are
// dropped. Source of the tokens is kept as is.
func trim(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))

	for i, tok := range tokens {
		if tok.Type != TextToken || tok.Content == "" {
			out = append(out, tok)
			continue
		}

		if i > 0 && tokens[i-1].structural() {
			tok.Content = strings.TrimLeftFunc(tok.Content, unicode.IsSpace)
		}

		if i+1 < len(tokens) && tokens[i+1].structural() {
			tok.Content = strings.TrimRightFunc(tok.Content, unicode.IsSpace)
		}

		if tok.Content == "" {
			continue
		}

		out = append(out, tok)
	}

	return out
}

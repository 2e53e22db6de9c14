package latex

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Unsupported is put into Body of accent tokens which have no named entity.
const Unsupported = "\uFFFD"

type accent struct {
	entity  string // entity suffix, e.g. "acute" for &eacute;
	letters string // letters which have a named entity with this suffix
	mark    rune   // combining character
}

var accents = map[string]accent{
	"'":  {entity: "acute", letters: "aeiouyAEIOUY", mark: '\u0301'},
	"`":  {entity: "grave", letters: "aeiouAEIOU", mark: '\u0300'},
	"^":  {entity: "circ", letters: "aeiouAEIOU", mark: '\u0302'},
	"\"": {entity: "uml", letters: "aeiouyAEIOUY", mark: '\u0308'},
	"~":  {entity: "tilde", letters: "anoANO", mark: '\u0303'},
	"=":  {entity: "macr", letters: "aeiouAEIOU", mark: '\u0304'},
	".":  {entity: "dot", letters: "cegzCEGIZ", mark: '\u0307'},
	"c":  {entity: "cedil", letters: "cC", mark: '\u0327'},
	"v":  {entity: "caron", letters: "cdenrstzCDENRSTZ", mark: '\u030C'},
	"u":  {entity: "breve", letters: "aguAGU", mark: '\u0306'},
	"H":  {entity: "dblac", letters: "ouOU", mark: '\u030B'},
	"r":  {entity: "ring", letters: "auAU", mark: '\u030A'},
	"k":  {entity: "ogon", letters: "aeiuAEIU", mark: '\u0328'},
	"d":  {mark: '\u0323'},
	"b":  {mark: '\u0331'},
}

func accentNames() []string {
	list := make([]string, 0, len(accents))
	for name := range accents {
		list = append(list, name)
	}

	return list
}

// accentLetter extracts letter from an accent argument, dotless \i and \j are
// replaced with the plain letters.
func accentLetter(arg string) string {
	arg = strings.TrimSpace(arg)
	arg = strings.TrimSuffix(strings.TrimPrefix(arg, "{"), "}")

	switch strings.TrimSpace(arg) {
	case `\i`:
		return "i"
	case `\j`:
		return "j"
	default:
		return strings.TrimSpace(arg)
	}
}

// buildAccent puts composed character into Content and the named entity (or
// Unsupported) into Body.
func buildAccent(_ *Context, c Call) Token {
	tok := c.Token(AccentToken)
	acc := accents[c.Name]

	letter := ""
	if len(c.Args) > 0 {
		letter = accentLetter(c.Args[0])
	}

	tok.Content = norm.NFC.String(letter + string(acc.mark))
	tok.Body = Unsupported

	if r := []rune(letter); len(r) == 1 && acc.entity != "" && strings.ContainsRune(acc.letters, r[0]) {
		tok.Body = "&" + letter + acc.entity + ";"
	}

	return tok
}

package latex

import "strings"

// ligatures are applied to text outside of math
var ligatures = strings.NewReplacer(
	"---", "—",
	"--", "–",
	"<<", "«",
	">>", "»",
	"''", "\"",
	"``", "\"",
)

func ligature(text string) string {
	return ligatures.Replace(text)
}

// textSymbols are commands replaced by a fixed HTML entity or text
var textSymbols = map[string]string{
	"ldots":           "&hellip;",
	"dots":            "&hellip;",
	"LaTeX":           "LaTeX",
	"TeX":             "TeX",
	"S":               "&sect;",
	"P":               "&para;",
	"copyright":       "&copy;",
	"textregistered":  "&reg;",
	"texttrademark":   "&trade;",
	"dag":             "&dagger;",
	"ddag":            "&Dagger;",
	"ss":              "&szlig;",
	"ae":              "&aelig;",
	"AE":              "&AElig;",
	"oe":              "&oelig;",
	"OE":              "&OElig;",
	"o":               "&oslash;",
	"O":               "&Oslash;",
	"aa":              "&aring;",
	"AA":              "&Aring;",
	"l":               "&lstrok;",
	"L":               "&Lstrok;",
	"i":               "&imath;",
	"j":               "&jmath;",
	"pounds":          "&pound;",
	"textdegree":      "&deg;",
	"textbackslash":   "&bsol;",
	"textbar":         "|",
	"textless":        "&lt;",
	"textgreater":     "&gt;",
	"textendash":      "&ndash;",
	"textemdash":      "&mdash;",
	"textasciitilde":  "~",
	"textasciicircum": "^",
	"guillemotleft":   "&laquo;",
	"guillemotright":  "&raquo;",
	"quad":            "&emsp;",
	"qquad":           "&emsp;&emsp;",
}

// spaceSymbols are control symbols which produce spacing or nothing at all
var spaceSymbols = map[string]string{
	" ":  " ",
	"\n": " ",
	",":  "&thinsp;",
	";":  "&ensp;",
	":":  "&ensp;",
	"!":  "",
	"-":  "&shy;",
	"/":  "",
	"@":  "",
}

// symbolBuilder creates constructor which puts replacement from the table into Body.
func symbolBuilder(table map[string]string) BuildFunc {
	return func(_ *Context, c Call) Token {
		tok := c.Token(SymbolToken)
		tok.Body = table[c.Name]
		return tok
	}
}

package latex

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// sectionDepth is the nesting level of sectioning commands
var sectionDepth = map[string]int{
	"chapter":       1,
	"section":       2,
	"subsection":    3,
	"subsubsection": 4,
	"paragraph":     5,
	"subparagraph":  6,
}

// SectionDepth returns depth of a sectioning command, or 0 if name is not a section.
func SectionDepth(name string) int {
	return sectionDepth[name]
}

// builtins returns descriptors of all supported commands. Order matters: when
// the same name is used by several descriptors the first one wins, so
// environments go before declarations with the same name.
func builtins() []*Descriptor {
	return []*Descriptor{
		// sectioning
		{Type: SectionToken, Names: names("chapter", "section", "subsection", "subsubsection", "paragraph", "subparagraph"), Signature: MustSignature("[]{}"), Nested: true},

		// environments
		{Type: EnvStartToken, Class: ClassList, Names: names("itemize", "enumerate", "description"), Signature: MustSignature("!{}[]")},
		{Type: EnvStartToken, Class: ClassList, Names: names("thebibliography"), Signature: MustSignature("!{}{}")},
		{Type: EnvStartToken, Class: ClassDisplay, Names: names("displaymath", "equation", "equation*", "align", "align*", "gather", "gather*", "multline", "multline*", "eqnarray", "eqnarray*", "flalign", "flalign*"), Signature: MustSignature("!{}")},
		{Type: EnvStartToken, Class: ClassDisplay, Names: names("alignat", "alignat*"), Signature: MustSignature("!{}{}")},
		{Type: EnvStartToken, Class: ClassMath, Names: names("math"), Signature: MustSignature("!{}")},
		{Type: EnvStartToken, Class: ClassTabular, Names: names("tabular"), Signature: MustSignature("!{}[]{}")},
		{Type: EnvStartToken, Class: ClassTabular, Names: names("tabular*", "tabularx"), Signature: MustSignature("!{}{}[]{}")},
		{Type: EnvStartToken, Class: ClassVerbatim, Names: names("verbatim", "verbatim*", "comment"), Signature: MustSignature("!{}")},
		{Type: EnvStartToken, Class: ClassVerbatim, Names: names("lstlisting"), Signature: MustSignature("!{}[]")},
		{Type: EnvStartToken, Class: ClassVerbatim, Names: names("minted"), Signature: MustSignature("!{}[]{}")},
		{Type: EnvStartToken, Class: ClassFloat, Names: names("figure", "figure*", "table", "table*"), Signature: MustSignature("!{}[]")},
		{Type: EnvStartToken, Class: ClassBlock, Names: names("center", "flushleft", "flushright", "quote", "quotation", "verse", "abstract"), Signature: MustSignature("!{}")},
		{Type: EnvStartToken, Class: ClassBlock, Names: names("proof"), Signature: MustSignature("!{}[]")},
		{Type: EnvStartToken, Class: ClassBlock, Names: names("minipage"), Signature: MustSignature("!{}[]{}")},

		// items
		{Type: ItemToken, Names: names("item"), Signature: MustSignature("[]")},
		{Type: ItemToken, Names: names("bibitem"), Signature: MustSignature("[]{}"), Build: buildBibitem},

		// cross references
		{Type: LabelToken, Names: names("label"), Signature: MustSignature("{}"), Math: true, Build: buildLabel},
		{Type: RefToken, Names: names("ref", "pageref", "autoref", "cref", "Cref"), Signature: MustSignature("{}"), Math: true, Build: buildRef},
		{Type: RefToken, Names: names("eqref"), Signature: MustSignature("{}"), Math: true, Build: buildEqref},
		{Type: CiteToken, Names: names("cite", "citep", "citet", "nocite"), Signature: MustSignature("[]{}"), Build: buildCite},

		// accents
		{Type: AccentToken, Names: names(accentNames()...), Signature: MustSignature("^"), Build: buildAccent},

		// formatting
		{Type: CommandToken, Names: names("textbf", "textit", "emph", "texttt", "underline", "textsc", "textsf", "textrm", "textup", "textsl", "textmd", "sout", "mbox", "fbox", "title", "author", "date"), Signature: MustSignature("{}"), Nested: true},
		{Type: CommandToken, Names: names("footnote", "caption"), Signature: MustSignature("[]{}"), Nested: true},

		// links and media
		{Type: CommandToken, Names: names("url"), Signature: MustSignature("{}")},
		{Type: CommandToken, Names: names("href"), Signature: MustSignature("{}{}"), Nested: true, Build: buildHref},
		{Type: CommandToken, Names: names("includegraphics"), Signature: MustSignature("[]{}")},
		{Type: CommandToken, Names: names("hspace", "vspace"), Signature: MustSignature("{}")},

		// breaks and rules
		{Type: LineBreakToken, Names: names("\\", "linebreak"), Signature: MustSignature("[]")},
		{Type: LineBreakToken, Names: names("newline")},
		{Type: ParagraphToken, Names: names("par")},
		{Type: CommandToken, Names: names("hline", "maketitle", "tableofcontents", "appendix", "noindent")},

		// problem statements (olymp.sty)
		{Type: CommandToken, Names: names("InputFile", "OutputFile", "InputData", "OutputData", "Note", "Notes", "Scoring", "Interaction", "Example", "Examples")},
		{Type: CommandToken, Names: names("exmp", "exmpfile"), Signature: MustSignature("{}{}")},
		{Type: CommandToken, Names: names("epigraph"), Signature: MustSignature("{}{}"), Nested: true},
		{Type: EnvStartToken, Class: ClassBlock, Names: names("problem"), Signature: MustSignature("!{}{}{}{}{}{}")},
		{Type: EnvStartToken, Class: ClassBlock, Names: names("example"), Signature: MustSignature("!{}")},
		{Type: EnvStartToken, Class: ClassFloat, Names: names("wrapfigure"), Signature: MustSignature("!{}[]{}{}")},

		// symbols
		{Type: SymbolToken, Names: names("symbol"), Signature: MustSignature("{}"), Build: buildCharCode},
		{Type: SymbolToken, Symbols: textSymbols, Build: symbolBuilder(textSymbols)},
		{Type: SymbolToken, Symbols: spaceSymbols, Build: symbolBuilder(spaceSymbols)},

		// declarations
		{Type: DeclarationToken, Names: names("bfseries", "itshape", "em", "bf", "it", "tt", "sc", "sl", "rm", "sf", "upshape", "mdseries", "normalfont", "centering", "raggedright", "raggedleft")},
		{Type: DeclarationToken, Names: names("tiny", "scriptsize", "footnotesize", "small", "normalsize", "large", "Large", "LARGE", "huge", "Huge")},

		// definitions
		{Type: DefinitionToken, Names: names("newcommand", "renewcommand", "providecommand"), Math: true, Scan: scanNewcommand},
		{Type: DefinitionToken, Names: names("def"), Math: true, Scan: scanDef},
		{Type: DefinitionToken, Names: names("DeclareMathOperator"), Scan: scanMathOperator},
		{Type: DefinitionToken, Names: names("newenvironment", "renewenvironment"), Scan: scanNewenvironment},
		{Type: DefinitionToken, Names: names("newtheorem"), Scan: scanNewtheorem},
		{Type: DeclarationToken, Names: names("theoremstyle"), Scan: scanTheoremstyle},
	}
}

func buildLabel(ctx *Context, c Call) Token {
	tok := c.Token(LabelToken)
	tok.Label = strings.TrimSpace(c.Content)
	tok.Ref = ctx.lookupLabel(tok.Label)

	return tok
}

// buildRef resolves each key of a comma separated list
func buildRef(ctx *Context, c Call) Token {
	tok := c.Token(RefToken)

	keys := splitKeys(c.Content)
	refs := make([]string, len(keys))

	for i, key := range keys {
		refs[i] = ctx.resolveLabel(key, c.Line)
	}

	tok.Label = strings.Join(keys, ",")
	tok.Ref = strings.Join(refs, ", ")
	tok.Body = tok.Ref

	return tok
}

func buildEqref(ctx *Context, c Call) Token {
	tok := buildRef(ctx, c)
	tok.Body = "(" + tok.Ref + ")"
	return tok
}

func buildCite(ctx *Context, c Call) Token {
	tok := c.Token(CiteToken)

	keys := splitKeys(c.Content)
	refs := make([]string, len(keys))

	for i, key := range keys {
		refs[i] = ctx.resolveCitation(key, c.Line)
	}

	tok.Label = strings.Join(keys, ",")
	tok.Ref = strings.Join(refs, ", ")
	tok.Body = tok.Ref

	return tok
}

func buildBibitem(ctx *Context, c Call) Token {
	tok := c.Token(ItemToken)
	tok.Label = strings.TrimSpace(c.Content)
	tok.Ref = ctx.lookupCitation(tok.Label)

	return tok
}

// buildHref keeps URL in Body and link text in Content
func buildHref(_ *Context, c Call) Token {
	tok := c.Token(CommandToken)
	tok.Body = c.Args[0]
	tok.Content = c.Args[1]

	return tok
}

// buildCharCode handles \symbol{65}, \symbol{"41} and \symbol{'101}
func buildCharCode(_ *Context, c Call) Token {
	tok := c.Token(SymbolToken)
	tok.Body = Unsupported

	code := strings.TrimSpace(c.Content)
	base := 10

	switch {
	case strings.HasPrefix(code, `"`):
		code, base = code[1:], 16
	case strings.HasPrefix(code, "'"):
		code, base = code[1:], 8
	}

	if v, err := strconv.ParseInt(code, base, 32); err == nil && utf8.ValidRune(rune(v)) {
		tok.Body = string(rune(v))
	}

	return tok
}

func splitKeys(list string) (keys []string) {
	for _, key := range strings.Split(list, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}

	return
}

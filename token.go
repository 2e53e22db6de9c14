package latex

type TokenType int

const (
	TextToken TokenType = iota
	GroupStartToken
	GroupEndToken
	EnvStartToken
	EnvEndToken
	SectionToken
	ItemToken
	LabelToken
	RefToken
	CiteToken
	AccentToken
	SymbolToken
	CommandToken
	MacroToken
	DeclarationToken
	DefinitionToken
	LineBreakToken
	ParagraphToken
	CellToken
	VerbatimToken
)

var tokenTypeNames = [...]string{
	TextToken:        "text",
	GroupStartToken:  "group-start",
	GroupEndToken:    "group-end",
	EnvStartToken:    "env-start",
	EnvEndToken:      "env-end",
	SectionToken:     "section",
	ItemToken:        "item",
	LabelToken:       "label",
	RefToken:         "ref",
	CiteToken:        "cite",
	AccentToken:      "accent",
	SymbolToken:      "symbol",
	CommandToken:     "command",
	MacroToken:       "macro",
	DeclarationToken: "declaration",
	DefinitionToken:  "definition",
	LineBreakToken:   "linebreak",
	ParagraphToken:   "paragraph",
	CellToken:        "cell",
	VerbatimToken:    "verbatim",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return "unknown"
	}

	return tokenTypeNames[t]
}

// Environment classes, stored in Token.Class and as the first entry of Node.Class.
const (
	ClassList        = "list"
	ClassMath        = "math"
	ClassDisplay     = "display"
	ClassTabular     = "tabular"
	ClassFloat       = "float"
	ClassBlock       = "block"
	ClassVerbatim    = "verbatim"
	ClassTheorem     = "theorem"
	ClassCustom      = "custom"
	ClassDeclaration = "declaration"
	ClassGeneric     = "generic"
)

// Token is a lexical unit produced by Tokenizer.
//
// Content is the primary payload: processed text for text tokens, the first
// scanned mandatory argument for commands and environments (the column spec of
// tabular, empty for itemize), the heading for theorems. Source is always the
// exact slice of input the token was built from.
type Token struct {
	Type    TokenType
	Name    string
	Content string
	Options string
	Args    []string
	Source  string
	Label   string
	Ref     string
	Line    int
	Body    string
	Offset  int
	Star    bool
	Class   string
	Nested  bool // Content (or Body for macros) holds LaTeX to be parsed into children
}

// structural tokens cause whitespace of adjacent text tokens to be trimmed
func (t Token) structural() bool {
	switch t.Type {
	case SectionToken:
		return true
	case EnvStartToken, EnvEndToken:
		return t.Class != ClassMath
	default:
		return false
	}
}

package latex

type Kind int

const (
	DocumentKind Kind = iota
	TextKind
	GroupKind
	EnvironmentKind
	SectionKind
	TitleKind
	ItemKind
	TagKind
	RefKind
	CiteKind
	AccentKind
	SymbolKind
	CommandKind
	MacroKind
	DeclarationKind
	DefinitionKind
	LineBreakKind
	ParagraphKind
	AlignKind
	VerbatimKind
	RowKind
	CellKind
	RuleKind
)

var kindNames = [...]string{
	DocumentKind:    "document",
	TextKind:        "text",
	GroupKind:       "group",
	EnvironmentKind: "environment",
	SectionKind:     "section",
	TitleKind:       "title",
	ItemKind:        "item",
	TagKind:         "tag",
	RefKind:         "ref",
	CiteKind:        "cite",
	AccentKind:      "accent",
	SymbolKind:      "symbol",
	CommandKind:     "command",
	MacroKind:       "macro",
	DeclarationKind: "declaration",
	DefinitionKind:  "definition",
	LineBreakKind:   "linebreak",
	ParagraphKind:   "paragraph",
	AlignKind:       "align",
	VerbatimKind:    "verbatim",
	RowKind:         "row",
	CellKind:        "cell",
	RuleKind:        "rule",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Node of the document tree. Parent is the ID of the parent node, 0 for the
// document root.
type Node struct {
	ID       int
	Kind     Kind
	Parent   int
	Children []*Node
	Name     string
	Content  string
	Options  string
	Args     []string
	Label    string
	Ref      string
	Number   string
	Source   string
	Body     string
	Level    int
	Class    []string
	Line     int
	Star     bool
}

func (n *Node) HasClass(class string) bool {
	for _, c := range n.Class {
		if c == class {
			return true
		}
	}

	return false
}

// Attributes parses key=value options, eg. of \includegraphics[width=5cm].
func (n *Node) Attributes() (map[string]string, error) {
	return KeyValue(n.Options)
}

// Columns parses column specification of a tabular environment.
func (n *Node) Columns() ([]ColumnSpec, error) {
	if len(n.Args) == 0 {
		return nil, nil
	}

	return ColumnSpecs(n.Args[len(n.Args)-1])
}

// Length converts a length argument (eg. of \hspace) or a length option (eg.
// width of \includegraphics) to pixels. Empty key refers to Content.
func (n *Node) Length(key string) (float32, error) {
	if key == "" {
		return MeasurePixels(n.Content)
	}

	attrs, err := n.Attributes()
	if err != nil {
		return 0, err
	}

	return MeasurePixels(attrs[key])
}

// Text returns concatenated content of text children.
func (n *Node) Text() string {
	s := ""
	for _, child := range n.Children {
		if child.Kind == TextKind {
			s += child.Content
		}
	}

	return s
}

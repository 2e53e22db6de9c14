package latex

import (
	"strings"
)

var leafKinds = map[TokenType]Kind{
	RefToken:        RefKind,
	CiteToken:       CiteKind,
	AccentToken:     AccentKind,
	SymbolToken:     SymbolKind,
	CommandToken:    CommandKind,
	DefinitionToken: DefinitionKind,
	LineBreakToken:  LineBreakKind,
	ParagraphToken:  ParagraphKind,
	CellToken:       AlignKind,
	VerbatimToken:   VerbatimKind,
}

// builder assembles token stream into a tree. It keeps a single cursor, the
// node where new nodes are attached.
type builder struct {
	ctx      *Context
	tree     *Tree
	root     *Node // nodes above root are not visited, it is the document or a node with nested content
	outer    *builder
	current  *Node
	counters *counters
}

func build(ctx *Context, tokens []Token) (*Tree, error) {
	tree := newTree()

	b := &builder{ctx: ctx, tree: tree, root: tree.Root, current: tree.Root, counters: newCounters()}
	if err := b.build(tokens); err != nil {
		return nil, err
	}

	return tree, nil
}

func (b *builder) build(tokens []Token) error {
	for _, tok := range tokens {
		if err := b.add(tok); err != nil {
			return err
		}
	}

	return nil
}

func (b *builder) add(tok Token) error {
	switch tok.Type {
	case TextToken:
		if tok.Content != "" {
			b.leaf(TextKind, tok)
		}

		return nil
	case SectionToken:
		return b.section(tok)
	case EnvStartToken:
		b.begin(tok)
		return nil
	case EnvEndToken:
		return b.end(tok)
	case GroupStartToken:
		b.current = b.leaf(GroupKind, tok)
		return nil
	case GroupEndToken:
		return b.closeGroup(tok)
	case ItemToken:
		return b.item(tok)
	case LabelToken:
		b.label(tok)
		return nil
	case DeclarationToken:
		b.declaration(tok)
		return nil
	case MacroToken:
		return b.nested(b.leaf(MacroKind, tok), tok.Body, tok)
	}

	kind, ok := leafKinds[tok.Type]
	if !ok {
		return syntaxError(tok.Line, tok.Source, "unexpected %s token", tok.Type)
	}

	n := b.leaf(kind, tok)
	if tok.Nested {
		return b.nested(n, tok.Content, tok)
	}

	return nil
}

func (b *builder) leaf(kind Kind, tok Token) *Node {
	n := b.tree.nodeFrom(kind, tok)
	attach(b.current, n)
	return n
}

// nested parses LaTeX code which belongs to a token (macro body, command
// argument) into children of a node
func (b *builder) nested(parent *Node, src string, tok Token) error {
	if strings.TrimSpace(src) == "" {
		return nil
	}

	if b.ctx.depth >= maxDepth {
		return syntaxError(tok.Line, tok.Source, "macro expansion is nested too deep")
	}

	b.ctx.depth++
	defer func() { b.ctx.depth-- }()

	tokens, err := b.ctx.tokenize(src, tok.Offset, tok.Line, b.inMath(parent))
	if err != nil {
		return err
	}

	sub := &builder{ctx: b.ctx, tree: b.tree, root: parent, outer: b, current: parent, counters: b.counters}
	if err := sub.build(tokens); err != nil {
		return err
	}

	// \item in a macro body attaches to a list outside the macro, the rest
	// of the document continues inside that item
	if !b.contains(parent, sub.current) {
		b.current = sub.current
	}

	return nil
}

// contains checks if n is in the subtree of ancestor
func (b *builder) contains(ancestor, n *Node) bool {
	for ; n != nil; n = b.tree.Parent(n) {
		if n == ancestor {
			return true
		}
	}

	return false
}

// boundary checks if the search for an enclosing node must stop at n. Macro
// bodies are transparent, other nested content (arguments, titles) is not.
func (b *builder) boundary(n *Node) bool {
	for x := b; x != nil; x = x.outer {
		if n == x.root {
			return n.Kind != MacroKind
		}
	}

	return false
}

// section climbs up to the nearest section of a lower depth. Environments,
// groups and items stop the climb.
func (b *builder) section(tok Token) error {
	depth := SectionDepth(tok.Name)

	for b.current != b.root && b.current.Kind == SectionKind && b.current.Level >= depth {
		b.current = b.tree.Parent(b.current)
	}

	n := b.leaf(SectionKind, tok)
	n.Level = depth

	if !tok.Star {
		n.Number = b.counters.section(depth)
	}

	b.current = n

	title := b.tree.node(TitleKind)
	title.Content = tok.Content
	title.Line = tok.Line
	attach(n, title)

	return b.nested(title, tok.Content, tok)
}

func (b *builder) begin(tok Token) {
	n := b.leaf(EnvironmentKind, tok)

	if tok.Class == ClassTheorem {
		if th, ok := b.ctx.theorems.lookup(tok.Name, tok.Offset); ok {
			n.Class = append(n.Class, "theorem-"+th.Style)

			if !th.Starred {
				n.Number = b.counters.step(th.Counter(), b.theoremParent(th, tok.Offset))
			}
		}
	}

	b.current = n
}

// theoremParent returns section which resets theorem counter, shared counters
// use parent of the theorem they belong to
func (b *builder) theoremParent(th *Theorem, at int) string {
	if th.Shared == "" {
		return th.Parent
	}

	if owner, ok := b.ctx.theorems.lookup(th.Shared, at); ok {
		return owner.Parent
	}

	return ""
}

// end closes the nearest list for list environments and the nearest
// environment otherwise
func (b *builder) end(tok Token) error {
	match := isEnvironment
	if tok.Class == ClassList {
		match = isList
	}

	env := b.nearest(match, nil)
	if env == nil {
		return syntaxError(tok.Line, tok.Source, `\end{%s} has no matching environment`, tok.Name)
	}

	if env.HasClass(ClassTabular) {
		b.tabulate(env)
	}

	b.current = b.tree.Parent(env)
	return nil
}

func (b *builder) closeGroup(tok Token) error {
	group := b.nearest(isGroup, nil)
	if group == nil {
		return syntaxError(tok.Line, tok.Source, "unbalanced }")
	}

	b.current = b.tree.Parent(group)
	return nil
}

func (b *builder) item(tok Token) error {
	list := b.nearest(isList, isBarrier)
	if list == nil {
		return syntaxError(tok.Line, tok.Source, `\%s outside of a list`, tok.Name)
	}

	n := b.tree.nodeFrom(ItemKind, tok)
	attach(list, n)

	b.current = n
	return nil
}

// label sets label and number of the current node, equations also get a tag
// at the place of the label
func (b *builder) label(tok Token) {
	target := b.current
	if target.Kind == TitleKind {
		target = b.tree.Parent(target)
	}

	target.Label = tok.Label
	target.Ref = tok.Ref

	if target.Kind == EnvironmentKind && target.HasClass(ClassDisplay) {
		b.leaf(TagKind, tok)
	}
}

// declaration at the start of a group applies to the whole group
func (b *builder) declaration(tok Token) {
	group := b.current
	leading := group.Kind == GroupKind && blank(group.Children)

	b.leaf(DeclarationKind, tok)

	if leading {
		group.Class = append(group.Class, tok.Name)
	}
}

// nearest returns the closest node matching a predicate, starting from the
// current node. Search stops at the barrier.
func (b *builder) nearest(match, barrier func(n *Node) bool) *Node {
	for n := b.current; n != nil; n = b.tree.Parent(n) {
		if match(n) {
			return n
		}

		if b.boundary(n) || (barrier != nil && barrier(n)) {
			return nil
		}
	}

	return nil
}

func (b *builder) inMath(n *Node) bool {
	for ; n != nil; n = b.tree.Parent(n) {
		if n.Kind == EnvironmentKind && (n.HasClass(ClassMath) || n.HasClass(ClassDisplay)) {
			return true
		}
	}

	return false
}

func isEnvironment(n *Node) bool {
	return n.Kind == EnvironmentKind
}

func isList(n *Node) bool {
	return n.Kind == EnvironmentKind && n.HasClass(ClassList)
}

func isGroup(n *Node) bool {
	return n.Kind == GroupKind
}

// isBarrier is true for environments and groups which are not lists
func isBarrier(n *Node) bool {
	return n.Kind == GroupKind || (n.Kind == EnvironmentKind && !n.HasClass(ClassList))
}

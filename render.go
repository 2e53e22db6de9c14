package latex

import (
	"fmt"
	"io"
	"strings"
)

// Renderer converts a node to output markup. Children are rendered first and
// passed in already converted.
type Renderer interface {
	Render(n *Node, children string) (string, error)
}

type RenderFunc func(n *Node, children string) (string, error)

func (f RenderFunc) Render(n *Node, children string) (string, error) {
	return f(n, children)
}

// Render converts the whole tree in a single post-order traversal.
func (t *Tree) Render(r Renderer) (string, error) {
	return RenderNode(t.Root, r)
}

func RenderNode(n *Node, r Renderer) (string, error) {
	b := strings.Builder{}
	for _, child := range n.Children {
		out, err := RenderNode(child, r)
		if err != nil {
			return "", err
		}

		b.WriteString(out)
	}

	out, err := r.Render(n, b.String())
	if err != nil {
		return "", fmt.Errorf("unable to render %s on line %d: %w", n.Kind, n.Line, err)
	}

	return out, nil
}

// Render writes node back as LaTeX.
func Render(w io.Writer, node *Node) error {
	out, err := RenderNode(node, LaTeXRenderer{})
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

// LaTeXRenderer writes tree back as LaTeX. Macros are written expanded.
type LaTeXRenderer struct{}

func (LaTeXRenderer) Render(n *Node, children string) (string, error) {
	switch n.Kind {
	case DocumentKind, MacroKind:
		return children, nil
	case TitleKind:
		return "", nil
	case GroupKind:
		return "{" + children + "}", nil
	case SectionKind, ItemKind:
		return n.Source + labelOf(n) + children, nil
	case EnvironmentKind:
		if n.HasClass(ClassDisplay) {
			return n.Source + children + closerOf(n), nil
		}

		return n.Source + labelOf(n) + children + closerOf(n), nil
	case RowKind:
		return strings.TrimSuffix(children, " & ") + " \\\\\n", nil
	case CellKind:
		return strings.TrimSpace(children) + " & ", nil
	case RuleKind:
		return `\hline` + "\n", nil
	case TextKind, TagKind, RefKind, CiteKind, AccentKind, SymbolKind, CommandKind, DeclarationKind, DefinitionKind, LineBreakKind, ParagraphKind, AlignKind, VerbatimKind:
		return n.Source, nil
	default:
		return "", fmt.Errorf("unsupported node %s", n.Kind)
	}
}

// closerOf returns the code which ends an environment
func closerOf(n *Node) string {
	switch n.Source {
	case "$", "$$":
		return n.Source
	case `\(`:
		return `\)`
	case `\[`:
		return `\]`
	default:
		return `\end{` + n.Name + `}`
	}
}

func labelOf(n *Node) string {
	if n.Label == "" {
		return ""
	}

	return `\label{` + n.Label + `}`
}

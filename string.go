package latex

import (
	"html"
	"strings"
)

// String returns plain text of the node, markup and definitions are dropped.
func String(node *Node) (out string) {
	switch node.Kind {
	case TextKind, AccentKind:
		return node.Content
	case SymbolKind:
		return html.UnescapeString(node.Body)
	case RefKind, CiteKind:
		return node.Body
	case VerbatimKind:
		if node.Name == "comment" {
			return ""
		}

		return node.Body
	case DefinitionKind, DeclarationKind, TagKind, RuleKind, AlignKind:
		return ""
	case LineBreakKind:
		return "\n"
	case ParagraphKind:
		return "\n\n"
	case CommandKind:
		if node.Name == "url" {
			return node.Content
		}
	case RowKind:
		cells := make([]string, 0, len(node.Children))
		for _, child := range node.Children {
			cells = append(cells, strings.TrimSpace(String(child)))
		}

		return strings.Join(cells, "\t") + "\n"
	}

	for _, child := range node.Children {
		out += String(child)
	}

	return
}

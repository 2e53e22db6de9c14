package latex

import "strings"

// blank checks that nodes contain nothing but whitespace
func blank(nodes []*Node) bool {
	for _, n := range nodes {
		if n.Kind != TextKind || strings.TrimSpace(n.Content) != "" {
			return false
		}
	}

	return true
}

// isNewline checks if node ends a row of a tabular: \\, \newline or \linebreak
func isNewline(n *Node) bool {
	return n.Kind == LineBreakKind
}

func isRule(n *Node) bool {
	return n.Kind == CommandKind && n.Name == "hline"
}

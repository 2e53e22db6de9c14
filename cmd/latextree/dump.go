package main

import (
	"fmt"
	"io"
	"strings"

	latex "github.com/eolymp/go-latextree"
	"github.com/muesli/termenv"
)

// dump prints an indented outline of the tree, colors are used when w is a terminal
func dump(w io.Writer, tree *latex.Tree) error {
	out := termenv.NewOutput(w)
	return dumpNode(out, tree.Root, 0)
}

func dumpNode(out *termenv.Output, n *latex.Node, depth int) error {
	b := strings.Builder{}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(out.String(n.Kind.String()).Foreground(out.Color("4")).Bold().String())

	if n.Name != "" {
		b.WriteString(" " + n.Name)
	}

	if n.Number != "" {
		b.WriteString(" " + out.String(n.Number).Foreground(out.Color("3")).String())
	}

	if n.Label != "" {
		b.WriteString(" " + out.String("#"+n.Label).Foreground(out.Color("2")).String())
	}

	if n.Ref != "" && n.Kind != latex.SectionKind && n.Kind != latex.EnvironmentKind {
		b.WriteString(" -> " + n.Ref)
	}

	switch n.Kind {
	case latex.TextKind, latex.AccentKind:
		b.WriteString(" " + out.String(fmt.Sprintf("%q", n.Content)).Faint().String())
	case latex.SymbolKind, latex.VerbatimKind:
		b.WriteString(" " + out.String(fmt.Sprintf("%q", n.Body)).Faint().String())
	}

	if _, err := fmt.Fprintln(out, b.String()); err != nil {
		return err
	}

	for _, child := range n.Children {
		if err := dumpNode(out, child, depth+1); err != nil {
			return err
		}
	}

	return nil
}

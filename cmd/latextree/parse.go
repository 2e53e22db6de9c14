package main

import (
	"encoding/json"
	"fmt"
	"io"

	latex "github.com/eolymp/go-latextree"
	"github.com/spf13/cobra"
)

func runParse(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	parser, err := newParser(cmd)
	if err != nil {
		return err
	}

	src, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	tree, err := parser.Parse(src)
	if err != nil {
		return err
	}

	return write(cmd.OutOrStdout(), tree, format)
}

func write(w io.Writer, tree *latex.Tree, format string) error {
	switch format {
	case "tree":
		return dump(w, tree)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tree.Root)
	case "latex":
		return latex.Render(w, tree.Root)
	case "text":
		_, err := io.WriteString(w, latex.String(tree.Root))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

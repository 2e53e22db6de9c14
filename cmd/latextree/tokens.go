package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := newParser(cmd)
			if err != nil {
				return err
			}

			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			tokens, err := parser.Tokenize(src)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, tok := range tokens {
				if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%q\n", tok.Line, tok.Type, tok.Name, tok.Source); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	latex "github.com/eolymp/go-latextree"
	"github.com/eolymp/go-latextree/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "latextree [file]",
		Short:        "latextree parses LaTeX documents into a tree",
		Long:         `latextree reads a LaTeX document (a file or stdin), resolves references using the .aux file and prints the document tree.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runParse,
	}

	cmd.PersistentFlags().String("aux", "", "Path to the .aux file used to resolve references and citations")
	cmd.PersistentFlags().String("config", "", "Path to the YAML file with additional commands and environments")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log unknown commands and definitions")
	cmd.Flags().StringP("format", "f", "tree", "Output format: tree, json, latex or text")

	cmd.AddCommand(newTokensCmd())

	return cmd
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newParser configures parser using persistent flags
func newParser(cmd *cobra.Command) (*latex.Parser, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := []latex.Option{latex.WithLogger(logging.NewWriter(cmd.ErrOrStderr(), level))}

	if path, _ := cmd.Flags().GetString("aux"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read aux: %w", err)
		}

		aux, err := latex.DecodeAux(data)
		if err != nil {
			return nil, err
		}

		opts = append(opts, latex.WithAux(aux))
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config: %w", err)
		}

		defer file.Close()

		config, err := latex.LoadConfig(file)
		if err != nil {
			return nil, err
		}

		opts = append(opts, latex.WithConfig(config))
	}

	return latex.NewParser(opts...), nil
}

// readInput reads the file given as the first argument or stdin
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	return string(data), nil
}

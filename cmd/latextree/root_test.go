package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	return out.String(), err
}

func TestRootFormats(t *testing.T) {
	doc := "\\section{Intro}\\label{sec:intro}\nSee \\ref{sec:intro}."

	aux := filepath.Join(t.TempDir(), "doc.aux")
	require.NoError(t, os.WriteFile(aux, []byte("\\newlabel{sec:intro}{{1}{1}}\n"), 0o644))

	t.Run("tree", func(t *testing.T) {
		out, err := execute(t, doc, "--aux", aux)
		require.NoError(t, err)

		assert.Contains(t, out, "document\n")
		assert.Contains(t, out, "  section section 1 #sec:intro\n")
		assert.Contains(t, out, "    ref ref #sec:intro -> 1\n")
	})

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, doc, "--aux", aux, "--format", "text")
		require.NoError(t, err)
		assert.Equal(t, "Intro\nSee 1.", out)
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, doc, "--format", "json")
		require.NoError(t, err)

		root := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(out), &root))
		assert.Equal(t, float64(1), root["ID"])
	})

	t.Run("latex", func(t *testing.T) {
		out, err := execute(t, "a \\textbf{b} c", "-f", "latex")
		require.NoError(t, err)
		assert.Equal(t, "a \\textbf{b} c", out)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, doc, "-f", "html")
		assert.EqualError(t, err, `unknown format "html"`)
	})
}

func TestRootFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.tex")
	require.NoError(t, os.WriteFile(path, []byte("\\begin{itemize}\\item one\\end{itemize}"), 0o644))

	out, err := execute(t, "", "--format", "text", path)
	require.NoError(t, err)
	assert.Equal(t, " one", out)
}

func TestRootConfig(t *testing.T) {
	config := filepath.Join(t.TempDir(), "latextree.yaml")
	require.NoError(t, os.WriteFile(config, []byte("macros:\n  R: reals\n"), 0o644))

	out, err := execute(t, "\\R", "--config", config, "-f", "text")
	require.NoError(t, err)
	assert.Equal(t, "reals", out)
}

func TestRootSyntaxError(t *testing.T) {
	_, err := execute(t, "\\begin{itemize}\n\\end{enumerate}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2:")
}

func TestTokens(t *testing.T) {
	out, err := execute(t, "a\\textbf{b}", "tokens")
	require.NoError(t, err)

	assert.Equal(t, "1\ttext\t\t\"a\"\n1\tcommand\ttextbf\t\"\\\\textbf{b}\"\n", out)
}

package latex_test

import (
	"bytes"
	"errors"
	"html"
	"testing"

	latex "github.com/eolymp/go-latextree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output string
	}{
		{
			name:   "text and commands",
			input:  `Hello \textbf{world}!`,
			output: `Hello \textbf{world}!`,
		},
		{
			name:   "section with label",
			input:  "\\section{Intro}\\label{sec}\nText",
			output: "\\section{Intro}\\label{sec}\nText",
		},
		{
			name:   "equation with label",
			input:  `\begin{equation}x\label{eq}\end{equation}`,
			output: `\begin{equation}x\label{eq}\end{equation}`,
		},
		{
			name:   "inline math",
			input:  `$a$ and \(b\)`,
			output: `$a$ and \(b\)`,
		},
		{
			name:   "groups",
			input:  `{\bf x}`,
			output: `{\bf x}`,
		},
		{
			name:   "whitespace around environments is dropped",
			input:  "\\begin{itemize}\n\\item one\n\\end{itemize}",
			output: "\\begin{itemize}\\item one\n\\end{itemize}",
		},
		{
			name:   "macros are expanded",
			input:  `\newcommand{\x}{X}\x!`,
			output: `\newcommand{\x}{X}X!`,
		},
		{
			name:   "tabular",
			input:  "\\begin{tabular}{cc}\na & b \\\\\nc & d\n\\end{tabular}",
			output: "\\begin{tabular}{cc}a & b \\\\\nc & d \\\\\n\\end{tabular}",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			tree := parse(t, tc.input)

			buf := &bytes.Buffer{}
			require.NoError(t, latex.Render(buf, tree.Root))
			assert.Equal(t, tc.output, buf.String())
		})
	}
}

func TestRenderFunc(t *testing.T) {
	r := latex.RenderFunc(func(n *latex.Node, children string) (string, error) {
		switch n.Kind {
		case latex.TextKind:
			return html.EscapeString(n.Content), nil
		case latex.SectionKind:
			return "<section>" + children + "</section>", nil
		case latex.TitleKind:
			return "<h2>" + children + "</h2>", nil
		case latex.CommandKind:
			return "<b>" + children + "</b>", nil
		default:
			return children, nil
		}
	})

	tree := parse(t, `\section{A \& B}\textbf{x<y}`)

	out, err := tree.Render(r)
	require.NoError(t, err)
	assert.Equal(t, "<section><h2>A &amp; B</h2><b>x&lt;y</b></section>", out)
}

func TestRenderFunc_Error(t *testing.T) {
	boom := errors.New("boom")

	r := latex.RenderFunc(func(n *latex.Node, children string) (string, error) {
		if n.Kind == latex.CommandKind {
			return "", boom
		}

		return children, nil
	})

	tree := parse(t, "x\n\\textbf{y}")

	_, err := tree.Render(r)
	require.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "unable to render command on line 2: boom")
}

func TestLaTeXRenderer_Unsupported(t *testing.T) {
	_, err := latex.RenderNode(&latex.Node{Kind: latex.Kind(99)}, latex.LaTeXRenderer{})
	assert.EqualError(t, err, "unable to render unknown on line 0: unsupported node unknown")
}

func TestString(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output string
	}{
		{name: "formatting", input: `Hello \textbf{world}~--- \ldots`, output: "Hello world \u2014 \u2026"},
		{name: "accents", input: `caf\'e na\"{\i}ve`, output: "caf\u00e9 na\u00efve"},
		{name: "url", input: `\url{https://eolymp.com}`, output: "https://eolymp.com"},
		{name: "line breaks", input: `a\\b\newline c`, output: "a\nb\nc"},
		{name: "comment environment", input: "a\\begin{comment}b\\end{comment}c", output: "ac"},
		{name: "verb", input: `use \verb|\x|`, output: `use \x`},
		{name: "symbol code", input: `\symbol{65}\symbol{"42}\symbol{'103}`, output: "ABC"},
		{name: "definitions are dropped", input: `\newcommand{\x}{y}\theoremstyle{remark}z`, output: "z"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			tree := parse(t, tc.input)
			assert.Equal(t, tc.output, latex.String(tree.Root))
		})
	}
}

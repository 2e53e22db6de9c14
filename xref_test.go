package latex_test

import (
	"bytes"
	"log/slog"
	"testing"

	latex "github.com/eolymp/go-latextree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aux = `\relax
\providecommand\hyper@newdestlabel[2]{}
\newlabel{sec:intro}{{1}{1}{Introduction}{section.1}{}}
\newlabel{sec:intro@cref}{{[section][1][]1}{[1][1][]1}}
\newlabel{eq:1}{{2.1}{3}}
\newlabel{fig:$x$}{{$\alpha$}{4}}
\bibcite{knuth}{{K84}{1984}{}{}}
\bibcite{lamport}{2}
\@writefile{toc}{\contentsline {section}{\numberline {1}Introduction}{1}}
`

func TestParseAux(t *testing.T) {
	refs, err := latex.ParseAux(aux)
	require.NoError(t, err)

	want := &latex.References{
		Labels: map[string]string{
			"sec:intro": "1",
			"eq:1":      "2.1",
			"fig:$x$":   `\(\alpha\)`,
		},
		Citations: map[string]string{
			"knuth":   "K84",
			"lamport": "2",
		},
	}

	if diff := cmp.Diff(want, refs); diff != "" {
		t.Errorf("References do not match (-want +got):\n%s", diff)
	}
}

func TestParseAux_Error(t *testing.T) {
	_, err := latex.ParseAux("\\relax\n\\newlabel{a}{{1}{1}\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, latex.ErrSyntax)
}

func TestReferences(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		output string
	}{
		{name: "ref", input: `Section \ref{sec:intro}`, output: "Section 1"},
		{name: "eqref", input: `see \eqref{eq:1}`, output: "see (2.1)"},
		{name: "missing label", input: `\ref{nope}`, output: "?"},
		{name: "several keys", input: `\cite{knuth, lamport,missing}`, output: "K84, 2, ?"},
		{name: "ref inside math", input: `$x_{\ref{eq:1}}$`, output: "x_2.1"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			tree := parse(t, tc.input, latex.WithAux(aux))
			assert.Equal(t, tc.output, latex.String(tree.Root))
		})
	}
}

func TestReferences_Unresolved(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, nil))

	tree := parse(t, "x\n\\ref{a,b} \\cite{c}", latex.WithLogger(log))

	refs := tree.Find(latex.RefKind)
	require.Len(t, refs, 1)
	assert.Equal(t, "a,b", refs[0].Label)
	assert.Equal(t, "?, ?", refs[0].Ref)

	assert.Contains(t, buf.String(), `msg="unresolved reference" label=a line=2`)
	assert.Contains(t, buf.String(), `msg="unresolved reference" label=b line=2`)
	assert.Contains(t, buf.String(), `msg="unresolved citation" key=c line=2`)
}

func TestLabels(t *testing.T) {
	input := "\\section{Intro}\\label{sec:intro}\n\\begin{equation}\nx\\label{eq:1}\n\\end{equation}\n\\begin{thebibliography}{9}\n\\bibitem{knuth} Knuth\n\\end{thebibliography}"

	tree := parse(t, input, latex.WithAux(aux))

	section := tree.Find(latex.SectionKind)[0]
	assert.Equal(t, "sec:intro", section.Label)
	assert.Equal(t, "1", section.Ref)

	eq := tree.Find(latex.EnvironmentKind)[0]
	assert.Equal(t, "equation", eq.Name)
	assert.Equal(t, "eq:1", eq.Label)
	assert.Equal(t, "2.1", eq.Ref)

	tags := tree.Find(latex.TagKind)
	require.Len(t, tags, 1)
	assert.Equal(t, eq.ID, tags[0].Parent)
	assert.Equal(t, "2.1", tags[0].Ref)

	item := tree.Find(latex.ItemKind)[0]
	assert.Equal(t, "knuth", item.Label)
	assert.Equal(t, "K84", item.Ref)
}

func TestDecodeAux(t *testing.T) {
	tt := []struct {
		name   string
		input  []byte
		output string
	}{
		{name: "utf-8", input: []byte("\\newlabel{\u00e9}{{1}{1}}"), output: "\\newlabel{\u00e9}{{1}{1}}"},
		{name: "utf-8 with bom", input: append([]byte{0xEF, 0xBB, 0xBF}, "\\relax"...), output: "\\relax"},
		{name: "utf-16le with bom", input: []byte{0xFF, 0xFE, '\\', 0, 'x', 0}, output: "\\x"},
		{name: "utf-16be with bom", input: []byte{0xFE, 0xFF, 0, '\\', 0, 'x'}, output: "\\x"},
		{name: "latin-1", input: []byte{'c', 'a', 'f', 0xE9}, output: "caf\u00e9"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := latex.DecodeAux(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.output, got)
		})
	}
}

func TestWithAux_Invalid(t *testing.T) {
	_, err := latex.Parse("x", latex.WithAux(`\newlabel{a}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to read aux")
}

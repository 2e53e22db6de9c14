package latex_test

import (
	"strings"
	"testing"

	latex "github.com/eolymp/go-latextree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const config = `symbols:
  euro: "&euro;"
lists: [tasks]
math: [dmath]
verbatim: [code]
macros:
  R: \mathbb{R}
  \N: \mathbb{N}
theorem_style: definition
`

func TestLoadConfig(t *testing.T) {
	c, err := latex.LoadConfig(strings.NewReader(config))
	require.NoError(t, err)

	assert.Equal(t, &latex.Config{
		Symbols:      map[string]string{"euro": "&euro;"},
		Lists:        []string{"tasks"},
		Math:         []string{"dmath"},
		Verbatim:     []string{"code"},
		Macros:       map[string]string{"R": `\mathbb{R}`, `\N`: `\mathbb{N}`},
		TheoremStyle: "definition",
	}, c)
}

func TestLoadConfig_Empty(t *testing.T) {
	c, err := latex.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, &latex.Config{}, c)
}

func TestLoadConfig_Errors(t *testing.T) {
	tt := []struct {
		name    string
		input   string
		message string
	}{
		{name: "unknown field", input: "colors: [red]", message: "unable to decode config"},
		{name: "invalid environment", input: "lists: ['my list']", message: `invalid environment name "my list"`},
		{name: "invalid macro", input: "macros: {'a b': x}", message: `invalid macro name "a b"`},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := latex.LoadConfig(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestWithConfig(t *testing.T) {
	c, err := latex.LoadConfig(strings.NewReader(config))
	require.NoError(t, err)

	input := `\euro 5\begin{tasks}\item a\end{tasks}\begin{dmath}x\end{dmath}\begin{code}\x\end{code}$\R$`

	tree := parse(t, input, latex.WithConfig(c))
	assert.Equal(t, "document(symbol:euro text environment:tasks(item:item(text)) environment:dmath(text) verbatim:code environment:math(macro:R(text group(text))))", shape(tree.Root))
	assert.Equal(t, `€5 ax\x\mathbbR`, latex.String(tree.Root))

	dmath := tree.Find(latex.EnvironmentKind)[1]
	assert.True(t, dmath.HasClass(latex.ClassDisplay))

	code := tree.Find(latex.VerbatimKind)[0]
	assert.Equal(t, `\x`, code.Body)

	tree = parse(t, `\newtheorem{d}{D}\begin{d}x\end{d}`, latex.WithConfig(c))
	assert.True(t, tree.Find(latex.EnvironmentKind)[0].HasClass("theorem-definition"))
}

package latex_test

import (
	"testing"

	latex "github.com/eolymp/go-latextree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccents(t *testing.T) {
	tt := []struct {
		name    string
		input   string
		content string
		body    string
	}{
		{name: "acute", input: `\'e`, content: "\u00e9", body: "&eacute;"},
		{name: "umlaut in group", input: `\"{o}`, content: "\u00f6", body: "&ouml;"},
		{name: "dotless i", input: `\^{\i}`, content: "\u00ee", body: "&icirc;"},
		{name: "letter accent with space", input: `\c c`, content: "\u00e7", body: "&ccedil;"},
		{name: "caron", input: `\v{s}`, content: "\u0161", body: "&scaron;"},
		{name: "tilde", input: `\~n`, content: "\u00f1", body: "&ntilde;"},
		{name: "no entity", input: `\d{s}`, content: "\u1e63", body: latex.Unsupported},
		{name: "no precomposed character", input: `\'x`, content: "x\u0301", body: latex.Unsupported},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := latex.NewParser().Tokenize(tc.input)
			require.NoError(t, err)
			require.Len(t, tokens, 1)

			assert.Equal(t, latex.AccentToken, tokens[0].Type)
			assert.Equal(t, tc.content, tokens[0].Content)
			assert.Equal(t, tc.body, tokens[0].Body)
		})
	}
}

func TestAccents_MissingArgument(t *testing.T) {
	_, err := latex.NewParser().Tokenize(`\' e`)
	assert.ErrorIs(t, err, latex.ErrSyntax)
}

func TestSymbols(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		body   string
		output string
	}{
		{name: "entity", input: `\copyright`, body: "&copy;", output: "\u00a9"},
		{name: "dots", input: `\ldots`, body: "&hellip;", output: "\u2026"},
		{name: "thin space", input: `\,`, body: "&thinsp;", output: "\u2009"},
		{name: "control space", input: `\ `, body: " ", output: " "},
		{name: "italic correction", input: `\/`, body: "", output: ""},
		{name: "dotless i", input: `\i`, body: "&imath;", output: "\u0131"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			tree := parse(t, tc.input)

			symbols := tree.Find(latex.SymbolKind)
			require.Len(t, symbols, 1)
			assert.Equal(t, tc.body, symbols[0].Body)
			assert.Equal(t, tc.output, latex.String(tree.Root))
		})
	}
}

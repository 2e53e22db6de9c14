package latex

import (
	"sort"
	"strings"
)

// Macro is a command defined with \newcommand, \def and alike.
type Macro struct {
	Name       string
	Arity      int
	HasDefault bool // first argument is optional
	Default    string
	Body       string
	Long       bool
}

// Signature of the macro invocation.
func (m *Macro) Signature() Signature {
	return argSignature(false, m.Arity, m.HasDefault)
}

// Expand substitutes arguments into the body. Absent optional argument is
// replaced with the default value.
func (m *Macro) Expand(c Call) string {
	return substitute(m.Body, arguments(c, m.HasDefault, m.Default))
}

// Environment is defined with \newenvironment.
type Environment struct {
	Name       string
	Arity      int
	HasDefault bool
	Default    string
	Begin      string
	End        string
}

// Signature of the \begin{name} invocation, name group included.
func (e *Environment) Signature() Signature {
	return argSignature(true, e.Arity, e.HasDefault)
}

// Expand returns begin code with substituted arguments. Arguments are not
// available in the end code.
func (e *Environment) Expand(c Call) string {
	return substitute(e.Begin, arguments(c, e.HasDefault, e.Default))
}

// Theorem is defined with \newtheorem.
type Theorem struct {
	Name    string
	Heading string
	Shared  string // counter shared with another theorem
	Parent  string // counter which resets this one, e.g. "section"
	Style   string
	Starred bool
}

// Counter returns counter name used for numbering.
func (t *Theorem) Counter() string {
	if t.Shared != "" {
		return t.Shared
	}

	return t.Name
}

func argSignature(env bool, arity int, optional bool) Signature {
	sig := Signature{skipOne: env}
	if env {
		sig.units = append(sig.units, mandatoryUnit)
	}

	for i := 0; i < arity; i++ {
		if i == 0 && optional {
			sig.units = append(sig.units, optionalUnit)
		} else {
			sig.units = append(sig.units, mandatoryUnit)
		}
	}

	return sig
}

func arguments(c Call, optional bool, def string) []string {
	args := append([]string(nil), c.Args...)
	if optional && len(args) > 0 && !c.Present[0] {
		args[0] = def
	}

	return args
}

// substitute replaces #1..#9 with arguments and ## with #
func substitute(body string, args []string) string {
	b := strings.Builder{}
	runes := []rune(body)

	for i := 0; i < len(runes); i++ {
		if runes[i] != '#' || i+1 >= len(runes) {
			b.WriteRune(runes[i])
			continue
		}

		next := runes[i+1]
		switch {
		case next == '#':
			b.WriteRune('#')
			i++
		case '1' <= next && next <= '9' && int(next-'0') <= len(args):
			b.WriteString(args[next-'1'])
			i++
		default:
			b.WriteRune(runes[i])
		}
	}

	return b.String()
}

type version[T any] struct {
	at    int
	value T
}

// table keeps every definition of a name along with the source offset where
// it was made, so that lookups see exactly what was defined before a given
// point of the document.
type table[T any] struct {
	entries map[string][]version[T]
}

func newTable[T any]() *table[T] {
	return &table[T]{entries: map[string][]version[T]{}}
}

func (t *table[T]) define(name string, at int, value T) {
	list := t.entries[name]

	i := sort.Search(len(list), func(i int) bool { return list[i].at > at })
	list = append(list, version[T]{})
	copy(list[i+1:], list[i:])
	list[i] = version[T]{at: at, value: value}

	t.entries[name] = list
}

// lookup returns the most recent definition made at or before offset at
func (t *table[T]) lookup(name string, at int) (value T, ok bool) {
	list := t.entries[name]
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].at <= at {
			return list[i].value, true
		}
	}

	return
}

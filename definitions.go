package latex

import (
	"strconv"
	"strings"
)

// scanNewcommand reads \newcommand{\name}[n][default]{body}, also
// \renewcommand and \providecommand. Starred forms do not allow blank lines in
// the body.
func scanNewcommand(t *Tokenizer, start Mark, name string) (Token, error) {
	star := t.star()

	cmd, err := t.definedName(start, name)
	if err != nil {
		return Token{}, err
	}

	arity, optional, def, err := t.parameters(start, name)
	if err != nil {
		return Token{}, err
	}

	body, err := t.argument(name, !star)
	if err != nil {
		return Token{}, err
	}

	at := t.offset(start)
	if name == "providecommand" && t.ctx.known(cmd, at) {
		t.ctx.log.Debug("command is already defined", "name", cmd, "line", start.line)
	} else {
		t.ctx.macros.define(cmd, at, &Macro{Name: cmd, Arity: arity, HasDefault: optional, Default: def, Body: body, Long: !star})
		t.ctx.log.Debug("command defined", "name", cmd, "arity", arity, "line", start.line)
	}

	return t.definition(start, name, star, cmd, body), nil
}

// scanDef reads \def\name#1#2{body}, delimited parameters are not supported
func scanDef(t *Tokenizer, start Mark, name string) (Token, error) {
	cmd, err := t.definedName(start, name)
	if err != nil {
		return Token{}, err
	}

	t.skipBlanks()

	arity := 0
	for {
		r, ok := t.s.Peek()
		if !ok {
			return Token{}, t.s.errorAt(start, `\def\%s has no body`, cmd)
		}

		if r == '{' {
			break
		}

		if r != '#' {
			return Token{}, t.s.errorAt(start, `\def\%s: delimited parameters are not supported`, cmd)
		}

		t.s.Advance()
		if d, ok := t.s.Next(); !ok || d != rune('1'+arity) {
			return Token{}, t.s.errorAt(start, `\def\%s: parameters must be numbered consecutively`, cmd)
		}

		arity++
	}

	body, err := t.s.Group('{', '}', true)
	if err != nil {
		return Token{}, err
	}

	t.ctx.macros.define(cmd, t.offset(start), &Macro{Name: cmd, Arity: arity, Body: body, Long: true})
	t.ctx.log.Debug("command defined", "name", cmd, "arity", arity, "line", start.line)

	return t.definition(start, name, false, cmd, body), nil
}

// scanMathOperator reads \DeclareMathOperator{\name}{text}
func scanMathOperator(t *Tokenizer, start Mark, name string) (Token, error) {
	star := t.star()

	cmd, err := t.definedName(start, name)
	if err != nil {
		return Token{}, err
	}

	text, err := t.argument(name, false)
	if err != nil {
		return Token{}, err
	}

	op := `\operatorname`
	if star {
		op += "*"
	}

	body := op + "{" + text + "}"

	t.ctx.macros.define(cmd, t.offset(start), &Macro{Name: cmd, Body: body})
	t.ctx.log.Debug("operator defined", "name", cmd, "line", start.line)

	return t.definition(start, name, star, cmd, body), nil
}

// scanNewenvironment reads \newenvironment{name}[n][default]{begin}{end}
func scanNewenvironment(t *Tokenizer, start Mark, name string) (Token, error) {
	star := t.star()

	env, err := t.envName(start)
	if err != nil {
		return Token{}, err
	}

	arity, optional, def, err := t.parameters(start, name)
	if err != nil {
		return Token{}, err
	}

	begin, err := t.argument(name, !star)
	if err != nil {
		return Token{}, err
	}

	end, err := t.argument(name, !star)
	if err != nil {
		return Token{}, err
	}

	t.ctx.environments.define(env, t.offset(start), &Environment{Name: env, Arity: arity, HasDefault: optional, Default: def, Begin: begin, End: end})
	t.ctx.log.Debug("environment defined", "name", env, "arity", arity, "line", start.line)

	tok := t.definition(start, name, star, env, begin)
	tok.Args = []string{begin, end}

	return tok, nil
}

// scanNewtheorem reads \newtheorem{name}[shared]{Heading}[parent] and \newtheorem*{name}{Heading}
func scanNewtheorem(t *Tokenizer, start Mark, name string) (Token, error) {
	star := t.star()

	env, err := t.envName(start)
	if err != nil {
		return Token{}, err
	}

	th := &Theorem{Name: env, Style: t.ctx.style, Starred: star}

	if !star {
		shared, ok, err := t.s.Optional()
		if err != nil {
			return Token{}, err
		}

		if ok {
			th.Shared = strings.TrimSpace(shared)
		}
	}

	heading, err := t.argument(name, false)
	if err != nil {
		return Token{}, err
	}

	th.Heading = strings.TrimSpace(heading)

	if !star {
		parent, ok, err := t.s.Optional()
		if err != nil {
			return Token{}, err
		}

		if ok && th.Shared != "" {
			return Token{}, t.s.errorAt(start, `\newtheorem{%s} can not have both shared and parent counters`, env)
		}

		if ok {
			th.Parent = strings.TrimSpace(parent)
		}
	}

	t.ctx.theorems.define(env, t.offset(start), th)
	t.ctx.log.Debug("theorem defined", "name", env, "style", th.Style, "line", start.line)

	tok := t.definition(start, name, star, env, th.Heading)
	tok.Options = th.Style

	return tok, nil
}

// scanTheoremstyle reads \theoremstyle{style} which applies to theorems defined after it
func scanTheoremstyle(t *Tokenizer, start Mark, name string) (Token, error) {
	style, err := t.argument(name, false)
	if err != nil {
		return Token{}, err
	}

	t.ctx.style = strings.TrimSpace(style)

	tok := t.token(start, DeclarationToken, name)
	tok.Content = t.ctx.style

	return tok, nil
}

// definedName reads name of a command being defined: {\name} or \name
func (t *Tokenizer) definedName(start Mark, cmd string) (string, error) {
	t.s.SkipFiller()

	raw := ""
	if r, ok := t.s.Peek(); ok && r == '{' {
		v, err := t.s.Group('{', '}', false)
		if err != nil {
			return "", err
		}

		raw = strings.TrimSpace(v)
	} else if ok && r == '\\' {
		m := t.s.Mark()
		t.s.Advance()
		if t.s.AlphaRun() == "" {
			t.s.Advance()
		}

		raw = t.s.Since(m)
	}

	name, ok := controlName(raw)
	if !ok {
		return "", t.s.errorAt(start, `\%s expects a command name`, cmd)
	}

	return name, nil
}

// controlName strips backslash from a control sequence, it returns false if
// raw is not a single control sequence
func controlName(raw string) (string, bool) {
	name, ok := strings.CutPrefix(raw, `\`)
	if !ok || name == "" {
		return "", false
	}

	if len([]rune(name)) == 1 {
		return name, true
	}

	for _, r := range name {
		if !isLetter(r) {
			return "", false
		}
	}

	return name, true
}

// parameters reads [n][default] part of a definition
func (t *Tokenizer) parameters(start Mark, cmd string) (arity int, optional bool, def string, err error) {
	v, ok, err := t.s.Optional()
	if err != nil || !ok {
		return 0, false, "", err
	}

	arity, err = strconv.Atoi(strings.TrimSpace(v))
	if err != nil || arity < 0 || arity > 9 {
		return 0, false, "", t.s.errorAt(start, `\%s: invalid number of arguments %q`, cmd, v)
	}

	def, optional, err = t.s.Optional()
	if err != nil {
		return 0, false, "", err
	}

	if optional && arity == 0 {
		return 0, false, "", t.s.errorAt(start, `\%s: default value requires at least one argument`, cmd)
	}

	return arity, optional, def, nil
}

func (t *Tokenizer) definition(start Mark, name string, star bool, defined, body string) Token {
	tok := t.token(start, DefinitionToken, name)
	tok.Content = defined
	tok.Body = body
	tok.Star = star

	return tok
}

package latex

import (
	"strings"
)

// genericEnv is the signature of environments with no arguments besides the name
var genericEnv = MustSignature("!{}")

// theoremEnv is the signature of theorem-like environments, the optional argument is a note
var theoremEnv = MustSignature("!{}[]")

// frame is an open construct: a group, an environment or math
type frame struct {
	group  bool
	name   string
	opener string
	class  string
	line   int
	source string
	custom *Environment
}

func (f frame) String() string {
	switch {
	case f.group:
		return "{"
	case f.opener == `\begin`:
		return `\begin{` + f.name + `}`
	default:
		return f.opener
	}
}

// Tokenizer splits LaTeX source into tokens in a single forward pass.
type Tokenizer struct {
	ctx   *Context
	s     *Scanner
	at    int  // offset assigned to every token of a nested pass, -1 for a document
	math  bool // source is a part of math content
	out   *[]Token
	stack *[]frame

	text      strings.Builder
	source    strings.Builder
	textStart Mark
}

func NewTokenizer(ctx *Context, src string) *Tokenizer {
	return &Tokenizer{ctx: ctx, s: NewScanner(src), at: -1, out: &[]Token{}, stack: &[]frame{}}
}

// tokenize parses a piece of LaTeX (macro body, command argument) which
// belongs to a token at a given offset and line.
func (ctx *Context) tokenize(src string, at, line int, math bool) ([]Token, error) {
	t := &Tokenizer{ctx: ctx, s: newScannerAt(src, line), at: at, math: math, out: &[]Token{}, stack: &[]frame{}}
	return t.Tokenize()
}

// Tokenize reads the whole input and returns tokens.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	if err := t.run(); err != nil {
		return nil, err
	}

	if stack := *t.stack; len(stack) > 0 {
		f := stack[len(stack)-1]
		return nil, syntaxError(f.line, f.source, "%s is never closed", f)
	}

	return trim(*t.out), nil
}

func (t *Tokenizer) run() error {
	for !t.s.EOF() {
		if err := t.step(); err != nil {
			return err
		}
	}

	t.flush()
	return nil
}

func (t *Tokenizer) step() error {
	start := t.s.Mark()
	r, _ := t.s.Next()

	switch r {
	case '\\':
		return t.control(start)
	case '{':
		t.open(frame{group: true, opener: "{", line: start.line, source: "{"}, t.token(start, GroupStartToken, ""))
	case '}':
		return t.closeGroup(start)
	case '$':
		return t.dollar(start)
	case '%':
		comment := "%" + t.s.SkipLine()
		if strings.HasSuffix(comment, "\n") && t.blankLine() {
			return t.paragraph(start)
		}

		t.write(start, "", comment)
	case '~':
		if t.inMath() {
			t.write(start, "~", "~")
		} else {
			t.write(start, " ", "~")
		}
	case '&':
		if t.inTabular() {
			t.emit(t.token(start, CellToken, "&"))
		} else {
			t.write(start, "&", "&")
		}
	case '\n':
		return t.newline(start)
	default:
		t.write(start, string(r), string(r))
	}

	return nil
}

// newline is either a line break inside a paragraph or a blank line which
// ends the paragraph
func (t *Tokenizer) newline(start Mark) error {
	if !t.blankLine() {
		t.write(start, "\n", "\n")
		return nil
	}

	return t.paragraph(start)
}

// blankLine checks if the line at the cursor has nothing but spaces, the
// cursor is not moved
func (t *Tokenizer) blankLine() bool {
	m := t.s.Mark()
	defer t.s.Reset(m)

	for {
		r, ok := t.s.Peek()
		if !ok {
			return false
		}

		switch r {
		case ' ', '\t', '\r':
			t.s.Advance()
		case '\n':
			return true
		default:
			return false
		}
	}
}

// paragraph ends the paragraph at a blank line
func (t *Tokenizer) paragraph(start Mark) error {
	if t.inMath() {
		return t.s.errorAt(start, "blank line inside math")
	}

	t.s.Whitespace()
	t.emit(t.token(start, ParagraphToken, "par"))

	return nil
}

func (t *Tokenizer) control(start Mark) error {
	r, ok := t.s.Peek()
	if !ok {
		t.write(start, `\`, `\`)
		return nil
	}

	if !isLetter(r) {
		t.s.Advance()
		return t.controlSymbol(start, r)
	}

	name := t.s.AlphaRun()
	switch name {
	case "begin":
		return t.begin(start)
	case "end":
		return t.end(start)
	case "verb":
		return t.verb(start)
	default:
		return t.command(start, name)
	}
}

func (t *Tokenizer) controlSymbol(start Mark, r rune) error {
	switch r {
	case '$', '%', '&', '#', '_', '{', '}':
		src := t.s.Since(start)
		if t.inMath() {
			t.write(start, src, src)
		} else {
			t.write(start, string(r), src)
		}

		return nil
	case '(':
		return t.openMath(start, "math", `\(`)
	case '[':
		return t.openMath(start, "displaymath", `\[`)
	case ')':
		return t.closeMath(start, `\(`)
	case ']':
		return t.closeMath(start, `\[`)
	default:
		return t.command(start, string(r))
	}
}

// command dispatches control sequence: user macros first, then the registry.
// Unknown commands are kept in text as they are.
func (t *Tokenizer) command(start Mark, name string) error {
	at := t.offset(start)
	word := isLetter(rune(name[0]))

	if m, ok := t.ctx.macros.lookup(name, at); ok {
		return t.invoke(start, m)
	}

	d := t.ctx.registry.Lookup(name)
	if d == nil || (t.inMath() && !d.Math) {
		if d == nil {
			t.ctx.log.Debug("unknown command", "name", name, "line", start.line)
		}

		src := t.s.Since(start)
		t.write(start, src, src)
		return nil
	}

	if d.Scan != nil {
		tok, err := d.Scan(t, start, name)
		if err != nil {
			return err
		}

		t.emit(tok)
		return nil
	}

	star := false
	if d.Type != SymbolToken && d.Type != AccentToken {
		star = t.star()
	}

	if word && len(d.Signature.scanned()) == 0 {
		t.skipBlanks()
	}

	// environment used as a command, eg. \center
	if d.Type == EnvStartToken {
		tok := t.token(start, DeclarationToken, name)
		tok.Class = d.Class
		t.emit(tok)
		return nil
	}

	c, err := t.call(start, name, star, d.Signature, d.Long)
	if err != nil {
		return err
	}

	t.emit(d.build(t.ctx, c))
	return nil
}

func (t *Tokenizer) invoke(start Mark, m *Macro) error {
	if m.Arity == 0 && isLetter(rune(m.Name[0])) {
		t.skipBlanks()
	}

	c, err := t.call(start, m.Name, false, m.Signature(), m.Long)
	if err != nil {
		return err
	}

	tok := c.Token(MacroToken)
	tok.Body = m.Expand(c)
	tok.Nested = true

	t.emit(tok)
	return nil
}

// call scans arguments according to the signature
func (t *Tokenizer) call(start Mark, name string, star bool, sig Signature, long bool) (Call, error) {
	c := Call{Name: name, Star: star, Line: start.line, Offset: t.offset(start)}

	optional, mandatory := false, false
	for _, u := range sig.scanned() {
		var (
			val     string
			present = true
			err     error
		)

		switch u {
		case optionalUnit:
			val, present, err = t.s.Optional()
			if !optional {
				c.Options, optional = val, true
			}
		case mandatoryUnit:
			val, err = t.argument(name, long)
			if !mandatory {
				c.Content, mandatory = val, true
			}
		case accentUnit:
			val, err = t.accentArgument(name)
		}

		if err != nil {
			return Call{}, err
		}

		c.Args = append(c.Args, val)
		c.Present = append(c.Present, present)
	}

	c.Source = t.s.Since(start)
	return c, nil
}

// argument reads mandatory {...} argument
func (t *Tokenizer) argument(name string, long bool) (string, error) {
	t.s.SkipFiller()

	if r, ok := t.s.Peek(); !ok || r != '{' {
		return "", t.s.Errorf(`missing argument of \%s`, name)
	}

	return t.s.Group('{', '}', long)
}

// accentArgument reads a single character, control sequence or a group
func (t *Tokenizer) accentArgument(name string) (string, error) {
	if isLetter(rune(name[0])) {
		t.skipBlanks()
	}

	r, ok := t.s.Peek()
	switch {
	case !ok || isWhitespace(r):
		return "", t.s.Errorf(`missing argument of \%s`, name)
	case r == '{':
		return t.s.Group('{', '}', false)
	case r == '\\':
		m := t.s.Mark()
		t.s.Advance()
		if t.s.AlphaRun() == "" {
			t.s.Advance()
		}

		return t.s.Since(m), nil
	default:
		t.s.Advance()
		return string(r), nil
	}
}

func (t *Tokenizer) begin(start Mark) error {
	name, err := t.envName(start)
	if err != nil {
		return err
	}

	at := t.offset(start)

	if env, ok := t.ctx.environments.lookup(name, at); ok {
		return t.beginCustom(start, name, env)
	}

	if th, ok := t.ctx.theorems.lookup(name, at); ok {
		return t.beginTheorem(start, name, th)
	}

	sig, class := genericEnv, ClassGeneric

	d := t.ctx.registry.Lookup(name)
	switch {
	case d == nil:
		t.ctx.log.Debug("unknown environment", "name", name, "line", start.line)
	case d.Type == EnvStartToken:
		sig, class = d.Signature, d.Class
	case d.Type == DeclarationToken:
		class = ClassDeclaration
	}

	if class == ClassVerbatim {
		return t.verbatim(start, name, sig)
	}

	c, err := t.call(start, name, false, sig, false)
	if err != nil {
		return err
	}

	tok := c.Token(EnvStartToken)
	tok.Class = class

	t.open(frame{name: name, opener: `\begin`, class: class, line: start.line, source: c.Source}, tok)
	return nil
}

// beginCustom opens environment defined with \newenvironment and tokenizes its begin code in place
func (t *Tokenizer) beginCustom(start Mark, name string, env *Environment) error {
	c, err := t.call(start, name, false, env.Signature(), false)
	if err != nil {
		return err
	}

	tok := c.Token(EnvStartToken)
	tok.Class = ClassCustom
	tok.Body = env.Expand(c)

	t.open(frame{name: name, opener: `\begin`, class: ClassCustom, line: start.line, source: c.Source, custom: env}, tok)

	return t.expand(start, tok.Body)
}

func (t *Tokenizer) beginTheorem(start Mark, name string, th *Theorem) error {
	c, err := t.call(start, name, false, theoremEnv, false)
	if err != nil {
		return err
	}

	tok := c.Token(EnvStartToken)
	tok.Class = ClassTheorem
	tok.Content = th.Heading

	t.open(frame{name: name, opener: `\begin`, class: ClassTheorem, line: start.line, source: c.Source}, tok)
	return nil
}

func (t *Tokenizer) end(start Mark) error {
	name, err := t.envName(start)
	if err != nil {
		return err
	}

	if f, ok := t.find(name); ok && f.custom != nil && f.custom.End != "" {
		if err := t.expand(start, f.custom.End); err != nil {
			return err
		}
	}

	top, ok := t.top()
	if !ok {
		return t.s.errorAt(start, `\end{%s} without matching \begin`, name)
	}

	if top.group || top.opener != `\begin` || top.name != name {
		return t.s.errorAt(start, `\end{%s} does not match %s on line %d`, name, top, top.line)
	}

	t.flush()
	t.pop()

	tok := t.token(start, EnvEndToken, name)
	tok.Class = top.class

	t.emit(tok)
	return nil
}

// expand tokenizes code of a custom environment in place, it shares the
// output and the stack of open constructs with the tokenizer
func (t *Tokenizer) expand(start Mark, src string) error {
	t.flush()

	if t.ctx.depth >= maxDepth {
		return t.s.errorAt(start, "environment expansion is nested too deep")
	}

	t.ctx.depth++
	defer func() { t.ctx.depth-- }()

	sub := &Tokenizer{ctx: t.ctx, s: newScannerAt(src, start.line), at: t.offset(start), math: t.math, out: t.out, stack: t.stack}
	return sub.run()
}

// verbatim reads environment body as is up to \end{name}
func (t *Tokenizer) verbatim(start Mark, name string, sig Signature) error {
	c, err := t.call(start, name, false, sig, false)
	if err != nil {
		return err
	}

	closing := `\end{` + name + `}`
	from := t.s.Pos()

	for !t.s.HasPrefix(closing) {
		if t.s.EOF() {
			return t.s.errorAt(start, `\begin{%s} is never closed`, name)
		}

		t.s.Advance()
	}

	body := t.s.Slice(from, t.s.Pos())
	for range closing {
		t.s.Advance()
	}

	tok := c.Token(VerbatimToken)
	tok.Body = body
	tok.Source = t.s.Since(start)
	tok.Class = ClassVerbatim

	t.emit(tok)
	return nil
}

// verb reads \verb|text|, where any non-letter can be used instead of "|"
func (t *Tokenizer) verb(start Mark) error {
	star := t.star()

	delim, ok := t.s.Next()
	if !ok || isLetter(delim) || isWhitespace(delim) {
		return t.s.errorAt(start, `\verb must be followed by a delimiter`)
	}

	from := t.s.Pos()
	for {
		r, ok := t.s.Peek()
		if !ok || r == '\n' {
			return t.s.errorAt(start, `\verb is not terminated`)
		}

		if r == delim {
			break
		}

		t.s.Advance()
	}

	body := t.s.Slice(from, t.s.Pos())
	t.s.Advance()

	tok := t.token(start, VerbatimToken, "verb")
	tok.Body = body
	tok.Star = star
	tok.Class = ClassVerbatim

	t.emit(tok)
	return nil
}

func (t *Tokenizer) closeGroup(start Mark) error {
	top, ok := t.top()
	if !ok {
		return t.s.errorAt(start, "unbalanced }")
	}

	if !top.group {
		return t.s.errorAt(start, "} closes %s opened on line %d", top, top.line)
	}

	t.flush()
	t.pop()
	t.emit(t.token(start, GroupEndToken, ""))

	return nil
}

// envName reads {name} of \begin and \end
func (t *Tokenizer) envName(start Mark) (string, error) {
	t.s.SkipFiller()

	if r, ok := t.s.Peek(); !ok || r != '{' {
		return "", t.s.errorAt(start, "missing environment name")
	}

	raw, err := t.s.Group('{', '}', false)
	if err != nil {
		return "", err
	}

	name := strings.TrimSpace(raw)
	if !validEnvName(name) {
		return "", t.s.errorAt(start, "invalid environment name %q", name)
	}

	return name, nil
}

func validEnvName(name string) bool {
	name = strings.TrimSuffix(name, "*")
	if name == "" {
		return false
	}

	for _, r := range name {
		if !isLetter(r) {
			return false
		}
	}

	return true
}

// write adds piece of text to the pending text token
func (t *Tokenizer) write(start Mark, content, source string) {
	if t.source.Len() == 0 {
		t.textStart = start
	}

	t.text.WriteString(content)
	t.source.WriteString(source)
}

// flush emits pending text
func (t *Tokenizer) flush() {
	if t.source.Len() == 0 {
		return
	}

	content := t.text.String()
	if !t.inMath() {
		content = ligature(content)
	}

	*t.out = append(*t.out, Token{
		Type:    TextToken,
		Content: content,
		Source:  t.source.String(),
		Line:    t.textStart.line,
		Offset:  t.offset(t.textStart),
	})

	t.text.Reset()
	t.source.Reset()
}

func (t *Tokenizer) emit(tok Token) {
	t.flush()
	*t.out = append(*t.out, tok)
}

// open emits token which starts a new construct
func (t *Tokenizer) open(f frame, tok Token) {
	t.flush()
	*t.stack = append(*t.stack, f)
	t.emit(tok)
}

func (t *Tokenizer) pop() {
	*t.stack = (*t.stack)[:len(*t.stack)-1]
}

func (t *Tokenizer) top() (frame, bool) {
	stack := *t.stack
	if len(stack) == 0 {
		return frame{}, false
	}

	return stack[len(stack)-1], true
}

// find returns the innermost open environment with a given name
func (t *Tokenizer) find(name string) (frame, bool) {
	stack := *t.stack
	for i := len(stack) - 1; i >= 0; i-- {
		if !stack[i].group && stack[i].name == name {
			return stack[i], true
		}
	}

	return frame{}, false
}

func (t *Tokenizer) inMath() bool {
	if t.math {
		return true
	}

	for _, f := range *t.stack {
		if f.class == ClassMath || f.class == ClassDisplay {
			return true
		}
	}

	return false
}

// inTabular checks if the innermost environment is tabular
func (t *Tokenizer) inTabular() bool {
	stack := *t.stack
	for i := len(stack) - 1; i >= 0; i-- {
		if !stack[i].group {
			return stack[i].class == ClassTabular
		}
	}

	return false
}

func (t *Tokenizer) token(start Mark, typ TokenType, name string) Token {
	return Token{Type: typ, Name: name, Source: t.s.Since(start), Line: start.line, Offset: t.offset(start)}
}

func (t *Tokenizer) offset(m Mark) int {
	if t.at >= 0 {
		return t.at
	}

	return m.pos
}

func (t *Tokenizer) star() bool {
	if r, ok := t.s.Peek(); ok && r == '*' {
		t.s.Advance()
		return true
	}

	return false
}

// skipBlanks skips spaces after a control word
func (t *Tokenizer) skipBlanks() {
	for {
		r, ok := t.s.Peek()
		if !ok || (r != ' ' && r != '\t') {
			return
		}

		t.s.Advance()
	}
}

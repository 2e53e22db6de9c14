package latex

var mathClosers = map[string]string{
	"$":  "$",
	"$$": "$$",
	`\(`: `\)`,
	`\[`: `\]`,
}

// dollar opens or closes $...$ and $$...$$ math. A single $ always closes
// inline math opened with $.
func (t *Tokenizer) dollar(start Mark) error {
	if top, ok := t.top(); ok && top.opener == "$" {
		return t.closeMath(start, "$")
	}

	if r, ok := t.s.Peek(); ok && r == '$' {
		t.s.Advance()

		if top, ok := t.top(); ok && top.opener == "$$" {
			return t.closeMath(start, "$$")
		}

		return t.openMath(start, "displaymath", "$$")
	}

	return t.openMath(start, "math", "$")
}

func (t *Tokenizer) openMath(start Mark, name, opener string) error {
	class := ClassMath
	if name == "displaymath" {
		class = ClassDisplay
	}

	tok := t.token(start, EnvStartToken, name)
	tok.Class = class

	t.open(frame{name: name, opener: opener, class: class, line: start.line, source: opener}, tok)
	return nil
}

func (t *Tokenizer) closeMath(start Mark, opener string) error {
	top, ok := t.top()
	if !ok || top.opener != opener {
		return t.s.errorAt(start, "%s without matching %s", mathClosers[opener], opener)
	}

	t.flush()
	t.pop()

	tok := t.token(start, EnvEndToken, top.name)
	tok.Class = top.class

	t.emit(tok)
	return nil
}

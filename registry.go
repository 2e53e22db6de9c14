package latex

// Call is a command invocation with its arguments scanned according to the
// descriptor's signature.
type Call struct {
	Name    string
	Star    bool
	Args    []string // every scanned unit in order, absent optional units are empty
	Present []bool   // whether the corresponding unit was present in the source
	Options string   // first optional unit
	Content string   // first mandatory unit
	Source  string
	Line    int
	Offset  int
}

// Token creates token of a given type carrying everything known about the call.
func (c Call) Token(typ TokenType) Token {
	return Token{
		Type:    typ,
		Name:    c.Name,
		Content: c.Content,
		Options: c.Options,
		Args:    c.Args,
		Source:  c.Source,
		Line:    c.Line,
		Offset:  c.Offset,
		Star:    c.Star,
	}
}

// BuildFunc constructs token from a call. It must not modify the context.
type BuildFunc func(ctx *Context, c Call) Token

// ScanFunc is a dedicated scanner for commands whose arguments do not follow a
// signature (definitions). It is called with the cursor right after the
// command name.
type ScanFunc func(t *Tokenizer, start Mark, name string) (Token, error)

// Descriptor describes a family of commands or environments.
type Descriptor struct {
	Type      TokenType
	Names     map[string]bool
	Symbols   map[string]string // name to replacement, for symbol families
	Signature Signature
	Class     string
	Nested    bool // content is LaTeX which is parsed into children
	Long      bool // arguments may contain blank lines
	Math      bool // recognized in math mode
	Build     BuildFunc
	Scan      ScanFunc
}

func (d *Descriptor) Matches(name string) bool {
	if d.Names[name] {
		return true
	}

	_, ok := d.Symbols[name]
	return ok
}

func (d *Descriptor) build(ctx *Context, c Call) Token {
	var tok Token
	if d.Build != nil {
		tok = d.Build(ctx, c)
	} else {
		tok = c.Token(d.Type)
	}

	if tok.Class == "" {
		tok.Class = d.Class
	}

	tok.Nested = tok.Nested || d.Nested
	return tok
}

// Registry is an ordered list of descriptors, first match wins.
type Registry struct {
	descriptors []*Descriptor
}

func NewRegistry(descriptors ...*Descriptor) *Registry {
	return &Registry{descriptors: descriptors}
}

// DefaultRegistry returns registry with all builtin commands and environments.
func DefaultRegistry() *Registry {
	return NewRegistry(builtins()...)
}

// Extend returns a new registry where given descriptors take precedence over
// existing ones.
func (r *Registry) Extend(descriptors ...*Descriptor) *Registry {
	all := make([]*Descriptor, 0, len(descriptors)+len(r.descriptors))
	all = append(all, descriptors...)
	all = append(all, r.descriptors...)

	return &Registry{descriptors: all}
}

func (r *Registry) Lookup(name string) *Descriptor {
	for _, d := range r.descriptors {
		if d.Matches(name) {
			return d
		}
	}

	return nil
}

func (r *Registry) Descriptors() []*Descriptor {
	return append([]*Descriptor(nil), r.descriptors...)
}

func names(list ...string) map[string]bool {
	m := make(map[string]bool, len(list))
	for _, n := range list {
		m[n] = true
	}

	return m
}

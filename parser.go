package latex

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/eolymp/go-latextree/internal/logging"
)

// Parser converts LaTeX documents into trees. Parser can be reused, each
// document is parsed with its own context.
type Parser struct {
	registry *Registry
	config   *Config
	aux      string
	log      *slog.Logger
	defs     map[string]string
}

func Parse(source string, opts ...Option) (*Tree, error) {
	return NewParser(opts...).Parse(source)
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		registry: DefaultRegistry(),
		log:      logging.NewNop(),
		defs:     map[string]string{},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Define adds a command without arguments, eg. Define("ProblemName", "A+B")
// makes \ProblemName expand to "A+B".
func (p *Parser) Define(key, val string) {
	p.defs[key] = val
}

func (p *Parser) Value(key string) string {
	return p.defs[key]
}

// Context creates context for a new document.
func (p *Parser) Context() (*Context, error) {
	refs, err := ParseAux(p.aux)
	if err != nil {
		return nil, fmt.Errorf("unable to read aux: %w", err)
	}

	registry := p.registry
	if p.config != nil {
		registry = registry.Extend(p.config.descriptors()...)
	}

	ctx := NewContext(refs, registry, p.log)

	if p.config != nil {
		p.config.apply(ctx)
	}

	for key, val := range p.defs {
		ctx.Define(strings.TrimPrefix(key, `\`), val)
	}

	return ctx, nil
}

// Tokenize splits document into tokens.
func (p *Parser) Tokenize(source string) ([]Token, error) {
	ctx, err := p.Context()
	if err != nil {
		return nil, err
	}

	return NewTokenizer(ctx, source).Tokenize()
}

func (p *Parser) Parse(source string) (*Tree, error) {
	ctx, err := p.Context()
	if err != nil {
		return nil, err
	}

	tokens, err := NewTokenizer(ctx, source).Tokenize()
	if err != nil {
		return nil, err
	}

	tree, err := build(ctx, tokens)
	if err != nil {
		return nil, err
	}

	p.log.Debug("document parsed", "tokens", len(tokens), "nodes", tree.Len())
	return tree, nil
}

package latex

import (
	"log/slog"
)

type Option func(*Parser)

// WithAux provides content of the .aux file used to resolve references and citations.
func WithAux(aux string) Option {
	return func(p *Parser) {
		p.aux = aux
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithConfig adds symbols, environments and macros from the config.
func WithConfig(c *Config) Option {
	return func(p *Parser) {
		p.config = c
	}
}

// WithRegistry replaces builtin commands.
func WithRegistry(r *Registry) Option {
	return func(p *Parser) {
		p.registry = r
	}
}

package latex

import (
	"log/slog"

	"github.com/eolymp/go-latextree/internal/logging"
)

// maxDepth limits nested macro expansion
const maxDepth = 64

// unresolved replaces numbers of labels and citations missing from aux
const unresolved = "?"

// Context holds per-document state: cross reference maps, user definitions
// and theorem style. A context is created for every parsed document.
type Context struct {
	Labels    map[string]string
	Citations map[string]string

	registry     *Registry
	macros       *table[*Macro]
	environments *table[*Environment]
	theorems     *table[*Theorem]
	style        string
	depth        int
	log          *slog.Logger
}

func NewContext(refs *References, registry *Registry, log *slog.Logger) *Context {
	if refs == nil {
		refs = &References{}
	}

	if registry == nil {
		registry = DefaultRegistry()
	}

	if log == nil {
		log = logging.NewNop()
	}

	ctx := &Context{
		Labels:       refs.Labels,
		Citations:    refs.Citations,
		registry:     registry,
		macros:       newTable[*Macro](),
		environments: newTable[*Environment](),
		theorems:     newTable[*Theorem](),
		style:        "plain",
		log:          log,
	}

	if ctx.Labels == nil {
		ctx.Labels = map[string]string{}
	}

	if ctx.Citations == nil {
		ctx.Citations = map[string]string{}
	}

	return ctx
}

// Define registers macro visible everywhere in the document.
func (ctx *Context) Define(name, body string) {
	ctx.macros.define(name, -1, &Macro{Name: name, Body: body})
}

func (ctx *Context) lookupLabel(key string) string {
	if v, ok := ctx.Labels[key]; ok {
		return v
	}

	return unresolved
}

func (ctx *Context) lookupCitation(key string) string {
	if v, ok := ctx.Citations[key]; ok {
		return v
	}

	return unresolved
}

func (ctx *Context) resolveLabel(key string, line int) string {
	v, ok := ctx.Labels[key]
	if !ok {
		ctx.log.Warn("unresolved reference", "label", key, "line", line)
		return unresolved
	}

	return v
}

func (ctx *Context) resolveCitation(key string, line int) string {
	v, ok := ctx.Citations[key]
	if !ok {
		ctx.log.Warn("unresolved citation", "key", key, "line", line)
		return unresolved
	}

	return v
}

// known checks if command name is defined either by user or by the registry
func (ctx *Context) known(name string, at int) bool {
	if _, ok := ctx.macros.lookup(name, at); ok {
		return true
	}

	return ctx.registry.Lookup(name) != nil
}

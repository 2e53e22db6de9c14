package latex

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config extends builtin commands, for example:
//
//	symbols:
//	  euro: "&euro;"
//	lists: [tasks]
//	math: [dmath]
//	verbatim: [code]
//	macros:
//	  R: \mathbb{R}
//	theorem_style: definition
type Config struct {
	Symbols      map[string]string `yaml:"symbols"`
	Lists        []string          `yaml:"lists"`
	Math         []string          `yaml:"math"`
	Verbatim     []string          `yaml:"verbatim"`
	Macros       map[string]string `yaml:"macros"`
	TheoremStyle string            `yaml:"theorem_style"`
}

func LoadConfig(r io.Reader) (*Config, error) {
	c := &Config{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks names of configured environments and macros.
func (c *Config) Validate() error {
	for _, group := range [][]string{c.Lists, c.Math, c.Verbatim} {
		for _, name := range group {
			if !validEnvName(name) {
				return fmt.Errorf("invalid environment name %q", name)
			}
		}
	}

	for name := range c.Macros {
		if _, ok := controlName(`\` + strings.TrimPrefix(name, `\`)); !ok {
			return fmt.Errorf("invalid macro name %q", name)
		}
	}

	return nil
}

// descriptors which take precedence over builtin ones
func (c *Config) descriptors() (list []*Descriptor) {
	if len(c.Symbols) > 0 {
		symbols := map[string]string{}
		for name, value := range c.Symbols {
			symbols[strings.TrimPrefix(name, `\`)] = value
		}

		list = append(list, &Descriptor{Type: SymbolToken, Symbols: symbols, Build: symbolBuilder(symbols)})
	}

	if len(c.Lists) > 0 {
		list = append(list, &Descriptor{Type: EnvStartToken, Class: ClassList, Names: names(c.Lists...), Signature: MustSignature("!{}[]")})
	}

	if len(c.Math) > 0 {
		list = append(list, &Descriptor{Type: EnvStartToken, Class: ClassDisplay, Names: names(c.Math...), Signature: genericEnv})
	}

	if len(c.Verbatim) > 0 {
		list = append(list, &Descriptor{Type: EnvStartToken, Class: ClassVerbatim, Names: names(c.Verbatim...), Signature: MustSignature("!{}[]")})
	}

	return
}

// apply adds configured macros and theorem style to the context
func (c *Config) apply(ctx *Context) {
	keys := make([]string, 0, len(c.Macros))
	for name := range c.Macros {
		keys = append(keys, name)
	}

	sort.Strings(keys)

	for _, name := range keys {
		ctx.Define(strings.TrimPrefix(name, `\`), c.Macros[name])
	}

	if c.TheoremStyle != "" {
		ctx.style = c.TheoremStyle
	}
}

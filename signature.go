package latex

import (
	"fmt"
	"strings"
)

type unit int

const (
	mandatoryUnit unit = iota
	optionalUnit
	accentUnit
)

// Signature describes arguments of a command: "{}" is a mandatory argument,
// "[]" is optional, "^" is an accent argument (single character or a braced
// group). Leading "!" means the first unit is already consumed by the caller,
// which is the case for environment names.
type Signature struct {
	units   []unit
	skipOne bool
}

func ParseSignature(s string) (Signature, error) {
	sig := Signature{}

	rest := s
	if strings.HasPrefix(rest, "!") {
		sig.skipOne = true
		rest = rest[1:]
	}

	for rest != "" {
		switch {
		case strings.HasPrefix(rest, "{}"):
			sig.units = append(sig.units, mandatoryUnit)
			rest = rest[2:]
		case strings.HasPrefix(rest, "[]"):
			sig.units = append(sig.units, optionalUnit)
			rest = rest[2:]
		case strings.HasPrefix(rest, "^"):
			sig.units = append(sig.units, accentUnit)
			rest = rest[1:]
		default:
			return Signature{}, fmt.Errorf("invalid signature %q at %q", s, rest)
		}
	}

	if sig.skipOne && (len(sig.units) == 0 || sig.units[0] != mandatoryUnit) {
		return Signature{}, fmt.Errorf("invalid signature %q: \"!\" must be followed by \"{}\"", s)
	}

	return sig, nil
}

// MustSignature is ParseSignature which panics on error, for use in descriptor tables.
func MustSignature(s string) Signature {
	sig, err := ParseSignature(s)
	if err != nil {
		panic(err)
	}

	return sig
}

func (s Signature) String() string {
	b := strings.Builder{}
	if s.skipOne {
		b.WriteString("!")
	}

	for _, u := range s.units {
		switch u {
		case mandatoryUnit:
			b.WriteString("{}")
		case optionalUnit:
			b.WriteString("[]")
		case accentUnit:
			b.WriteString("^")
		}
	}

	return b.String()
}

// scanned returns units the tokenizer has to read
func (s Signature) scanned() []unit {
	if s.skipOne {
		return s.units[1:]
	}

	return s.units
}

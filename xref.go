package latex

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// References are label numbers and citation labels read from an .aux file.
type References struct {
	Labels    map[string]string
	Citations map[string]string
}

// ParseAux reads \newlabel and \bibcite records of an .aux file, other records are ignored.
func ParseAux(aux string) (*References, error) {
	refs := &References{Labels: map[string]string{}, Citations: map[string]string{}}

	s := NewScanner(aux)
	for !s.EOF() {
		if r, _ := s.Next(); r != '\\' {
			continue
		}

		start := s.Mark()

		switch s.AlphaRun() {
		case "newlabel":
			key, value, err := auxRecord(s)
			if err != nil {
				return nil, err
			}

			if strings.HasSuffix(key, "@cref") {
				continue
			}

			number, err := firstGroup(value, start.line)
			if err != nil {
				return nil, err
			}

			refs.Labels[key] = mathDelimiters(number)
		case "bibcite":
			key, value, err := auxRecord(s)
			if err != nil {
				return nil, err
			}

			number, err := firstGroup(value, start.line)
			if err != nil {
				return nil, err
			}

			refs.Citations[key] = mathDelimiters(number)
		default:
			s.SkipLine()
		}
	}

	return refs, nil
}

// auxRecord reads {key}{value}
func auxRecord(s *Scanner) (key, value string, err error) {
	s.SkipFiller()
	if key, err = s.Group('{', '}', false); err != nil {
		return
	}

	s.SkipFiller()
	if value, err = s.Group('{', '}', false); err != nil {
		return
	}

	return strings.TrimSpace(key), value, nil
}

// firstGroup returns content of the first {...} group, or the value itself
// when it does not start with a group
func firstGroup(value string, line int) (string, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "{") {
		return value, nil
	}

	s := newScannerAt(value, line)
	v, err := s.Balanced('{', '}')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(v), nil
}

// mathDelimiters replaces $...$ with \(...\)
func mathDelimiters(v string) string {
	if !strings.Contains(v, "$") {
		return v
	}

	b := strings.Builder{}
	open := false
	escaped := false

	for _, r := range v {
		switch {
		case escaped:
			escaped = false
			b.WriteRune(r)
		case r == '\\':
			escaped = true
			b.WriteRune(r)
		case r == '$' && !open:
			open = true
			b.WriteString(`\(`)
		case r == '$':
			open = false
			b.WriteString(`\)`)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeAux converts content of .aux file to string. UTF-8 and UTF-16 with
// BOM are recognized, input which is not valid UTF-8 is read as Latin-1.
func DecodeAux(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8), bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return "", fmt.Errorf("unable to decode aux: %w", err)
		}

		return string(out), nil
	case utf8.Valid(data):
		return string(data), nil
	default:
		out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
		if err != nil {
			return "", fmt.Errorf("unable to decode aux as latin-1: %w", err)
		}

		return string(out), nil
	}
}

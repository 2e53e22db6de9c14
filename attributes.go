package latex

import (
	"errors"
	"strings"
)

// KeyValue parses key-value parameters in this format: key=value, key=value, for example as used in \\includegraphics option parameter.
// Values can be quoted with single or double quotes, quote inside value can be escaped with backslash. Parts without value are ignored.
func KeyValue(raw string) (map[string]string, error) {
	kv := map[string]string{}

	parts, err := splitPairs(raw)
	if err != nil {
		return nil, err
	}

	for _, part := range parts {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}

		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" || strings.ContainsAny(key, " \t\r\n") {
			continue
		}

		value = strings.TrimSpace(value)
		if v, quoted := unquote(value); quoted {
			kv[key] = v
			continue
		}

		// unquoted value ends at the first space
		if i := strings.IndexAny(value, " \t\r\n"); i >= 0 {
			value = value[:i]
		}

		kv[key] = value
	}

	return kv, nil
}

// splitPairs splits by commas which are not quoted
func splitPairs(raw string) (parts []string, err error) {
	var quote rune
	escaped := false
	b := strings.Builder{}

	for _, r := range raw {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quote != 0:
			escaped = true
		case r == quote:
			quote = 0
		case quote == 0 && (r == '"' || r == '\''):
			quote = r
		case quote == 0 && r == ',':
			parts = append(parts, b.String())
			b.Reset()
			continue
		}

		b.WriteRune(r)
	}

	if quote != 0 {
		return nil, errors.New("quoted value is not terminated")
	}

	return append(parts, b.String()), nil
}

// unquote returns content of a quoted value
func unquote(value string) (string, bool) {
	if value == "" || (value[0] != '"' && value[0] != '\'') {
		return "", false
	}

	quote := rune(value[0])
	escaped := false
	b := strings.Builder{}

	for _, r := range value[1:] {
		switch {
		case escaped:
			escaped = false
			b.WriteRune(r)
		case r == '\\':
			escaped = true
		case r == quote:
			return b.String(), true
		default:
			b.WriteRune(r)
		}
	}

	return b.String(), true
}

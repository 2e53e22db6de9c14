package latex

import (
	"strconv"
	"strings"
)

type ColumnSpec struct {
	BorderLeft  bool   // column should have left border
	BorderRight bool   // column should have right border
	Align       string // column alignment: c, l or r
	Width       string // width of p{}, m{} and b{} columns
}

// ColumnSpecs parses column spec in tabular environment, eg. |l|c|p{3cm}|.
// Repeated columns *{n}{spec} are expanded, @{...} and !{...} are ignored.
func ColumnSpecs(raw string) ([]ColumnSpec, error) {
	expanded, err := expandColumns(raw, 0)
	if err != nil {
		return nil, err
	}

	var spec []ColumnSpec

	border := false
	s := NewScanner(expanded)
	for !s.EOF() {
		r, _ := s.Peek()

		switch {
		case r == '|':
			if len(spec) > 0 {
				spec[len(spec)-1].BorderRight = true
			}

			border = true
			s.Advance()
			continue
		case r == 'c' || r == 'l' || r == 'r':
			spec = append(spec, ColumnSpec{BorderLeft: border, Align: string(r)})
			s.Advance()
		case r == 'p' || r == 'm' || r == 'b':
			s.Advance()
			s.SkipFiller()

			width, err := s.Group('{', '}', false)
			if err != nil {
				return nil, err
			}

			spec = append(spec, ColumnSpec{BorderLeft: border, Align: "l", Width: strings.TrimSpace(width)})
		case r == '@' || r == '!' || r == '>' || r == '<':
			s.Advance()
			s.SkipFiller()

			if _, err := s.Group('{', '}', false); err != nil {
				return nil, err
			}

			continue
		default:
			s.Advance()
			continue
		}

		border = false
	}

	return spec, nil
}

// expandColumns replaces *{n}{spec} with spec repeated n times
func expandColumns(raw string, depth int) (string, error) {
	if !strings.Contains(raw, "*") {
		return raw, nil
	}

	s := NewScanner(raw)
	if depth > maxDepth {
		return "", s.Errorf("repeated columns are nested too deep")
	}

	b := strings.Builder{}
	for !s.EOF() {
		r, _ := s.Next()
		if r != '*' {
			b.WriteRune(r)
			continue
		}

		s.SkipFiller()
		count, err := s.Group('{', '}', false)
		if err != nil {
			return "", err
		}

		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n < 0 {
			return "", s.Errorf("invalid number of repeated columns %q", count)
		}

		s.SkipFiller()
		spec, err := s.Group('{', '}', false)
		if err != nil {
			return "", err
		}

		spec, err = expandColumns(spec, depth+1)
		if err != nil {
			return "", err
		}

		b.WriteString(strings.Repeat(spec, n))
	}

	return b.String(), nil
}

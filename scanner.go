package latex

import (
	"fmt"
	"strings"
)

// Scanner is a cursor over LaTeX source. It keeps track of the current line so
// that errors can point to the right place.
type Scanner struct {
	src  []rune
	pos  int
	line int
}

// Mark is a saved cursor position, see Scanner.Mark and Scanner.Reset.
type Mark struct {
	pos  int
	line int
}

// Line of the saved position (1-based).
func (m Mark) Line() int {
	return m.line
}

func NewScanner(src string) *Scanner {
	return newScannerAt(src, 1)
}

func newScannerAt(src string, line int) *Scanner {
	if line < 1 {
		line = 1
	}

	return &Scanner{src: []rune(src), line: line}
}

func (s *Scanner) EOF() bool {
	return s.pos >= len(s.src)
}

// Pos returns cursor position in runes.
func (s *Scanner) Pos() int {
	return s.pos
}

// Line returns current 1-based line number.
func (s *Scanner) Line() int {
	return s.line
}

// Peek returns the rune under the cursor without moving.
func (s *Scanner) Peek() (rune, bool) {
	return s.PeekAt(0)
}

// PeekAt returns the rune n positions after the cursor.
func (s *Scanner) PeekAt(n int) (rune, bool) {
	if s.pos+n < 0 || s.pos+n >= len(s.src) {
		return 0, false
	}

	return s.src[s.pos+n], true
}

// Next returns the rune under the cursor and advances past it.
func (s *Scanner) Next() (rune, bool) {
	r, ok := s.Peek()
	if ok {
		s.Advance()
	}

	return r, ok
}

func (s *Scanner) Advance() {
	if s.pos >= len(s.src) {
		return
	}

	if s.src[s.pos] == '\n' {
		s.line++
	}

	s.pos++
}

func (s *Scanner) Backtrack() {
	if s.pos == 0 {
		return
	}

	s.pos--
	if s.src[s.pos] == '\n' {
		s.line--
	}
}

func (s *Scanner) Mark() Mark {
	return Mark{pos: s.pos, line: s.line}
}

func (s *Scanner) Reset(m Mark) {
	s.pos, s.line = m.pos, m.line
}

// Slice returns source between two positions.
func (s *Scanner) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}

	if to > len(s.src) {
		to = len(s.src)
	}

	if from >= to {
		return ""
	}

	return string(s.src[from:to])
}

// Since returns source from the mark up to the cursor.
func (s *Scanner) Since(m Mark) string {
	return s.Slice(m.pos, s.pos)
}

// HasPrefix checks if the source at the cursor starts with prefix.
func (s *Scanner) HasPrefix(prefix string) bool {
	i := 0
	for _, r := range prefix {
		if c, ok := s.PeekAt(i); !ok || c != r {
			return false
		}
		i++
	}

	return true
}

// AlphaRun consumes the longest run of ASCII letters.
func (s *Scanner) AlphaRun() string {
	from := s.pos
	for {
		r, ok := s.Peek()
		if !ok || !isLetter(r) {
			return s.Slice(from, s.pos)
		}
		s.Advance()
	}
}

// Whitespace consumes spaces, tabs and newlines.
func (s *Scanner) Whitespace() string {
	from := s.pos
	for {
		r, ok := s.Peek()
		if !ok || !isWhitespace(r) {
			return s.Slice(from, s.pos)
		}
		s.Advance()
	}
}

// SkipFiller consumes whitespace and % comments
func (s *Scanner) SkipFiller() {
	for {
		s.Whitespace()

		r, ok := s.Peek()
		if !ok || r != '%' {
			return
		}

		s.SkipLine()
	}
}

// SkipLine consumes everything up to and including the next newline.
func (s *Scanner) SkipLine() string {
	from := s.pos
	for {
		r, ok := s.Next()
		if !ok || r == '\n' {
			return s.Slice(from, s.pos)
		}
	}
}

// Balanced returns content between left under the cursor and its matching
// right delimiter. Cursor is left on the closing delimiter. Escaped delimiters
// do not count and a blank line inside the group is an error.
func (s *Scanner) Balanced(left, right rune) (string, error) {
	return s.balanced(left, right, false)
}

// BalancedLong is Balanced which allows blank lines inside the group.
func (s *Scanner) BalancedLong(left, right rune) (string, error) {
	return s.balanced(left, right, true)
}

func (s *Scanner) balanced(left, right rune, long bool) (string, error) {
	start := s.Mark()

	if r, ok := s.Peek(); !ok || r != left {
		return "", s.Errorf("expected %q", left)
	}

	s.Advance()

	from := s.pos
	depth := 1
	braces := 0    // inside [...] the closing "]" only counts at brace level 0
	blank := false // nothing but blanks since the last newline

	for {
		r, ok := s.Peek()
		if !ok {
			return "", s.errorAt(start, "missing closing %q", right)
		}

		switch {
		case r == '\\':
			s.Advance()
			s.Advance()
			blank = false
			continue
		case r == '%':
			s.SkipLine()
			blank = true
			continue
		case r == '\n':
			if blank && !long {
				return "", s.Errorf("blank line inside %c%c group", left, right)
			}
			blank = true
		case r == ' ' || r == '\t' || r == '\r':
		case left != '{' && r == '{':
			braces++
			blank = false
		case left != '{' && r == '}':
			braces--
			blank = false
		case r == left && braces == 0:
			depth++
			blank = false
		case r == right && braces <= 0:
			depth--
			if depth == 0 {
				return s.Slice(from, s.pos), nil
			}
			blank = false
		default:
			blank = false
		}

		s.Advance()
	}
}

// Group scans a balanced group and moves the cursor after its closing delimiter.
func (s *Scanner) Group(left, right rune, long bool) (string, error) {
	val, err := s.balanced(left, right, long)
	if err != nil {
		return "", err
	}

	s.Advance()
	return val, nil
}

// Optional scans [...] group if the next non-filler symbol is "[". Otherwise,
// it returns empty value and leaves the cursor untouched.
func (s *Scanner) Optional() (string, bool, error) {
	m := s.Mark()
	s.SkipFiller()

	if r, ok := s.Peek(); !ok || r != '[' {
		s.Reset(m)
		return "", false, nil
	}

	val, err := s.Group('[', ']', false)
	if err != nil {
		return "", false, err
	}

	return val, true, nil
}

// Errorf creates SyntaxError pointing to the cursor.
func (s *Scanner) Errorf(format string, args ...any) *SyntaxError {
	return s.errorAt(s.Mark(), format, args...)
}

func (s *Scanner) errorAt(m Mark, format string, args ...any) *SyntaxError {
	near, _, _ := strings.Cut(s.Slice(m.pos, m.pos+32), "\n")

	return &SyntaxError{Line: m.line, Fragment: fragment(near), Message: fmt.Sprintf(format, args...)}
}

// isLetter returns true for a letter
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\n', '\t', '\r':
		return true
	default:
		return false
	}
}

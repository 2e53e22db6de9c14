package latex

import (
	"errors"
	"fmt"
)

// ErrSyntax matches every *SyntaxError with errors.Is.
var ErrSyntax = errors.New("syntax error")

// SyntaxError describes malformed input. Line is 1-based, Fragment is the piece
// of source where the problem was detected.
type SyntaxError struct {
	Line     int
	Fragment string
	Message  string
}

func (e *SyntaxError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}

	return fmt.Sprintf("line %d: %s, near %q", e.Line, e.Message, e.Fragment)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func syntaxError(line int, source string, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: line, Fragment: fragment(source), Message: fmt.Sprintf(format, args...)}
}

// fragment shortens source to something readable in a one-line message
func fragment(source string) string {
	runes := []rune(source)
	if len(runes) > 24 {
		return string(runes[:21]) + "..."
	}

	return source
}

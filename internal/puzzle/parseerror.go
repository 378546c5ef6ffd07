package puzzle

import "fmt"

// ParseError reports input that does not follow a day's grammar.
// Line and Column are 1-based; Column counts bytes.
type ParseError struct {
	Line     int
	Column   int
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("parse error at %d:%d: expected %s", e.Line, e.Column, e.Expected)
	}
	return fmt.Sprintf("parse error at %d:%d: expected %s, got %q", e.Line, e.Column, e.Expected, e.Got)
}

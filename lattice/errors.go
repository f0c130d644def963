package lattice

import (
	"fmt"
	"strings"
)

// ParseError reports a corpus line that could not be split into symbols.
// Lines are numbered from 1.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d: %s", e.Line, e.Reason)
}

// IOError wraps a failure reading the corpus or writing results.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

type ErrorList []error

func (self ErrorList) Error() string {
	var s []string
	for _, err := range self {
		s = append(s, err.Error())
	}
	return "Errors [" + strings.Join(s, ", ") + "]"
}

// Err returns nil for an empty list.
func (self ErrorList) Err() error {
	if len(self) == 0 {
		return nil
	}
	return self
}

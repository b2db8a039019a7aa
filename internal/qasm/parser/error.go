package parser

import (
	"fmt"

	"github.com/openqasm/qsim/internal/qasm/lexer"
	"github.com/openqasm/qsim/internal/source"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

// Parse error kinds, per SPEC_FULL.md §4.2.
const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEOF
	BadVersion
	InvalidArgument
)

// Error is a structured parse failure carrying enough context to render a
// caret diagnostic and to let callers pattern-match on Kind.
type Error struct {
	Kind     ErrorKind
	Span     source.Span
	Expected string
	Found    lexer.Kind
	file     *source.File
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.message()

	if e.file == nil {
		return fmt.Sprintf("%d:%d: %s", e.Span.Start(), e.Span.End(), msg)
	}

	line := e.file.FindFirstEnclosingLine(e.Span)

	return fmt.Sprintf("%s:%d:%d: %s", e.file.Name(), line.Number(), line.Column(e.Span.Start()), msg)
}

func (e *Error) message() string {
	switch e.Kind {
	case BadVersion:
		return `expected version header "OPENQASM 2.0;"`
	case UnexpectedEOF:
		return fmt.Sprintf("unexpected end of file, expected %s", e.Expected)
	case InvalidArgument:
		return fmt.Sprintf("invalid argument: %s", e.Expected)
	default:
		return fmt.Sprintf("unexpected %s, expected %s", e.Found, e.Expected)
	}
}

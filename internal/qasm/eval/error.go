package eval

import (
	"fmt"

	"github.com/openqasm/qsim/internal/source"
)

// ErrorKind classifies a MathError.
type ErrorKind int

// Math error kinds, per spec.md §4.5.
const (
	DivisionByZero ErrorKind = iota
	NotANumber
	UndefinedParam
)

// Error is a runtime failure evaluating an expression.
type Error struct {
	Kind ErrorKind
	Span source.Span
	Name string
	file *source.File
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
	case DivisionByZero:
		return "division by zero"
	case UndefinedParam:
		return fmt.Sprintf("undefined parameter %q", e.Name)
	default:
		return "expression evaluates to NaN or infinity"
	}
}

package layout

import (
	"fmt"

	"github.com/openqasm/qsim/internal/source"
)

// ErrorKind classifies a register-layout failure.
type ErrorKind int

// Layout error kinds, per spec.md §4.4 and §9's shadowing decision.
const (
	DuplicateRegister ErrorKind = iota
	ZeroSizedRegister
	Shadowing
)

// Error is a structured semantic failure discovered while laying out
// registers.
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
	case DuplicateRegister:
		return fmt.Sprintf("register %q is already declared", e.Name)
	case ZeroSizedRegister:
		return fmt.Sprintf("register %q has size 0", e.Name)
	default:
		return fmt.Sprintf("gate parameter %q shadows a top-level register name", e.Name)
	}
}

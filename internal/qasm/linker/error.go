package linker

import (
	"fmt"

	"github.com/openqasm/qsim/internal/source"
)

// ErrorKind classifies a link-time failure.
type ErrorKind int

// Link error kinds, per SPEC_FULL.md §4.3.
const (
	UnresolvedInclude ErrorKind = iota
	GateRedefinition
	UndefinedGate
	ArityMismatch
)

// Error is a structured link failure.
type Error struct {
	Kind ErrorKind
	Span source.Span
	Name string
	Want int
	Got  int
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
	case UnresolvedInclude:
		return fmt.Sprintf("unresolved include %q", e.Name)
	case GateRedefinition:
		return fmt.Sprintf("gate %q is already defined", e.Name)
	case UndefinedGate:
		return fmt.Sprintf("undefined gate %q", e.Name)
	default:
		return fmt.Sprintf("gate %q expects %d argument(s), got %d", e.Name, e.Want, e.Got)
	}
}

// Package interp expands and executes a linked, laid-out OpenQASM 2.0
// program against a state-vector simulator.
package interp

import (
	"fmt"
)

// ErrorKind classifies a runtime failure, per spec.md §7's RuntimeError
// taxonomy.
type ErrorKind int

// Runtime error kinds.
const (
	BroadcastMismatch ErrorKind = iota
	ExpansionDepthExceeded
	OpaqueInvoked
	MathError
	IndexOutOfRange
	StateTooLarge
	ConditionalWidthOverflow
)

// Error is a structured runtime failure. Cause carries the underlying
// error (an *eval.Error for MathError, an *simulator.Error for
// IndexOutOfRange) so callers can errors.As through to it. Qubits/Cap are
// only meaningful for StateTooLarge.
type Error struct {
	Kind   ErrorKind
	Name   string
	Qubits int
	Cap    int
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case BroadcastMismatch:
		return "broadcast arguments have mismatched register sizes"
	case ExpansionDepthExceeded:
		return "gate expansion exceeded the maximum recursion depth"
	case OpaqueInvoked:
		return fmt.Sprintf("cannot invoke opaque gate %q", e.Name)
	case MathError:
		return fmt.Sprintf("math error: %v", e.Cause)
	case StateTooLarge:
		return fmt.Sprintf("state vector too large: %d qubits exceeds the configured cap of %d", e.Qubits, e.Cap)
	case ConditionalWidthOverflow:
		return fmt.Sprintf("value does not fit in register %q", e.Name)
	default:
		return fmt.Sprintf("index out of range: %v", e.Cause)
	}
}

// Unwrap exposes Cause to errors.As/errors.Is.
func (e *Error) Unwrap() error { return e.Cause }

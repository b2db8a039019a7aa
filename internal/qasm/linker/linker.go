// Package linker merges the embedded standard-gate library with a parsed
// user program, closing the gate-definition table and arity-checking every
// gate call.
package linker

import (
	"github.com/openqasm/qsim/internal/qasm/ast"
	"github.com/openqasm/qsim/internal/qasm/stdlib"
	"github.com/openqasm/qsim/internal/source"
)

// Primitive names a hardware-level gate with no QASM-level body.
type Primitive int

// The two primitives every OpenQASM 2.0 program can build on.
const (
	PrimitiveU Primitive = iota
	PrimitiveCX
)

// GateEntry is one closed slot of the linked gate table: a primitive, a
// user/library-defined gate with a body, or an opaque signature.
type GateEntry struct {
	Name          string
	RealParams    []string
	QuantumParams []string
	Body          []ast.Statement
	Doc           string
	Opaque        bool
	IsPrimitive   bool
	Primitive     Primitive
}

// Program is a program whose gate table is closed: every GateCall resolves
// to exactly one GateEntry with matching arity, and every Include has been
// resolved and removed.
type Program struct {
	Statements []ast.Statement
	Gates      map[string]*GateEntry
}

// Link splices the embedded qelib1.inc into prog wherever it is included,
// builds the gate table, and arity-checks every gate call reachable from
// the top level or from any gate body. file is used only to render
// positioned error messages and may be nil.
func Link(file *source.File, prog *ast.Program) (*Program, error) {
	gates := map[string]*GateEntry{
		"U":  {Name: "U", RealParams: []string{"theta", "phi", "lambda"}, QuantumParams: []string{"q"}, IsPrimitive: true, Primitive: PrimitiveU},
		"CX": {Name: "CX", RealParams: nil, QuantumParams: []string{"c", "t"}, IsPrimitive: true, Primitive: PrimitiveCX},
	}

	var statements []ast.Statement

	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.Include:
			if s.Path != stdlib.Name {
				return nil, &Error{Kind: UnresolvedInclude, Span: s.Span(), Name: s.Path, file: file}
			}

			lib, err := stdlib.Library()
			if err != nil {
				return nil, err
			}

			for _, g := range lib.Gates {
				if err := declareGate(gates, g, file); err != nil {
					return nil, err
				}
			}
		case *ast.GateDecl, *ast.OpaqueDecl:
			if err := declareGate(gates, s, file); err != nil {
				return nil, err
			}
		default:
			statements = append(statements, stmt)
		}
	}

	linked := &Program{Statements: statements, Gates: gates}

	if err := checkCallsIn(linked.Statements, gates, file); err != nil {
		return nil, err
	}

	for _, g := range gates {
		if err := checkCallsIn(g.Body, gates, file); err != nil {
			return nil, err
		}
	}

	return linked, nil
}

func declareGate(gates map[string]*GateEntry, stmt ast.Statement, file *source.File) error {
	var entry GateEntry

	switch s := stmt.(type) {
	case *ast.GateDecl:
		entry = GateEntry{Name: s.Name, RealParams: s.RealParams, QuantumParams: s.QuantumParams, Body: s.Body, Doc: s.Doc}
	case *ast.OpaqueDecl:
		entry = GateEntry{Name: s.Name, RealParams: s.RealParams, QuantumParams: s.QuantumParams, Opaque: true}
	default:
		return nil
	}

	if _, exists := gates[entry.Name]; exists {
		return &Error{Kind: GateRedefinition, Span: stmt.Span(), Name: entry.Name, file: file}
	}

	gates[entry.Name] = &entry

	return nil
}

// checkCallsIn walks statements (recursing into IfEq's guarded statement)
// verifying every GateCall resolves and has matching arity.
func checkCallsIn(statements []ast.Statement, gates map[string]*GateEntry, file *source.File) error {
	for _, stmt := range statements {
		if err := checkCall(stmt, gates, file); err != nil {
			return err
		}
	}

	return nil
}

func checkCall(stmt ast.Statement, gates map[string]*GateEntry, file *source.File) error {
	switch s := stmt.(type) {
	case *ast.GateCall:
		entry, ok := gates[s.Name]
		if !ok {
			return &Error{Kind: UndefinedGate, Span: s.Span(), Name: s.Name, file: file}
		}

		if len(s.RealArgs) != len(entry.RealParams) {
			return &Error{Kind: ArityMismatch, Span: s.Span(), Name: s.Name, Want: len(entry.RealParams), Got: len(s.RealArgs), file: file}
		}

		if len(s.QArgs) != len(entry.QuantumParams) {
			return &Error{Kind: ArityMismatch, Span: s.Span(), Name: s.Name, Want: len(entry.QuantumParams), Got: len(s.QArgs), file: file}
		}
	case *ast.IfEq:
		return checkCall(s.Inner, gates, file)
	}

	return nil
}

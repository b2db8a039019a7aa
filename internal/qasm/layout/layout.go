// Package layout assigns contiguous qubit and classical-bit offsets to
// each register declared in a linked program.
package layout

import (
	"github.com/openqasm/qsim/internal/qasm/ast"
	"github.com/openqasm/qsim/internal/qasm/linker"
	"github.com/openqasm/qsim/internal/qasm/stdlib"
	"github.com/openqasm/qsim/internal/source"
)

// Kind distinguishes quantum from classical registers.
type Kind int

// The two register kinds.
const (
	Quantum Kind = iota
	Classical
)

// Register describes one declared register's placement in the flat qubit
// or classical-bit index space.
type Register struct {
	Name string
	Kind Kind
	Base int
	Size int
}

// Map is the closed mapping from register name to placement, plus the
// total qubit and classical-bit counts it implies.
type Map struct {
	Registers map[string]Register
	NumQubits int
	NumBits   int
}

// QubitIndex resolves a quantum Argument to an absolute qubit index. ok is
// false if reg is not a quantum register or index is out of range.
func (m *Map) QubitIndex(reg string, index int) (int, bool) {
	r, found := m.Registers[reg]
	if !found || r.Kind != Quantum || index < 0 || index >= r.Size {
		return 0, false
	}

	return r.Base + index, true
}

// BitIndex resolves a classical Argument to an absolute classical-bit
// index. ok is false if reg is not a classical register or index is out
// of range.
func (m *Map) BitIndex(reg string, index int) (int, bool) {
	r, found := m.Registers[reg]
	if !found || r.Kind != Classical || index < 0 || index >= r.Size {
		return 0, false
	}

	return r.Base + index, true
}

// Layout walks prog's top-level QRegDecl/CRegDecl statements in order,
// assigns contiguous offsets, and rejects duplicate or zero-sized
// registers and any program-declared gate whose quantum parameter shadows
// a top-level register name (spec's conservative shadowing decision);
// opaque and standard-library gates are not checked. file is used
// only to position returned errors and may be nil.
func Layout(file *source.File, prog *linker.Program) (*Map, error) {
	registers := make(map[string]Register)

	qubitCursor, bitCursor := 0, 0

	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.QRegDecl:
			if err := declare(registers, s.Name, s.Span(), file); err != nil {
				return nil, err
			}

			if s.Size <= 0 {
				return nil, &Error{Kind: ZeroSizedRegister, Span: s.Span(), Name: s.Name, file: file}
			}

			registers[s.Name] = Register{Name: s.Name, Kind: Quantum, Base: qubitCursor, Size: s.Size}
			qubitCursor += s.Size
		case *ast.CRegDecl:
			if err := declare(registers, s.Name, s.Span(), file); err != nil {
				return nil, err
			}

			if s.Size <= 0 {
				return nil, &Error{Kind: ZeroSizedRegister, Span: s.Span(), Name: s.Name, file: file}
			}

			registers[s.Name] = Register{Name: s.Name, Kind: Classical, Base: bitCursor, Size: s.Size}
			bitCursor += s.Size
		}
	}

	if err := checkShadowing(prog.Gates, registers, file); err != nil {
		return nil, err
	}

	return &Map{Registers: registers, NumQubits: qubitCursor, NumBits: bitCursor}, nil
}

func declare(registers map[string]Register, name string, span source.Span, file *source.File) error {
	if _, exists := registers[name]; exists {
		return &Error{Kind: DuplicateRegister, Span: span, Name: name, file: file}
	}

	return nil
}

// checkShadowing only inspects gates written in the program itself: opaque
// gates have no body, and a standard-library gate (recognised by sharing
// its body with the parsed library) is fixed text outside the program.
func checkShadowing(gates map[string]*linker.GateEntry, registers map[string]Register, file *source.File) error {
	library, err := stdlib.Library()
	if err != nil {
		return err
	}

	libraryBodies := make(map[ast.Statement]bool, len(library.Gates))

	for _, stmt := range library.Gates {
		if decl, ok := stmt.(*ast.GateDecl); ok && len(decl.Body) > 0 {
			libraryBodies[decl.Body[0]] = true
		}
	}

	for _, gate := range gates {
		if gate.IsPrimitive || gate.Opaque || (len(gate.Body) > 0 && libraryBodies[gate.Body[0]]) {
			continue
		}

		for _, param := range gate.QuantumParams {
			if _, clash := registers[param]; clash {
				return &Error{Kind: Shadowing, Name: param, file: file}
			}
		}
	}

	return nil
}

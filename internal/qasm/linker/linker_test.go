package linker

import (
	"testing"

	"github.com/openqasm/qsim/internal/qasm/parser"
	"github.com/openqasm/qsim/internal/source"
)

func mustParse(t *testing.T, text string) *source.File {
	t.Helper()
	return source.NewFile("test.qasm", []byte(text))
}

func TestLinkBellPair(t *testing.T) {
	file := mustParse(t, `OPENQASM 2.0;
include "qelib1.inc";
qreg q[2];
h q[0];
cx q[0],q[1];
`)

	prog, err := parser.ParseProgram(file)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}

	linked, err := Link(file, prog)
	if err != nil {
		t.Fatalf("Link: %v", err)
	}

	if _, ok := linked.Gates["h"]; !ok {
		t.Error(`Gates["h"] missing after linking stdlib`)
	}

	if _, ok := linked.Gates["cx"]; !ok {
		t.Error(`Gates["cx"] missing after linking stdlib`)
	}

	if len(linked.Statements) != 3 {
		t.Fatalf("len(Statements) = %d, want 3 (qreg, h, cx)", len(linked.Statements))
	}
}

func TestLinkUnresolvedInclude(t *testing.T) {
	file := mustParse(t, `OPENQASM 2.0;
include "not_stdlib.inc";
qreg q[1];
`)

	prog, err := parser.ParseProgram(file)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}

	_, err = Link(file, prog)
	if err == nil {
		t.Fatal("expected an UnresolvedInclude error")
	}

	lerr, ok := err.(*Error)
	if !ok || lerr.Kind != UnresolvedInclude {
		t.Fatalf("err = %v, want UnresolvedInclude", err)
	}
}

func TestLinkGateRedefinition(t *testing.T) {
	file := mustParse(t, `OPENQASM 2.0;
gate foo a { }
gate foo a { }
qreg q[1];
`)

	prog, err := parser.ParseProgram(file)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}

	_, err = Link(file, prog)
	if err == nil {
		t.Fatal("expected a GateRedefinition error")
	}

	lerr, ok := err.(*Error)
	if !ok || lerr.Kind != GateRedefinition {
		t.Fatalf("err = %v, want GateRedefinition", err)
	}
}

func TestLinkUndefinedGate(t *testing.T) {
	file := mustParse(t, `OPENQASM 2.0;
qreg q[1];
frobnicate q[0];
`)

	prog, err := parser.ParseProgram(file)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}

	_, err = Link(file, prog)
	if err == nil {
		t.Fatal("expected an UndefinedGate error")
	}

	lerr, ok := err.(*Error)
	if !ok || lerr.Kind != UndefinedGate {
		t.Fatalf("err = %v, want UndefinedGate", err)
	}
}

func TestLinkArityMismatch(t *testing.T) {
	file := mustParse(t, `OPENQASM 2.0;
qreg q[2];
U(0,0) q[0];
`)

	prog, err := parser.ParseProgram(file)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}

	_, err = Link(file, prog)
	if err == nil {
		t.Fatal("expected an ArityMismatch error")
	}

	lerr, ok := err.(*Error)
	if !ok || lerr.Kind != ArityMismatch {
		t.Fatalf("err = %v, want ArityMismatch", err)
	}
}

func TestLinkCannotRedeclareStdlibGate(t *testing.T) {
	file := mustParse(t, `OPENQASM 2.0;
include "qelib1.inc";
gate h a { }
qreg q[1];
`)

	prog, err := parser.ParseProgram(file)
	if err != nil {
		t.Fatalf("ParseProgram: %v", err)
	}

	_, err = Link(file, prog)
	if err == nil {
		t.Fatal("expected a GateRedefinition error for redeclaring a stdlib gate")
	}

	lerr, ok := err.(*Error)
	if !ok || lerr.Kind != GateRedefinition {
		t.Fatalf("err = %v, want GateRedefinition", err)
	}
}

package parser

import (
	"testing"

	"github.com/openqasm/qsim/internal/qasm/ast"
	"github.com/openqasm/qsim/internal/source"
)

func parseProgram(t *testing.T, text string) *ast.Program {
	t.Helper()

	file := source.NewFile("test.qasm", []byte(text))

	prog, err := ParseProgram(file)
	if err != nil {
		t.Fatalf("ParseProgram(%q): unexpected error: %v", text, err)
	}

	return prog
}

func parseExpr(t *testing.T, text string) ast.Expr {
	t.Helper()

	file := source.NewFile("expr.qasm", []byte(text))

	e, err := ParseExpression(file)
	if err != nil {
		t.Fatalf("ParseExpression(%q): unexpected error: %v", text, err)
	}

	return e
}

func TestParseMinimalProgram(t *testing.T) {
	prog := parseProgram(t, `OPENQASM 2.0;
qreg q[2];
creg c[2];
`)

	if prog.Version != "2.0" {
		t.Fatalf("Version = %q, want 2.0", prog.Version)
	}

	if len(prog.Statements) != 2 {
		t.Fatalf("len(Statements) = %d, want 2", len(prog.Statements))
	}

	qreg, ok := prog.Statements[0].(*ast.QRegDecl)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.QRegDecl", prog.Statements[0])
	}

	if qreg.Name != "q" || qreg.Size != 2 {
		t.Errorf("qreg = %+v, want {q 2}", qreg)
	}
}

func TestParseBadVersion(t *testing.T) {
	file := source.NewFile("bad.qasm", []byte(`qreg q[1];`))

	_, err := ParseProgram(file)
	if err == nil {
		t.Fatal("expected an error for a missing version header")
	}

	perr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *parser.Error", err)
	}

	if perr.Kind != BadVersion {
		t.Errorf("Kind = %v, want BadVersion", perr.Kind)
	}
}

func TestParseGateDeclWithDoc(t *testing.T) {
	prog := parseProgram(t, `OPENQASM 2.0;
// Pauli-X gate
gate x a { U(pi,0,pi) a; }
qreg q[1];
x q[0];
`)

	decl, ok := prog.Statements[0].(*ast.GateDecl)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.GateDecl", prog.Statements[0])
	}

	if decl.Doc != "Pauli-X gate" {
		t.Errorf("Doc = %q, want %q", decl.Doc, "Pauli-X gate")
	}

	if len(decl.QuantumParams) != 1 || decl.QuantumParams[0] != "a" {
		t.Errorf("QuantumParams = %v, want [a]", decl.QuantumParams)
	}

	if len(decl.Body) != 1 {
		t.Fatalf("len(Body) = %d, want 1", len(decl.Body))
	}

	call, ok := decl.Body[0].(*ast.GateCall)
	if !ok {
		t.Fatalf("Body[0] = %T, want *ast.GateCall", decl.Body[0])
	}

	if call.Name != "U" || len(call.RealArgs) != 3 {
		t.Errorf("call = %+v, want U with 3 real args", call)
	}
}

func TestParseMeasureIfBarrier(t *testing.T) {
	prog := parseProgram(t, `OPENQASM 2.0;
qreg q[2];
creg c[2];
barrier q;
measure q[0] -> c[0];
if (c==1) x q[1];
`)

	if len(prog.Statements) != 5 {
		t.Fatalf("len(Statements) = %d, want 5", len(prog.Statements))
	}

	if _, ok := prog.Statements[2].(*ast.Barrier); !ok {
		t.Errorf("Statements[2] = %T, want *ast.Barrier", prog.Statements[2])
	}

	meas, ok := prog.Statements[3].(*ast.Measure)
	if !ok {
		t.Fatalf("Statements[3] = %T, want *ast.Measure", prog.Statements[3])
	}

	if meas.Source.Reg != "q" || meas.Source.Index != 0 || meas.Source.IsWhole {
		t.Errorf("Measure.Source = %+v, want indexed q[0]", meas.Source)
	}

	ifeq, ok := prog.Statements[4].(*ast.IfEq)
	if !ok {
		t.Fatalf("Statements[4] = %T, want *ast.IfEq", prog.Statements[4])
	}

	if ifeq.CReg != "c" || ifeq.Value != 1 {
		t.Errorf("IfEq = %+v, want {c 1 ...}", ifeq)
	}

	if _, ok := ifeq.Inner.(*ast.GateCall); !ok {
		t.Errorf("IfEq.Inner = %T, want *ast.GateCall", ifeq.Inner)
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	// -2^2 should parse as -(2^2): unary minus binds looser than '^'.
	e := parseExpr(t, "-2^2")

	unary, ok := e.(*ast.UnaryOp)
	if !ok {
		t.Fatalf("top-level node = %T, want *ast.UnaryOp", e)
	}

	if unary.Op != "-" {
		t.Fatalf("Op = %q, want -", unary.Op)
	}

	pow, ok := unary.Arg.(*ast.BinaryOp)
	if !ok || pow.Op != "^" {
		t.Fatalf("Arg = %+v, want a ^ BinaryOp", unary.Arg)
	}
}

func TestParseExpressionAddMul(t *testing.T) {
	// 1+2*3 should parse as 1+(2*3): '*' binds tighter than '+'.
	e := parseExpr(t, "1+2*3")

	add, ok := e.(*ast.BinaryOp)
	if !ok || add.Op != "+" {
		t.Fatalf("top-level node = %+v, want a + BinaryOp", e)
	}

	mul, ok := add.Right.(*ast.BinaryOp)
	if !ok || mul.Op != "*" {
		t.Fatalf("Right = %+v, want a * BinaryOp", add.Right)
	}
}

func TestParseExpressionFunctionCall(t *testing.T) {
	e := parseExpr(t, "sin(pi/2)")

	fn, ok := e.(*ast.UnaryOp)
	if !ok || fn.Op != "sin" {
		t.Fatalf("top-level node = %+v, want a sin UnaryOp", e)
	}

	if _, ok := fn.Arg.(*ast.BinaryOp); !ok {
		t.Fatalf("Arg = %T, want *ast.BinaryOp", fn.Arg)
	}
}

func TestParseExpressionRightAssociativePower(t *testing.T) {
	// 2^3^2 should parse as 2^(3^2): '^' is right-associative.
	e := parseExpr(t, "2^3^2")

	outer, ok := e.(*ast.BinaryOp)
	if !ok || outer.Op != "^" {
		t.Fatalf("top-level node = %+v, want a ^ BinaryOp", e)
	}

	inner, ok := outer.Right.(*ast.BinaryOp)
	if !ok || inner.Op != "^" {
		t.Fatalf("Right = %+v, want a ^ BinaryOp", outer.Right)
	}
}

func TestParseGateCallInvalidArgument(t *testing.T) {
	file := source.NewFile("bad.qasm", []byte(`OPENQASM 2.0;
qreg q[1];
x q[-1];
`))

	_, err := ParseProgram(file)
	if err == nil {
		t.Fatal("expected a parse error: index literals cannot be negative")
	}
}

func TestParseOpaqueDecl(t *testing.T) {
	prog := parseProgram(t, `OPENQASM 2.0;
opaque black_box(theta) q;
qreg q[1];
`)

	decl, ok := prog.Statements[0].(*ast.OpaqueDecl)
	if !ok {
		t.Fatalf("Statements[0] = %T, want *ast.OpaqueDecl", prog.Statements[0])
	}

	if decl.Name != "black_box" || len(decl.RealParams) != 1 || decl.RealParams[0] != "theta" {
		t.Errorf("decl = %+v", decl)
	}
}

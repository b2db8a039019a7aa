package eval

import (
	"math"
	"testing"

	"github.com/openqasm/qsim/internal/qasm/parser"
	"github.com/openqasm/qsim/internal/source"
)

func evalText(t *testing.T, text string, env Env) (float64, error) {
	t.Helper()

	file := source.NewFile("expr.qasm", []byte(text))

	e, err := parser.ParseExpression(file)
	if err != nil {
		t.Fatalf("ParseExpression(%q): %v", text, err)
	}

	return Eval(file, e, env)
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"1+2", 3},
		{"2*3+1", 7},
		{"2^3", 8},
		{"-2^2", -4},
		{"2^-1", 0.5},
		{"(1+2)*3", 9},
		{"pi", math.Pi},
	}

	for _, tt := range tests {
		got, err := evalText(t, tt.expr, nil)
		if err != nil {
			t.Errorf("Eval(%q): unexpected error: %v", tt.expr, err)
			continue
		}

		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Eval(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}

func TestEvalParamRef(t *testing.T) {
	got, err := evalText(t, "theta/2", Env{"theta": math.Pi})
	if err != nil {
		t.Fatalf("Eval: unexpected error: %v", err)
	}

	if math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Eval = %v, want pi/2", got)
	}
}

func TestEvalUndefinedParam(t *testing.T) {
	_, err := evalText(t, "theta", nil)
	if err == nil {
		t.Fatal("expected an UndefinedParam error")
	}

	eerr, ok := err.(*Error)
	if !ok || eerr.Kind != UndefinedParam {
		t.Fatalf("err = %v, want UndefinedParam", err)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	_, err := evalText(t, "1/0", nil)
	if err == nil {
		t.Fatal("expected a DivisionByZero error")
	}

	eerr, ok := err.(*Error)
	if !ok || eerr.Kind != DivisionByZero {
		t.Fatalf("err = %v, want DivisionByZero", err)
	}
}

func TestEvalFunctions(t *testing.T) {
	got, err := evalText(t, "sin(0)", nil)
	if err != nil {
		t.Fatalf("Eval: unexpected error: %v", err)
	}

	if math.Abs(got) > 1e-12 {
		t.Errorf("sin(0) = %v, want 0", got)
	}
}

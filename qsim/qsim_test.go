package qsim

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRunBellPair(t *testing.T) {
	seed := uint64(1)

	exec, err := Run(`OPENQASM 2.0;
include "qelib1.inc";
qreg q[2];
h q[0];
cx q[0],q[1];
`, Options{Seed: &seed})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []float64{0.5, 0, 0, 0.5}
	for i, p := range exec.Probabilities {
		if !almostEqual(p, want[i]) {
			t.Errorf("Probabilities[%d] = %v, want %v", i, p, want[i])
		}
	}

	if exec.Times.ParsingMS < 0 || exec.Times.SimulationMS < 0 || exec.Times.SerializationMS < 0 {
		t.Errorf("Times = %+v, want all non-negative", exec.Times)
	}
}

func TestParseAndLinkThenSimulate(t *testing.T) {
	linked, err := ParseAndLink(`OPENQASM 2.0;
include "qelib1.inc";
qreg q[1];
x q[0];
`)
	if err != nil {
		t.Fatalf("ParseAndLink: %v", err)
	}

	comp, err := Simulate(linked, Options{})
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	if !almostEqual(comp.Probabilities[1], 1) {
		t.Errorf("Probabilities = %v, want [~0 ~1]", comp.Probabilities)
	}
}

func TestParseEntryPoints(t *testing.T) {
	if _, err := ParseProgram("OPENQASM 2.0;\nqreg q[1];\n"); err != nil {
		t.Errorf("ParseProgram: %v", err)
	}

	if _, err := ParseLibrary("gate h q { U(pi/2,0,pi) q; }\n"); err != nil {
		t.Errorf("ParseLibrary: %v", err)
	}

	if _, err := ParseExpression("sin(pi/2)"); err != nil {
		t.Errorf("ParseExpression: %v", err)
	}

	if _, err := ParseStatement("x q[0];"); err != nil {
		t.Errorf("ParseStatement: %v", err)
	}
}

func TestGateInfoOf(t *testing.T) {
	info, err := GateInfoOf(`OPENQASM 2.0;
include "qelib1.inc";
qreg q[1];
`, "h")
	if err != nil {
		t.Fatalf("GateInfoOf: %v", err)
	}

	if info.Name != "h" {
		t.Errorf("Name = %q, want %q", info.Name, "h")
	}

	if len(info.QuantumParams) != 1 {
		t.Errorf("QuantumParams = %v, want one parameter", info.QuantumParams)
	}
}

func TestGateInfoOfUndefinedGate(t *testing.T) {
	_, err := GateInfoOf(`OPENQASM 2.0;
qreg q[1];
`, "nonexistent")
	if err == nil {
		t.Fatal("expected an error for an undefined gate")
	}
}

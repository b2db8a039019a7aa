package simulator

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewStateInitialization(t *testing.T) {
	s := New(2)

	if len(s.Amplitudes) != 4 {
		t.Fatalf("len(Amplitudes) = %d, want 4", len(s.Amplitudes))
	}

	if s.Amplitudes[0] != 1 {
		t.Errorf("Amplitudes[0] = %v, want 1", s.Amplitudes[0])
	}

	for i := 1; i < 4; i++ {
		if s.Amplitudes[i] != 0 {
			t.Errorf("Amplitudes[%d] = %v, want 0", i, s.Amplitudes[i])
		}
	}
}

func TestApplyXFlipsQubit(t *testing.T) {
	s := New(1)

	// U(pi,0,pi) is the X gate.
	if err := s.ApplyU(math.Pi, 0, math.Pi, 0); err != nil {
		t.Fatalf("ApplyU: %v", err)
	}

	probs := s.Probabilities()
	if !almostEqual(probs[1], 1, 1e-9) {
		t.Errorf("Probabilities = %v, want [~0 ~1]", probs)
	}
}

func TestApplyHadamardUniform(t *testing.T) {
	s := New(1)

	// U(pi/2,0,pi) is the Hadamard gate.
	if err := s.ApplyU(math.Pi/2, 0, math.Pi, 0); err != nil {
		t.Fatalf("ApplyU: %v", err)
	}

	probs := s.Probabilities()
	if !almostEqual(probs[0], 0.5, 1e-9) || !almostEqual(probs[1], 0.5, 1e-9) {
		t.Errorf("Probabilities = %v, want [0.5 0.5]", probs)
	}
}

func TestBellPair(t *testing.T) {
	s := New(2)

	if err := s.ApplyU(math.Pi/2, 0, math.Pi, 0); err != nil {
		t.Fatalf("ApplyU: %v", err)
	}

	if err := s.ApplyCX(0, 1); err != nil {
		t.Fatalf("ApplyCX: %v", err)
	}

	probs := s.Probabilities()
	want := []float64{0.5, 0, 0, 0.5}

	for i, p := range probs {
		if !almostEqual(p, want[i], 1e-9) {
			t.Errorf("Probabilities[%d] = %v, want %v", i, p, want[i])
		}
	}
}

func TestApplyCXControlEqualsTarget(t *testing.T) {
	s := New(2)

	err := s.ApplyCX(0, 0)
	if err == nil {
		t.Fatal("expected a ControlEqualsTarget error")
	}

	serr, ok := err.(*Error)
	if !ok || serr.Kind != ControlEqualsTarget {
		t.Fatalf("err = %v, want ControlEqualsTarget", err)
	}
}

func TestApplyUIndexOutOfRange(t *testing.T) {
	s := New(1)

	err := s.ApplyU(0, 0, 0, 5)
	if err == nil {
		t.Fatal("expected an IndexOutOfRange error")
	}

	serr, ok := err.(*Error)
	if !ok || serr.Kind != IndexOutOfRange {
		t.Fatalf("err = %v, want IndexOutOfRange", err)
	}
}

func TestCollapseZeroesDisagreeingAmplitudes(t *testing.T) {
	s := New(1)

	if err := s.ApplyU(math.Pi/2, 0, math.Pi, 0); err != nil {
		t.Fatalf("ApplyU: %v", err)
	}

	s.Collapse(0, 1)

	probs := s.Probabilities()
	if !almostEqual(probs[0], 0, 1e-9) || !almostEqual(probs[1], 1, 1e-9) {
		t.Errorf("Probabilities after collapse = %v, want [0 1]", probs)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New(1)
	clone := s.Clone()

	if err := s.ApplyU(math.Pi, 0, math.Pi, 0); err != nil {
		t.Fatalf("ApplyU: %v", err)
	}

	if clone.Amplitudes[0] != 1 || clone.Amplitudes[1] != 0 {
		t.Errorf("clone was mutated: %v", clone.Amplitudes)
	}
}

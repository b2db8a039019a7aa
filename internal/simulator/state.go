// Package simulator implements a dense complex-amplitude state-vector
// simulator over the OpenQASM primitives U and CX.
package simulator

import (
	"math"
	"math/cmplx"
)

// State is a dense amplitude vector over n qubits, qubit 0 occupying the
// least significant bit of the basis index.
type State struct {
	Amplitudes []complex128
	NumQubits  int
}

// New allocates a State of numQubits qubits initialized to |0...0>.
func New(numQubits int) *State {
	amps := make([]complex128, 1<<uint(numQubits))
	amps[0] = 1

	return &State{Amplitudes: amps, NumQubits: numQubits}
}

// Clone returns an independent copy of s, used to fork a fresh runtime
// state per shot from a shared deterministic prefix.
func (s *State) Clone() *State {
	amps := make([]complex128, len(s.Amplitudes))
	copy(amps, s.Amplitudes)

	return &State{Amplitudes: amps, NumQubits: s.NumQubits}
}

func (s *State) inRange(qubit int) bool {
	return qubit >= 0 && qubit < s.NumQubits
}

// ApplyU applies the single-qubit primitive U(theta, phi, lambda) to
// target, per spec.md §4.7's matrix definition.
func (s *State) ApplyU(theta, phi, lambda float64, target int) error {
	if !s.inRange(target) {
		return &Error{Kind: IndexOutOfRange, Qubit: target}
	}

	c := math.Cos(theta / 2)
	sn := math.Sin(theta / 2)

	u00 := complex(c, 0)
	u01 := -cmplx.Exp(complex(0, lambda)) * complex(sn, 0)
	u10 := cmplx.Exp(complex(0, phi)) * complex(sn, 0)
	u11 := cmplx.Exp(complex(0, phi+lambda)) * complex(c, 0)

	bit := 1 << uint(target)

	for i := 0; i < len(s.Amplitudes); i++ {
		if i&bit != 0 {
			continue
		}

		j := i | bit
		a0, a1 := s.Amplitudes[i], s.Amplitudes[j]
		s.Amplitudes[i] = u00*a0 + u01*a1
		s.Amplitudes[j] = u10*a0 + u11*a1
	}

	assertNormalized(s)

	return nil
}

// ApplyCX applies the controlled-NOT primitive: for every basis state with
// control set, swap the amplitudes of the two states differing only in
// target.
func (s *State) ApplyCX(control, target int) error {
	if !s.inRange(control) || !s.inRange(target) {
		qubit := control // whichever of the two is actually out of range
		if s.inRange(control) {
			qubit = target
		}

		return &Error{Kind: IndexOutOfRange, Qubit: qubit}
	}

	if control == target {
		return &Error{Kind: ControlEqualsTarget, Qubit: control}
	}

	controlBit := 1 << uint(control)
	targetBit := 1 << uint(target)

	for i := 0; i < len(s.Amplitudes); i++ {
		if i&controlBit == 0 || i&targetBit != 0 {
			continue
		}

		j := i | targetBit
		s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
	}

	assertNormalized(s)

	return nil
}

// Probabilities returns |a_i|^2 for every basis index.
func (s *State) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i, a := range s.Amplitudes {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	return probs
}

// ProbabilityOne returns p1 = sum of |a_i|^2 over basis states with target
// set, per the Born rule.
func (s *State) ProbabilityOne(target int) float64 {
	bit := 1 << uint(target)

	var p1 float64

	for i, a := range s.Amplitudes {
		if i&bit != 0 {
			p1 += real(a)*real(a) + imag(a)*imag(a)
		}
	}

	return p1
}

// Collapse projects the state onto the subspace where target equals
// outcome (0 or 1) and renormalizes, per spec.md §4.6's measurement rule.
func (s *State) Collapse(target, outcome int) {
	bit := 1 << uint(target)

	var norm float64

	for i, a := range s.Amplitudes {
		bitSet := i&bit != 0
		if (outcome == 1) != bitSet {
			s.Amplitudes[i] = 0
		} else {
			norm += real(a)*real(a) + imag(a)*imag(a)
		}
	}

	scale := complex(1/sqrtNonZero(norm), 0)

	for i := range s.Amplitudes {
		s.Amplitudes[i] *= scale
	}

	assertNormalized(s)
}

func sqrtNonZero(v float64) float64 {
	if v == 0 {
		return 1
	}

	return math.Sqrt(v)
}

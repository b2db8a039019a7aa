// Package runner drives one or more simulation shots against a linked,
// laid-out OpenQASM 2.0 program and assembles the public result shapes.
package runner

import "github.com/openqasm/qsim/internal/interp"

// DefaultMaxQubits bounds the amplitude vector to 2^27 complex128 values
// (2 GiB) unless the caller raises or lowers it, per spec.md §4.4.
const DefaultMaxQubits = 27

// Options configures a run. The zero value is valid; withDefaults fills in
// every unset field.
type Options struct {
	// MaxQubits caps the register layout's qubit count. <= 0 selects
	// DefaultMaxQubits.
	MaxQubits int
	// MaxExpansionDepth bounds macro-gate recursion. <= 0 selects
	// interp.DefaultMaxExpansionDepth.
	MaxExpansionDepth int
	// Seed pins the measurement PRNG for reproducible outcomes. nil
	// selects a nondeterministic seed, per spec.md §5.
	Seed *uint64
	// Shots is the number of independent executions to run. <= 1 runs
	// once and never populates Computation.Histogram.
	Shots int
}

func (o Options) withDefaults() Options {
	if o.MaxQubits <= 0 {
		o.MaxQubits = DefaultMaxQubits
	}

	if o.MaxExpansionDepth <= 0 {
		o.MaxExpansionDepth = interp.DefaultMaxExpansionDepth
	}

	if o.Shots < 1 {
		o.Shots = 1
	}

	return o
}

// Package testfixtures embeds sample OpenQASM 2.0 programs, carried over
// from the reference implementation's own test corpus. Only this
// package's own tests read them; the runner and qsim tests inline their
// programs.
package testfixtures

import _ "embed"

//go:embed bell_pair.qasm
var bellPair string

//go:embed ghz.qasm
var ghz string

//go:embed superposition.qasm
var superposition string

//go:embed teleportation.qasm
var teleportation string

// BellPair returns a two-qubit Bell-pair preparation and measurement.
func BellPair() string { return bellPair }

// GHZ returns a three-qubit GHZ-state preparation and measurement.
func GHZ() string { return ghz }

// Superposition returns a four-qubit uniform superposition with no
// measurement, grounded on the reference implementation's
// test_no_indices_superposition case.
func Superposition() string { return superposition }

// Teleportation returns a standard three-qubit teleportation circuit using
// classically-conditioned corrections.
func Teleportation() string { return teleportation }

// All returns every named fixture, keyed by name.
func All() map[string]string {
	return map[string]string{
		"bell_pair":     bellPair,
		"ghz":           ghz,
		"superposition": superposition,
		"teleportation": teleportation,
	}
}

//go:build debug

package simulator

import (
	"fmt"
	"math"
)

// assertNormalized panics if the state vector has drifted from unit norm
// by more than a generous floating-point tolerance. Compiled in only with
// -tags debug; production builds pay nothing for this check.
func assertNormalized(s *State) {
	var total float64

	for _, a := range s.Amplitudes {
		total += real(a)*real(a) + imag(a)*imag(a)
	}

	if math.Abs(total-1) > 1e-6 {
		panic(fmt.Sprintf("simulator: state vector norm drifted from 1: %v", total))
	}
}

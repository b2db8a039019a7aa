package runner

import (
	"math/rand/v2"

	"github.com/openqasm/qsim/internal/interp"
	"github.com/openqasm/qsim/internal/qasm/ast"
	"github.com/openqasm/qsim/internal/qasm/layout"
	"github.com/openqasm/qsim/internal/qasm/linker"
	"github.com/openqasm/qsim/internal/simulator"
	"github.com/openqasm/qsim/internal/source"
)

// rawResult holds the raw per-shot outputs of Execute, before they are
// shaped into the public Computation.
type rawResult struct {
	finalState *simulator.State
	shots      []interp.Memory
}

// Execute runs opts.Shots independent shots of linked against a fresh
// initial state, applying the deterministic-prefix optimization of
// spec.md §4.8: statements before the first classical-touching statement
// run once, and every shot clones that state rather than re-deriving it.
func Execute(file *source.File, linked *linker.Program, m *layout.Map, opts Options) (*rawResult, error) {
	opts = opts.withDefaults()

	if m.NumQubits > opts.MaxQubits {
		return nil, &interp.Error{Kind: interp.StateTooLarge, Qubits: m.NumQubits, Cap: opts.MaxQubits}
	}

	rng := newRand(opts.Seed)
	in := interp.New(file, linked, m, rng, opts.MaxExpansionDepth)

	prefixLen := splitDeterministicPrefix(linked.Statements)

	prefixState := simulator.New(m.NumQubits)
	prefixMem := interp.NewMemory(m)

	if err := in.Run(prefixState, prefixMem, linked.Statements[:prefixLen]); err != nil {
		return nil, err
	}

	remainder := linked.Statements[prefixLen:]

	// A program with no measurement/reset/conditional is invariant across
	// shots: spec.md §4.8 calls for exactly one run and no histogram, so
	// extra shots would be wasted work that also corrupts Serialize's
	// "more than one shot ran" histogram trigger for registers that were
	// never touched.
	shots := opts.Shots
	if len(remainder) == 0 {
		shots = 1
	}

	result := &rawResult{shots: make([]interp.Memory, 0, shots)}

	for i := 0; i < shots; i++ {
		state := prefixState.Clone()
		mem := cloneMemory(prefixMem)

		if err := in.Run(state, mem, remainder); err != nil {
			return nil, err
		}

		result.shots = append(result.shots, mem)
		result.finalState = state
	}

	return result, nil
}

// Serialize shapes a rawResult into the public Computation, building the
// Histogram only when more than one shot ran.
func (r *rawResult) Serialize(m *layout.Map) *Computation {
	last := r.shots[len(r.shots)-1]

	memory := make(map[string]uint64, len(last))
	for name, v := range last {
		memory[name] = v
	}

	var hist Histogram
	if len(r.shots) > 1 {
		hist = buildHistogram(m, r.shots)
	}

	return &Computation{
		Probabilities: r.finalState.Probabilities(),
		StateVector:   toStateVector(r.finalState),
		Memory:        memory,
		Histogram:     hist,
	}
}

// Simulate runs Execute followed by Serialize, for callers that don't need
// the phase split (the "simulate" library entry point).
func Simulate(file *source.File, linked *linker.Program, m *layout.Map, opts Options) (*Computation, error) {
	raw, err := Execute(file, linked, m, opts)
	if err != nil {
		return nil, err
	}

	return raw.Serialize(m), nil
}

func toStateVector(state *simulator.State) StateVector {
	amps := make([]float64, 0, 2*len(state.Amplitudes))
	for _, a := range state.Amplitudes {
		amps = append(amps, real(a), imag(a))
	}

	return StateVector{Amplitudes: amps, QubitWidth: state.NumQubits}
}

func cloneMemory(mem interp.Memory) interp.Memory {
	clone := make(interp.Memory, len(mem))
	for k, v := range mem {
		clone[k] = v
	}

	return clone
}

// newRand seeds the shared shot PRNG. A nil seed draws two words from the
// auto-seeded math/rand/v2 global source, matching spec.md §5's "absent
// seed => nondeterministic seed" requirement without reaching for an
// external entropy dependency the retrieved pack never uses.
func newRand(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return rand.New(rand.NewPCG(*seed, *seed))
}

// splitDeterministicPrefix returns the index of the first statement that
// touches classical state (measurement, reset, or a conditional). Every
// statement before it is invariant across shots.
func splitDeterministicPrefix(statements []ast.Statement) int {
	for i, s := range statements {
		switch s.(type) {
		case *ast.Measure, *ast.Reset, *ast.IfEq:
			return i
		}
	}

	return len(statements)
}

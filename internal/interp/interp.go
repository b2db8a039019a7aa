package interp

import (
	"math"
	"math/rand/v2"

	"github.com/openqasm/qsim/internal/qasm/ast"
	"github.com/openqasm/qsim/internal/qasm/eval"
	"github.com/openqasm/qsim/internal/qasm/layout"
	"github.com/openqasm/qsim/internal/qasm/linker"
	"github.com/openqasm/qsim/internal/simulator"
	"github.com/openqasm/qsim/internal/source"
)

// DefaultMaxExpansionDepth bounds macro-gate expansion recursion, per
// spec.md §4.6.
const DefaultMaxExpansionDepth = 256

// Interpreter walks a linked, laid-out program's statement list, expanding
// gate calls to simulator primitives and maintaining classical memory.
type Interpreter struct {
	file              *source.File
	gates             map[string]*linker.GateEntry
	layout            *layout.Map
	rng               *rand.Rand
	maxExpansionDepth int
}

// New constructs an Interpreter. file is used only for positioned error
// messages and may be nil. maxExpansionDepth <= 0 selects
// DefaultMaxExpansionDepth.
func New(file *source.File, prog *linker.Program, m *layout.Map, rng *rand.Rand, maxExpansionDepth int) *Interpreter {
	if maxExpansionDepth <= 0 {
		maxExpansionDepth = DefaultMaxExpansionDepth
	}

	return &Interpreter{file: file, gates: prog.Gates, layout: m, rng: rng, maxExpansionDepth: maxExpansionDepth}
}

// Memory is the classical state: one little-endian integer value per
// classical register.
type Memory map[string]uint64

// NewMemory returns a zeroed Memory for every classical register in m.
func NewMemory(m *layout.Map) Memory {
	mem := make(Memory)

	for name, r := range m.Registers {
		if r.Kind == layout.Classical {
			mem[name] = 0
		}
	}

	return mem
}

// Run executes statements against state and mem in order.
func (in *Interpreter) Run(state *simulator.State, mem Memory, statements []ast.Statement) error {
	for _, stmt := range statements {
		if err := in.exec(state, mem, stmt); err != nil {
			return err
		}
	}

	return nil
}

func (in *Interpreter) exec(state *simulator.State, mem Memory, stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.QRegDecl, *ast.CRegDecl:
		return nil // consumed by internal/qasm/layout
	case *ast.Barrier:
		return nil // no operational effect
	case *ast.GateCall:
		return in.execGateCall(state, s, nil)
	case *ast.Measure:
		return in.execMeasure(state, mem, s)
	case *ast.Reset:
		return in.execReset(state, s)
	case *ast.IfEq:
		return in.execIfEq(state, mem, s)
	default:
		return nil
	}
}

// broadcastArg pairs an Argument with the register space it names.
type broadcastArg struct {
	arg  ast.Argument
	kind layout.Kind
}

// resolveBroadcast implements spec.md §4.6's broadcasting rule: every
// Whole argument's register size must agree, and it is applied once per
// index of that shared size while Indexed arguments stay fixed.
func (in *Interpreter) resolveBroadcast(args []broadcastArg) (int, [][]int, error) {
	size := -1

	for _, ba := range args {
		if !ba.arg.IsWhole {
			continue
		}

		reg, ok := in.layout.Registers[ba.arg.Reg]
		if !ok {
			return 0, nil, &Error{Kind: IndexOutOfRange, Name: ba.arg.Reg}
		}

		if size == -1 {
			size = reg.Size
		} else if size != reg.Size {
			return 0, nil, &Error{Kind: BroadcastMismatch}
		}
	}

	if size == -1 {
		size = 1
	}

	rows := make([][]int, size)

	for i := 0; i < size; i++ {
		row := make([]int, len(args))

		for j, ba := range args {
			localIndex := ba.arg.Index
			if ba.arg.IsWhole {
				localIndex = i
			}

			var (
				abs int
				ok  bool
			)

			if ba.kind == layout.Quantum {
				abs, ok = in.layout.QubitIndex(ba.arg.Reg, localIndex)
			} else {
				abs, ok = in.layout.BitIndex(ba.arg.Reg, localIndex)
			}

			if !ok {
				return 0, nil, &Error{Kind: IndexOutOfRange, Name: ba.arg.Reg}
			}

			row[j] = abs
		}

		rows[i] = row
	}

	return size, rows, nil
}

func (in *Interpreter) execGateCall(state *simulator.State, call *ast.GateCall, env eval.Env) error {
	entry, ok := in.gates[call.Name]
	if !ok {
		return &Error{Kind: IndexOutOfRange, Name: call.Name} // resolved at link time; defensive only
	}

	bargs := make([]broadcastArg, len(call.QArgs))
	for i, a := range call.QArgs {
		bargs[i] = broadcastArg{arg: a, kind: layout.Quantum}
	}

	n, rows, err := in.resolveBroadcast(bargs)
	if err != nil {
		return err
	}

	realValues := make([]float64, len(call.RealArgs))

	for i, e := range call.RealArgs {
		v, err := eval.Eval(in.file, e, env)
		if err != nil {
			return &Error{Kind: MathError, Cause: err}
		}

		realValues[i] = v
	}

	for i := 0; i < n; i++ {
		if err := in.expand(state, entry, rows[i], boundEnv(entry.RealParams, realValues), 0); err != nil {
			return err
		}
	}

	return nil
}

func boundEnv(names []string, values []float64) eval.Env {
	env := make(eval.Env, len(names))
	for i, n := range names {
		env[n] = values[i]
	}

	return env
}

// expand recursively lowers a bound gate invocation to primitive
// applications using an explicit depth counter (spec.md's "explicit
// work-stack" note, expressed here as bounded recursion since Go's call
// stack already gives us the stack; a literal []pendingCall slice would
// duplicate what the runtime provides for free).
func (in *Interpreter) expand(state *simulator.State, entry *linker.GateEntry, qubits []int, env eval.Env, depth int) error {
	if depth > in.maxExpansionDepth {
		return &Error{Kind: ExpansionDepthExceeded}
	}

	if entry.IsPrimitive {
		return in.applyPrimitive(state, entry, qubits, env)
	}

	if entry.Opaque {
		return &Error{Kind: OpaqueInvoked, Name: entry.Name}
	}

	qubitEnv := make(map[string]int, len(entry.QuantumParams))
	for i, p := range entry.QuantumParams {
		qubitEnv[p] = qubits[i]
	}

	for _, bodyStmt := range entry.Body {
		call, ok := bodyStmt.(*ast.GateCall)
		if !ok {
			continue // *ast.Barrier: no operational effect
		}

		nested, ok := in.gates[call.Name]
		if !ok {
			return &Error{Kind: IndexOutOfRange, Name: call.Name}
		}

		nestedQubits := make([]int, len(call.QArgs))
		for i, a := range call.QArgs {
			q, ok := qubitEnv[a.Reg]
			if !ok {
				return &Error{Kind: IndexOutOfRange, Name: a.Reg}
			}

			nestedQubits[i] = q
		}

		nestedValues := make([]float64, len(call.RealArgs))

		for i, e := range call.RealArgs {
			v, err := eval.Eval(in.file, e, env)
			if err != nil {
				return &Error{Kind: MathError, Cause: err}
			}

			nestedValues[i] = v
		}

		if err := in.expand(state, nested, nestedQubits, boundEnv(nested.RealParams, nestedValues), depth+1); err != nil {
			return err
		}
	}

	return nil
}

func (in *Interpreter) applyPrimitive(state *simulator.State, entry *linker.GateEntry, qubits []int, env eval.Env) error {
	var err error

	switch entry.Primitive {
	case linker.PrimitiveU:
		err = state.ApplyU(env["theta"], env["phi"], env["lambda"], qubits[0])
	case linker.PrimitiveCX:
		err = state.ApplyCX(qubits[0], qubits[1])
	}

	if err != nil {
		return &Error{Kind: IndexOutOfRange, Cause: err}
	}

	return nil
}

func (in *Interpreter) execMeasure(state *simulator.State, mem Memory, m *ast.Measure) error {
	n, rows, err := in.resolveBroadcast([]broadcastArg{
		{arg: m.Source, kind: layout.Quantum},
		{arg: m.Target, kind: layout.Classical},
	})
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		qubit, bit := rows[i][0], rows[i][1]

		outcome := in.sample(state, qubit)
		state.Collapse(qubit, outcome)

		setBit(mem, in.layout, m.Target.Reg, bit, outcome)
	}

	return nil
}

func (in *Interpreter) execReset(state *simulator.State, r *ast.Reset) error {
	n, rows, err := in.resolveBroadcast([]broadcastArg{{arg: r.Target, kind: layout.Quantum}})
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		qubit := rows[i][0]

		outcome := in.sample(state, qubit)
		state.Collapse(qubit, outcome)

		if outcome == 1 {
			if err := state.ApplyU(math.Pi, 0, math.Pi, qubit); err != nil {
				return &Error{Kind: IndexOutOfRange, Cause: err}
			}
		}
	}

	return nil
}

func (in *Interpreter) sample(state *simulator.State, qubit int) int {
	p1 := state.ProbabilityOne(qubit)
	if in.rng.Float64() < p1 {
		return 1
	}

	return 0
}

func (in *Interpreter) execIfEq(state *simulator.State, mem Memory, s *ast.IfEq) error {
	reg, ok := in.layout.Registers[s.CReg]
	if !ok || reg.Kind != layout.Classical {
		return &Error{Kind: IndexOutOfRange, Name: s.CReg}
	}

	if s.Value < 0 || uint64(s.Value) >= uint64(1)<<uint(reg.Size) {
		return &Error{Kind: ConditionalWidthOverflow, Name: s.CReg}
	}

	if mem[s.CReg] != uint64(s.Value) {
		return nil
	}

	return in.exec(state, mem, s.Inner)
}

func setBit(mem Memory, m *layout.Map, reg string, absoluteBit int, outcome int) {
	r := m.Registers[reg]
	local := uint(absoluteBit - r.Base)

	if outcome == 1 {
		mem[reg] |= 1 << local
	} else {
		mem[reg] &^= 1 << local
	}
}

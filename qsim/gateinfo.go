package qsim

import "github.com/openqasm/qsim/internal/qasm/linker"

// GateInfo describes one gate's signature and documentation, as returned
// by GateInfoOf.
type GateInfo struct {
	Name          string
	RealParams    []string
	QuantumParams []string
	Doc           string
	Opaque        bool
}

// GateInfoOf parses and links text, then reports the signature and
// docstring of the gate named name.
func GateInfoOf(text, name string) (*GateInfo, error) {
	linked, err := ParseAndLink(text)
	if err != nil {
		return nil, err
	}

	entry, ok := linked.Gates[name]
	if !ok {
		return nil, &linker.Error{Kind: linker.UndefinedGate, Name: name}
	}

	return &GateInfo{
		Name:          entry.Name,
		RealParams:    entry.RealParams,
		QuantumParams: entry.QuantumParams,
		Doc:           entry.Doc,
		Opaque:        entry.Opaque,
	}, nil
}

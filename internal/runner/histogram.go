package runner

import (
	"sort"

	"github.com/openqasm/qsim/internal/interp"
	"github.com/openqasm/qsim/internal/qasm/layout"
)

// ValueCount is one bucket of a register's histogram: how many shots ended
// with that register holding Value.
type ValueCount struct {
	Value uint64 `json:"value"`
	Count int    `json:"count"`
}

// RegisterHistogram is the marginal distribution of a single classical
// register across shots, grounded on the reference implementation's
// register-name -> (Vec<(value,count)>, size) shape.
type RegisterHistogram struct {
	Values []ValueCount `json:"values"`
	Size   int          `json:"size"`
}

// Histogram maps classical register name to its marginal distribution
// across shots.
type Histogram map[string]RegisterHistogram

// buildHistogram aggregates per-shot classical memory snapshots into a
// Histogram, one marginal per classical register.
func buildHistogram(m *layout.Map, shots []interp.Memory) Histogram {
	counts := make(map[string]map[uint64]int)

	for name, reg := range m.Registers {
		if reg.Kind == layout.Classical {
			counts[name] = make(map[uint64]int)
		}
	}

	for _, mem := range shots {
		for name, value := range mem {
			counts[name][value]++
		}
	}

	hist := make(Histogram, len(counts))

	for name, byValue := range counts {
		values := make([]ValueCount, 0, len(byValue))
		for v, c := range byValue {
			values = append(values, ValueCount{Value: v, Count: c})
		}

		sort.Slice(values, func(i, j int) bool { return values[i].Value < values[j].Value })

		hist[name] = RegisterHistogram{Values: values, Size: m.Registers[name].Size}
	}

	return hist
}

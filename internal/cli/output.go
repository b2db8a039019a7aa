package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/openqasm/qsim/qsim"
)

// writeJSONResult writes exec to w as indented JSON, per SPEC_FULL.md's
// domain-stack commitment to a JSON result encoding alongside CSV.
func writeJSONResult(w io.Writer, exec *qsim.Execution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(exec)
}

type resultFlags struct {
	probabilities bool
	statevector   bool
	times         bool
}

// printResult writes a human-readable summary of exec to w: classical
// memory always, then whichever of probabilities/statevector/times were
// requested.
func printResult(w io.Writer, exec *qsim.Execution, base int, flags resultFlags) {
	fmt.Fprintln(w, "Memory:")

	for _, name := range sortedKeys(exec.Memory) {
		fmt.Fprintf(w, "  %s = %s\n", name, formatValue(exec.Memory[name], base))
	}

	if flags.probabilities {
		fmt.Fprintln(w, "Probabilities:")

		for i, p := range exec.Probabilities {
			fmt.Fprintf(w, "  %d: %v\n", i, p)
		}
	}

	if flags.statevector {
		fmt.Fprintln(w, "State vector:")

		amps := exec.StateVector.Amplitudes
		for i := 0; i*2 < len(amps); i++ {
			fmt.Fprintf(w, "  %d: %v%+vi\n", i, amps[2*i], amps[2*i+1])
		}
	}

	if exec.Histogram != nil {
		fmt.Fprintln(w, "Histogram:")

		for _, name := range sortedHistogramKeys(exec.Histogram) {
			fmt.Fprintf(w, "  %s:\n", name)

			for _, vc := range exec.Histogram[name].Values {
				fmt.Fprintf(w, "    %s: %d\n", formatValue(vc.Value, base), vc.Count)
			}
		}
	}

	if flags.times {
		fmt.Fprintln(w, "Times (ms):")
		fmt.Fprintf(w, "  parsing: %d\n", exec.Times.ParsingMS)
		fmt.Fprintf(w, "  simulation: %d\n", exec.Times.SimulationMS)
		fmt.Fprintf(w, "  serialization: %d\n", exec.Times.SerializationMS)
	}
}

// writeCSVOutputs writes PREFIX.memory.csv and PREFIX.state.csv, and
// PREFIX.times.csv when withTimes is set, per spec.md §6's CSV outputs.
func writeCSVOutputs(exec *qsim.Execution, prefix string, base int, withTimes bool) error {
	if err := writeMemoryCSV(exec, prefix+".memory.csv", base); err != nil {
		return err
	}

	if err := writeStateCSV(exec, prefix+".state.csv"); err != nil {
		return err
	}

	if withTimes {
		if err := writeTimesCSV(exec, prefix+".times.csv"); err != nil {
			return err
		}
	}

	return nil
}

func writeMemoryCSV(exec *qsim.Execution, path string, base int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"register", "value"}); err != nil {
		return err
	}

	for _, name := range sortedKeys(exec.Memory) {
		if err := w.Write([]string{name, formatValue(exec.Memory[name], base)}); err != nil {
			return err
		}
	}

	return w.Error()
}

func writeStateCSV(exec *qsim.Execution, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"basis_index", "real", "imag", "probability"}); err != nil {
		return err
	}

	amps := exec.StateVector.Amplitudes

	for i := range exec.Probabilities {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(amps[2*i], 'g', -1, 64),
			strconv.FormatFloat(amps[2*i+1], 'g', -1, 64),
			strconv.FormatFloat(exec.Probabilities[i], 'g', -1, 64),
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func writeTimesCSV(exec *qsim.Execution, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"phase", "milliseconds"}); err != nil {
		return err
	}

	rows := [][2]any{
		{"parsing", exec.Times.ParsingMS},
		{"simulation", exec.Times.SimulationMS},
		{"serialization", exec.Times.SerializationMS},
	}

	for _, row := range rows {
		if err := w.Write([]string{row[0].(string), strconv.FormatInt(row[1].(int64), 10)}); err != nil {
			return err
		}
	}

	return w.Error()
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func sortedHistogramKeys(h qsim.Histogram) []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

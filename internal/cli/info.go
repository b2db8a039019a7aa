package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openqasm/qsim/internal/cliutil"
	"github.com/openqasm/qsim/qsim"
)

// infoCmd is a convenience alternative to rootCmd's spec-mandated --info
// flag: it takes the gate's defining source as a positional argument
// instead of the program passed to the default run, which is handy when
// looking up a gate without a full program to hand.
var infoCmd = &cobra.Command{
	Use:   "info GATE [source]",
	Short: "Print a gate's signature and documentation.",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runInfo,
}

func runInfo(cmd *cobra.Command, args []string) {
	name := args[0]

	text := "OPENQASM 2.0;\ninclude \"qelib1.inc\";\n"

	if len(args) == 2 {
		bytes, err := os.ReadFile(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUsage)
		}

		text = string(bytes)
	}

	resolveAndPrintGateInfo(text, name)
}

// resolveAndPrintGateInfo looks up name in text and prints its signature
// and documentation, or reports the error and exits. Shared by rootCmd's
// --info flag and infoCmd.
func resolveAndPrintGateInfo(text, name string) {
	info, err := qsim.GateInfoOf(text, name)
	if err != nil {
		reportError(os.Stderr, text, err)
		os.Exit(exitCodeFor(err))
	}

	printGateInfo(os.Stdout, info)
}

func printGateInfo(w io.Writer, info *qsim.GateInfo) {
	fmt.Fprintf(w, "%s(%s) %s\n", info.Name, strings.Join(info.RealParams, ", "), strings.Join(info.QuantumParams, ", "))

	if info.Opaque {
		fmt.Fprintln(w, "  opaque")
	}

	if info.Doc != "" {
		width := cliutil.TerminalWidth(1)
		fmt.Fprintln(w, cliutil.WrapText(info.Doc, width))
	}
}

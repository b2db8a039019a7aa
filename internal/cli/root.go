// Package cli implements the qsim command-line surface: a cobra root
// command that executes a program plus an info subcommand, both thin
// wrappers over the qsim library package.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openqasm/qsim/internal/cliutil"
	"github.com/openqasm/qsim/internal/qasm/eval"
	"github.com/openqasm/qsim/internal/qasm/layout"
	"github.com/openqasm/qsim/internal/qasm/lexer"
	"github.com/openqasm/qsim/internal/qasm/linker"
	"github.com/openqasm/qsim/internal/qasm/parser"
	"github.com/openqasm/qsim/internal/source"
	"github.com/openqasm/qsim/qsim"
)

// sourceDisplayName mirrors the name qsim's internal parser assigns every
// program, so a reconstructed source.File lines up with the spans carried
// by returned errors.
const sourceDisplayName = "<source>"

// Exit codes, per spec.md §6.
const (
	exitSuccess = 0
	exitRuntime = 1
	exitSyntax  = 2
	exitUsage   = 64
)

var rootCmd = &cobra.Command{
	Use:   "qsim [source]",
	Short: "Interpret and simulate an OpenQASM 2.0 program.",
	Long: `qsim parses, links and simulates an OpenQASM 2.0 program, producing
either the final state vector or, with --shots, a histogram of classical
measurement outcomes.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRoot,
}

// Execute runs the CLI. It is the sole entry point cmd/qsim/main.go calls.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUsage)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().Bool("binary", false, "display classical memory in binary")
	rootCmd.Flags().Bool("hexadecimal", false, "display classical memory in hexadecimal")
	rootCmd.Flags().Bool("integer", true, "display classical memory as decimal integers (default)")
	rootCmd.Flags().Bool("probabilities", false, "emit the probability vector")
	rootCmd.Flags().Bool("statevector", false, "emit the amplitude vector")
	rootCmd.Flags().Bool("times", false, "emit phase timings")
	rootCmd.Flags().Bool("json", false, "emit the full result as JSON instead of the text summary")
	rootCmd.Flags().Int("shots", 1, "number of shots to run (enables the histogram when > 1)")
	rootCmd.Flags().String("out", "", "write PREFIX.memory.csv, PREFIX.state.csv, PREFIX.times.csv instead of standard output")
	rootCmd.Flags().Uint64("seed", 0, "seed the measurement PRNG for reproducible outcomes")
	rootCmd.Flags().String("info", "", "print docstring and parameter lists for GATENAME, then exit")

	rootCmd.AddCommand(infoCmd)
}

func runRoot(cmd *cobra.Command, args []string) {
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}

	text, err := readSource(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	if gate := getString(cmd, "info"); gate != "" {
		resolveAndPrintGateInfo(text, gate)
		return
	}

	opts := qsim.Options{Shots: getInt(cmd, "shots")}

	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		opts.Seed = &seed
	}

	log.Debugf("simulating %d byte(s) of source with %d shot(s)", len(text), opts.Shots)

	exec, err := qsim.Run(text, opts)
	if err != nil {
		reportError(os.Stderr, text, err)
		os.Exit(exitCodeFor(err))
	}

	out := getString(cmd, "out")
	base := radix(cmd)

	if out != "" {
		if err := writeCSVOutputs(exec, out, base, getFlag(cmd, "times")); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUsage)
		}

		return
	}

	if getFlag(cmd, "json") {
		if err := writeJSONResult(os.Stdout, exec); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUsage)
		}

		return
	}

	printResult(os.Stdout, exec, base, resultFlags{
		probabilities: getFlag(cmd, "probabilities"),
		statevector:   getFlag(cmd, "statevector"),
		times:         getFlag(cmd, "times"),
	})
}

func readSource(args []string) (string, error) {
	if len(args) == 1 {
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}

		return string(bytes), nil
	}

	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading standard input: %w", err)
	}

	return string(bytes), nil
}

// exitCodeFor classifies an error into spec.md §6's exit-code taxonomy.
func exitCodeFor(err error) int {
	var (
		lexErr    *lexer.Error
		parseErr  *parser.Error
		linkErr   *linker.Error
		layoutErr *layout.Error
	)

	switch {
	case errors.As(err, &lexErr), errors.As(err, &parseErr), errors.As(err, &linkErr), errors.As(err, &layoutErr):
		return exitSyntax
	default:
		return exitRuntime
	}
}

// reportError prints err.Error() (which already embeds "<source>:line:col:"
// for position-carrying errors) followed by the offending source line and a
// caret, when a span is available.
func reportError(w io.Writer, text string, err error) {
	fmt.Fprintln(w, err)

	s, ok := errorSpan(err)
	if !ok {
		return
	}

	file := source.NewFile(sourceDisplayName, []byte(text))
	cliutil.PrintCaretLines(w, file, s)
}

func errorSpan(err error) (source.Span, bool) {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexErr.Span, true
	}

	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return parseErr.Span, true
	}

	var linkErr *linker.Error
	if errors.As(err, &linkErr) {
		return linkErr.Span, true
	}

	var layoutErr *layout.Error
	if errors.As(err, &layoutErr) {
		return layoutErr.Span, true
	}

	var evalErr *eval.Error
	if errors.As(err, &evalErr) {
		return evalErr.Span, true
	}

	return source.Span{}, false
}

// Package qsim is the public library surface: parse, link, and simulate
// OpenQASM 2.0 programs. cmd/qsim is a thin presentation layer over this
// package.
package qsim

import (
	"time"

	"github.com/openqasm/qsim/internal/qasm/ast"
	"github.com/openqasm/qsim/internal/qasm/layout"
	"github.com/openqasm/qsim/internal/qasm/linker"
	"github.com/openqasm/qsim/internal/qasm/parser"
	"github.com/openqasm/qsim/internal/runner"
	"github.com/openqasm/qsim/internal/source"
)

// Options configures a simulation run. See internal/runner.Options for
// field documentation.
type Options = runner.Options

// Computation, Execution and their component shapes are the result types
// returned by Simulate and Run.
type (
	Computation       = runner.Computation
	Execution         = runner.Execution
	StateVector       = runner.StateVector
	Times             = runner.Times
	Histogram         = runner.Histogram
	RegisterHistogram = runner.RegisterHistogram
	ValueCount        = runner.ValueCount
)

// Program, Library, Expr and Statement are the AST shapes returned by the
// parse_* entry points.
type (
	Program   = ast.Program
	Library   = ast.Library
	Expr      = ast.Expr
	Statement = ast.Statement
)

// LinkedProgram is the output of ParseAndLink: a closed gate table with all
// includes spliced in and every call site arity-checked.
type LinkedProgram = linker.Program

const sourceName = "<source>"

func newFile(text string) *source.File {
	return source.NewFile(sourceName, []byte(text))
}

// ParseProgram parses text as a top-level OpenQASM 2.0 program.
func ParseProgram(text string) (*Program, error) {
	return parser.ParseProgram(newFile(text))
}

// ParseLibrary parses text as a gate-definition library (no top-level
// statements other than gate/opaque declarations).
func ParseLibrary(text string) (*Library, error) {
	return parser.ParseLibrary(newFile(text))
}

// ParseExpression parses text as a single real-valued expression.
func ParseExpression(text string) (Expr, error) {
	return parser.ParseExpression(newFile(text))
}

// ParseStatement parses text as a single statement.
func ParseStatement(text string) (Statement, error) {
	return parser.ParseStatement(newFile(text))
}

// ParseAndLink parses text and links it against the built-in standard
// library, producing a program whose gate table is closed and whose call
// sites are arity-checked.
func ParseAndLink(text string) (*LinkedProgram, error) {
	file := newFile(text)

	prog, err := parser.ParseProgram(file)
	if err != nil {
		return nil, err
	}

	return linker.Link(file, prog)
}

// Simulate lays out and simulates an already-linked program, without
// timing instrumentation.
func Simulate(linked *LinkedProgram, opts Options) (*Computation, error) {
	m, err := layout.Layout(nil, linked)
	if err != nil {
		return nil, err
	}

	return runner.Simulate(nil, linked, m, opts)
}

// Run parses, links, lays out, and simulates text in one call, recording
// the milliseconds spent in each phase.
func Run(text string, opts Options) (*Execution, error) {
	file := newFile(text)

	parseStart := time.Now()

	prog, err := parser.ParseProgram(file)
	if err != nil {
		return nil, err
	}

	linked, err := linker.Link(file, prog)
	if err != nil {
		return nil, err
	}

	m, err := layout.Layout(file, linked)
	if err != nil {
		return nil, err
	}

	parsingMS := time.Since(parseStart).Milliseconds()

	simStart := time.Now()

	raw, err := runner.Execute(file, linked, m, opts)
	if err != nil {
		return nil, err
	}

	simulationMS := time.Since(simStart).Milliseconds()

	serStart := time.Now()
	computation := raw.Serialize(m)
	serializationMS := time.Since(serStart).Milliseconds()

	return &Execution{
		Computation: *computation,
		Times: Times{
			ParsingMS:       parsingMS,
			SimulationMS:    simulationMS,
			SerializationMS: serializationMS,
		},
	}, nil
}

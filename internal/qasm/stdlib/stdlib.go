// Package stdlib embeds the OpenQASM 2.0 standard gate library (qelib1.inc)
// and exposes it as a parsed AST, so the linker never touches the
// filesystem to resolve include "qelib1.inc";.
package stdlib

import (
	_ "embed"
	"sync"

	"github.com/openqasm/qsim/internal/qasm/ast"
	"github.com/openqasm/qsim/internal/qasm/parser"
	"github.com/openqasm/qsim/internal/source"
)

// Name is the only include path the linker resolves.
const Name = "qelib1.inc"

//go:embed qelib1.inc
var source_ string

var (
	once     sync.Once
	library  *ast.Library
	parseErr error
)

// Library returns the parsed standard library, parsing it once on first
// use. A non-nil error here indicates the embedded resource itself is
// malformed and is a programmer error, not a user-facing one.
func Library() (*ast.Library, error) {
	once.Do(func() {
		file := source.NewFile(Name, []byte(source_))
		library, parseErr = parser.ParseLibrary(file)
	})

	return library, parseErr
}

// Source returns the embedded qelib1.inc text, for tooling that wants to
// display the definition of a standard gate.
func Source() string {
	return source_
}

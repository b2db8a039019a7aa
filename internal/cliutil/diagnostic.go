// Package cliutil holds presentation helpers shared by cmd/qsim: source-error
// diagnostics and terminal-width-aware text wrapping.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/openqasm/qsim/internal/source"
)

// caretColor and colorReset bracket the caret line in red when the
// destination is a terminal, matching the teacher's inspect.go convention
// of only emitting escape codes once term.IsTerminal confirms it's safe.
const (
	caretColor = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// PrintSourceError writes a caret diagnostic for span within file: the
// "filename:line: message" header, the offending source line, and a caret
// line under the offending column.
func PrintSourceError(w io.Writer, file *source.File, span source.Span, msg string) {
	line := file.FindFirstEnclosingLine(span)

	fmt.Fprintf(w, "%s:%d: %s\n", file.Name(), line.Number(), msg)
	PrintCaretLines(w, file, span)
}

// PrintCaretLines writes just the offending source line and a caret line
// under span's column, without a header. Callers that already have a
// position-carrying error string (e.g. one produced by Error()) use this to
// avoid printing the position twice.
func PrintCaretLines(w io.Writer, file *source.File, span source.Span) {
	line := file.FindFirstEnclosingLine(span)

	fmt.Fprintln(w, line.String())

	column := line.Column(span.Start())
	width := span.Length()

	if width < 1 {
		width = 1
	}

	caret := strings.Repeat(" ", column-1) + strings.Repeat("^", width)

	if isTerminal(w) {
		caret = caretColor + caret + colorReset
	}

	fmt.Fprintln(w, caret)
}

// isTerminal reports whether w is a terminal file descriptor, so callers
// know whether it's safe to emit ANSI color codes.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Package lexer turns OpenQASM 2.0 source text into a stream of positioned
// tokens.
package lexer

import "github.com/openqasm/qsim/internal/source"

// Kind identifies the lexical category of a Token.
type Kind uint

// Token kinds recognized by the lexer.
const (
	EOF Kind = iota
	IDENT
	INT
	REAL
	STRING
	// Keywords
	OPENQASM
	INCLUDE
	QREG
	CREG
	GATE
	OPAQUE
	BARRIER
	MEASURE
	RESET
	IF
	U
	CX
	PI
	// Operators and punctuation
	PLUS
	MINUS
	STAR
	SLASH
	CARET
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	SEMI
	COMMA
	ARROW
	EQEQ
)

var kindNames = map[Kind]string{
	EOF:      "end of file",
	IDENT:    "identifier",
	INT:      "integer literal",
	REAL:     "real literal",
	STRING:   "string literal",
	OPENQASM: "OPENQASM",
	INCLUDE:  "include",
	QREG:     "qreg",
	CREG:     "creg",
	GATE:     "gate",
	OPAQUE:   "opaque",
	BARRIER:  "barrier",
	MEASURE:  "measure",
	RESET:    "reset",
	IF:       "if",
	U:        "U",
	CX:       "CX",
	PI:       "pi",
	PLUS:     "+",
	MINUS:    "-",
	STAR:     "*",
	SLASH:    "/",
	CARET:    "^",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACE:   "{",
	RBRACE:   "}",
	LBRACKET: "[",
	RBRACKET: "]",
	SEMI:     ";",
	COMMA:    ",",
	ARROW:    "->",
	EQEQ:     "==",
}

// String renders a human-readable name for a token kind, used in parser
// error messages.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown token"
}

var keywords = map[string]Kind{
	"OPENQASM": OPENQASM,
	"include":  INCLUDE,
	"qreg":     QREG,
	"creg":     CREG,
	"gate":     GATE,
	"opaque":   OPAQUE,
	"barrier":  BARRIER,
	"measure":  MEASURE,
	"reset":    RESET,
	"if":       IF,
	"U":        U,
	"CX":       CX,
	"pi":       PI,
}

// Token associates a Kind with a source.Span and, for identifiers and
// literals, the underlying text. Doc carries the text of a line comment
// that immediately preceded this token (no intervening blank line), used
// to recover a gate's docstring.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Doc  string
}

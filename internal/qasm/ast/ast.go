// Package ast defines the tagged-union node types produced by the parser:
// programs, libraries, statements, arguments and expressions.
package ast

import "github.com/openqasm/qsim/internal/source"

// Node is implemented by every AST node so diagnostics can point back at
// the source text that produced it.
type Node interface {
	Span() source.Span
}

// Program is the top-level result of parsing a complete OpenQASM 2.0
// source file in program mode.
type Program struct {
	Version    string
	Statements []Statement
}

// Library is the top-level result of parsing a source file in library
// mode: a sequence of gate/opaque declarations only.
type Library struct {
	Gates []Statement
}

// Statement is a tagged union over every top-level (and gate-body)
// statement form. Each concrete type below implements it.
type Statement interface {
	Node
	statementNode()
}

// base embeds a Span and gives every concrete node its Span() method for
// free, matching the teacher's habit of factoring shared node fields into
// an embedded struct instead of repeating an accessor on every type.
type base struct {
	span source.Span
}

// Span returns the source range this node was parsed from.
func (b base) Span() source.Span { return b.span }

// NewBase constructs the embeddable position-tracking base for a new node.
func NewBase(span source.Span) base { return base{span} } //nolint:revive

// QRegDecl declares a quantum register.
type QRegDecl struct {
	base
	Name string
	Size int
}

func (*QRegDecl) statementNode() {}

// NewQRegDecl constructs a QRegDecl.
func NewQRegDecl(span source.Span, name string, size int) *QRegDecl {
	return &QRegDecl{base: NewBase(span), Name: name, Size: size}
}

// CRegDecl declares a classical register.
type CRegDecl struct {
	base
	Name string
	Size int
}

func (*CRegDecl) statementNode() {}

// NewCRegDecl constructs a CRegDecl.
func NewCRegDecl(span source.Span, name string, size int) *CRegDecl {
	return &CRegDecl{base: NewBase(span), Name: name, Size: size}
}

// GateDecl declares a user-defined (or standard-library) gate. Doc holds
// the free comment text immediately preceding the declaration, if any.
type GateDecl struct {
	base
	Name          string
	RealParams    []string
	QuantumParams []string
	Doc           string
	Body          []Statement
}

func (*GateDecl) statementNode() {}

// NewGateDecl constructs a GateDecl.
func NewGateDecl(span source.Span, name string, realParams, quantumParams []string, doc string, body []Statement) *GateDecl {
	return &GateDecl{
		base:          NewBase(span),
		Name:          name,
		RealParams:    realParams,
		QuantumParams: quantumParams,
		Doc:           doc,
		Body:          body,
	}
}

// OpaqueDecl declares a gate signature with no body; invoking it at
// runtime is a RuntimeError.
type OpaqueDecl struct {
	base
	Name          string
	RealParams    []string
	QuantumParams []string
}

func (*OpaqueDecl) statementNode() {}

// NewOpaqueDecl constructs an OpaqueDecl.
func NewOpaqueDecl(span source.Span, name string, realParams, quantumParams []string) *OpaqueDecl {
	return &OpaqueDecl{base: NewBase(span), Name: name, RealParams: realParams, QuantumParams: quantumParams}
}

// Include names a file to be spliced into the declaration table. Only the
// embedded standard library name is ever resolved.
type Include struct {
	base
	Path string
}

func (*Include) statementNode() {}

// NewInclude constructs an Include.
func NewInclude(span source.Span, path string) *Include {
	return &Include{base: NewBase(span), Path: path}
}

// GateCall invokes a gate (primitive or user-defined) on quantum
// arguments, with real-valued arguments bound to its RealParams.
type GateCall struct {
	base
	Name     string
	RealArgs []Expr
	QArgs    []Argument
}

func (*GateCall) statementNode() {}

// NewGateCall constructs a GateCall.
func NewGateCall(span source.Span, name string, realArgs []Expr, qargs []Argument) *GateCall {
	return &GateCall{base: NewBase(span), Name: name, RealArgs: realArgs, QArgs: qargs}
}

// Measure projects Source onto the computational basis and writes the
// outcome into Target.
type Measure struct {
	base
	Source Argument
	Target Argument
}

func (*Measure) statementNode() {}

// NewMeasure constructs a Measure.
func NewMeasure(span source.Span, src, dst Argument) *Measure {
	return &Measure{base: NewBase(span), Source: src, Target: dst}
}

// Reset re-initializes a qubit to |0>.
type Reset struct {
	base
	Target Argument
}

func (*Reset) statementNode() {}

// NewReset constructs a Reset.
func NewReset(span source.Span, target Argument) *Reset {
	return &Reset{base: NewBase(span), Target: target}
}

// Barrier prevents optimizations from reordering operations across it. It
// has no operational effect on the simulator.
type Barrier struct {
	base
	Targets []Argument
}

func (*Barrier) statementNode() {}

// NewBarrier constructs a Barrier.
func NewBarrier(span source.Span, targets []Argument) *Barrier {
	return &Barrier{base: NewBase(span), Targets: targets}
}

// IfEq guards Inner on the classical register CReg holding exactly Value.
type IfEq struct {
	base
	CReg  string
	Value int
	Inner Statement
}

func (*IfEq) statementNode() {}

// NewIfEq constructs an IfEq.
func NewIfEq(span source.Span, creg string, value int, inner Statement) *IfEq {
	return &IfEq{base: NewBase(span), CReg: creg, Value: value, Inner: inner}
}

// Argument names either an entire register (Whole, enabling broadcast) or
// a single indexed qubit/bit (Indexed).
type Argument struct {
	span    source.Span
	Reg     string
	Index   int // meaningful only when !IsWhole
	IsWhole bool
}

// Span returns the source range this argument was parsed from.
func (a Argument) Span() source.Span { return a.span }

// Whole constructs an Argument referring to an entire register.
func Whole(span source.Span, reg string) Argument {
	return Argument{span: span, Reg: reg, IsWhole: true}
}

// Indexed constructs an Argument referring to a single register element.
func Indexed(span source.Span, reg string, index int) Argument {
	return Argument{span: span, Reg: reg, Index: index}
}

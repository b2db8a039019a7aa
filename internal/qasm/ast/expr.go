package ast

import "github.com/openqasm/qsim/internal/source"

// Expr is a tagged union over real-valued expressions: literals, the
// constant pi, parameter references, unary/binary operators and the
// built-in unary functions.
type Expr interface {
	Node
	exprNode()
}

// IntLit is an integer literal, e.g. 2.
type IntLit struct {
	base
	Value int
}

func (*IntLit) exprNode() {}

// NewIntLit constructs an IntLit.
func NewIntLit(span source.Span, value int) *IntLit { return &IntLit{base: NewBase(span), Value: value} }

// RealLit is a floating-point literal, e.g. 3.14 or 2e-3.
type RealLit struct {
	base
	Value float64
}

func (*RealLit) exprNode() {}

// NewRealLit constructs a RealLit.
func NewRealLit(span source.Span, value float64) *RealLit {
	return &RealLit{base: NewBase(span), Value: value}
}

// PiLit is the constant pi.
type PiLit struct {
	base
}

func (*PiLit) exprNode() {}

// NewPiLit constructs a PiLit.
func NewPiLit(span source.Span) *PiLit { return &PiLit{base: NewBase(span)} }

// ParamRef references a real-parameter binding by name.
type ParamRef struct {
	base
	Name string
}

func (*ParamRef) exprNode() {}

// NewParamRef constructs a ParamRef.
func NewParamRef(span source.Span, name string) *ParamRef {
	return &ParamRef{base: NewBase(span), Name: name}
}

// UnaryOp is one of unary +, unary -, or a named function application
// (sin, cos, tan, exp, ln, sqrt).
type UnaryOp struct {
	base
	Op  string
	Arg Expr
}

func (*UnaryOp) exprNode() {}

// NewUnaryOp constructs a UnaryOp.
func NewUnaryOp(span source.Span, op string, arg Expr) *UnaryOp {
	return &UnaryOp{base: NewBase(span), Op: op, Arg: arg}
}

// BinaryOp is one of + - * / ^.
type BinaryOp struct {
	base
	Op          string
	Left, Right Expr
}

func (*BinaryOp) exprNode() {}

// NewBinaryOp constructs a BinaryOp.
func NewBinaryOp(span source.Span, op string, left, right Expr) *BinaryOp {
	return &BinaryOp{base: NewBase(span), Op: op, Left: left, Right: right}
}

// UnaryFuncs is the set of built-in unary functions the grammar permits.
var UnaryFuncs = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"exp": true, "ln": true, "sqrt": true,
}

// SpanOf constructs a Span covering two sub-expressions, used by the
// parser when building binary/unary nodes that span multiple tokens.
func SpanOf(from, to source.Span) source.Span {
	return source.NewSpan(from.Start(), to.End())
}

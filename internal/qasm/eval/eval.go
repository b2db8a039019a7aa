// Package eval evaluates internal/qasm/ast.Expr nodes against a real-valued
// parameter binding.
package eval

import (
	"math"

	"github.com/openqasm/qsim/internal/qasm/ast"
	"github.com/openqasm/qsim/internal/source"
)

// Env binds real-parameter names to values for one evaluation.
type Env map[string]float64

// Eval evaluates expr against env. file is used only to position any
// returned *Error and may be nil.
func Eval(file *source.File, expr ast.Expr, env Env) (float64, error) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return float64(e.Value), nil
	case *ast.RealLit:
		return e.Value, nil
	case *ast.PiLit:
		return math.Pi, nil
	case *ast.ParamRef:
		v, ok := env[e.Name]
		if !ok {
			return 0, &Error{Kind: UndefinedParam, Span: e.Span(), Name: e.Name, file: file}
		}

		return v, nil
	case *ast.UnaryOp:
		return evalUnary(file, e, env)
	case *ast.BinaryOp:
		return evalBinary(file, e, env)
	default:
		panic("eval: unhandled expr type")
	}
}

func evalUnary(file *source.File, e *ast.UnaryOp, env Env) (float64, error) {
	arg, err := Eval(file, e.Arg, env)
	if err != nil {
		return 0, err
	}

	var result float64

	switch e.Op {
	case "+":
		result = arg
	case "-":
		result = -arg
	case "sin":
		result = math.Sin(arg)
	case "cos":
		result = math.Cos(arg)
	case "tan":
		result = math.Tan(arg)
	case "exp":
		result = math.Exp(arg)
	case "ln":
		result = math.Log(arg)
	case "sqrt":
		result = math.Sqrt(arg)
	default:
		panic("eval: unknown unary operator " + e.Op)
	}

	return checkFinite(file, e.Span(), result)
}

func evalBinary(file *source.File, e *ast.BinaryOp, env Env) (float64, error) {
	left, err := Eval(file, e.Left, env)
	if err != nil {
		return 0, err
	}

	right, err := Eval(file, e.Right, env)
	if err != nil {
		return 0, err
	}

	var result float64

	switch e.Op {
	case "+":
		result = left + right
	case "-":
		result = left - right
	case "*":
		result = left * right
	case "/":
		if right == 0 {
			return 0, &Error{Kind: DivisionByZero, Span: e.Span(), file: file}
		}

		result = left / right
	case "^":
		result = math.Pow(left, right)
	default:
		panic("eval: unknown binary operator " + e.Op)
	}

	return checkFinite(file, e.Span(), result)
}

func checkFinite(file *source.File, span source.Span, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &Error{Kind: NotANumber, Span: span, file: file}
	}

	return v, nil
}

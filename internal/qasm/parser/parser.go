// Package parser implements a recursive-descent parser producing
// internal/qasm/ast nodes from a token stream, with separate entry points
// for program mode, library mode, and standalone expressions/statements.
package parser

import (
	"strconv"

	"github.com/openqasm/qsim/internal/qasm/ast"
	"github.com/openqasm/qsim/internal/qasm/lexer"
	"github.com/openqasm/qsim/internal/source"
)

// Parser holds a buffered token stream and a cursor into it.
type Parser struct {
	file   *source.File
	tokens []lexer.Token
	pos    int
}

// New buffers every token of file and constructs a Parser over it. A
// non-nil error indicates the file failed to lex.
func New(file *source.File) (*Parser, error) {
	tokens, err := lexer.New(file).AllTokens()
	if err != nil {
		return nil, err
	}

	return &Parser{file: file, tokens: tokens}, nil
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) lexer.Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}

	return p.tokens[i]
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}

	return tok
}

func (p *Parser) errAt(span source.Span, kind ErrorKind, expected string, found lexer.Kind) *Error {
	return &Error{Kind: kind, Span: span, Expected: expected, Found: found, file: p.file}
}

func (p *Parser) unexpected(expected string) *Error {
	tok := p.peek()
	if tok.Kind == lexer.EOF {
		return p.errAt(tok.Span, UnexpectedEOF, expected, tok.Kind)
	}

	return p.errAt(tok.Span, UnexpectedToken, expected, tok.Kind)
}

func (p *Parser) expect(kind lexer.Kind, expected string) (lexer.Token, error) {
	if p.peek().Kind != kind {
		return lexer.Token{}, p.unexpected(expected)
	}

	return p.advance(), nil
}

// ParseProgram parses file in program mode: a version header followed by
// zero or more top-level statements.
func ParseProgram(file *source.File) (*ast.Program, error) {
	p, err := New(file)
	if err != nil {
		return nil, err
	}

	return p.parseProgram()
}

// ParseLibrary parses file in library mode: only gate and opaque
// declarations are permitted (no version header, no other statements).
func ParseLibrary(file *source.File) (*ast.Library, error) {
	p, err := New(file)
	if err != nil {
		return nil, err
	}

	return p.parseLibrary()
}

// ParseExpression parses file as a single standalone real-valued
// expression, for tooling entry points.
func ParseExpression(file *source.File) (ast.Expr, error) {
	p, err := New(file)
	if err != nil {
		return nil, err
	}

	return p.parseExpr()
}

// ParseStatement parses file as a single standalone top-level statement.
func ParseStatement(file *source.File) (ast.Statement, error) {
	p, err := New(file)
	if err != nil {
		return nil, err
	}

	return p.parseTopLevelStatement()
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	version, err := p.parseVersionHeader()
	if err != nil {
		return nil, err
	}

	var statements []ast.Statement

	for p.peek().Kind != lexer.EOF {
		stmt, err := p.parseTopLevelStatement()
		if err != nil {
			return nil, err
		}

		statements = append(statements, stmt)
	}

	return &ast.Program{Version: version, Statements: statements}, nil
}

func (p *Parser) parseVersionHeader() (string, error) {
	tok := p.peek()
	if tok.Kind != lexer.OPENQASM {
		return "", &Error{Kind: BadVersion, Span: tok.Span, file: p.file}
	}

	p.advance()

	ver := p.peek()
	if ver.Kind != lexer.REAL || ver.Text != "2.0" {
		return "", &Error{Kind: BadVersion, Span: ver.Span, file: p.file}
	}

	p.advance()

	if _, err := p.expect(lexer.SEMI, ";"); err != nil {
		return "", err
	}

	return ver.Text, nil
}

func (p *Parser) parseLibrary() (*ast.Library, error) {
	var gates []ast.Statement

	for p.peek().Kind != lexer.EOF {
		switch p.peek().Kind {
		case lexer.GATE:
			g, err := p.parseGateDecl()
			if err != nil {
				return nil, err
			}

			gates = append(gates, g)
		case lexer.OPAQUE:
			o, err := p.parseOpaqueDecl()
			if err != nil {
				return nil, err
			}

			gates = append(gates, o)
		default:
			return nil, p.unexpected("gate or opaque declaration")
		}
	}

	return &ast.Library{Gates: gates}, nil
}

func (p *Parser) parseTopLevelStatement() (ast.Statement, error) {
	switch p.peek().Kind {
	case lexer.QREG:
		return p.parseRegDecl(true)
	case lexer.CREG:
		return p.parseRegDecl(false)
	case lexer.GATE:
		return p.parseGateDecl()
	case lexer.OPAQUE:
		return p.parseOpaqueDecl()
	case lexer.INCLUDE:
		return p.parseInclude()
	case lexer.BARRIER:
		return p.parseBarrier()
	case lexer.MEASURE:
		return p.parseMeasure()
	case lexer.RESET:
		return p.parseReset()
	case lexer.IF:
		return p.parseIf()
	case lexer.IDENT, lexer.U, lexer.CX:
		return p.parseGateCall()
	default:
		return nil, p.unexpected("a statement")
	}
}

// parseGateBodyStatement parses the restricted GateOp subset permitted
// inside a gate body: nested gate calls and barriers only.
func (p *Parser) parseGateBodyStatement() (ast.Statement, error) {
	switch p.peek().Kind {
	case lexer.BARRIER:
		return p.parseBarrier()
	case lexer.IDENT, lexer.U, lexer.CX:
		return p.parseGateCall()
	default:
		return nil, p.unexpected("a gate call or barrier")
	}
}

func (p *Parser) parseRegDecl(isQuantum bool) (ast.Statement, error) {
	start := p.peek().Span
	p.advance() // qreg/creg

	name, err := p.expect(lexer.IDENT, "a register name")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.LBRACKET, "["); err != nil {
		return nil, err
	}

	size, sizeTok, err := p.parseIntLiteral()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.RBRACKET, "]"); err != nil {
		return nil, err
	}

	end, err := p.expect(lexer.SEMI, ";")
	if err != nil {
		return nil, err
	}

	if size <= 0 {
		return nil, p.errAt(sizeTok.Span, InvalidArgument, "a positive register size", sizeTok.Kind)
	}

	span := ast.SpanOf(start, end.Span)
	if isQuantum {
		return ast.NewQRegDecl(span, name.Text, size), nil
	}

	return ast.NewCRegDecl(span, name.Text, size), nil
}

func (p *Parser) parseIntLiteral() (int, lexer.Token, error) {
	tok := p.peek()
	if tok.Kind != lexer.INT {
		return 0, tok, p.unexpected("an integer literal")
	}

	p.advance()

	n, err := strconv.Atoi(tok.Text)
	if err != nil {
		return 0, tok, p.errAt(tok.Span, InvalidArgument, "a valid integer", tok.Kind)
	}

	return n, tok, nil
}

func (p *Parser) parseInclude() (ast.Statement, error) {
	start := p.peek().Span
	p.advance() // include

	pathTok, err := p.expect(lexer.STRING, "a quoted path")
	if err != nil {
		return nil, err
	}

	end, err := p.expect(lexer.SEMI, ";")
	if err != nil {
		return nil, err
	}

	return ast.NewInclude(ast.SpanOf(start, end.Span), pathTok.String()), nil
}

func (p *Parser) parseOpaqueDecl() (ast.Statement, error) {
	start := p.peek().Span
	p.advance() // opaque

	name, err := p.expect(lexer.IDENT, "a gate name")
	if err != nil {
		return nil, err
	}

	realParams, err := p.parseOptionalParenIdentList()
	if err != nil {
		return nil, err
	}

	quantumParams, err := p.parseIdentListUntilOneOf(lexer.SEMI)
	if err != nil {
		return nil, err
	}

	end, err := p.expect(lexer.SEMI, ";")
	if err != nil {
		return nil, err
	}

	return ast.NewOpaqueDecl(ast.SpanOf(start, end.Span), name.Text, realParams, quantumParams), nil
}

func (p *Parser) parseGateDecl() (ast.Statement, error) {
	start := p.peek().Span
	doc := p.peek().Doc
	p.advance() // gate

	name, err := p.expect(lexer.IDENT, "a gate name")
	if err != nil {
		return nil, err
	}

	realParams, err := p.parseOptionalParenIdentList()
	if err != nil {
		return nil, err
	}

	quantumParams, err := p.parseIdentListUntilOneOf(lexer.LBRACE)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.LBRACE, "{"); err != nil {
		return nil, err
	}

	var body []ast.Statement

	for p.peek().Kind != lexer.RBRACE {
		if p.peek().Kind == lexer.EOF {
			return nil, p.unexpected("}")
		}

		stmt, err := p.parseGateBodyStatement()
		if err != nil {
			return nil, err
		}

		body = append(body, stmt)
	}

	end := p.advance() // }

	return ast.NewGateDecl(ast.SpanOf(start, end.Span), name.Text, realParams, quantumParams, doc, body), nil
}

// parseOptionalParenIdentList parses "( a, b, c )" if present, returning
// nil if the next token is not '('.
func (p *Parser) parseOptionalParenIdentList() ([]string, error) {
	if p.peek().Kind != lexer.LPAREN {
		return nil, nil
	}

	p.advance()

	var names []string

	if p.peek().Kind != lexer.RPAREN {
		for {
			id, err := p.expect(lexer.IDENT, "a parameter name")
			if err != nil {
				return nil, err
			}

			names = append(names, id.Text)

			if p.peek().Kind != lexer.COMMA {
				break
			}

			p.advance()
		}
	}

	if _, err := p.expect(lexer.RPAREN, ")"); err != nil {
		return nil, err
	}

	return names, nil
}

// parseIdentListUntilOneOf parses a bare comma-separated identifier list,
// stopping (without consuming) once it reaches a token of kind stop.
func (p *Parser) parseIdentListUntilOneOf(stop lexer.Kind) ([]string, error) {
	var names []string

	for {
		id, err := p.expect(lexer.IDENT, "a parameter name")
		if err != nil {
			return nil, err
		}

		names = append(names, id.Text)

		if p.peek().Kind == stop || p.peek().Kind != lexer.COMMA {
			break
		}

		p.advance()
	}

	return names, nil
}

func (p *Parser) parseArgument() (ast.Argument, error) {
	name, err := p.expect(lexer.IDENT, "a register name")
	if err != nil {
		return ast.Argument{}, err
	}

	if p.peek().Kind != lexer.LBRACKET {
		return ast.Whole(name.Span, name.Text), nil
	}

	p.advance()

	idx, idxTok, err := p.parseIntLiteral()
	if err != nil {
		return ast.Argument{}, err
	}

	end, err := p.expect(lexer.RBRACKET, "]")
	if err != nil {
		return ast.Argument{}, err
	}

	if idx < 0 {
		return ast.Argument{}, p.errAt(idxTok.Span, InvalidArgument, "a non-negative index", idxTok.Kind)
	}

	return ast.Indexed(ast.SpanOf(name.Span, end.Span), name.Text, idx), nil
}

func (p *Parser) parseArgumentList() ([]ast.Argument, error) {
	var args []ast.Argument

	for {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		if p.peek().Kind != lexer.COMMA {
			return args, nil
		}

		p.advance()
	}
}

func (p *Parser) parseBarrier() (ast.Statement, error) {
	start := p.peek().Span
	p.advance() // barrier

	args, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}

	end, err := p.expect(lexer.SEMI, ";")
	if err != nil {
		return nil, err
	}

	return ast.NewBarrier(ast.SpanOf(start, end.Span), args), nil
}

func (p *Parser) parseMeasure() (ast.Statement, error) {
	start := p.peek().Span
	p.advance() // measure

	src, err := p.parseArgument()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.ARROW, "->"); err != nil {
		return nil, err
	}

	dst, err := p.parseArgument()
	if err != nil {
		return nil, err
	}

	end, err := p.expect(lexer.SEMI, ";")
	if err != nil {
		return nil, err
	}

	return ast.NewMeasure(ast.SpanOf(start, end.Span), src, dst), nil
}

func (p *Parser) parseReset() (ast.Statement, error) {
	start := p.peek().Span
	p.advance() // reset

	target, err := p.parseArgument()
	if err != nil {
		return nil, err
	}

	end, err := p.expect(lexer.SEMI, ";")
	if err != nil {
		return nil, err
	}

	return ast.NewReset(ast.SpanOf(start, end.Span), target), nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	start := p.peek().Span
	p.advance() // if

	if _, err := p.expect(lexer.LPAREN, "("); err != nil {
		return nil, err
	}

	creg, err := p.expect(lexer.IDENT, "a classical register name")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.EQEQ, "=="); err != nil {
		return nil, err
	}

	value, _, err := p.parseIntLiteral()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.RPAREN, ")"); err != nil {
		return nil, err
	}

	var inner ast.Statement

	switch p.peek().Kind {
	case lexer.MEASURE:
		inner, err = p.parseMeasure()
	case lexer.RESET:
		inner, err = p.parseReset()
	case lexer.IDENT, lexer.U, lexer.CX:
		inner, err = p.parseGateCall()
	default:
		err = p.unexpected("a gate call, measure or reset")
	}

	if err != nil {
		return nil, err
	}

	return ast.NewIfEq(ast.SpanOf(start, inner.Span()), creg.Text, value, inner), nil
}

func (p *Parser) parseGateCall() (ast.Statement, error) {
	start := p.peek().Span
	name := p.advance() // IDENT, U or CX

	var realArgs []ast.Expr

	if p.peek().Kind == lexer.LPAREN {
		p.advance()

		if p.peek().Kind != lexer.RPAREN {
			for {
				e, err := p.parseExpr()
				if err != nil {
					return nil, err
				}

				realArgs = append(realArgs, e)

				if p.peek().Kind != lexer.COMMA {
					break
				}

				p.advance()
			}
		}

		if _, err := p.expect(lexer.RPAREN, ")"); err != nil {
			return nil, err
		}
	}

	qargs, err := p.parseArgumentList()
	if err != nil {
		return nil, err
	}

	end, err := p.expect(lexer.SEMI, ";")
	if err != nil {
		return nil, err
	}

	return ast.NewGateCall(ast.SpanOf(start, end.Span), name.Text, realArgs, qargs), nil
}

// parseExpr parses a real-valued expression using precedence climbing.
// The grammar's precedence order (lowest to highest) is unusual: additive
// operators bind loosest, then multiplicative, then unary +/-, then '^'
// (right-associative), then function application/atoms bind tightest.
// This makes -2^2 parse as -(2^2), not (-2)^2.
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.PLUS || p.peek().Kind == lexer.MINUS {
		op := p.advance()

		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}

		left = ast.NewBinaryOp(ast.SpanOf(left.Span(), right.Span()), op.Text, left, right)
	}

	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.STAR || p.peek().Kind == lexer.SLASH {
		op := p.advance()

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = ast.NewBinaryOp(ast.SpanOf(left.Span(), right.Span()), op.Text, left, right)
	}

	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.peek().Kind == lexer.PLUS || p.peek().Kind == lexer.MINUS {
		op := p.advance()

		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return ast.NewUnaryOp(ast.SpanOf(op.Span, arg.Span()), op.Text, arg), nil
	}

	return p.parsePower()
}

// parsePower binds '^' tighter than unary +/- but lets its right operand
// itself start with a unary sign, so 2^-1 is legal.
func (p *Parser) parsePower() (ast.Expr, error) {
	left, err := p.parseFunctionOrAtom()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind != lexer.CARET {
		return left, nil
	}

	p.advance()

	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return ast.NewBinaryOp(ast.SpanOf(left.Span(), right.Span()), "^", left, right), nil
}

func (p *Parser) parseFunctionOrAtom() (ast.Expr, error) {
	tok := p.peek()

	if tok.Kind == lexer.IDENT && ast.UnaryFuncs[tok.Text] && p.peekAt(1).Kind == lexer.LPAREN {
		p.advance() // function name
		p.advance() // (

		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		end, err := p.expect(lexer.RPAREN, ")")
		if err != nil {
			return nil, err
		}

		return ast.NewUnaryOp(ast.SpanOf(tok.Span, end.Span), tok.Text, arg), nil
	}

	return p.parseAtom()
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Kind {
	case lexer.INT:
		p.advance()

		n, err := strconv.Atoi(tok.Text)
		if err != nil {
			return nil, p.errAt(tok.Span, InvalidArgument, "a valid integer", tok.Kind)
		}

		return ast.NewIntLit(tok.Span, n), nil
	case lexer.REAL:
		p.advance()

		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, p.errAt(tok.Span, InvalidArgument, "a valid real number", tok.Kind)
		}

		return ast.NewRealLit(tok.Span, f), nil
	case lexer.PI:
		p.advance()
		return ast.NewPiLit(tok.Span), nil
	case lexer.IDENT:
		p.advance()
		return ast.NewParamRef(tok.Span, tok.Text), nil
	case lexer.LPAREN:
		p.advance()

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(lexer.RPAREN, ")"); err != nil {
			return nil, err
		}

		return inner, nil
	default:
		return nil, p.unexpected("an expression")
	}
}

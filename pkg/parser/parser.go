package parser

import (
	"errors"
	"fmt"

	"smalljs/interpreter-go/pkg/ast"
)

// Error is a lexer or parser diagnostic with a 1-based source position.
// Incomplete marks constructs cut off at end of input, which a REPL treats
// as "keep reading" rather than a hard failure.
type Error struct {
	Line       int
	Col        int
	Msg        string
	Incomplete bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// IsIncomplete reports whether err marks input cut off at EOF.
func IsIncomplete(err error) bool {
	var parseErr *Error
	return errors.As(err, &parseErr) && parseErr.Incomplete
}

// Parse scans and parses a whole script into its top-level block.
func Parse(src string) (*ast.Block, error) {
	tokens, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	return p.program()
}

type parser struct {
	tokens []Token
	i      int
}

func (p *parser) peek() Token {
	if p.i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.i]
}

func (p *parser) prev() Token { return p.tokens[p.i-1] }

func (p *parser) atEnd() bool { return p.peek().Type == EOF }

func (p *parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.peek().Type == tt {
			p.i++
			return true
		}
	}
	return false
}

func (p *parser) need(tt TokenType, msg string) (Token, error) {
	if p.match(tt) {
		return p.prev(), nil
	}
	got := p.peek()
	return Token{}, &Error{
		Line:       got.Line,
		Col:        got.Col,
		Msg:        msg,
		Incomplete: got.Type == EOF,
	}
}

func (p *parser) errorAt(tok Token, format string, args ...any) error {
	return &Error{Line: tok.Line, Col: tok.Col, Msg: fmt.Sprintf(format, args...)}
}

// program parses statements until EOF into the top-level block.
func (p *parser) program() (*ast.Block, error) {
	var body []ast.Node
	for !p.atEnd() {
		if p.match(SEMICOLON) {
			continue
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return ast.NewBlock(body, 1), nil
}

func (p *parser) statement() (ast.Node, error) {
	switch {
	case p.match(VAR):
		return p.varStatement()
	case p.match(FUNCTION):
		return p.funStatement()
	case p.match(RETURN):
		return p.returnStatement()
	case p.match(IF):
		return p.ifStatement()
	default:
		return p.exprStatement()
	}
}

func (p *parser) varStatement() (ast.Node, error) {
	keyword := p.prev()
	name, err := p.need(IDENT, "expected variable name after 'var'")
	if err != nil {
		return nil, err
	}
	if _, err := p.need(ASSIGN, "expected '=' after variable name"); err != nil {
		return nil, err
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.match(SEMICOLON)
	return ast.NewVarAssignment(name.Lexeme, expr, true, keyword.Line), nil
}

// funStatement parses the self-registering statement form
// `function name(params) { ... }`.
func (p *parser) funStatement() (ast.Node, error) {
	keyword := p.prev()
	name, err := p.need(IDENT, "expected function name")
	if err != nil {
		return nil, err
	}
	params, body, err := p.funRest()
	if err != nil {
		return nil, err
	}
	return ast.NewFun(name.Lexeme, params, true, body, keyword.Line), nil
}

func (p *parser) funRest() ([]string, *ast.Block, error) {
	if _, err := p.need(LPAREN, "expected '(' before parameters"); err != nil {
		return nil, nil, err
	}
	var params []string
	if p.peek().Type != RPAREN {
		for {
			param, err := p.need(IDENT, "expected parameter name")
			if err != nil {
				return nil, nil, err
			}
			params = append(params, param.Lexeme)
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.need(RPAREN, "expected ')' after parameters"); err != nil {
		return nil, nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, nil, err
	}
	return params, body, nil
}

func (p *parser) block() (*ast.Block, error) {
	open, err := p.need(LBRACE, "expected '{'")
	if err != nil {
		return nil, err
	}
	var body []ast.Node
	for p.peek().Type != RBRACE {
		if p.atEnd() {
			return nil, &Error{Line: p.peek().Line, Col: p.peek().Col, Msg: "expected '}'", Incomplete: true}
		}
		if p.match(SEMICOLON) {
			continue
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	p.i++ // consume '}'
	return ast.NewBlock(body, open.Line), nil
}

func (p *parser) returnStatement() (ast.Node, error) {
	keyword := p.prev()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.match(SEMICOLON)
	return ast.NewReturn(expr, keyword.Line), nil
}

func (p *parser) ifStatement() (ast.Node, error) {
	keyword := p.prev()
	if _, err := p.need(LPAREN, "expected '(' after 'if'"); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.need(RPAREN, "expected ')' after condition"); err != nil {
		return nil, err
	}
	trueBlock, err := p.block()
	if err != nil {
		return nil, err
	}
	falseBlock := ast.NewBlock(nil, keyword.Line)
	if p.match(ELSE) {
		falseBlock, err = p.block()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIf(condition, trueBlock, falseBlock, keyword.Line), nil
}

// exprStatement parses an expression and, when followed by '=', reshapes
// it into a variable or field assignment.
func (p *parser) exprStatement() (ast.Node, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.match(ASSIGN) {
		assignTok := p.prev()
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		p.match(SEMICOLON)
		switch target := expr.(type) {
		case *ast.Identifier:
			return ast.NewVarAssignment(target.Name, value, false, target.Line()), nil
		case *ast.FieldAccess:
			return ast.NewFieldAssignment(target.Receiver, target.Name, value, target.Line()), nil
		default:
			return nil, p.errorAt(assignTok, "invalid assignment target")
		}
	}
	p.match(SEMICOLON)
	return expr, nil
}

// expression parses with the grammar's three precedence levels:
// comparison, additive, multiplicative. Binary operators desugar to calls
// of the like-named global builtins.
func (p *parser) expression() (ast.Node, error) {
	return p.comparison()
}

func (p *parser) comparison() (ast.Node, error) {
	left, err := p.additive()
	if err != nil {
		return nil, err
	}
	for p.match(EQ, NEQ, LT, LE, GT, GE) {
		op := p.prev()
		right, err := p.additive()
		if err != nil {
			return nil, err
		}
		left = p.binary(op, left, right)
	}
	return left, nil
}

func (p *parser) additive() (ast.Node, error) {
	left, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for p.match(PLUS, MINUS) {
		op := p.prev()
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		left = p.binary(op, left, right)
	}
	return left, nil
}

func (p *parser) multiplicative() (ast.Node, error) {
	left, err := p.postfix()
	if err != nil {
		return nil, err
	}
	for p.match(STAR, SLASH, PERCENT) {
		op := p.prev()
		right, err := p.postfix()
		if err != nil {
			return nil, err
		}
		left = p.binary(op, left, right)
	}
	return left, nil
}

func (p *parser) binary(op Token, left, right ast.Node) ast.Node {
	name := operatorName[op.Type]
	callee := ast.NewIdentifier(name, op.Line)
	return ast.NewCall(callee, []ast.Node{left, right}, op.Line)
}

// postfix parses call, field access, and method call chains.
func (p *parser) postfix() (ast.Node, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(LPAREN):
			open := p.prev()
			args, err := p.arguments()
			if err != nil {
				return nil, err
			}
			expr = ast.NewCall(expr, args, open.Line)
		case p.match(DOT):
			name, err := p.need(IDENT, "expected field name after '.'")
			if err != nil {
				return nil, err
			}
			if p.match(LPAREN) {
				args, err := p.arguments()
				if err != nil {
					return nil, err
				}
				expr = ast.NewMethodCall(expr, name.Lexeme, args, name.Line)
			} else {
				expr = ast.NewFieldAccess(expr, name.Lexeme, name.Line)
			}
		default:
			return expr, nil
		}
	}
}

// arguments parses a comma-separated list up to the closing ')'; the
// opening '(' has already been consumed.
func (p *parser) arguments() ([]ast.Node, error) {
	var args []ast.Node
	if p.peek().Type != RPAREN {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.need(RPAREN, "expected ')' after arguments"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) primary() (ast.Node, error) {
	tok := p.peek()
	switch tok.Type {
	case INT:
		p.i++
		return ast.NewLiteral(tok.Literal.(int), tok.Line), nil
	case STRING:
		p.i++
		return ast.NewLiteral(tok.Literal.(string), tok.Line), nil
	case IDENT:
		p.i++
		return ast.NewIdentifier(tok.Lexeme, tok.Line), nil
	case LPAREN:
		p.i++
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.need(RPAREN, "expected ')'"); err != nil {
			return nil, err
		}
		return expr, nil
	case LBRACE:
		return p.objectLiteral()
	case FUNCTION:
		p.i++
		return p.funExpression(tok)
	case EOF:
		return nil, &Error{Line: tok.Line, Col: tok.Col, Msg: "unexpected end of input", Incomplete: true}
	default:
		return nil, p.errorAt(tok, "unexpected token %q", tok.Lexeme)
	}
}

// funExpression parses the expression form, with an optional name. It
// does not self-register; the value is reachable only through whatever
// expression produced it.
func (p *parser) funExpression(keyword Token) (ast.Node, error) {
	name := "lambda"
	if p.match(IDENT) {
		name = p.prev().Lexeme
	}
	params, body, err := p.funRest()
	if err != nil {
		return nil, err
	}
	return ast.NewFun(name, params, false, body, keyword.Line), nil
}

func (p *parser) objectLiteral() (ast.Node, error) {
	open := p.peek()
	p.i++
	var fields []ast.ObjectField
	if p.peek().Type != RBRACE {
		for {
			var name string
			switch {
			case p.match(IDENT):
				name = p.prev().Lexeme
			case p.match(STRING):
				name = p.prev().Literal.(string)
			default:
				got := p.peek()
				return nil, &Error{
					Line:       got.Line,
					Col:        got.Col,
					Msg:        "expected field name",
					Incomplete: got.Type == EOF,
				}
			}
			if _, err := p.need(COLON, "expected ':' after field name"); err != nil {
				return nil, err
			}
			expr, err := p.expression()
			if err != nil {
				return nil, err
			}
			fields = append(fields, ast.ObjectField{Name: name, Expr: expr})
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.need(RBRACE, "expected '}' after object literal"); err != nil {
		return nil, err
	}
	return ast.NewObjectLiteral(fields, open.Line), nil
}

package parser

import (
	"github.com/hindic-lang/hindic/pkg/ast"
	"github.com/hindic-lang/hindic/pkg/token"
)

// expression ::= assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment ::= logicalOr ( '=' assignment )?   (lvalue must be Variable)
// Right-associative: parsed by recursing into assignment() on the RHS.
func (p *Parser) assignment() ast.Expr {
	expr := p.logicalOr()

	if p.match(token.ASSIGN) {
		eqTok := p.prev
		value := p.assignment()

		if target, ok := expr.(*ast.Variable); ok {
			return &ast.Assignment{Name: target.Name, Value: value}
		}
		p.errorAt(eqTok.Pos, "Invalid assignment target.")
		return expr
	}

	return expr
}

// logicalOr ::= logicalAnd ( '||' logicalAnd )*
func (p *Parser) logicalOr() ast.Expr {
	expr := p.logicalAnd()
	for p.match(token.OR) {
		op := p.prev
		right := p.logicalAnd()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logicalAnd ::= equality ( '&&' equality )*
func (p *Parser) logicalAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.prev
		right := p.equality()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality ::= comparison ( ('=='|'!=') comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.EQ, token.NOT_EQ) {
		op := p.prev
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison ::= term ( ('<'|'>'|'<='|'>=') term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.LESS, token.GREATER, token.LESS_EQ, token.GREATER_EQ) {
		op := p.prev
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term ::= factor ( ('+'|'-') factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.PLUS, token.MINUS) {
		op := p.prev
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor ::= unary ( ('*'|'/'|'%') unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.STAR, token.SLASH, token.PERCENT) {
		op := p.prev
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary ::= ('-'|'!') unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.MINUS, token.BANG) {
		op := p.prev
		operand := p.unary()
		return &ast.Unary{Op: op, Operand: operand}
	}
	return p.call()
}

// call ::= primary ( '(' args? ')' )?   (at most one call suffix)
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	if p.match(token.LPAREN) {
		target, ok := expr.(*ast.Variable)
		if !ok {
			p.errorAt(p.prev.Pos, "Can only call functions.")
		}
		args := p.arguments()
		p.consume(token.RPAREN, "Expect ')' after arguments.")

		if ok {
			return &ast.Call{Callee: target.Name, Args: args}
		}
		return expr
	}

	return expr
}

// args ::= expression (',' expression)*
func (p *Parser) arguments() []ast.Expr {
	var args []ast.Expr
	if p.check(token.RPAREN) {
		return args
	}
	for {
		args = append(args, p.expression())
		if !p.match(token.COMMA) {
			break
		}
	}
	return args
}

// primary ::= NUMBER | STRING | IDENT | '(' expression ')'
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Tok: p.prev}
	case p.match(token.IDENT):
		return &ast.Variable{Name: p.prev}
	case p.match(token.LPAREN):
		expr := p.expression()
		p.consume(token.RPAREN, "Expect ')' after expression.")
		return expr
	default:
		p.errorAtCurrent("Expect expression.")
		return &ast.Literal{Tok: p.cur}
	}
}

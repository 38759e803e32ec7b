package parser

import (
	"github.com/hindic-lang/hindic/pkg/ast"
	"github.com/hindic-lang/hindic/pkg/token"
)

// statement ::= 'if' '(' expression ')' statement ('else' statement)?
//             | 'while' '(' expression ')' statement
//             | 'for'   '(' forInit? forCond ';' forIncr? ')' statement
//             | 'return' expression? ';'
//             | block
//             | expression ';'
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.check(token.LBRACE):
		return p.block()
	case p.match(token.DO):
		p.errorAt(p.prev.Pos, "'%s' is not yet supported.", p.prev.Lexeme)
		return &ast.DoStatement{Keyword: p.prev}
	case p.match(token.BREAK):
		kw := p.prev
		p.errorAt(kw.Pos, "'%s' is not yet supported.", kw.Lexeme)
		p.consume(token.SEMICOLON, "Expect ';' after statement.")
		return &ast.BreakStatement{Keyword: kw}
	case p.match(token.CONTINUE):
		kw := p.prev
		p.errorAt(kw.Pos, "'%s' is not yet supported.", kw.Lexeme)
		p.consume(token.SEMICOLON, "Expect ';' after statement.")
		return &ast.ContinueStatement{Keyword: kw}
	default:
		return p.expressionStatement()
	}
}

// block ::= '{' declaration* '}'
func (p *Parser) block() *ast.Block {
	lbrace := p.consume(token.LBRACE, "Expect '{'.")

	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if d := p.declaration(); d != nil {
			stmts = append(stmts, d)
		}
	}

	p.consume(token.RBRACE, "Expect '}' after block.")
	return &ast.Block{LBrace: lbrace, Stmts: stmts}
}

func (p *Parser) ifStatement() ast.Stmt {
	ifTok := p.prev
	p.consume(token.LPAREN, "Expect '(' after 'अगर'.")
	cond := p.expression()
	p.consume(token.RPAREN, "Expect ')' after condition.")
	then := p.statement()

	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}

	return &ast.If{Keyword: ifTok, Cond: cond, Then: then, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	whileTok := p.prev
	p.consume(token.LPAREN, "Expect '(' after 'जबतक'.")
	cond := p.expression()
	p.consume(token.RPAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.While{Keyword: whileTok, Cond: cond, Body: body}
}

// forInit ::= ';' | typedVarDecl | expression ';'
// forCond ::= expression?
// forIncr ::= expression?
func (p *Parser) forStatement() ast.Stmt {
	forTok := p.prev
	p.consume(token.LPAREN, "Expect '(' after 'दौर'.")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		// empty initializer
	case token.IsTypeKeyword(p.cur.Kind):
		init = p.forInitVarDecl()
	default:
		expr := p.expression()
		p.consume(token.SEMICOLON, "Expect ';' after loop initializer.")
		init = &ast.ExprStmt{X: expr}
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var incr ast.Expr
	if !p.check(token.RPAREN) {
		incr = p.expression()
	}
	p.consume(token.RPAREN, "Expect ')' after for clauses.")

	body := p.statement()
	return &ast.For{Keyword: forTok, Init: init, Cond: cond, Incr: incr, Body: body}
}

func (p *Parser) forInitVarDecl() *ast.VarDecl {
	typeTok := p.advance()
	name := p.consume(token.IDENT, "Expect identifier.")
	return p.varTail(typeTok, name)
}

func (p *Parser) returnStatement() ast.Stmt {
	retTok := p.prev
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.Return{Keyword: retTok, Value: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExprStmt{X: expr}
}

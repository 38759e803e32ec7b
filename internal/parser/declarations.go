package parser

import (
	"github.com/hindic-lang/hindic/pkg/ast"
	"github.com/hindic-lang/hindic/pkg/token"
)

// declaration ::= (INT|FLOAT|CHAR|VOID) IDENT ( funcTail | varTail )
//               | statement
func (p *Parser) declaration() ast.Stmt {
	var decl ast.Stmt
	if token.IsTypeKeyword(p.cur.Kind) {
		decl = p.typedDeclaration()
	} else {
		decl = p.statement()
	}

	if p.panicMode {
		p.synchronize()
	}
	return decl
}

// typedDeclaration parses the portion of the grammar that starts with a
// type keyword: a variable or a function declaration, disambiguated by
// whether '(' follows the identifier. The type keyword and the identifier
// are consumed first, so the parser's ordinary one-token lookahead (the
// current token) decides; no raw-byte lookahead and no Lexer.Peek is used.
func (p *Parser) typedDeclaration() ast.Stmt {
	typeTok := p.advance()
	name := p.consume(token.IDENT, "Expect identifier.")

	if p.check(token.LPAREN) {
		return p.functionTail(typeTok, name)
	}
	return p.varTail(typeTok, name)
}

// varTail ::= ('=' expression)? ';'
func (p *Parser) varTail(typeTok, name token.Token) *ast.VarDecl {
	decl := &ast.VarDecl{TypeTok: typeTok, Name: name}
	if p.match(token.ASSIGN) {
		decl.Init = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return decl
}

// funcTail ::= '(' params? ')' block
func (p *Parser) functionTail(typeTok, name token.Token) *ast.FunctionDecl {
	p.consume(token.LPAREN, "Expect '(' after function name.")
	params := p.params()
	p.consume(token.RPAREN, "Expect ')' after parameters.")
	body := p.block()
	return &ast.FunctionDecl{TypeTok: typeTok, Name: name, Params: params, Body: body}
}

// params ::= param (',' param)*   (max 8, error beyond)
// param  ::= (INT|FLOAT|CHAR) IDENT
func (p *Parser) params() []ast.Param {
	var params []ast.Param
	if p.check(token.RPAREN) {
		return params
	}
	for {
		if len(params) >= maxParams {
			p.errorAtCurrent("Can't have more than %d parameters.", maxParams)
		}
		if !(p.check(token.INT) || p.check(token.FLOAT) || p.check(token.CHAR)) {
			p.errorAtCurrent("Expect parameter type.")
			break
		}
		pt := p.advance()
		pn := p.consume(token.IDENT, "Expect parameter name.")
		params = append(params, ast.Param{TypeTok: pt, Name: pn})
		if !p.match(token.COMMA) {
			break
		}
	}
	return params
}

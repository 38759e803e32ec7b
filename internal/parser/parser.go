// Package parser implements a recursive-descent parser with panic-mode
// error recovery over the hindic grammar, producing a pkg/ast.Program.
//
// Each grammar production in spec has exactly one method here, named after
// the production (declaration, statement, expression, assignment,
// logicalOr, … primary) — plain recursive descent, not Pratt climbing: the
// grammar is small and its precedence ladder is already spelled out level
// by level, so a chain of mutually-recursive parse functions is the more
// direct match than an operator-precedence table.
package parser

import (
	"github.com/hindic-lang/hindic/internal/diag"
	"github.com/hindic-lang/hindic/internal/lexer"
	"github.com/hindic-lang/hindic/pkg/ast"
	"github.com/hindic-lang/hindic/pkg/token"
)

const maxParams = 8

// Parser consumes a lexer.Lexer's tokens and produces a *ast.Program.
type Parser struct {
	l    *lexer.Lexer
	sink *diag.Sink

	cur  token.Token
	prev token.Token

	hadError  bool
	panicMode bool
}

// New creates a Parser reading from l, reporting diagnostics into sink.
func New(l *lexer.Lexer, sink *diag.Sink) *Parser {
	p := &Parser{l: l, sink: sink}
	p.advance()
	return p
}

// HadError reports whether any syntax error was reported during parsing.
func (p *Parser) HadError() bool {
	return p.hadError
}

// Parse consumes the entire token stream and returns the resulting
// *ast.Program. Errors are reported to the Parser's diag.Sink; the caller
// should check HadError() (or sink.Count()) before proceeding to semantic
// analysis.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for !p.check(token.EOF) {
		if d := p.declaration(); d != nil {
			prog.Decls = append(prog.Decls, d)
		}
	}
	return prog
}

// --- token stream helpers ---------------------------------------------

func (p *Parser) advance() token.Token {
	p.prev = p.cur
	p.cur = p.l.Next()
	for p.cur.Kind == token.ILLEGAL {
		p.reportLexError(p.cur)
		p.cur = p.l.Next()
	}
	return p.prev
}

func (p *Parser) reportLexError(tok token.Token) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.hadError = true
	p.sink.Report(diag.Lexical, tok.Pos, "%s", tok.Lexeme)
}

func (p *Parser) check(k token.Kind) bool {
	return p.cur.Kind == k
}

func (p *Parser) checkNext(k token.Kind) bool {
	return p.l.Peek(0).Kind == k
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the expected kind, or reports a syntax error.
func (p *Parser) consume(k token.Kind, message string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	return p.cur
}

func (p *Parser) errorAtCurrent(format string, args ...any) {
	p.errorAt(p.cur.Pos, format, args...)
}

func (p *Parser) errorAt(pos token.Position, format string, args ...any) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.hadError = true
	p.sink.Report(diag.Syntax, pos, format, args...)
}

// synchronize leaves panic mode and discards tokens until a likely
// statement or declaration boundary: the previous token was ';', or the
// current token opens a new declaration/statement. declaration() invokes it
// after every declaration or statement parsed in panic mode, which covers
// the program loop and every block's declaration loop; there is no
// recovery point inside a for-statement's clauses or a nested branch.
func (p *Parser) synchronize() {
	p.panicMode = false

	for !p.check(token.EOF) {
		if p.prev.Kind == token.SEMICOLON {
			return
		}
		switch p.cur.Kind {
		case token.INT, token.FLOAT, token.CHAR, token.VOID,
			token.IF, token.WHILE, token.FOR, token.RETURN:
			return
		}
		p.advance()
	}
}

package ast

import (
	"testing"

	"github.com/hindic-lang/hindic/pkg/token"
)

func ident(name string) token.Token {
	return token.Token{Kind: token.IDENT, Lexeme: name, Pos: token.Position{Line: 1, Column: 1}}
}

func TestProgramPos_EmptyDefaultsToOrigin(t *testing.T) {
	p := &Program{}
	pos := p.Pos()
	if pos.Line != 1 || pos.Column != 1 {
		t.Fatalf("expected default origin position, got %+v", pos)
	}
}

func TestProgramPos_DelegatesToFirstDecl(t *testing.T) {
	decl := &VarDecl{Name: token.Token{Pos: token.Position{Line: 5, Column: 3}}}
	p := &Program{Decls: []Stmt{decl}}
	if got := p.Pos(); got.Line != 5 || got.Column != 3 {
		t.Fatalf("expected delegated position, got %+v", got)
	}
}

func TestForPos_PrefersInitOverKeyword(t *testing.T) {
	init := &ExprStmt{X: &Variable{Name: ident("i")}}
	f := &For{Keyword: token.Token{Pos: token.Position{Line: 9, Column: 1}}, Init: init}
	if got := f.Pos(); got.Line != 1 {
		t.Fatalf("expected For.Pos() to delegate to Init, got %+v", got)
	}
}

func TestWalk_VisitsEveryNode(t *testing.T) {
	prog := &Program{Decls: []Stmt{
		&VarDecl{Name: ident("x"), Init: &Literal{Tok: token.Token{Kind: token.NUMBER}}},
		&FunctionDecl{
			Name: ident("f"),
			Body: &Block{Stmts: []Stmt{
				&If{
					Cond: &Binary{Left: &Variable{Name: ident("x")}, Right: &Literal{}},
					Then: &ExprStmt{X: &Call{Callee: ident("f"), Args: []Expr{&Variable{Name: ident("x")}}}},
				},
			}},
		},
	}}

	count := 0
	Walk(prog, VisitorFunc(func(Node) bool {
		count++
		return true
	}))

	// Program, VarDecl, Literal, FunctionDecl, Block, If, Binary, Variable,
	// Literal, ExprStmt, Call, Variable = 12
	if count != 12 {
		t.Fatalf("expected 12 visited nodes, got %d", count)
	}
}

func TestWalk_SkipsChildrenWhenVisitReturnsFalse(t *testing.T) {
	prog := &Program{Decls: []Stmt{
		&VarDecl{Name: ident("x"), Init: &Literal{}},
	}}

	visited := 0
	Walk(prog, VisitorFunc(func(n Node) bool {
		visited++
		_, isVarDecl := n.(*VarDecl)
		return !isVarDecl
	}))

	if visited != 2 {
		t.Fatalf("expected VarDecl's child to be skipped, visited=%d", visited)
	}
}

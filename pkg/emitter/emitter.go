// Package emitter walks a *ast.Program and serializes it as standard C
// source. It is stateless in the AST it walks: an Emitter carries only an
// output sink and the current indentation level.
package emitter

import (
	"fmt"
	"io"
	"strings"

	"github.com/hindic-lang/hindic/internal/types"
	"github.com/hindic-lang/hindic/pkg/ast"
	"github.com/hindic-lang/hindic/pkg/token"
)

const indentWidth = 4

// Emitter writes C source for a *ast.Program to an io.Writer.
type Emitter struct {
	w      io.Writer
	indent int
	err    error
	rename func(string) string
}

// Option configures an Emitter at construction time.
type Option func(*Emitter)

// WithRename installs f as the identifier-renaming hook: every declared or
// referenced name is passed through f before being written, except the
// print/read intrinsics, which always lower to printf/scanf. Used by
// "hindic build --ascii-identifiers" to lower Devanagari identifiers to a
// plain-ASCII scheme; the zero value leaves every name unchanged.
func WithRename(f func(string) string) Option {
	return func(e *Emitter) { e.rename = f }
}

// New creates an Emitter writing to w.
func New(w io.Writer, opts ...Option) *Emitter {
	e := &Emitter{w: w}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Emitter) renamed(name string) string {
	if e.rename == nil {
		return name
	}
	return e.rename(name)
}

// Emit writes prog's prologue and every top-level declaration to the
// Emitter's sink, separated by blank lines. It returns the first write
// error encountered, if any.
func (e *Emitter) Emit(prog *ast.Program) error {
	e.writeLine("#include <stdio.h>")
	e.writeLine("#include <stdlib.h>")
	return e.EmitDecls(prog.Decls)
}

// EmitDecls writes only prog's declarations, each preceded by a blank
// line, with no prologue. Used by the REPL to print each accumulated
// declaration's C fragment without repeating the #include lines.
func (e *Emitter) EmitDecls(decls []ast.Stmt) error {
	for _, decl := range decls {
		e.writeLine("")
		e.emitStmt(decl)
	}
	return e.err
}

func (e *Emitter) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *Emitter) writeLine(s string) {
	e.write(s)
	e.write("\n")
}

func (e *Emitter) writeIndent() {
	e.write(strings.Repeat(" ", e.indent*indentWidth))
}

func typeName(k token.Kind) string {
	switch k {
	case token.INT:
		return "int"
	case token.FLOAT:
		return "float"
	case token.CHAR:
		return "char"
	case token.VOID:
		return "void"
	default:
		return "void"
	}
}

func (e *Emitter) calleeName(name string) string {
	switch name {
	case types.PrintIntrinsic:
		return "printf"
	case types.ReadIntrinsic:
		return "scanf"
	default:
		return e.renamed(name)
	}
}

func (e *Emitter) emitStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDecl:
		e.emitVarDecl(n)
	case *ast.FunctionDecl:
		e.emitFunctionDecl(n)
	case *ast.Block:
		e.emitBlock(n)
	case *ast.If:
		e.emitIf(n)
	case *ast.While:
		e.emitWhile(n)
	case *ast.For:
		e.emitFor(n)
	case *ast.Return:
		e.emitReturn(n)
	case *ast.ExprStmt:
		e.writeIndent()
		e.emitExpr(n.X)
		e.writeLine(";")
	default:
		e.err = fmt.Errorf("emitter: unsupported statement node %T", s)
	}
}

func (e *Emitter) emitVarDecl(n *ast.VarDecl) {
	e.writeIndent()
	e.write(typeName(n.TypeTok.Kind))
	e.write(" ")
	e.write(e.renamed(n.Name.Lexeme))
	if n.Init != nil {
		e.write(" = ")
		e.emitExpr(n.Init)
	}
	e.writeLine(";")
}

func (e *Emitter) emitFunctionDecl(n *ast.FunctionDecl) {
	e.writeIndent()
	e.write(typeName(n.TypeTok.Kind))
	e.write(" ")
	e.write(e.renamed(n.Name.Lexeme))
	e.write("(")
	for i, p := range n.Params {
		if i > 0 {
			e.write(", ")
		}
		e.write(typeName(p.TypeTok.Kind))
		e.write(" ")
		e.write(e.renamed(p.Name.Lexeme))
	}
	e.write(") ")
	e.emitBlock(n.Body)
}

func (e *Emitter) emitBlock(n *ast.Block) {
	e.writeLine("{")
	e.indent++
	for _, stmt := range n.Stmts {
		e.emitStmt(stmt)
	}
	e.indent--
	e.writeIndent()
	e.writeLine("}")
}

func (e *Emitter) emitIf(n *ast.If) {
	e.writeIndent()
	e.write("if (")
	e.emitExpr(n.Cond)
	e.write(") ")
	e.emitInlineOrBlock(n.Then)
	if n.Else != nil {
		e.writeIndent()
		e.write("else ")
		e.emitInlineOrBlock(n.Else)
	}
}

func (e *Emitter) emitWhile(n *ast.While) {
	e.writeIndent()
	e.write("while (")
	e.emitExpr(n.Cond)
	e.write(") ")
	e.emitInlineOrBlock(n.Body)
}

func (e *Emitter) emitFor(n *ast.For) {
	e.writeIndent()
	e.write("for (")
	e.emitForClause(n.Init)
	e.write("; ")
	if n.Cond != nil {
		e.emitExpr(n.Cond)
	}
	e.write("; ")
	if n.Incr != nil {
		e.emitExpr(n.Incr)
	}
	e.write(") ")
	e.emitInlineOrBlock(n.Body)
}

// emitForClause emits a for-loop's initializer without its own indent,
// trailing ';' or newline — those are supplied by emitFor's surrounding
// "for ( ... ; ... ; ... )" syntax.
func (e *Emitter) emitForClause(init ast.Stmt) {
	switch n := init.(type) {
	case nil:
	case *ast.VarDecl:
		e.write(typeName(n.TypeTok.Kind))
		e.write(" ")
		e.write(e.renamed(n.Name.Lexeme))
		if n.Init != nil {
			e.write(" = ")
			e.emitExpr(n.Init)
		}
	case *ast.ExprStmt:
		e.emitExpr(n.X)
	}
}

// emitInlineOrBlock emits a statement in a position that may be either a
// brace-delimited Block or a single non-block statement, such as an if's
// 'then' arm. A non-block statement still gets its own line and indent.
func (e *Emitter) emitInlineOrBlock(s ast.Stmt) {
	if block, ok := s.(*ast.Block); ok {
		e.emitBlock(block)
		return
	}
	e.writeLine("{")
	e.indent++
	e.emitStmt(s)
	e.indent--
	e.writeIndent()
	e.writeLine("}")
}

func (e *Emitter) emitReturn(n *ast.Return) {
	e.writeIndent()
	e.write("return")
	if n.Value != nil {
		e.write(" ")
		e.emitExpr(n.Value)
	}
	e.writeLine(";")
}

func (e *Emitter) emitExpr(expr ast.Expr) {
	switch n := expr.(type) {
	case *ast.Literal:
		e.emitLiteral(n)
	case *ast.Variable:
		e.write(e.renamed(n.Name.Lexeme))
	case *ast.Assignment:
		e.write(e.renamed(n.Name.Lexeme))
		e.write(" = ")
		e.emitExpr(n.Value)
	case *ast.Call:
		e.write(e.calleeName(n.Callee.Lexeme))
		e.write("(")
		for i, arg := range n.Args {
			if i > 0 {
				e.write(", ")
			}
			e.emitExpr(arg)
		}
		e.write(")")
	case *ast.Unary:
		e.emitUnary(n)
	case *ast.Binary:
		e.write("(")
		e.emitExpr(n.Left)
		e.write(" ")
		e.write(n.Op.Lexeme)
		e.write(" ")
		e.emitExpr(n.Right)
		e.write(")")
	default:
		e.err = fmt.Errorf("emitter: unsupported expression node %T", expr)
	}
}

func (e *Emitter) emitLiteral(n *ast.Literal) {
	switch n.Tok.Kind {
	case token.STRING:
		e.write(`"`)
		e.write(n.Tok.StringValue())
		e.write(`"`)
	default:
		e.write(n.Tok.Lexeme)
	}
}

func (e *Emitter) emitUnary(n *ast.Unary) {
	switch n.Op.Kind {
	case token.MINUS:
		e.write("(-")
		e.emitExpr(n.Operand)
		e.write(")")
	case token.BANG:
		e.write("!")
		e.emitExpr(n.Operand)
	}
}

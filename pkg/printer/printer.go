// Package printer renders an AST back into canonically-formatted hindic
// source: the same declaration/statement/expression grammar the parser
// accepts, with a single fixed indentation and spacing style.
//
// Unlike pkg/emitter (which lowers to C), printer is the identity
// transform at the syntax level — it exists so "hindic fmt" can offer the
// same reformatting role the teacher's pkg/printer plays for DWScript,
// minus the multiple output styles that language's richer surface needed.
package printer

import (
	"strings"

	"github.com/hindic-lang/hindic/pkg/ast"
)

const indentWidth = 4

// Printer renders a Program as canonically-formatted source text.
type Printer struct {
	b      strings.Builder
	indent int
}

// Print renders prog as hindic source text.
func Print(prog *ast.Program) string {
	p := &Printer{}
	for i, d := range prog.Decls {
		if i > 0 {
			p.b.WriteByte('\n')
		}
		p.stmt(d)
	}
	return p.b.String()
}

func (p *Printer) writeIndent() {
	p.b.WriteString(strings.Repeat(" ", p.indent*indentWidth))
}

func (p *Printer) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDecl:
		p.varDecl(n)
		p.b.WriteString(";\n")
	case *ast.FunctionDecl:
		p.functionDecl(n)
	case *ast.Block:
		p.block(n)
	case *ast.If:
		p.ifStmt(n)
	case *ast.While:
		p.whileStmt(n)
	case *ast.For:
		p.forStmt(n)
	case *ast.Return:
		p.writeIndent()
		p.b.WriteString(n.Keyword.Lexeme)
		if n.Value != nil {
			p.b.WriteByte(' ')
			p.expr(n.Value)
		}
		p.b.WriteString(";\n")
	case *ast.ExprStmt:
		p.writeIndent()
		p.expr(n.X)
		p.b.WriteString(";\n")
	case *ast.DoStatement:
		p.writeIndent()
		p.b.WriteString(n.Keyword.Lexeme)
		p.b.WriteString(";\n")
	case *ast.BreakStatement:
		p.writeIndent()
		p.b.WriteString(n.Keyword.Lexeme)
		p.b.WriteString(";\n")
	case *ast.ContinueStatement:
		p.writeIndent()
		p.b.WriteString(n.Keyword.Lexeme)
		p.b.WriteString(";\n")
	}
}

func (p *Printer) varDecl(d *ast.VarDecl) {
	p.writeIndent()
	p.b.WriteString(d.TypeTok.Lexeme)
	p.b.WriteByte(' ')
	p.b.WriteString(d.Name.Lexeme)
	if d.Init != nil {
		p.b.WriteString(" = ")
		p.expr(d.Init)
	}
}

func (p *Printer) functionDecl(d *ast.FunctionDecl) {
	p.writeIndent()
	p.b.WriteString(d.TypeTok.Lexeme)
	p.b.WriteByte(' ')
	p.b.WriteString(d.Name.Lexeme)
	p.b.WriteByte('(')
	for i, param := range d.Params {
		if i > 0 {
			p.b.WriteString(", ")
		}
		p.b.WriteString(param.TypeTok.Lexeme)
		p.b.WriteByte(' ')
		p.b.WriteString(param.Name.Lexeme)
	}
	p.b.WriteString(") ")
	p.block(d.Body)
}

func (p *Printer) block(b *ast.Block) {
	p.b.WriteString("{\n")
	p.indent++
	for _, s := range b.Stmts {
		p.stmt(s)
	}
	p.indent--
	p.writeIndent()
	p.b.WriteString("}\n")
}

func (p *Printer) ifStmt(n *ast.If) {
	p.writeIndent()
	p.b.WriteString(n.Keyword.Lexeme)
	p.b.WriteString(" (")
	p.expr(n.Cond)
	p.b.WriteString(") ")
	p.inlineOrBlock(n.Then)
	if n.Else != nil {
		p.writeIndent()
		p.b.WriteString("वरना ")
		p.inlineOrBlock(n.Else)
	}
}

func (p *Printer) whileStmt(n *ast.While) {
	p.writeIndent()
	p.b.WriteString(n.Keyword.Lexeme)
	p.b.WriteString(" (")
	p.expr(n.Cond)
	p.b.WriteString(") ")
	p.inlineOrBlock(n.Body)
}

func (p *Printer) forStmt(n *ast.For) {
	p.writeIndent()
	p.b.WriteString(n.Keyword.Lexeme)
	p.b.WriteString(" (")
	if n.Init != nil {
		p.forClause(n.Init)
	} else {
		p.b.WriteByte(';')
	}
	p.b.WriteByte(' ')
	if n.Cond != nil {
		p.expr(n.Cond)
	}
	p.b.WriteString("; ")
	if n.Incr != nil {
		p.expr(n.Incr)
	}
	p.b.WriteString(") ")
	p.inlineOrBlock(n.Body)
}

// forClause renders a for-loop's init clause without its own indentation
// or trailing newline, since it lives inline inside the "( ; ; )" header.
func (p *Printer) forClause(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDecl:
		p.b.WriteString(n.TypeTok.Lexeme)
		p.b.WriteByte(' ')
		p.b.WriteString(n.Name.Lexeme)
		if n.Init != nil {
			p.b.WriteString(" = ")
			p.expr(n.Init)
		}
		p.b.WriteByte(';')
	case *ast.ExprStmt:
		p.expr(n.X)
		p.b.WriteByte(';')
	}
}

func (p *Printer) inlineOrBlock(s ast.Stmt) {
	if b, ok := s.(*ast.Block); ok {
		p.block(b)
		return
	}
	p.b.WriteString("\n")
	p.indent++
	p.stmt(s)
	p.indent--
}

func (p *Printer) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Literal:
		p.b.WriteString(n.Tok.Lexeme)
	case *ast.Variable:
		p.b.WriteString(n.Name.Lexeme)
	case *ast.Assignment:
		p.b.WriteString(n.Name.Lexeme)
		p.b.WriteString(" = ")
		p.expr(n.Value)
	case *ast.Call:
		p.b.WriteString(n.Callee.Lexeme)
		p.b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				p.b.WriteString(", ")
			}
			p.expr(a)
		}
		p.b.WriteByte(')')
	case *ast.Unary:
		p.b.WriteString(n.Op.Lexeme)
		p.operand(n.Operand)
	case *ast.Binary:
		p.operand(n.Left)
		p.b.WriteByte(' ')
		p.b.WriteString(n.Op.Lexeme)
		p.b.WriteByte(' ')
		p.operand(n.Right)
	}
}

// operand renders an operator's operand, parenthesizing a nested binary or
// assignment expression so the printed text parses back to the same tree.
func (p *Printer) operand(e ast.Expr) {
	switch e.(type) {
	case *ast.Binary, *ast.Assignment:
		p.b.WriteByte('(')
		p.expr(e)
		p.b.WriteByte(')')
	default:
		p.expr(e)
	}
}

// Package ast defines the tagged-variant Abstract Syntax Tree produced by
// the parser: declaration/statement nodes and expression nodes, each
// carrying a {kind, line, column} header via Pos().
package ast

import "github.com/hindic-lang/hindic/pkg/token"

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Position
}

// Stmt is any node that may appear in a Program's or Block's
// declaration-or-statement list. VarDecl and FunctionDecl are Stmts too —
// the grammar treats "declaration" as a statement that happens to bind a
// name, not a separate syntactic category.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Program is the AST root: an ordered sequence of top-level
// declarations-or-statements.
type Program struct {
	Decls []Stmt
}

func (p *Program) Pos() token.Position {
	if len(p.Decls) > 0 {
		return p.Decls[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// VarDecl declares a variable, optionally with an initializer expression.
type VarDecl struct {
	TypeTok token.Token // the INT/FLOAT/CHAR/VOID keyword token
	Name    token.Token // the IDENT token
	Init    Expr        // nil if no initializer
}

func (d *VarDecl) stmtNode()          {}
func (d *VarDecl) Pos() token.Position { return d.Name.Pos }

// Param is one (type, name) entry of a FunctionDecl's parameter list.
type Param struct {
	TypeTok token.Token
	Name    token.Token
}

// FunctionDecl declares a function: name, return type, parameters, body.
type FunctionDecl struct {
	TypeTok token.Token // return type keyword token
	Name    token.Token
	Params  []Param
	Body    *Block
}

func (d *FunctionDecl) stmtNode()          {}
func (d *FunctionDecl) Pos() token.Position { return d.Name.Pos }

// Block is an ordered sequence of declarations-or-statements delimited by
// '{' '}'.
type Block struct {
	LBrace token.Token
	Stmts  []Stmt
}

func (b *Block) stmtNode()          {}
func (b *Block) Pos() token.Position { return b.LBrace.Pos }

// If is a conditional statement with an optional else branch.
type If struct {
	Keyword token.Token
	Cond    Expr
	Then    Stmt
	Else    Stmt // nil if absent
}

func (s *If) stmtNode()          {}
func (s *If) Pos() token.Position { return s.Keyword.Pos }

// While is a pre-tested loop.
type While struct {
	Keyword token.Token
	Cond    Expr
	Body    Stmt
}

func (s *While) stmtNode()          {}
func (s *While) Pos() token.Position { return s.Keyword.Pos }

// For is a C-style three-clause loop. Init is either a *VarDecl or an
// *ExprStmt, or nil; Cond and Incr are nil when their clause is empty.
type For struct {
	Keyword token.Token
	Init    Stmt
	Cond    Expr
	Incr    Expr
	Body    Stmt
}

func (s *For) stmtNode() {}
func (s *For) Pos() token.Position {
	if s.Init != nil {
		return s.Init.Pos()
	}
	return s.Keyword.Pos
}

// Return optionally carries a value expression.
type Return struct {
	Keyword token.Token
	Value   Expr // nil if absent
}

func (s *Return) stmtNode()          {}
func (s *Return) Pos() token.Position { return s.Keyword.Pos }

// ExprStmt is an expression evaluated for its side effect, terminated by
// ';'.
type ExprStmt struct {
	X Expr
}

func (s *ExprStmt) stmtNode()          {}
func (s *ExprStmt) Pos() token.Position { return s.X.Pos() }

// DoStatement, BreakStatement, and ContinueStatement exist in the tagged
// union for completeness (their keywords are lexed). The parser builds one
// only together with a syntax error saying the keyword is not supported, so
// a Program that parsed without error never contains them.
type DoStatement struct{ Keyword token.Token }

func (s *DoStatement) stmtNode()          {}
func (s *DoStatement) Pos() token.Position { return s.Keyword.Pos }

type BreakStatement struct{ Keyword token.Token }

func (s *BreakStatement) stmtNode()          {}
func (s *BreakStatement) Pos() token.Position { return s.Keyword.Pos }

type ContinueStatement struct{ Keyword token.Token }

func (s *ContinueStatement) stmtNode()          {}
func (s *ContinueStatement) Pos() token.Position { return s.Keyword.Pos }

// Binary is a left-associative binary expression.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) exprNode()          {}
func (e *Binary) Pos() token.Position { return e.Left.Pos() }

// Unary is a prefix unary expression ('-' or '!').
type Unary struct {
	Op      token.Token
	Operand Expr
}

func (e *Unary) exprNode()          {}
func (e *Unary) Pos() token.Position { return e.Op.Pos }

// Literal wraps a NUMBER or STRING token.
type Literal struct {
	Tok token.Token
}

func (e *Literal) exprNode()          {}
func (e *Literal) Pos() token.Position { return e.Tok.Pos }

// Variable is a reference to a named symbol.
type Variable struct {
	Name token.Token
}

func (e *Variable) exprNode()          {}
func (e *Variable) Pos() token.Position { return e.Name.Pos }

// Assignment assigns Value to the variable named by Name. The target must
// resolve to a Variable at parse-construction time (the grammar only
// builds an Assignment when the left-hand side of '=' was a bare IDENT).
type Assignment struct {
	Name  token.Token
	Value Expr
}

func (e *Assignment) exprNode()          {}
func (e *Assignment) Pos() token.Position { return e.Name.Pos }

// Call invokes the function named by Callee with an ordered argument list.
type Call struct {
	Callee token.Token
	Args   []Expr
}

func (e *Call) exprNode()          {}
func (e *Call) Pos() token.Position { return e.Callee.Pos }

package semantic

import (
	"github.com/hindic-lang/hindic/internal/types"
	"github.com/hindic-lang/hindic/pkg/ast"
)

func (a *Analyzer) analyzeStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDecl:
		a.analyzeVarDecl(n)
	case *ast.FunctionDecl:
		a.analyzeFunctionDecl(n)
	case *ast.Block:
		a.syms = a.syms.Push()
		for _, stmt := range n.Stmts {
			a.analyzeStmt(stmt)
		}
		a.syms = a.syms.Pop()
	case *ast.If:
		a.requireCondition(n.Cond)
		a.analyzeStmt(n.Then)
		if n.Else != nil {
			a.analyzeStmt(n.Else)
		}
	case *ast.While:
		a.requireCondition(n.Cond)
		a.analyzeStmt(n.Body)
	case *ast.For:
		a.syms = a.syms.Push()
		if n.Init != nil {
			a.analyzeStmt(n.Init)
		}
		if n.Cond != nil {
			a.requireCondition(n.Cond)
		}
		if n.Incr != nil {
			a.inferExpr(n.Incr)
		}
		a.analyzeStmt(n.Body)
		a.syms = a.syms.Pop()
	case *ast.Return:
		a.analyzeReturn(n)
	case *ast.ExprStmt:
		a.inferExpr(n.X)
	case *ast.DoStatement, *ast.BreakStatement, *ast.ContinueStatement:
		// Rejected by the parser before reaching here; nothing to check.
	}
}

func (a *Analyzer) analyzeVarDecl(n *ast.VarDecl) {
	declared := types.FromKeyword(n.TypeTok.Kind)

	if n.Init != nil {
		initType := a.inferExpr(n.Init)
		if initType != declared && initType != types.Invalid {
			a.report(n.Name.Pos, "Type mismatch in variable initialization.")
		}
	}

	if a.syms.DeclaredHere(n.Name.Lexeme) {
		a.report(n.Name.Pos, "Variable '%s' is already declared in this scope.", n.Name.Lexeme)
		return
	}
	a.syms.Define(&Symbol{Name: n.Name.Lexeme, Category: VariableSymbol, Type: declared})
}

func (a *Analyzer) analyzeFunctionDecl(n *ast.FunctionDecl) {
	savedReturn := a.currentReturn
	a.currentReturn = types.FromKeyword(n.TypeTok.Kind)

	a.syms = a.syms.Push()
	for _, p := range n.Params {
		a.syms.Define(&Symbol{Name: p.Name.Lexeme, Category: VariableSymbol, Type: types.FromKeyword(p.TypeTok.Kind)})
	}
	for _, stmt := range n.Body.Stmts {
		a.analyzeStmt(stmt)
	}
	a.syms = a.syms.Pop()

	a.currentReturn = savedReturn
}

func (a *Analyzer) analyzeReturn(n *ast.Return) {
	if a.currentReturn == types.Void {
		if n.Value != nil {
			a.report(n.Keyword.Pos, "Cannot return a value from a void function.")
			a.inferExpr(n.Value)
		}
		return
	}

	if n.Value == nil {
		a.report(n.Keyword.Pos, "Missing return value in non-void function.")
		return
	}

	valueType := a.inferExpr(n.Value)
	if valueType != a.currentReturn && valueType != types.Invalid {
		a.report(n.Keyword.Pos, "Type mismatch in return value.")
	}
}

// requireCondition infers cond's type and requires it to be Int (the
// language has no distinct boolean type).
func (a *Analyzer) requireCondition(cond ast.Expr) {
	t := a.inferExpr(cond)
	if t != types.Int && t != types.Invalid {
		a.report(cond.Pos(), "Condition must be a boolean expression.")
	}
}

package semantic

import (
	"strings"

	"github.com/hindic-lang/hindic/internal/types"
	"github.com/hindic-lang/hindic/pkg/ast"
	"github.com/hindic-lang/hindic/pkg/token"
)

// inferExpr computes e's type, reporting any violation exactly once. A
// sub-expression that already yielded types.Invalid never produces a
// follow-on diagnostic in its parent.
func (a *Analyzer) inferExpr(e ast.Expr) types.Kind {
	switch n := e.(type) {
	case *ast.Literal:
		return a.inferLiteral(n)
	case *ast.Variable:
		return a.inferVariable(n)
	case *ast.Assignment:
		return a.inferAssignment(n)
	case *ast.Call:
		return a.inferCall(n)
	case *ast.Unary:
		return a.inferUnary(n)
	case *ast.Binary:
		return a.inferBinary(n)
	default:
		return types.Invalid
	}
}

func (a *Analyzer) inferLiteral(n *ast.Literal) types.Kind {
	switch n.Tok.Kind {
	case token.NUMBER:
		if strings.Contains(n.Tok.Lexeme, ".") {
			return types.Float
		}
		return types.Int
	case token.STRING:
		return types.Char
	default:
		return types.Invalid
	}
}

func (a *Analyzer) inferVariable(n *ast.Variable) types.Kind {
	sym, ok := a.syms.Resolve(n.Name.Lexeme)
	if !ok {
		a.report(n.Name.Pos, "Undefined variable.")
		return types.Invalid
	}
	if sym.Category != VariableSymbol {
		a.report(n.Name.Pos, "'%s' is a function, not a variable.", n.Name.Lexeme)
		return types.Invalid
	}
	return sym.Type
}

func (a *Analyzer) inferAssignment(n *ast.Assignment) types.Kind {
	sym, ok := a.syms.Resolve(n.Name.Lexeme)
	if !ok {
		a.report(n.Name.Pos, "Undefined variable.")
		a.inferExpr(n.Value)
		return types.Invalid
	}
	if sym.Category != VariableSymbol {
		a.report(n.Name.Pos, "'%s' is a function, not a variable.", n.Name.Lexeme)
		a.inferExpr(n.Value)
		return types.Invalid
	}

	valueType := a.inferExpr(n.Value)
	if valueType != sym.Type && valueType != types.Invalid {
		a.report(n.Name.Pos, "Type mismatch in assignment.")
		return types.Invalid
	}
	return valueType
}

func (a *Analyzer) inferCall(n *ast.Call) types.Kind {
	sym, ok := a.syms.Resolve(n.Callee.Lexeme)
	if !ok {
		a.report(n.Callee.Pos, "Undefined function.")
		a.inferArgs(n.Args)
		return types.Invalid
	}
	if sym.Category != FunctionSymbol {
		a.report(n.Callee.Pos, "'%s' is a variable, not a function.", n.Callee.Lexeme)
		a.inferArgs(n.Args)
		return types.Invalid
	}

	argTypes := a.inferArgs(n.Args)
	if sym.Intrinsic {
		return sym.Type
	}
	if len(argTypes) != len(sym.Params) {
		a.report(n.Callee.Pos, "Expected %d argument(s) but got %d.", len(sym.Params), len(argTypes))
		return sym.Type
	}
	for i, at := range argTypes {
		if at != sym.Params[i] && at != types.Invalid {
			a.report(n.Callee.Pos, "Argument %d has the wrong type.", i+1)
		}
	}
	return sym.Type
}

func (a *Analyzer) inferArgs(args []ast.Expr) []types.Kind {
	out := make([]types.Kind, len(args))
	for i, arg := range args {
		out[i] = a.inferExpr(arg)
	}
	return out
}

func (a *Analyzer) inferUnary(n *ast.Unary) types.Kind {
	operand := a.inferExpr(n.Operand)
	switch n.Op.Kind {
	case token.MINUS:
		if !operand.IsNumeric() && operand != types.Invalid {
			a.report(n.Op.Pos, "Operand of unary '-' must be numeric.")
			return types.Invalid
		}
		return operand
	case token.BANG:
		if operand != types.Int && operand != types.Invalid {
			a.report(n.Op.Pos, "Operand of unary '!' must be int.")
			return types.Invalid
		}
		return types.Int
	default:
		return types.Invalid
	}
}

func (a *Analyzer) inferBinary(n *ast.Binary) types.Kind {
	left := a.inferExpr(n.Left)
	right := a.inferExpr(n.Right)

	switch n.Op.Kind {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		if !a.bothNumeric(left, right) {
			a.report(n.Op.Pos, "Operands of '%s' must be numeric.", n.Op.Lexeme)
			return types.Invalid
		}
		if left == types.Float || right == types.Float {
			return types.Float
		}
		return types.Int

	case token.EQ, token.NOT_EQ, token.LESS, token.GREATER, token.LESS_EQ, token.GREATER_EQ:
		if left != right && left != types.Invalid && right != types.Invalid {
			a.report(n.Op.Pos, "Operands of '%s' must have the same type.", n.Op.Lexeme)
		}
		return types.Int

	case token.AND, token.OR:
		if !a.bothInt(left, right) {
			a.report(n.Op.Pos, "Operands of '%s' must be int.", n.Op.Lexeme)
		}
		return types.Int

	default:
		return types.Invalid
	}
}

func (a *Analyzer) bothNumeric(l, r types.Kind) bool {
	okL := l.IsNumeric() || l == types.Invalid
	okR := r.IsNumeric() || r == types.Invalid
	return okL && okR
}

func (a *Analyzer) bothInt(l, r types.Kind) bool {
	okL := l == types.Int || l == types.Invalid
	okR := r == types.Int || r == types.Invalid
	return okL && okR
}

// Package semantic implements the two-pass type checker: pass one registers
// every top-level function signature at global scope, pass two walks each
// declaration's body threading a scoped SymbolTable and the enclosing
// function's return type.
package semantic

import (
	"github.com/hindic-lang/hindic/internal/diag"
	"github.com/hindic-lang/hindic/internal/types"
	"github.com/hindic-lang/hindic/pkg/ast"
	"github.com/hindic-lang/hindic/pkg/token"
)

// Analyzer walks a *ast.Program, reporting violations to a diag.Sink.
type Analyzer struct {
	sink *diag.Sink
	syms *SymbolTable

	// currentReturn is the return type of the FunctionDecl currently being
	// walked in pass two; used by Return to check value/void agreement.
	currentReturn types.Kind
}

// New creates an Analyzer reporting into sink.
func New(sink *diag.Sink) *Analyzer {
	return &Analyzer{sink: sink, syms: NewSymbolTable()}
}

// Analyze runs both passes over prog and reports whether zero errors were
// produced. Running it twice on the same *ast.Program with two fresh
// Analyzers yields the same error count: nothing here is mutated outside
// each Analyzer's own SymbolTable.
func (a *Analyzer) Analyze(prog *ast.Program) bool {
	before := a.sink.Count()
	a.declareIntrinsics()
	a.passOne(prog)
	a.passTwo(prog)
	return a.sink.Count() == before
}

func (a *Analyzer) declareIntrinsics() {
	a.syms.Define(&Symbol{Name: types.PrintIntrinsic, Category: FunctionSymbol, Type: types.Void, Intrinsic: true})
	a.syms.Define(&Symbol{Name: types.ReadIntrinsic, Category: FunctionSymbol, Type: types.Void, Intrinsic: true})
}

// passOne registers every top-level FunctionDecl's signature at global
// scope. Redeclaration at global scope is an error.
func (a *Analyzer) passOne(prog *ast.Program) {
	for _, decl := range prog.Decls {
		fn, ok := decl.(*ast.FunctionDecl)
		if !ok {
			continue
		}
		if a.syms.DeclaredHere(fn.Name.Lexeme) {
			a.report(fn.Name.Pos, "Function '%s' is already declared.", fn.Name.Lexeme)
			continue
		}
		params := make([]types.Kind, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = types.FromKeyword(p.TypeTok.Kind)
		}
		a.syms.Define(&Symbol{
			Name:     fn.Name.Lexeme,
			Category: FunctionSymbol,
			Type:     types.FromKeyword(fn.TypeTok.Kind),
			Params:   params,
		})
	}
}

// passTwo walks every top-level declaration's body.
func (a *Analyzer) passTwo(prog *ast.Program) {
	for _, decl := range prog.Decls {
		a.analyzeStmt(decl)
	}
}

func (a *Analyzer) report(pos token.Position, format string, args ...any) {
	a.sink.Report(diag.Semantic, pos, format, args...)
}

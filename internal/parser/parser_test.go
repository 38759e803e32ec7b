package parser

import (
	"testing"

	"github.com/hindic-lang/hindic/internal/diag"
	"github.com/hindic-lang/hindic/internal/lexer"
	"github.com/hindic-lang/hindic/pkg/ast"
	"github.com/hindic-lang/hindic/pkg/token"
)

func parse(t *testing.T, src string) (*ast.Program, *Parser) {
	t.Helper()
	sink := diag.NewSink()
	p := New(lexer.New([]byte(src)), sink)
	prog := p.Parse()
	return prog, p
}

func TestParse_VarDeclWithInitializer(t *testing.T) {
	prog, p := parse(t, `पूर्णांक x = 5;`)
	if p.HadError() {
		t.Fatalf("unexpected parse error: %v", p.sink.String())
	}
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(prog.Decls))
	}
	decl, ok := prog.Decls[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected *ast.VarDecl, got %T", prog.Decls[0])
	}
	if decl.Name.Lexeme != "x" {
		t.Fatalf("unexpected name: %q", decl.Name.Lexeme)
	}
	if decl.TypeTok.Kind != token.INT {
		t.Fatalf("unexpected type: %s", decl.TypeTok.Kind)
	}
	lit, ok := decl.Init.(*ast.Literal)
	if !ok || lit.Tok.Lexeme != "5" {
		t.Fatalf("unexpected initializer: %#v", decl.Init)
	}
}

func TestParse_VarDeclWithoutInitializer(t *testing.T) {
	prog, p := parse(t, `दशमलव y;`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	decl := prog.Decls[0].(*ast.VarDecl)
	if decl.Init != nil {
		t.Fatalf("expected no initializer, got %#v", decl.Init)
	}
}

func TestParse_FunctionDeclWithParamsAndReturn(t *testing.T) {
	prog, p := parse(t, `पूर्णांक जोड़(पूर्णांक क, पूर्णांक ख) { वापस क + ख; }`)
	if p.HadError() {
		t.Fatalf("unexpected parse error: %s", p.sink.String())
	}
	fn := prog.Decls[0].(*ast.FunctionDecl)
	if fn.Name.Lexeme != "जोड़" {
		t.Fatalf("unexpected function name: %q", fn.Name.Lexeme)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if fn.Params[0].Name.Lexeme != "क" || fn.Params[1].Name.Lexeme != "ख" {
		t.Fatalf("unexpected param names: %+v", fn.Params)
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body.Stmts))
	}
	ret, ok := fn.Body.Stmts[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected *ast.Return, got %T", fn.Body.Stmts[0])
	}
	bin, ok := ret.Value.(*ast.Binary)
	if !ok || bin.Op.Kind != token.PLUS {
		t.Fatalf("expected binary '+' return value, got %#v", ret.Value)
	}
}

func TestParse_MoreThanEightParamsErrors(t *testing.T) {
	src := `शून्य f(पूर्णांक a, पूर्णांक b, पूर्णांक c, पूर्णांक d, पूर्णांक e, पूर्णांक g, पूर्णांक h, पूर्णांक i, पूर्णांक j) { }`
	_, p := parse(t, src)
	if !p.HadError() {
		t.Fatalf("expected a parse error for 9 parameters")
	}
}

func TestParse_LeftAssociativeBinaryOperators(t *testing.T) {
	prog, p := parse(t, `पूर्णांक x = a + b + c;`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	decl := prog.Decls[0].(*ast.VarDecl)
	outer, ok := decl.Init.(*ast.Binary)
	if !ok {
		t.Fatalf("expected outer Binary, got %#v", decl.Init)
	}
	inner, ok := outer.Left.(*ast.Binary)
	if !ok {
		t.Fatalf("expected (a + b) + c shape, got %#v", outer.Left)
	}
	if inner.Left.(*ast.Variable).Name.Lexeme != "a" {
		t.Fatalf("expected leftmost operand 'a'")
	}
}

func TestParse_RightAssociativeAssignment(t *testing.T) {
	prog, p := parse(t, `पूर्णांक x = a = b = c;`)
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	decl := prog.Decls[0].(*ast.VarDecl)
	outer, ok := decl.Init.(*ast.Assignment)
	if !ok {
		t.Fatalf("expected outer Assignment, got %#v", decl.Init)
	}
	if outer.Name.Lexeme != "a" {
		t.Fatalf("expected outer target 'a', got %q", outer.Name.Lexeme)
	}
	inner, ok := outer.Value.(*ast.Assignment)
	if !ok || inner.Name.Lexeme != "b" {
		t.Fatalf("expected inner assignment target 'b', got %#v", outer.Value)
	}
}

func TestParse_IfElse(t *testing.T) {
	prog, p := parse(t, `शून्य f() { अगर (1) { } वरना { } }`)
	if p.HadError() {
		t.Fatalf("unexpected parse error: %s", p.sink.String())
	}
	fn := prog.Decls[0].(*ast.FunctionDecl)
	ifStmt := fn.Body.Stmts[0].(*ast.If)
	if ifStmt.Else == nil {
		t.Fatalf("expected else branch to be parsed")
	}
}

func TestParse_ForLoopAllClauses(t *testing.T) {
	prog, p := parse(t, `शून्य f() { दौर (पूर्णांक i = 0; i < 10; i = i + 1) { } }`)
	if p.HadError() {
		t.Fatalf("unexpected parse error: %s", p.sink.String())
	}
	fn := prog.Decls[0].(*ast.FunctionDecl)
	forStmt := fn.Body.Stmts[0].(*ast.For)
	if forStmt.Init == nil || forStmt.Cond == nil || forStmt.Incr == nil {
		t.Fatalf("expected all three for-clauses to be populated: %#v", forStmt)
	}
	if _, ok := forStmt.Init.(*ast.VarDecl); !ok {
		t.Fatalf("expected VarDecl initializer, got %T", forStmt.Init)
	}
}

func TestParse_ForLoopEmptyClauses(t *testing.T) {
	prog, p := parse(t, `शून्य f() { दौर (;;) { } }`)
	if p.HadError() {
		t.Fatalf("unexpected parse error: %s", p.sink.String())
	}
	fn := prog.Decls[0].(*ast.FunctionDecl)
	forStmt := fn.Body.Stmts[0].(*ast.For)
	if forStmt.Init != nil || forStmt.Cond != nil || forStmt.Incr != nil {
		t.Fatalf("expected all clauses empty, got %#v", forStmt)
	}
}

func TestParse_CallOnNonVariableIsError(t *testing.T) {
	_, p := parse(t, `पूर्णांक x = (1 + 2)(3);`)
	if !p.HadError() {
		t.Fatalf("expected 'Can only call functions.' error")
	}
}

func TestParse_UnterminatedStatementReportsErrorButContinues(t *testing.T) {
	prog, p := parse(t, `पूर्णांक x = 5
	पूर्णांक y = 6;`)
	if !p.HadError() {
		t.Fatalf("expected missing ';' to be reported")
	}
	// parsing continues after the missing terminator
	if len(prog.Decls) == 0 {
		t.Fatalf("expected parser to continue after the error")
	}
}

func TestParse_DoBreakContinueAreNotYetSupported(t *testing.T) {
	for _, src := range []string{
		`शून्य f() { करो { } जबतक (1); }`,
		`शून्य f() { रुको; }`,
		`शून्य f() { जारी; }`,
	} {
		_, p := parse(t, src)
		if !p.HadError() {
			t.Errorf("%q: expected a 'not yet supported' error", src)
		}
	}
}

func TestParse_EmptyProgram(t *testing.T) {
	prog, p := parse(t, "  // only a comment\n")
	if p.HadError() {
		t.Fatalf("unexpected parse error")
	}
	if len(prog.Decls) != 0 {
		t.Fatalf("expected no declarations, got %d", len(prog.Decls))
	}
}

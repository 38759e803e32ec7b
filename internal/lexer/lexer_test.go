package lexer

import (
	"testing"

	"github.com/hindic-lang/hindic/pkg/token"
)

func TestNextToken_Keywords(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{"पूर्णांक", token.INT},
		{"दशमलव", token.FLOAT},
		{"वर्ण", token.CHAR},
		{"शून्य", token.VOID},
		{"अगर", token.IF},
		{"वरना", token.ELSE},
		{"दौर", token.FOR},
		{"जबतक", token.WHILE},
		{"करो", token.DO},
		{"रुको", token.BREAK},
		{"जारी", token.CONTINUE},
		{"वापस", token.RETURN},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			l := New([]byte(tt.src))
			tok := l.Next()
			if tok.Kind != tt.kind {
				t.Fatalf("expected kind %s, got %s", tt.kind, tok.Kind)
			}
			if eof := l.Next(); eof.Kind != token.EOF {
				t.Fatalf("expected single-token source to end at EOF, got %s", eof.Kind)
			}
		})
	}
}

func TestNextToken_Identifiers(t *testing.T) {
	l := New([]byte("मुख्य x _y1 मिला2"))
	want := []string{"मुख्य", "x", "_y1", "मिला2"}
	for _, w := range want {
		tok := l.Next()
		if tok.Kind != token.IDENT {
			t.Fatalf("expected IDENT, got %s (%q)", tok.Kind, tok.Lexeme)
		}
		if tok.Lexeme != w {
			t.Fatalf("expected lexeme %q, got %q", w, tok.Lexeme)
		}
	}
}

func TestNextToken_Numbers(t *testing.T) {
	l := New([]byte("42 3.14 0"))

	tok := l.Next()
	if tok.Kind != token.NUMBER || tok.IsFloat() || tok.IntValue() != 42 {
		t.Fatalf("unexpected integer token: %+v", tok)
	}

	tok = l.Next()
	if tok.Kind != token.NUMBER || !tok.IsFloat() || tok.FloatValue() != 3.14 {
		t.Fatalf("unexpected float token: %+v", tok)
	}

	tok = l.Next()
	if tok.Kind != token.NUMBER || tok.IsFloat() || tok.IntValue() != 0 {
		t.Fatalf("unexpected zero token: %+v", tok)
	}
}

func TestNextToken_String(t *testing.T) {
	l := New([]byte(`"hello world"`))
	tok := l.Next()
	if tok.Kind != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Kind)
	}
	if tok.StringValue() != "hello world" {
		t.Fatalf("expected payload %q, got %q", "hello world", tok.StringValue())
	}
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New([]byte(`"unterminated`))
	tok := l.Next()
	if tok.Kind != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Kind)
	}
	if tok.Lexeme != "Unterminated string." {
		t.Fatalf("unexpected message: %q", tok.Lexeme)
	}
}

func TestNextToken_Operators(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{"+", token.PLUS},
		{"-", token.MINUS},
		{"*", token.STAR},
		{"/", token.SLASH},
		{"%", token.PERCENT},
		{"=", token.ASSIGN},
		{"==", token.EQ},
		{"!", token.BANG},
		{"!=", token.NOT_EQ},
		{"<", token.LESS},
		{"<=", token.LESS_EQ},
		{">", token.GREATER},
		{">=", token.GREATER_EQ},
		{"&&", token.AND},
		{"||", token.OR},
		{"(", token.LPAREN},
		{")", token.RPAREN},
		{"{", token.LBRACE},
		{"}", token.RBRACE},
		{",", token.COMMA},
		{";", token.SEMICOLON},
	}

	for _, tt := range tests {
		l := New([]byte(tt.src))
		tok := l.Next()
		if tok.Kind != tt.kind {
			t.Errorf("%q: expected %s, got %s", tt.src, tt.kind, tok.Kind)
		}
	}
}

func TestNextToken_IllegalSingleAmpersandAndPipe(t *testing.T) {
	for _, src := range []string{"&", "|", "&x", "|x"} {
		l := New([]byte(src))
		tok := l.Next()
		if tok.Kind != token.ILLEGAL {
			t.Errorf("%q: expected ILLEGAL, got %s", src, tok.Kind)
		}
	}
}

func TestNextToken_LineComment(t *testing.T) {
	l := New([]byte("पूर्णांक // यह टिप्पणी है\nx"))
	tok := l.Next()
	if tok.Kind != token.INT {
		t.Fatalf("expected INT before comment, got %s", tok.Kind)
	}
	tok = l.Next()
	if tok.Kind != token.IDENT || tok.Lexeme != "x" {
		t.Fatalf("expected identifier after comment line, got %+v", tok)
	}
}

func TestNextToken_LineColumnTracking(t *testing.T) {
	l := New([]byte("पूर्णांक x;\nवापस;"))
	tok := l.Next() // पूर्णांक
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Fatalf("unexpected start position: %+v", tok.Pos)
	}

	l.Next() // x
	l.Next() // ;
	tok = l.Next() // वापस on line 2
	if tok.Pos.Line != 2 || tok.Pos.Column != 1 {
		t.Fatalf("expected वापस at 2:1, got %+v", tok.Pos)
	}
}

func TestNextToken_EOFIsIdempotent(t *testing.T) {
	l := New([]byte("  "))
	first := l.Next()
	second := l.Next()
	if first.Kind != token.EOF || second.Kind != token.EOF {
		t.Fatalf("expected repeated EOF, got %s then %s", first.Kind, second.Kind)
	}
}

func TestPeek_DoesNotConsume(t *testing.T) {
	l := New([]byte("पूर्णांक x"))
	ahead := l.Peek(1)
	if ahead.Kind != token.IDENT {
		t.Fatalf("expected Peek(1) to see IDENT, got %s", ahead.Kind)
	}
	first := l.Next()
	if first.Kind != token.INT {
		t.Fatalf("expected Next() to still return INT first, got %s", first.Kind)
	}
	second := l.Next()
	if second.Kind != token.IDENT {
		t.Fatalf("expected Next() to now return IDENT, got %s", second.Kind)
	}
}

func TestNextToken_UnexpectedCharacter(t *testing.T) {
	l := New([]byte("@"))
	tok := l.Next()
	if tok.Kind != token.ILLEGAL || tok.Lexeme != "Unexpected character." {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestNextToken_BOMStripped(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("पूर्णांक")...)
	l := New(src)
	tok := l.Next()
	if tok.Kind != token.INT {
		t.Fatalf("expected INT after BOM strip, got %s", tok.Kind)
	}
}

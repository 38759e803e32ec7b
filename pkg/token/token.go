// Package token defines the closed set of lexical token kinds produced by
// the hindic scanner, along with source position tracking.
package token

import "fmt"

// Kind identifies the syntactic category of a Token.
type Kind int

const (
	// Special
	ILLEGAL Kind = iota
	EOF

	// Identifiers and literals
	IDENT
	NUMBER
	STRING

	// Keyword types
	INT  // पूर्णांक
	FLOAT
	CHAR // वर्ण
	VOID // शून्य

	// Keyword control flow
	IF      // अगर
	ELSE    // वरना
	FOR     // दौर
	WHILE   // जबतक
	DO      // करो
	BREAK   // रुको
	CONTINUE // जारी
	RETURN  // वापस

	// Punctuation
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	COMMA
	SEMICOLON

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	ASSIGN
	EQ
	NOT_EQ
	LESS
	LESS_EQ
	GREATER
	GREATER_EQ
	BANG
	AND // &&
	OR  // ||
)

var kindNames = map[Kind]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	IDENT:      "IDENT",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	INT:        "INT",
	FLOAT:      "FLOAT",
	CHAR:       "CHAR",
	VOID:       "VOID",
	IF:         "IF",
	ELSE:       "ELSE",
	FOR:        "FOR",
	WHILE:      "WHILE",
	DO:         "DO",
	BREAK:      "BREAK",
	CONTINUE:   "CONTINUE",
	RETURN:     "RETURN",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	COMMA:      "COMMA",
	SEMICOLON:  "SEMICOLON",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
	PERCENT:    "PERCENT",
	ASSIGN:     "ASSIGN",
	EQ:         "EQ",
	NOT_EQ:     "NOT_EQ",
	LESS:       "LESS",
	LESS_EQ:    "LESS_EQ",
	GREATER:    "GREATER",
	GREATER_EQ: "GREATER_EQ",
	BANG:       "BANG",
	AND:        "AND",
	OR:         "OR",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps the exact UTF-8 Devanagari spelling of each keyword to its
// token Kind. Matching is byte-wise exact equality on the full identifier
// slice — no normalization, no case folding (the source language has no
// case distinction for Devanagari).
var Keywords = map[string]Kind{
	"पूर्णांक": INT,
	"दशमलव":   FLOAT,
	"वर्ण":     CHAR,
	"शून्य":    VOID,
	"अगर":      IF,
	"वरना":     ELSE,
	"दौर":      FOR,
	"जबतक":     WHILE,
	"करो":      DO,
	"रुको":     BREAK,
	"जारी":     CONTINUE,
	"वापस":     RETURN,
}

// LookupIdent classifies a scanned identifier slice as a keyword Kind or
// the generic IDENT kind.
func LookupIdent(ident string) Kind {
	if kind, ok := Keywords[ident]; ok {
		return kind
	}
	return IDENT
}

// IsTypeKeyword reports whether kind starts a declaration (the four
// primitive type keywords that may open a VarDecl or FunctionDecl).
func IsTypeKeyword(kind Kind) bool {
	switch kind {
	case INT, FLOAT, CHAR, VOID:
		return true
	}
	return false
}

// Position locates the first byte of a token within the source buffer.
// Columns are byte-based, not grapheme-based, per the scanner's documented
// simplification: a multi-byte Devanagari rune advances the column once
// per byte.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is the unit produced by the scanner and consumed by the parser.
//
// Lexeme is a substring of the Lexer's own string copy of the source (for
// an ILLEGAL token it holds the error message instead). Value holds
// the decoded payload for NUMBER (int64 or float64, chosen by whether the
// lexeme contained a '.') and STRING (the unescaped interior bytes); it is
// nil for every other kind.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Position
	Value  any
}

// IntValue returns the decoded integer value of an integer-flavored NUMBER
// token. Panics if the token does not carry an int64 value — callers must
// only invoke this after checking Value's dynamic type or Token.IsFloat().
func (t Token) IntValue() int64 {
	return t.Value.(int64)
}

// FloatValue returns the decoded floating value of a float-flavored NUMBER
// token.
func (t Token) FloatValue() float64 {
	return t.Value.(float64)
}

// IsFloat reports whether a NUMBER token was scanned with a '.' in its
// lexeme.
func (t Token) IsFloat() bool {
	_, ok := t.Value.(float64)
	return ok
}

// StringValue returns the unescaped payload of a STRING token.
func (t Token) StringValue() string {
	if s, ok := t.Value.(string); ok {
		return s
	}
	return ""
}

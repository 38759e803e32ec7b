// Package lexer implements the hindic scanner: a byte-oriented, UTF-8-aware
// tokenizer that recognizes the fixed Devanagari keyword alphabet while
// accepting arbitrary Devanagari/ASCII identifiers.
package lexer

import (
	"bytes"
	"io"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/hindic-lang/hindic/pkg/token"
)

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithTabWidth records a tab width on the Lexer (default 4). Nothing reads
// the recorded value: it has no effect on token boundaries, on the
// byte-based column numbers the scanner produces (those always advance one
// column per consumed byte), or on diagnostic rendering.
func WithTabWidth(width int) Option {
	return func(l *Lexer) {
		if width > 0 {
			l.tabWidth = width
		}
	}
}

// Lexer scans a UTF-8 byte buffer into a lazy sequence of Tokens.
//
// Column positions are byte offsets from the start of the line, not rune or
// grapheme counts: a multi-byte Devanagari sequence advances the column
// once per byte. This is a documented simplification, not a bug.
type Lexer struct {
	src      string
	pos      int // index of the next unread byte
	line     int
	column   int
	tabWidth int
	buffered []token.Token
}

// New creates a Lexer over src. A leading UTF-8 byte-order mark, if present,
// is stripped before scanning begins.
func New(src []byte, opts ...Option) *Lexer {
	src = stripBOM(src)
	l := &Lexer{
		src:      string(src),
		pos:      0,
		line:     1,
		column:   1,
		tabWidth: 4,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func stripBOM(src []byte) []byte {
	r := transform.NewReader(bytes.NewReader(src), unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	stripped, err := io.ReadAll(r)
	if err != nil {
		// A transform error here means malformed input the scanner will
		// itself reject byte by byte; fall back to the untouched buffer.
		return src
	}
	return stripped
}

// Next scans and returns the next Token. It is idempotent after end of
// input: once EOF has been produced, every subsequent call returns another
// EOF token at the same position.
func (l *Lexer) Next() token.Token {
	if len(l.buffered) > 0 {
		tok := l.buffered[0]
		l.buffered = l.buffered[1:]
		return tok
	}
	return l.scan()
}

// Peek returns the token n positions ahead without consuming it. Peek(0) is
// the token Next() would return next. Tokens are buffered lazily.
func (l *Lexer) Peek(n int) token.Token {
	for len(l.buffered) <= n {
		l.buffered = append(l.buffered, l.scan())
	}
	return l.buffered[n]
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) byteAt(i int) byte {
	if i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func (l *Lexer) advance() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return b
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.src[l.pos] != expected {
		return false
	}
	l.advance()
	return true
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isASCIILetter(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isIdentStart reports whether b can begin an identifier: an ASCII letter,
// underscore, or a byte >= 0xE0, the leading byte of a three- or four-byte
// UTF-8 sequence (which covers the Devanagari block). Leading bytes of
// two-byte sequences (0xC0-0xDF) are not accepted.
func isIdentStart(b byte) bool {
	return isASCIILetter(b) || b >= 0xE0
}

// isIdentContinue additionally allows continuation bytes of a multi-byte
// UTF-8 sequence (0x80-0xBF) and ASCII digits, so a maximal identifier run
// swallows whole runes rather than stopping mid-sequence.
func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isASCIIDigit(b) || (b >= 0x80 && b < 0xC0)
}

func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		b := l.src[l.pos]
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			l.advance()
		case b == '/' && l.byteAt(l.pos+1) == '/':
			for !l.atEnd() && l.src[l.pos] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) scan() token.Token {
	l.skipWhitespaceAndComments()

	if l.atEnd() {
		return l.makeToken(token.EOF, l.pos, l.pos, l.curPos())
	}

	startPos := l.curPos()
	startOffset := l.pos
	b := l.src[l.pos]

	switch {
	case isIdentStart(b):
		return l.scanIdentifier(startOffset, startPos)
	case isASCIIDigit(b):
		return l.scanNumber(startOffset, startPos)
	case b == '"':
		return l.scanString(startOffset, startPos)
	default:
		return l.scanOperator(startOffset, startPos)
	}
}

func (l *Lexer) curPos() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.pos}
}

func (l *Lexer) makeToken(kind token.Kind, start, end int, pos token.Position) token.Token {
	return token.Token{Kind: kind, Lexeme: l.src[start:end], Pos: pos}
}

func (l *Lexer) errorToken(msg string, pos token.Position) token.Token {
	return token.Token{Kind: token.ILLEGAL, Lexeme: msg, Pos: pos}
}

func (l *Lexer) scanIdentifier(start int, pos token.Position) token.Token {
	for !l.atEnd() && isIdentContinue(l.src[l.pos]) {
		l.advance()
	}
	lexeme := l.src[start:l.pos]
	kind := token.LookupIdent(lexeme)
	return token.Token{Kind: kind, Lexeme: lexeme, Pos: pos}
}

func (l *Lexer) scanNumber(start int, pos token.Position) token.Token {
	for !l.atEnd() && isASCIIDigit(l.src[l.pos]) {
		l.advance()
	}

	isFloat := false
	if !l.atEnd() && l.src[l.pos] == '.' && isASCIIDigit(l.byteAt(l.pos+1)) {
		isFloat = true
		l.advance() // consume '.'
		for !l.atEnd() && isASCIIDigit(l.src[l.pos]) {
			l.advance()
		}
	}

	lexeme := l.src[start:l.pos]
	tok := token.Token{Kind: token.NUMBER, Lexeme: lexeme, Pos: pos}
	if isFloat {
		v, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return l.errorToken("Invalid number literal.", pos)
		}
		tok.Value = v
	} else {
		v, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return l.errorToken("Invalid number literal.", pos)
		}
		tok.Value = v
	}
	return tok
}

func (l *Lexer) scanString(start int, pos token.Position) token.Token {
	l.advance() // opening quote
	contentStart := l.pos
	for !l.atEnd() && l.src[l.pos] != '"' {
		l.advance()
	}
	if l.atEnd() {
		return l.errorToken("Unterminated string.", pos)
	}
	content := l.src[contentStart:l.pos]
	l.advance() // closing quote
	return token.Token{Kind: token.STRING, Lexeme: l.src[start:l.pos], Pos: pos, Value: content}
}

func (l *Lexer) scanOperator(start int, pos token.Position) token.Token {
	b := l.advance()
	switch b {
	case '(':
		return l.makeToken(token.LPAREN, start, l.pos, pos)
	case ')':
		return l.makeToken(token.RPAREN, start, l.pos, pos)
	case '{':
		return l.makeToken(token.LBRACE, start, l.pos, pos)
	case '}':
		return l.makeToken(token.RBRACE, start, l.pos, pos)
	case ',':
		return l.makeToken(token.COMMA, start, l.pos, pos)
	case ';':
		return l.makeToken(token.SEMICOLON, start, l.pos, pos)
	case '+':
		return l.makeToken(token.PLUS, start, l.pos, pos)
	case '-':
		return l.makeToken(token.MINUS, start, l.pos, pos)
	case '*':
		return l.makeToken(token.STAR, start, l.pos, pos)
	case '/':
		return l.makeToken(token.SLASH, start, l.pos, pos)
	case '%':
		return l.makeToken(token.PERCENT, start, l.pos, pos)
	case '=':
		if l.match('=') {
			return l.makeToken(token.EQ, start, l.pos, pos)
		}
		return l.makeToken(token.ASSIGN, start, l.pos, pos)
	case '!':
		if l.match('=') {
			return l.makeToken(token.NOT_EQ, start, l.pos, pos)
		}
		return l.makeToken(token.BANG, start, l.pos, pos)
	case '<':
		if l.match('=') {
			return l.makeToken(token.LESS_EQ, start, l.pos, pos)
		}
		return l.makeToken(token.LESS, start, l.pos, pos)
	case '>':
		if l.match('=') {
			return l.makeToken(token.GREATER_EQ, start, l.pos, pos)
		}
		return l.makeToken(token.GREATER, start, l.pos, pos)
	case '&':
		if l.match('&') {
			return l.makeToken(token.AND, start, l.pos, pos)
		}
		return l.errorToken("Unexpected character.", pos)
	case '|':
		if l.match('|') {
			return l.makeToken(token.OR, start, l.pos, pos)
		}
		return l.errorToken("Unexpected character.", pos)
	default:
		return l.errorToken("Unexpected character.", pos)
	}
}

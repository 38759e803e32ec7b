// Package types defines the closed type lattice used by the semantic
// analyzer: the four primitive keyword types plus the error
// sentinel that suppresses cascaded diagnostics after a failed inference.
package types

import "github.com/hindic-lang/hindic/pkg/token"

// Kind is one of the four primitive source types or the Invalid sentinel.
type Kind int

const (
	// Invalid is the error sentinel: "an earlier error made this
	// expression's type unknowable." It is never a valid declared type and
	// is always treated as compatible with everything, to avoid cascaded
	// diagnostics.
	Invalid Kind = iota
	Int
	Float
	Char
	Void
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Char:
		return "char"
	case Void:
		return "void"
	default:
		return "<invalid>"
	}
}

// FromKeyword maps a type-keyword token.Kind to its Kind. The caller must
// ensure tk is one of token.INT, token.FLOAT, token.CHAR, token.VOID.
func FromKeyword(tk token.Kind) Kind {
	switch tk {
	case token.INT:
		return Int
	case token.FLOAT:
		return Float
	case token.CHAR:
		return Char
	case token.VOID:
		return Void
	default:
		return Invalid
	}
}

// IsNumeric reports whether k is Int or Float.
func (k Kind) IsNumeric() bool {
	return k == Int || k == Float
}

// Standard intrinsic identifiers the emitter lowers to libc calls, and that
// the semantic analyzer pre-declares as variadic functions in the global
// scope so user source never has to forward-declare them.
const (
	PrintIntrinsic = "छापो"
	ReadIntrinsic  = "पढ़ो"
)

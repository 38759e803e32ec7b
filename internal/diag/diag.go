// Package diag implements the single diagnostic sink shared by the lexer,
// parser, and semantic analyzer stages. Every reported problem becomes one
// human-readable line, in the format:
//
//	Line <n>, Column <n>: Error: <message>
package diag

import (
	"fmt"
	"strings"

	"github.com/hindic-lang/hindic/pkg/token"
)

// Stage identifies which pipeline phase raised a Diagnostic.
type Stage string

const (
	Lexical  Stage = "lexical"
	Syntax   Stage = "syntax"
	Semantic Stage = "semantic"
)

// Diagnostic is a single reported problem.
type Diagnostic struct {
	Stage   Stage
	Pos     token.Position
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("Line %d, Column %d: Error: %s", d.Pos.Line, d.Pos.Column, d.Message)
}

// Sink accumulates diagnostics across a compilation run. Lexical errors are
// injected as ILLEGAL tokens and surface through the parser's normal error
// path (spec: "the scanner never aborts"); Sink itself never aborts either —
// the caller decides, after each stage, whether a non-zero Count() is fatal.
type Sink struct {
	diags []Diagnostic
}

// NewSink creates an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Report appends one Diagnostic.
func (s *Sink) Report(stage Stage, pos token.Position, format string, args ...any) {
	s.diags = append(s.diags, Diagnostic{
		Stage:   stage,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
}

// Count returns the number of diagnostics reported so far.
func (s *Sink) Count() int {
	return len(s.diags)
}

// Diagnostics returns the accumulated diagnostics in report order.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diags
}

// String renders every diagnostic, one per line.
func (s *Sink) String() string {
	var b strings.Builder
	for _, d := range s.diags {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}

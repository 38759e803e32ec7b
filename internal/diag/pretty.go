package diag

import (
	"fmt"
	"strings"
)

// PrettyPrinter renders Diagnostics with surrounding source context and a
// caret pointing at the offending column, for terminal-friendly CLI output.
// Adapted from the teacher's source-context error formatter: the same
// line-number-gutter-plus-caret layout, generalized to hindic's Diagnostic
// type instead of a single CompilerError struct, and to a Sink of many
// diagnostics instead of a []*CompilerError slice.
type PrettyPrinter struct {
	Source string
	File   string
	Color  bool
}

// Format renders every Diagnostic in s with the source line it points at
// (when Source has that line) and a caret under the reported column.
func (p PrettyPrinter) Format(s *Sink) string {
	diags := s.Diagnostics()
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	if len(diags) > 1 {
		fmt.Fprintf(&b, "Compilation failed with %d error(s):\n\n", len(diags))
	}
	for i, d := range diags {
		if len(diags) > 1 {
			fmt.Fprintf(&b, "[Error %d of %d]\n", i+1, len(diags))
		}
		b.WriteString(p.formatOne(d))
		if i < len(diags)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func (p PrettyPrinter) formatOne(d Diagnostic) string {
	var b strings.Builder

	if p.File != "" {
		fmt.Fprintf(&b, "Error in %s:%d:%d\n", p.File, d.Pos.Line, d.Pos.Column)
	} else {
		fmt.Fprintf(&b, "Error at line %d:%d\n", d.Pos.Line, d.Pos.Column)
	}

	if line := p.sourceLine(d.Pos.Line); line != "" {
		gutter := fmt.Sprintf("%4d | ", d.Pos.Line)
		b.WriteString(gutter)
		b.WriteString(line)
		b.WriteByte('\n')

		b.WriteString(strings.Repeat(" ", len(gutter)+d.Pos.Column-1))
		if p.Color {
			b.WriteString("\033[1;31m")
		}
		b.WriteString("^")
		if p.Color {
			b.WriteString("\033[0m")
		}
		b.WriteByte('\n')
	}

	if p.Color {
		b.WriteString("\033[1m")
	}
	b.WriteString(d.Message)
	if p.Color {
		b.WriteString("\033[0m")
	}

	return b.String()
}

func (p PrettyPrinter) sourceLine(lineNum int) string {
	if p.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(p.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

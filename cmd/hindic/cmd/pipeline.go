package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hindic-lang/hindic/internal/diag"
	"github.com/hindic-lang/hindic/internal/lexer"
	"github.com/hindic-lang/hindic/internal/parser"
	"github.com/hindic-lang/hindic/internal/semantic"
	"github.com/hindic-lang/hindic/pkg/ast"
	"github.com/hindic-lang/hindic/pkg/emitter"
	"github.com/tidwall/sjson"
)

func readSource(filename string) ([]byte, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return content, nil
}

// printDiagnostics renders sink's diagnostics against source (the file
// named filename, or "" for a REPL line with no backing file). Rendering
// is, in order of precedence: a JSON array of {line, column, stage,
// message} objects when --diagnostics-json is set; a source-context
// PrettyPrinter rendering (gutter, caret, stage explanation) when
// --explain is set; or the plain one-line-per-diagnostic default.
func printDiagnostics(sink *diag.Sink, filename string, source []byte) {
	if sink.Count() == 0 {
		return
	}
	if diagnosticsJSON {
		fmt.Fprintln(os.Stderr, diagnosticsToJSON(sink))
		return
	}
	if explainErrors {
		pp := diag.PrettyPrinter{Source: string(source), File: filename}
		fmt.Fprintln(os.Stderr, pp.Format(sink))
		for _, d := range sink.Diagnostics() {
			fmt.Fprintln(os.Stderr, explanationFor(d.Stage))
		}
		return
	}
	fmt.Fprint(os.Stderr, sink.String())
}

// explanationFor returns a one-line, stage-level explanation shown after
// each diagnostic under --explain. It is deliberately generic: diagnostics
// carry no finer-grained error code to key a per-message lookup on.
func explanationFor(stage diag.Stage) string {
	switch stage {
	case diag.Lexical:
		return "The scanner could not classify this input as a valid token."
	case diag.Syntax:
		return "The parser could not match this input against the grammar at this point."
	case diag.Semantic:
		return "The expression or declaration violates a type or scoping rule."
	default:
		return ""
	}
}

// diagnosticsToJSON builds the JSON array rendering of sink's diagnostics
// by incrementally patching each field with sjson, mirroring how a
// streaming diagnostic reporter would append entries one at a time.
func diagnosticsToJSON(sink *diag.Sink) string {
	doc := "[]"
	for i, d := range sink.Diagnostics() {
		var err error
		doc, err = setJSONField(doc, i, "line", d.Pos.Line)
		if err != nil {
			break
		}
		doc, _ = setJSONField(doc, i, "column", d.Pos.Column)
		doc, _ = setJSONField(doc, i, "stage", string(d.Stage))
		doc, _ = setJSONField(doc, i, "message", d.Message)
	}
	return doc
}

func setJSONField(doc string, index int, field string, value any) (string, error) {
	return sjson.Set(doc, fmt.Sprintf("%d.%s", index, field), value)
}

// parseFile lexes and parses content, returning the resulting Program and
// diagnostic sink. The caller must check p.HadError()/sink.Count() before
// proceeding to semantic analysis.
func parseFile(content []byte) (*ast.Program, *parser.Parser, *diag.Sink) {
	sink := diag.NewSink()
	p := parser.New(lexer.New(content), sink)
	prog := p.Parse()
	return prog, p, sink
}

// defaultOutputPath replaces filename's extension with .c, or appends .c
// if filename has no extension.
func defaultOutputPath(filename string) string {
	if idx := strings.LastIndexByte(filename, '.'); idx > strings.LastIndexByte(filename, '/') {
		return filename[:idx] + ".c"
	}
	return filename + ".c"
}

// buildFile runs the full pipeline and writes the emitted C source to out
// (or defaultOutputPath(filename) when out is empty). It returns a non-nil
// error on any lexical, syntactic, semantic, or I/O failure, after printing
// diagnostics to the sink's rendered form.
func buildFile(filename, out string) error {
	content, err := readSource(filename)
	if err != nil {
		return err
	}

	prog, p, sink := parseFile(content)
	if p.HadError() {
		printDiagnostics(sink, filename, content)
		return fmt.Errorf("parsing failed with %d error(s)", sink.Count())
	}

	if ok := semantic.New(sink).Analyze(prog); !ok {
		printDiagnostics(sink, filename, content)
		return fmt.Errorf("semantic analysis failed with %d error(s)", sink.Count())
	}

	outPath := out
	if outPath == "" {
		outPath = defaultOutputPath(filename)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to open output file %s: %w", outPath, err)
	}
	defer f.Close()

	var opts []emitter.Option
	if asciiIdentifiers {
		mapping := buildIdentifierMap(prog)
		opts = append(opts, emitter.WithRename(renameFunc(mapping)))
		if err := writeIdentifierMap(outPath+".map", mapping); err != nil {
			return fmt.Errorf("failed to write identifier map: %w", err)
		}
	}

	if err := emitter.New(f, opts...).Emit(prog); err != nil {
		return fmt.Errorf("failed to emit C source: %w", err)
	}

	fmt.Printf("Compiled %s -> %s\n", filename, outPath)
	return nil
}

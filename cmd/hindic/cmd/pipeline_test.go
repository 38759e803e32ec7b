package cmd

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/hindic-lang/hindic/internal/diag"
	"github.com/hindic-lang/hindic/internal/lexer"
	"github.com/hindic-lang/hindic/internal/parser"
	"github.com/hindic-lang/hindic/pkg/token"
	"github.com/tidwall/gjson"
)

// captureStderr redirects os.Stderr for the duration of fn and returns
// whatever it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured stderr: %v", err)
	}
	return string(out)
}

func TestDiagnosticsJSON_RoundTripsThroughGJSON(t *testing.T) {
	sink := diag.NewSink()
	sink.Report(diag.Semantic, token.Position{Line: 4, Column: 9}, "Type mismatch in variable initialization.")
	sink.Report(diag.Syntax, token.Position{Line: 1, Column: 1}, "Expect ';'.")

	doc := diagnosticsToJSON(sink)
	result := gjson.Parse(doc)
	if !result.IsArray() || len(result.Array()) != 2 {
		t.Fatalf("expected a 2-element JSON array, got %s", doc)
	}
	first := result.Array()[0]
	if first.Get("line").Int() != 4 || first.Get("column").Int() != 9 {
		t.Fatalf("unexpected position in first diagnostic: %s", first.Raw)
	}
	if first.Get("stage").String() != "semantic" {
		t.Fatalf("got stage %q, want %q", first.Get("stage").String(), "semantic")
	}
	if first.Get("message").String() != "Type mismatch in variable initialization." {
		t.Fatalf("unexpected message: %s", first.Get("message").String())
	}
}

func TestBuildIdentifierMap_SkipsASCIIAssignsDevanagariInOrder(t *testing.T) {
	sink := diag.NewSink()
	p := parser.New(lexer.New([]byte(`पूर्णांक जोड़(पूर्णांक क, पूर्णांक x) { वापस क + x; }`)), sink)
	prog := p.Parse()
	if p.HadError() {
		t.Fatalf("unexpected parse error: %s", sink.String())
	}

	mapping := buildIdentifierMap(prog)
	if _, ok := mapping["x"]; ok {
		t.Fatalf("expected ASCII identifier x to be left out of the map, got %+v", mapping)
	}
	if mapping["जोड़"] != "_id1" {
		t.Fatalf("expected जोड़ to be the first assigned alias, got %+v", mapping)
	}
	if mapping["क"] != "_id2" {
		t.Fatalf("expected क to be the second assigned alias, got %+v", mapping)
	}
}

func TestPrintDiagnostics_ExplainRendersSourceContextAndExplanation(t *testing.T) {
	explainErrors = true
	defer func() { explainErrors = false }()

	sink := diag.NewSink()
	sink.Report(diag.Semantic, token.Position{Line: 1, Column: 12}, "Type mismatch in variable initialization.")
	source := []byte("पूर्णांक x = 1.5;")

	out := captureStderr(t, func() {
		printDiagnostics(sink, "in.hin", source)
	})

	if !strings.Contains(out, "Error in in.hin:1:12") {
		t.Fatalf("expected a file:line:column header, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected a caret line, got %q", out)
	}
	if !strings.Contains(out, "type or scoping rule") {
		t.Fatalf("expected the semantic stage explanation, got %q", out)
	}
}

func TestPrintDiagnostics_PlainDefaultOmitsSourceContext(t *testing.T) {
	sink := diag.NewSink()
	sink.Report(diag.Syntax, token.Position{Line: 2, Column: 1}, "Expect ';'.")

	out := captureStderr(t, func() {
		printDiagnostics(sink, "in.hin", []byte("x"))
	})

	want := "Line 2, Column 1: Error: Expect ';'.\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRenameFunc_FallsBackToOriginalNameWhenAbsent(t *testing.T) {
	rename := renameFunc(map[string]string{"अ": "_id1"})
	if got := rename("अ"); got != "_id1" {
		t.Fatalf("got %q, want _id1", got)
	}
	if got := rename("x"); got != "x" {
		t.Fatalf("got %q, want unchanged x", got)
	}
}

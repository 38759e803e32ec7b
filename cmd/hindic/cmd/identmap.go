package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hindic-lang/hindic/pkg/ast"
)

// buildIdentifierMap walks prog in declaration order and assigns every
// distinct identifier a bijective "_id<N>" alias, in first-appearance
// order. ASCII-only identifiers are left out of the map; the emitter
// falls back to the original name for anything absent from it.
func buildIdentifierMap(prog *ast.Program) map[string]string {
	mapping := make(map[string]string)
	order := 0

	assign := func(name string) {
		if isASCIIIdent(name) {
			return
		}
		if _, ok := mapping[name]; ok {
			return
		}
		order++
		mapping[name] = fmt.Sprintf("_id%d", order)
	}

	ast.Walk(prog, ast.VisitorFunc(func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.VarDecl:
			assign(v.Name.Lexeme)
		case *ast.FunctionDecl:
			assign(v.Name.Lexeme)
			for _, p := range v.Params {
				assign(p.Name.Lexeme)
			}
		case *ast.Variable:
			assign(v.Name.Lexeme)
		case *ast.Assignment:
			assign(v.Name.Lexeme)
		}
		return true
	}))

	return mapping
}

func isASCIIIdent(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}

// renameFunc adapts mapping into the function shape pkg/emitter.WithRename
// expects: names absent from mapping pass through unchanged.
func renameFunc(mapping map[string]string) func(string) string {
	return func(name string) string {
		if alias, ok := mapping[name]; ok {
			return alias
		}
		return name
	}
}

// writeIdentifierMap writes mapping to path as tab-separated
// "<original>\t<alias>" lines, sorted by alias for stable, reviewable
// output across runs.
func writeIdentifierMap(path string, mapping map[string]string) error {
	type entry struct{ name, alias string }
	entries := make([]entry, 0, len(mapping))
	for name, alias := range mapping {
		entries = append(entries, entry{name, alias})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].alias < entries[j].alias })

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s\t%s\n", e.name, e.alias)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/hindic-lang/hindic/internal/diag"
	"github.com/hindic-lang/hindic/internal/lexer"
	"github.com/hindic-lang/hindic/internal/parser"
	"github.com/hindic-lang/hindic/internal/semantic"
	"github.com/hindic-lang/hindic/pkg/ast"
	"github.com/hindic-lang/hindic/pkg/emitter"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive lex/parse/analyze/emit session",
	Long: `Read one declaration at a time, run it through the full pipeline
against an accumulating program, and print the emitted C fragment.

This is a teaching aid, not part of the compiler's core contract: every
accumulated declaration is re-analyzed from scratch on each line, since the
analyzer has no incremental mode.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(_ *cobra.Command, _ []string) error {
	rl, err := readline.New("hindic> ")
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}
	defer rl.Close()

	var decls []ast.Stmt
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		sink := diag.NewSink()
		p := parser.New(lexer.New([]byte(line)), sink)
		prog := p.Parse()
		if p.HadError() {
			printDiagnostics(sink, "", []byte(line))
			continue
		}

		candidate := append(append([]ast.Stmt{}, decls...), prog.Decls...)
		fullProg := &ast.Program{Decls: candidate}
		if ok := semantic.New(sink).Analyze(fullProg); !ok {
			printDiagnostics(sink, "", []byte(line))
			continue
		}
		decls = candidate

		if err := emitter.New(os.Stdout).EmitDecls(prog.Decls); err != nil {
			fmt.Fprintf(os.Stderr, "emit error: %v\n", err)
		}
	}
}
